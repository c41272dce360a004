package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/orastria/internal/config"
	"github.com/pribylovaa/orastria/pkg/log"
)

// Client — реализация Geocoder поверх публичных HTTP API.
// Кэширования нет: каждый запрос разрешается заново.
type Client struct {
	cfg  config.GeoConfig
	http *http.Client
}

// NewClient создаёт геокодер с собственным таймаутом на исходящие вызовы.
func NewClient(cfg config.GeoConfig, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// Проверка выполнения контракта.
var _ Geocoder = (*Client)(nil)

// searchCandidate — элемент ответа Nominatim; lat/lon приходят строками.
type searchCandidate struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve ищет место через Nominatim и определяет таймзону по координатам.
// Сбой таймзонного сервиса не фатален: зона откатывается на "UTC".
func (c *Client) Resolve(ctx context.Context, place string) (*Result, error) {
	const op = "geo/client/Resolve"

	place = strings.TrimSpace(place)
	if place == "" {
		return nil, fmt.Errorf("%s: empty place: %w", op, ErrLocationNotFound)
	}

	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.SearchURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// Nominatim требует осмысленный User-Agent.
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: search: %v: %w", op, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: search: unexpected status %d: %w", op, resp.StatusCode, ErrUnavailable)
	}

	var candidates []searchCandidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("%s: search: decode: %v: %w", op, err, ErrUnavailable)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%s: %q: %w", op, place, ErrLocationNotFound)
	}

	lat, err := strconv.ParseFloat(candidates[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: search: bad latitude %q: %w", op, candidates[0].Lat, ErrUnavailable)
	}

	lon, err := strconv.ParseFloat(candidates[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: search: bad longitude %q: %w", op, candidates[0].Lon, ErrUnavailable)
	}

	return &Result{
		Latitude:  lat,
		Longitude: lon,
		Timezone:  c.timezone(ctx, lat, lon),
	}, nil
}

// timezone запрашивает IANA-зону по координатам; любая ошибка — "UTC".
func (c *Client) timezone(ctx context.Context, lat, lon float64) string {
	const op = "geo/client/timezone"

	u := fmt.Sprintf("%s?latitude=%s&longitude=%s",
		c.cfg.TimezoneURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "UTC"
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.From(ctx).Warn("timezone lookup failed, falling back to UTC", "op", op, "err", err)
		return "UTC"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.From(ctx).Warn("timezone lookup failed, falling back to UTC", "op", op, "status", resp.StatusCode)
		return "UTC"
	}

	var payload struct {
		TimeZone string `json:"timeZone"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.TimeZone == "" {
		return "UTC"
	}

	return payload.TimeZone
}
