package astro

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
	"github.com/pribylovaa/orastria/internal/models"
	"github.com/pribylovaa/orastria/pkg/log"
)

// Client — реализация ChartSource поверх Prokerala API.
//
// Токен запрашивается заново на каждый вызов Chart (поведение исходного
// деплоя; известная неэффективность — кандидат на кэш с учётом expires_in).
type Client struct {
	cfg  config.ProkeralaConfig
	http *http.Client
}

// NewClient создаёт клиент Prokerala с собственным таймаутом.
func NewClient(cfg config.ProkeralaConfig, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// Проверка выполнения контракта.
var _ ChartSource = (*Client)(nil)

// token обменивает client credentials на bearer-токен.
func (c *Client) token(ctx context.Context) (string, error) {
	const op = "astro/client/token"

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %v: %w", op, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %d: %w", op, resp.StatusCode, ErrUnavailable)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%s: decode: %v: %w", op, err, ErrUnavailable)
	}

	if payload.AccessToken == "" {
		return "", fmt.Errorf("%s: empty access_token: %w", op, ErrUnavailable)
	}

	return payload.AccessToken, nil
}

// Chart запрашивает позиции планет и асцендент и собирает models.Chart.
// Сбой kundli-запроса не фатален (rising остаётся Unknown);
// сбой planet-position — ErrUnavailable.
func (c *Client) Chart(ctx context.Context, req ChartRequest) (*models.Chart, error) {
	const op = "astro/client/Chart"

	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Дата и время собираются в offset-qualified timestamp; смещение —
	// из статической таблицы, без DST-поправок.
	datetime := fmt.Sprintf("%sT%s:00%s", req.Date, req.Time, offsetFor(req.Timezone))

	params := url.Values{}
	params.Set("ayanamsa", strconv.Itoa(c.cfg.Ayanamsa))
	params.Set("coordinates", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(req.Latitude, 'f', -1, 64),
		strconv.FormatFloat(req.Longitude, 'f', -1, 64),
	))
	params.Set("datetime", datetime)

	var planets chartPayload
	if err := c.get(ctx, c.cfg.BaseURL+"/planet-position", token, params, &planets); err != nil {
		return nil, fmt.Errorf("%s: planet-position: %w", op, err)
	}

	var kundli *kundliPayload
	var asc kundliPayload
	if err := c.get(ctx, c.cfg.BaseURL+"/kundli", token, params, &asc); err != nil {
		log.From(ctx).Warn("kundli lookup failed, rising sign stays unknown", "op", op, "err", err)
	} else {
		kundli = &asc
	}

	return parseChart(planets, kundli), nil
}

// get выполняет авторизованный GET и декодирует поле "data" ответа в out.
func (c *Client) get(ctx context.Context, rawURL, token string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %w", resp.StatusCode, ErrUnavailable)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode: %v: %w", err, ErrUnavailable)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %v: %w", err, ErrUnavailable)
	}

	return nil
}
