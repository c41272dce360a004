package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/orastria/internal/astro"
	"github.com/pribylovaa/orastria/internal/geo"
	"github.com/pribylovaa/orastria/internal/metrics"
	"github.com/pribylovaa/orastria/internal/models"
	"github.com/pribylovaa/orastria/pkg/log"
)

// BirthInput — общие входные данные обеих операций.
type BirthInput struct {
	BirthDate  string // "YYYY-MM-DD"
	BirthTime  string // "HH:MM"
	BirthPlace string
}

// ChartResult — результат расчёта карты без генерации книги.
type ChartResult struct {
	Location models.Location
	Chart    models.Chart
}

// ResolveChart геокодирует место рождения и рассчитывает натальную карту.
//
// Валидация:
//   - birth_date в формате "YYYY-MM-DD", birth_time — "HH:MM",
//     birth_place непустой — иначе ErrInvalidArgument.
//
// Поведение:
//   - место не найдено — ErrLocationNotFound;
//   - сбой геокодера или астрологического API — ErrUpstreamUnavailable.
func (s *Service) ResolveChart(ctx context.Context, input BirthInput) (*ChartResult, error) {
	const op = "service/chart/ResolveChart"

	lg := log.From(ctx).With("op", op)

	if err := input.validate(); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
	}

	result, err := s.resolve(ctx, input)
	if err != nil {
		metrics.ChartRequests.WithLabelValues("error").Inc()

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.ChartRequests.WithLabelValues("ok").Inc()

	return result, nil
}

// resolve — общий конвейер geocode → chart; ошибки уже замаплены в
// сентинели сервиса.
func (s *Service) resolve(ctx context.Context, input BirthInput) (*ChartResult, error) {
	lg := log.From(ctx)

	loc, err := s.geocoder.Resolve(ctx, input.BirthPlace)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrLocationNotFound):
			lg.Warn("location not found", "place", input.BirthPlace)

			return nil, ErrLocationNotFound
		default:
			lg.Error("geocoder error", "err", err)
			metrics.UpstreamErrors.WithLabelValues("geo").Inc()

			return nil, ErrUpstreamUnavailable
		}
	}

	chart, err := s.charts.Chart(ctx, astro.ChartRequest{
		Date:      input.BirthDate,
		Time:      input.BirthTime,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Timezone:  loc.Timezone,
	})
	if err != nil {
		lg.Error("chart resolution error", "err", err)
		metrics.UpstreamErrors.WithLabelValues("astro").Inc()

		return nil, ErrUpstreamUnavailable
	}

	return &ChartResult{
		Location: models.Location{
			Place:     input.BirthPlace,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Timezone:  loc.Timezone,
		},
		Chart: *chart,
	}, nil
}

// validate проверяет форматы даты/времени и непустоту места.
func (in BirthInput) validate() error {
	if strings.TrimSpace(in.BirthPlace) == "" {
		return fmt.Errorf("empty birth_place")
	}
	if _, err := time.Parse("2006-01-02", in.BirthDate); err != nil {
		return fmt.Errorf("birth_date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", in.BirthTime); err != nil {
		return fmt.Errorf("birth_time must be HH:MM")
	}
	return nil
}
