// astro содержит контракт резолвера натальной карты orastria.
//
// astro.go — интерфейс, вход и сентинельные ошибки;
// client.go — реализация поверх Prokerala (OAuth client-credentials,
// planet-position и kundli);
// offsets.go — статическая таблица смещений таймзон;
// parse.go — разбор ответов апстрима в models.Chart.
package astro

import (
	"context"
	"errors"

	"github.com/pribylovaa/orastria/internal/models"
)

// ErrUnavailable — внешний астрологический сервис недоступен/ответил ошибкой.
var ErrUnavailable = errors.New("astrology service unavailable")

// ChartRequest — параметры расчёта карты.
type ChartRequest struct {
	Date      string // "YYYY-MM-DD"
	Time      string // "HH:MM"
	Latitude  float64
	Longitude float64
	Timezone  string // IANA-идентификатор
}

// ChartSource — контракт получения натальной карты.
type ChartSource interface {
	// Chart возвращает карту со всеми 8 позициями; нерезолвленные позиции
	// получают models.SignUnknown. Сбой запроса асцендента не фатален,
	// сбой основного запроса позиций — ErrUnavailable.
	Chart(ctx context.Context, req ChartRequest) (*models.Chart, error)
}
