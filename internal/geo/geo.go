// geo содержит контракт геокодера orastria.
//
// geo.go — интерфейс и сентинельные ошибки;
// client.go — реализация поверх Nominatim (поиск места) и timeapi.io
// (таймзона по координатам).
package geo

import (
	"context"
	"errors"
)

var (
	// ErrLocationNotFound — поиск не вернул ни одного кандидата.
	ErrLocationNotFound = errors.New("location not found")
	// ErrUnavailable — внешний сервис недоступен/ответил ошибкой.
	ErrUnavailable = errors.New("geo service unavailable")
)

// Result — координаты и таймзона места рождения.
type Result struct {
	Latitude  float64
	Longitude float64
	// Timezone — IANA-идентификатор зоны; "UTC", если определить не удалось.
	Timezone string
}

// Geocoder — контракт разрешения свободного текста места в координаты.
type Geocoder interface {
	// Resolve возвращает координаты и таймзону первого кандидата поиска.
	// Пустая строка или отсутствие кандидатов — ErrLocationNotFound.
	Resolve(ctx context.Context, place string) (*Result, error)
}
