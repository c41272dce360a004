// service содержит бизнес-логику orastria:
// - генерация персональной книги (geocode → chart → render → upload);
// - расчёт натальной карты без генерации книги.
package service

import (
	"errors"

	"github.com/pribylovaa/orastria/internal/astro"
	"github.com/pribylovaa/orastria/internal/config"
	"github.com/pribylovaa/orastria/internal/content"
	"github.com/pribylovaa/orastria/internal/geo"
	"github.com/pribylovaa/orastria/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные (пустые поля, битые
	// форматы даты/времени).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLocationNotFound — место рождения не найдено геокодером.
	ErrLocationNotFound = errors.New("location not found")
	// ErrUpstreamUnavailable — внешний сервис (геокодер/астрология) недоступен.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUploadFailed — книга собрана, но выгрузка в хранилище не удалась.
	ErrUploadFailed = errors.New("upload failed")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// Service — описывает бизнес-логику orastria.
type Service struct {
	cfg      config.Config
	geocoder geo.Geocoder
	charts   astro.ChartSource
	books    storage.BooksStorage
	content  *content.Store
}

// New создает новый экземпляр Service.
func New(geocoder geo.Geocoder, charts astro.ChartSource, books storage.BooksStorage, contentStore *content.Store, cfg config.Config) *Service {
	return &Service{
		cfg:      cfg,
		geocoder: geocoder,
		charts:   charts,
		books:    books,
		content:  contentStore,
	}
}
