package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/orastria/internal/book"
	"github.com/pribylovaa/orastria/internal/metrics"
	"github.com/pribylovaa/orastria/internal/models"
	"github.com/pribylovaa/orastria/pkg/log"
)

// BookTypeSample — книга-превью на 10 страниц; значение по умолчанию.
const BookTypeSample = "sample"

// GenerateBookInput — входные данные генерации книги.
type GenerateBookInput struct {
	Name     string
	Birth    BirthInput
	BookType string // пусто — "sample"
	Email    string // опционально; пока только логируется
}

// GenerateBookResult — результат генерации.
type GenerateBookResult struct {
	DownloadURL string
	Key         string
	Person      models.PersonProfile
	BookType    string
}

// GenerateBook выполняет полный конвейер: геокодинг места, расчёт карты,
// сборка PDF и выгрузка в хранилище.
//
// Валидация:
//   - name непустой, форматы даты/времени — как в ResolveChart;
//     иначе ErrInvalidArgument.
//
// Поведение:
//   - место не найдено — ErrLocationNotFound;
//   - сбой внешних API — ErrUpstreamUnavailable;
//   - сбой рендера — ErrInternal;
//   - сбой выгрузки — ErrUploadFailed (частичный результат не возвращается).
func (s *Service) GenerateBook(ctx context.Context, input GenerateBookInput) (*GenerateBookResult, error) {
	const op = "service/generate/GenerateBook"

	lg := log.From(ctx).With("op", op)

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		lg.Warn("invalid argument: empty name")

		return nil, fmt.Errorf("%s: %w: empty name", op, ErrInvalidArgument)
	}
	if err := input.Birth.validate(); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
	}

	bookType := input.BookType
	if bookType == "" {
		bookType = BookTypeSample
	}

	resolved, err := s.resolve(ctx, input.Birth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	person := models.PersonProfile{
		Name:       input.Name,
		BirthDate:  displayDate(input.Birth.BirthDate),
		BirthTime:  displayTime(input.Birth.BirthTime),
		BirthPlace: input.Birth.BirthPlace,
		Chart:      resolved.Chart,
	}

	bundle := s.content.ForChart(&resolved.Chart)

	pdf, err := book.Build(&person, bundle, book.Options{
		FontPaths: s.cfg.Book.FontPaths,
		BookType:  bookType,
	})
	if err != nil {
		lg.Error("book render failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	key := bookKey(input.Name)

	uploaded, err := s.books.SaveBook(ctx, key, pdf)
	if err != nil {
		lg.Error("book upload failed", "key", key, "err", err)
		metrics.UpstreamErrors.WithLabelValues("storage").Inc()

		return nil, fmt.Errorf("%s: %w", op, ErrUploadFailed)
	}

	metrics.BooksGenerated.Inc()
	lg.Info("book generated",
		"key", uploaded.Key,
		"sun_sign", person.Chart.SunSign,
		"book_type", bookType,
		"size_bytes", len(pdf),
		"has_email", input.Email != "",
	)

	return &GenerateBookResult{
		DownloadURL: uploaded.URL,
		Key:         uploaded.Key,
		Person:      person,
		BookType:    bookType,
	}, nil
}

// bookKey строит ключ объекта вида "books/<slug>_<8hex>.pdf".
func bookKey(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "_")

	return fmt.Sprintf("books/%s_%s.pdf", slug, uuid.NewString()[:8])
}

// displayDate переводит "2006-01-02" в "January 02, 2006".
// Вход уже провалидирован.
func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 02, 2006")
}

// displayTime переводит "15:04" в "03:04 PM".
func displayTime(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("03:04 PM")
}
