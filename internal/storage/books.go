// storage содержит контракты слоя хранилищ orastria.
//
// books.go — контракт выгрузки готовых PDF-книг в S3-совместимое
// хранилище и построения публичной ссылки на объект.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrInvalidArgument — нарушены ограничения запроса (пустой ключ/контент).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnavailable — хранилище недоступно или загрузка не удалась.
	ErrUnavailable = errors.New("storage unavailable")
)

// UploadResult — результат выгрузки книги.
//   - Key: ключ объекта в бакете ("books/<slug>_<id>.pdf").
//   - URL: публичная ссылка для скачивания.
type UploadResult struct {
	Key string
	URL string
}

// Books — контракт выгрузки PDF-книг.
type Books interface {
	// SaveBook загружает PDF под заданным ключом и возвращает публичный URL.
	SaveBook(ctx context.Context, key string, pdf []byte) (*UploadResult, error)
}

// BooksStorage — верхнеуровневый интерфейс хранилища книг.
type BooksStorage interface {
	Books
}
