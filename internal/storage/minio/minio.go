// minio предоставляет реализацию storage.BooksStorage на базе MinIO/S3
// (в проде — Backblaze B2 через S3-совместимый endpoint).
// minio.go — конструктор клиента: нормализует endpoint, настраивает
// Secure/creds и выполняет fail-fast-проверку наличия целевого бакета.
// books.go — выгрузка готового PDF и построение публичной ссылки.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/orastria/internal/config"
	"github.com/pribylovaa/orastria/internal/storage"
)

// BooksStorage — адаптер MinIO для выгрузки книг.
type BooksStorage struct {
	cfg    config.S3Config
	client *mclient.Client
}

// New создает и инициализирует клиент MinIO.
// Убирает схему из endpoint, подбирает Secure по схеме и проверяет
// доступность бакета до старта сервиса.
func New(ctx context.Context, cfg config.S3Config) (*BooksStorage, error) {
	const op = "storage/minio/New"

	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.KeyID, cfg.AppKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return &BooksStorage{cfg: cfg, client: client}, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.BooksStorage = (*BooksStorage)(nil)
