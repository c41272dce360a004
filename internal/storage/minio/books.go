package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/orastria/internal/storage"
)

// SaveBook загружает PDF под заданным ключом и возвращает публичную ссылку.
// Ссылка строится из PublicBaseURL (если задан), иначе из endpoint и бакета.
func (s *BooksStorage) SaveBook(ctx context.Context, key string, pdf []byte) (*storage.UploadResult, error) {
	const op = "storage/minio/books/SaveBook"

	if key == "" || len(pdf) == 0 {
		return nil, storage.ErrInvalidArgument
	}

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(pdf), int64(len(pdf)),
		mclient.PutObjectOptions{ContentType: "application/pdf"},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrUnavailable, err)
	}

	return &storage.UploadResult{Key: key, URL: s.publicURL(key)}, nil
}

// publicURL строит ссылку для скачивания объекта.
func (s *BooksStorage) publicURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	}

	base := s.cfg.Endpoint
	if u, err := url.Parse(base); err != nil || u.Scheme == "" {
		base = "https://" + base
	}

	return strings.TrimRight(base, "/") + "/" + s.cfg.Bucket + "/" + key
}
