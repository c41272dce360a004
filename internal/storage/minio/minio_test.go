package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"testing"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/orastria/internal/config"
	"github.com/pribylovaa/orastria/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают бакет для книг;
// — проверяют:
//    New: успешное подключение и ошибку при отсутствии бакета;
//    SaveBook: выгрузку PDF, Content-Type объекта и построение публичной
//    ссылки (с PublicBaseURL и без него).
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*BooksStorage, func(), string) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "orastria-books"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting minio container with image=%q", image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		err = admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
	}

	cfg := config.S3Config{
		Endpoint:      endpoint,
		KeyID:         rootUser,
		AppKey:        rootPassword,
		Bucket:        bucket,
		PublicBaseURL: "http://cdn.local",
	}

	st, newErr := New(ctx, cfg)
	if !createBucket {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}, ""
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup, endpoint
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	// Без предварительного создания бакета New должен вернуть ошибку.
	_, _, _ = startMinio(t, false)
}

func TestIntegration_SaveBook_OK(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	pdf := []byte("%PDF-1.4 fake body")
	res, err := st.SaveBook(context.Background(), "books/jane_doe_0a1b2c3d.pdf", pdf)
	require.NoError(t, err)
	require.Equal(t, "books/jane_doe_0a1b2c3d.pdf", res.Key)
	require.Equal(t, "http://cdn.local/books/jane_doe_0a1b2c3d.pdf", res.URL)

	info, err := st.client.StatObject(context.Background(), st.cfg.Bucket, res.Key, mclient.StatObjectOptions{})
	require.NoError(t, err)
	require.Equal(t, int64(len(pdf)), info.Size)
	require.Equal(t, "application/pdf", info.ContentType)

	obj, err := st.client.GetObject(context.Background(), st.cfg.Bucket, res.Key, mclient.GetObjectOptions{})
	require.NoError(t, err)
	body, err := io.ReadAll(obj)
	require.NoError(t, err)
	require.Equal(t, pdf, body)
}

func TestIntegration_SaveBook_InvalidArgs(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	_, err := st.SaveBook(context.Background(), "", []byte("x"))
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.SaveBook(context.Background(), "books/empty.pdf", nil)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_SaveBook_URLFromEndpoint(t *testing.T) {
	st, cleanup, endpoint := startMinio(t, true)
	defer cleanup()

	// Без PublicBaseURL ссылка собирается из endpoint и бакета.
	st.cfg.PublicBaseURL = ""
	res, err := st.SaveBook(context.Background(), "books/no_base.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, endpoint+"/"+st.cfg.Bucket+"/books/no_base.pdf", res.URL)
}

func TestIntegration_New_EndpointWithoutScheme_OK(t *testing.T) {
	_, cleanup, endpoint := startMinio(t, true)
	defer cleanup()

	u, err := url.Parse(endpoint)
	require.NoError(t, err)

	cfg2 := config.S3Config{
		Endpoint:      u.Host,
		KeyID:         "root",
		AppKey:        "rootpass",
		Bucket:        "orastria-books",
		PublicBaseURL: "http://cdn.local",
	}

	s2, err := New(context.Background(), cfg2)
	require.NoError(t, err)
	require.NotNil(t, s2)
}

func TestIntegration_SaveBook_Overwrite_OK(t *testing.T) {
	st, cleanup, _ := startMinio(t, true)
	defer cleanup()

	// Повторная выгрузка под тем же ключом перезаписывает объект.
	_, err := st.SaveBook(context.Background(), "books/rewrite.pdf", []byte("%PDF-1.4 v1"))
	require.NoError(t, err)
	res, err := st.SaveBook(context.Background(), "books/rewrite.pdf", []byte("%PDF-1.4 second version"))
	require.NoError(t, err)

	obj, err := st.client.GetObject(context.Background(), st.cfg.Bucket, res.Key, mclient.GetObjectOptions{})
	require.NoError(t, err)
	body, err := io.ReadAll(obj)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4 second version"), body)
}
