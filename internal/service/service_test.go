package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/orastria/internal/config"
	"github.com/pribylovaa/orastria/internal/content"
	"github.com/pribylovaa/orastria/internal/geo"
	"github.com/pribylovaa/orastria/internal/models"
	"github.com/pribylovaa/orastria/internal/storage"
	"github.com/pribylovaa/orastria/mocks"
)

// Примечание: моки сгенерированы в пакете /mocks
// (MockGeocoder, MockChartSource, MockBooksStorage).

func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockGeocoder, *mocks.MockChartSource, *mocks.MockBooksStorage, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mg := mocks.NewMockGeocoder(ctrl)
	mc := mocks.NewMockChartSource(ctrl)
	mb := mocks.NewMockBooksStorage(ctrl)

	svc := New(mg, mc, mb, content.NewStore(), config.Config{})
	return svc, mg, mc, mb, ctrl
}

var testBirth = BirthInput{
	BirthDate:  "1998-09-06",
	BirthTime:  "18:30",
	BirthPlace: "Beirut, Lebanon",
}

var testChart = models.Chart{
	SunSign: "Virgo", MoonSign: "Cancer", RisingSign: "Aquarius",
	Mercury: "Libra", Venus: "Libra", Mars: "Leo",
	Jupiter: "Pisces", Saturn: "Aries",
}

func TestGenerateBook_OK(t *testing.T) {
	svc, mg, mc, mb, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mg.EXPECT().Resolve(gomock.Any(), "Beirut, Lebanon").
		Return(&geo.Result{Latitude: 33.8938, Longitude: 35.5018, Timezone: "Asia/Beirut"}, nil)
	mc.EXPECT().Chart(gomock.Any(), gomock.Any()).Return(&testChart, nil)

	var savedKey string
	mb.EXPECT().SaveBook(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, pdf []byte) (*storage.UploadResult, error) {
			require.NotEmpty(t, pdf)
			savedKey = key
			return &storage.UploadResult{Key: key, URL: "https://cdn.example/" + key}, nil
		})

	res, err := svc.GenerateBook(context.Background(), GenerateBookInput{
		Name:  "Jane Doe",
		Birth: testBirth,
	})
	require.NoError(t, err)

	// Ключ: слаг имени + 8 hex-символов.
	require.Regexp(t, regexp.MustCompile(`^books/jane_doe_[0-9a-f]{8}\.pdf$`), savedKey)
	require.Equal(t, "https://cdn.example/"+savedKey, res.DownloadURL)
	require.Equal(t, BookTypeSample, res.BookType)
	require.Equal(t, "Jane Doe", res.Person.Name)
	require.Equal(t, "September 06, 1998", res.Person.BirthDate)
	require.Equal(t, "06:30 PM", res.Person.BirthTime)
	require.Equal(t, "Virgo", res.Person.Chart.SunSign)
}

// TestGenerateBook_BookTypeEchoed — нестандартный book_type сохраняется в ответе.
func TestGenerateBook_BookTypeEchoed(t *testing.T) {
	svc, mg, mc, mb, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mg.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(&geo.Result{Timezone: "UTC"}, nil)
	mc.EXPECT().Chart(gomock.Any(), gomock.Any()).Return(models.NewChart(), nil)
	mb.EXPECT().SaveBook(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&storage.UploadResult{Key: "k", URL: "u"}, nil)

	res, err := svc.GenerateBook(context.Background(), GenerateBookInput{
		Name:     "Jane",
		Birth:    testBirth,
		BookType: "full",
	})
	require.NoError(t, err)
	require.Equal(t, "full", res.BookType)
}

func TestGenerateBook_InvalidArguments(t *testing.T) {
	svc, _, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	tcs := []struct {
		name  string
		input GenerateBookInput
	}{
		{"empty name", GenerateBookInput{Name: "  ", Birth: testBirth}},
		{"bad date", GenerateBookInput{Name: "Jane", Birth: BirthInput{
			BirthDate: "06-09-1998", BirthTime: "18:30", BirthPlace: "Beirut"}}},
		{"bad time", GenerateBookInput{Name: "Jane", Birth: BirthInput{
			BirthDate: "1998-09-06", BirthTime: "6:30 PM", BirthPlace: "Beirut"}}},
		{"empty place", GenerateBookInput{Name: "Jane", Birth: BirthInput{
			BirthDate: "1998-09-06", BirthTime: "18:30", BirthPlace: " "}}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GenerateBook(context.Background(), tc.input)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestGenerateBook_LocationNotFound(t *testing.T) {
	svc, mg, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mg.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, geo.ErrLocationNotFound)

	_, err := svc.GenerateBook(context.Background(), GenerateBookInput{Name: "Jane", Birth: testBirth})
	require.ErrorIs(t, err, ErrLocationNotFound)
}

func TestGenerateBook_GeocoderUnavailable(t *testing.T) {
	svc, mg, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mg.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, geo.ErrUnavailable)

	_, err := svc.GenerateBook(context.Background(), GenerateBookInput{Name: "Jane", Birth: testBirth})
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGenerateBook_ChartUnavailable(t *testing.T) {
	svc, mg, mc, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mg.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(&geo.Result{Timezone: "UTC"}, nil)
	mc.EXPECT().Chart(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.GenerateBook(context.Background(), GenerateBookInput{Name: "Jane", Birth: testBirth})
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}

// TestGenerateBook_UploadFailed — при сбое выгрузки частичный результат
// не возвращается.
func TestGenerateBook_UploadFailed(t *testing.T) {
	svc, mg, mc, mb, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mg.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return(&geo.Result{Timezone: "UTC"}, nil)
	mc.EXPECT().Chart(gomock.Any(), gomock.Any()).Return(models.NewChart(), nil)
	mb.EXPECT().SaveBook(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrUnavailable)

	res, err := svc.GenerateBook(context.Background(), GenerateBookInput{Name: "Jane", Birth: testBirth})
	require.ErrorIs(t, err, ErrUploadFailed)
	require.Nil(t, res)
}

func TestResolveChart_OK(t *testing.T) {
	svc, mg, mc, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mg.EXPECT().Resolve(gomock.Any(), "Beirut, Lebanon").
		Return(&geo.Result{Latitude: 33.8938, Longitude: 35.5018, Timezone: "Asia/Beirut"}, nil)
	mc.EXPECT().Chart(gomock.Any(), gomock.Any()).Return(&testChart, nil)

	res, err := svc.ResolveChart(context.Background(), testBirth)
	require.NoError(t, err)
	require.Equal(t, "Beirut, Lebanon", res.Location.Place)
	require.InDelta(t, 33.8938, res.Location.Latitude, 1e-9)
	require.Equal(t, "Asia/Beirut", res.Location.Timezone)
	require.Equal(t, testChart, res.Chart)
}

func TestResolveChart_Errors(t *testing.T) {
	t.Run("invalid argument", func(t *testing.T) {
		svc, _, _, _, ctrl := newServiceWithMocks(t)
		defer ctrl.Finish()

		_, err := svc.ResolveChart(context.Background(), BirthInput{})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("location not found", func(t *testing.T) {
		svc, mg, _, _, ctrl := newServiceWithMocks(t)
		defer ctrl.Finish()

		mg.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, geo.ErrLocationNotFound)

		_, err := svc.ResolveChart(context.Background(), testBirth)
		require.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		svc, mg, mc, _, ctrl := newServiceWithMocks(t)
		defer ctrl.Finish()

		mg.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(&geo.Result{Timezone: "UTC"}, nil)
		mc.EXPECT().Chart(gomock.Any(), gomock.Any()).Return(nil, errors.New("down"))

		_, err := svc.ResolveChart(context.Background(), testBirth)
		require.ErrorIs(t, err, ErrUpstreamUnavailable)
	})
}

func TestBookKey_Slug(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^books/mary_jane_o'hara_[0-9a-f]{8}\.pdf$`)
	require.Regexp(t, re, bookKey("  Mary  Jane O'Hara "))
}

func TestDisplayFormats(t *testing.T) {
	t.Parallel()

	require.Equal(t, "September 06, 1998", displayDate("1998-09-06"))
	require.Equal(t, "06:30 PM", displayTime("18:30"))
	require.Equal(t, "12:05 AM", displayTime("00:05"))
}
