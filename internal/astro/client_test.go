package astro

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pribylovaa/orastria/internal/config"
	"github.com/pribylovaa/orastria/internal/models"
	"github.com/stretchr/testify/require"
)

// upstream — настраиваемый стаб Prokerala: token + planet-position + kundli.
type upstream struct {
	tokenStatus    int
	planetsStatus  int
	planetsBody    string
	kundliStatus   int
	kundliBody     string
	lastDatetime   string
	lastAuthHeader string
}

func (u *upstream) server(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/token"):
			require.NoError(t, r.ParseForm())
			require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			if u.tokenStatus != 0 {
				w.WriteHeader(u.tokenStatus)
				return
			}
			_, _ = w.Write([]byte(`{"access_token":"test-token","expires_in":3600}`))

		case strings.HasSuffix(r.URL.Path, "/planet-position"):
			u.lastDatetime = r.URL.Query().Get("datetime")
			u.lastAuthHeader = r.Header.Get("Authorization")
			if u.planetsStatus != 0 {
				w.WriteHeader(u.planetsStatus)
				return
			}
			_, _ = w.Write([]byte(u.planetsBody))

		case strings.HasSuffix(r.URL.Path, "/kundli"):
			if u.kundliStatus != 0 {
				w.WriteHeader(u.kundliStatus)
				return
			}
			_, _ = w.Write([]byte(u.kundliBody))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.ProkeralaConfig{
		ClientID:     "cid",
		ClientSecret: "secret",
		TokenURL:     baseURL + "/token",
		BaseURL:      baseURL,
		Ayanamsa:     1,
	}, 5*time.Second)
}

var testReq = ChartRequest{
	Date:      "1998-09-06",
	Time:      "18:30",
	Latitude:  33.8938,
	Longitude: 35.5018,
	Timezone:  "Asia/Beirut",
}

func TestChart_OK_AllEncodings(t *testing.T) {
	t.Parallel()

	// Три кодировки знака: объект с name, голый id, голая строка.
	u := &upstream{
		planetsBody: `{"data":{"planet_positions":[
			{"name":"Sun","sign":{"name":"Virgo","id":5}},
			{"name":"Moon","sign":3},
			{"name":"Mercury","sign":"Libra"},
			{"name":"Venus","sign":{"id":6}},
			{"name":"Mars","sign":{"name":"Leo"}},
			{"name":"Jupiter","sign":11},
			{"name":"Saturn","sign":"Aries"}
		]}}`,
		kundliBody: `{"data":{"ascendant":{"name":"Ascendant","sign":{"name":"Aquarius"}}}}`,
	}
	srv := u.server(t)
	defer srv.Close()

	chart, err := newTestClient(srv.URL).Chart(context.Background(), testReq)
	require.NoError(t, err)

	require.Equal(t, "Virgo", chart.SunSign)
	require.Equal(t, "Cancer", chart.MoonSign)
	require.Equal(t, "Libra", chart.Mercury)
	require.Equal(t, "Libra", chart.Venus)
	require.Equal(t, "Leo", chart.Mars)
	require.Equal(t, "Pisces", chart.Jupiter)
	require.Equal(t, "Aries", chart.Saturn)
	require.Equal(t, "Aquarius", chart.RisingSign)

	// Смещение берётся из статической таблицы.
	require.Equal(t, "1998-09-06T18:30:00+02:00", u.lastDatetime)
	require.Equal(t, "Bearer test-token", u.lastAuthHeader)
}

func TestChart_PlanetsKeyAlias(t *testing.T) {
	t.Parallel()

	u := &upstream{
		planetsBody: `{"data":{"planets":[{"planet":"Sun","sign":"Leo"}]}}`,
		kundliBody:  `{"data":{}}`,
	}
	srv := u.server(t)
	defer srv.Close()

	chart, err := newTestClient(srv.URL).Chart(context.Background(), testReq)
	require.NoError(t, err)
	require.Equal(t, "Leo", chart.SunSign)
	// Асцендента в ответе нет — остаётся Unknown.
	require.Equal(t, models.SignUnknown, chart.RisingSign)
}

// TestChart_KundliFailureTolerated — сбой kundli не валит запрос.
func TestChart_KundliFailureTolerated(t *testing.T) {
	t.Parallel()

	u := &upstream{
		planetsBody:  `{"data":{"planet_positions":[{"name":"Sun","sign":"Leo"},{"name":"Moon","sign":"Cancer"}]}}`,
		kundliStatus: http.StatusBadGateway,
	}
	srv := u.server(t)
	defer srv.Close()

	chart, err := newTestClient(srv.URL).Chart(context.Background(), testReq)
	require.NoError(t, err)
	require.Equal(t, "Leo", chart.SunSign)
	require.Equal(t, "Cancer", chart.MoonSign)
	require.Equal(t, models.SignUnknown, chart.RisingSign)
}

// TestChart_PlanetPositionFailureFatal — сбой основного запроса фатален.
func TestChart_PlanetPositionFailureFatal(t *testing.T) {
	t.Parallel()

	u := &upstream{planetsStatus: http.StatusInternalServerError}
	srv := u.server(t)
	defer srv.Close()

	_, err := newTestClient(srv.URL).Chart(context.Background(), testReq)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestChart_TokenFailure(t *testing.T) {
	t.Parallel()

	u := &upstream{tokenStatus: http.StatusUnauthorized}
	srv := u.server(t)
	defer srv.Close()

	_, err := newTestClient(srv.URL).Chart(context.Background(), testReq)
	require.ErrorIs(t, err, ErrUnavailable)
}

// TestChart_UnknownTimezoneOffset — неизвестная зона получает нулевое смещение.
func TestChart_UnknownTimezoneOffset(t *testing.T) {
	t.Parallel()

	u := &upstream{
		planetsBody: `{"data":{"planet_positions":[]}}`,
		kundliBody:  `{"data":{}}`,
	}
	srv := u.server(t)
	defer srv.Close()

	req := testReq
	req.Timezone = "Pacific/Auckland"

	chart, err := newTestClient(srv.URL).Chart(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "1998-09-06T18:30:00+00:00", u.lastDatetime)

	// Пустой список позиций — все знаки Unknown.
	require.Equal(t, models.SignUnknown, chart.SunSign)
	require.Equal(t, models.SignUnknown, chart.Saturn)
}

func TestDecodeSign_Unrecognized(t *testing.T) {
	t.Parallel()

	require.Equal(t, models.SignUnknown, decodeSign(nil))
	require.Equal(t, models.SignUnknown, decodeSign([]byte(`{"foo":"bar"}`)))
	require.Equal(t, models.SignUnknown, decodeSign([]byte(`12`)))
	require.Equal(t, models.SignUnknown, decodeSign([]byte(`-1`)))
	require.Equal(t, "Taurus", decodeSign([]byte(`1`)))
	require.Equal(t, "Leo", decodeSign([]byte(`"Leo"`)))
}
