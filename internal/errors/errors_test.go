package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/orastria/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil error is a bug -> 500", nil, http.StatusInternalServerError, "internal"},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"location not found", service.ErrLocationNotFound, http.StatusBadRequest, "location_not_found"},
		{"upstream unavailable", service.ErrUpstreamUnavailable, http.StatusBadGateway, "upstream_unavailable"},
		{"upload failed", service.ErrUploadFailed, http.StatusInternalServerError, "upload_failed"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "internal"},
		{"unknown error", errors.New("weird"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// TestToHTTP_WrappedSentinel — маппинг работает и для обёрнутых ошибок.
func TestToHTTP_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("service/chart/ResolveChart: %w", service.ErrLocationNotFound)

	status, resp := ToHTTP(err)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "location_not_found", resp.Error.Code)
}

func TestWriteError_RequestIDPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	req.Header.Set("X-Request-Id", "rid-123")
	rec := httptest.NewRecorder()

	WriteError(rec, req, service.ErrUpstreamUnavailable)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"request_id":"rid-123"`)
	require.Contains(t, rec.Body.String(), `"code":"upstream_unavailable"`)
}

// TestWriteErrorMessage_Override — статус берётся из ошибки, message свой.
func TestWriteErrorMessage_Override(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/chart", nil)
	rec := httptest.NewRecorder()

	WriteErrorMessage(rec, req, service.ErrLocationNotFound, "Could not find location: Atlantis")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"message":"Could not find location: Atlantis"`)
	require.Contains(t, rec.Body.String(), `"code":"location_not_found"`)
}

func TestWriteValidation(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	rec := httptest.NewRecorder()

	WriteValidation(rec, req, "Missing required field: name")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"message":"Missing required field: name"`)
	require.Contains(t, rec.Body.String(), `"code":"invalid_argument"`)
}
