// errors стандартизирует ответы об ошибках HTTP-слоя orastria.
// На вход он принимает ошибку сервисного слоя (сентинели service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинельные ошибки internal/service.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/orastria/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус
// и унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - ErrInvalidArgument / ErrLocationNotFound -> 400;
//   - ErrUpstreamUnavailable -> 502;
//   - ErrUploadFailed и всё прочее -> 500 (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{
				Code:    "invalid_argument",
				Message: "invalid argument",
			},
		}
	case errors.Is(err, service.ErrLocationNotFound):
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{
				Code:    "location_not_found",
				Message: "location not found",
			},
		}
	case errors.Is(err, service.ErrUpstreamUnavailable):
		return http.StatusBadGateway, ErrorResponse{
			Error: APIError{
				Code:    "upstream_unavailable",
				Message: "astrology service unavailable",
			},
		}
	case errors.Is(err, service.ErrUploadFailed):
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "upload_failed",
				Message: "failed to store generated book",
			},
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)
	write(w, r, status, resp)
}

// WriteErrorMessage — как WriteError, но с переопределённым message
// (например, "Could not find location: <place>").
func WriteErrorMessage(w http.ResponseWriter, r *http.Request, err error, message string) {
	status, resp := ToHTTP(err)
	if message != "" {
		resp.Error.Message = message
	}
	write(w, r, status, resp)
}

// WriteValidation — ответ 400 на ошибку валидации транспортного уровня
// (битый JSON, отсутствующее поле) с заданным message.
func WriteValidation(w http.ResponseWriter, r *http.Request, message string) {
	resp := ErrorResponse{
		Error: APIError{
			Code:    "invalid_argument",
			Message: message,
		},
	}
	write(w, r, http.StatusBadRequest, resp)
}

func write(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
