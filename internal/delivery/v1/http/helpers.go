package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SwipeRequest тело запросов POST /quiz/initial и POST /refine-taste.
type SwipeRequest struct {
	UserID string         `json:"user_id"`
	Swipes []domain.Swipe `json:"swipes"`
}

// RecommendationsRequest тело запроса POST /recommendations.
type RecommendationsRequest struct {
	UserID string `json:"user_id"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrUserIDRequired):
		return http.StatusBadRequest, e.ErrUserIDRequired.Error()
	case errors.Is(err, e.ErrNoSwipes):
		return http.StatusBadRequest, e.ErrNoSwipes.Error()
	case errors.Is(err, e.ErrUserNotFound):
		return http.StatusBadRequest, e.ErrUserNotFound.Error()
	case errors.Is(err, e.ErrProfileNotFound):
		return http.StatusNotFound, e.ErrProfileNotFound.Error()
	case errors.Is(err, e.ErrQuizPoolEmpty):
		return http.StatusNotFound, e.ErrQuizPoolEmpty.Error()
	default:
		// Сюда же попадают ErrEngineNotLoaded и ErrInvalidPreferences:
		// внутренние детали не раскрываем клиенту.
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSONBody(r *http.Request, maxSize int64, dst interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxSize))
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrStatusBadRequest, err))
	}

	return nil
}
