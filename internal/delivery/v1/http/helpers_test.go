package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thuli-tech/style-backend/pkg/e"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "user id required", err: e.ErrUserIDRequired, wantCode: http.StatusBadRequest, wantMsg: e.ErrUserIDRequired.Error()},
		{name: "no swipes", err: e.ErrNoSwipes, wantCode: http.StatusBadRequest, wantMsg: e.ErrNoSwipes.Error()},
		{name: "user not found", err: e.ErrUserNotFound, wantCode: http.StatusBadRequest, wantMsg: e.ErrUserNotFound.Error()},
		{name: "profile not found", err: e.ErrProfileNotFound, wantCode: http.StatusNotFound, wantMsg: e.ErrProfileNotFound.Error()},
		{name: "quiz pool empty", err: e.ErrQuizPoolEmpty, wantCode: http.StatusNotFound, wantMsg: e.ErrQuizPoolEmpty.Error()},
		{name: "wrapped sentinel is unwrapped", err: e.Wrap("TasteUseCase.RefineTaste", e.ErrProfileNotFound), wantCode: http.StatusNotFound, wantMsg: e.ErrProfileNotFound.Error()},
		{name: "engine not loaded is opaque 500", err: e.ErrEngineNotLoaded, wantCode: http.StatusInternalServerError, wantMsg: e.ErrInternalServerError.Error()},
		{name: "invalid preferences is opaque 500", err: e.ErrInvalidPreferences, wantCode: http.StatusInternalServerError, wantMsg: e.ErrInternalServerError.Error()},
		{name: "unknown error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMsg: e.ErrInternalServerError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
