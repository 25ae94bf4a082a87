package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	return w, &body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"event not found", apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"username taken", apperrors.ErrUsernameAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate team member", apperrors.ErrVolunteerAlreadyOnTeam, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"inactive account", apperrors.ErrAccountInactive, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"role mismatch", apperrors.ErrRoleMismatch, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"validation failure", apperrors.NewValidationError("invalid status: bogus"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad sort key", apperrors.ErrInvalidSortKey, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad reset token", apperrors.ErrInvalidPasswordResetToken, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unclassified error", errors.New("disk on fire"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := handleError(t, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Success {
				t.Error("Success = true in an error response")
			}
			if body.Error == nil {
				t.Fatal("missing error detail")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorWrappedErrors(t *testing.T) {
	// Errors wrapped with context still map by their sentinel.
	wrapped := errors.Join(errors.New("loading user 5"), apperrors.ErrUserNotFound)
	w, _ := handleError(t, wrapped)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for a wrapped not-found error", w.Code)
	}
}

func TestHandleAPIErrorDoesNotLeakInternals(t *testing.T) {
	_, body := handleError(t, errors.New("pq: connection refused on 10.0.0.5"))
	if body.Error.Message != "Internal server error" {
		t.Errorf("internal error leaked: %q", body.Error.Message)
	}
}
