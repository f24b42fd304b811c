package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rawad/acadex/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: 401},
		{name: "account disabled", err: apperrors.ErrAccountDisabled, wantStatus: 401},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, wantStatus: 403},
		{name: "subject not owned", err: apperrors.ErrSubjectNotOwned, wantStatus: 403},
		{name: "user not found", err: apperrors.ErrUserNotFound, wantStatus: 404},
		{name: "doctor not found", err: apperrors.ErrDoctorNotFound, wantStatus: 404},
		{name: "department not found", err: apperrors.ErrDepartmentNotFound, wantStatus: 404},
		{name: "exam not found", err: apperrors.ErrExamNotFound, wantStatus: 404},
		{name: "username exists", err: apperrors.ErrUsernameExists, wantStatus: 409},
		{name: "exam already exists", err: apperrors.ErrExamAlreadyExists, wantStatus: 409},
		{name: "already submitted", err: apperrors.ErrAlreadySubmitted, wantStatus: 409},
		{name: "validation failure", err: apperrors.NewValidationError("academicYear must be between 1 and 5"), wantStatus: 400},
		{name: "invalid doctor role", err: apperrors.ErrInvalidDoctorRole, wantStatus: 400},
		{name: "exam subject mismatch", err: apperrors.ErrExamSubjectMismatch, wantStatus: 400},
		{name: "unknown error", err: errors.New("connection reset"), wantStatus: 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

func TestHandleAPIError_CustomMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, apperrors.NewValidationError("duplicate answers for question IDs: 3"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "duplicate answers for question IDs: 3") {
		t.Errorf("body %q does not carry the custom message", body)
	}
}

func TestHandleValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationError(c, errors.New("Key: 'username' Error:required"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
