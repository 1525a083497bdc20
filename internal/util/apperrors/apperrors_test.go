package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HTTPStatus_MapsCodesToStatuses(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"invalid argument", InvalidArg("bad input"), http.StatusBadRequest},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"already exists", AlreadyExists("duplicate"), http.StatusConflict},
		{"failed precondition", FailedPrecondition("full"), http.StatusConflict},
		{"forbidden", Forbidden("nope"), http.StatusForbidden},
		{"unauthenticated", Unauthenticated("no token"), http.StatusUnauthorized},
		{"internal", Internal("boom", errors.New("cause")), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, HTTPStatus(tt.err))
		})
	}
}

func Test_CodeOf_SurvivesWrapping(t *testing.T) {
	err := NotFound("workspace not found")
	wrapped := fmt.Errorf("loading workspace: %w", err)

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func Test_Wrap_KeepsCauseAccessible(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeInternal, "failed to save", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save")
	assert.Contains(t, err.Error(), "connection refused")
}
