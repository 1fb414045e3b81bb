package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestApiErr_ErrorAndFullError(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := NewDatabaseError("create", "project", cause)

	assert.Equal(t, "database query failed: Failed to create project", err.Error())
	assert.Equal(t, "database query failed: Failed to create project -> pq: relation does not exist", err.GetFullError())
	assert.ErrorIs(t, err, cause)

	nested := NewTransactionFailedError("project creation", err)
	assert.Equal(t, "transaction failed: Transaction failed during project creation -> database query failed: Failed to create project -> pq: relation does not exist", nested.GetFullError())
}

func TestApiErr_SentinelMatching(t *testing.T) {
	assert.ErrorIs(t, NewMissingRequiredFieldError("title"), ErrMissingRequiredField)
	assert.True(t, IsInvalidTokenError(NewInvalidTokenError(nil)))

	unique := NewDatabaseError("link", "project topic", errors.New("ERROR: duplicate key value (SQLSTATE 23505)"))
	wrapped := fmt.Errorf("handler: %w", NewTransactionFailedError("create project", unique))
	assert.ErrorIs(t, wrapped, ErrTransactionFailed)
	assert.True(t, IsUniqueConstraintViolationError(wrapped))
	assert.False(t, IsForeignKeyConstraintError(wrapped))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(wrapped))
}

func TestStatusCode_ForeignError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(BadRequest("nope")))
}

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name     string
		cause    error
		status   int
		sentinel error
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, ErrNotFound},
		{"duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "project_languages_pkey" (SQLSTATE 23505)`), http.StatusConflict, ErrUniqueConstraintViolation},
		{"foreign key", errors.New("ERROR: insert or update violates foreign key constraint (SQLSTATE 23503)"), http.StatusBadRequest, ErrForeignKeyConstraint},
		{"deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), http.StatusConflict, ErrDeadlock},
		{"connection", errors.New("failed to connect: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError, ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "project", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestNewLLMError(t *testing.T) {
	assert.True(t, IsRateLimitError(NewLLMError("Gemini", errors.New("googleapi: Error 429: Resource has been exhausted (e.g. check quota)"))))
	assert.ErrorIs(t, NewLLMError("Gemini", errors.New("model is overloaded")), ErrModelOverloaded)
	assert.ErrorIs(t, NewLLMError("Gemini", errors.New("response blocked by safety settings")), ErrContentPolicyViolation)
	assert.ErrorIs(t, NewLLMError("Gemini", errors.New("API key not valid")), ErrInvalidAPIKey)
	assert.True(t, IsServiceUnavailableError(NewLLMError("Gemini", errors.New("EOF"))))
}
