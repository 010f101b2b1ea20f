package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := DatabaseError("failed to list articles", cause, nil)

	assert.Contains(t, err.Error(), "DATABASE_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestAppError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation maps to 400", ValidationError("bad input", nil), http.StatusBadRequest},
		{"forbidden maps to 403", ForbiddenError("cannot delete default list", nil), http.StatusForbidden},
		{"not found maps to 404", NotFoundError("no such list", nil), http.StatusNotFound},
		{"conflict maps to 409", ConflictError("slug already taken", nil), http.StatusConflict},
		{"database maps to 500", DatabaseError("boom", nil, nil), http.StatusInternalServerError},
		{"unknown maps to 500", UnknownError("boom", nil, nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}
