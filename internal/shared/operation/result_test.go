package operation

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessful_DerivedFromErrorTitle(t *testing.T) {
	assert.True(t, Ok(http.StatusOK, "payload").Successful())
	assert.True(t, NoContent().Successful())
	assert.False(t, BadRequest("missing field").Successful())
	assert.False(t, SystemError("store failure").Successful())
}

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		status int
		title  string
	}{
		{"created", Created("x"), http.StatusCreated, ""},
		{"no content", NoContent(), http.StatusNoContent, ""},
		{"bad request", BadRequest("m"), http.StatusBadRequest, TitleBadRequest},
		{"unauthorized", Unauthorized("m"), http.StatusUnauthorized, TitleUnauthorized},
		{"not found", NotFound("m"), http.StatusNotFound, TitleNotFound},
		{"system error", SystemError("m"), http.StatusInternalServerError, TitleSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.result.StatusCode)
			assert.Equal(t, tt.title, tt.result.ErrorTitle)
		})
	}
}
