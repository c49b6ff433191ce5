package operation

import "net/http"

// Error titles carried by failed results. The boundary layer renders
// them verbatim in the problem response.
const (
	TitleBadRequest   = "BAD REQUEST"
	TitleUnauthorized = "UNAUTHORIZED"
	TitleNotFound     = "NOT FOUND"
	TitleSystemError  = "SYSTEM ERROR"
)

// Result is the envelope every management operation returns. Services
// never let faults escape: they fold them into a Result and the HTTP
// layer applies a single mapping rule on top.
type Result struct {
	// Result is the success payload, nil on failure.
	Result interface{}

	// StatusCode is the HTTP status the boundary layer should use.
	StatusCode int

	// ErrorTitle classifies the failure; empty means success.
	ErrorTitle string

	// ErrorMessage is a developer-oriented detail, safe to log.
	ErrorMessage string
}

// Successful reports whether the operation carried no error.
func (r Result) Successful() bool {
	return r.ErrorTitle == ""
}

// Ok builds a success result with the given status and payload.
func Ok(statusCode int, payload interface{}) Result {
	return Result{StatusCode: statusCode, Result: payload}
}

// Created builds a 201 success result.
func Created(payload interface{}) Result {
	return Ok(http.StatusCreated, payload)
}

// NoContent builds a 204 success result.
func NoContent() Result {
	return Result{StatusCode: http.StatusNoContent}
}

// BadRequest builds a 400 failure result.
func BadRequest(message string) Result {
	return Result{
		StatusCode:   http.StatusBadRequest,
		ErrorTitle:   TitleBadRequest,
		ErrorMessage: message,
	}
}

// Unauthorized builds a 401 failure result.
func Unauthorized(message string) Result {
	return Result{
		StatusCode:   http.StatusUnauthorized,
		ErrorTitle:   TitleUnauthorized,
		ErrorMessage: message,
	}
}

// NotFound builds a 404 failure result.
func NotFound(message string) Result {
	return Result{
		StatusCode:   http.StatusNotFound,
		ErrorTitle:   TitleNotFound,
		ErrorMessage: message,
	}
}

// SystemError builds a 500 failure result.
func SystemError(message string) Result {
	return Result{
		StatusCode:   http.StatusInternalServerError,
		ErrorTitle:   TitleSystemError,
		ErrorMessage: message,
	}
}
