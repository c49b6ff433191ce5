package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tsblog-backend/internal/shared/operation"
)

// Response is the JSON body of every API reply.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error mirrors the failed operation envelope: title plus
// developer-oriented detail.
type Error struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Success writes a success body with the given status.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// Problem writes an error body.
func Problem(c *gin.Context, statusCode int, title, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Title:   title,
			Message: message,
		},
	})
}

// FromOperation applies the single envelope-to-HTTP mapping rule:
// failed envelope becomes a problem response carrying the embedded
// status and message, successful envelope becomes a success response
// carrying the payload. A 204 carries no body at all.
func FromOperation(c *gin.Context, op operation.Result) {
	if !op.Successful() {
		Problem(c, op.StatusCode, op.ErrorTitle, op.ErrorMessage)
		return
	}
	if op.StatusCode == http.StatusNoContent {
		c.Status(op.StatusCode)
		return
	}
	Success(c, op.StatusCode, op.Result)
}

func BadRequest(c *gin.Context, message string) {
	Problem(c, 400, operation.TitleBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Problem(c, 401, operation.TitleUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Problem(c, 403, "FORBIDDEN", message)
}
