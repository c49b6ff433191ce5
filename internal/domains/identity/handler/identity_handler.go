package handler

import (
	"github.com/gin-gonic/gin"

	"tsblog-backend/internal/domains/identity"
	"tsblog-backend/internal/shared/response"
)

// IdentityHandler translates HTTP requests into identity service
// calls and the operation envelope back into HTTP.
type IdentityHandler struct {
	service identity.Service
}

func NewIdentityHandler(service identity.Service) *IdentityHandler {
	return &IdentityHandler{service: service}
}

// Login handles POST /login.
func (h *IdentityHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	op := h.service.Login(c.Request.Context(), req)
	response.FromOperation(c, op)
}
