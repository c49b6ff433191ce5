package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tsblog-backend/internal/domains/author"
	"tsblog-backend/internal/shared/middleware"
	"tsblog-backend/internal/shared/response"
)

// AuthorHandler translates HTTP requests into author service calls.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// Register handles POST /register.
func (h *AuthorHandler) Register(c *gin.Context) {
	var req author.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	op := h.service.Register(c.Request.Context(), req)
	response.FromOperation(c, op)
}

// Fetch handles GET /authors.
func (h *AuthorHandler) Fetch(c *gin.Context) {
	op := h.service.Fetch(c.Request.Context())
	response.FromOperation(c, op)
}

// FetchByID handles GET /authors/:id.
func (h *AuthorHandler) FetchByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	op := h.service.FetchByID(c.Request.Context(), id)
	response.FromOperation(c, op)
}

// FetchSelf handles GET /authors/me.
func (h *AuthorHandler) FetchSelf(c *gin.Context) {
	identityID, ok := callerIdentity(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	op := h.service.FetchSelf(c.Request.Context(), identityID)
	response.FromOperation(c, op)
}

// Update handles PUT /authors/me.
func (h *AuthorHandler) Update(c *gin.Context) {
	identityID, ok := callerIdentity(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	var req author.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	op := h.service.Update(c.Request.Context(), identityID, req)
	response.FromOperation(c, op)
}

// UpdateStatus handles PUT /admin/authors/:id/status.
func (h *AuthorHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	var req author.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	op := h.service.UpdateStatus(c.Request.Context(), id, req)
	response.FromOperation(c, op)
}

// Delete handles DELETE /admin/authors/:id.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	op := h.service.Delete(c.Request.Context(), id)
	response.FromOperation(c, op)
}

func callerIdentity(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	value, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
