package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tsblog-backend/internal/domains/tag"
	"tsblog-backend/internal/shared/response"
)

// TagHandler translates HTTP requests into tag service calls.
type TagHandler struct {
	service tag.Service
}

func NewTagHandler(service tag.Service) *TagHandler {
	return &TagHandler{service: service}
}

// Create handles POST /tags.
func (h *TagHandler) Create(c *gin.Context) {
	var req tag.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	op := h.service.Create(c.Request.Context(), req)
	response.FromOperation(c, op)
}

// Fetch handles GET /tags.
func (h *TagHandler) Fetch(c *gin.Context) {
	op := h.service.Fetch(c.Request.Context())
	response.FromOperation(c, op)
}

// FetchByID handles GET /tags/:id.
func (h *TagHandler) FetchByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	op := h.service.FetchByID(c.Request.Context(), id)
	response.FromOperation(c, op)
}

// Update handles PUT /tags/:id.
func (h *TagHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	var req tag.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	op := h.service.Update(c.Request.Context(), id, req)
	response.FromOperation(c, op)
}

// Delete handles DELETE /tags/:id.
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid tag id")
		return
	}

	op := h.service.Delete(c.Request.Context(), id)
	response.FromOperation(c, op)
}
