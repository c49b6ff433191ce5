package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tsblog-backend/internal/domains/article"
	"tsblog-backend/internal/shared/middleware"
	"tsblog-backend/internal/shared/response"
)

// ArticleHandler translates HTTP requests into article service calls.
type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(service article.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	identityID, ok := callerIdentity(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	var req article.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	op := h.service.Create(c.Request.Context(), identityID, req)
	response.FromOperation(c, op)
}

// Fetch handles GET /articles.
func (h *ArticleHandler) Fetch(c *gin.Context) {
	op := h.service.Fetch(c.Request.Context())
	response.FromOperation(c, op)
}

// FetchByID handles GET /articles/:id.
func (h *ArticleHandler) FetchByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	op := h.service.FetchByID(c.Request.Context(), id)
	response.FromOperation(c, op)
}

// FetchByAuthor handles GET /authors/:id/articles.
func (h *ArticleHandler) FetchByAuthor(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	op := h.service.FetchByAuthor(c.Request.Context(), authorID)
	response.FromOperation(c, op)
}

// Update handles PUT /articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	identityID, ok := callerIdentity(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req article.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	op := h.service.Update(c.Request.Context(), identityID, id, req)
	response.FromOperation(c, op)
}

// DeleteOwn handles DELETE /articles/:id.
func (h *ArticleHandler) DeleteOwn(c *gin.Context) {
	identityID, ok := callerIdentity(c)
	if !ok {
		response.Unauthorized(c, "missing authenticated user")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	op := h.service.DeleteOwn(c.Request.Context(), identityID, id)
	response.FromOperation(c, op)
}

// Delete handles DELETE /admin/articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
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
