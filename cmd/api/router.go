package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tsblog-backend/internal/shared/authz"
	"tsblog-backend/internal/shared/middleware"
	"tsblog-backend/pkg/container"
)

// SetupRouter wires the route table. Public reads stay open; writes
// require a verified bearer token, and the author/admin groups add a
// policy evaluation on top.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.Auth(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		v1.POST("/register", c.AuthorHandler.Register)
		v1.POST("/login", c.IdentityHandler.Login)

		setupAuthorRoutes(v1, c, auth)
		setupArticleRoutes(v1, c, auth)
		setupTagRoutes(v1, c, auth)
		setupAdminRoutes(v1, c, auth)
	}

	return router
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.Fetch)
		authors.GET("/me", auth, c.AuthorHandler.FetchSelf)
		authors.PUT("/me", auth, middleware.RequirePolicy(authz.PolicyAuthor), c.AuthorHandler.Update)
		authors.GET("/:id", c.AuthorHandler.FetchByID)
		authors.GET("/:id/articles", c.ArticleHandler.FetchByAuthor)
	}
}

func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	articles := v1.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.Fetch)
		articles.GET("/:id", c.ArticleHandler.FetchByID)

		// Creation carries its own second gate: the service checks the
		// author's approval state on top of the policy.
		articles.POST("", auth, middleware.RequirePolicy(authz.PolicyAuthor), c.ArticleHandler.Create)
		articles.PUT("/:id", auth, middleware.RequirePolicy(authz.PolicyAuthor), c.ArticleHandler.Update)
		articles.DELETE("/:id", auth, middleware.RequirePolicy(authz.PolicyAuthor), c.ArticleHandler.DeleteOwn)
	}
}

func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	tags := v1.Group("/tags")
	{
		tags.GET("", c.TagHandler.Fetch)
		tags.GET("/:id", c.TagHandler.FetchByID)

		tags.POST("", auth, middleware.RequirePolicy(authz.PolicyAdmin), c.TagHandler.Create)
		tags.PUT("/:id", auth, middleware.RequirePolicy(authz.PolicyAdmin), c.TagHandler.Update)
		tags.DELETE("/:id", auth, middleware.RequirePolicy(authz.PolicyAdmin), c.TagHandler.Delete)
	}
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	admin := v1.Group("/admin")
	admin.Use(auth, middleware.RequirePolicy(authz.PolicyAdmin))
	{
		admin.PUT("/authors/:id/status", c.AuthorHandler.UpdateStatus)
		admin.DELETE("/authors/:id", c.AuthorHandler.Delete)
		admin.DELETE("/articles/:id", c.ArticleHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		}

		if err := c.IdentityDB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "unhealthy"
			health["identity_db"] = err.Error()
		}
		if err := c.DomainDB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "unhealthy"
			health["domain_db"] = err.Error()
		}

		ctx.JSON(status, health)
	}
}
