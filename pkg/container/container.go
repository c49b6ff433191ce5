package container

import (
	"context"
	"fmt"
	"time"

	"tsblog-backend/internal/config"
	"tsblog-backend/internal/infrastructure/cache"
	"tsblog-backend/internal/infrastructure/database"
	"tsblog-backend/internal/infrastructure/queue"
	"tsblog-backend/internal/infrastructure/storage"
	"tsblog-backend/pkg/jwt"
	"tsblog-backend/pkg/logger"

	"tsblog-backend/internal/domains/article"
	articleHandler "tsblog-backend/internal/domains/article/handler"
	articleRepo "tsblog-backend/internal/domains/article/repository"
	articleService "tsblog-backend/internal/domains/article/service"
	"tsblog-backend/internal/domains/author"
	authorHandler "tsblog-backend/internal/domains/author/handler"
	authorRepo "tsblog-backend/internal/domains/author/repository"
	authorService "tsblog-backend/internal/domains/author/service"
	"tsblog-backend/internal/domains/identity"
	identityHandler "tsblog-backend/internal/domains/identity/handler"
	identityRepo "tsblog-backend/internal/domains/identity/repository"
	identityService "tsblog-backend/internal/domains/identity/service"
	"tsblog-backend/internal/domains/tag"
	tagHandler "tsblog-backend/internal/domains/tag/handler"
	tagRepo "tsblog-backend/internal/domains/tag/repository"
	tagService "tsblog-backend/internal/domains/tag/service"
)

// Container is the root of the dependency graph. Everything in it is
// a singleton built once at startup; construction order follows the
// dependency direction (config, infrastructure, repositories,
// services, handlers).
type Container struct {
	Config     *config.Config
	IdentityDB *database.PostgresDB
	DomainDB   *database.PostgresDB
	Cache      cache.Cache
	Media      storage.MediaStore
	Queue      *queue.Client
	JWTManager *jwt.Manager

	IdentityRepo identity.Repository
	AuthorRepo   author.Repository
	ArticleRepo  article.Repository
	TagRepo      tag.Repository

	IdentityService identity.Service
	AuthorService   author.Service
	ArticleService  article.Service
	TagService      tag.Service

	IdentityHandler *identityHandler.IdentityHandler
	AuthorHandler   *authorHandler.AuthorHandler
	ArticleHandler  *articleHandler.ArticleHandler
	TagHandler      *tagHandler.TagHandler
}

// NewContainer builds the full dependency graph. A failure in any
// infrastructure component aborts startup; the application never runs
// half-wired.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The identity and domain stores are separate databases and get
	// separate pools; they never share a transaction.
	identityDB, err := database.Connect(ctx, cfg.IdentityDB)
	if err != nil {
		return nil, fmt.Errorf("connect identity database: %w", err)
	}
	c.IdentityDB = identityDB
	logger.Info("identity database connected")

	domainDB, err := database.Connect(ctx, cfg.DomainDB)
	if err != nil {
		return nil, fmt.Errorf("connect domain database: %w", err)
	}
	c.DomainDB = domainDB
	logger.Info("domain database connected")

	redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = redisCache
	logger.Info("redis connected")

	media, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("connect object storage: %w", err)
	}
	c.Media = media
	logger.Info("object storage ready")

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	c.IdentityRepo = identityRepo.NewPostgresRepository(identityDB.Pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(domainDB.Pool, c.Cache)
	c.ArticleRepo = articleRepo.NewPostgresRepository(domainDB.Pool)
	c.TagRepo = tagRepo.NewPostgresRepository(domainDB.Pool)

	c.IdentityService = identityService.NewIdentityService(c.IdentityRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.IdentityRepo, c.Media, c.Queue)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.AuthorRepo, c.Media, c.Queue)
	c.TagService = tagService.NewTagService(c.TagRepo)

	c.IdentityHandler = identityHandler.NewIdentityHandler(c.IdentityService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)

	return c, nil
}

// Cleanup releases every held connection. Safe to call on a partially
// built container.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}
	if redisCache, ok := c.Cache.(*cache.RedisCache); ok && redisCache != nil {
		if err := redisCache.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DomainDB != nil {
		c.DomainDB.Close()
	}
	if c.IdentityDB != nil {
		c.IdentityDB.Close()
	}
}
