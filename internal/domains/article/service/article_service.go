package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"tsblog-backend/internal/domains/article"
	"tsblog-backend/internal/domains/author"
	"tsblog-backend/internal/infrastructure/queue"
	"tsblog-backend/internal/infrastructure/storage"
	"tsblog-backend/internal/shared/operation"
	"tsblog-backend/pkg/logger"
)

// articleService owns the article lifecycle. Publication is gated on
// the owning author's approval state, read through the author store.
type articleService struct {
	articles article.Repository
	authors  author.Repository
	media    storage.MediaStore
	tasks    queue.Enqueuer
}

func NewArticleService(
	articles article.Repository,
	authors author.Repository,
	media storage.MediaStore,
	tasks queue.Enqueuer,
) article.Service {
	return &articleService{
		articles: articles,
		authors:  authors,
		media:    media,
		tasks:    tasks,
	}
}

// Create publishes an article. The gate reads the author's current
// status: only an approved author may publish, anything else is
// unauthorized regardless of how the request authenticated.
func (s *articleService) Create(ctx context.Context, identityID uuid.UUID, req article.CreateRequest) operation.Result {
	if err := req.Validate(); err != nil {
		return operation.BadRequest(err.Error())
	}

	owner, err := s.authors.FindByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return operation.Unauthorized(author.ErrNotApproved.Error())
		}
		logger.Error("author lookup failed", err)
		return operation.SystemError(err.Error())
	}

	if !owner.Status.CanPublish() {
		return operation.Unauthorized(author.ErrNotApproved.Error())
	}

	caption, err := s.media.Upload(ctx, req.Caption, storage.PresetArticleCaption)
	if err != nil {
		logger.Error("failed to upload caption image", err)
		return operation.SystemError(err.Error())
	}

	created := &article.Article{
		ID:          uuid.New(),
		AuthorID:    owner.ID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		CaptionID:   caption.ID,
		CaptionURL:  caption.URL,
		Tags:        req.Tags,
	}
	if err := s.articles.Create(ctx, created); err != nil {
		logger.Error("failed to create article", err)
		// The row never landed, so the uploaded caption would be
		// orphaned; remove it before reporting the failure.
		_ = s.media.Delete(ctx, caption.ID)
		return operation.SystemError(err.Error())
	}

	return operation.Created(created.ToDTO(owner.FirstName+" "+owner.LastName, owner.PhotoURL))
}

func (s *articleService) Fetch(ctx context.Context) operation.Result {
	articles, err := s.articles.FetchAll(ctx)
	if err != nil {
		logger.Error("failed to fetch articles", err)
		return operation.SystemError(err.Error())
	}
	return operation.Ok(http.StatusOK, s.project(ctx, articles))
}

func (s *articleService) FetchByID(ctx context.Context, id uuid.UUID) operation.Result {
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}

	name, photo := s.ownerDisplay(ctx, a.AuthorID)
	return operation.Ok(http.StatusOK, a.ToDTO(name, photo))
}

func (s *articleService) FetchByAuthor(ctx context.Context, authorID uuid.UUID) operation.Result {
	articles, err := s.articles.FetchByAuthor(ctx, authorID)
	if err != nil {
		logger.Error("failed to fetch author's articles", err)
		return operation.SystemError(err.Error())
	}
	return operation.Ok(http.StatusOK, s.project(ctx, articles))
}

func (s *articleService) Update(ctx context.Context, identityID uuid.UUID, id uuid.UUID, req article.UpdateRequest) operation.Result {
	if err := req.Validate(); err != nil {
		return operation.BadRequest(err.Error())
	}

	owner, err := s.authors.FindByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return operation.Unauthorized(author.ErrNotApproved.Error())
		}
		logger.Error("author lookup failed", err)
		return operation.SystemError(err.Error())
	}

	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}
	if a.AuthorID != owner.ID {
		return operation.Unauthorized("the article belongs to another author")
	}

	if req.Title != "" {
		a.Title = req.Title
	}
	if req.Description != "" {
		a.Description = req.Description
	}
	if req.Content != "" {
		a.Content = req.Content
	}
	if req.Tags != nil {
		a.Tags = req.Tags
	}

	if req.Caption != "" {
		ref, err := s.media.Upload(ctx, req.Caption, storage.PresetArticleCaption)
		if err != nil {
			logger.Error("failed to upload replacement caption", err)
			return operation.SystemError(err.Error())
		}

		s.tasks.EnqueueMediaDelete(ctx, a.CaptionID)

		a.CaptionID = ref.ID
		a.CaptionURL = ref.URL
	}

	if err := s.articles.Update(ctx, a); err != nil {
		logger.Error("failed to update article", err)
		return operation.SystemError(err.Error())
	}

	return operation.Ok(http.StatusOK, a.ToDTO(owner.FirstName+" "+owner.LastName, owner.PhotoURL))
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) operation.Result {
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}
	return s.remove(ctx, a)
}

func (s *articleService) DeleteOwn(ctx context.Context, identityID uuid.UUID, id uuid.UUID) operation.Result {
	owner, err := s.authors.FindByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return operation.Unauthorized(author.ErrNotApproved.Error())
		}
		logger.Error("author lookup failed", err)
		return operation.SystemError(err.Error())
	}

	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}
	if a.AuthorID != owner.ID {
		return operation.Unauthorized("the article belongs to another author")
	}

	return s.remove(ctx, a)
}

func (s *articleService) remove(ctx context.Context, a *article.Article) operation.Result {
	s.tasks.EnqueueMediaDelete(ctx, a.CaptionID)

	if err := s.articles.Delete(ctx, a.ID); err != nil {
		logger.Error("failed to delete article", err)
		return operation.SystemError(err.Error())
	}

	return operation.NoContent()
}

func (s *articleService) project(ctx context.Context, articles []article.Article) []article.DTO {
	dtos := make([]article.DTO, 0, len(articles))
	for i := range articles {
		name, photo := s.ownerDisplay(ctx, articles[i].AuthorID)
		dtos = append(dtos, articles[i].ToDTO(name, photo))
	}
	return dtos
}

// ownerDisplay resolves the author's display fields; the author store
// caches these lookups so the per-article cost stays low. A missing
// author degrades to empty display fields rather than failing the
// whole fetch.
func (s *articleService) ownerDisplay(ctx context.Context, authorID uuid.UUID) (string, string) {
	owner, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		return "", ""
	}
	return owner.FirstName + " " + owner.LastName, owner.PhotoURL
}

func (s *articleService) lookupFailure(err error) operation.Result {
	if errors.Is(err, article.ErrArticleNotFound) {
		return operation.NotFound(article.ErrArticleNotFound.Error())
	}
	logger.Error("article lookup failed", err)
	return operation.SystemError(err.Error())
}
