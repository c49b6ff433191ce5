package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"tsblog-backend/internal/domains/author"
	"tsblog-backend/internal/domains/identity"
	"tsblog-backend/internal/infrastructure/queue"
	"tsblog-backend/internal/infrastructure/storage"
	"tsblog-backend/internal/shared/operation"
	"tsblog-backend/pkg/logger"
)

// authorService owns the author lifecycle: the registration saga
// (registration.go), the approval transition and the profile CRUD
// around it.
type authorService struct {
	authors    author.Repository
	identities identity.Repository
	media      storage.MediaStore
	tasks      queue.Enqueuer
}

func NewAuthorService(
	authors author.Repository,
	identities identity.Repository,
	media storage.MediaStore,
	tasks queue.Enqueuer,
) author.Service {
	return &authorService{
		authors:    authors,
		identities: identities,
		media:      media,
		tasks:      tasks,
	}
}

func (s *authorService) Fetch(ctx context.Context) operation.Result {
	authors, err := s.authors.FetchAll(ctx)
	if err != nil {
		logger.Error("failed to fetch authors", err)
		return operation.SystemError(err.Error())
	}

	dtos := make([]author.DTO, 0, len(authors))
	for i := range authors {
		dtos = append(dtos, authors[i].ToDTO())
	}
	return operation.Ok(http.StatusOK, dtos)
}

func (s *authorService) FetchByID(ctx context.Context, id uuid.UUID) operation.Result {
	a, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}

	articles, err := s.authors.FetchArticles(ctx, a.ID)
	if err != nil {
		logger.Error("failed to fetch author articles", err)
		return operation.SystemError(err.Error())
	}

	dto := a.ToDTO()
	dto.Articles = articles
	return operation.Ok(http.StatusOK, dto)
}

func (s *authorService) FetchSelf(ctx context.Context, identityID uuid.UUID) operation.Result {
	a, err := s.authors.FindByIdentity(ctx, identityID)
	if err != nil {
		return s.lookupFailure(err)
	}

	articles, err := s.authors.FetchArticles(ctx, a.ID)
	if err != nil {
		logger.Error("failed to fetch author articles", err)
		return operation.SystemError(err.Error())
	}

	dto := a.ToDTO()
	dto.Articles = articles
	return operation.Ok(http.StatusOK, dto)
}

func (s *authorService) Update(ctx context.Context, identityID uuid.UUID, req author.UpdateRequest) operation.Result {
	if err := req.Validate(); err != nil {
		return operation.BadRequest(err.Error())
	}

	a, err := s.authors.FindByIdentity(ctx, identityID)
	if err != nil {
		return s.lookupFailure(err)
	}

	if req.Title != "" {
		a.Title = req.Title
	}
	if req.FirstName != "" {
		a.FirstName = req.FirstName
	}
	if req.LastName != "" {
		a.LastName = req.LastName
	}

	if req.Photo != "" {
		ref, err := s.media.Upload(ctx, req.Photo, storage.PresetAuthorPhoto)
		if err != nil {
			logger.Error("failed to upload replacement photo", err)
			return operation.SystemError(err.Error())
		}

		// The old object is removed in the background; the request
		// does not wait on object storage.
		s.tasks.EnqueueMediaDelete(ctx, a.PhotoID)

		a.PhotoID = ref.ID
		a.PhotoURL = ref.URL
	}

	if err := s.authors.Update(ctx, a); err != nil {
		logger.Error("failed to update author", err)
		return operation.SystemError(err.Error())
	}

	return operation.Ok(http.StatusOK, a.ToDTO())
}

// UpdateStatus is the approval transition. The target is checked with
// the shared ValidTarget rule before anything is written, so an
// invalid target never mutates the stored status.
func (s *authorService) UpdateStatus(ctx context.Context, id uuid.UUID, req author.ApprovalRequest) operation.Result {
	a, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}

	if !req.Status.ValidTarget() {
		return operation.BadRequest(author.ErrInvalidStatus.Error())
	}

	if err := s.authors.UpdateStatus(ctx, a.ID, req.Status); err != nil {
		logger.Error("failed to update author status", err)
		return operation.SystemError(err.Error())
	}

	return operation.NoContent()
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) operation.Result {
	a, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}

	// Queue the photo cleanup before the row goes away; the task is
	// best-effort either way.
	s.tasks.EnqueueMediaDelete(ctx, a.PhotoID)

	if err := s.authors.Delete(ctx, a.ID); err != nil {
		logger.Error("failed to delete author", err)
		return operation.SystemError(err.Error())
	}

	return operation.NoContent()
}

func (s *authorService) lookupFailure(err error) operation.Result {
	if errors.Is(err, author.ErrAuthorNotFound) {
		return operation.NotFound(author.ErrAuthorNotFound.Error())
	}
	logger.Error("author lookup failed", err)
	return operation.SystemError(err.Error())
}
