package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"tsblog-backend/internal/domains/tag"
	"tsblog-backend/internal/shared/operation"
	"tsblog-backend/pkg/logger"
)

type tagService struct {
	tags tag.Repository
}

func NewTagService(tags tag.Repository) tag.Service {
	return &tagService{tags: tags}
}

func (s *tagService) Create(ctx context.Context, req tag.Request) operation.Result {
	if err := req.Validate(); err != nil {
		return operation.BadRequest(err.Error())
	}

	created := &tag.Tag{
		ID:    uuid.New(),
		Title: req.Title,
	}
	if err := s.tags.Create(ctx, created); err != nil {
		if errors.Is(err, tag.ErrTitleTaken) {
			return operation.BadRequest(err.Error())
		}
		logger.Error("failed to create tag", err)
		return operation.SystemError(err.Error())
	}

	return operation.Created(created)
}

func (s *tagService) Fetch(ctx context.Context) operation.Result {
	tags, err := s.tags.FetchAll(ctx)
	if err != nil {
		logger.Error("failed to fetch tags", err)
		return operation.SystemError(err.Error())
	}
	return operation.Ok(http.StatusOK, tags)
}

func (s *tagService) FetchByID(ctx context.Context, id uuid.UUID) operation.Result {
	t, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}
	return operation.Ok(http.StatusOK, t)
}

func (s *tagService) Update(ctx context.Context, id uuid.UUID, req tag.Request) operation.Result {
	if err := req.Validate(); err != nil {
		return operation.BadRequest(err.Error())
	}

	t, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err)
	}

	t.Title = req.Title
	if err := s.tags.Update(ctx, t); err != nil {
		if errors.Is(err, tag.ErrTitleTaken) {
			return operation.BadRequest(err.Error())
		}
		logger.Error("failed to update tag", err)
		return operation.SystemError(err.Error())
	}

	return operation.Ok(http.StatusOK, t)
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) operation.Result {
	if err := s.tags.Delete(ctx, id); err != nil {
		return s.lookupFailure(err)
	}
	return operation.NoContent()
}

func (s *tagService) lookupFailure(err error) operation.Result {
	if errors.Is(err, tag.ErrTagNotFound) {
		return operation.NotFound(tag.ErrTagNotFound.Error())
	}
	logger.Error("tag lookup failed", err)
	return operation.SystemError(err.Error())
}
