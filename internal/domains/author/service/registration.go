package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tsblog-backend/internal/domains/author"
	"tsblog-backend/internal/domains/identity"
	"tsblog-backend/internal/infrastructure/storage"
	"tsblog-backend/internal/shared/authz"
	"tsblog-backend/internal/shared/operation"
	"tsblog-backend/pkg/logger"
	"tsblog-backend/pkg/saga"
)

const bcryptCost = 12

// maxUsernameAttempts bounds the collision-suffix loop. In practice a
// single suffix resolves the collision; the bound only guards against
// a pathological store.
const maxUsernameAttempts = 10

// Register performs author registration as one logical transaction
// spanning the identity store, the media store and the domain store.
// Only the identity store is truly transactional; the other two are
// compensated manually, as an explicit saga:
//
//	create identity   -> undone by the transaction rollback
//	attach claims     -> undone by the transaction rollback
//	upload photo      -> compensated with a best-effort media delete
//	create author row -> final step, nothing to compensate
//
// Any failure after the identity was created rolls the identity
// transaction back, so a half-registered principal never survives.
func (s *authorService) Register(ctx context.Context, req author.RegisterRequest) operation.Result {
	// The HTTP layer validates first; double-checking here keeps the
	// coordinator safe when invoked from other entry points.
	if err := req.Validate(); err != nil {
		return operation.BadRequest(err.Error())
	}

	tx, err := s.identities.Begin(ctx)
	if err != nil {
		logger.Error("failed to begin identity transaction", err)
		return operation.SystemError(err.Error())
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("failed to roll back identity transaction", rbErr)
			}
		}
	}()

	username, err := s.composeUsername(ctx, tx, req.Email)
	if err != nil {
		logger.Error("failed to compose username", err)
		return operation.SystemError(err.Error())
	}

	var (
		ident   *identity.Identity
		photo   storage.MediaRef
		created *author.Author
		failure operation.Result
	)

	registration := saga.New().
		AddStep(saga.Step{
			Name: "create-identity",
			Run: func(ctx context.Context) error {
				hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
				if err != nil {
					failure = operation.SystemError(fmt.Sprintf("hash password: %v", err))
					return err
				}

				ident = &identity.Identity{
					ID:           uuid.New(),
					Username:     username,
					Email:        req.Email,
					Phone:        req.Phone,
					FirstName:    req.FirstName,
					LastName:     req.LastName,
					Scope:        authz.ScopeAuthor,
					PasswordHash: string(hash),
				}
				if err := tx.CreateIdentity(ctx, ident); err != nil {
					// Nothing persisted elsewhere yet: a client error,
					// no compensation needed.
					failure = operation.BadRequest(err.Error())
					return err
				}
				return nil
			},
		}).
		AddStep(saga.Step{
			Name: "attach-claims",
			Run: func(ctx context.Context) error {
				claims := []identity.Claim{
					{Type: "name", Value: ident.Username},
					{Type: "email", Value: ident.Email},
					{Type: authz.ClaimScope, Value: authz.ScopeAuthor},
				}
				if err := tx.AttachClaims(ctx, ident.ID, claims); err != nil {
					failure = operation.SystemError(err.Error())
					return err
				}
				return nil
			},
		}).
		AddStep(saga.Step{
			Name: "upload-photo",
			Run: func(ctx context.Context) error {
				ref, err := s.media.Upload(ctx, req.Photo, storage.PresetAuthorPhoto)
				if err != nil {
					failure = operation.SystemError(fmt.Sprintf("photo upload failed: %v", err))
					return err
				}
				photo = ref
				return nil
			},
			// The media store has no transaction; if a later step
			// fails the uploaded object is deleted best-effort so it
			// is not orphaned.
			Compensate: func(ctx context.Context) error {
				return s.media.Delete(ctx, photo.ID)
			},
		}).
		AddStep(saga.Step{
			Name: "create-author",
			Run: func(ctx context.Context) error {
				created = &author.Author{
					ID:         uuid.New(),
					IdentityID: ident.ID,
					Title:      req.Title,
					Username:   ident.Username,
					Email:      ident.Email,
					Phone:      ident.Phone,
					FirstName:  req.FirstName,
					LastName:   req.LastName,
					PhotoID:    photo.ID,
					PhotoURL:   photo.URL,
					Status:     author.StatusPending,
				}
				if err := s.authors.Create(ctx, created); err != nil {
					failure = operation.SystemError(err.Error())
					return err
				}
				return nil
			},
		})

	if err := registration.Execute(ctx); err != nil {
		logger.Error("author registration failed", err)
		if failure.Successful() {
			// A step failed without classifying itself.
			failure = operation.SystemError(err.Error())
		}
		return failure
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("failed to commit identity transaction", err)
		// A failed commit discards the identity, so the photo and the
		// domain row written after it must go too; neither may survive
		// pointing at a principal that never existed.
		if delErr := s.authors.Delete(ctx, created.ID); delErr != nil {
			logger.Error("failed to remove author row after commit failure", delErr)
		}
		_ = s.media.Delete(ctx, photo.ID)
		return operation.SystemError(err.Error())
	}
	committed = true

	return operation.Created(created.ToDTO())
}

// composeUsername derives a username from the email local-part. On a
// collision a short numeric suffix taken from the current time is
// appended and the check repeats, bounded by maxUsernameAttempts.
// Concurrent registrations may still race past this check; the
// store's uniqueness constraint is the final arbiter.
func (s *authorService) composeUsername(ctx context.Context, tx identity.Tx, email string) (string, error) {
	base := email
	if at := strings.Index(email, "@"); at > 0 {
		base = email[:at]
	}

	name := base
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		exists, err := tx.UsernameExists(ctx, name)
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}
		if !exists {
			return name, nil
		}

		nanos := strconv.FormatInt(time.Now().UnixNano(), 10)
		name = base + nanos[len(nanos)-6:]
	}

	return "", fmt.Errorf("could not derive a unique username for %q", base)
}
