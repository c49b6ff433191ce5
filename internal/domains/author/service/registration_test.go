package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsblog-backend/internal/domains/author"
	"tsblog-backend/internal/infrastructure/storage"
	"tsblog-backend/internal/shared/operation"
)

func validRegisterRequest(email string) author.RegisterRequest {
	return author.RegisterRequest{
		Title:     "Staff Writer",
		Email:     email,
		Phone:     "08031224455",
		FirstName: "Jane",
		LastName:  "Doe",
		Photo:     "aGVsbG8gd29ybGQ=",
		Password:  "a-long-enough-password",
	}
}

func newRegistrationFixture() (*fakeIdentityRepo, *fakeAuthorRepo, *fakeMediaStore, author.Service) {
	identities := newFakeIdentityRepo()
	authors := newFakeAuthorRepo()
	media := &fakeMediaStore{}
	svc := NewAuthorService(authors, identities, media, &fakeEnqueuer{})
	return identities, authors, media, svc
}

func TestRegisterCreatesPendingAuthor(t *testing.T) {
	identities, authors, media, svc := newRegistrationFixture()

	result := svc.Register(context.Background(), validRegisterRequest("jane@example.com"))

	require.True(t, result.Successful(), result.ErrorMessage)
	assert.Equal(t, http.StatusCreated, result.StatusCode)

	dto, ok := result.Result.(author.DTO)
	require.True(t, ok)
	assert.Equal(t, author.StatusPending, dto.Status)
	assert.Equal(t, "jane", dto.Username)
	assert.NotEmpty(t, dto.PhotoURL)

	ident, err := identities.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane", ident.Username)
	assert.NotEqual(t, "a-long-enough-password", ident.PasswordHash)

	stored, err := authors.FindByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, ident.ID, stored.IdentityID)
	require.Len(t, media.uploads, 1)
	assert.Empty(t, media.deleted)
}

func TestRegisterRejectsInvalidRequest(t *testing.T) {
	identities, authors, _, svc := newRegistrationFixture()

	req := validRegisterRequest("jane@example.com")
	req.Password = "short"

	result := svc.Register(context.Background(), req)

	assert.False(t, result.Successful())
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	assert.Equal(t, operation.TitleBadRequest, result.ErrorTitle)

	exists, _ := identities.Any(context.Background())
	assert.False(t, exists)
	assert.Empty(t, authors.authors)
}

func TestRegisterRollsBackIdentityOnClaimFailure(t *testing.T) {
	identities, authors, media, svc := newRegistrationFixture()
	identities.failClaims = errors.New("claim store unavailable")

	result := svc.Register(context.Background(), validRegisterRequest("jane@example.com"))

	assert.False(t, result.Successful())
	assert.Equal(t, operation.TitleSystemError, result.ErrorTitle)

	_, err := identities.FindByEmail(context.Background(), "jane@example.com")
	assert.Error(t, err)
	assert.Empty(t, authors.authors)
	// The failure happened before the upload step ran.
	assert.Empty(t, media.uploads)
}

func TestRegisterRollsBackIdentityOnUploadFailure(t *testing.T) {
	identities, authors, media, svc := newRegistrationFixture()
	media.failUpload = errors.New("object store unreachable")

	result := svc.Register(context.Background(), validRegisterRequest("jane@example.com"))

	assert.False(t, result.Successful())
	assert.Equal(t, operation.TitleSystemError, result.ErrorTitle)
	assert.Contains(t, result.ErrorMessage, "photo upload failed")

	_, err := identities.FindByEmail(context.Background(), "jane@example.com")
	assert.Error(t, err)
	assert.Empty(t, authors.authors)
}

func TestRegisterCompensatesPhotoOnDomainFailure(t *testing.T) {
	identities, authors, media, svc := newRegistrationFixture()
	authors.failCreate = errors.New("domain store unavailable")

	result := svc.Register(context.Background(), validRegisterRequest("jane@example.com"))

	assert.False(t, result.Successful())
	assert.Equal(t, operation.TitleSystemError, result.ErrorTitle)

	// The identity transaction rolled back and the uploaded photo was
	// deleted, so nothing from the failed registration survives.
	_, err := identities.FindByEmail(context.Background(), "jane@example.com")
	assert.Error(t, err)
	require.Len(t, media.uploads, 1)
	require.Len(t, media.deleted, 1)
	assert.Equal(t, media.uploads[0].ID, media.deleted[0])
}

func TestRegisterCleansUpEverythingOnCommitFailure(t *testing.T) {
	identities, authors, media, svc := newRegistrationFixture()
	identities.failCommit = errors.New("identity store connection lost")

	result := svc.Register(context.Background(), validRegisterRequest("jane@example.com"))

	assert.False(t, result.Successful())
	assert.Equal(t, operation.TitleSystemError, result.ErrorTitle)

	// A failed commit discards the identity; the author row and the
	// photo written on its behalf must not outlive it.
	_, err := identities.FindByEmail(context.Background(), "jane@example.com")
	assert.Error(t, err)
	assert.Empty(t, authors.authors)
	require.Len(t, media.uploads, 1)
	require.Len(t, media.deleted, 1)
	assert.Equal(t, media.uploads[0].ID, media.deleted[0])
}

func TestRegisterResolvesUsernameCollision(t *testing.T) {
	_, _, _, svc := newRegistrationFixture()

	first := svc.Register(context.Background(), validRegisterRequest("jane@first.com"))
	require.True(t, first.Successful(), first.ErrorMessage)

	second := svc.Register(context.Background(), validRegisterRequest("jane@second.com"))
	require.True(t, second.Successful(), second.ErrorMessage)

	firstDTO := first.Result.(author.DTO)
	secondDTO := second.Result.(author.DTO)

	assert.Equal(t, "jane", firstDTO.Username)
	assert.NotEqual(t, firstDTO.Username, secondDTO.Username)
	assert.True(t, strings.HasPrefix(secondDTO.Username, "jane"))
	// The collision suffix is the six trailing digits of a timestamp.
	assert.Len(t, secondDTO.Username, len("jane")+6)
}

func TestRegisterUploadsPhotoWithAuthorPreset(t *testing.T) {
	_, _, media, svc := newRegistrationFixture()

	result := svc.Register(context.Background(), validRegisterRequest("jane@example.com"))
	require.True(t, result.Successful(), result.ErrorMessage)

	require.Len(t, media.uploads, 1)
	assert.True(t, strings.HasPrefix(media.uploads[0].ID, storage.PresetAuthorPhoto+"/"))
}
