package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsblog-backend/internal/domains/author"
	"tsblog-backend/internal/shared/operation"
)

func seedAuthor(t *testing.T, authors *fakeAuthorRepo, status author.Status) *author.Author {
	t.Helper()

	a := &author.Author{
		ID:         uuid.New(),
		IdentityID: uuid.New(),
		Title:      "Staff Writer",
		Username:   "jane",
		Email:      "jane@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		PhotoID:    "author-photo/seed",
		PhotoURL:   "http://media.local/author-photo/seed",
		Status:     status,
	}
	require.NoError(t, authors.Create(context.Background(), a))
	return a
}

func TestUpdateStatusApproves(t *testing.T) {
	authors := newFakeAuthorRepo()
	svc := NewAuthorService(authors, newFakeIdentityRepo(), &fakeMediaStore{}, &fakeEnqueuer{})
	a := seedAuthor(t, authors, author.StatusPending)

	result := svc.UpdateStatus(context.Background(), a.ID, author.ApprovalRequest{Status: author.StatusApproved})

	require.True(t, result.Successful(), result.ErrorMessage)
	assert.Equal(t, http.StatusNoContent, result.StatusCode)

	stored, err := authors.FindByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, author.StatusApproved, stored.Status)
}

func TestUpdateStatusIsIdempotent(t *testing.T) {
	authors := newFakeAuthorRepo()
	svc := NewAuthorService(authors, newFakeIdentityRepo(), &fakeMediaStore{}, &fakeEnqueuer{})
	a := seedAuthor(t, authors, author.StatusApproved)

	result := svc.UpdateStatus(context.Background(), a.ID, author.ApprovalRequest{Status: author.StatusApproved})

	require.True(t, result.Successful(), result.ErrorMessage)
	stored, err := authors.FindByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, author.StatusApproved, stored.Status)
}

func TestUpdateStatusRejectsInvalidTarget(t *testing.T) {
	targets := []author.Status{
		author.StatusPending,
		author.Status("SUSPENDED"),
		author.Status(""),
	}

	for _, target := range targets {
		t.Run(string(target), func(t *testing.T) {
			authors := newFakeAuthorRepo()
			svc := NewAuthorService(authors, newFakeIdentityRepo(), &fakeMediaStore{}, &fakeEnqueuer{})
			a := seedAuthor(t, authors, author.StatusApproved)

			result := svc.UpdateStatus(context.Background(), a.ID, author.ApprovalRequest{Status: target})

			assert.False(t, result.Successful())
			assert.Equal(t, http.StatusBadRequest, result.StatusCode)
			assert.Equal(t, operation.TitleBadRequest, result.ErrorTitle)

			// A rejected target never mutates the stored status.
			stored, err := authors.FindByID(context.Background(), a.ID)
			require.NoError(t, err)
			assert.Equal(t, author.StatusApproved, stored.Status)
		})
	}
}

func TestUpdateStatusUnknownAuthor(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo(), newFakeIdentityRepo(), &fakeMediaStore{}, &fakeEnqueuer{})

	result := svc.UpdateStatus(context.Background(), uuid.New(), author.ApprovalRequest{Status: author.StatusApproved})

	assert.False(t, result.Successful())
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, operation.TitleNotFound, result.ErrorTitle)
}

func TestUpdateReplacesPhotoAndQueuesOldDelete(t *testing.T) {
	authors := newFakeAuthorRepo()
	media := &fakeMediaStore{}
	tasks := &fakeEnqueuer{}
	svc := NewAuthorService(authors, newFakeIdentityRepo(), media, tasks)
	a := seedAuthor(t, authors, author.StatusApproved)

	result := svc.Update(context.Background(), a.IdentityID, author.UpdateRequest{
		Title: "Senior Writer",
		Photo: "bmV3IHBob3Rv",
	})

	require.True(t, result.Successful(), result.ErrorMessage)

	stored, err := authors.FindByIdentity(context.Background(), a.IdentityID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Writer", stored.Title)
	assert.NotEqual(t, a.PhotoID, stored.PhotoID)

	require.Len(t, media.uploads, 1)
	require.Len(t, tasks.mediaIDs, 1)
	assert.Equal(t, a.PhotoID, tasks.mediaIDs[0])
}

func TestUpdateKeepsPhotoWhenNoneSupplied(t *testing.T) {
	authors := newFakeAuthorRepo()
	media := &fakeMediaStore{}
	tasks := &fakeEnqueuer{}
	svc := NewAuthorService(authors, newFakeIdentityRepo(), media, tasks)
	a := seedAuthor(t, authors, author.StatusApproved)

	result := svc.Update(context.Background(), a.IdentityID, author.UpdateRequest{FirstName: "Janet"})

	require.True(t, result.Successful(), result.ErrorMessage)

	stored, err := authors.FindByIdentity(context.Background(), a.IdentityID)
	require.NoError(t, err)
	assert.Equal(t, "Janet", stored.FirstName)
	assert.Equal(t, a.PhotoID, stored.PhotoID)
	assert.Empty(t, media.uploads)
	assert.Empty(t, tasks.mediaIDs)
}

func TestDeleteQueuesPhotoCleanup(t *testing.T) {
	authors := newFakeAuthorRepo()
	tasks := &fakeEnqueuer{}
	svc := NewAuthorService(authors, newFakeIdentityRepo(), &fakeMediaStore{}, tasks)
	a := seedAuthor(t, authors, author.StatusApproved)

	result := svc.Delete(context.Background(), a.ID)

	require.True(t, result.Successful(), result.ErrorMessage)
	assert.Equal(t, http.StatusNoContent, result.StatusCode)

	_, err := authors.FindByID(context.Background(), a.ID)
	assert.Error(t, err)
	require.Len(t, tasks.mediaIDs, 1)
	assert.Equal(t, a.PhotoID, tasks.mediaIDs[0])
}
