package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tsblog-backend/internal/domains/author"
	"tsblog-backend/internal/domains/identity"
	"tsblog-backend/internal/infrastructure/storage"
)

// fakeIdentityRepo is an in-memory identity store with a buffered
// transaction: writes only become visible on Commit, so the rollback
// properties of the registration saga are observable.
type fakeIdentityRepo struct {
	mu         sync.Mutex
	identities map[string]*identity.Identity // keyed by username
	claims     map[uuid.UUID][]identity.Claim

	failCreate error
	failClaims error
	failCommit error
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{
		identities: make(map[string]*identity.Identity),
		claims:     make(map[uuid.UUID][]identity.Claim),
	}
}

func (r *fakeIdentityRepo) Begin(ctx context.Context) (identity.Tx, error) {
	return &fakeTx{
		repo:    r,
		pending: make(map[string]*identity.Identity),
		claims:  make(map[uuid.UUID][]identity.Claim),
	}, nil
}

func (r *fakeIdentityRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ident := range r.identities {
		if ident.ID == id {
			return ident, nil
		}
	}
	return nil, identity.ErrIdentityNotFound
}

func (r *fakeIdentityRepo) FindByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ident, ok := r.identities[username]; ok {
		return ident, nil
	}
	return nil, identity.ErrIdentityNotFound
}

func (r *fakeIdentityRepo) FindByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ident := range r.identities {
		if ident.Email == email {
			return ident, nil
		}
	}
	return nil, identity.ErrIdentityNotFound
}

func (r *fakeIdentityRepo) Any(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.identities) > 0, nil
}

type fakeTx struct {
	repo     *fakeIdentityRepo
	pending  map[string]*identity.Identity
	claims   map[uuid.UUID][]identity.Claim
	finished bool
}

func (t *fakeTx) CreateIdentity(ctx context.Context, ident *identity.Identity) error {
	if t.repo.failCreate != nil {
		return t.repo.failCreate
	}
	if _, err := t.repo.FindByUsername(ctx, ident.Username); err == nil {
		return identity.ErrUsernameTaken
	}
	if _, ok := t.pending[ident.Username]; ok {
		return identity.ErrUsernameTaken
	}
	t.pending[ident.Username] = ident
	return nil
}

func (t *fakeTx) AttachClaims(ctx context.Context, identityID uuid.UUID, claims []identity.Claim) error {
	if t.repo.failClaims != nil {
		return t.repo.failClaims
	}
	t.claims[identityID] = append(t.claims[identityID], claims...)
	return nil
}

func (t *fakeTx) UsernameExists(ctx context.Context, username string) (bool, error) {
	if _, ok := t.pending[username]; ok {
		return true, nil
	}
	_, err := t.repo.FindByUsername(ctx, username)
	return err == nil, nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.finished {
		return fmt.Errorf("transaction already finished")
	}
	t.finished = true

	if t.repo.failCommit != nil {
		return t.repo.failCommit
	}

	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	for username, ident := range t.pending {
		t.repo.identities[username] = ident
	}
	for id, claims := range t.claims {
		t.repo.claims[id] = claims
	}
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.finished = true
	t.pending = make(map[string]*identity.Identity)
	t.claims = make(map[uuid.UUID][]identity.Claim)
	return nil
}

// fakeMediaStore records uploads and deletes.
type fakeMediaStore struct {
	uploads    []storage.MediaRef
	deleted    []string
	failUpload error
}

func (m *fakeMediaStore) Upload(ctx context.Context, base64Payload, preset string) (storage.MediaRef, error) {
	if m.failUpload != nil {
		return storage.MediaRef{}, m.failUpload
	}
	ref := storage.MediaRef{
		ID:  fmt.Sprintf("%s/media-%d", preset, len(m.uploads)+1),
		URL: fmt.Sprintf("http://media.local/%s/media-%d", preset, len(m.uploads)+1),
	}
	m.uploads = append(m.uploads, ref)
	return ref, nil
}

func (m *fakeMediaStore) Delete(ctx context.Context, mediaID string) error {
	m.deleted = append(m.deleted, mediaID)
	return nil
}

// fakeAuthorRepo is an in-memory domain store.
type fakeAuthorRepo struct {
	mu         sync.Mutex
	authors    map[uuid.UUID]*author.Author
	failCreate error
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uuid.UUID]*author.Author)}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *a
	r.authors[a.ID] = &clone
	return nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.authors[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, author.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) FindByIdentity(ctx context.Context, identityID uuid.UUID) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.authors {
		if a.IdentityID == identityID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) FetchAll(ctx context.Context) ([]author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []author.Author
	for _, a := range r.authors {
		all = append(all, *a)
	}
	return all, nil
}

func (r *fakeAuthorRepo) FetchArticles(ctx context.Context, authorID uuid.UUID) ([]author.ArticleSummary, error) {
	return nil, nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *author.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.authors[a.ID]; !ok {
		return author.ErrAuthorNotFound
	}
	clone := *a
	r.authors[a.ID] = &clone
	return nil
}

func (r *fakeAuthorRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status author.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.authors[id]
	if !ok {
		return author.ErrAuthorNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(r.authors, id)
	return nil
}

// fakeEnqueuer records queued media deletes.
type fakeEnqueuer struct {
	mediaIDs []string
}

func (e *fakeEnqueuer) EnqueueMediaDelete(ctx context.Context, mediaID string) {
	e.mediaIDs = append(e.mediaIDs, mediaID)
}
