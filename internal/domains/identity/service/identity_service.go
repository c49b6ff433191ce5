package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tsblog-backend/internal/domains/identity"
	"tsblog-backend/internal/shared/authz"
	"tsblog-backend/internal/shared/operation"
	"tsblog-backend/pkg/jwt"
	"tsblog-backend/pkg/logger"
)

// bcryptCost balances hashing time against brute-force resistance.
const bcryptCost = 12

// Seed credentials for the bootstrap admin. The password must be
// rotated after first login.
const (
	seedAdminUsername = "tsadmin"
	seedAdminEmail    = "admin@tsblog.com"
	seedAdminPassword = "adminpassword"
)

type identityService struct {
	repo       identity.Repository
	jwtManager *jwt.Manager
}

func NewIdentityService(repo identity.Repository, jwtManager *jwt.Manager) identity.Service {
	return &identityService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Login verifies the credentials and issues a bearer token carrying
// the principal's scope claim. Lookup and password failures collapse
// into the same unauthorized message so callers cannot probe for
// registered emails.
func (s *identityService) Login(ctx context.Context, req identity.LoginRequest) operation.Result {
	if err := req.Validate(); err != nil {
		return operation.BadRequest(err.Error())
	}

	ident, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, identity.ErrIdentityNotFound) {
			return operation.Unauthorized(identity.ErrInvalidCredentials.Error())
		}
		logger.Error("failed to look up identity for login", err)
		return operation.SystemError(err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(req.Password)); err != nil {
		return operation.Unauthorized(identity.ErrInvalidCredentials.Error())
	}

	token, err := s.jwtManager.Generate(ident.ID.String(), ident.Username, ident.Email, ident.Scope)
	if err != nil {
		logger.Error("failed to sign token", err)
		return operation.SystemError(fmt.Sprintf("generate token: %v", err))
	}

	return operation.Ok(200, identity.LoginResponse{
		FirstName: ident.FirstName,
		LastName:  ident.LastName,
		Email:     ident.Email,
		Username:  ident.Username,
		Token:     token,
	})
}

// SeedAdmin creates the bootstrap admin principal when the identity
// store is empty. The identity and its claims land in one transaction,
// same as registration.
func (s *identityService) SeedAdmin(ctx context.Context) error {
	any, err := s.repo.Any(ctx)
	if err != nil {
		return fmt.Errorf("check identity store: %w", err)
	}
	if any {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	admin := &identity.Identity{
		ID:           uuid.New(),
		Username:     seedAdminUsername,
		Email:        seedAdminEmail,
		Phone:        "08021334725",
		FirstName:    "Ts",
		LastName:     "Admin",
		Scope:        authz.ScopeAdmin,
		PasswordHash: string(hash),
	}

	if err := tx.CreateIdentity(ctx, admin); err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}

	claims := []identity.Claim{
		{Type: "name", Value: admin.Username},
		{Type: "email", Value: admin.Email},
		{Type: authz.ClaimScope, Value: authz.ScopeAdmin},
	}
	if err := tx.AttachClaims(ctx, admin.ID, claims); err != nil {
		return fmt.Errorf("attach seed admin claims: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed admin: %w", err)
	}

	logger.Info("seeded bootstrap admin", map[string]interface{}{"username": seedAdminUsername})
	return nil
}
