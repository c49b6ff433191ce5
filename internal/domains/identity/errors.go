package identity

import "errors"

var (
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
