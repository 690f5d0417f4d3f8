package application

import "errors"

var (
	// ErrInvalidCredentials is deliberately shared between "no such user"
	// and "wrong password" so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")

	ErrPostNotFound = errors.New("blog post not found")
	ErrNotPostOwner = errors.New("not the owner of this blog post")
)
