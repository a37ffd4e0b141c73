package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("user profile not found")
	ErrAlreadyExists = errors.New("user profile already exists")
	ErrMissingFields = errors.New("missing required profile information")
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
}
