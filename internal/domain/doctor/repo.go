package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("doctor not found")

// SearchFilter narrows the catalog listing. Zero values mean no filter.
type SearchFilter struct {
	Specialty string
	Query     string
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*Doctor, int, error)
}
