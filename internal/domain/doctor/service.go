package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

// Search lists the catalog, optionally filtered by specialty and a name
// substring. Both filters match case-insensitively.
func (s *Service) Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.Search(ctx, f, limit, offset)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}
