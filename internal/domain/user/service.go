package user

import "context"

type Service struct {
	users Repository
}

func NewService(users Repository) *Service {
	return &Service{users: users}
}

// Register creates the caller's profile. The identity comes from the verified
// token, never from the payload; the role always starts as patient.
func (s *Service) Register(ctx context.Context, callerID string, req RegisterRequest) (*User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, ErrMissingFields
	}
	u := &User{
		ID:    callerID,
		Name:  req.Name,
		Email: req.Email,
		Role:  RoleDefault,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Profile returns the caller's own profile.
func (s *Service) Profile(ctx context.Context, callerID string) (*User, error) {
	return s.users.GetByID(ctx, callerID)
}
