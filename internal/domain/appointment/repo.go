package appointment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	// Delete removes the record. Returns ErrNotFound when nothing was
	// deleted, which is how a concurrent double-cancel resolves.
	Delete(ctx context.Context, id uuid.UUID) error
}
