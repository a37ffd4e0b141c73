package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mdhrk2001/doctor-appointment-cloud/pkg/timestamp"
)

// Service implements the appointment lifecycle: booking with field and
// temporal validation, per-patient listing, and owner-only cancellation of
// future appointments.
type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

// Book validates the request and persists a new pending appointment owned by
// the verified caller. The client-supplied payload never determines the
// patient identity.
func (s *Service) Book(ctx context.Context, callerID string, req BookingRequest) (*Appointment, error) {
	if callerID == "" {
		return nil, ErrNotOwner
	}
	if req.DoctorID == "" || req.DoctorName == "" || req.AppointmentDate == "" || req.AppointmentTime == "" {
		return nil, ErrMissingFields
	}

	when, err := combineDateTime(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	a := &Appointment{
		PatientID:       callerID,
		DoctorID:        req.DoctorID,
		DoctorName:      req.DoctorName,
		Reason:          req.Reason,
		AppointmentTime: timestamp.New(when),
		Status:          StatusPending,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListForPatient returns every appointment booked by the caller. An empty
// result is a normal outcome.
func (s *Service) ListForPatient(ctx context.Context, callerID string) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, callerID)
}

// Cancel deletes the appointment after the ownership check and the
// future-time check, in that order. The temporal check uses the server
// clock; any client-side pre-check is advisory only.
func (s *Service) Cancel(ctx context.Context, callerID string, id uuid.UUID) error {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if a.PatientID != callerID {
		return ErrNotOwner
	}

	if !a.AppointmentTime.After(time.Now()) {
		return ErrPastAppointment
	}

	return s.appointments.Delete(ctx, id)
}
