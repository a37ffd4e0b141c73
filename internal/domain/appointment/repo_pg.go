package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdhrk2001/doctor-appointment-cloud/pkg/timestamp"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, patient_id, doctor_id, doctor_name, reason, appointment_time, status, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var apptTime, createdAt time.Time
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.DoctorName, &a.Reason,
		&apptTime, &a.Status, &createdAt)
	if err != nil {
		return nil, err
	}
	a.AppointmentTime = timestamp.New(apptTime)
	a.CreatedAt = timestamp.New(createdAt)
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	// created_at comes from the database clock, not the application.
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, doctor_name, reason, appointment_time, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		a.ID, a.PatientID, a.DoctorID, a.DoctorName, a.Reason, a.AppointmentTime.Time, a.Status,
	).Scan(&createdAt)
	if err != nil {
		return err
	}
	a.CreatedAt = timestamp.New(createdAt)
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE patient_id = $1`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
