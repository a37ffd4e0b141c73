package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdhrk2001/doctor-appointment-cloud/pkg/timestamp"
)

// Statuses an appointment can carry. Only StatusPending is reachable through
// the booking flow; cancellation deletes the record outright.
const (
	StatusPending = "pending"
)

// Appointment maps to the appointments table. JSON field names and the
// timestamp wire shape match what the booking client reads.
type Appointment struct {
	ID              uuid.UUID           `db:"id" json:"id"`
	PatientID       string              `db:"patient_id" json:"patientId"`
	DoctorID        string              `db:"doctor_id" json:"doctorId"`
	DoctorName      string              `db:"doctor_name" json:"doctorName"`
	Reason          string              `db:"reason" json:"reason"`
	AppointmentTime timestamp.Timestamp `db:"appointment_time" json:"appointmentTime"`
	Status          string              `db:"status" json:"status"`
	CreatedAt       timestamp.Timestamp `db:"created_at" json:"createdAt"`
}

// BookingRequest is the client payload for creating an appointment. The date
// and time arrive as separate form fields and are combined into one instant
// server-side. PatientID is never part of the payload; it comes from the
// verified caller identity.
type BookingRequest struct {
	DoctorID        string `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Reason          string `json:"reason"`
}

// dateTimeLayouts are accepted combinations of the form fields, e.g.
// "2025-10-30" + "14:30" -> "2025-10-30T14:30".
var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// combineDateTime joins the date and time form fields and parses them as a
// local instant.
func combineDateTime(date, clock string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, date+"T"+clock, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
