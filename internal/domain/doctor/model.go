package doctor

import (
	"github.com/google/uuid"

	"github.com/mdhrk2001/doctor-appointment-cloud/pkg/timestamp"
)

// Doctor maps to the doctors table. Latitude/longitude feed the client's map
// view; bio and address are free text for the details page.
type Doctor struct {
	ID        uuid.UUID           `db:"id" json:"id"`
	Name      string              `db:"name" json:"name"`
	Specialty string              `db:"specialty" json:"specialty"`
	Bio       string              `db:"bio" json:"bio"`
	Address   string              `db:"address" json:"address"`
	Latitude  float64             `db:"latitude" json:"latitude"`
	Longitude float64             `db:"longitude" json:"longitude"`
	CreatedAt timestamp.Timestamp `db:"created_at" json:"createdAt"`
}
