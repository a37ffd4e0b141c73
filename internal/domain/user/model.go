package user

import (
	"github.com/mdhrk2001/doctor-appointment-cloud/pkg/timestamp"
)

// RoleDefault is assigned to every self-registered profile.
const RoleDefault = "patient"

// User maps to the users table. The id is the identity provider's subject,
// exposed as "uid" to match what the client stores at signup.
type User struct {
	ID        string              `db:"id" json:"uid"`
	Name      string              `db:"name" json:"name"`
	Email     string              `db:"email" json:"email"`
	Role      string              `db:"role" json:"role"`
	CreatedAt timestamp.Timestamp `db:"created_at" json:"createdAt"`
}

// RegisterRequest is the payload for creating the caller's profile.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
