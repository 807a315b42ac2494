package models

import (
	"time"
)

// User represents a record in the user directory. The ID is assigned by the
// directory service on create and is empty on a draft that has never been
// persisted. CreatedAt/UpdatedAt are server-side bookkeeping and never cross
// the wire.
type User struct {
	ID          string    `json:"id,omitempty" db:"id"`
	Username    string    `json:"username" db:"username"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

// Editable field names accepted by the form.
const (
	FieldUsername    = "username"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
)
