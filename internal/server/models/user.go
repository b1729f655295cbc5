package models

import "time"

// Roles a user account can hold. The dashboard distinguishes patients
// from doctors; everything else about the role is presentation-side.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User is a credential store record. PasswordHash is never serialized to
// JSON; API responses carry the sanitized view only.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Role         string    `bson:"role" json:"role"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
