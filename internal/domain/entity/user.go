package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// PasswordHash holds a bcrypt hash and must never be serialized outward.
type User struct {
	ID              int64
	Username        string
	Email           string
	PasswordHash    string
	FullName        string
	Bio             string
	ProfileImageURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
