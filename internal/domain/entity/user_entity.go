package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash and is never exposed outward.
type User struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
