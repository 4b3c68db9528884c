package models

import (
	"time"

	"github.com/thenoetrevino/tracker/internal/types"
)

// User is an account that owns projects. Email is the identity and is
// compared case-insensitively.
type User struct {
	ID           types.UserID
	Email        string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	DateJoined   time.Time
}

// GetID returns the numeric id (used by quiet CLI output)
func (u *User) GetID() int {
	return u.ID.ToInt()
}
