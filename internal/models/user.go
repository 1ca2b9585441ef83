package models

import (
	"fmt"
	"time"
)

// Profile image defaults applied at signup when the caller supplies none.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User mirrors a row of the users table.
type User struct {
	ID             int64     `json:"id" db:"user_id"`                       // Primary key
	Username       string    `json:"username" db:"username"`                // Unique username
	Email          string    `json:"email" db:"email"`                      // Unique email
	PasswordHash   string    `json:"-" db:"password_hash"`                  // bcrypt hash, never serialized
	ImageURL       string    `json:"image_url" db:"image_url"`              // Avatar path
	HeaderImageURL string    `json:"header_image_url" db:"header_image_url"` // Profile banner path
	Bio            *string   `json:"bio,omitempty" db:"bio"`                // Optional biography
	Location       *string   `json:"location,omitempty" db:"location"`      // Optional location
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// String renders the canonical short form used in logs and debug output.
func (u *User) String() string {
	return fmt.Sprintf("<User #%d: %s, %s>", u.ID, u.Username, u.Email)
}
