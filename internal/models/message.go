package models

import "time"

// MaxMessageLength is the upper bound on message text, enforced at the
// service layer and by the VARCHAR(140) column.
const MaxMessageLength = 140

// Message mirrors a row of the messages table.
type Message struct {
	ID        int64     `json:"id" db:"message_id"`      // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`    // Owning user
	Text      string    `json:"text" db:"text"`          // Message body
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// TimelineMessage is a message joined with its author, the shape timelines
// and profile pages render.
type TimelineMessage struct {
	Message
	Username string `json:"username" db:"username"`
	ImageURL string `json:"image_url" db:"image_url"`
}
