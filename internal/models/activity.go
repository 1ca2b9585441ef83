package models

// Activity event kinds published to the activity topic.
const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged_in"
	EventMessagePosted  = "message.posted"
	EventMessageDeleted = "message.deleted"
	EventUserFollowed   = "user.followed"
	EventUserUnfollowed = "user.unfollowed"
)

// ActivityEvent is the payload published for every user-visible mutation.
type ActivityEvent struct {
	EventID   string `json:"event_id"`             // Unique event id
	Timestamp int64  `json:"timestamp"`            // Unix seconds
	Kind      string `json:"kind"`                 // One of the Event* constants
	UserID    int64  `json:"user_id"`              // Acting user
	SubjectID int64  `json:"subject_id,omitempty"` // Message or target user id, when relevant
}
