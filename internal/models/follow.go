package models

import "time"

// Follow is one directed edge of the social graph. FollowerID is the user
// doing the following, FollowedID the user being followed. A user's
// "following" list selects on follower_id, the "followers" list on
// followed_id; IsFollowing and IsFollowedBy are the two views of one edge.
type Follow struct {
	FollowerID int64     `json:"follower_id" db:"follower_id"`
	FollowedID int64     `json:"followed_id" db:"followed_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
