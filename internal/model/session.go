package model

import "time"

// Session is the operator session marker persisted outside the database and
// revalidated against the users table on next launch.
type Session struct {
	UserID    int64     `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
