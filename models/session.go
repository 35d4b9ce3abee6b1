package models

import "time"

// LocalSession is the authenticated state the client caches on disk between
// runs: who is logged in and the bearer token to reuse.
type LocalSession struct {
	UserID  int64     `json:"user_id"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
