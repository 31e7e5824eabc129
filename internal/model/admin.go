package model

import "time"

// Admin is a dashboard operator account. Passwords are stored as
// bcrypt hashes only.
type Admin struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session holds the data attached to a login token.
type Session struct {
	Username  string    `json:"username"`
	LoginTime time.Time `json:"login_time"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
