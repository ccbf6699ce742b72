package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// UnknownCashier is recorded on a transaction when no session is active.
const UnknownCashier = "Unknown"

type User struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	IsLoggedIn bool      `json:"is_logged_in"`
	LoginTime  time.Time `json:"login_time"`
}

// Session is the persisted proof of authentication. It is valid while
// now - Timestamp < the configured session timeout; expired sessions are
// deleted on the next read.
type Session struct {
	User      User      `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
