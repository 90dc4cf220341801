package models

import "time"

// User represents a Telegram user known to the bot. UserID is the
// Telegram identifier and the primary key.
type User struct {
	UserID   int64
	Username string
	JoinDate time.Time
	IsVIP    bool
}
