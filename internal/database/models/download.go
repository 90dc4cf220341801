package models

import "time"

// Download represents one completed download in the usage ledger.
// Rows are written once, after the job succeeds, and never updated.
type Download struct {
	ID           int64
	UserID       int64
	URL          string
	Platform     string
	Quality      string
	DownloadDate time.Time
}
