package quota

import (
	"fmt"

	"github.com/artur/thor-downloader/internal/database/repository"
)

// ExceededError is returned when a free account has used up its daily
// download allowance.
type ExceededError struct {
	Limit int
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("daily free download limit reached (%d per day)", e.Limit)
}

// Gate decides whether a user may start another download today.
type Gate struct {
	users     *repository.UserRepository
	downloads *repository.DownloadRepository
	limit     int
}

// NewGate creates a Gate with the configured free-tier limit.
func NewGate(users *repository.UserRepository, downloads *repository.DownloadRepository, limit int) *Gate {
	return &Gate{
		users:     users,
		downloads: downloads,
		limit:     limit,
	}
}

// Limit returns the configured free-tier daily limit.
func (g *Gate) Limit() int {
	return g.limit
}

// MayDownload allows VIP users unconditionally and free users while
// today's ledger count is below the limit. Denial is an
// *ExceededError carrying the limit.
//
// The count read here and the eventual ledger write are separate
// statements with no lock between them, so concurrent requests from
// one user can slip past the limit.
func (g *Gate) MayDownload(userID int64) error {
	vip, err := g.users.IsVIP(userID)
	if err != nil {
		return fmt.Errorf("failed to check vip status: %w", err)
	}
	if vip {
		return nil
	}

	count, err := g.downloads.CountToday(userID)
	if err != nil {
		return fmt.Errorf("failed to count downloads: %w", err)
	}
	if count >= int64(g.limit) {
		return &ExceededError{Limit: g.limit}
	}

	return nil
}
