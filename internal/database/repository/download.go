package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/artur/thor-downloader/internal/database/models"
)

const datetimeLayout = "2006-01-02 15:04:05"

// DownloadRepository handles the downloads ledger
type DownloadRepository struct {
	db *sql.DB
}

// NewDownloadRepository creates a new DownloadRepository
func NewDownloadRepository(db *sql.DB) *DownloadRepository {
	return &DownloadRepository{db: db}
}

// Record appends one completed download to the ledger.
func (r *DownloadRepository) Record(d *models.Download) error {
	query := `
		INSERT INTO downloads (user_id, url, platform, quality, download_date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		d.UserID,
		d.URL,
		d.Platform,
		d.Quality,
		d.DownloadDate.Format(datetimeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to record download: %w", err)
	}

	return nil
}

// CountToday returns how many downloads the user completed on the
// current calendar date (service-local clock).
func (r *DownloadRepository) CountToday(userID int64) (int64, error) {
	return r.CountOn(userID, time.Now())
}

// CountOn returns the user's download count for the calendar date of day.
func (r *DownloadRepository) CountOn(userID int64, day time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM downloads WHERE user_id = ? AND date(download_date) = ?`
	err := r.db.QueryRow(query, userID, day.Format(dateLayout)).Scan(&count)
	return count, err
}

// CountByUser returns total downloads for a user
func (r *DownloadRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM downloads WHERE user_id = ?`
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// CountAll returns total downloads by all users
func (r *DownloadRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM downloads").Scan(&count)
	return count, err
}

// PlatformCount represents download counts per platform
type PlatformCount struct {
	Platform string
	Count    int64
}

// PopularPlatforms returns the most downloaded-from platforms (top N)
func (r *DownloadRepository) PopularPlatforms(limit int) ([]PlatformCount, error) {
	query := `
		SELECT platform, COUNT(*) as count
		FROM downloads
		GROUP BY platform
		ORDER BY count DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular platforms: %w", err)
	}
	defer rows.Close()

	var results []PlatformCount
	for rows.Next() {
		var item PlatformCount
		var platform sql.NullString
		if err := rows.Scan(&platform, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan platform count: %w", err)
		}
		item.Platform = platform.String
		results = append(results, item)
	}

	return results, rows.Err()
}
