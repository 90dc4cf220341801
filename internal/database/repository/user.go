package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/artur/thor-downloader/internal/database/models"
)

const dateLayout = "2006-01-02"

// UserRepository handles user data persistence
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates the user on first sight. An existing row is left
// untouched, so username and join_date never change after the first
// interaction.
func (r *UserRepository) Upsert(userID int64, username string) (*models.User, error) {
	query := `
		INSERT INTO users (user_id, username, join_date)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO NOTHING
	`

	_, err := r.db.Exec(query, userID, username, time.Now().Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return r.GetByID(userID)
}

// GetByID retrieves a user by Telegram user ID, nil if unknown.
func (r *UserRepository) GetByID(userID int64) (*models.User, error) {
	query := `SELECT user_id, username, join_date, is_vip FROM users WHERE user_id = ?`

	user := &models.User{}
	var username sql.NullString
	var joinDate string

	err := r.db.QueryRow(query, userID).Scan(&user.UserID, &username, &joinDate, &user.IsVIP)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Username = username.String
	user.JoinDate, err = time.Parse(dateLayout, joinDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse join date: %w", err)
	}

	return user, nil
}

// IsVIP reports whether the user has the VIP flag. Unknown users are
// not VIP.
func (r *UserRepository) IsVIP(userID int64) (bool, error) {
	var vip bool
	err := r.db.QueryRow(`SELECT is_vip FROM users WHERE user_id = ?`, userID).Scan(&vip)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check vip flag: %w", err)
	}
	return vip, nil
}

// SetVIP flips the VIP flag. This is an administrative operation; the
// bot itself never calls it.
func (r *UserRepository) SetVIP(userID int64, vip bool) error {
	res, err := r.db.Exec(`UPDATE users SET is_vip = ? WHERE user_id = ?`, vip, userID)
	if err != nil {
		return fmt.Errorf("failed to set vip flag: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %d not found", userID)
	}
	return nil
}

// CountUsers returns total number of known users
func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
