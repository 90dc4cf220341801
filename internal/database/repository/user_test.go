package repository_test

import (
	"database/sql"
	"testing"

	"github.com/artur/thor-downloader/internal/database"
	"github.com/artur/thor-downloader/internal/database/repository"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test db: %v", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	dbWrapper := &database.DB{DB: db}
	if err := dbWrapper.Migrate(); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestUserRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	user, err := repo.Upsert(12345, "testuser")
	if err != nil {
		t.Fatalf("Failed to upsert user: %v", err)
	}
	if user == nil {
		t.Fatal("Expected user to be returned")
	}
	if user.UserID != 12345 {
		t.Errorf("Expected user_id 12345, got %d", user.UserID)
	}
	if user.Username != "testuser" {
		t.Errorf("Expected username 'testuser', got %s", user.Username)
	}
	if user.IsVIP {
		t.Error("New user should not be VIP")
	}
}

func TestUserRepository_Upsert_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	first, err := repo.Upsert(12345, "original")
	if err != nil {
		t.Fatalf("Failed to upsert user: %v", err)
	}

	// Second upsert with a different name must not overwrite anything
	second, err := repo.Upsert(12345, "changed")
	if err != nil {
		t.Fatalf("Failed to re-upsert user: %v", err)
	}

	if second.Username != "original" {
		t.Errorf("Username should be unchanged, got %s", second.Username)
	}
	if !second.JoinDate.Equal(first.JoinDate) {
		t.Errorf("Join date should be unchanged, got %v vs %v", second.JoinDate, first.JoinDate)
	}

	count, err := repo.CountUsers()
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 user after double upsert, got %d", count)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	// Get non-existent user
	user, err := repo.GetByID(99999)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("Expected nil for non-existent user")
	}

	// Insert and retrieve
	if _, err := repo.Upsert(12345, "testuser"); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}

	user, err = repo.GetByID(12345)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if user == nil || user.UserID != 12345 {
		t.Errorf("Failed to retrieve correct user")
	}
}

func TestUserRepository_IsVIP(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	// Unknown user is not VIP
	vip, err := repo.IsVIP(99999)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if vip {
		t.Error("Unknown user should not be VIP")
	}

	// Fresh user is not VIP
	repo.Upsert(12345, "testuser")
	vip, err = repo.IsVIP(12345)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if vip {
		t.Error("Fresh user should not be VIP")
	}

	// Flag flipped administratively
	if err := repo.SetVIP(12345, true); err != nil {
		t.Fatalf("Failed to set vip: %v", err)
	}
	vip, err = repo.IsVIP(12345)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !vip {
		t.Error("Expected user to be VIP after SetVIP")
	}
}

func TestUserRepository_SetVIP_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	if err := repo.SetVIP(424242, true); err == nil {
		t.Error("Expected error when setting vip on unknown user")
	}
}

func TestUserRepository_CountUsers(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	count, err := repo.CountUsers()
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 users, got %d", count)
	}

	repo.Upsert(1, "user1")
	repo.Upsert(2, "user2")

	count, err = repo.CountUsers()
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 users, got %d", count)
	}
}
