package store

import (
	"database/sql"
	"testing"

	"github.com/VougishTiger/MealSmith/internal/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a user for fixtures that need an owner.
func testUser(t *testing.T, us *UserStore, username string) int64 {
	t.Helper()
	u, err := us.Create(username, "x")
	if err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u.ID
}
