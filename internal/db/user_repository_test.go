package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/moodlog/moodlog/internal/models"
)

func TestFindByNormalizedEmail(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "moodlog-users.db"))
	repos := NewRepositories(database)

	stored := models.User{Email: "  Person@Example.COM ", PasswordHash: "hash", CreatedAt: time.Now()}
	if err := repos.Users.Create(&stored); err != nil {
		t.Fatalf("create user: %v", err)
	}

	found, err := repos.Users.FindByNormalizedEmail("person@example.com")
	if err != nil {
		t.Fatalf("find by normalized email: %v", err)
	}
	if found.ID != stored.ID {
		t.Fatalf("expected user %d, got %d", stored.ID, found.ID)
	}

	exists, err := repos.Users.ExistsByNormalizedEmail("person@example.com")
	if err != nil {
		t.Fatalf("exists by normalized email: %v", err)
	}
	if !exists {
		t.Fatal("expected existence check to match regardless of stored casing")
	}

	exists, err = repos.Users.ExistsByNormalizedEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("exists by normalized email: %v", err)
	}
	if exists {
		t.Fatal("expected no match for unknown email")
	}
}
