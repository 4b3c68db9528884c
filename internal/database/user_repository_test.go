package database

import (
	"context"
	"errors"
	"testing"
)

func TestUserRepo_EmailIgnoresUnicodeCase(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	created := createTestUser(t, repo, "jürgen@example.com")

	_, err := repo.Users().Create(ctx, UserFields{Email: "JÜRGEN@example.com", IsActive: true})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("Expected ErrEmailTaken, got %v", err)
	}

	got, err := repo.Users().GetByEmail(ctx, "JÜRGEN@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("Expected user %d, got %d", created.ID, got.ID)
	}
	if got.Email != "jürgen@example.com" {
		t.Errorf("Expected the stored spelling to be kept, got %q", got.Email)
	}

	exists, err := repo.Users().ExistsByEmail(ctx, "Jürgen@Example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if !exists {
		t.Error("Expected ExistsByEmail to ignore case")
	}
}

func TestUserRepo_UpdateOrCreateMatchesFoldedEmail(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	existing := createTestUser(t, repo, "ørjan@example.com")

	u, created, err := repo.Users().UpdateOrCreate(ctx, UserFields{Email: "ØRJAN@example.com", IsActive: true, IsStaff: true})
	if err != nil {
		t.Fatalf("UpdateOrCreate failed: %v", err)
	}
	if created {
		t.Error("Expected the existing account to be updated")
	}
	if u.ID != existing.ID || !u.IsStaff {
		t.Errorf("Expected user %d promoted to staff, got %+v", existing.ID, u)
	}
	if n := countRows(t, repo.DB(), "users"); n != 1 {
		t.Errorf("Expected 1 user, got %d", n)
	}
}
