package project

import (
	"testing"

	"github.com/thenoetrevino/tracker/internal/app"
)

// countRows runs a COUNT(*) query against the app's database
func countRows(t *testing.T, a *app.App, query string, args ...any) int {
	t.Helper()
	var n int
	if err := a.Repo().DB().QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
