// Package user works out which local account the CLI acts as when no email
// is configured.
package user

import (
	"os"
	"os/user"
	"strings"
)

// LocalDomain is the email domain given to accounts derived from the OS user
const LocalDomain = "localhost"

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	// Try to get current user from OS
	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username
	}

	// Fallback to USER environment variable
	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}

// LocalEmail returns the email identifying the current OS user, e.g.
// alice@localhost. Windows DOMAIN\name usernames keep only the name.
func LocalEmail() string {
	return EmailFor(GetCurrentUsername())
}

// EmailFor builds the local email for username
func EmailFor(username string) string {
	if i := strings.LastIndexAny(username, `\/`); i >= 0 {
		username = username[i+1:]
	}
	username = strings.ReplaceAll(strings.TrimSpace(username), " ", ".")
	if username == "" {
		username = "unknown"
	}
	return strings.ToLower(username) + "@" + LocalDomain
}
