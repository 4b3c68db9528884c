package database

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldKey returns the case-insensitive identity of s: NFC-normalised, then
// Unicode case folded. It backs users.email_key and projects.name_key,
// since SQLite's lower() and NOCASE only fold ASCII.
func foldKey(s string) string {
	// A Caser keeps state, so one is created per call
	return cases.Fold().String(norm.NFC.String(s))
}
