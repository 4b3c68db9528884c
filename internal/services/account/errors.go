package account

import (
	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/models"
)

// Account errors
var (
	ErrEmptyEmail   = &models.ValidationError{Field: "email", Message: "Users must have an email address"}
	ErrInvalidEmail = &models.ValidationError{Field: "email", Message: "Enter a valid email address"}
	ErrEmailTaken   = database.ErrEmailTaken
)
