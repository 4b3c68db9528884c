package project

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/tracker/internal/models"
)

// NameTakenFunc reports whether the requesting user already owns a project
// with this name, ignoring case. The service backs it with a database lookup
// that excludes the project being renamed.
type NameTakenFunc func(ctx context.Context, name string) (bool, error)

// Validator holds the project business rules. It does no I/O of its own.
type Validator struct{}

// ValidateNameFormat trims name and checks it is non-empty and short enough.
// It returns the trimmed name.
func (Validator) ValidateNameFormat(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// ValidateOwnership fails unless user owns project
func (Validator) ValidateOwnership(user *models.User, project *models.Project) error {
	if user == nil || project.UserID != user.ID {
		return ErrNotOwner
	}
	return nil
}

// ValidateAccess checks user may read project
func (v Validator) ValidateAccess(user *models.User, project *models.Project) error {
	return v.ValidateOwnership(user, project)
}

// ValidateDelete checks user may delete project
func (v Validator) ValidateDelete(user *models.User, project *models.Project) error {
	return v.ValidateOwnership(user, project)
}

// ValidateCreate checks a new project name and returns it trimmed
func (v Validator) ValidateCreate(ctx context.Context, name string, taken NameTakenFunc) (string, error) {
	clean, err := v.ValidateNameFormat(name)
	if err != nil {
		return "", err
	}
	if err := checkUnique(ctx, clean, taken); err != nil {
		return "", err
	}
	return clean, nil
}

// ValidateUpdateName checks a rename of project and returns the trimmed name
func (v Validator) ValidateUpdateName(ctx context.Context, user *models.User, project *models.Project, name string, taken NameTakenFunc) (string, error) {
	if err := v.ValidateOwnership(user, project); err != nil {
		return "", err
	}
	clean, err := v.ValidateNameFormat(name)
	if err != nil {
		return "", err
	}
	if err := checkUnique(ctx, clean, taken); err != nil {
		return "", err
	}
	return clean, nil
}

func checkUnique(ctx context.Context, name string, taken NameTakenFunc) error {
	if taken == nil {
		return nil
	}
	exists, err := taken(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateName
	}
	return nil
}
