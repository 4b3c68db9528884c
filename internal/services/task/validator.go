package task

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/tracker/internal/models"
)

// Validator holds the task business rules. Now is the clock used for
// deadline checks; nil means time.Now.
type Validator struct {
	Now func() time.Time
}

func (v Validator) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}

// ValidateTitleFormat trims title and checks it is non-empty and short enough
func (Validator) ValidateTitleFormat(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxNameLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// ValidatePriority checks priority is within [MinPriority, MaxPriority]
func (Validator) ValidatePriority(priority int) error {
	if priority < models.MinPriority || priority > models.MaxPriority {
		return ErrInvalidPriority
	}
	return nil
}

// ValidateDeadline rejects deadlines strictly before now
func (v Validator) ValidateDeadline(deadline time.Time) error {
	if deadline.Before(v.now()) {
		return ErrDeadlineInPast
	}
	return nil
}

// ValidateStatus checks status is a known state
func (Validator) ValidateStatus(status models.TaskStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// ValidateOwnership fails unless user owns the task's project
func (Validator) ValidateOwnership(user *models.User, task *models.Task) error {
	if user == nil || task.OwnerID != user.ID {
		return ErrNotOwner
	}
	return nil
}

// ValidateCompletion fails when the task is already done
func (Validator) ValidateCompletion(task *models.Task) error {
	if task.IsDone() {
		return ErrTaskAlreadyDone
	}
	return nil
}

// ValidateCreate checks the fields of a new task and returns the trimmed
// title. Project ownership is checked by the caller when resolving the project.
func (v Validator) ValidateCreate(title string, deadline *time.Time) (string, error) {
	clean, err := v.ValidateTitleFormat(title)
	if err != nil {
		return "", err
	}
	if deadline != nil {
		if err := v.ValidateDeadline(*deadline); err != nil {
			return "", err
		}
	}
	return clean, nil
}

// ValidateUpdate checks ownership and every field present in patch. It
// returns the patch with the title trimmed.
func (v Validator) ValidateUpdate(user *models.User, task *models.Task, patch models.TaskPatch) (models.TaskPatch, error) {
	if err := v.ValidateOwnership(user, task); err != nil {
		return patch, err
	}

	if patch.Name != nil {
		clean, err := v.ValidateTitleFormat(*patch.Name)
		if err != nil {
			return patch, err
		}
		patch.Name = &clean
	}
	if patch.Priority != nil {
		if err := v.ValidatePriority(*patch.Priority); err != nil {
			return patch, err
		}
	}
	if patch.Deadline != nil && !patch.ClearDeadline {
		if err := v.ValidateDeadline(*patch.Deadline); err != nil {
			return patch, err
		}
	}
	return patch, nil
}

// ValidateDelete checks user may delete task
func (v Validator) ValidateDelete(user *models.User, task *models.Task) error {
	return v.ValidateOwnership(user, task)
}

// ValidateAccess checks user may read task
func (v Validator) ValidateAccess(user *models.User, task *models.Task) error {
	return v.ValidateOwnership(user, task)
}

// ValidateComplete checks user may complete task and that it is not done yet
func (v Validator) ValidateComplete(user *models.User, task *models.Task) error {
	if err := v.ValidateOwnership(user, task); err != nil {
		return err
	}
	return v.ValidateCompletion(task)
}

// ValidateToggle checks user may toggle task
func (v Validator) ValidateToggle(user *models.User, task *models.Task) error {
	return v.ValidateOwnership(user, task)
}

// ValidateSetPriority checks user may change the priority and that it is in range
func (v Validator) ValidateSetPriority(user *models.User, task *models.Task, priority int) error {
	if err := v.ValidateOwnership(user, task); err != nil {
		return err
	}
	return v.ValidatePriority(priority)
}

// ValidateSetDeadline checks user may change the deadline and that it is not past
func (v Validator) ValidateSetDeadline(user *models.User, task *models.Task, deadline time.Time) error {
	if err := v.ValidateOwnership(user, task); err != nil {
		return err
	}
	return v.ValidateDeadline(deadline)
}

// toggledStatus returns the status a toggle moves to: done becomes
// in_progress, anything else becomes done
func toggledStatus(status models.TaskStatus) models.TaskStatus {
	if status == models.StatusDone {
		return models.StatusInProgress
	}
	return models.StatusDone
}
