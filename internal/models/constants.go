package models

// ============================================================================
// TASK STATUS
// ============================================================================

// TaskStatus is the lifecycle state of a task
type TaskStatus string

// Task statuses
const (
	StatusNew        TaskStatus = "new"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// DefaultTaskStatus is assigned to every newly created task
const DefaultTaskStatus = StatusNew

// Valid reports whether s is one of the known statuses
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label returns the human readable status name
func (s TaskStatus) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// ============================================================================
// PRIORITY
// ============================================================================

// Priority levels
const (
	PriorityVeryLow  = 1
	PriorityLow      = 2
	PriorityMedium   = 3
	PriorityHigh     = 4
	PriorityVeryHigh = 5
)

// Priority bounds, inclusive
const (
	MinPriority = PriorityVeryLow
	MaxPriority = PriorityVeryHigh
)

// DefaultPriority is assigned to every newly created task
const DefaultPriority = PriorityMedium

// PriorityLabel returns the display name for a priority level
func PriorityLabel(p int) string {
	switch p {
	case PriorityVeryLow:
		return "Very Low"
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityVeryHigh:
		return "Very High"
	}
	return "Unknown"
}

// ============================================================================
// LIMITS
// ============================================================================

// MaxNameLength bounds project names and task titles (in characters, after trimming)
const MaxNameLength = 255
