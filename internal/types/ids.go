package types

// ID types give each integer key its own name so a task id can't be passed
// where a project id is expected.

// UserID identifies a registered user
type UserID int

// ProjectID identifies a project owned by a user
type ProjectID int

// TaskID identifies a task inside a project
type TaskID int

// ToInt converts the id back to a plain int
func (id UserID) ToInt() int {
	return int(id)
}

func (id ProjectID) ToInt() int {
	return int(id)
}

func (id TaskID) ToInt() int {
	return int(id)
}

// Valid reports whether the id could refer to a stored row
func (id UserID) Valid() bool {
	return id > 0
}

func (id ProjectID) Valid() bool {
	return id > 0
}

func (id TaskID) Valid() bool {
	return id > 0
}
