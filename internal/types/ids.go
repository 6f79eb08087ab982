package types

// ID type aliases provide semantic meaning and reduce repetitive int conversions.
// These aliases document what each integer represents in the domain model.
//
// Negative values are provisional IDs handed out by the client-side board store
// before the backend has acknowledged a create.

// UserID identifies the principal that owns a board
type UserID int

// BoardID identifies a user's single board
type BoardID int

// ColumnID identifies a unique column within a board
type ColumnID int

// TaskID identifies a unique task within a column
type TaskID int

// ToInt converts type alias back to int for compatibility with database/sql scanning
func (id UserID) ToInt() int {
	return int(id)
}

func (id BoardID) ToInt() int {
	return int(id)
}

func (id ColumnID) ToInt() int {
	return int(id)
}

func (id TaskID) ToInt() int {
	return int(id)
}

// Provisional reports whether the ID was assigned locally and is still awaiting
// a server-assigned identity.
func (id ColumnID) Provisional() bool {
	return id < 0
}

func (id TaskID) Provisional() bool {
	return id < 0
}
