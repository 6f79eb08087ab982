package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrorCategories(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrEmptyTitle, ErrValidation)
	assert.ErrorIs(t, ErrTaskTitleTooLong, ErrValidation)
	assert.ErrorIs(t, ErrColumnNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrNotOwner, ErrUnauthorized)
	assert.ErrorIs(t, ErrBoardExists, ErrConflict)

	assert.Equal(t, "column not found", ErrColumnNotFound.Error())

	assert.True(t, IsClientError(ErrTaskNotFound))
	assert.False(t, IsClientError(errors.New("disk full")))
}

func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	title, err := NormalizeColumnTitle("  Review  ")
	require.NoError(t, err)
	assert.Equal(t, "Review", title)

	_, err = NormalizeColumnTitle("   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	long := make([]byte, MaxColumnTitleLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = NormalizeColumnTitle(string(long))
	assert.ErrorIs(t, err, ErrColumnTitleTooLong)
}

// ============================================================================
// Board Tests
// ============================================================================

func sampleBoard() *Board {
	return &Board{
		ID:    1,
		Title: "Work",
		Columns: []*Column{
			{ID: 10, BoardID: 1, Title: "Todo", Order: 0, Tasks: []*Task{
				{ID: 100, ColumnID: 10, Title: "a", Order: 0},
				{ID: 101, ColumnID: 10, Title: "b", Order: 1},
			}},
			{ID: 11, BoardID: 1, Title: "Done", Order: 1},
		},
	}
}

func TestBoardLookups(t *testing.T) {
	t.Parallel()

	b := sampleBoard()

	col, idx := b.Column(11)
	require.NotNil(t, col)
	assert.Equal(t, 1, idx)

	task, holder := b.FindTask(101)
	require.NotNil(t, task)
	assert.Equal(t, "b", task.Title)
	assert.Equal(t, 10, int(holder.ID))

	missing, _ := b.FindTask(999)
	assert.Nil(t, missing)
	assert.Equal(t, 2, b.TaskCount())
}

func TestBoardCloneIsDeep(t *testing.T) {
	t.Parallel()

	b := sampleBoard()
	cp := b.Clone()

	cp.Columns[0].Tasks[0].Title = "changed"
	cp.Columns[0].Tasks = cp.Columns[0].Tasks[:1]

	assert.Equal(t, "a", b.Columns[0].Tasks[0].Title)
	assert.Len(t, b.Columns[0].Tasks, 2)
}

func TestBoardValidate(t *testing.T) {
	t.Parallel()

	b := sampleBoard()
	require.NoError(t, b.Validate())

	b.Columns[0].Tasks[1].Order = 5
	assert.Error(t, b.Validate())

	b = sampleBoard()
	b.Columns[1].Order = 3
	assert.Error(t, b.Validate())

	b = sampleBoard()
	b.Columns[0].Tasks[0].ColumnID = 11
	assert.Error(t, b.Validate())
}

func TestBoardSort(t *testing.T) {
	t.Parallel()

	b := &Board{Columns: []*Column{
		{ID: 2, Order: 1, Tasks: []*Task{{ID: 5, ColumnID: 2, Order: 1}, {ID: 4, ColumnID: 2, Order: 0}}},
		{ID: 1, Order: 0},
	}}
	b.Sort()

	assert.Equal(t, 1, int(b.Columns[0].ID))
	assert.Equal(t, 4, int(b.Columns[1].Tasks[0].ID))
	assert.NoError(t, b.Validate())
}

func TestTaskPatch(t *testing.T) {
	t.Parallel()

	title := "  ship it "
	desc := "notes"
	patch, err := TaskPatch{Title: &title, Description: &desc}.Normalize()
	require.NoError(t, err)

	task := &Task{ID: 1, Title: "old", Description: "old"}
	patch.ApplyTo(task)
	assert.Equal(t, "ship it", task.Title)
	assert.Equal(t, "notes", task.Description)

	blank := " "
	_, err = TaskPatch{Title: &blank}.Normalize()
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.True(t, TaskPatch{}.Empty())
}
