// Package table implements the task table engine: the fixed column set,
// the filter/sort/paginate pipeline and id-keyed row selection.
package table

import (
	"time"

	"github.com/veldt/taskdeck/pkg/task"
	"github.com/veldt/taskdeck/pkg/task/due"
)

// ColumnID identifies one of the fixed table columns.
type ColumnID string

const (
	ColSelect   ColumnID = "select"
	ColText     ColumnID = "text"
	ColDeadline ColumnID = "deadline"
	ColTimeLeft ColumnID = "time-left"
	ColStatus   ColumnID = "done"
)

// Column describes one table column. The time-left column is why the
// accessors are split: it sorts by the raw deadline instant, renders a
// humanized classification label and filters on bucket tags, and those
// three values never coincide.
type Column struct {
	ID       ColumnID
	Title    string
	Width    int
	Sortable bool

	// SortKey returns the comparable value for sorting, nil when the
	// column cannot be sorted.
	SortKey func(t task.ToDo) int64
	// Render returns the cell text for a row. now is the shared reference
	// instant for the whole render pass.
	Render func(t task.ToDo, now time.Time) string
}

// Columns returns the fixed column set in display order.
func Columns() []Column {
	return []Column{
		{ID: ColSelect, Width: 4},
		{
			ID:    ColText,
			Title: "Task",
			Width: 42,
			Render: func(t task.ToDo, _ time.Time) string {
				return t.Text
			},
		},
		{
			ID:       ColDeadline,
			Title:    "Due Date",
			Width:    12,
			Sortable: true,
			SortKey: func(t task.ToDo) int64 {
				return t.Deadline.UnixMilli()
			},
			Render: func(t task.ToDo, _ time.Time) string {
				return t.Deadline.Format("2006-01-02")
			},
		},
		{
			ID:       ColTimeLeft,
			Title:    "Time Left",
			Width:    20,
			Sortable: true,
			// The humanized text is display-only; ordering follows the
			// underlying instant.
			SortKey: func(t task.ToDo) int64 {
				return t.Deadline.UnixMilli()
			},
			Render: func(t task.ToDo, now time.Time) string {
				return due.Label(due.From(t.Deadline, now), t.Done)
			},
		},
		{
			ID:       ColStatus,
			Title:    "Status",
			Width:    12,
			Sortable: true,
			SortKey: func(t task.ToDo) int64 {
				if t.Done {
					return 1
				}
				return 0
			},
			Render: func(t task.ToDo, _ time.Time) string {
				if t.Done {
					return "Done"
				}
				return "In progress"
			},
		},
	}
}

func columnByID(id ColumnID) (Column, bool) {
	for _, c := range Columns() {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// DueTag selects a time-left bucket in the filter panel. A row matches a
// tag set when its classification satisfies any selected tag.
type DueTag string

const (
	TagOverdue     DueTag = "overdue"
	TagIn3Days     DueTag = "in-3-days"
	TagIn4PlusDays DueTag = "in-4-plus-days"
)

// StatusTag selects a completion state in the filter panel.
type StatusTag string

const (
	TagDone       StatusTag = "done"
	TagInProgress StatusTag = "in-progress"
)
