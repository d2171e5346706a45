package ui

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/veldt/taskdeck/pkg/task"
)

func TestParseDeadline(t *testing.T) {
	// A Monday.
	now := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)
	today := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want *time.Time
	}{
		{"", nil},
		{"today", &today},
		{"tod", &today},
		{"tomorrow", ptr(today.AddDate(0, 0, 1))},
		{"fri", ptr(today.AddDate(0, 0, 4))},
		{"monday", ptr(today.AddDate(0, 0, 7))}, // today's weekday means next week
		{"2026-09-14", ptr(time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC))},
		{"3", ptr(today.AddDate(0, 0, 3))},
		{"0", &today},
		{"gibberish", nil},
		{"to", nil}, // too short to disambiguate
	}
	for _, tc := range cases {
		t.Run("input "+tc.in, func(t *testing.T) {
			is := is.New(t)
			got := parseDeadline(tc.in, now)
			if tc.want == nil {
				is.Equal(got, nil)
				return
			}
			is.True(got != nil)
			is.True(got.Equal(*tc.want))
		})
	}
}

func TestForm_Draft(t *testing.T) {
	is := is.New(t)

	deadline := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	existing := task.ToDo{ID: 9, Text: "call the landlord", Deadline: deadline, Done: true}

	f := NewEditForm(existing)
	d := f.Draft()
	is.True(d.ID != nil)
	is.Equal(*d.ID, 9)
	is.Equal(d.Text, "call the landlord")
	is.Equal(d.Done, true)
	is.True(d.Deadline != nil)

	// Creating never carries an id or a done flag.
	f = NewCreateForm()
	d = f.Draft()
	is.Equal(d.ID, nil)
	is.Equal(d.Done, false)
	is.Equal(d.Deadline, nil)
}

func ptr(t time.Time) *time.Time { return &t }
