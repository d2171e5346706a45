package due

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func day(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

func TestFrom_Buckets(t *testing.T) {
	now := time.Date(2026, time.August, 31, 15, 4, 5, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		overdue  bool
		today    bool
		soon     bool
		later    bool
	}{
		{"overdue", now.Add(-day(5)), true, false, false, false},
		{"due today", now, false, true, true, false},
		{"due in 1 day", now.Add(day(1)), false, false, true, false},
		{"due in 3 days", now.Add(day(3)), false, false, true, false},
		{"due in 4+ days", now.Add(day(5)), false, false, false, true},
		{"due in over a week", now.Add(day(10)), false, false, false, true},
		{"due in exactly a month", now.AddDate(0, 1, 0), false, false, false, true},
		{"overdue by weeks", now.Add(-day(20)), true, false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			c := From(tc.deadline, now)
			is.Equal(c.Overdue, tc.overdue)
			is.Equal(c.DueToday, tc.today)
			is.Equal(c.DueSoon, tc.soon)
			is.Equal(c.DueLater, tc.later)
		})
	}
}

func TestFrom_NormalizesToCalendarDays(t *testing.T) {
	is := is.New(t)

	// Just past midnight vs just before the next one: still the same day.
	now := time.Date(2026, time.August, 31, 0, 1, 0, 0, time.UTC)
	deadline := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC)
	c := From(deadline, now)
	is.True(c.DueToday)
	is.True(!c.Overdue)

	// Late tonight vs early tomorrow is a full calendar day apart.
	c = From(deadline.Add(2*time.Minute), now)
	is.Equal(c.Duration, Breakdown{Days: 1})
	is.True(c.DueSoon)
}

func TestFrom_Breakdown(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		want     Breakdown
	}{
		{"five days", now.Add(day(5)), Breakdown{Days: 5}},
		{"ten days rolls into weeks", now.Add(day(10)), Breakdown{Weeks: 1, Days: 3}},
		{"one month", now.AddDate(0, 1, 0), Breakdown{Months: 1}},
		{"a year and change", now.AddDate(1, 2, 0), Breakdown{Years: 1, Months: 2}},
		{"past is negative", now.Add(-day(5)), Breakdown{Days: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(From(tc.deadline, now).Duration, tc.want)
		})
	}
}

func TestLabel(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		done     bool
		want     string
	}{
		{"overdue and done", now.Add(-day(2)), true, "Completed"},
		{"overdue and pending", now.Add(-day(2)), false, "Overdue"},
		{"due today", now, false, "Due today"},
		{"due tomorrow", now.Add(day(1)), false, "Due in 1 day"},
		{"due in ten days", now.Add(day(10)), false, "Due in 1 week 3 days"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(Label(From(tc.deadline, now), tc.done), tc.want)
		})
	}
}

func TestBreakdown_Humanize(t *testing.T) {
	is := is.New(t)
	is.Equal(Breakdown{Days: 3}.Humanize(), "3 days")
	is.Equal(Breakdown{Days: 1}.Humanize(), "1 day")
	is.Equal(Breakdown{Weeks: 1, Days: 3}.Humanize(), "1 week 3 days")
	is.Equal(Breakdown{Years: 1, Months: 2}.Humanize(), "1 year 2 months")
	is.Equal(Breakdown{}.Humanize(), "0 days")
}
