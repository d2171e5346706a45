// Package due classifies task deadlines against a reference day.
package due

import "time"

// Classification buckets a deadline relative to "today". DueSoon covers
// today as well as the 1-3 day case, so it is the only bucket that overlaps
// another; the rest are mutually exclusive.
type Classification struct {
	Overdue  bool
	DueToday bool
	DueSoon  bool
	DueLater bool
	Duration Breakdown
}

// Breakdown is a calendar-aware distance in descending units. Components
// are negative when the deadline lies in the past.
type Breakdown struct {
	Years  int
	Months int
	Weeks  int
	Days   int
}

func (b Breakdown) zero() bool {
	return b.Years == 0 && b.Months == 0 && b.Weeks == 0 && b.Days == 0
}

// StartOfDay normalizes t to midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// From classifies deadline against now. Both instants are normalized to
// midnight first, so only calendar days are compared. Callers evaluating a
// batch must share a single now across it, or rows evaluated around
// midnight may disagree on what "today" is.
func From(deadline, now time.Time) Classification {
	end := StartOfDay(deadline)
	today := StartOfDay(now)

	d := between(today, end)
	c := Classification{
		Overdue:  end.Before(today),
		DueToday: d.zero(),
		Duration: d,
	}
	dayGrain := d.Years == 0 && d.Months == 0 && d.Weeks == 0
	c.DueSoon = c.DueToday || (dayGrain && d.Days >= 1 && d.Days <= 3)
	// Anything that rolled into weeks, months or years is far out even when
	// its residual days component is small.
	c.DueLater = !c.Overdue && !c.DueSoon
	return c
}

// between computes the calendar distance from start to end. Years and
// months are walked with AddDate so month-length quirks resolve the same
// way the calendar does; whatever remains splits into weeks and days.
func between(start, end time.Time) Breakdown {
	if end.Before(start) {
		b := between(end, start)
		return Breakdown{Years: -b.Years, Months: -b.Months, Weeks: -b.Weeks, Days: -b.Days}
	}
	var b Breakdown
	for !start.AddDate(b.Years+1, 0, 0).After(end) {
		b.Years++
	}
	cur := start.AddDate(b.Years, 0, 0)
	for !cur.AddDate(0, b.Months+1, 0).After(end) {
		b.Months++
	}
	cur = cur.AddDate(0, b.Months, 0)
	days := 0
	for !cur.AddDate(0, 0, days+1).After(end) {
		days++
	}
	b.Weeks = days / 7
	b.Days = days % 7
	return b
}
