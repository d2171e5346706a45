package due

import (
	"strconv"
	"strings"
)

// Label renders the time-left cell text. Overdue tasks read "Completed"
// once done so finished work does not keep showing as late.
func Label(c Classification, done bool) string {
	switch {
	case c.Overdue && done:
		return "Completed"
	case c.Overdue:
		return "Overdue"
	case c.DueToday:
		return "Due today"
	default:
		return "Due in " + c.Duration.Humanize()
	}
}

// Humanize spells out the non-zero components in descending order,
// e.g. "1 week 3 days".
func (b Breakdown) Humanize() string {
	parts := make([]string, 0, 4)
	add := func(n int, unit string) {
		if n == 0 {
			return
		}
		s := strconv.Itoa(n) + " " + unit
		if n != 1 && n != -1 {
			s += "s"
		}
		parts = append(parts, s)
	}
	add(b.Years, "year")
	add(b.Months, "month")
	add(b.Weeks, "week")
	add(b.Days, "day")
	if len(parts) == 0 {
		return "0 days"
	}
	return strings.Join(parts, " ")
}
