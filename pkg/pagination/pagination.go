// Package pagination computes the ellipsis-compressed set of page numbers
// a paginator renders.
package pagination

// Gap marks an ellipsis between non-adjacent page numbers.
const Gap Entry = -1

// Entry is either a zero-based page index or Gap.
type Entry int

func (e Entry) IsGap() bool { return e == Gap }

// Window returns up to show consecutive page indices centered on current,
// clamped to [first, last]. A window cut off by one boundary is extended on
// the other side so show pages still appear where possible. The boundary
// pages always end up in the result: a single Gap stands in when two or
// more pages are skipped, while a gap of exactly one page is filled with
// the page itself.
func Window(first, last, current, show int) []Entry {
	half := show / 2
	lower := max(first, current-half)
	upper := min(last, current+half)

	entries := make([]Entry, 0, upper-lower+5)
	for i := lower; i <= upper; i++ {
		entries = append(entries, Entry(i))
	}
	for i := lower - 1; i >= first && len(entries) < show; i-- {
		entries = append([]Entry{Entry(i)}, entries...)
	}
	for i := upper + 1; i <= last && len(entries) < show; i++ {
		entries = append(entries, Entry(i))
	}

	if head := entries[0]; head > Entry(first) {
		if head > Entry(first+1) {
			entries = append([]Entry{Entry(first), Gap}, entries...)
		} else {
			entries = append([]Entry{Entry(first)}, entries...)
		}
	}
	if tail := entries[len(entries)-1]; tail < Entry(last) {
		if tail < Entry(last-1) {
			entries = append(entries, Gap)
		}
		entries = append(entries, Entry(last))
	}
	return entries
}
