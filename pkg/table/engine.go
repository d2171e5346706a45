package table

import (
	"sort"
	"strings"
	"time"

	"github.com/veldt/taskdeck/pkg/pagination"
	"github.com/veldt/taskdeck/pkg/task"
	"github.com/veldt/taskdeck/pkg/task/due"
)

// SortOrder cycles unsorted → ascending → descending → unsorted.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

// PageSizes are the selectable page sizes.
var PageSizes = []int{5, 10, 20}

const (
	DefaultPageSize = 10
	pageWindowSize  = 5
)

// Engine holds the view state for the task table and derives the rows to
// render. It never mutates the tasks it is given; every View call runs the
// full filter → sort → paginate pipeline against a caller-supplied now.
type Engine struct {
	tasks []task.ToDo

	textFilter string
	dueTags    map[DueTag]bool
	statusTags map[StatusTag]bool

	sortColumn ColumnID
	sortOrder  SortOrder

	pageIndex int
	pageSize  int

	selected map[int]struct{}

	// onTextFilterChange mirrors the search value somewhere external, the
	// query-parameter analog. A hook keeps that side effect out of the
	// engine so it stays pure and testable.
	onTextFilterChange func(string)
}

// New returns an engine with the initial view state: sorted by time-left
// ascending, ten rows per page, nothing filtered or selected.
func New() *Engine {
	return &Engine{
		dueTags:    map[DueTag]bool{},
		statusTags: map[StatusTag]bool{},
		sortColumn: ColTimeLeft,
		sortOrder:  SortAsc,
		pageSize:   DefaultPageSize,
		selected:   map[int]struct{}{},
	}
}

// SetTasks replaces the task collection wholesale. Filters, sort, page and
// selection survive the swap; the page index is re-clamped on the next View.
func (e *Engine) SetTasks(ts []task.ToDo) {
	e.tasks = ts
}

// OnTextFilterChange registers the mirror hook, fired whenever the text
// filter value actually changes.
func (e *Engine) OnTextFilterChange(fn func(string)) {
	e.onTextFilterChange = fn
}

func (e *Engine) TextFilter() string { return e.textFilter }

func (e *Engine) SetTextFilter(value string) {
	if value == e.textFilter {
		return
	}
	e.textFilter = value
	if e.onTextFilterChange != nil {
		e.onTextFilterChange(value)
	}
}

func (e *Engine) DueTagActive(tag DueTag) bool { return e.dueTags[tag] }

func (e *Engine) ToggleDueTag(tag DueTag) {
	if e.dueTags[tag] {
		delete(e.dueTags, tag)
		return
	}
	e.dueTags[tag] = true
}

func (e *Engine) StatusTagActive(tag StatusTag) bool { return e.statusTags[tag] }

func (e *Engine) ToggleStatusTag(tag StatusTag) {
	if e.statusTags[tag] {
		delete(e.statusTags, tag)
		return
	}
	e.statusTags[tag] = true
}

// Sort reports the active sort column and order.
func (e *Engine) Sort() (ColumnID, SortOrder) {
	return e.sortColumn, e.sortOrder
}

// CycleSort advances the sort state for a column: a fresh column starts
// ascending, a second press flips to descending, a third turns sorting off.
// Unsortable columns are ignored.
func (e *Engine) CycleSort(id ColumnID) {
	col, ok := columnByID(id)
	if !ok || !col.Sortable {
		return
	}
	if e.sortColumn != id || e.sortOrder == SortNone {
		e.sortColumn = id
		e.sortOrder = SortAsc
		return
	}
	switch e.sortOrder {
	case SortAsc:
		e.sortOrder = SortDesc
	case SortDesc:
		e.sortOrder = SortNone
	}
}

func (e *Engine) PageIndex() int { return e.pageIndex }

func (e *Engine) SetPageIndex(i int) {
	e.pageIndex = i
}

func (e *Engine) PageSize() int { return e.pageSize }

// SetPageSize switches to one of the selectable sizes and goes back to the
// first page. Unknown sizes are ignored.
func (e *Engine) SetPageSize(size int) {
	for _, s := range PageSizes {
		if s == size {
			e.pageSize = size
			e.pageIndex = 0
			return
		}
	}
}

// Row pairs a task with its render-time derivations.
type Row struct {
	Task     task.ToDo
	Class    due.Classification
	Selected bool
}

// View is the render model for one pass: the page rows plus the pagination
// summary.
type View struct {
	Rows       []Row
	Filtered   int
	Total      int
	PageIndex  int
	PageCount  int
	PageWindow []pagination.Entry
}

// View derives the current page. The same now is shared by every row so a
// batch evaluated near midnight cannot straddle two days.
func (e *Engine) View(now time.Time) View {
	filtered := e.filter(now)
	e.sortTasks(filtered)

	pageCount := (len(filtered) + e.pageSize - 1) / e.pageSize
	if pageCount == 0 {
		// A single empty page keeps the window math valid.
		pageCount = 1
	}
	if e.pageIndex > pageCount-1 {
		e.pageIndex = pageCount - 1
	}
	if e.pageIndex < 0 {
		e.pageIndex = 0
	}

	start := e.pageIndex * e.pageSize
	end := min(start+e.pageSize, len(filtered))
	rows := make([]Row, 0, e.pageSize)
	if start < len(filtered) {
		for _, t := range filtered[start:end] {
			_, sel := e.selected[t.ID]
			rows = append(rows, Row{
				Task:     t,
				Class:    due.From(t.Deadline, now),
				Selected: sel,
			})
		}
	}

	return View{
		Rows:       rows,
		Filtered:   len(filtered),
		Total:      len(e.tasks),
		PageIndex:  e.pageIndex,
		PageCount:  pageCount,
		PageWindow: pagination.Window(0, pageCount-1, e.pageIndex, pageWindowSize),
	}
}

// filter keeps tasks matching the text needle AND at least one active tag
// in every non-empty tag set. An empty filter matches everything.
func (e *Engine) filter(now time.Time) []task.ToDo {
	needle := strings.ToLower(strings.TrimSpace(e.textFilter))
	out := make([]task.ToDo, 0, len(e.tasks))
	for _, t := range e.tasks {
		if needle != "" && !strings.Contains(strings.ToLower(t.Text), needle) {
			continue
		}
		if len(e.dueTags) > 0 {
			c := due.From(t.Deadline, now)
			match := e.dueTags[TagOverdue] && c.Overdue ||
				e.dueTags[TagIn3Days] && c.DueSoon ||
				e.dueTags[TagIn4PlusDays] && c.DueLater
			if !match {
				continue
			}
		}
		if len(e.statusTags) > 0 {
			match := e.statusTags[TagDone] && t.Done ||
				e.statusTags[TagInProgress] && !t.Done
			if !match {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// sortTasks orders ts in place by the active column. The sort is stable so
// ties keep their original relative order.
func (e *Engine) sortTasks(ts []task.ToDo) {
	if e.sortOrder == SortNone {
		return
	}
	col, ok := columnByID(e.sortColumn)
	if !ok || col.SortKey == nil {
		return
	}
	sort.SliceStable(ts, func(i, j int) bool {
		a, b := col.SortKey(ts[i]), col.SortKey(ts[j])
		if e.sortOrder == SortDesc {
			return b < a
		}
		return a < b
	})
}
