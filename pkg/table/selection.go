package table

import (
	"sort"
	"time"
)

// Selection is a set of task ids, not positions, so it survives
// re-filtering, re-sorting and page changes. Page-level operations act only
// on the rows currently visible.

func (e *Engine) IsSelected(id int) bool {
	_, ok := e.selected[id]
	return ok
}

func (e *Engine) ToggleSelected(id int) {
	if e.IsSelected(id) {
		delete(e.selected, id)
		return
	}
	e.selected[id] = struct{}{}
}

func (e *Engine) Deselect(id int) {
	delete(e.selected, id)
}

// Selected returns the selected ids in ascending order.
func (e *Engine) Selected() []int {
	ids := make([]int, 0, len(e.selected))
	for id := range e.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (e *Engine) SelectedCount() int { return len(e.selected) }

func (e *Engine) ClearSelection() {
	e.selected = map[int]struct{}{}
}

// PageFullySelected reports whether every visible row is selected. False on
// an empty page.
func (e *Engine) PageFullySelected(now time.Time) bool {
	v := e.View(now)
	if len(v.Rows) == 0 {
		return false
	}
	for _, r := range v.Rows {
		if !r.Selected {
			return false
		}
	}
	return true
}

// TogglePageSelected mimics the header checkbox: if every visible row is
// selected the page is deselected, otherwise all visible rows join the
// selection.
func (e *Engine) TogglePageSelected(now time.Time) {
	v := e.View(now)
	if e.PageFullySelected(now) {
		for _, r := range v.Rows {
			delete(e.selected, r.Task.ID)
		}
		return
	}
	for _, r := range v.Rows {
		e.selected[r.Task.ID] = struct{}{}
	}
}
