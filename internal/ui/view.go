package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/veldt/taskdeck/pkg/table"
	"github.com/veldt/taskdeck/pkg/task/due"
)

func (m App) View() string {
	if m.mode == modeForm {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("What needs to be done?") + "\n")

	switch m.state {
	case stateLoading:
		b.WriteString("\n " + m.spin.View() + fadedStyle.Render(" Fetching tasks...") + "\n")
		return b.String()
	case stateError:
		b.WriteString("\n " + fadedStyle.Render("Something went wrong, see below") + "\n")
		b.WriteString(" " + errorStyle.Render(m.err.Error()) + "\n\n")
		b.WriteString(" " + fadedStyle.Render("r retry ∙ q quit") + "\n")
		return b.String()
	}

	// One shared reference instant for the entire render pass.
	now := time.Now()
	v := m.engine.View(now)

	b.WriteString(m.searchView() + "\n")
	b.WriteString(m.filterView() + "\n\n")
	b.WriteString(m.tableView(v, now) + "\n")
	b.WriteString(m.paginationView(v) + "\n\n")
	b.WriteString(m.footerView(v))
	return b.String()
}

func (m App) searchView() string {
	if m.mode == modeSearch {
		return m.search.View()
	}
	if q := m.engine.TextFilter(); q != "" {
		return fadedStyle.Render("/ ") + q
	}
	return fadedStyle.Render("/ Search tasks...")
}

func (m App) filterView() string {
	tag := func(active bool, key, label string) string {
		s := "[" + key + "] " + label
		if active {
			return filterOn.Render(s)
		}
		return filterOff.Render(s)
	}
	due := fadedStyle.Render("due:") + " " +
		tag(m.engine.DueTagActive(table.TagOverdue), "o", "overdue") + " " +
		tag(m.engine.DueTagActive(table.TagIn3Days), "3", "in 3 days") + " " +
		tag(m.engine.DueTagActive(table.TagIn4PlusDays), "4", "in 4+ days")
	status := fadedStyle.Render("status:") + " " +
		tag(m.engine.StatusTagActive(table.TagDone), "c", "done") + " " +
		tag(m.engine.StatusTagActive(table.TagInProgress), "w", "in progress")
	return due + "   " + status
}

func (m App) tableView(v table.View, now time.Time) string {
	cols := table.Columns()
	var b strings.Builder

	// header
	sortCol, sortOrder := m.engine.Sort()
	cells := make([]string, 0, len(cols))
	for _, col := range cols {
		title := col.Title
		if col.Sortable {
			switch {
			case col.ID == sortCol && sortOrder == table.SortAsc:
				title += " ↑"
			case col.ID == sortCol && sortOrder == table.SortDesc:
				title += " ↓"
			default:
				title += " ⇅"
			}
		}
		cells = append(cells, pad(title, col.Width))
	}
	b.WriteString("  " + headerStyle.Render(strings.Join(cells, " ")) + "\n")

	if len(v.Rows) == 0 {
		b.WriteString("\n" + fadedStyle.Render("  No results.") + "\n")
		return b.String()
	}

	for i, row := range v.Rows {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		cells = cells[:0]
		for _, col := range cols {
			cells = append(cells, m.cellView(col, row, now))
		}
		b.WriteString(marker + strings.Join(cells, " ") + "\n")
	}
	return b.String()
}

func (m App) cellView(col table.Column, row table.Row, now time.Time) string {
	if col.ID == table.ColSelect {
		box := "[ ]"
		if row.Selected {
			box = "[x]"
		}
		return pad(box, col.Width)
	}

	text := pad(col.Render(row.Task, now), col.Width)
	switch col.ID {
	case table.ColTimeLeft:
		return timeLeftStyle(row.Class, row.Task.Done).Render(text)
	case table.ColStatus:
		if row.Task.Done {
			return badgeDone.Render(text)
		}
		return badgeInProgress.Render(text)
	case table.ColDeadline:
		return fadedStyle.Render(text)
	}
	return text
}

func timeLeftStyle(c due.Classification, done bool) lipgloss.Style {
	switch {
	case c.Overdue && done:
		return completedStyle
	case c.Overdue:
		return overdueStyle
	case c.DueSoon:
		return soonStyle
	default:
		return laterStyle
	}
}

func (m App) paginationView(v table.View) string {
	parts := make([]string, 0, len(v.PageWindow))
	for _, e := range v.PageWindow {
		if e.IsGap() {
			parts = append(parts, fadedStyle.Render("…"))
			continue
		}
		label := strconv.Itoa(int(e) + 1)
		if int(e) == v.PageIndex {
			parts = append(parts, pageActive.Render(label))
		} else {
			parts = append(parts, pageInactive.Render(label))
		}
	}
	summary := fadedStyle.Render(fmt.Sprintf("  %d/%d tasks ∙ %d per page",
		v.Filtered, v.Total, m.engine.PageSize()))
	return "  " + strings.Join(parts, " ") + summary
}

func (m App) footerView(v table.View) string {
	if m.toast != "" {
		style := toastStyle
		if m.toastIsErr {
			style = errorStyle
		}
		return style.Render(m.toast)
	}
	help := "n new ∙ enter edit ∙ space select ∙ a page ∙ x delete ∙ / search ∙ s/d/t sort ∙ q quit"
	if n := m.engine.SelectedCount(); n > 0 {
		noun := "row"
		if n > 1 {
			noun = "rows"
		}
		return errorStyle.Render(fmt.Sprintf("x deletes %d %s", n, noun)) +
			fadedStyle.Render(" ∙ A clears selection")
	}
	return fadedStyle.Render(help)
}

// pad fits s into exactly width terminal cells, truncating with an ellipsis
// when it overflows. Widths are display cells, not runes, so double-width
// glyphs keep the columns aligned. Styling is applied by callers after
// padding so the ANSI codes do not skew the width.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	out := b.String() + "…"
	return out + strings.Repeat(" ", width-lipgloss.Width(out))
}
