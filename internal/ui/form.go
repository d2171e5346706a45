package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldt/taskdeck/pkg/task"
)

const (
	fieldText = iota
	fieldDeadline
	fieldDone
	fieldCount
)

var (
	formBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Faded).
		Padding(1, 2)

	formLabel = lipgloss.NewStyle().Foreground(Secondary)
	checkmark = lipgloss.NewStyle().Bold(true).Foreground(Green).Render("✓")
	cross     = lipgloss.NewStyle().Bold(true).Foreground(Red).Render("✗")
)

// Form is the create/edit dialog. The done field is only reachable when
// editing: a task cannot be created already done.
type Form struct {
	isEdit bool
	id     int
	done   bool

	text     textinput.Model
	deadline textinput.Model
	parsed   *time.Time

	focus      int
	errs       task.FieldErrors
	submitting bool
}

func newInput(placeholder string, limit int) textinput.Model {
	i := textinput.New()
	i.Placeholder = placeholder
	i.CharLimit = limit
	i.Prompt = ""
	i.Width = 40
	return i
}

func NewCreateForm() Form {
	f := Form{
		text:     newInput("What needs to get done?", 120),
		deadline: newInput("today, tomorrow, fri, 2026-09-14, 3", 20),
	}
	f.text.Focus()
	return f
}

func NewEditForm(t task.ToDo) Form {
	f := Form{
		isEdit: true,
		id:     t.ID,
		done:   t.Done,

		text:     newInput("What needs to get done?", 120),
		deadline: newInput("today, tomorrow, fri, 2026-09-14, 3", 20),
	}
	f.text.SetValue(t.Text)
	f.deadline.SetValue(t.Deadline.Format("2006-01-02"))
	f.parsed = parseDeadline(f.deadline.Value(), time.Now())
	f.text.Focus()
	return f
}

// SetSubmitting freezes the form while a mutation is in flight so the user
// cannot double-submit or abandon an unconfirmed edit.
func (f *Form) SetSubmitting(v bool) { f.submitting = v }

func (f Form) Submitting() bool { return f.submitting }

// SetErrors attaches validation messages shown inline under the fields.
func (f *Form) SetErrors(errs task.FieldErrors) { f.errs = errs }

// Draft builds the unvalidated payload from the current field values.
func (f Form) Draft() task.Draft {
	d := task.Draft{
		Text:     f.text.Value(),
		Deadline: f.parsed,
		Done:     f.done,
	}
	if f.isEdit {
		id := f.id
		d.ID = &id
	}
	return d
}

func (f Form) fields() int {
	if f.isEdit {
		return fieldCount
	}
	return fieldCount - 1 // no done field on create
}

func (f *Form) setFocus(i int) {
	n := f.fields()
	f.focus = ((i % n) + n) % n
	f.text.Blur()
	f.deadline.Blur()
	switch f.focus {
	case fieldText:
		f.text.Focus()
	case fieldDeadline:
		f.deadline.Focus()
	}
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if f.submitting {
		return f, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}
	switch key.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return f, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return f, nil
	case " ":
		if f.focus == fieldDone {
			f.done = !f.done
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldText:
		f.text, cmd = f.text.Update(msg)
	case fieldDeadline:
		f.deadline, cmd = f.deadline.Update(msg)
		f.parsed = parseDeadline(f.deadline.Value(), time.Now())
	}
	return f, cmd
}

func (f Form) View() string {
	var b strings.Builder

	title := "New task"
	if f.isEdit {
		title = "Edit task"
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	b.WriteString(formLabel.Render("task: ") + f.text.View() + "\n")
	if msg := f.errs.ByField("text"); msg != "" {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	indicator := ""
	if f.deadline.Value() != "" {
		indicator = " " + cross
		if f.parsed != nil {
			indicator = " " + checkmark + " " + fadedStyle.Render(f.parsed.Format("2006-01-02"))
		}
	}
	b.WriteString(formLabel.Render("due:  ") + f.deadline.View() + indicator + "\n")
	if msg := f.errs.ByField("deadline"); msg != "" {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	if f.isEdit {
		box := "[ ]"
		if f.done {
			box = "[x]"
		}
		line := formLabel.Render("done: ") + box
		if f.focus == fieldDone {
			line += fadedStyle.Render("  (space toggles)")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	switch {
	case f.submitting:
		b.WriteString(fadedStyle.Render("saving..."))
	case f.isEdit:
		b.WriteString(fadedStyle.Render("enter update ∙ esc cancel"))
	default:
		b.WriteString(fadedStyle.Render("enter add ∙ esc cancel"))
	}

	return formBox.Render(b.String())
}

// parseDeadline turns the field text into a calendar day: "today",
// "tomorrow", a weekday prefix ("fri"), an absolute "2006-01-02" date or a
// bare number of days from now. Nil when nothing sensible matches.
func parseDeadline(s string, now time.Time) *time.Time {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i, word := range []string{"today", "tomorrow"} {
		if len(s) >= 3 && strings.HasPrefix(word, s) {
			d := today.AddDate(0, 0, i)
			return &d
		}
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if len(s) >= 3 && strings.HasPrefix(name, s) {
			days := int(wd - today.Weekday())
			if days <= 0 {
				days += 7
			}
			d := today.AddDate(0, 0, days)
			return &d
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return &t
	}
	if n, err := strconv.Atoi(s); err == nil {
		d := today.AddDate(0, 0, n)
		return &d
	}
	return nil
}
