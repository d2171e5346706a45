// Package ui is the terminal front end: the task table, the filter panel,
// the search input and the create/edit dialog.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/veldt/taskdeck/internal/client"
	"github.com/veldt/taskdeck/pkg/persist"
	"github.com/veldt/taskdeck/pkg/table"
	"github.com/veldt/taskdeck/pkg/task"
)

type state int

const (
	stateLoading state = iota
	stateError
	stateReady
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeForm
)

const requestTimeout = 10 * time.Second

type (
	todosMsg    []task.ToDo
	fetchErrMsg struct{ err error }
	savedMsg    struct {
		todo    task.ToDo
		created bool
	}
	deletedMsg    struct{ ids []int }
	mutateErrMsg  struct{ err error }
	clearToastMsg struct{}
)

// App is the root bubbletea model.
type App struct {
	engine *table.Engine
	client *client.Client
	log    *log.Logger

	state state
	mode  mode
	err   error

	search textinput.Model
	spin   spinner.Model
	form   Form

	cursor int
	width  int
	height int

	toast      string
	toastIsErr bool
}

// NewApp wires the engine to the service client and hydrates the search
// text from its mirror file before the mirror hook is registered, so the
// hydration itself is not written back.
func NewApp(cl *client.Client, mirror *persist.SearchState, pageSize int, logger *log.Logger) App {
	engine := table.New()
	engine.SetPageSize(pageSize)

	query, err := mirror.Load()
	if err != nil {
		logger.Warn("search state unreadable", "err", err)
	}
	engine.SetTextFilter(query)
	engine.OnTextFilterChange(func(value string) {
		if err := mirror.Save(value); err != nil {
			logger.Warn("search state not saved", "err", err)
		}
	})

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.Prompt = "/ "
	search.CharLimit = 80
	search.Width = 40
	search.SetValue(query)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return App{
		engine: engine,
		client: cl,
		log:    logger,
		search: search,
		spin:   sp,
	}
}

func (m App) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd())
}

func (m App) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ts, err := m.client.List(ctx)
		if err != nil {
			return fetchErrMsg{err}
		}
		return todosMsg(ts)
	}
}

func (m App) upsertCmd(t task.ToDo, update bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var (
			out task.ToDo
			err error
		)
		if update {
			out, err = m.client.Update(ctx, t)
		} else {
			out, err = m.client.Create(ctx, t)
		}
		if err != nil {
			return mutateErrMsg{err}
		}
		return savedMsg{todo: out, created: !update}
	}
}

func (m App) deleteCmd(ids []int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		for _, id := range ids {
			if err := m.client.Delete(ctx, id); err != nil {
				// Earlier deletes already landed; the refresh after the
				// error toast picks them up.
				return mutateErrMsg{err}
			}
		}
		return deletedMsg{ids: ids}
	}
}

func toastCmd() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case todosMsg:
		m.state = stateReady
		m.engine.SetTasks(msg)
		m.clampCursor()
		return m, nil

	case fetchErrMsg:
		m.state = stateError
		m.err = msg.err
		m.log.Error("list failed", "err", msg.err)
		return m, nil

	case savedMsg:
		m.mode = modeBrowse
		verb := "updated"
		if msg.created {
			verb = "created"
		}
		m.toast = fmt.Sprintf("Task: %q has been %s.", msg.todo.Text, verb)
		m.toastIsErr = false
		return m, tea.Batch(m.fetchCmd(), toastCmd())

	case deletedMsg:
		for _, id := range msg.ids {
			m.engine.Deselect(id)
		}
		noun := "task"
		if len(msg.ids) > 1 {
			noun = "tasks"
		}
		m.toast = fmt.Sprintf("%d %s deleted.", len(msg.ids), noun)
		m.toastIsErr = false
		return m, tea.Batch(m.fetchCmd(), toastCmd())

	case mutateErrMsg:
		m.form.SetSubmitting(false)
		m.toast = msg.err.Error()
		m.toastIsErr = true
		m.log.Error("mutation failed", "err", msg.err)
		return m, tea.Batch(m.fetchCmd(), toastCmd())

	case clearToastMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Dismissal is suppressed while the mutation is in flight.
		if !m.form.Submitting() {
			m.mode = modeBrowse
		}
		return m, nil
	case "enter":
		if m.form.Submitting() {
			return m, nil
		}
		draft := m.form.Draft()
		t, err := draft.Validate()
		if err != nil {
			if errs, ok := err.(task.FieldErrors); ok {
				m.form.SetErrors(errs)
			}
			return m, nil
		}
		m.form.SetErrors(nil)
		m.form.SetSubmitting(true)
		return m, m.upsertCmd(t, draft.ID != nil)
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.mode = modeBrowse
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.engine.SetTextFilter(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "r":
		m.state = stateLoading
		return m, tea.Batch(m.spin.Tick, m.fetchCmd())

	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()

	case "h", "left":
		m.engine.SetPageIndex(m.engine.PageIndex() - 1)
		m.cursor = 0
	case "l", "right":
		m.engine.SetPageIndex(m.engine.PageIndex() + 1)
		m.cursor = 0

	case " ":
		if row, ok := m.rowAtCursor(now); ok {
			m.engine.ToggleSelected(row.Task.ID)
		}
	case "a":
		m.engine.TogglePageSelected(now)
	case "A":
		m.engine.ClearSelection()

	case "n":
		m.form = NewCreateForm()
		m.mode = modeForm
	case "enter":
		if row, ok := m.rowAtCursor(now); ok {
			m.form = NewEditForm(row.Task)
			m.mode = modeForm
		}
	case "x":
		ids := m.engine.Selected()
		if len(ids) == 0 {
			row, ok := m.rowAtCursor(now)
			if !ok {
				return m, nil
			}
			ids = []int{row.Task.ID}
		}
		return m, m.deleteCmd(ids)

	case "/":
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink

	case "o":
		m.engine.ToggleDueTag(table.TagOverdue)
		m.cursor = 0
	case "3":
		m.engine.ToggleDueTag(table.TagIn3Days)
		m.cursor = 0
	case "4":
		m.engine.ToggleDueTag(table.TagIn4PlusDays)
		m.cursor = 0
	case "c":
		m.engine.ToggleStatusTag(table.TagDone)
		m.cursor = 0
	case "w":
		m.engine.ToggleStatusTag(table.TagInProgress)
		m.cursor = 0

	case "s":
		m.engine.CycleSort(table.ColTimeLeft)
	case "d":
		m.engine.CycleSort(table.ColDeadline)
	case "t":
		m.engine.CycleSort(table.ColStatus)

	case "+", "=":
		m.cyclePageSize(1)
	case "-":
		m.cyclePageSize(-1)
	}
	return m, nil
}

func (m *App) cyclePageSize(delta int) {
	sizes := table.PageSizes
	for i, s := range sizes {
		if s == m.engine.PageSize() {
			next := ((i+delta)%len(sizes) + len(sizes)) % len(sizes)
			m.engine.SetPageSize(sizes[next])
			m.cursor = 0
			return
		}
	}
}

func (m *App) clampCursor() {
	rows := len(m.engine.View(time.Now()).Rows)
	if m.cursor > rows-1 {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m App) rowAtCursor(now time.Time) (table.Row, bool) {
	rows := m.engine.View(now).Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return table.Row{}, false
	}
	return rows[m.cursor], true
}
