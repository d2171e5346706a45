package ui

import "github.com/charmbracelet/lipgloss"

const (
	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue   = lipgloss.Color("#4db7ff")
	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Yellow = lipgloss.Color("#c4b810")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 0)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	fadedStyle  = lipgloss.NewStyle().Foreground(Faded)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary)

	// time-left cell colors mirror the original badge palette
	overdueStyle   = lipgloss.NewStyle().Foreground(Red)
	completedStyle = lipgloss.NewStyle().Foreground(Green)
	soonStyle      = lipgloss.NewStyle().Foreground(Yellow)
	laterStyle     = lipgloss.NewStyle().Foreground(Blue)

	badgeDone       = lipgloss.NewStyle().Foreground(Green)
	badgeInProgress = lipgloss.NewStyle().Foreground(Yellow)

	pageActive   = lipgloss.NewStyle().Bold(true).Foreground(Primary).Underline(true)
	pageInactive = lipgloss.NewStyle().Foreground(Secondary)

	filterOn  = lipgloss.NewStyle().Bold(true).Foreground(Blue)
	filterOff = lipgloss.NewStyle().Foreground(Faded)

	errorStyle = lipgloss.NewStyle().Foreground(Red)
	toastStyle = lipgloss.NewStyle().Foreground(Green)
)
