package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/ghexplorer/internal/board"
	"github.com/inovacc/ghexplorer/internal/model"
)

const logo = `╔═╗╦╔╦╗╦ ╦╦ ╦╔╗   ┌─┐─┐ ┬┌─┐┬  ┌─┐┬─┐┌─┐┬─┐
║ ╦║ ║ ╠═╣║ ║╠╩╗  ├┤ ┌┴┬┘├─┘│  │ │├┬┘├┤ ├┬┘
╚═╝╩ ╩ ╩ ╩╚═╝╚═╝  └─┘┴ └─┴  ┴─┘└─┘┴└─└─┘┴└─`

// chromeHeight is the number of rows used above and below the list.
const chromeHeight = 15

var (
	logoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).MarginTop(1)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	focusedFieldStyle = fieldStyle.BorderForeground(lipgloss.Color("205"))
	errorFieldStyle   = fieldStyle.BorderForeground(lipgloss.Color("196"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("35")).
			Padding(1, 3)
)

type focusArea int

const (
	focusForm focusArea = iota
	focusList
)

type lookupDoneMsg struct {
	result board.Result
}

// DashboardModel is the interactive repository board.
type DashboardModel struct {
	ctx      context.Context
	board    *board.Board
	input    textinput.Model
	list     list.Model
	spinner  spinner.Model
	help     help.Model
	focus    focusArea
	selected *model.RepositorySummary
	quitting bool
}

// NewDashboard creates a dashboard over b. Lookups run with ctx.
func NewDashboard(ctx context.Context, b *board.Board) DashboardModel {
	msgs := b.Messages()

	t := textinput.New()
	t.Placeholder = msgs.Placeholder()
	t.CharLimit = 256
	t.Width = 48
	t.SetValue(b.QueryText)
	t.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return DashboardModel{
		ctx:     ctx,
		board:   b,
		input:   t,
		list:    newRepoList(b.Repositories()),
		spinner: s,
		help:    help.New(),
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, max(msg.Height-v-chromeHeight, 4))
		m.input.Width = min(max(msg.Width-h-20, 16), 72)
		m.help.Width = msg.Width - h

		return m, nil

	case lookupDoneMsg:
		// The outcome is reflected in the board's error line
		_ = m.board.Complete(msg.result)

		m.input.SetValue(m.board.QueryText)
		cmd := m.list.SetItems(toItems(m.board.Repositories()))

		return m, cmd

	case spinner.TickMsg:
		if m.board.Pending() == 0 {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, dashboardKeys.ForceQuit) {
			m.quitting = true

			return m, tea.Quit
		}

		// While filtering, the list owns every key
		if m.focus == focusList && m.list.FilterState() == list.Filtering {
			var cmd tea.Cmd

			m.list, cmd = m.list.Update(msg)

			return m, cmd
		}

		switch {
		case key.Matches(msg, dashboardKeys.Quit):
			m.quitting = true

			return m, tea.Quit

		case key.Matches(msg, dashboardKeys.Switch):
			return m.toggleFocus()

		case key.Matches(msg, dashboardKeys.Enter):
			if m.focus == focusForm {
				return m.submit()
			}

			if i, ok := m.list.SelectedItem().(repoItem); ok {
				repo := i.repo
				m.selected = &repo
				m.quitting = true

				return m, tea.Quit
			}

			return m, nil
		}

		var cmd tea.Cmd

		if m.focus == focusForm {
			m.input, cmd = m.input.Update(msg)
			m.board.QueryText = m.input.Value()

			return m, cmd
		}

		m.list, cmd = m.list.Update(msg)

		return m, cmd
	}

	// Cursor blinks and list filter results
	var inputCmd, listCmd tea.Cmd

	m.input, inputCmd = m.input.Update(msg)
	m.list, listCmd = m.list.Update(msg)

	return m, tea.Batch(inputCmd, listCmd)
}

// submit starts a lookup for the form's text. The form stays editable and
// further submissions may overlap this one.
func (m DashboardModel) submit() (tea.Model, tea.Cmd) {
	m.board.QueryText = m.input.Value()

	sub, err := m.board.Begin(m.board.QueryText)
	if err != nil {
		return m, nil
	}

	cmds := []tea.Cmd{m.fetch(sub)}
	if m.board.Pending() == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}

	return m, tea.Batch(cmds...)
}

func (m DashboardModel) fetch(sub board.Submission) tea.Cmd {
	b, ctx := m.board, m.ctx

	return func() tea.Msg {
		return lookupDoneMsg{result: b.Fetch(ctx, sub)}
	}
}

func (m DashboardModel) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusForm {
		m.focus = focusList
		m.input.Blur()

		return m, nil
	}

	m.focus = focusForm

	return m, m.input.Focus()
}

func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	msgs := m.board.Messages()

	var s strings.Builder

	s.WriteString(logoStyle.Render(logo) + "\n")
	s.WriteString(titleStyle.Render(msgs.Title()) + "\n\n")

	field := fieldStyle
	switch {
	case m.board.HasError():
		field = errorFieldStyle
	case m.focus == focusForm:
		field = focusedFieldStyle
	}

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		field.Render(m.input.View()),
		buttonStyle.Render(msgs.Submit()),
	) + "\n")

	if m.board.HasError() {
		s.WriteString(errorStyle.Render(m.board.ErrorMessage) + "\n")
	}

	if n := m.board.Pending(); n > 0 {
		s.WriteString(m.spinner.View() + " " + mutedStyle.Render(msgs.Pending(n)) + "\n")
	}

	s.WriteString("\n")

	if m.board.Len() == 0 {
		s.WriteString(mutedStyle.Render(msgs.Empty()) + "\n")
	} else {
		s.WriteString(m.list.View() + "\n")
	}

	s.WriteString(m.help.View(dashboardKeys))

	return docStyle.Render(s.String())
}

// Selected returns the entry chosen for navigation, or nil.
func (m DashboardModel) Selected() *model.RepositorySummary {
	return m.selected
}
