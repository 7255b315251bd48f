package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghexplorer/internal/board"
	"github.com/inovacc/ghexplorer/internal/database"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/stretchr/testify/require"
)

var react = model.RepositorySummary{
	FullName:    "facebook/react",
	Description: "A library",
	Owner:       model.Owner{Login: "facebook", AvatarURL: "https://x/a.png"},
}

func lookupFrom(repos ...model.RepositorySummary) board.LookupFunc {
	return func(_ context.Context, id string) (model.RepositorySummary, error) {
		for _, r := range repos {
			if r.FullName == id {
				return r, nil
			}
		}

		return model.RepositorySummary{}, errors.New("404 Not Found")
	}
}

func newTestDashboard(t *testing.T, store database.Store, lookup board.Lookup) DashboardModel {
	t.Helper()

	b, err := board.New(store, lookup, board.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	m := NewDashboard(context.Background(), b)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return next.(DashboardModel)
}

func update(t *testing.T, m DashboardModel, msg tea.Msg) (DashboardModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)

	dm, ok := next.(DashboardModel)
	require.True(t, ok)

	return dm, cmd
}

func typeText(t *testing.T, m DashboardModel, s string) DashboardModel {
	t.Helper()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})

	return m
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}

		return out
	}

	return []tea.Msg{msg}
}

func lookupResults(t *testing.T, cmd tea.Cmd) []lookupDoneMsg {
	t.Helper()

	var out []lookupDoneMsg

	for _, msg := range runCmd(cmd) {
		if done, ok := msg.(lookupDoneMsg); ok {
			out = append(out, done)
		}
	}

	return out
}

func TestDashboard_TypingUpdatesQueryText(t *testing.T) {
	m := newTestDashboard(t, database.NewMemory(), lookupFrom())

	m = typeText(t, m, "facebook/react")

	require.Equal(t, "facebook/react", m.board.QueryText)
	require.Equal(t, "facebook/react", m.input.Value())
}

func TestDashboard_SubmitEmpty(t *testing.T) {
	m := newTestDashboard(t, database.NewMemory(), lookupFrom())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Nil(t, cmd, "an empty query starts no lookup")
	require.Equal(t, "enter the author/name of the repository", m.board.ErrorMessage)
	require.Zero(t, m.board.Pending())
	require.Contains(t, m.View(), "enter the author/name of the repository")
}

func TestDashboard_SubmitSuccess(t *testing.T) {
	store := database.NewMemory()
	m := newTestDashboard(t, store, lookupFrom(react))

	m = typeText(t, m, "facebook/react")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, 1, m.board.Pending())

	// The form stays editable while the lookup runs
	require.Equal(t, "facebook/react", m.input.Value())
	require.Contains(t, m.View(), "1 lookup(s) in progress")

	results := lookupResults(t, cmd)
	require.Len(t, results, 1)

	m, _ = update(t, m, results[0])

	require.Equal(t, []model.RepositorySummary{react}, m.board.Repositories())
	require.Empty(t, m.input.Value())
	require.Empty(t, m.board.QueryText)
	require.False(t, m.board.HasError())
	require.Len(t, m.list.Items(), 1)

	view := m.View()
	require.Contains(t, view, "facebook/react")
	require.Contains(t, view, "@facebook")
	require.NotContains(t, view, "in progress")
}

func TestDashboard_SubmitFailureKeepsInput(t *testing.T) {
	m := newTestDashboard(t, database.NewMemory(), lookupFrom())

	m = typeText(t, m, "bad/repo")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for _, res := range lookupResults(t, cmd) {
		m, _ = update(t, m, res)
	}

	require.Empty(t, m.board.Repositories())
	require.Equal(t, "bad/repo", m.input.Value())
	require.Equal(t, "error looking up the repository", m.board.ErrorMessage)
	require.Contains(t, m.View(), "error looking up the repository")
}

func TestDashboard_OverlappingSubmissions(t *testing.T) {
	first := model.RepositorySummary{FullName: "first/repo", Owner: model.Owner{Login: "first"}}
	second := model.RepositorySummary{FullName: "second/repo", Owner: model.Owner{Login: "second"}}

	m := newTestDashboard(t, database.NewMemory(), lookupFrom(first, second))

	m = typeText(t, m, "first/repo")
	m, cmdA := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Replace the text and submit again before the first lookup lands
	m.input.SetValue("")
	m = typeText(t, m, "second/repo")
	m, cmdB := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, 2, m.board.Pending())

	resA := lookupResults(t, cmdA)
	resB := lookupResults(t, cmdB)
	require.Len(t, resA, 1)
	require.Len(t, resB, 1)

	// Completion order: second, then first
	m, _ = update(t, m, resB[0])
	m, _ = update(t, m, resA[0])

	repos := m.board.Repositories()
	require.Len(t, repos, 2)
	require.Equal(t, "second/repo", repos[0].FullName)
	require.Equal(t, "first/repo", repos[1].FullName)
	require.Zero(t, m.board.Pending())
}

func TestDashboard_SelectNavigates(t *testing.T) {
	store := database.NewMemory()

	data, err := model.EncodeSummaries([]model.RepositorySummary{react})
	require.NoError(t, err)
	require.NoError(t, store.Set(board.StorageKey, string(data)))

	m := newTestDashboard(t, store, lookupFrom())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusList, m.focus)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)

	require.NotNil(t, m.Selected())
	require.Equal(t, "/repositories/facebook/react", m.Selected().Route())
	require.Empty(t, m.View())
}

func TestDashboard_TabReturnsFocusToForm(t *testing.T) {
	m := newTestDashboard(t, database.NewMemory(), lookupFrom())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	require.Equal(t, focusForm, m.focus)
	require.True(t, m.input.Focused())
}

func TestDashboard_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestDashboard(t, database.NewMemory(), lookupFrom())

			m, cmd := update(t, m, msg)
			require.NotNil(t, cmd)

			_, isQuit := cmd().(tea.QuitMsg)
			require.True(t, isQuit)
			require.Nil(t, m.Selected())
		})
	}
}

func TestDashboard_ViewShowsTitleAndEmptyState(t *testing.T) {
	m := newTestDashboard(t, database.NewMemory(), lookupFrom())

	view := m.View()
	require.Contains(t, view, "Explore repositories on GitHub")
	require.Contains(t, view, "Search")
	require.Contains(t, view, "No repositories yet")
}
