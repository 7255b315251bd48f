package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/ghexplorer/internal/model"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

// chevron marks an entry as something that can be opened.
const chevron = "›"

type repoItem struct {
	repo model.RepositorySummary
}

func (i repoItem) Title() string {
	return fmt.Sprintf("%s %s", i.repo.FullName, chevron)
}

// Description shows the owner login where a browser would show the avatar.
func (i repoItem) Description() string {
	owner := "@" + i.repo.Owner.Login

	if i.repo.Description == "" {
		return owner
	}

	return fmt.Sprintf("%s · %s", owner, i.repo.Description)
}

func (i repoItem) FilterValue() string {
	return i.repo.FullName
}

func toItems(repos []model.RepositorySummary) []list.Item {
	items := make([]list.Item, len(repos))
	for i, repo := range repos {
		items[i] = repoItem{repo: repo}
	}

	return items
}

func newRepoList(repos []model.RepositorySummary) list.Model {
	l := list.New(toItems(repos), list.NewDefaultDelegate(), 0, 0)

	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("repository", "repositories")
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return l
}
