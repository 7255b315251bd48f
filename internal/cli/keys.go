package cli

import "github.com/charmbracelet/bubbles/key"

type dashboardKeyMap struct {
	Enter     key.Binding
	Switch    key.Binding
	Filter    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search/open"),
	),
	Switch: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// ShortHelp implements help.KeyMap.
func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Switch, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
