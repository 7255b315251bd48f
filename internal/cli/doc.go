// Package cli provides the terminal user interface for ghexplorer.
//
// The package uses [Bubbletea] for the interactive dashboard and
// [Lipgloss] for styling. Components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Dashboard
//
// [DashboardModel] renders a [board.Board]:
//   - a form with a single text field and a Search button
//   - the board's error message below the form, with the field border red
//   - a filterable list of repository cards, in insertion order
//
// Submitting the form starts a lookup as a [tea.Cmd]. Lookups run
// concurrently and are applied in the order they complete, so the board
// is only ever touched from Update.
//
// Selecting a card ends the program; [DashboardModel.Selected] returns the
// chosen repository so the caller can print its detail route.
//
// Keys:
//
//	enter       submit the form, or open the selected card
//	tab         move focus between the form and the list
//	/           filter the list (when focused)
//	esc ctrl+c  quit
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
