// Package cli provides the terminal user interface components for heroes.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Menu: main interactive menu returning the chosen action
//   - Picker: filterable list of stored presets or battles
//   - Replay: step through a recorded battle with the board state
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
