package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run runs host as a bubbletea program until it quits. The flows are
// detached before Run returns, even when the program fails.
func Run(host *Host) error {
	var opts []tea.ProgramOption
	if host.opts.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(host, opts...).Run()
	host.Shutdown()
	return err
}
