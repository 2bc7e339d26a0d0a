package main

import (
	"fmt"

	"lms/internal/shell"
)

type TabsCmd struct {
	Select        string `short:"s" help:"Tab to mark active (dashboard, courses, paths, progress, admin)"`
	ToggleTheme   bool   `short:"t" help:"Switch between the light and dark theme"`
	ToggleSidebar bool   `help:"Open or close the sidebar"`
}

func (cmd *TabsCmd) Run(g *Globals) error {
	state := g.State
	if state == nil {
		state = shell.NewState(shell.ThemeLight, g.settings().ChatURL)
	}

	if cmd.Select != "" {
		tab, err := shell.ParseTab(cmd.Select)
		if err != nil {
			return err
		}
		if err := state.Nav.Select(tab); err != nil {
			return err
		}
	}
	if cmd.ToggleTheme {
		state.Theme = state.Theme.Toggle()
	}
	if cmd.ToggleSidebar {
		state.Sidebar.Toggle()
	}

	for _, t := range shell.Tabs() {
		marker := " "
		if state.Nav.IsActive(t) {
			marker = "▸"
		}
		fmt.Fprintf(g.Out, "%s %-16s %s\n", marker, t.Label(), t)
	}
	fmt.Fprintf(g.Out, "\nTheme: %s\n", state.Theme)
	fmt.Fprintf(g.Out, "Sidebar: %s\n", openClosed(state.Sidebar.Open))
	fmt.Fprintf(g.Out, "Chat: %s\n", openClosed(state.Chat.IsOpen()))
	return nil
}

func openClosed(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
