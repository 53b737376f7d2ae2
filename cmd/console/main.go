package main

import (
	"flag"
	"fmt"
	"os"

	"recipe-shelf/cmd/console/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	host := flag.String("host", "127.0.0.1", "Server host")
	port := flag.Int("port", 5555, "Server HTTP port")
	flag.Parse()

	client, err := ui.NewClient(*host, *port)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init client:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(ui.NewRootModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "console error:", err)
		os.Exit(1)
	}
}
