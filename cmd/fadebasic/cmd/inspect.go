package cmd

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cdhanna/fadebasic-sub000/internal/tui/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Browse tokens, syntax tree and diagnostics interactively",
	Long: `Open a terminal UI with one tab each for the token stream, the syntax tree,
the diagnostics and the collected comments. Parsing always recovers so the
tree shows every statement that could be read.

Keys:
  tab / → / ←   switch tabs
  1-4           jump to a tab
  ↑ ↓ PgUp PgDn scroll
  r             reload the file
  q / Esc       quit`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	// the program owns the terminal, so engine logs would corrupt the screen
	engine, err := newEngine(logger.WithOutput(io.Discard), true)
	if err != nil {
		return err
	}

	path := args[0]
	load := func() (*inspect.Document, error) {
		source, err := readSource(path)
		if err != nil {
			return nil, err
		}
		// diagnostics are shown in their own tab
		res, _ := engine.Parse(source)
		return &inspect.Document{Name: path, Source: source, Result: res}, nil
	}

	p := tea.NewProgram(inspect.New(load), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
