package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cdhanna/fadebasic-sub000/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintf(out, "  Lexer:      %s\n", version.ComponentVersion("lexer"))
		fmt.Fprintf(out, "  Parser:     %s\n", version.ComponentVersion("parser"))
		fmt.Fprintf(out, "  Commands:   %s\n", version.ComponentVersion("commands"))
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
