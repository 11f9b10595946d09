package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	mdwstringx "github.com/cdhanna/fadebasic-sub000/foundation/utils/stringx"
)

var commandsPrefix string

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the command vocabulary",
	Long: `List every command the lexer and parser recognize, in name order, with
its signature. Arguments marked ? are optional, ... accepts any number of
values and ref requires a variable.`,
	Args: cobra.NoArgs,
	RunE: runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)

	commandsCmd.Flags().StringVarP(&commandsPrefix, "prefix", "p", "", "only commands starting with this prefix")
}

func runCommands(cmd *cobra.Command, args []string) error {
	cmds, err := vocabulary()
	if err != nil {
		return err
	}

	list := cmds.All()
	if commandsPrefix != "" {
		list = cmds.Prefix(commandsPrefix)
	}

	width := 0
	for _, c := range list {
		if n := utf8.RuneCountInString(c.Signature()); n > width {
			width = n
		}
	}
	for _, c := range list {
		fmt.Fprintln(cmd.OutOrStdout(), mdwstringx.PadRight(c.Signature(), width+2, ' ')+c.Description)
	}
	return nil
}
