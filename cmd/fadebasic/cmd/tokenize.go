package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokenizeComments bool

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize FILE",
	Short: "Print the token stream of a program",
	Long: `Print one token per line as "line:char KIND(raw)". Line breaks that end a
statement show as END_STATEMENT(\n).`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().BoolVar(&tokenizeComments, "comments", false, "also print collected comments")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}
	engine, err := newEngine(logger, false)
	if err != nil {
		return err
	}

	res, err := engine.Tokenize(source)
	if err != nil {
		return report(cmd, args[0], source, res, err)
	}

	out := cmd.OutOrStdout()
	for _, tok := range res.Tokens {
		fmt.Fprintln(out, tok)
	}
	if tokenizeComments {
		for _, c := range res.Comments {
			fmt.Fprintf(out, "%d:%d COMMENT(%s)\n", c.Line, c.Char, c.Text)
		}
	}
	return nil
}
