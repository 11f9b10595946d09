package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/ast"
)

var parseRecover bool

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a program",
	Long: `Print the program as S-expressions, one top-level statement per line.
With --recover, statements that fail to parse print as (error CODE) and the
diagnostics go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseRecover, "recover", false, "keep parsing after errors")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}
	engine, err := newEngine(logger, parseRecover)
	if err != nil {
		return err
	}

	res, err := engine.Parse(source)
	if res != nil && res.Program != nil {
		fmt.Fprintln(cmd.OutOrStdout(), ast.Sprint(res.Program))
	}
	if err != nil {
		return report(cmd, args[0], source, res, err)
	}
	return nil
}
