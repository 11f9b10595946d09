package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
	"github.com/cdhanna/fadebasic-sub000/foundation/utils/filex"
	"github.com/cdhanna/fadebasic-sub000/internal/tui"
)

// ReportedError marks an error whose diagnostics were already printed. It
// still carries the coded error for the exit status.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &ReportedError{Err: err}
}

// report prints the diagnostics of a failed run to stderr. Errors without
// diagnostics are returned unchanged for main to print.
func report(cmd *cobra.Command, path, source string, res *basic.Result, err error) error {
	if err == nil || res == nil || len(res.Diagnostics) == 0 {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderDiagnostics(tui.NewSource(path, source), res.Diagnostics))
	return reported(err)
}

// maxFileSize caps what the tools read before the lexer's own limit applies
const maxFileSize = 64 << 20

// sourcePatterns name the files picked up from directory arguments
var sourcePatterns = []string{"*.fbasic", "*.fb"}

// readSource reads a program file
func readSource(path string) (string, error) {
	return filex.ReadText(path, maxFileSize)
}

// vocabulary returns the standard commands merged with the config and
// --commands files
func vocabulary() (*commands.Collection, error) {
	opts := commands.Options{Logger: logger}
	cmds, err := commands.Standard(opts)
	if err != nil {
		return nil, err
	}

	files := append(append([]string{}, cfg.Commands.Files...), commandFiles...)
	if len(files) == 0 {
		return cmds, nil
	}

	extra, err := commands.LoadFiles(files, opts)
	if err != nil {
		return nil, err
	}
	if err := cmds.Merge(extra); err != nil {
		return nil, mdwerror.Wrap(err, "command files clash with the standard vocabulary").
			WithOperation("cmd.vocabulary")
	}
	return cmds, nil
}

// newEngine builds an engine from the loaded configuration. recoverAll
// forces error recovery on.
func newEngine(engineLogger *mdwlog.Logger, recoverAll bool) (*basic.Engine, error) {
	cmds, err := vocabulary()
	if err != nil {
		return nil, err
	}
	return basic.New(basic.Options{
		Logger:                engineLogger,
		Commands:              cmds,
		MaxSourceLength:       cfg.Lexer.MaxSourceLength,
		MaxConstantExpansions: cfg.Lexer.MaxConstantExpansions,
		Recover:               recoverAll || cfg.Parser.Recover,
		MaxErrors:             cfg.Parser.MaxErrors,
		SkipValidation:        cfg.Parser.SkipValidation,
	})
}
