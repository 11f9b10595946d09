package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic"
	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
	"github.com/cdhanna/fadebasic-sub000/foundation/utils/filex"
	"github.com/cdhanna/fadebasic-sub000/internal/tui"
	"github.com/cdhanna/fadebasic-sub000/internal/watch"
)

var (
	checkWatch   bool
	checkRecover bool
)

var checkCmd = &cobra.Command{
	Use:   "check FILE|DIR...",
	Short: "Report diagnostics for a program",
	Long: `Parse and validate a program and print every diagnostic with the source
line and a caret under the offending tokens.

Directories are searched for *.fbasic and *.fb files.

The exit status is 0 for a clean program, 2 for lexical or syntax errors
and 3 for duplicate or unknown symbols.

With --watch a single file is checked again after every save until interrupted.
The debounce interval comes from [watch] debounce in the config.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-check whenever the file changes")
	checkCmd.Flags().BoolVar(&checkRecover, "recover", false, "report every failing statement instead of the first")
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(logger, checkRecover || checkWatch)
	if err != nil {
		return err
	}

	if checkWatch {
		if len(args) != 1 {
			return mdwerror.New("--watch takes exactly one file").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.check")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watchCheck(ctx, cmd, engine, args[0])
	}

	files, err := filex.Expand(args, sourcePatterns...)
	if err != nil {
		return err
	}

	// The first failure decides the exit status
	var first error
	for _, path := range files {
		if err := checkOnce(cmd, engine, path); err != nil {
			var rep *ReportedError
			if !errors.As(err, &rep) {
				return err
			}
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// checkOnce prints the diagnostics of one run to stdout
func checkOnce(cmd *cobra.Command, engine *basic.Engine, path string) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}

	res, err := engine.Parse(source)
	if res == nil || (err != nil && len(res.Diagnostics) == 0) {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDiagnostics(tui.NewSource(path, source), res.Diagnostics))
	return reported(err)
}

func watchCheck(ctx context.Context, cmd *cobra.Command, engine *basic.Engine, path string) error {
	w, err := watch.New(path, watch.Options{
		Logger:   logger,
		Debounce: cfg.Watch.Debounce.Duration,
	})
	if err != nil {
		return err
	}

	run := func() {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s\n", tui.HelpStyle.Render(time.Now().Format("15:04:05")), path)
		if err := checkOnce(cmd, engine, path); err != nil {
			var rep *ReportedError
			if !errors.As(err, &rep) {
				logger.ErrorWithErr("check failed", err, mdwlog.Fields{"path": path})
			}
		}
	}

	run()
	return w.Run(ctx, run)
}
