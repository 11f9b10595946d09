package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cdhanna/fadebasic-sub000/cmd/fadebasic/cmd"
	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
)

func main() {
	os.Exit(exit(cmd.Execute(), os.Stderr, mdwlog.GetDefault()))
}

// exit reports err and returns the process exit code. Diagnostics already
// printed by a command are not repeated. With debug logging the full error
// chain is logged as well.
func exit(err error, stderr io.Writer, logger *mdwlog.Logger) int {
	if err == nil {
		return 0
	}

	var reported *cmd.ReportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	if logger.IsLevelEnabled(mdwlog.LevelDebug) {
		logger.LogError(err)
	}
	return mdwerror.GetCode(err).ExitCode()
}
