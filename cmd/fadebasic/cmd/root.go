package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
	"github.com/cdhanna/fadebasic-sub000/pkg/core/config"
	"github.com/cdhanna/fadebasic-sub000/pkg/core/logging"
)

var (
	cfgFile      string
	verbose      bool
	commandFiles []string

	// set by PersistentPreRunE
	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fadebasic",
	Short: "FadeBasic front end tools",
	Long: `fadebasic tokenizes, parses and checks FadeBasic programs.

The command vocabulary is the built-in standard set plus any TOML or YAML
files named in the config ([commands] files) or with --commands.

Commands:
  tokenize  - print the token stream
  parse     - print the syntax tree
  check     - report diagnostics, optionally on every save
  commands  - list the command vocabulary
  inspect   - browse tokens, tree and diagnostics interactively`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $FADEBASIC_CONFIG or ./fadebasic.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&commandFiles, "commands", nil, "additional command vocabulary files")
}

// setup loads the configuration and builds the logger shared by all commands
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger = logging.FromConfig("fadebasic", cfg.General, verbose, cmd.ErrOrStderr())
	mdwlog.SetDefault(logger)

	logger.Debug("configuration loaded", mdwlog.Fields{
		"source":  cfg.Source(),
		"command": cmd.Name(),
	})
	return nil
}
