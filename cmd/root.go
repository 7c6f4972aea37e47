package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/utilkit/internal/app"
	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "utilkit",
		Short: "A toolbox of everyday data, token, HTTP and text helpers.",
		Long: `utilkit bundles small utilities behind one CLI:
- paginate, search and sort JSON, TOML or YAML collections
- sign, verify, decode and refresh JWTs
- send HTTP requests, download files and run GraphQL queries
- hash strings and generate UUIDs, ULIDs and series identifiers
- format dates, text and numbers

Settings are read from a YAML config file and UTILKIT_* environment variables.`,
		PersistentPreRun: initConfig,
		SilenceUsage:     true,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmdFlags := rootCmd.PersistentFlags()

	rootCmdFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags.StringP(
		"format",
		"f",
		string(app.OutputFormatYAML),
		"output format of structured results: yaml or json.")

	rootCmdFlags.String(
		"log-level",
		"",
		"log level: debug, info, warn, error.")

	rootCmdFlags.String(
		"timeout",
		"",
		"default HTTP request timeout, for example: 5s, 1m.")

	rootCmdFlags.String(
		"user-agent",
		"",
		"User-Agent sent with HTTP requests.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// bindFlagsToConfig applies explicitly set flags over the loaded configuration and validates the result.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.HTTPTimeout, _ = flags.GetString("timeout")
	}

	if flag := flags.Lookup("user-agent"); flag != nil && flag.Changed {
		cfg.HTTPUserAgent, _ = flags.GetString("user-agent")
	}

	return config.ValidateConfig(cfg)
}

// outputFormat returns the validated --format flag.
func outputFormat(cmd *cobra.Command) app.OutputFormat {
	value, _ := cmd.Flags().GetString("format")

	format, err := app.ParseOutputFormat(value)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Invalid --format: %v", err)
	}

	return format
}

// exitOnError logs err with the action that failed and terminates the process.
func exitOnError(cmd *cobra.Command, action string, err error) {
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to %s: %v", action, err)
	}
}
