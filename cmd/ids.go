package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
	"github.com/oshokin/utilkit/internal/datetime"
	"github.com/oshokin/utilkit/internal/utils"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	hashCmd = &cobra.Command{
		Use:   "hash TEXT...",
		Short: "Print the SHA-256 (or xxhash with --fast) digest of the text.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fast, _ := cmd.Flags().GetBool("fast")

			err := app.ExecuteHashCommand(cmd.Context(), app.HashParams{
				Input: strings.Join(args, " "),
				Fast:  fast,
			}, cmd.OutOrStdout())
			exitOnError(cmd, "hash input", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	uuidCmd = &cobra.Command{
		Use:   "uuid",
		Short: "Generate random UUIDs (version 4).",
		Args:  cobra.NoArgs,
		Run:   runIDCommand(app.IDKindUUID),
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	ulidCmd = &cobra.Command{
		Use:   "ulid",
		Short: "Generate lexicographically sortable ULIDs.",
		Args:  cobra.NoArgs,
		Run:   runIDCommand(app.IDKindULID),
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	seriesCmd = &cobra.Command{
		Use:   "series [FILE]",
		Short: "Print the next identifier of a series such as INV20240309-00000042.",
		Long: `Finds the highest number among the identifiers stored in --column of the
records in FILE (JSON, TOML or YAML) that share the current prefix, and prints the next one.
Without FILE the series starts at 1.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			itemsPath, _ := flags.GetString("path")
			column, _ := flags.GetString("column")
			prefix, _ := flags.GetString("prefix")
			numberBased, _ := flags.GetBool("number-based")
			zeroLength, _ := flags.GetInt("zero-length")
			includeDate, _ := flags.GetBool("include-date")
			dateLayout, _ := flags.GetString("date-layout")

			params := app.SeriesParams{
				ItemsPath:   itemsPath,
				Column:      column,
				Prefix:      prefix,
				NumberBased: numberBased,
				ZeroLength:  zeroLength,
				IncludeDate: includeDate,
				DateLayout:  dateLayout,
			}

			if len(args) > 0 {
				params.File = args[0]
			}

			err := app.ExecuteSeriesCommand(cmd.Context(), params, cmd.OutOrStdout())
			exitOnError(cmd, "generate series identifier", err)
		},
	}
)

func runIDCommand(kind string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, _ []string) {
		count, _ := cmd.Flags().GetInt("count")

		err := app.ExecuteIDCommand(cmd.Context(), kind, count, cmd.OutOrStdout())
		exitOnError(cmd, "generate "+kind, err)
	}
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	hashCmd.Flags().Bool("fast", false, "use the non-cryptographic xxhash digest.")

	for _, idCmd := range []*cobra.Command{uuidCmd, ulidCmd} {
		idCmd.Flags().IntP("count", "n", 1, "number of identifiers to generate.")
	}

	seriesFlags := seriesCmd.Flags()
	seriesFlags.String("path", "", "dot-separated path of the records inside FILE.")
	seriesFlags.String("column", "id", "record field holding existing identifiers.")
	seriesFlags.String("prefix", "", "static prefix, for example: INV.")
	seriesFlags.Bool("number-based", false, "print only the zero-padded number.")
	seriesFlags.Int("zero-length", utils.DefaultSeriesZeroLength, "width of the zero-padded number.")
	seriesFlags.Bool("include-date", false, "append today's date to the prefix.")
	seriesFlags.String("date-layout", string(datetime.LayoutCompact), "date layout: YYYYMMDD, YYMMDD or YYYY-MM-DD.")

	rootCmd.AddCommand(hashCmd, uuidCmd, ulidCmd, seriesCmd)
}
