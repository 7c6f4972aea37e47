package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
	"github.com/oshokin/utilkit/internal/datetime"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	dateCmd = &cobra.Command{
		Use:   "date",
		Short: "Format dates and describe them relative to now.",
		Long: `Dates may be given as "now", a Unix timestamp in seconds, RFC 3339,
"2006-01-02 15:04:05", "2006-01-02" or "20060102".`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	dateAgoCmd = &cobra.Command{
		Use:   "ago DATE",
		Short: "Print how long ago DATE was, for example: 3 hours ago.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := app.ExecuteDateAgoCommand(cmd.Context(), datetime.NewCalendar(nil), args[0], cmd.OutOrStdout())
			exitOnError(cmd, "describe date", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	dateFormatCmd = &cobra.Command{
		Use:   "format [DATE]",
		Short: "Print DATE (default is today) in a compact layout.",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			layout, _ := flags.GetString("layout")
			separator, _ := flags.GetString("separator")

			params := app.DateFormatParams{
				Layout:    layout,
				Separator: separator,
			}

			if len(args) > 0 {
				params.Input = args[0]
			}

			err := app.ExecuteDateFormatCommand(cmd.Context(), datetime.NewCalendar(nil), params, cmd.OutOrStdout())
			exitOnError(cmd, "format date", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	dateInfoCmd = &cobra.Command{
		Use:   "info [DATE]",
		Short: "Describe DATE (default is now): Unix time, age, today, weekend.",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var input string
			if len(args) > 0 {
				input = args[0]
			}

			err := app.ExecuteDateInfoCommand(
				cmd.Context(),
				datetime.NewCalendar(nil),
				input,
				outputFormat(cmd),
				cmd.OutOrStdout())
			exitOnError(cmd, "describe date", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	dateDiffCmd = &cobra.Command{
		Use:   "diff FROM TO",
		Short: "Print the number of days between two dates, rounded up.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // From and to.
		Run: func(cmd *cobra.Command, args []string) {
			err := app.ExecuteDateDiffCommand(cmd.Context(), datetime.NewCalendar(nil), args[0], args[1], cmd.OutOrStdout())
			exitOnError(cmd, "compare dates", err)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	formatFlags := dateFormatCmd.Flags()
	formatFlags.String("layout", string(datetime.LayoutCompact), "layout: YYYYMMDD, YYMMDD or YYYY-MM-DD.")
	formatFlags.String("separator", "", "join year, month and day with this separator instead of using --layout.")

	dateCmd.AddCommand(dateAgoCmd, dateFormatCmd, dateInfoCmd, dateDiffCmd)
	rootCmd.AddCommand(dateCmd)
}
