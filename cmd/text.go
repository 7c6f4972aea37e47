package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	textCmd = &cobra.Command{
		Use:   "text OPERATION TEXT...",
		Short: "Transform text: capitalize, title, pascal, slug, truncate, words.",
		Long: `Examples:
  utilkit text slug "Hello, World!"
  utilkit text truncate --length 10 "a rather long sentence"`,
		Args:      cobra.MinimumNArgs(2), //nolint:mnd // Operation and text.
		ValidArgs: []string{app.TextCapitalize, app.TextTitle, app.TextPascal, app.TextSlug, app.TextTruncate, app.TextWords},
		Run: func(cmd *cobra.Command, args []string) {
			length, _ := cmd.Flags().GetInt("length")

			err := app.ExecuteTextCommand(cmd.Context(), app.TextParams{
				Operation: args[0],
				Input:     strings.Join(args[1:], " "),
				Length:    length,
			}, cmd.OutOrStdout())
			exitOnError(cmd, "transform text", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	textCheckCmd = &cobra.Command{
		Use:   "check KIND [TEXT]",
		Short: "Validate text as email, url, phone, alpha or empty; exits non-zero when invalid.",
		Args:  cobra.RangeArgs(1, 2), //nolint:mnd // Kind and optional text.
		Run: func(cmd *cobra.Command, args []string) {
			var input string
			if len(args) > 1 {
				input = args[1]
			}

			err := app.ExecuteTextCheckCommand(cmd.Context(), args[0], input, cmd.OutOrStdout())
			exitOnError(cmd, "check text", err)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	numCmd = &cobra.Command{
		Use:   "num OPERATION NUMBER",
		Short: "Format numbers: commas, round, percent, bytes, parity.",
		Long: `Examples:
  utilkit num commas 1234567.891 --decimals 2
  utilkit num percent 0.256
  utilkit num bytes 1536
  utilkit num bytes "1.5 GiB"`,
		Args: cobra.ExactArgs(2), //nolint:mnd // Operation and number.
		Run: func(cmd *cobra.Command, args []string) {
			decimals, _ := cmd.Flags().GetInt("decimals")

			err := app.ExecuteNumberCommand(cmd.Context(), app.NumberParams{
				Operation: args[0],
				Input:     args[1],
				Decimals:  decimals,
			}, cmd.OutOrStdout())
			exitOnError(cmd, "format number", err)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	textCmd.Flags().IntP("length", "l", 0, "maximum number of characters kept by truncate.")
	numCmd.Flags().Int("decimals", 0, "number of decimal places.")

	textCmd.AddCommand(textCheckCmd)
	rootCmd.AddCommand(textCmd, numCmd)
}
