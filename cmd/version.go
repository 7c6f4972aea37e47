package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/version"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, commit and build time.",
	Args:  cobra.NoArgs,
	// Printing the version must work without a readable config.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, _ []string) {
		if constraint, _ := cmd.Flags().GetString("check"); constraint != "" {
			ok, err := version.Satisfies(constraint)
			exitOnError(cmd, "check version", err)

			if !ok {
				exitOnError(cmd, "check version", fmt.Errorf("%w: %s %s", version.ErrConstraintNotMet, version.Version, constraint))
			}

			fmt.Fprintln(cmd.OutOrStdout(), version.Version) //nolint:errcheck // Nothing to do when stdout is gone.

			return
		}

		short, _ := cmd.Flags().GetBool("short")
		if !short {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full()) //nolint:errcheck // Nothing to do when stdout is gone.

			return
		}

		parsed, err := version.Semver()
		exitOnError(cmd, "parse version", err)

		fmt.Fprintln(cmd.OutOrStdout(), parsed.String()) //nolint:errcheck // Nothing to do when stdout is gone.
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	versionCmd.Flags().BoolP("short", "s", false, "print only the semantic version.")
	versionCmd.Flags().String("check", "", "fail unless the version satisfies a constraint, for example: \">= 0.1, < 1\".")

	rootCmd.AddCommand(versionCmd)
}
