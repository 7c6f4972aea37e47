package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var paginateCmd = &cobra.Command{
	Use:   "paginate FILE",
	Short: "Print one page of a JSON or YAML collection.",
	Long: `Reads a list (or the values of a mapping) from a JSON, TOML or YAML FILE, optionally keeps only the
items containing a keyword, sorts them by a field and prints the requested page
together with pagination metadata.

Examples:
  utilkit paginate users.json --page 2 --limit 20
  utilkit paginate users.yaml --search berlin --field address.city --sort age:desc -f json
  utilkit paginate inventory.toml --path items --limit 5`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		page, _ := flags.GetInt("page")
		limit, _ := flags.GetInt("limit")
		itemsPath, _ := flags.GetString("path")
		search, _ := flags.GetString("search")
		field, _ := flags.GetString("field")
		sort, _ := flags.GetString("sort")

		err := app.ExecutePaginateCommand(cmd.Context(), appConfig, app.PaginateParams{
			File:      args[0],
			ItemsPath: itemsPath,
			Page:      page,
			Limit:     limit,
			Search:    search,
			Field:     field,
			Sort:      sort,
			Format:    outputFormat(cmd),
		}, cmd.OutOrStdout())
		exitOnError(cmd, "paginate", err)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	flags := paginateCmd.Flags()

	flags.String("path", "", "dot-separated path of the collection inside FILE, for example: data.users.")
	flags.IntP("page", "p", 1, "1-based page number.")
	flags.IntP("limit", "l", 0, "items per page (default is page_limit from the config).")
	flags.StringP("search", "s", "", "keep items containing this keyword, case-insensitively.")
	flags.String("field", "", "dot-separated field path the search is restricted to.")
	flags.String("sort", "", "sort expression: field or field:desc.")

	rootCmd.AddCommand(paginateCmd)
}
