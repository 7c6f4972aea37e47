package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/oshokin/utilkit/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	httpCmd = &cobra.Command{
		Use:   "http",
		Short: "Send HTTP requests, download files and run GraphQL queries.",
		Long: `Requests go through a shared client that injects the configured User-Agent,
retries on 429 and 5xx responses and caches successful GET responses.
Run with --log-level debug to dump requests and responses.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	httpGetCmd = &cobra.Command{
		Use:   "get URL",
		Short: "Send a GET request and print the response body.",
		Args:  cobra.ExactArgs(1),
		Run:   runHTTPCommand(http.MethodGet),
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	httpPostCmd = &cobra.Command{
		Use:   "post URL",
		Short: "Send a POST request and print the response body.",
		Long: `Examples:
  utilkit http post https://example.com/api --json --data '{"name":"ant"}'
  utilkit http post https://example.com/upload --data @payload.txt --header Content-Type=text/plain`,
		Args: cobra.ExactArgs(1),
		Run:  runHTTPCommand(http.MethodPost),
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	httpDownloadCmd = &cobra.Command{
		Use:   "download URL",
		Short: "Download a file and print where it was saved.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			output, _ := flags.GetString("output")
			overwrite, _ := flags.GetBool("overwrite")
			progress, _ := flags.GetBool("progress")

			path, err := app.ExecuteDownloadCommand(cmd.Context(), appConfig, app.DownloadParams{
				URL:       args[0],
				Output:    output,
				Overwrite: overwrite,
				Progress:  progress,
			})
			exitOnError(cmd, "download file", err)

			fmt.Fprintln(cmd.OutOrStdout(), path) //nolint:errcheck // Nothing to do when stdout is gone.
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
	httpGraphQLCmd = &cobra.Command{
		Use:   "graphql ENDPOINT QUERY",
		Short: "Run a GraphQL query and print the data.",
		Long: `QUERY is the query document, or @FILE to read it from a file.

Example:
  utilkit http graphql https://example.com/graphql 'query($id: ID!) { user(id: $id) { name } }' --vars '{"id":"1"}'`,
		Args: cobra.ExactArgs(2), //nolint:mnd // Endpoint and query.
		Run: func(cmd *cobra.Command, args []string) {
			variables, _ := cmd.Flags().GetString("vars")

			err := app.ExecuteGraphQLCommand(cmd.Context(), appConfig, app.GraphQLParams{
				Endpoint:  args[0],
				Query:     args[1],
				Variables: variables,
				Format:    outputFormat(cmd),
			}, cmd.OutOrStdout())
			exitOnError(cmd, "run graphql query", err)
		},
	}
)

func runHTTPCommand(method string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		headers, _ := flags.GetStringArray("header")
		query, _ := flags.GetStringArray("query")
		timeout, _ := flags.GetString("request-timeout")
		include, _ := flags.GetBool("include")
		noCache, _ := flags.GetBool("no-cache")

		params := app.HTTPParams{
			Method:  method,
			URL:     args[0],
			Headers: headers,
			Query:   query,
			Timeout: timeout,
			Include: include,
			NoCache: noCache,
		}

		if method == http.MethodPost {
			params.Body, _ = flags.GetString("data")
			params.JSON, _ = flags.GetBool("json")
		}

		err := app.ExecuteHTTPCommand(cmd.Context(), appConfig, params, cmd.OutOrStdout())
		exitOnError(cmd, "send "+method+" request", err)
	}
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	for _, requestCmd := range []*cobra.Command{httpGetCmd, httpPostCmd} {
		flags := requestCmd.Flags()

		flags.StringArrayP("header", "H", nil, "request header as Name=value, may be repeated.")
		flags.StringArrayP("query", "q", nil, "query parameter as key=value, may be repeated.")
		flags.String("request-timeout", "", "timeout of each attempt (default is http_timeout).")
		flags.BoolP("include", "i", false, "print the status line and response headers.")
		flags.Bool("no-cache", false, "bypass the response cache.")
	}

	postFlags := httpPostCmd.Flags()
	postFlags.StringP("data", "d", "", "request body, or @FILE to send a file.")
	postFlags.Bool("json", false, "send the body as application/json.")

	downloadFlags := httpDownloadCmd.Flags()
	downloadFlags.StringP("output", "o", "", "destination path (default is the last URL path segment).")
	downloadFlags.Bool("overwrite", false, "replace an existing file.")
	downloadFlags.Bool("progress", true, "show a progress bar.")

	httpGraphQLCmd.Flags().String("vars", "", "JSON object with query variables.")

	httpCmd.AddCommand(httpGetCmd, httpPostCmd, httpDownloadCmd, httpGraphQLCmd)
	rootCmd.AddCommand(httpCmd)
}
