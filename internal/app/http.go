package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/internal/numutil"
	transport "github.com/oshokin/utilkit/internal/transport/http"
	"github.com/oshokin/utilkit/internal/utils"
)

// HTTPParams holds the options of the http get and http post commands.
type HTTPParams struct {
	// Method is GET or POST.
	Method string
	// URL is the request target.
	URL string
	// Headers are "Name=value" pairs.
	Headers []string
	// Query are "key=value" pairs added to the query string.
	Query []string
	// Body is the POST body. A body starting with "@" names a file to send.
	Body string
	// JSON sends Body as application/json after checking it parses.
	JSON bool
	// Timeout overrides http_timeout, e.g. "30s".
	Timeout string
	// Include prints the status line and headers before the body.
	Include bool
	// NoCache bypasses the response cache.
	NoCache bool
}

// DownloadParams holds the options of the http download command.
type DownloadParams struct {
	// URL is the file to fetch.
	URL string
	// Output is the local path. Empty means the last URL path segment.
	Output string
	// Overwrite replaces an existing file.
	Overwrite bool
	// Progress renders a progress bar when stderr is a terminal.
	Progress bool
}

// GraphQLParams holds the options of the http graphql command.
type GraphQLParams struct {
	// Endpoint is the GraphQL URL.
	Endpoint string
	// Query is the query document. A query starting with "@" names a file to read.
	Query string
	// Variables is a JSON object of query variables.
	Variables string
	// Format is the output format.
	Format OutputFormat
}

// ExecuteHTTPCommand sends a request and prints the response body.
func ExecuteHTTPCommand(ctx context.Context, cfg *config.Config, params HTTPParams, w io.Writer) error {
	options, err := requestOptions(params)
	if err != nil {
		return err
	}

	dispatcher := transport.NewDispatcher(cfg)

	response, err := dispatcher.Do(ctx, params.Method, params.URL, options)
	if err != nil {
		var statusErr *transport.StatusError
		if errors.As(err, &statusErr) && len(statusErr.Body) > 0 {
			logger.Debugf(ctx, "Error response body: %s", statusErr.Body)
		}

		return err
	}

	if response.Cached {
		logger.Debugf(ctx, "Response served from cache")
	}

	if params.Include {
		if err = writeHead(w, response.StatusCode, response.Header); err != nil {
			return err
		}
	}

	if _, err = w.Write(response.Data); err != nil {
		return err
	}

	// Keep the shell prompt on its own line.
	if len(response.Data) > 0 && response.Data[len(response.Data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}

	return err
}

// ExecuteDownloadCommand saves a remote file and returns the path written.
// A partially written file is removed on failure.
func ExecuteDownloadCommand(ctx context.Context, cfg *config.Config, params DownloadParams) (string, error) {
	output := params.Output
	if output == "" {
		output = utils.FilenameFromURL(params.URL)
	}

	exists, err := utils.IsFileExist(output)
	if err != nil {
		return "", err
	}

	if exists && !params.Overwrite {
		return "", fmt.Errorf("%w: %s", ErrFileExists, output)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err = os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filepath.Clean(output), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.DefaultFilePermissions)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", output, err)
	}

	startTime := time.Now()

	// The progress bar draws on stderr and only makes sense on a terminal.
	showProgress := params.Progress && term.IsTerminal(int(os.Stderr.Fd())) //nolint:gosec // File descriptors fit in int.

	written, err := transport.NewDispatcher(cfg).Download(ctx, params.URL, file, showProgress)

	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		if removeErr := os.Remove(output); removeErr != nil {
			logger.Warnf(ctx, "Failed to remove partial file %s: %v", output, removeErr)
		}

		return "", err
	}

	logger.Infof(ctx, "Downloaded %s to %s in %s",
		numutil.FormatBytes(uint64(max(written, 0))), output, time.Since(startTime).Round(time.Millisecond))

	return output, nil
}

// ExecuteGraphQLCommand runs a GraphQL query and prints its data object.
func ExecuteGraphQLCommand(ctx context.Context, cfg *config.Config, params GraphQLParams, w io.Writer) error {
	query, err := readArgumentOrFile(params.Query)
	if err != nil {
		return err
	}

	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query", ErrMissingInput)
	}

	variables := map[string]any{}

	if params.Variables != "" {
		if err = json.Unmarshal([]byte(params.Variables), &variables); err != nil {
			return fmt.Errorf("failed to parse variables: %w", err)
		}
	}

	var data map[string]any
	if err = transport.NewDispatcher(cfg).Query(ctx, params.Endpoint, query, variables, &data); err != nil {
		return err
	}

	return writeResult(w, params.Format, data)
}

func requestOptions(params HTTPParams) (transport.RequestOptions, error) {
	headers, err := parseKeyValues(params.Headers)
	if err != nil {
		return transport.RequestOptions{}, err
	}

	queryPairs, err := parseKeyValues(params.Query)
	if err != nil {
		return transport.RequestOptions{}, err
	}

	query := url.Values{}
	for key, val := range queryPairs {
		query.Set(key, val)
	}

	options := transport.RequestOptions{
		Headers:   headers,
		Query:     query,
		SkipCache: params.NoCache,
	}

	if params.Timeout != "" {
		if options.Timeout, err = time.ParseDuration(params.Timeout); err != nil {
			return transport.RequestOptions{}, fmt.Errorf("invalid timeout %q: %w", params.Timeout, err)
		}
	}

	body, err := readArgumentOrFile(params.Body)
	if err != nil {
		return transport.RequestOptions{}, err
	}

	switch {
	case body == "":
	case params.JSON:
		if !json.Valid([]byte(body)) {
			return transport.RequestOptions{}, fmt.Errorf("%w: body is not valid JSON", ErrValidationFailed)
		}

		options.Body = json.RawMessage(body)
	default:
		options.Body = body
	}

	return options, nil
}

// readArgumentOrFile returns arg, or the contents of the file named after a leading "@".
func readArgumentOrFile(arg string) (string, error) {
	path, isFile := strings.CutPrefix(arg, "@")
	if !isFile {
		return arg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}

func writeHead(w io.Writer, statusCode int, header http.Header) error {
	if _, err := fmt.Fprintf(w, "%d %s\n", statusCode, http.StatusText(statusCode)); err != nil {
		return err
	}

	for _, name := range slices.Sorted(maps.Keys(header)) {
		for _, val := range header[name] {
			if _, err := fmt.Fprintf(w, "%s: %s\n", name, val); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "\n")

	return err
}
