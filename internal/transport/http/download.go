package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/schollz/progressbar/v3"
)

// maxErrorBodyLength caps how much of a failed download's body is kept in the StatusError.
const maxErrorBodyLength = 4096

// Download streams the body of a GET request to w and returns the number of bytes written.
// When showProgress is set a byte progress bar is rendered to stderr.
// The download is bounded by ctx only, not by the per-request timeout.
func (d *Dispatcher) Download(ctx context.Context, rawURL string, w io.Writer, showProgress bool) (int64, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return 0, err
	}

	response, err := d.httpClient.Do(request)
	if err != nil {
		return 0, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyLength))

		return 0, &StatusError{
			StatusCode: response.StatusCode,
			Body:       body,
		}
	}

	writer := w

	if showProgress {
		bar := progressbar.DefaultBytes(
			response.ContentLength,
			"Downloading",
		)

		defer bar.Close() //nolint:errcheck // Rendering errors are not critical here.

		writer = io.MultiWriter(w, bar)
	}

	written, err := io.Copy(writer, response.Body)
	if err != nil {
		return written, fmt.Errorf("failed to download %s: %w", rawURL, err)
	}

	if response.ContentLength >= 0 && written != response.ContentLength {
		return written, fmt.Errorf("%w: got %d of %d bytes", ErrIncompleteDownload, written, response.ContentLength)
	}

	return written, nil
}
