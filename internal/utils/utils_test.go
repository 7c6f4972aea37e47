//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/utilkit/internal/constants"
)

// TestSanitizeFilename tests the SanitizeFilename function.
func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "valid filename",
			input:    "test_file.txt",
			expected: "test_file.txt",
		},
		{
			name:     "invalid characters",
			input:    "test<file>.txt",
			expected: "test_file_.txt",
		},
		{
			name:     "Windows reserved name",
			input:    "CON",
			expected: "_CON",
		},
		{
			name:     "Windows reserved name with extension",
			input:    "nul.json",
			expected: "_nul.json",
		},
		{
			name:     "trailing dots",
			input:    "test...",
			expected: "test",
		},
		{
			name:     "only dots",
			input:    "...",
			expected: "_",
		},
		{
			name:     "control characters",
			input:    "test\x00file",
			expected: "test_file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := SanitizeFilename(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestFilenameFromURL tests the FilenameFromURL function.
func TestFilenameFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain file",
			input:    "https://example.com/files/report.pdf",
			expected: "report.pdf",
		},
		{
			name:     "query ignored",
			input:    "https://example.com/archive.tar.gz?token=abc",
			expected: "archive.tar.gz",
		},
		{
			name:     "root path",
			input:    "https://example.com/",
			expected: DefaultDownloadFilename,
		},
		{
			name:     "no path",
			input:    "https://example.com",
			expected: DefaultDownloadFilename,
		},
		{
			name:     "escaped characters",
			input:    "https://example.com/a%3Cb%3E.txt",
			expected: "a_b_.txt",
		},
		{
			name:     "unparsable",
			input:    "http://[::1",
			expected: DefaultDownloadFilename,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FilenameFromURL(tt.input))
		})
	}
}

// TestRandomPause tests the RandomPause function.
func TestRandomPause(t *testing.T) {
	t.Parallel()

	// Test that RandomPause returns within reasonable time.
	start := time.Now()
	require.NoError(t, RandomPause(context.Background(), 100*time.Millisecond, 150*time.Millisecond))
	duration := time.Since(start)

	// Should pause for at least 100ms but not more than 200ms (allowing some overhead).
	assert.GreaterOrEqual(t, duration, 100*time.Millisecond)
	assert.Less(t, duration, 200*time.Millisecond)
}

// TestRandomPause_EqualAndSwappedBounds tests degenerate bounds.
func TestRandomPause_EqualAndSwappedBounds(t *testing.T) {
	t.Parallel()

	require.NoError(t, RandomPause(context.Background(), 10*time.Millisecond, 10*time.Millisecond))
	require.NoError(t, RandomPause(context.Background(), 20*time.Millisecond, 10*time.Millisecond))
	require.NoError(t, RandomPause(context.Background(), 0, 0))
}

// TestRandomPause_Canceled tests that a canceled context ends the pause early.
func TestRandomPause_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := RandomPause(ctx, time.Hour, time.Hour)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

// TestIsFileExist tests the IsFileExist function.
func TestIsFileExist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "test_file")

	require.NoError(t, os.WriteFile(filePath, []byte("x"), constants.DefaultFilePermissions))

	// Test existing file.
	exists, err := IsFileExist(filePath)
	require.NoError(t, err)
	assert.True(t, exists)

	// Directories are not files.
	exists, err = IsFileExist(dir)
	require.NoError(t, err)
	assert.False(t, exists)

	// Test non-existing file.
	exists, err = IsFileExist(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "text/plain",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "text/html with charset",
			contentType: "text/html; charset=utf-8",
			expected:    true,
		},
		{
			name:        "application/json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "problem+json",
			contentType: "application/problem+json",
			expected:    true,
		},
		{
			name:        "application/samlmetadata+xml",
			contentType: "application/samlmetadata+xml",
			expected:    true,
		},
		{
			name:        "form encoded",
			contentType: "application/x-www-form-urlencoded",
			expected:    true,
		},
		{
			name:        "image/jpeg",
			contentType: "image/jpeg",
			expected:    false,
		},
		{
			name:        "octet stream",
			contentType: "application/octet-stream",
			expected:    false,
		},
		{
			name:        "text with invalid charset",
			contentType: "text/plain; charset=invalid",
			expected:    false,
		},
		{
			name:        "invalid content type",
			contentType: "invalid/type",
			expected:    false,
		},
		{
			name:        "empty",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsTextContentType(tt.contentType)
			assert.Equal(t, tt.expected, result)
		})
	}
}
