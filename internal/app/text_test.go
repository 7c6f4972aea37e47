package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExecuteTextCommand tests every text operation.
func TestExecuteTextCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   TextParams
		expected string
	}{
		{name: "capitalize", params: TextParams{Operation: TextCapitalize, Input: "hello world"}, expected: "Hello world"},
		{name: "title", params: TextParams{Operation: "Title", Input: "snake_case-and  SPACES"}, expected: "Snake Case And Spaces"},
		{name: "pascal", params: TextParams{Operation: TextPascal, Input: "hello world"}, expected: "HelloWorld"},
		{name: "slug", params: TextParams{Operation: TextSlug, Input: "Hello, World!"}, expected: "hello-world"},
		{name: "truncate", params: TextParams{Operation: TextTruncate, Input: "hello world", Length: 5}, expected: "hello..."},
		{name: "words", params: TextParams{Operation: TextWords, Input: "one two"}, expected: "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			require.NoError(t, ExecuteTextCommand(context.Background(), tt.params, &out))
			assert.Equal(t, tt.expected+"\n", out.String())
		})
	}

	err := ExecuteTextCommand(context.Background(), TextParams{Operation: "reverse"}, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUnknownOperation)
}

// TestExecuteTextCheckCommand tests passing and failing checks.
func TestExecuteTextCheckCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		check   string
		input   string
		isValid bool
	}{
		{check: CheckEmail, input: "ant@example.com", isValid: true},
		{check: CheckEmail, input: "ant@", isValid: false},
		{check: CheckURL, input: "https://example.com/path", isValid: true},
		{check: CheckURL, input: "example", isValid: false},
		{check: CheckAlpha, input: "Hello World", isValid: true},
		{check: CheckAlpha, input: "abc1", isValid: false},
		{check: CheckEmpty, input: "   ", isValid: true},
		{check: CheckEmpty, input: "x", isValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.check+"/"+tt.input, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			err := ExecuteTextCheckCommand(context.Background(), tt.check, tt.input, &out)
			if !tt.isValid {
				require.ErrorIs(t, err, ErrValidationFailed)
				assert.Empty(t, out.String())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ok\n", out.String())
		})
	}

	err := ExecuteTextCheckCommand(context.Background(), "zip", "12345", &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUnknownOperation)
}

// TestExecuteNumberCommand tests every number operation.
func TestExecuteNumberCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   NumberParams
		expected string
	}{
		{name: "commas", params: NumberParams{Operation: NumberCommas, Input: "1234567"}, expected: "1,234,567"},
		{name: "commas accepts grouped input", params: NumberParams{Operation: NumberCommas, Input: "1,234.5", Decimals: 2}, expected: "1,234.50"},
		{name: "round", params: NumberParams{Operation: NumberRound, Input: "3.14159", Decimals: 2}, expected: "3.14"},
		{name: "percent", params: NumberParams{Operation: NumberPercent, Input: "0.5"}, expected: "50%"},
		{name: "bytes from count", params: NumberParams{Operation: NumberBytes, Input: "500"}, expected: "500 B"},
		{name: "bytes from size", params: NumberParams{Operation: NumberBytes, Input: "2 KiB"}, expected: "2048"},
		{name: "even", params: NumberParams{Operation: NumberParity, Input: "42"}, expected: "even"},
		{name: "odd", params: NumberParams{Operation: "PARITY", Input: "-7"}, expected: "odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			require.NoError(t, ExecuteNumberCommand(context.Background(), tt.params, &out))
			assert.Equal(t, tt.expected+"\n", out.String())
		})
	}
}

// TestExecuteNumberCommand_Errors tests rejected input.
func TestExecuteNumberCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []NumberParams{
		{Operation: NumberRound, Input: "pi"},
		{Operation: NumberParity, Input: "1.5"},
		{Operation: NumberBytes, Input: "lots"},
	}

	for _, params := range tests {
		require.Error(t, ExecuteNumberCommand(context.Background(), params, &bytes.Buffer{}))
	}

	err := ExecuteNumberCommand(context.Background(), NumberParams{Operation: "sqrt", Input: "4"}, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUnknownOperation)
}
