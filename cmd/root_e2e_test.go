package cmd_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// testBinaryName is the name of the test binary for E2E tests.
	testBinaryName = "utilkit-test"
)

// TestMain builds the binary before running E2E tests.
func TestMain(m *testing.M) {
	//nolint:noctx // TestMain doesn't have access to context, and build is needed before tests run.
	buildCmd := exec.Command("go", "build", "-o", testBinaryName, "../.")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	code := m.Run()

	_ = os.Remove(testBinaryName)

	os.Exit(code)
}

// runBinary runs the test binary in an empty working directory and returns stdout and stderr.
func runBinary(t *testing.T, env []string, args ...string) (string, string, error) {
	t.Helper()

	binaryPath, err := filepath.Abs(testBinaryName)
	require.NoError(t, err)

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr strings.Builder

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	return stdout.String(), stderr.String(), err
}

// writeFile writes content to a file in a temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644)) //nolint:gosec // It's a test file.

	return path
}

// TestE2E_Version tests the version command.
func TestE2E_Version(t *testing.T) {
	t.Parallel()

	stdout, _, err := runBinary(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "version: ")

	stdout, _, err = runBinary(t, nil, "version", "--short")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(stdout))

	stdout, _, err = runBinary(t, nil, "version", "--check", ">= 0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(stdout))

	_, stderr, err := runBinary(t, nil, "version", "--check", ">= 100")
	require.Error(t, err)
	assert.Contains(t, stderr, "version does not satisfy constraint")
}

// TestE2E_Paginate tests paginating a JSON file with JSON output.
func TestE2E_Paginate(t *testing.T) {
	t.Parallel()

	dataPath := writeFile(t, "users.json", `[
  {"name": "Ann", "city": "Berlin", "age": 31},
  {"name": "Bob", "city": "Paris", "age": 25},
  {"name": "Cid", "city": "Berlin", "age": 42},
  {"name": "Dee", "city": "Rome", "age": 19}
]`)

	tests := []struct {
		name          string
		args          []string
		expectedNames []string
		expectedTotal int
	}{
		{
			name:          "second page",
			args:          []string{"--page", "2", "--limit", "3"},
			expectedNames: []string{"Dee"},
			expectedTotal: 4,
		},
		{
			name:          "search and sort",
			args:          []string{"--search", "berlin", "--field", "city", "--sort", "age:desc"},
			expectedNames: []string{"Cid", "Ann"},
			expectedTotal: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"paginate", dataPath, "-f", "json"}, tt.args...)

			stdout, stderr, err := runBinary(t, nil, args...)
			require.NoError(t, err, stderr)

			var result struct {
				Data []struct {
					Name string `json:"name"`
				} `json:"data"`
				Meta struct {
					Total int `json:"total_items"`
				} `json:"meta"`
			}

			require.NoError(t, json.Unmarshal([]byte(stdout), &result))

			names := make([]string, 0, len(result.Data))
			for _, item := range result.Data {
				names = append(names, item.Name)
			}

			assert.Equal(t, tt.expectedNames, names)
			assert.Equal(t, tt.expectedTotal, result.Meta.Total)
		})
	}
}

// TestE2E_JWT tests that a signed token verifies and decodes.
func TestE2E_JWT(t *testing.T) {
	t.Parallel()

	env := []string{"UTILKIT_JWT_SECRET=e2e-secret"}

	stdout, stderr, err := runBinary(t, env, "jwt", "sign", "--claim", "user=ant", "--sub", "42")
	require.NoError(t, err, stderr)

	token := strings.TrimSpace(stdout)
	require.Len(t, strings.Split(token, "."), 3)

	stdout, stderr, err = runBinary(t, env, "jwt", "verify", token, "-f", "json")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, `"valid": true`)
	assert.Contains(t, stdout, `"user": "ant"`)

	_, _, err = runBinary(t, env, "jwt", "verify", token, "--secret", "other")
	require.Error(t, err)

	stdout, stderr, err = runBinary(t, nil, "jwt", "decode", token)
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "sub: \"42\"")
}

// TestE2E_TextAndNumbers tests the text and num commands.
func TestE2E_TextAndNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args     []string
		expected string
	}{
		{args: []string{"text", "slug", "Hello,", "World!"}, expected: "hello-world"},
		{args: []string{"text", "check", "email", "ant@example.com"}, expected: "ok"},
		{args: []string{"num", "parity", "7"}, expected: "odd"},
		{args: []string{"hash", "abc"}, expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			stdout, stderr, err := runBinary(t, nil, tt.args...)
			require.NoError(t, err, stderr)
			assert.Equal(t, tt.expected, strings.TrimSpace(stdout))
		})
	}
}

// TestE2E_InvalidInput tests that bad flags and failed checks exit with an error.
func TestE2E_InvalidInput(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, "config.yaml", "page_limit: 0\n")

	tests := []struct {
		name             string
		args             []string
		expectedErrorMsg string
	}{
		{
			name:             "invalid log level",
			args:             []string{"--log-level", "chatty", "uuid"},
			expectedErrorMsg: "unknown log level",
		},
		{
			name:             "invalid config value",
			args:             []string{"--config", configPath, "uuid"},
			expectedErrorMsg: "page_limit must be a positive integer",
		},
		{
			name:             "failed text check",
			args:             []string{"text", "check", "email", "not-an-email"},
			expectedErrorMsg: "validation failed",
		},
		{
			name:             "invalid output format",
			args:             []string{"jwt", "decode", "a.b.c", "-f", "xml"},
			expectedErrorMsg: "unknown output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, stderr, err := runBinary(t, nil, tt.args...)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(stderr), tt.expectedErrorMsg)
		})
	}
}
