package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildInfo tests the defaults reported without ldflags.
func TestBuildInfo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
	assert.True(t, strings.HasPrefix(Full(), "version: "+Version+", "))
	assert.Contains(t, Full(), "commit: "+Commit)
	assert.Contains(t, Full(), "built at: "+BuildTime)
}

// TestSemver tests that the default version is a valid semantic version.
func TestSemver(t *testing.T) {
	t.Parallel()

	v, err := Semver()
	require.NoError(t, err)
	assert.Equal(t, Version, v.String())
}

// TestParse tests version parsing.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected string
		wantErr  bool
	}{
		{raw: "1.2.3", expected: "1.2.3"},
		{raw: "v0.4.0", expected: "0.4.0"},
		{raw: " 2.0.0-rc.1 ", expected: "2.0.0-rc.1"},
		{raw: "1.4", expected: "1.4.0"},
		{raw: "dev", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			v, err := parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid version")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

// TestSatisfies tests constraint checks against the default version.
func TestSatisfies(t *testing.T) {
	t.Parallel()

	ok, err := Satisfies(">= 0.1.0, < 1.0.0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies("^2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Satisfies("not a constraint")
	require.Error(t, err)
}
