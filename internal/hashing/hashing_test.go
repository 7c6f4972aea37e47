package hashing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateUUID tests that generated UUIDs are valid and random.
func TestGenerateUUID(t *testing.T) {
	t.Parallel()

	first := GenerateUUID()
	second := GenerateUUID()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, first, second)
}

// TestGenerateULID tests that generated ULIDs are valid and increasing.
func TestGenerateULID(t *testing.T) {
	t.Parallel()

	previous := GenerateULID()

	for range 100 {
		current := GenerateULID()

		_, err := ulid.ParseStrict(current)
		require.NoError(t, err)
		assert.Less(t, previous, current)

		previous = current
	}
}

// TestHashString tests SHA-256 digests against known vectors.
func TestHashString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashString(""))
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", HashString("hello"))
}

// TestFastHash tests that xxHash digests are stable and distinct.
func TestFastHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ef46db3751d8e999", FastHash(""))
	assert.Equal(t, FastHash("hello"), FastHash("hello"))
	assert.NotEqual(t, FastHash("hello"), FastHash("hellp"))
}
