package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/value"
)

// writeTestFile writes content to a temporary file and returns its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), constants.DefaultFilePermissions))

	return path
}

// TestParseOutputFormat tests format name validation.
func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{input: "", expected: OutputFormatYAML},
		{input: "yaml", expected: OutputFormatYAML},
		{input: " YML ", expected: OutputFormatYAML},
		{input: "Json", expected: OutputFormatJSON},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseOutputFormat(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownOutputFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestWriteResult tests both encoders.
func TestWriteResult(t *testing.T) {
	t.Parallel()

	result := struct {
		Name  string `json:"name"  yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}{Name: "ant", Count: 2}

	var jsonOut bytes.Buffer
	require.NoError(t, writeResult(&jsonOut, OutputFormatJSON, result))
	assert.Equal(t, "{\n  \"name\": \"ant\",\n  \"count\": 2\n}\n", jsonOut.String())

	var yamlOut bytes.Buffer
	require.NoError(t, writeResult(&yamlOut, OutputFormatYAML, result))
	assert.Equal(t, "name: ant\ncount: 2\n", yamlOut.String())

	require.ErrorIs(t, writeResult(&yamlOut, "toml", result), ErrUnknownOutputFormat)
}

// TestReadDataFile tests that the extension selects the parser.
func TestReadDataFile(t *testing.T) {
	t.Parallel()

	jsonPath := writeTestFile(t, "data.JSON", `{"b": 1, "a": 2}`)

	v, err := readDataFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, value.KindMap, v.Kind())
	assert.Equal(t, "b", v.Fields()[0].Key)

	yamlPath := writeTestFile(t, "data.txt", "- x\n- y\n")

	v, err = readDataFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, v.Items(), 2)

	tomlPath := writeTestFile(t, "data.toml", "[[items]]\nsku = \"b-2\"\n\n[[items]]\nsku = \"a-1\"\n")

	v, err = readDataFile(tomlPath)
	require.NoError(t, err)

	sku, ok := v.Get("items.1.sku")
	require.True(t, ok)
	assert.Equal(t, "a-1", sku.String())

	_, err = readDataFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestCollectionItems tests list and mapping inputs.
func TestCollectionItems(t *testing.T) {
	t.Parallel()

	list, err := value.Parse([]byte(`[1, 2, 3]`))
	require.NoError(t, err)

	items, err := collectionItems(list)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	mapping, err := value.ParseYAML([]byte("z: {n: 1}\na: {n: 2}\n"))
	require.NoError(t, err)

	items, err = collectionItems(mapping)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first, _ := items[0].Get("n")
	assert.Equal(t, "1", first.String())

	scalar, err := value.Parse([]byte(`"text"`))
	require.NoError(t, err)

	_, err = collectionItems(scalar)
	require.ErrorIs(t, err, ErrNotACollection)
}

// TestParseKeyValues tests key=value argument parsing.
func TestParseKeyValues(t *testing.T) {
	t.Parallel()

	got, err := parseKeyValues([]string{"a=1", " b =x=y", "a=2", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "2", "b": "x=y", "empty": ""}, got)

	_, err = parseKeyValues([]string{"novalue"})
	require.ErrorIs(t, err, ErrInvalidKeyValue)

	_, err = parseKeyValues([]string{"=value"})
	require.ErrorIs(t, err, ErrInvalidKeyValue)
}

// TestReadCollection tests locating a nested collection.
func TestReadCollection(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "response.json", `{"data": {"users": [{"id": 1}, {"id": 2}]}, "total": 2}`)

	items, err := readCollection(path, "data.users")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = readCollection(path, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = readCollection(path, "data.groups")
	require.ErrorIs(t, err, ErrNotACollection)

	_, err = readCollection(path, "total")
	require.ErrorIs(t, err, ErrNotACollection)
}
