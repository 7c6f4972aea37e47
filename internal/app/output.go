package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/utilkit/internal/constants"
	"github.com/oshokin/utilkit/internal/value"
)

// OutputFormat selects how structured results are printed.
type OutputFormat string

const (
	// OutputFormatYAML prints YAML documents.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatJSON prints indented JSON.
	OutputFormatJSON OutputFormat = "json"

	// outputIndent is the indentation of both output formats.
	outputIndent = 2
)

// ParseOutputFormat validates a format name. An empty name means YAML.
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(format))) {
	case "", OutputFormatYAML, "yml":
		return OutputFormatYAML, nil
	case OutputFormatJSON:
		return OutputFormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutputFormat, format)
	}
}

// writeResult encodes v to w in the given format.
func writeResult(w io.Writer, format OutputFormat, v any) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", outputIndent))

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case "", OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(outputIndent)

		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, format)
	}
}

// writeLine prints a single line of plain output.
func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)

	return err
}

// readDataFile decodes a JSON, TOML or YAML file, chosen by extension.
// Files with an unknown extension are parsed as YAML, which also accepts JSON.
func readDataFile(path string) (value.Value, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return value.Null(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtensionJSON:
		return value.Parse(data)
	case constants.ExtensionTOML:
		return value.ParseTOML(data)
	default:
		return value.ParseYAML(data)
	}
}

// readCollection reads a data file and returns the items of the collection
// found at the dot-separated itemsPath. An empty itemsPath means the whole document.
func readCollection(path, itemsPath string) ([]value.Value, error) {
	document, err := readDataFile(path)
	if err != nil {
		return nil, err
	}

	collection, ok := document.Get(itemsPath)
	if !ok {
		return nil, fmt.Errorf("%w: path %q not found in %s", ErrNotACollection, itemsPath, path)
	}

	return collectionItems(collection)
}

// collectionItems returns list items, or mapping values in key order.
func collectionItems(v value.Value) ([]value.Value, error) {
	switch v.Kind() {
	case value.KindList:
		return v.Items(), nil
	case value.KindMap:
		fields := v.Fields()

		items := make([]value.Value, 0, len(fields))
		for _, field := range fields {
			items = append(items, field.Value)
		}

		return items, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotACollection, v.Kind())
	}
}

// parseKeyValues turns "key=value" arguments into a map. Later keys win.
func parseKeyValues(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeyValue, pair)
		}

		result[strings.TrimSpace(key)] = val
	}

	return result, nil
}
