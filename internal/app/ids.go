package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/oshokin/utilkit/internal/datetime"
	"github.com/oshokin/utilkit/internal/hashing"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/internal/utils"
	"github.com/oshokin/utilkit/internal/value"
)

// Identifier kinds accepted by ExecuteIDCommand.
const (
	IDKindUUID = "uuid"
	IDKindULID = "ulid"
)

// HashParams holds the options of the hash command.
type HashParams struct {
	// Input is the text to hash.
	Input string
	// Fast selects the non-cryptographic xxhash digest instead of SHA-256.
	Fast bool
}

// SeriesParams holds the options of the series command.
type SeriesParams struct {
	// File is a JSON, TOML or YAML collection of records holding existing identifiers.
	// Empty means no existing records.
	File string
	// ItemsPath is the dot-separated path of the records inside File.
	ItemsPath string
	// Column is the record field holding identifiers.
	Column string
	// Prefix starts every identifier.
	Prefix string
	// NumberBased prints only the padded number.
	NumberBased bool
	// ZeroLength is the width of the zero-padded number.
	ZeroLength int
	// IncludeDate adds the current date after the prefix.
	IncludeDate bool
	// DateLayout formats the date part.
	DateLayout string
}

// ExecuteHashCommand prints the digest of the input.
func ExecuteHashCommand(_ context.Context, params HashParams, w io.Writer) error {
	if params.Fast {
		return writeLine(w, hashing.FastHash(params.Input))
	}

	return writeLine(w, hashing.HashString(params.Input))
}

// ExecuteIDCommand prints count fresh identifiers of the given kind, one per line.
func ExecuteIDCommand(_ context.Context, kind string, count int, w io.Writer) error {
	var generate func() string

	switch strings.ToLower(kind) {
	case IDKindUUID:
		generate = hashing.GenerateUUID
	case IDKindULID:
		generate = hashing.GenerateULID
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIDKind, kind)
	}

	for range max(count, 1) {
		if err := writeLine(w, generate()); err != nil {
			return err
		}
	}

	return nil
}

// ExecuteSeriesCommand prints the identifier following those found in a data file.
func ExecuteSeriesCommand(ctx context.Context, params SeriesParams, w io.Writer) error {
	var records []map[string]string

	if params.File != "" {
		items, err := readCollection(params.File, params.ItemsPath)
		if err != nil {
			return err
		}

		records = stringRecords(items)
	}

	logger.Debugf(ctx, "Generating series identifier from %d records", len(records))

	id := utils.GenerateSeriesID(utils.SeriesOptions{
		Data:        records,
		Column:      params.Column,
		NumberBased: params.NumberBased,
		ZeroLength:  params.ZeroLength,
		Prefix:      params.Prefix,
		IncludeDate: params.IncludeDate,
		DateLayout:  datetime.Layout(params.DateLayout),
	})

	return writeLine(w, id)
}

// stringRecords flattens mapping items into string fields. Non-mapping items are skipped.
func stringRecords(items []value.Value) []map[string]string {
	records := make([]map[string]string, 0, len(items))

	for _, item := range items {
		if item.Kind() != value.KindMap {
			continue
		}

		record := make(map[string]string, item.Len())
		for _, field := range item.Fields() {
			record[field.Key] = field.Value.String()
		}

		records = append(records, record)
	}

	return records
}
