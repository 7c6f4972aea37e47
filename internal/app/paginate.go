package app

import (
	"context"
	"io"
	"strings"

	"github.com/oshokin/utilkit/internal/config"
	"github.com/oshokin/utilkit/internal/logger"
	"github.com/oshokin/utilkit/internal/pagination"
	"github.com/oshokin/utilkit/internal/value"
)

// PaginateParams holds the options of the paginate command.
type PaginateParams struct {
	// File is a JSON, TOML or YAML document holding a list or a mapping.
	File string
	// ItemsPath is the dot-separated path of the collection inside File.
	// Empty means the whole document.
	ItemsPath string
	// Page is the 1-based page to print.
	Page int
	// Limit is the page size. Zero means the configured page_limit.
	Limit int
	// Search keeps only items containing this keyword, case-insensitively.
	Search string
	// Field restricts Search to a dot-separated path.
	Field string
	// Sort is a "field" or "field:desc" expression.
	Sort string
	// Format is the output format.
	Format OutputFormat
}

// PaginateResult is the printed page.
type PaginateResult struct {
	Data []value.Value  `json:"data" yaml:"data"`
	Meta pagination.Meta `json:"meta" yaml:"meta"`
}

// ExecutePaginateCommand filters, sorts and pages the items of a data file.
func ExecutePaginateCommand(ctx context.Context, cfg *config.Config, params PaginateParams, w io.Writer) error {
	items, err := readCollection(params.File, params.ItemsPath)
	if err != nil {
		return err
	}

	result, err := paginate(items, params, cfg.PageLimit)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "Page %d of %d, %d items matched",
		result.Meta.CurrentPage, result.Meta.TotalPages, result.Meta.TotalItems)

	return writeResult(w, params.Format, result)
}

func paginate(items []value.Value, params PaginateParams, defaultLimit int) (*PaginateResult, error) {
	paginator, err := pagination.NewFrom[value.Value](items)
	if err != nil {
		return nil, err
	}

	paginator.Reset()

	if keyword := strings.TrimSpace(params.Search); keyword != "" {
		paginator.Search(keyword, pagination.SearchOptions[value.Value]{Field: params.Field})
	}

	if params.Sort != "" {
		field, descending, sortErr := pagination.ParseSort(params.Sort)
		if sortErr != nil {
			return nil, sortErr
		}

		paginator.SortBy(field, descending)
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	if _, err = paginator.Paginate(paginator.Data(), pagination.Options{
		Page:  params.Page,
		Limit: limit,
	}); err != nil {
		return nil, err
	}

	return &PaginateResult{
		Data: paginator.Data(),
		Meta: paginator.Meta(),
	}, nil
}
