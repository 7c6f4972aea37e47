package pagination

import (
	"slices"

	"github.com/oshokin/utilkit/internal/value"
)

const (
	// DefaultPage is the page used when Options.Page is zero.
	DefaultPage = 1
	// DefaultLimit is the page size used when Options.Limit is zero.
	DefaultLimit = 10
)

// Options selects the page to cut from the collection.
type Options struct {
	// Page is the 1-based page number. Zero means DefaultPage, negative values clamp to 1.
	Page int
	// Limit is the number of items per page. Zero means DefaultLimit, negative values clamp to 1.
	Limit int
}

// SearchOptions selects the matching strategy for Search.
// SearchBy takes precedence over Field; with neither set the whole item is deep-matched.
type SearchOptions[T any] struct {
	// Field is a dot-separated path into each item, e.g. "profile.city".
	Field string
	// SearchBy is a custom predicate receiving the item and the keyword.
	SearchBy func(item T, keyword string) bool
}

// Meta describes the current view.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PerPage     int  `json:"per_page"     yaml:"per_page"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// Paginator pages, searches and sorts an in-memory collection.
// Mutating methods return the paginator itself so calls can be chained.
type Paginator[T any] struct {
	// originalData is the latest normalized input, the base for Search and Reset.
	originalData []T
	// processedData is the current view.
	processedData []T
	// currentPage is the 1-based page of the current view.
	currentPage int
	// perPage is the page size, always at least 1.
	perPage int
	// totalItems is the number of items the view was computed from.
	totalItems int
	// totalPages is ceil(totalItems / perPage).
	totalPages int
}

// New creates an empty paginator.
func New[T any]() *Paginator[T] {
	return &Paginator[T]{
		originalData:  []T{},
		processedData: []T{},
		currentPage:   DefaultPage,
		perPage:       DefaultLimit,
	}
}

// NewFrom creates a paginator whose original data is the normalized form of data.
// The view stays empty until Paginate, Search or Reset is called.
func NewFrom[T any](data any) (*Paginator[T], error) {
	items, err := Normalize[T](data)
	if err != nil {
		return nil, err
	}

	p := New[T]()
	p.originalData = items

	return p, nil
}

// Paginate replaces the original data with the normalized form of data and
// cuts the requested page out of it. On error the paginator is left untouched.
func (p *Paginator[T]) Paginate(data any, opts Options) (*Paginator[T], error) {
	items, err := Normalize[T](data)
	if err != nil {
		return p, err
	}

	page, limit := opts.resolve()

	start, end := pageBounds(page, limit, len(items))

	p.originalData = items
	p.processedData = items[start:end:end]
	p.currentPage = page
	p.perPage = limit
	p.setTotals(len(items))

	return p, nil
}

// Search filters the original data, not the current page, and makes the
// matches the new view starting at page 1.
func (p *Paginator[T]) Search(keyword string, opts SearchOptions[T]) *Paginator[T] {
	matches := make([]T, 0)

	for _, item := range p.originalData {
		if opts.matches(item, keyword) {
			matches = append(matches, item)
		}
	}

	p.processedData = matches
	p.currentPage = DefaultPage
	p.setTotals(len(matches))

	return p
}

// Sort reorders a copy of the current view with a stable sort.
// cmp returns a negative number when a sorts before b, zero when equal and a positive number otherwise.
// Pagination metadata is left unchanged.
func (p *Paginator[T]) Sort(cmp func(a, b T) int) *Paginator[T] {
	sorted := slices.Clone(p.processedData)
	slices.SortStableFunc(sorted, cmp)

	p.processedData = sorted

	return p
}

// SortBy stably reorders a copy of the current view by the value found at the
// dot-separated field path of each item, using value.Compare ordering.
// Items lacking the field sort as null.
func (p *Paginator[T]) SortBy(field string, descending bool) *Paginator[T] {
	keys := make([]value.Value, len(p.processedData))
	order := make([]int, len(p.processedData))

	for i, item := range p.processedData {
		order[i] = i

		if v, err := value.Of(item); err == nil {
			keys[i], _ = v.Get(field)
		}
	}

	slices.SortStableFunc(order, func(a, b int) int {
		result := value.Compare(keys[a], keys[b])
		if descending {
			return -result
		}

		return result
	})

	sorted := make([]T, len(order))
	for i, index := range order {
		sorted[i] = p.processedData[index]
	}

	p.processedData = sorted

	return p
}

// Data returns the current view.
// The slice may be replaced by later calls and must not be modified.
func (p *Paginator[T]) Data() []T {
	return p.processedData
}

// Reset makes a copy of the original data the view again, starting at page 1.
func (p *Paginator[T]) Reset() *Paginator[T] {
	p.processedData = slices.Clone(p.originalData)
	if p.processedData == nil {
		p.processedData = []T{}
	}

	p.currentPage = DefaultPage
	p.setTotals(len(p.processedData))

	return p
}

// CurrentPage returns the 1-based page of the current view.
func (p *Paginator[T]) CurrentPage() int {
	return p.currentPage
}

// PerPage returns the page size.
func (p *Paginator[T]) PerPage() int {
	return p.perPage
}

// TotalItems returns the number of items the current view was computed from.
func (p *Paginator[T]) TotalItems() int {
	return p.totalItems
}

// TotalPages returns the number of pages for TotalItems at PerPage.
func (p *Paginator[T]) TotalPages() int {
	return p.totalPages
}

// Meta returns the pagination metadata of the current view.
func (p *Paginator[T]) Meta() Meta {
	return Meta{
		CurrentPage: p.currentPage,
		PerPage:     p.perPage,
		TotalItems:  p.totalItems,
		TotalPages:  p.totalPages,
		HasPrevious: p.currentPage > 1,
		HasNext:     p.currentPage < p.totalPages,
	}
}

func (p *Paginator[T]) setTotals(totalItems int) {
	p.totalItems = totalItems
	p.totalPages = TotalPages(totalItems, p.perPage)
}

// TotalPages returns ceil(totalItems / perPage), treating perPage below 1 as 1.
func TotalPages(totalItems, perPage int) int {
	if totalItems <= 0 {
		return 0
	}

	perPage = max(perPage, 1)

	return (totalItems-1)/perPage + 1
}

// pageBounds returns the slice bounds of a page. page and limit are at least 1
// and may be as large as math.MaxInt, so nothing here multiplies or adds past length.
func pageBounds(page, limit, length int) (int, int) {
	if page-1 > length/limit {
		return length, length
	}

	start := min((page-1)*limit, length)

	return start, start + min(limit, length-start)
}

func (o Options) resolve() (int, int) {
	page, limit := o.Page, o.Limit

	if page == 0 {
		page = DefaultPage
	}

	if limit == 0 {
		limit = DefaultLimit
	}

	return max(page, 1), max(limit, 1)
}

func (o SearchOptions[T]) matches(item T, keyword string) bool {
	if o.SearchBy != nil {
		return o.SearchBy(item, keyword)
	}

	v, err := value.Of(item)
	if err != nil {
		return false
	}

	if o.Field != "" {
		// A missing path resolves to null, which never matches.
		v, _ = v.Get(o.Field)
	}

	return v.Contains(keyword)
}
