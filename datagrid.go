package datagrid

import (
	"log/slog"

	"github.com/dmitrymomot/datagrid/internal"
	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/filter"
	"github.com/dmitrymomot/datagrid/pkg/logger"
	"github.com/dmitrymomot/datagrid/pkg/query"
	"github.com/dmitrymomot/datagrid/pkg/schema"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
)

// Type aliases - public API
type (
	// Grid orchestrates one collection view's query state.
	Grid = internal.Grid

	// Option configures a grid.
	Option = internal.Option

	// Column is a declarative column or filter descriptor.
	Column = column.Definition

	// Constraints carries type-specific filter options (choices, bounds,
	// operator, case sensitivity).
	Constraints = filter.Constraints

	// FilterValue is a parsed, validated filter value.
	FilterValue = filter.Value

	// SortEntry is one (field, direction) pair in the sort list.
	SortEntry = sortcycle.Entry

	// Direction is a sort direction, including the nulls-handling
	// variants.
	Direction = sortcycle.Direction

	// SortCycle is the ordered direction list a header click advances
	// through.
	SortCycle = sortcycle.Cycle

	// SortMode selects additive or exclusive sorting.
	SortMode = sortcycle.Mode

	// Introspector answers field-path questions against a data schema.
	Introspector = schema.Introspector

	// SearchFunc replaces the default per-field contains search.
	SearchFunc = query.SearchFunc

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// Sort directions.
const (
	Asc            = sortcycle.Asc
	Desc           = sortcycle.Desc
	AscNullsFirst  = sortcycle.AscNullsFirst
	AscNullsLast   = sortcycle.AscNullsLast
	DescNullsFirst = sortcycle.DescNullsFirst
	DescNullsLast  = sortcycle.DescNullsLast

	// NoSort is the cycle sentinel that removes a field from the sort
	// list when reached.
	NoSort = sortcycle.None
)

// Sort modes.
const (
	// SortAdditive appends newly sorted columns, keeping existing sorts.
	SortAdditive = sortcycle.Additive

	// SortExclusive replaces the entire sort list when a different
	// column is clicked.
	SortExclusive = sortcycle.Exclusive
)

// Configuration errors returned by New.
var (
	ErrNoColumns          = internal.ErrNoColumns
	ErrUnknownSortField   = internal.ErrUnknownSortField
	ErrUnknownSearchField = internal.ErrUnknownSearchField
	ErrInvalidPageSize    = internal.ErrInvalidPageSize
)

// New creates a grid from the given options. Configuration errors are
// fatal here; a constructed grid never fails over configuration again.
//
// Example:
//
//	grid, err := datagrid.New(
//	    datagrid.WithModel(&Article{}),
//	    datagrid.WithColumns(
//	        datagrid.Column{Field: "title", Filterable: true, Sortable: true, Searchable: true},
//	        datagrid.Column{Field: "status", Filterable: true},
//	    ),
//	)
func New(opts ...Option) (*Grid, error) {
	return internal.New(opts...)
}

// Grid options

// WithColumns declares the grid's columns in display order.
func WithColumns(defs ...Column) Option {
	return internal.WithColumns(defs...)
}

// WithFilters declares standalone filter descriptors that are not
// rendered as columns.
func WithFilters(defs ...Column) Option {
	return internal.WithFilters(defs...)
}

// WithLogger creates a logger with a component name and optional
// extractors. The component name is added to every log entry.
//
// Example:
//
//	datagrid.New(
//	    datagrid.WithLogger("articles-grid", requestIDExtractor),
//	)
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(logger.New(extractors...).With("component", component))
}

// WithCustomLogger sets a fully custom logger. The default discards all
// output.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithRegistry replaces the built-in filter-type registry.
func WithRegistry(reg *filter.Registry) Option {
	return internal.WithRegistry(reg)
}

// WithSchema sets the schema introspector used for filter-type
// auto-detection and relationship resolution.
func WithSchema(in Introspector) Option {
	return internal.WithSchema(in)
}

// WithModel derives the introspector and table name from a GORM model.
func WithModel(model any) Option {
	return internal.WithModel(model)
}

// WithTable overrides the parent table name used to correlate
// relationship subqueries. Needed only when no model is configured.
func WithTable(name string) Option {
	return internal.WithTable(name)
}

// WithDefaultPageSize sets the page size used when none is selected.
// Defaults to 25.
func WithDefaultPageSize(size int) Option {
	return internal.WithDefaultPageSize(size)
}

// WithPageSizes sets the selectable page-size set.
// Defaults to 10, 25, 50, 100.
func WithPageSizes(sizes ...int) Option {
	return internal.WithPageSizes(sizes...)
}

// WithDefaultSort sets the sort applied when the user has not sorted.
func WithDefaultSort(entries ...SortEntry) Option {
	return internal.WithDefaultSort(entries...)
}

// WithSortMode selects additive (multi-column) or exclusive
// (single-column) sorting. Defaults to additive.
func WithSortMode(mode SortMode) Option {
	return internal.WithSortMode(mode)
}

// WithSearchFields restricts free-text search to the given fields.
// Defaults to every searchable column.
func WithSearchFields(fields ...string) Option {
	return internal.WithSearchFields(fields...)
}

// WithSearchFunc replaces the default per-field contains search with a
// custom query transformation.
//
// Example:
//
//	datagrid.WithSearchFunc(func(db *gorm.DB, term string) *gorm.DB {
//	    return db.Where("search_vector @@ plainto_tsquery(?)", term)
//	})
func WithSearchFunc(fn SearchFunc) Option {
	return internal.WithSearchFunc(fn)
}

// WithKeysetPagination switches the grid from page numbers to opaque
// cursor tokens.
func WithKeysetPagination() Option {
	return internal.WithKeysetPagination()
}
