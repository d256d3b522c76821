package internal

import (
	"log/slog"

	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/filter"
	"github.com/dmitrymomot/datagrid/pkg/query"
	"github.com/dmitrymomot/datagrid/pkg/schema"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
)

// Option configures the grid.
type Option func(*Grid)

// WithColumns declares the grid's columns in display order.
//
// Example:
//
//	datagrid.New(
//	    datagrid.WithColumns(
//	        column.Definition{Field: "title", Filterable: true, Sortable: true, Searchable: true},
//	        column.Definition{Field: "status", Filterable: true},
//	        column.Definition{Label: "Actions"},
//	    ),
//	)
func WithColumns(defs ...column.Definition) Option {
	return func(g *Grid) {
		g.columnDefs = append(g.columnDefs, defs...)
	}
}

// WithFilters declares standalone filter descriptors that are not
// rendered as columns. Declaring a field here and as a filterable column
// is a configuration error.
func WithFilters(defs ...column.Definition) Option {
	return func(g *Grid) {
		g.filterDefs = append(g.filterDefs, defs...)
	}
}

// WithLogger sets the logger for dropped-value warnings. The default
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRegistry replaces the built-in filter-type registry. Use it to add
// custom filter types.
//
// Example:
//
//	reg := filter.NewRegistry()
//	_ = reg.Register("color", colorTypeDef)
//	datagrid.New(datagrid.WithRegistry(reg), ...)
func WithRegistry(reg *filter.Registry) Option {
	return func(g *Grid) {
		if reg != nil {
			g.registry = reg
		}
	}
}

// WithSchema sets the schema introspector used for filter-type
// auto-detection and relationship resolution.
func WithSchema(in schema.Introspector) Option {
	return func(g *Grid) {
		g.introspector = in
	}
}

// WithModel derives the introspector from a GORM model struct. The
// model's table name is picked up for relationship subqueries.
//
// Example:
//
//	datagrid.New(
//	    datagrid.WithModel(&Article{}),
//	    datagrid.WithColumns(...),
//	)
func WithModel(model any) Option {
	return func(g *Grid) {
		g.model = model
	}
}

// WithTable overrides the parent table name used to correlate
// relationship subqueries. Needed only when no model is configured.
func WithTable(name string) Option {
	return func(g *Grid) {
		g.table = name
	}
}

// WithDefaultPageSize sets the page size used when none is selected.
func WithDefaultPageSize(size int) Option {
	return func(g *Grid) {
		g.pager.Default = size
	}
}

// WithPageSizes sets the selectable page-size set.
func WithPageSizes(sizes ...int) Option {
	return func(g *Grid) {
		g.pager.Allowed = sizes
	}
}

// WithDefaultSort sets the sort applied when the user has not sorted.
// Every referenced field must be a sortable column.
func WithDefaultSort(entries ...sortcycle.Entry) Option {
	return func(g *Grid) {
		g.defaultSort = append(g.defaultSort, entries...)
	}
}

// WithSortMode selects additive (multi-column) or exclusive
// (single-column) sorting. The default is additive.
func WithSortMode(mode sortcycle.Mode) Option {
	return func(g *Grid) {
		g.sortMode = mode
	}
}

// WithSearchFields restricts free-text search to the given fields.
// The default is every searchable column. Every listed field must be a
// searchable column.
func WithSearchFields(fields ...string) Option {
	return func(g *Grid) {
		g.searchFields = append(g.searchFields, fields...)
	}
}

// WithSearchFunc replaces the default per-field contains search with a
// custom query transformation (e.g. full-text search).
//
// Example:
//
//	datagrid.WithSearchFunc(func(db *gorm.DB, term string) *gorm.DB {
//	    return db.Where("search_vector @@ plainto_tsquery(?)", term)
//	})
func WithSearchFunc(fn query.SearchFunc) Option {
	return func(g *Grid) {
		g.searchFunc = fn
	}
}

// WithKeysetPagination switches the grid from page numbers to opaque
// cursor tokens. Use it for large collections where deep offsets are
// too expensive.
func WithKeysetPagination() Option {
	return func(g *Grid) {
		g.keyset = true
	}
}
