package internal

import (
	"log/slog"
	"net/url"
	"slices"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/filter"
	"github.com/dmitrymomot/datagrid/pkg/logger"
	"github.com/dmitrymomot/datagrid/pkg/pagination"
	"github.com/dmitrymomot/datagrid/pkg/query"
	"github.com/dmitrymomot/datagrid/pkg/schema"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
	"github.com/dmitrymomot/datagrid/pkg/urlstate"
)

// Grid orchestrates one collection view's query state. Configuration is
// immutable after New; the UI state (filters, sort, pagination, search,
// selection) mutates through the event methods, each of which fully
// reconciles the state before returning.
//
// A Grid belongs to one UI session and is not safe for concurrent use.
type Grid struct {
	columns      []column.Column
	registry     *filter.Registry
	introspector schema.Introspector
	log          *slog.Logger
	pager        pagination.Config
	sortMode     sortcycle.Mode
	defaultSort  []sortcycle.Entry
	searchFields []string
	searchFunc   query.SearchFunc
	table        string
	keyset       bool

	// raw descriptors collected by options, consumed once by New
	columnDefs []column.Definition
	filterDefs []column.Definition
	model      any

	state     urlstate.State
	selected  map[string]struct{}
	loadToken uuid.UUID
}

// New creates a grid from the given options. Configuration errors
// (invalid column declarations, unknown filter types, field conflicts,
// unsortable default sorts) are fatal here; a constructed grid never
// fails over configuration again.
func New(opts ...Option) (*Grid, error) {
	g := &Grid{
		log:      logger.NewNope(),
		registry: filter.Default(),
		sortMode: sortcycle.Additive,
		selected: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	if len(g.columnDefs) == 0 && len(g.filterDefs) == 0 {
		return nil, ErrNoColumns
	}

	if g.model != nil {
		in, err := schema.ParseModel(g.model)
		if err != nil {
			return nil, err
		}
		g.introspector = in
	}
	if g.table == "" {
		if tn, ok := g.introspector.(schema.TableNamer); ok {
			g.table = tn.Table()
		}
	}

	if g.pager.Default > 0 && len(g.pager.Allowed) > 0 && !slices.Contains(g.pager.Allowed, g.pager.Default) {
		return nil, ErrInvalidPageSize
	}
	g.pager = g.pager.Normalize()

	cols, err := column.Normalize(g.columnDefs, g.filterDefs, g.introspector, g.registry, g.log)
	if err != nil {
		return nil, err
	}
	g.columns = cols
	g.columnDefs, g.filterDefs, g.model = nil, nil, nil

	for _, e := range g.defaultSort {
		col, ok := column.ByField(g.columns, e.Field)
		if !ok || !col.Sortable {
			return nil, ErrUnknownSortField
		}
	}
	if len(g.searchFields) == 0 {
		g.searchFields = column.Searchable(g.columns)
	} else {
		for _, field := range g.searchFields {
			col, ok := column.ByField(g.columns, field)
			if !ok || !col.Searchable {
				return nil, ErrUnknownSearchField
			}
		}
	}

	g.state = g.freshState()
	g.loadToken = uuid.New()
	return g, nil
}

// freshState is the pristine state: first page, default page size, no
// filters, no user sort. The default sort applies at query time, not in
// the URL-visible state, so a pristine grid encodes to an empty map.
func (g *Grid) freshState() urlstate.State {
	return urlstate.State{
		Filters:  make(map[string]filter.Value),
		Page:     1,
		PageSize: g.pager.Default,
	}
}

// Columns returns the normalized column records in declaration order.
// The returned slice is shared; callers must not modify it.
func (g *Grid) Columns() []column.Column {
	return g.columns
}

// State returns a copy of the current URL-visible state.
func (g *Grid) State() urlstate.State {
	return cloneState(g.state)
}

// PageSizes returns the selectable page-size set.
func (g *Grid) PageSizes() []int {
	return g.pager.Allowed
}

// SortDirection reports the current sort direction of a field, for
// rendering header indicators.
func (g *Grid) SortDirection(field string) (sortcycle.Direction, bool) {
	return sortcycle.DirectionOf(g.state.Sort, field)
}

// Params encodes the current state as query parameters for the host to
// push into the address bar.
func (g *Grid) Params() url.Values {
	return urlstate.Encode(g.state, g.codecConfig())
}

// LoadParams replaces the state with one decoded from an incoming URL.
// The decode is tolerant: malformed parameters are dropped one by one
// with a logged warning and never fail the load.
func (g *Grid) LoadParams(values url.Values) {
	s, problems := urlstate.Decode(values, g.columns, g.codecConfig())
	g.reportProblems("load_params", problems)
	g.state = s
	g.clearSelection()
	g.invalidateLoads()
}

// Scope applies the current filters, sort, search and pagination to db
// and returns the chained query. The input query is never mutated.
func (g *Grid) Scope(db *gorm.DB) *gorm.DB {
	db = query.Apply(db, query.Input{
		Columns:      g.columns,
		Filters:      g.state.Filters,
		Sort:         g.effectiveSort(),
		Search:       g.state.Search,
		SearchFields: g.searchFields,
		SearchFunc:   g.searchFunc,
		Registry:     g.registry,
		Schema:       g.introspector,
		Table:        g.table,
	})

	if g.keyset {
		cur, _ := pagination.DecodeCursor(g.state.Cursor)
		return query.Keyset(db, cur, g.effectiveSort(), g.state.PageSize)
	}
	return query.Paginate(db, pagination.Offset{Page: g.state.Page, PageSize: g.state.PageSize})
}

// FilterScope applies only the filters and search term, without sort or
// pagination. Use it to count the result set for PageInfo.
func (g *Grid) FilterScope(db *gorm.DB) *gorm.DB {
	return query.Apply(db, query.Input{
		Columns:      g.columns,
		Filters:      g.state.Filters,
		Search:       g.state.Search,
		SearchFields: g.searchFields,
		SearchFunc:   g.searchFunc,
		Registry:     g.registry,
		Schema:       g.introspector,
		Table:        g.table,
	})
}

// PageInfo derives pagination metadata from a total row count.
func (g *Grid) PageInfo(total int64) pagination.Info {
	return pagination.NewInfo(pagination.Offset{Page: g.state.Page, PageSize: g.state.PageSize}, total)
}

// effectiveSort is the active sort list, falling back to the default
// sort when the user has not sorted.
func (g *Grid) effectiveSort() []sortcycle.Entry {
	if len(g.state.Sort) > 0 {
		return g.state.Sort
	}
	return g.defaultSort
}

// LoadToken returns the token identifying the current state generation.
// Capture it before starting an asynchronous load.
func (g *Grid) LoadToken() uuid.UUID {
	return g.loadToken
}

// AcceptLoad reports whether a load started under token still matches
// the current state. Stale results must be discarded by the caller.
func (g *Grid) AcceptLoad(token uuid.UUID) bool {
	return token == g.loadToken
}

// invalidateLoads refreshes the load token. Every state mutation calls
// it so in-flight loads started before the mutation are rejected.
func (g *Grid) invalidateLoads() {
	g.loadToken = uuid.New()
}

func (g *Grid) codecConfig() urlstate.Config {
	return urlstate.Config{Registry: g.registry, Pagination: g.pager}
}

// reportProblems logs dropped runtime values. Problems never bubble up
// as errors.
func (g *Grid) reportProblems(event string, problems []urlstate.Problem) {
	for _, p := range problems {
		g.log.Warn("dropped grid parameter",
			slog.String("event", event),
			slog.String("key", p.Key),
			slog.String("value", p.Value),
			slog.Any("error", p.Err),
		)
	}
}

func cloneState(s urlstate.State) urlstate.State {
	out := s
	out.Filters = make(map[string]filter.Value, len(s.Filters))
	for k, v := range s.Filters {
		out.Filters[k] = v
	}
	out.Sort = append([]sortcycle.Entry(nil), s.Sort...)
	return out
}
