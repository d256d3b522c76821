package internal

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/filter"
	"github.com/dmitrymomot/datagrid/pkg/pagination"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
	"github.com/dmitrymomot/datagrid/pkg/urlstate"
)

// Inbound interaction events. Each one fully reconciles the state before
// returning; malformed inputs are dropped field-by-field with a logged
// warning, never an error.

// ApplyFilters replaces the active filter set from raw form values. The
// values go through the same per-type parse and validation as a URL
// decode; fields absent from raw end up unfiltered.
func (g *Grid) ApplyFilters(raw map[string][]string) {
	filters, problems := urlstate.DecodeFilters(url.Values(raw), g.columns, g.registry)
	g.reportProblems("filter_change", problems)

	g.state.Filters = filters
	g.resetPage()
	g.clearSelection()
	g.invalidateLoads()
}

// ClearFilter removes one active filter. Unknown keys are a no-op.
func (g *Grid) ClearFilter(key string) {
	if _, ok := g.state.Filters[key]; !ok {
		return
	}
	delete(g.state.Filters, key)
	g.resetPage()
	g.clearSelection()
	g.invalidateLoads()
}

// ClearAllFilters removes every active filter.
func (g *Grid) ClearAllFilters() {
	if len(g.state.Filters) == 0 {
		return
	}
	g.state.Filters = make(map[string]filter.Value)
	g.resetPage()
	g.clearSelection()
	g.invalidateLoads()
}

// ToggleSort advances the field's sort direction through its cycle.
// Unsortable or unknown fields are dropped with a warning.
func (g *Grid) ToggleSort(field string) {
	col, ok := column.ByField(g.columns, field)
	if !ok || !col.Sortable {
		g.log.Warn("dropped sort toggle",
			slog.String("event", "toggle_sort"),
			slog.String("field", field),
		)
		return
	}

	g.state.Sort = sortcycle.Advance(g.state.Sort, field, col.Cycle, g.sortMode)
	g.resetPage()
	g.clearSelection()
	g.invalidateLoads()
}

// GoToPage navigates to a 1-based page number. Out-of-range input falls
// back to page 1. Selection is preserved across page navigation.
func (g *Grid) GoToPage(page int) {
	if page < 1 {
		g.log.Warn("dropped page number",
			slog.String("event", "goto_page"),
			slog.Int("page", page),
		)
		page = 1
	}
	g.state.Page = page
	g.state.Cursor = ""
	g.invalidateLoads()
}

// GoToCursor navigates by opaque cursor token. Malformed tokens fall
// back to the first page. Selection is preserved.
func (g *Grid) GoToCursor(token string) {
	g.state.Page = 1
	g.state.Cursor = ""
	if token == "" {
		g.invalidateLoads()
		return
	}
	if _, ok := pagination.DecodeCursor(token); !ok {
		g.log.Warn("dropped cursor token",
			slog.String("event", "goto_cursor"),
			slog.String("value", token),
		)
		g.invalidateLoads()
		return
	}
	g.state.Cursor = token
	g.invalidateLoads()
}

// ChangePageSize selects a page size from the allowed set. Sizes outside
// the set fall back to the default. Navigation restarts at page 1.
func (g *Grid) ChangePageSize(size int) {
	clamped := g.pager.ClampSize(size)
	if clamped != size {
		g.log.Warn("dropped page size",
			slog.String("event", "change_page_size"),
			slog.Int("page_size", size),
		)
	}
	g.state.PageSize = clamped
	g.resetPage()
	g.invalidateLoads()
}

// Search replaces the free-text search term. Whitespace-only terms
// clear the search.
func (g *Grid) Search(term string) {
	term = strings.TrimSpace(term)
	if term == g.state.Search {
		return
	}
	g.state.Search = term
	g.resetPage()
	g.clearSelection()
	g.invalidateLoads()
}

// resetPage restarts navigation after any event that changes the result
// set membership or order.
func (g *Grid) resetPage() {
	g.state.Page = 1
	g.state.Cursor = ""
}
