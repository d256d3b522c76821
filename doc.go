// Package datagrid provides server-rendered data grids for Go web
// applications: declarative columns, type-aware filters, multi-column
// sorting, pagination and free-text search, all reconciled into a
// shareable URL and a GORM query.
//
// A grid is configured once with options and then driven by interaction
// events. Every event fully reconciles the state before returning, so
// the grid is always ready to encode its URL or scope a query.
//
// # Quick Start
//
// Declare columns against a GORM model and wire the grid into a
// handler:
//
//	grid, err := datagrid.New(
//	    datagrid.WithModel(&Article{}),
//	    datagrid.WithColumns(
//	        datagrid.Column{Field: "title", Filterable: true, Sortable: true, Searchable: true},
//	        datagrid.Column{Field: "status", Filterable: true},
//	        datagrid.Column{Field: "created_at", Sortable: true},
//	        datagrid.Column{Label: "Actions"},
//	    ),
//	    datagrid.WithDefaultSort(datagrid.SortEntry{Field: "created_at", Direction: datagrid.Desc}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	func listArticles(w http.ResponseWriter, r *http.Request) {
//	    grid.LoadParams(htmx.StateFromRequest(r))
//
//	    var rows []Article
//	    grid.Scope(db).Find(&rows)
//
//	    htmx.PushState(w, "/articles", grid.Params())
//	    // render rows with grid.Columns()
//	}
//
// Filter types are auto-detected from the model's field types: strings
// get a text filter, booleans a boolean toggle, times a date range,
// numbers a number range, enum types a select populated with the enum's
// values. Explicit declarations override detection.
//
// # Events
//
// Interaction events arrive as raw strings from forms and URLs and are
// parsed per the column's filter type:
//
//	grid.ApplyFilters(r.Form)
//	grid.ToggleSort("title")
//	grid.GoToPage(3)
//	grid.Search(r.FormValue("q"))
//
// Malformed input never fails an event: each bad value is dropped
// individually with a logged warning and the rest of the event applies.
// Configuration mistakes, in contrast, fail New with an error.
//
// # Custom Filter Types
//
// The filter registry is open-ended. A filter type is four functions
// (render hint, parse, validate, predicate) registered under a name:
//
//	reg := filter.NewRegistry()
//	err := reg.Register("tsquery", filter.TypeDef{...})
//	grid, err := datagrid.New(datagrid.WithRegistry(reg), ...)
//
// # Asynchronous Loads
//
// Hosts that load rows asynchronously capture a token before the load
// and check it when results arrive; results from a superseded state are
// discarded:
//
//	token := grid.LoadToken()
//	go func() {
//	    rows := load(grid.Scope(db))
//	    if grid.AcceptLoad(token) {
//	        render(rows)
//	    }
//	}()
package datagrid
