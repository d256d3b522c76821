// Package query translates reconciled grid state into a GORM query.
//
// Apply is the integration seam between the grid's pure state and the data
// layer: it dispatches each active filter to its type's predicate builder,
// renders the sort list as a multi-key ORDER BY with nulls handling, and
// expands a search term into a disjunction of per-field contains predicates.
// GORM is the one query abstraction this package targets; the grid never
// touches SQL directly.
//
//	tx := query.Apply(db.Model(&Article{}), query.Input{
//	    Columns:      cols,
//	    Filters:      state.Filters,
//	    Sort:         state.Sort,
//	    Search:       state.Search,
//	    SearchFields: column.Searchable(cols),
//	    Registry:     registry,
//	    Schema:       introspector,
//	    Table:        "articles",
//	})
//
// Relationship paths (author.name) are applied through an EXISTS subquery
// correlated on the join metadata the schema introspector resolves; the
// related table is never joined into the row set, so filters cannot
// duplicate rows. Embedded paths (profile__bio) collapse to their literal
// column names. When join metadata is unavailable the path is applied
// verbatim and the database decides - the host may have set up the join
// itself.
//
// Pagination is applied separately: Paginate for offset mode, Keyset for
// cursor mode with a lookahead row so the caller can tell whether a next
// page exists.
package query
