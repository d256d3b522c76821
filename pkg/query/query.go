package query

import (
	"strings"

	"gorm.io/gorm"

	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/filter"
	"github.com/dmitrymomot/datagrid/pkg/schema"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
)

// SearchFunc replaces the default per-field contains search entirely.
type SearchFunc func(db *gorm.DB, term string) *gorm.DB

// Input is everything the dispatcher needs to transform a query.
type Input struct {
	// Columns is the normalized column configuration.
	Columns []column.Column

	// Filters holds the active filter values keyed by field path.
	Filters map[string]filter.Value

	// Sort is the ordered sort list.
	Sort []sortcycle.Entry

	// Search is the free-text term; empty leaves the query untouched.
	Search string

	// SearchFields are the search-eligible field paths.
	SearchFields []string

	// SearchFunc, when set, handles Search instead of the default
	// per-field disjunction.
	SearchFunc SearchFunc

	// Registry dispatches filter values to their predicate builders.
	Registry *filter.Registry

	// Schema resolves relationship join metadata for dotted paths.
	// Optional; without it dotted paths are applied verbatim.
	Schema schema.Introspector

	// Table is the parent table name, needed to correlate existential
	// subqueries for relationship filters.
	Table string
}

// Apply transforms db with the input's filters, sort and search, in that
// order. The input query is chained, never mutated; callers keep their
// original handle.
func Apply(db *gorm.DB, in Input) *gorm.DB {
	reg := in.Registry
	if reg == nil {
		reg = filter.Default()
	}

	for _, col := range in.Columns {
		v, active := in.Filters[col.Field]
		if !active || !col.Filterable || v.Zero() {
			continue
		}
		def, ok := reg.Lookup(v.Type)
		if !ok {
			continue // unknown types were rejected at construction
		}
		db = applyFilter(db, in, col.Field, def, v)
	}

	for _, e := range in.Sort {
		if clause, ok := orderClause(e); ok {
			db = db.Order(clause)
		}
	}

	db = applySearch(db, in)

	return db
}

// applyFilter routes a field predicate either directly or through an
// existential subquery for relationship paths.
func applyFilter(db *gorm.DB, in Input, field string, def filter.TypeDef, v filter.Value) *gorm.DB {
	if !strings.Contains(field, ".") {
		return def.Predicate(db, columnExpr(field), v)
	}

	segment, rest, _ := strings.Cut(field, ".")
	rel, ok := resolveRelation(in.Schema, segment)
	if !ok || in.Table == "" {
		// Without join metadata the path is passed through verbatim;
		// the host may have joined the relation itself.
		return def.Predicate(db, columnExpr(field), v)
	}

	sub := db.Session(&gorm.Session{NewDB: true}).
		Table(rel.Table).
		Select("1").
		Where(rel.Table + "." + rel.ForeignColumn + " = " + in.Table + "." + rel.ParentColumn)
	sub = def.Predicate(sub, rel.Table+"."+columnExpr(rest), v)

	return db.Where("EXISTS (?)", sub)
}

func resolveRelation(in schema.Introspector, name string) (schema.Relation, bool) {
	resolver, ok := in.(schema.RelationResolver)
	if !ok {
		return schema.Relation{}, false
	}
	return resolver.Relation(name)
}

// columnExpr maps a declared field path onto its SQL column expression.
// Embedded double underscores collapse to the single-underscore column
// prefix GORM generates.
func columnExpr(field string) string {
	return strings.ReplaceAll(field, "__", "_")
}

// orderClause renders one sort entry as an ORDER BY term.
func orderClause(e sortcycle.Entry) (string, bool) {
	if e.Field == "" {
		return "", false
	}
	col := columnExpr(e.Field)
	switch e.Direction {
	case sortcycle.Asc:
		return col + " ASC", true
	case sortcycle.Desc:
		return col + " DESC", true
	case sortcycle.AscNullsFirst:
		return col + " ASC NULLS FIRST", true
	case sortcycle.AscNullsLast:
		return col + " ASC NULLS LAST", true
	case sortcycle.DescNullsFirst:
		return col + " DESC NULLS FIRST", true
	case sortcycle.DescNullsLast:
		return col + " DESC NULLS LAST", true
	}
	return "", false
}

// applySearch expands the search term into an OR of per-field contains
// predicates, or delegates to the custom search function.
func applySearch(db *gorm.DB, in Input) *gorm.DB {
	term := strings.TrimSpace(in.Search)
	if term == "" {
		return db
	}
	if in.SearchFunc != nil {
		return in.SearchFunc(db, term)
	}
	if len(in.SearchFields) == 0 {
		return db
	}

	pattern := "%" + term + "%"
	cond := db.Session(&gorm.Session{NewDB: true})
	for i, field := range in.SearchFields {
		expr := "LOWER(" + columnExpr(field) + ") LIKE LOWER(?)"
		if i == 0 {
			cond = cond.Where(expr, pattern)
		} else {
			cond = cond.Or(expr, pattern)
		}
	}
	return db.Where(cond)
}
