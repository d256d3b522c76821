package query

import (
	"strings"

	"gorm.io/gorm"

	"github.com/dmitrymomot/datagrid/pkg/pagination"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
)

// Paginate applies offset pagination. Out-of-range state degrades to
// the first page instead of erroring.
func Paginate(db *gorm.DB, off pagination.Offset) *gorm.DB {
	if off.Page < 1 {
		off.Page = 1
	}
	if off.PageSize < 1 {
		off.PageSize = pagination.DefaultPageSize
	}
	return db.Offset(off.SkipRows()).Limit(off.PageSize)
}

// Keyset applies cursor pagination over the sort key list. The cursor's
// key values anchor a lexicographic row comparison: rows strictly past
// the anchor in sort order are returned. One extra row is requested so
// the caller can detect whether a further page exists.
//
// A cursor whose keys do not cover the sort list is ignored and the
// query starts from the beginning.
func Keyset(db *gorm.DB, cur pagination.Cursor, sorts []sortcycle.Entry, limit int) *gorm.DB {
	if limit < 1 {
		limit = pagination.DefaultPageSize
	}
	db = db.Limit(limit + 1)

	if len(cur.Keys) == 0 || len(sorts) == 0 {
		return db
	}
	for _, e := range sorts {
		if _, ok := cur.Keys[e.Field]; !ok {
			return db
		}
	}

	expr, args := keysetCondition(cur, sorts)
	return db.Where(expr, args...)
}

// keysetCondition builds the row-comparison disjunction
//
//	(k1 > v1) OR (k1 = v1 AND k2 > v2) OR ...
//
// flipping each comparison for descending keys, and flipping again when
// paging backward.
func keysetCondition(cur pagination.Cursor, sorts []sortcycle.Entry) (string, []any) {
	var (
		terms []string
		args  []any
	)
	for i, e := range sorts {
		var parts []string
		for _, prev := range sorts[:i] {
			parts = append(parts, columnExpr(prev.Field)+" = ?")
			args = append(args, cur.Keys[prev.Field])
		}
		parts = append(parts, columnExpr(e.Field)+" "+keysetOp(e.Direction, cur.Backward)+" ?")
		args = append(args, cur.Keys[e.Field])
		terms = append(terms, "("+strings.Join(parts, " AND ")+")")
	}
	return strings.Join(terms, " OR "), args
}

func keysetOp(d sortcycle.Direction, backward bool) string {
	desc := d.Descending()
	if backward {
		desc = !desc
	}
	if desc {
		return "<"
	}
	return ">"
}
