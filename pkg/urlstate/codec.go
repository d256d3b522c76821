package urlstate

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/filter"
	"github.com/dmitrymomot/datagrid/pkg/pagination"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
)

// Reserved query parameter keys. Filter fields shadowed by a reserved key
// cannot be encoded and should be renamed in the data model.
const (
	KeySort     = "sort"
	KeyPage     = "page"
	KeyPageSize = "page_size"
	KeySearch   = "q"
	KeyCursor   = "cursor"
)

// State is the URL-visible portion of a grid's UI state.
type State struct {
	Filters  map[string]filter.Value
	Sort     []sortcycle.Entry
	Page     int
	PageSize int
	Search   string
	Cursor   string
}

// Config carries what the codec needs to know about the grid: the filter
// registry for per-type parsing and the pagination policy for defaults.
type Config struct {
	Registry   *filter.Registry
	Pagination pagination.Config
}

// Problem describes one dropped parameter during decode. Problems are
// reported, not returned as errors: decoding always produces a usable state.
type Problem struct {
	Key   string
	Value string
	Err   error
}

// sign prefixes for sort directions. Ascending is unprefixed.
var directionPrefix = map[sortcycle.Direction]string{
	sortcycle.Asc:            "",
	sortcycle.Desc:           "-",
	sortcycle.AscNullsFirst:  "++",
	sortcycle.AscNullsLast:   "+-",
	sortcycle.DescNullsFirst: "-+",
	sortcycle.DescNullsLast:  "--",
}

// Encode renders state as a flat query parameter map. Default-valued fields
// (page 1, default page size, empty search, zero filters) are omitted so
// that a pristine grid encodes to an empty map.
func Encode(s State, cfg Config) url.Values {
	out := url.Values{}
	cfg.Pagination = cfg.Pagination.Normalize()

	for field, v := range s.Filters {
		if v.Zero() {
			continue
		}
		switch {
		case v.Min != "" || v.Max != "":
			if v.Min != "" {
				out.Set(field+"_min", v.Min)
			}
			if v.Max != "" {
				out.Set(field+"_max", v.Max)
			}
		case len(v.Values) > 0:
			for _, val := range v.Values {
				out.Add(field+"[]", val)
			}
		default:
			out.Set(field, v.Raw)
		}
	}

	if len(s.Sort) > 0 {
		tokens := make([]string, 0, len(s.Sort))
		for _, e := range s.Sort {
			prefix, ok := directionPrefix[e.Direction]
			if !ok {
				continue // unknown directions are dropped, never fatal
			}
			tokens = append(tokens, prefix+e.Field)
		}
		if len(tokens) > 0 {
			out.Set(KeySort, strings.Join(tokens, ","))
		}
	}

	if s.Cursor != "" {
		out.Set(KeyCursor, s.Cursor)
	} else if s.Page > 1 {
		out.Set(KeyPage, strconv.Itoa(s.Page))
	}
	if s.PageSize > 0 && s.PageSize != cfg.Pagination.Default {
		out.Set(KeyPageSize, strconv.Itoa(s.PageSize))
	}
	if s.Search != "" {
		out.Set(KeySearch, s.Search)
	}

	return out
}

// Decode reconstructs state from query parameters against the column
// configuration. Every malformed value is dropped individually with a
// Problem; the returned state is always well-formed.
func Decode(values url.Values, cols []column.Column, cfg Config) (State, []Problem) {
	if cfg.Registry == nil {
		cfg.Registry = filter.Default()
	}
	cfg.Pagination = cfg.Pagination.Normalize()

	s := State{
		Filters:  make(map[string]filter.Value),
		Page:     1,
		PageSize: cfg.Pagination.Default,
	}
	var problems []Problem

	if raw := values.Get(KeyPage); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			s.Page = page
		} else {
			problems = append(problems, Problem{Key: KeyPage, Value: raw,
				Err: fmt.Errorf("urlstate: invalid page number")})
		}
	}

	if raw := values.Get(KeyPageSize); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || cfg.Pagination.ClampSize(size) != size {
			problems = append(problems, Problem{Key: KeyPageSize, Value: raw,
				Err: fmt.Errorf("urlstate: page size not in the allowed set")})
		} else {
			s.PageSize = size
		}
	}

	if raw := values.Get(KeyCursor); raw != "" {
		if _, ok := pagination.DecodeCursor(raw); ok {
			s.Cursor = raw
			s.Page = 1
		} else {
			problems = append(problems, Problem{Key: KeyCursor, Value: raw,
				Err: fmt.Errorf("urlstate: malformed cursor token")})
		}
	}

	s.Search = strings.TrimSpace(values.Get(KeySearch))

	if raw := values.Get(KeySort); raw != "" {
		sort, sortProblems := decodeSort(raw, cols)
		s.Sort = sort
		problems = append(problems, sortProblems...)
	}

	filters, filterProblems := DecodeFilters(values, cols, cfg.Registry)
	s.Filters = filters
	problems = append(problems, filterProblems...)

	return s, problems
}

// DecodeFilters parses just the filter parameters against the column
// configuration. Grid filter-change events reuse it so form submissions
// and URL decodes go through the same per-type parse and validation.
func DecodeFilters(values url.Values, cols []column.Column, reg *filter.Registry) (map[string]filter.Value, []Problem) {
	if reg == nil {
		reg = filter.Default()
	}

	filters := make(map[string]filter.Value)
	var problems []Problem

	for _, col := range cols {
		if !col.Filterable || col.Field == "" {
			continue
		}
		in := filter.Input{
			Values: append(values[col.Field], values[col.Field+"[]"]...),
			Min:    values.Get(col.Field + "_min"),
			Max:    values.Get(col.Field + "_max"),
		}
		if in.Empty() {
			continue
		}

		def, ok := reg.Lookup(col.FilterType)
		if !ok {
			// Unknown types fail grid construction; if one slips through,
			// drop the value rather than guessing.
			problems = append(problems, Problem{Key: col.Field,
				Err: fmt.Errorf("urlstate: no registered filter type %q", col.FilterType)})
			continue
		}

		v, err := def.Parse(in, col.Constraints)
		if err != nil {
			problems = append(problems, Problem{Key: col.Field, Value: in.First(), Err: err})
			continue
		}
		if v.Zero() {
			continue
		}
		if err := def.Validate(v, col.Constraints); err != nil {
			problems = append(problems, Problem{Key: col.Field, Value: in.First(), Err: err})
			continue
		}
		filters[col.Field] = v
	}

	return filters, problems
}

// decodeSort parses the comma-separated sort token list. Unknown fields and
// unsortable columns are dropped token-by-token.
func decodeSort(raw string, cols []column.Column) ([]sortcycle.Entry, []Problem) {
	var (
		sorts    []sortcycle.Entry
		problems []Problem
	)

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		field, dir := splitSortToken(token)
		if field == "" {
			problems = append(problems, Problem{Key: KeySort, Value: token,
				Err: fmt.Errorf("urlstate: sort token has no field")})
			continue
		}

		col, ok := column.ByField(cols, field)
		if !ok || !col.Sortable {
			problems = append(problems, Problem{Key: KeySort, Value: token,
				Err: fmt.Errorf("urlstate: field %q is not sortable", field)})
			continue
		}

		sorts = append(sorts, sortcycle.Entry{Field: field, Direction: dir})
	}

	return sorts, problems
}

func splitSortToken(token string) (string, sortcycle.Direction) {
	twoChar := map[string]sortcycle.Direction{
		"++": sortcycle.AscNullsFirst,
		"+-": sortcycle.AscNullsLast,
		"-+": sortcycle.DescNullsFirst,
		"--": sortcycle.DescNullsLast,
	}
	if len(token) > 2 {
		if dir, ok := twoChar[token[:2]]; ok {
			return token[2:], dir
		}
	}
	if strings.HasPrefix(token, "-") {
		return token[1:], sortcycle.Desc
	}
	return strings.TrimPrefix(token, "+"), sortcycle.Asc
}
