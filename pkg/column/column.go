package column

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/datagrid/pkg/filter"
	"github.com/dmitrymomot/datagrid/pkg/schema"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
)

// Definition is a declarative column or filter descriptor as written by the
// application. Zero values mean "resolve it for me".
type Definition struct {
	// Field is the data field path. Dotted for relationships
	// (author.name), double-underscore for embedded resources
	// (profile__bio). May be empty only for action-only columns that
	// declare no filter/sort/search capability.
	Field string

	// Label overrides the humanized field path.
	Label string

	// FilterType names a registered filter type. Empty means auto-detect
	// from the introspected field kind.
	FilterType string

	// Capability flags.
	Filterable bool
	Sortable   bool
	Searchable bool

	// SortCycle overrides the default [None, Asc, Desc] cycle.
	SortCycle sortcycle.Cycle

	// Constraints carries type-specific filter options (choices, bounds,
	// operator, case sensitivity).
	Constraints filter.Constraints
}

// Column is a normalized, immutable column record.
type Column struct {
	Field       string
	Label       string
	FilterType  string
	RenderHint  string
	Filterable  bool
	Sortable    bool
	Searchable  bool
	FilterOnly  bool
	Cycle       sortcycle.Cycle
	Constraints filter.Constraints
}

// Normalize resolves column and standalone filter descriptors against the
// schema and filter registry. Configuration errors are fatal; unresolvable
// field paths only log a warning and fall back to a text filter.
//
// The introspector may be nil, in which case no auto-detection or type
// checking happens and every implicit filter type resolves to text.
func Normalize(defs []Definition, filters []Definition, in schema.Introspector, reg *filter.Registry, log *slog.Logger) ([]Column, error) {
	if reg == nil {
		reg = filter.Default()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	out := make([]Column, 0, len(defs)+len(filters))
	filterFields := make(map[string]bool)

	for _, def := range defs {
		col, err := normalizeOne(def, false, in, reg, log)
		if err != nil {
			return nil, err
		}
		if col.Filterable && col.Field != "" {
			filterFields[col.Field] = true
		}
		out = append(out, col)
	}

	for _, def := range filters {
		if def.Field == "" {
			return nil, fmt.Errorf("column: standalone filter requires a field path")
		}
		if filterFields[def.Field] {
			return nil, fmt.Errorf("column: field %q is declared both as a filterable column and a standalone filter", def.Field)
		}
		def.Filterable = true
		col, err := normalizeOne(def, true, in, reg, log)
		if err != nil {
			return nil, err
		}
		filterFields[col.Field] = true
		out = append(out, col)
	}

	return out, nil
}

func normalizeOne(def Definition, filterOnly bool, in schema.Introspector, reg *filter.Registry, log *slog.Logger) (Column, error) {
	if def.Field == "" {
		// Action-only columns carry no data; capabilities need a field.
		if def.Filterable || def.Sortable || def.Searchable {
			return Column{}, fmt.Errorf("column: %q declares filter/sort/search capability without a field path", def.Label)
		}
		return Column{Label: def.Label}, nil
	}

	col := Column{
		Field:       def.Field,
		Label:       def.Label,
		FilterType:  def.FilterType,
		Filterable:  def.Filterable,
		Sortable:    def.Sortable,
		Searchable:  def.Searchable,
		FilterOnly:  filterOnly,
		Cycle:       def.SortCycle,
		Constraints: def.Constraints,
	}

	if col.Label == "" {
		col.Label = Humanize(col.Field)
	}
	if len(col.Cycle) == 0 {
		col.Cycle = sortcycle.Default
	}

	field, known := schema.Field{}, false
	if in != nil {
		field, known = in.Field(col.Field)
	}
	if in != nil && !known {
		log.Warn("column: field path does not resolve against the schema, continuing with defaults",
			slog.String("field", col.Field))
	}

	if col.Filterable {
		if col.FilterType == "" {
			col.FilterType = detectType(field, known)
			if col.FilterType == filter.TypeSelect && len(col.Constraints.Choices) == 0 {
				col.Constraints.Choices = field.EnumValues
			}
		} else {
			if !reg.Has(col.FilterType) {
				return Column{}, fmt.Errorf("column: %q uses unknown filter type %q", col.Field, col.FilterType)
			}
			if known {
				if err := checkTypeMatch(col.FilterType, field); err != nil {
					return Column{}, fmt.Errorf("column: %q: %w", col.Field, err)
				}
			}
		}

		def, ok := reg.Lookup(col.FilterType)
		if !ok {
			return Column{}, fmt.Errorf("column: %q uses unknown filter type %q", col.Field, col.FilterType)
		}
		col.RenderHint = def.RenderHint(col.Constraints)
	}

	return col, nil
}

// detectType maps an introspected field kind to a built-in filter type.
// Unresolved fields default to a plain text filter.
func detectType(f schema.Field, known bool) string {
	if !known {
		return filter.TypeText
	}
	switch f.Kind {
	case schema.KindBool:
		return filter.TypeBoolean
	case schema.KindTime:
		return filter.TypeDateRange
	case schema.KindInt, schema.KindFloat:
		return filter.TypeNumberRange
	case schema.KindEnum:
		return filter.TypeSelect
	case schema.KindSlice:
		return filter.TypeMultiSelect
	default:
		return filter.TypeText
	}
}

// checkTypeMatch rejects declared filter types that contradict the field's
// storage type. Types outside the matrix (user-registered) pass unchecked.
func checkTypeMatch(filterType string, f schema.Field) error {
	allowed := map[string][]schema.Kind{
		filter.TypeText:         {schema.KindString, schema.KindEnum},
		filter.TypeAutocomplete: {schema.KindString, schema.KindEnum},
		filter.TypeSelect:       {schema.KindString, schema.KindEnum, schema.KindInt},
		filter.TypeRadioGroup:   {schema.KindString, schema.KindEnum, schema.KindInt},
		filter.TypeMultiSelect:  {schema.KindString, schema.KindEnum, schema.KindInt, schema.KindSlice},
		filter.TypeBoolean:      {schema.KindBool},
		filter.TypeCheckbox:     {schema.KindBool},
		filter.TypeDateRange:    {schema.KindTime},
		filter.TypeNumberRange:  {schema.KindInt, schema.KindFloat},
	}

	kinds, checked := allowed[filterType]
	if !checked || f.Kind == schema.KindUnknown {
		return nil
	}
	for _, k := range kinds {
		if f.Kind == k {
			return nil
		}
	}
	return fmt.Errorf("filter type %q does not match field type %q", filterType, f.Kind)
}

// ByField returns the column with the given field path.
func ByField(cols []Column, field string) (Column, bool) {
	for _, c := range cols {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

// Searchable returns the field paths of all search-eligible columns.
func Searchable(cols []Column) []string {
	var fields []string
	for _, c := range cols {
		if c.Searchable && c.Field != "" {
			fields = append(fields, c.Field)
		}
	}
	return fields
}
