package filter

// Operator is the comparison applied by a filter predicate.
type Operator string

const (
	OpContains     Operator = "contains"
	OpEquals       Operator = "equals"
	OpNotEquals    Operator = "not_equals"
	OpStartsWith   Operator = "starts_with"
	OpEndsWith     Operator = "ends_with"
	OpIn           Operator = "in"
	OpGreaterEqual Operator = "greater_equal"
	OpLessEqual    Operator = "less_equal"
	OpBetween      Operator = "between"
	OpIsTrue       Operator = "is_true"
	OpIsFalse      Operator = "is_false"
)

// Value is a parsed filter value: a tagged union keyed by the filter type.
// Scalar filters carry Raw, set filters carry Values, range filters carry
// Min and/or Max. The zero Value means "no filter".
type Value struct {
	// Type is the filter type tag this value was parsed by.
	Type string

	// Raw is the scalar value for single-valued filters.
	Raw string

	// Values holds the selected set for multi-valued filters.
	Values []string

	// Min and Max bound range filters. Either may be empty.
	Min string
	Max string

	// Operator is the comparison the predicate applies.
	Operator Operator

	// Fold enables case-insensitive matching for text comparisons.
	Fold bool
}

// Zero reports whether v carries no filter payload at all.
// Zero values are dropped from grid state instead of being stored.
func (v Value) Zero() bool {
	return v.Raw == "" && len(v.Values) == 0 && v.Min == "" && v.Max == ""
}

// Input is the raw, untyped form/URL input for one field before parsing.
// Plain and repeated parameters land in Values; field_min/field_max
// parameters land in Min/Max.
type Input struct {
	Values []string
	Min    string
	Max    string
}

// First returns the first non-empty plain value, or "".
func (in Input) First() string {
	for _, v := range in.Values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Empty reports whether the input carries nothing to parse.
func (in Input) Empty() bool {
	return in.First() == "" && in.Min == "" && in.Max == ""
}

// Constraints are the type-specific options a column declares for its
// filter: allowed choices, range bounds, operator override, and case
// sensitivity. Parsers and validators consult them; the normalizer fills
// them in from the column definition and schema introspection.
type Constraints struct {
	// Choices restricts select-like filters to a fixed option set.
	Choices []string

	// MinValue and MaxValue bound range filters, interpreted per type
	// (numeric for numberrange, date for daterange).
	MinValue string
	MaxValue string

	// Operator overrides the type's default comparison.
	Operator Operator

	// CaseSensitive disables the default case folding of text matching.
	CaseSensitive bool
}

// allows reports whether choice is permitted by the constraint set.
// An empty Choices list permits everything.
func (c Constraints) allows(choice string) bool {
	if len(c.Choices) == 0 {
		return true
	}
	for _, opt := range c.Choices {
		if opt == choice {
			return true
		}
	}
	return false
}
