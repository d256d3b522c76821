package sortcycle

// Direction is a sort direction symbol.
type Direction string

const (
	// None is the "not sorted" sentinel. A cycle containing None removes
	// the column from the sort list when it advances onto it.
	None Direction = ""

	Asc            Direction = "asc"
	Desc           Direction = "desc"
	AscNullsFirst  Direction = "asc_nulls_first"
	AscNullsLast   Direction = "asc_nulls_last"
	DescNullsFirst Direction = "desc_nulls_first"
	DescNullsLast  Direction = "desc_nulls_last"
)

// Valid reports whether d is a known direction symbol (None included).
func (d Direction) Valid() bool {
	switch d {
	case None, Asc, Desc, AscNullsFirst, AscNullsLast, DescNullsFirst, DescNullsLast:
		return true
	}
	return false
}

// Descending reports whether d orders high-to-low.
func (d Direction) Descending() bool {
	switch d {
	case Desc, DescNullsFirst, DescNullsLast:
		return true
	}
	return false
}

// Mode controls what happens to other sorted columns when a column advances.
type Mode string

const (
	// Additive appends newly sorted columns, keeping existing sorts.
	Additive Mode = "additive"
	// Exclusive replaces the entire sort list when a different column
	// is advanced.
	Exclusive Mode = "exclusive"
)

// Cycle is the ordered list of directions a column steps through.
type Cycle []Direction

// Default is the three-state cycle used when a column declares none.
var Default = Cycle{None, Asc, Desc}

// fallback is used when a declared cycle is unusable (empty or all-None).
var fallback = Cycle{Asc, Desc}

// Entry is one (field, direction) pair in an ordered sort list.
type Entry struct {
	Field     string
	Direction Direction
}

// usable returns c, or the fallback toggle when c has no real direction.
func (c Cycle) usable() Cycle {
	for _, d := range c {
		if d != None {
			return c
		}
	}
	return fallback
}

// first returns the first non-None direction in the cycle.
func (c Cycle) first() Direction {
	for _, d := range c {
		if d != None {
			return d
		}
	}
	return Asc // unreachable after usable()
}

// index returns the position of d in the cycle, or -1.
func (c Cycle) index(d Direction) int {
	for i, cd := range c {
		if cd == d {
			return i
		}
	}
	return -1
}

// Advance applies one click on field to the sort list and returns the new
// list. The input slice is never mutated.
//
// If field is absent it is added with the cycle's first real direction: in
// Additive mode appended after existing sorts, in Exclusive mode as the only
// entry. If present, its direction steps to the next cycle position, wrapping
// to the start; landing on None removes the field. In Exclusive mode,
// advancing a field drops every other field first, so re-clicking the sorted
// column cycles it while clicking another column steals the sort.
//
// A cycle that is empty or contains only None falls back to the two-state
// [Asc, Desc] toggle.
func Advance(sorts []Entry, field string, cycle Cycle, mode Mode) []Entry {
	cycle = cycle.usable()

	cur := -1
	for i, e := range sorts {
		if e.Field == field {
			cur = i
			break
		}
	}

	if cur < 0 {
		entry := Entry{Field: field, Direction: cycle.first()}
		if mode == Exclusive {
			return []Entry{entry}
		}
		out := make([]Entry, 0, len(sorts)+1)
		out = append(out, sorts...)
		return append(out, entry)
	}

	next := cycle.index(sorts[cur].Direction) + 1 // -1+1 = 0 for unknown directions
	next %= len(cycle)

	if mode == Exclusive {
		// Same-field advance in exclusive mode keeps only this field.
		if cycle[next] == None {
			return []Entry{}
		}
		return []Entry{{Field: field, Direction: cycle[next]}}
	}

	out := make([]Entry, 0, len(sorts))
	for i, e := range sorts {
		if i != cur {
			out = append(out, e)
			continue
		}
		if cycle[next] != None {
			out = append(out, Entry{Field: field, Direction: cycle[next]})
		}
	}
	return out
}

// DirectionOf returns the current direction of field in the sort list,
// or (None, false) when the field is not sorted.
func DirectionOf(sorts []Entry, field string) (Direction, bool) {
	for _, e := range sorts {
		if e.Field == field {
			return e.Direction, true
		}
	}
	return None, false
}
