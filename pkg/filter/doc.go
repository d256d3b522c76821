// Package filter defines the filter value model and the open-ended registry
// of filter types used by data grids.
//
// A filter type is a named bundle of four pure functions: a render hint for
// the view layer, a parser from raw form/URL strings, a validator against
// column constraints, and a predicate builder that applies the value to a
// GORM query. Built-in types cover the common UI controls (text, select,
// multiselect, boolean, daterange, numberrange, checkbox, autocomplete,
// radiogroup); applications register custom types at startup:
//
//	reg := filter.Default()
//	err := reg.Register("slider", filter.TypeDef{
//	    RenderHint: func(filter.Constraints) string { return "slider" },
//	    Parse:      parseSlider,
//	    Validate:   validateSlider,
//	    Predicate:  sliderPredicate,
//	})
//
// Registration is explicit - no init() side effects, no reflection. An
// unknown type name is a configuration error surfaced when the grid is
// constructed, never at event time.
//
// # Values
//
// Value is a tagged union keyed by the filter type: scalar filters use Raw,
// set filters use Values, range filters use Min/Max. A zero Value means "no
// filter" and is dropped during state reconciliation. Parsers return zero
// Values for empty input and errors for malformed input; the caller logs and
// drops malformed values without failing the rest of the state (runtime
// input errors are non-fatal by design).
package filter
