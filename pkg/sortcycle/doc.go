// Package sortcycle implements the sort-direction state machine behind
// column header clicks in a data grid.
//
// Each sortable column declares a Cycle: an ordered list of directions the
// column steps through on successive clicks. The default cycle is
// [None, Asc, Desc] - the familiar "unsorted, ascending, descending" toggle.
// A cycle without the None sentinel never removes the column from the sort
// list; it loops among real directions forever.
//
// Basic usage:
//
//	sorts := []sortcycle.Entry{}
//	sorts = sortcycle.Advance(sorts, "title", sortcycle.Default, sortcycle.Additive)
//	// sorts = [{title asc}]
//	sorts = sortcycle.Advance(sorts, "title", sortcycle.Default, sortcycle.Additive)
//	// sorts = [{title desc}]
//	sorts = sortcycle.Advance(sorts, "title", sortcycle.Default, sortcycle.Additive)
//	// sorts = [] (cycled back to None, column removed)
//
// # Modes
//
// Additive mode appends newly sorted columns to the end of the list,
// preserving existing sorts - multi-column sorting. Exclusive mode replaces
// the whole list when a different column is clicked - single-column sorting.
// Advancing the already-sorted column behaves identically in both modes.
//
// # Nulls handling
//
// Beyond Asc and Desc, four directions pin NULL rows to either end of the
// result: AscNullsFirst, AscNullsLast, DescNullsFirst, DescNullsLast. They
// participate in cycles like any other direction.
package sortcycle
