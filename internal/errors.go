package internal

import "errors"

// Configuration errors returned by New. All of them are fatal at
// construction; a grid that constructs successfully never returns them
// again.
var (
	// ErrNoColumns is returned when a grid is built without any column
	// or filter declarations.
	ErrNoColumns = errors.New("datagrid: no columns configured")

	// ErrUnknownSortField is returned when a default sort references a
	// field that is not a sortable column.
	ErrUnknownSortField = errors.New("datagrid: default sort references an unsortable field")

	// ErrUnknownSearchField is returned when a configured search field
	// is not a searchable column.
	ErrUnknownSearchField = errors.New("datagrid: search field is not searchable")

	// ErrInvalidPageSize is returned when the default page size is not
	// in the allowed set.
	ErrInvalidPageSize = errors.New("datagrid: default page size not in the allowed set")
)
