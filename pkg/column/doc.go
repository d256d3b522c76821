// Package column normalizes declarative column and filter descriptors into
// the resolved configuration a grid operates on.
//
// A Definition is what the application declares: a field path, capability
// flags, and optional overrides. Normalize resolves everything the
// declaration left implicit - the filter type (auto-detected from the
// introspected field kind), the label (humanized from the field path), the
// sort cycle - and validates the configuration as a whole.
//
//	cols, err := column.Normalize(
//	    []column.Definition{
//	        {Field: "title", Filterable: true, Sortable: true, Searchable: true},
//	        {Field: "status", Filterable: true},
//	        {Field: "author.name", Label: "Author", Filterable: true},
//	    },
//	    nil, introspector, filter.Default(), logger,
//	)
//
// Configuration errors - a filter or sort capability without a field path,
// an unknown filter type, the same field declared both as a filterable
// column and a standalone filter, a filter type that contradicts the
// field's storage type - are fatal and reported immediately. A field path
// that merely fails to resolve against the schema is a logged warning:
// relationship and aggregate paths can be valid at the data layer even when
// static introspection cannot see them, so normalization continues with
// best-effort defaults.
//
// Field paths use dots for relationships (author.name) and double
// underscores for embedded resources (profile__bio). Labels humanize both:
// "created_at" becomes "Created At", "author.name" becomes "Author > Name".
package column
