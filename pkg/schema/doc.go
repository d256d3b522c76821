// Package schema provides the data-schema introspection seam used to
// auto-detect filter types and verify declared field paths.
//
// The Introspector interface answers one question: what kind of value lives
// at a field path. Two implementations ship with the package:
//
//   - ParseModel builds an Introspector from a GORM model struct, resolving
//     direct fields, one-level relationship paths (author.name) and embedded
//     paths (profile__bio).
//   - MapIntrospector is a plain map for tests and callers without a model.
//
// Introspection is best-effort by contract: a path the introspector cannot
// resolve is reported absent, and the column normalizer degrades to a text
// filter with a logged warning instead of failing. Relationship and
// aggregate paths may well be valid at the data layer even when static
// introspection cannot confirm them.
package schema
