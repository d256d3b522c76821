// Package urlstate encodes grid state to and from URL query parameters.
//
// The encoding is deliberately compact and human-readable so that grid URLs
// are shareable and bookmarkable:
//
//	?q=report&status=published&price_min=10&price_max=90&tags[]=go&tags[]=web&sort=--created_at,title&page=2
//
// Sort order lives under a single "sort" key, one comma-separated token per
// (field, direction) pair. The direction is a sign prefix: bare for
// ascending, "-" for descending, and the two-character forms "++", "+-",
// "-+", "--" for the nulls-handling variants (ascending nulls first,
// ascending nulls last, descending nulls first, descending nulls last).
//
// Scalar filters encode as field=value, range filters as field_min/field_max,
// set filters as repeated field[] parameters. Default-valued state is
// dropped: page 1, the configured default page size, empty search and empty
// filters produce no parameters at all.
//
// Decoding is tolerant field-by-field. A malformed page number, an unknown
// sort field, an unparseable filter value - each is dropped individually and
// reported as a Problem for the caller to log, while the rest of the state
// decodes normally. URLs are user input; a hand-edited parameter must never
// take down the whole view.
//
// Encode and Decode are inverse modulo that normalization: for any state
// within declared constraints, Decode(Encode(s)) == s.
package urlstate
