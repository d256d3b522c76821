// Package pagination models the two pagination strategies a grid can use:
// page/offset and keyset cursors.
//
// Offset pagination is the familiar numbered-pages model: a 1-based page and
// a page size drawn from a configured allowed set. Out-of-range input clamps
// instead of erroring - pagination state always stays usable.
//
// Keyset pagination trades page numbers for opaque cursor tokens that encode
// the boundary row's sort-key values. Tokens are msgpack-serialized and
// base64url-encoded, so they survive a round trip through the address bar
// without escaping. A malformed token silently resets to the first page;
// cursors arrive from the URL and are untrusted input.
//
//	token, _ := pagination.EncodeCursor(pagination.Cursor{
//	    Keys: map[string]any{"created_at": lastRow.CreatedAt, "id": lastRow.ID},
//	})
//	cur, ok := pagination.DecodeCursor(token)
package pagination
