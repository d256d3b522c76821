package pagination

import (
	"encoding/base64"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Cursor is the decoded form of a keyset pagination token: the boundary
// row's value for each sort-key column, plus the paging direction.
type Cursor struct {
	// Keys maps sort-key column names to the boundary row's values,
	// in the order given by the grid's sort state.
	Keys map[string]any `msgpack:"k"`

	// Backward is true for "previous page" cursors.
	Backward bool `msgpack:"b,omitempty"`
}

// EncodeCursor serializes a cursor into an opaque URL-safe token.
func EncodeCursor(c Cursor) (string, error) {
	if len(c.Keys) == 0 {
		return "", fmt.Errorf("pagination: cursor has no keys")
	}
	packed, err := msgpack.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("pagination: encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// DecodeCursor parses a token back into a cursor. Tokens come from the URL
// and are untrusted: any malformed token reports ok=false and the caller
// falls back to the first page.
func DecodeCursor(token string) (Cursor, bool) {
	if token == "" {
		return Cursor{}, false
	}
	packed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, false
	}
	var c Cursor
	if err := msgpack.Unmarshal(packed, &c); err != nil {
		return Cursor{}, false
	}
	if len(c.Keys) == 0 {
		return Cursor{}, false
	}
	return c, true
}
