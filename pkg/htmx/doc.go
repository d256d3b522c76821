// Package htmx binds grid query state to the HTMX request/response protocol.
//
// Grid fragments are re-rendered on partial requests, so the canonical
// query state has to travel in both directions: the handler recovers the
// full query string even when only a fragment was requested, and writes
// the reconciled state back into browser history so reloads and shared
// links reproduce the exact view.
//
// # Request Detection
//
// Use IsHTMX to check whether a request originated from an HTMX element:
//
//	func gridHandler(w http.ResponseWriter, r *http.Request) {
//		if htmx.IsHTMX(r) {
//			// render the table fragment only
//		}
//	}
//
// # State Round-Trip
//
// StateFromRequest returns the query parameters that describe the view.
// For HTMX requests it prefers the HX-Current-URL header, which carries
// the browser's address bar rather than the fragment endpoint:
//
//	values := htmx.StateFromRequest(r)
//	state, problems := grid.Decode(values)
//
// After reconciling an event, push the encoded state back so the URL
// stays shareable:
//
//	htmx.PushState(w, "/admin/articles", grid.Encode(state))
//
// ReplaceState does the same without creating a history entry, which
// suits high-frequency events such as search-as-you-type.
//
// # Response Helpers
//
// Redirect degrades transparently: HTMX clients get an HX-Redirect
// header with a 200 status, everyone else a standard HTTP redirect.
// Trigger emits client-side events (for toasts or dependent fragments),
// and Reswap/Retarget override the swap behavior declared in markup.
package htmx
