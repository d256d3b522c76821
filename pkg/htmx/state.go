package htmx

import (
	"net/http"
	"net/url"
)

// StateFromRequest returns the query parameters describing the current
// view. Fragment requests carry their state in the address bar, not in
// the fragment endpoint's URL, so HTMX requests read HX-Current-URL
// first and fall back to the request URL.
func StateFromRequest(r *http.Request) url.Values {
	if IsHTMX(r) {
		if u := CurrentURL(r); u != nil {
			return u.Query()
		}
	}
	return r.URL.Query()
}

// PushState writes the encoded grid state into browser history as a new
// entry. An empty state strips the query string so the base path stays
// clean.
func PushState(w http.ResponseWriter, path string, state url.Values) {
	w.Header().Set(HeaderHXPushURL, stateURL(path, state))
}

// ReplaceState is PushState without a history entry. Use it for events
// that fire on every keystroke.
func ReplaceState(w http.ResponseWriter, path string, state url.Values) {
	w.Header().Set(HeaderHXReplaceURL, stateURL(path, state))
}

func stateURL(path string, state url.Values) string {
	if len(state) == 0 {
		return path
	}
	return path + "?" + state.Encode()
}
