package htmx

import (
	"net/http"
	"strings"
)

// SwapStrategy defines how HTMX swaps content into the target element.
type SwapStrategy string

const (
	SwapInnerHTML   SwapStrategy = "innerHTML"
	SwapOuterHTML   SwapStrategy = "outerHTML"
	SwapBeforeBegin SwapStrategy = "beforebegin"
	SwapAfterBegin  SwapStrategy = "afterbegin"
	SwapBeforeEnd   SwapStrategy = "beforeend"
	SwapAfterEnd    SwapStrategy = "afterend"
	SwapDelete      SwapStrategy = "delete"
	SwapNone        SwapStrategy = "none"
)

// Redirect navigates both HTMX and regular clients. HTMX requires a 200
// response; the actual redirect happens client-side via the header.
func Redirect(w http.ResponseWriter, r *http.Request, targetURL string) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, targetURL)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, targetURL, http.StatusFound)
}

// Refresh forces HTMX clients to reload the full page. Row mutations
// that invalidate more than the grid fragment use this.
func Refresh(w http.ResponseWriter) {
	w.Header().Set(HeaderHXRefresh, "true")
}

// Trigger emits client-side events when the response is received.
// Multiple events are comma-joined.
func Trigger(w http.ResponseWriter, events ...string) {
	if len(events) == 0 {
		return
	}
	appendHeader(w, HeaderHXTriggerResponse, events)
}

// TriggerAfterSwap emits client-side events after the swap completes.
func TriggerAfterSwap(w http.ResponseWriter, events ...string) {
	if len(events) == 0 {
		return
	}
	appendHeader(w, HeaderHXTriggerAfterSwap, events)
}

// Reswap overrides the swap strategy declared in markup.
func Reswap(w http.ResponseWriter, strategy SwapStrategy) {
	w.Header().Set(HeaderHXReswap, string(strategy))
}

// Retarget redirects the swap to a different element.
func Retarget(w http.ResponseWriter, selector string) {
	w.Header().Set(HeaderHXRetarget, selector)
}

func appendHeader(w http.ResponseWriter, key string, events []string) {
	joined := strings.Join(events, ", ")
	if existing := w.Header().Get(key); existing != "" {
		joined = existing + ", " + joined
	}
	w.Header().Set(key, joined)
}
