package htmx

import (
	"net/http"
	"net/url"
)

// Request headers set by the HTMX client.
const (
	HeaderHXRequest               = "HX-Request"
	HeaderHXBoosted               = "HX-Boosted"
	HeaderHXCurrentURL            = "HX-Current-URL"
	HeaderHXHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderHXPrompt                = "HX-Prompt"
	HeaderHXTarget                = "HX-Target"
	HeaderHXTrigger               = "HX-Trigger"
	HeaderHXTriggerName           = "HX-Trigger-Name"
)

// Response headers interpreted by the HTMX client.
const (
	HeaderHXLocation           = "HX-Location"
	HeaderHXPushURL            = "HX-Push-Url"
	HeaderHXRedirect           = "HX-Redirect"
	HeaderHXRefresh            = "HX-Refresh"
	HeaderHXReplaceURL         = "HX-Replace-Url"
	HeaderHXReswap             = "HX-Reswap"
	HeaderHXRetarget           = "HX-Retarget"
	HeaderHXReselect           = "HX-Reselect"
	HeaderHXTriggerResponse    = "HX-Trigger"
	HeaderHXTriggerAfterSwap   = "HX-Trigger-After-Swap"
	HeaderHXTriggerAfterSettle = "HX-Trigger-After-Settle"
)

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted returns true for hx-boost navigation requests, which expect
// a full page rather than a fragment.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// IsHistoryRestore reports whether the client is restoring a page from
// history and needs the complete document.
func IsHistoryRestore(r *http.Request) bool {
	return r.Header.Get(HeaderHXHistoryRestoreRequest) == "true"
}

// TargetID returns the id of the element that triggered the request, or
// an empty string for non-HTMX requests.
func TargetID(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}

// CurrentURL returns the browser's address bar URL as reported by the
// client, or nil when the header is absent or unparseable.
func CurrentURL(r *http.Request) *url.URL {
	raw := r.Header.Get(HeaderHXCurrentURL)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return u
}
