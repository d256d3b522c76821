package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datagrid/pkg/htmx"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	t.Run("returns true when HX-Request header is true", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/grid", nil)
		req.Header.Set("HX-Request", "true")

		assert.True(t, htmx.IsHTMX(req))
	})

	t.Run("returns false when HX-Request header is missing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/grid", nil)

		assert.False(t, htmx.IsHTMX(req))
	})

	t.Run("handles case sensitivity", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/grid", nil)
		req.Header.Set("HX-Request", "True")

		assert.False(t, htmx.IsHTMX(req), "should be case-sensitive")
	})
}

func TestCurrentURL(t *testing.T) {
	t.Parallel()

	t.Run("parses the reported address", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/grid/rows", nil)
		req.Header.Set("HX-Current-URL", "https://example.com/admin/articles?sort=-created_at&page=2")

		u := htmx.CurrentURL(req)
		require.NotNil(t, u)
		assert.Equal(t, "/admin/articles", u.Path)
		assert.Equal(t, "-created_at", u.Query().Get("sort"))
	})

	t.Run("nil when header is absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/grid/rows", nil)
		assert.Nil(t, htmx.CurrentURL(req))
	})

	t.Run("nil on unparseable header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/grid/rows", nil)
		req.Header.Set("HX-Current-URL", "://nope")
		assert.Nil(t, htmx.CurrentURL(req))
	})
}

func TestStateFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("htmx request prefers current url", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/grid/rows?fragment=1", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Current-URL", "https://example.com/admin/articles?sort=title&q=go")

		values := htmx.StateFromRequest(req)
		assert.Equal(t, "title", values.Get("sort"))
		assert.Equal(t, "go", values.Get("q"))
		assert.Empty(t, values.Get("fragment"))
	})

	t.Run("plain request reads its own url", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/admin/articles?page=3", nil)

		assert.Equal(t, "3", htmx.StateFromRequest(req).Get("page"))
	})

	t.Run("htmx request without current url falls back", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/grid/rows?page=2", nil)
		req.Header.Set("HX-Request", "true")

		assert.Equal(t, "2", htmx.StateFromRequest(req).Get("page"))
	})
}

func TestPushState(t *testing.T) {
	t.Parallel()

	t.Run("writes path with encoded state", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.PushState(w, "/admin/articles", url.Values{"sort": {"-created_at"}})

		assert.Equal(t, "/admin/articles?sort=-created_at", w.Header().Get("HX-Push-Url"))
	})

	t.Run("empty state strips the query string", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.PushState(w, "/admin/articles", url.Values{})

		assert.Equal(t, "/admin/articles", w.Header().Get("HX-Push-Url"))
	})

	t.Run("replace variant uses its own header", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.ReplaceState(w, "/admin/articles", url.Values{"q": {"go"}})

		assert.Equal(t, "/admin/articles?q=go", w.Header().Get("HX-Replace-Url"))
		assert.Empty(t, w.Header().Get("HX-Push-Url"))
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("htmx client gets header with 200", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/grid/rows/1", nil)
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()

		htmx.Redirect(w, req, "/admin/articles")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/admin/articles", w.Header().Get("HX-Redirect"))
	})

	t.Run("plain client gets http redirect", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/grid/rows/1", nil)
		w := httptest.NewRecorder()

		htmx.Redirect(w, req, "/admin/articles")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/articles", w.Header().Get("Location"))
	})
}

func TestTrigger(t *testing.T) {
	t.Parallel()

	t.Run("joins multiple events", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.Trigger(w, "grid:refreshed", "toast:show")

		assert.Equal(t, "grid:refreshed, toast:show", w.Header().Get("HX-Trigger"))
	})

	t.Run("appends to existing events", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.Trigger(w, "grid:refreshed")
		htmx.Trigger(w, "toast:show")

		assert.Equal(t, "grid:refreshed, toast:show", w.Header().Get("HX-Trigger"))
	})

	t.Run("no events writes nothing", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		htmx.Trigger(w)

		assert.Empty(t, w.Header().Get("HX-Trigger"))
	})
}
