package internal_test

import (
	"bytes"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/dmitrymomot/datagrid/internal"
	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/pagination"
	"github.com/dmitrymomot/datagrid/pkg/schema"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
)

func testIntrospector() schema.MapIntrospector {
	return schema.MapIntrospector{
		TableName: "articles",
		Fields: map[string]schema.Field{
			"title":       {Kind: schema.KindString},
			"status":      {Kind: schema.KindEnum, EnumValues: []string{"draft", "published"}},
			"created_at":  {Kind: schema.KindTime},
			"rating":      {Kind: schema.KindFloat},
			"author.name": {Kind: schema.KindString},
		},
		Relations: map[string]schema.Relation{
			"author": {Name: "author", Table: "authors", ForeignColumn: "id", ParentColumn: "author_id"},
		},
	}
}

func newGrid(t *testing.T, opts ...internal.Option) *internal.Grid {
	t.Helper()

	base := []internal.Option{
		internal.WithSchema(testIntrospector()),
		internal.WithColumns(
			column.Definition{Field: "title", Filterable: true, Sortable: true, Searchable: true},
			column.Definition{Field: "status", Filterable: true},
			column.Definition{Field: "created_at", Filterable: true, Sortable: true},
		),
	}
	g, err := internal.New(append(base, opts...)...)
	require.NoError(t, err)
	return g
}

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db.Table("articles")
}

func buildSQL(t *testing.T, db *gorm.DB) (string, []any) {
	t.Helper()
	tx := db.Find(&[]map[string]any{})
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("no columns", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New()
		assert.ErrorIs(t, err, internal.ErrNoColumns)
	})

	t.Run("capability without field path", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(internal.WithColumns(
			column.Definition{Label: "Broken", Sortable: true},
		))
		assert.Error(t, err)
	})

	t.Run("unknown filter type", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(internal.WithColumns(
			column.Definition{Field: "title", FilterType: "slider", Filterable: true},
		))
		assert.Error(t, err)
	})

	t.Run("default sort must be sortable", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(
			internal.WithColumns(column.Definition{Field: "title", Filterable: true}),
			internal.WithDefaultSort(sortcycle.Entry{Field: "title", Direction: sortcycle.Asc}),
		)
		assert.ErrorIs(t, err, internal.ErrUnknownSortField)
	})

	t.Run("search fields must be searchable", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(
			internal.WithColumns(column.Definition{Field: "title", Sortable: true}),
			internal.WithSearchFields("title"),
		)
		assert.ErrorIs(t, err, internal.ErrUnknownSearchField)
	})

	t.Run("default page size outside allowed set", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(
			internal.WithColumns(column.Definition{Field: "title"}),
			internal.WithPageSizes(10, 20),
			internal.WithDefaultPageSize(15),
		)
		assert.ErrorIs(t, err, internal.ErrInvalidPageSize)
	})

	t.Run("enum column auto-detects select with choices", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t)
		col, ok := column.ByField(g.Columns(), "status")
		require.True(t, ok)
		assert.Equal(t, "select", col.FilterType)
		assert.Equal(t, []string{"draft", "published"}, col.Constraints.Choices)
	})

	t.Run("pristine state", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t)
		s := g.State()
		assert.Equal(t, 1, s.Page)
		assert.Equal(t, pagination.DefaultPageSize, s.PageSize)
		assert.Empty(t, s.Filters)
		assert.Empty(t, s.Sort)
	})
}

func TestParams(t *testing.T) {
	t.Parallel()

	t.Run("pristine grid encodes empty", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t, internal.WithDefaultSort(
			sortcycle.Entry{Field: "created_at", Direction: sortcycle.Desc},
		))
		assert.Empty(t, g.Params())
	})

	t.Run("state survives a url round trip", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t)
		g.ApplyFilters(map[string][]string{"title": {"go"}, "status": {"draft"}})
		g.ToggleSort("created_at")
		g.Search("needle")
		g.GoToPage(3)
		want := g.State()

		other := newGrid(t)
		other.LoadParams(g.Params())
		assert.Equal(t, want, other.State())
	})

	t.Run("load params drops malformed values with warnings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		g := newGrid(t, internal.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
		g.LoadParams(url.Values{
			"page":       {"banana"},
			"sort":       {"-rating"},
			"rating_min": {"cheap"},
			"q":          {"go"},
		})

		s := g.State()
		assert.Equal(t, 1, s.Page)
		assert.Empty(t, s.Sort)
		assert.Equal(t, "go", s.Search)
		assert.Contains(t, buf.String(), "dropped grid parameter")
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	t.Run("filters sort and pagination compose", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t)
		g.ApplyFilters(map[string][]string{"title": {"go"}})
		g.ToggleSort("created_at")
		g.GoToPage(2)

		sql, vars := buildSQL(t, g.Scope(dryRun(t)))
		assert.Contains(t, sql, "LOWER(title) LIKE")
		assert.Contains(t, sql, "ORDER BY created_at ASC")
		assert.Contains(t, vars, 25)
	})

	t.Run("default sort applies when user has not sorted", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t, internal.WithDefaultSort(
			sortcycle.Entry{Field: "created_at", Direction: sortcycle.Desc},
		))
		sql, _ := buildSQL(t, g.Scope(dryRun(t)))
		assert.Contains(t, sql, "ORDER BY created_at DESC")
	})

	t.Run("user sort replaces the default", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t, internal.WithDefaultSort(
			sortcycle.Entry{Field: "created_at", Direction: sortcycle.Desc},
		))
		g.ToggleSort("title")
		sql, _ := buildSQL(t, g.Scope(dryRun(t)))
		assert.Contains(t, sql, "ORDER BY title ASC")
		assert.NotContains(t, sql, "created_at DESC")
	})

	t.Run("search expands over searchable columns", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t)
		g.Search("needle")
		sql, vars := buildSQL(t, g.Scope(dryRun(t)))
		assert.Contains(t, sql, "LOWER(title) LIKE LOWER(?)")
		assert.Contains(t, vars, "%needle%")
	})

	t.Run("relationship filter correlates against the configured table", func(t *testing.T) {
		t.Parallel()
		g, err := internal.New(
			internal.WithSchema(testIntrospector()),
			internal.WithColumns(
				column.Definition{Field: "author.name", Filterable: true},
			),
		)
		require.NoError(t, err)
		g.ApplyFilters(map[string][]string{"author.name": {"jane"}})

		sql, _ := buildSQL(t, g.Scope(dryRun(t)))
		assert.Contains(t, sql, "EXISTS")
		assert.Contains(t, sql, "authors.id = articles.author_id")
	})

	t.Run("filter scope omits sort and pagination", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t, internal.WithDefaultSort(
			sortcycle.Entry{Field: "created_at", Direction: sortcycle.Desc},
		))
		g.ApplyFilters(map[string][]string{"title": {"go"}})

		sql, _ := buildSQL(t, g.FilterScope(dryRun(t)))
		assert.Contains(t, sql, "LOWER(title) LIKE")
		assert.NotContains(t, sql, "ORDER BY")
		assert.NotContains(t, sql, "LIMIT")
	})

	t.Run("keyset grid paginates by cursor", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t,
			internal.WithKeysetPagination(),
			internal.WithDefaultSort(sortcycle.Entry{Field: "created_at", Direction: sortcycle.Desc}),
		)
		token, err := pagination.EncodeCursor(pagination.Cursor{
			Keys: map[string]any{"created_at": "2024-01-01"},
		})
		require.NoError(t, err)
		g.GoToCursor(token)

		sql, vars := buildSQL(t, g.Scope(dryRun(t)))
		assert.Contains(t, sql, "created_at < ?")
		assert.Contains(t, vars, 26)
	})
}

func TestLoadToken(t *testing.T) {
	t.Parallel()

	t.Run("mutations invalidate outstanding loads", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t)

		token := g.LoadToken()
		assert.True(t, g.AcceptLoad(token))

		g.Search("needle")
		assert.False(t, g.AcceptLoad(token), "load started before the mutation is stale")
		assert.True(t, g.AcceptLoad(g.LoadToken()))
	})

	t.Run("every event refreshes the token", func(t *testing.T) {
		t.Parallel()
		g := newGrid(t)

		events := []func(){
			func() { g.ApplyFilters(map[string][]string{"title": {"go"}}) },
			func() { g.ToggleSort("title") },
			func() { g.GoToPage(2) },
			func() { g.ChangePageSize(50) },
			func() { g.Search("x") },
			func() { g.ClearAllFilters() },
		}
		for _, fire := range events {
			before := g.LoadToken()
			fire()
			assert.NotEqual(t, before, g.LoadToken())
		}
	})
}
