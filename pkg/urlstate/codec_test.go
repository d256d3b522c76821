package urlstate_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/filter"
	"github.com/dmitrymomot/datagrid/pkg/pagination"
	"github.com/dmitrymomot/datagrid/pkg/sortcycle"
	"github.com/dmitrymomot/datagrid/pkg/urlstate"
)

func testColumns(t *testing.T) []column.Column {
	t.Helper()

	cols, err := column.Normalize([]column.Definition{
		{Field: "name", Filterable: true, Sortable: true, Searchable: true},
		{Field: "status", Filterable: true, FilterType: filter.TypeSelect,
			Constraints: filter.Constraints{Choices: []string{"draft", "published"}}},
		{Field: "tags", Filterable: true, FilterType: filter.TypeMultiSelect},
		{Field: "price", Filterable: true, FilterType: filter.TypeNumberRange},
		{Field: "created_at", Sortable: true},
		{Field: "title", Sortable: true},
	}, nil, nil, filter.Default(), nil)
	require.NoError(t, err)
	return cols
}

func testConfig() urlstate.Config {
	return urlstate.Config{
		Registry:   filter.Default(),
		Pagination: pagination.Config{Default: 25, Allowed: []int{10, 25, 50}},
	}
}

func TestEncodeSort(t *testing.T) {
	t.Parallel()

	s := urlstate.State{
		Sort: []sortcycle.Entry{
			{Field: "created_at", Direction: sortcycle.DescNullsLast},
			{Field: "title", Direction: sortcycle.Asc},
		},
	}

	values := urlstate.Encode(s, testConfig())
	assert.Equal(t, "--created_at,title", values.Get(urlstate.KeySort))
}

func TestEncodeSortPrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir  sortcycle.Direction
		want string
	}{
		{dir: sortcycle.Asc, want: "f"},
		{dir: sortcycle.Desc, want: "-f"},
		{dir: sortcycle.AscNullsFirst, want: "++f"},
		{dir: sortcycle.AscNullsLast, want: "+-f"},
		{dir: sortcycle.DescNullsFirst, want: "-+f"},
		{dir: sortcycle.DescNullsLast, want: "--f"},
	}

	for _, tt := range tests {
		s := urlstate.State{Sort: []sortcycle.Entry{{Field: "f", Direction: tt.dir}}}
		assert.Equal(t, tt.want, urlstate.Encode(s, testConfig()).Get(urlstate.KeySort))
	}
}

func TestEncodeDropsUnknownDirection(t *testing.T) {
	t.Parallel()

	s := urlstate.State{Sort: []sortcycle.Entry{
		{Field: "a", Direction: sortcycle.Direction("sideways")},
		{Field: "b", Direction: sortcycle.Desc},
	}}

	assert.Equal(t, "-b", urlstate.Encode(s, testConfig()).Get(urlstate.KeySort))
}

func TestEncodePageSizeExclusion(t *testing.T) {
	t.Parallel()

	s := urlstate.State{Page: 1, PageSize: 25}
	values := urlstate.Encode(s, testConfig())
	assert.False(t, values.Has(urlstate.KeyPageSize), "default page size is omitted")
	assert.False(t, values.Has(urlstate.KeyPage), "page 1 is omitted")

	s.PageSize = 50
	s.Page = 3
	values = urlstate.Encode(s, testConfig())
	assert.Equal(t, "50", values.Get(urlstate.KeyPageSize))
	assert.Equal(t, "3", values.Get(urlstate.KeyPage))
}

func TestEncodeFilterShapes(t *testing.T) {
	t.Parallel()

	s := urlstate.State{
		Filters: map[string]filter.Value{
			"name":  {Type: filter.TypeText, Raw: "john", Operator: filter.OpContains},
			"price": {Type: filter.TypeNumberRange, Min: "10", Max: "90", Operator: filter.OpBetween},
			"tags":  {Type: filter.TypeMultiSelect, Values: []string{"go", "web"}, Operator: filter.OpIn},
		},
		Search: "report",
	}

	values := urlstate.Encode(s, testConfig())
	assert.Equal(t, "john", values.Get("name"))
	assert.Equal(t, "10", values.Get("price_min"))
	assert.Equal(t, "90", values.Get("price_max"))
	assert.Equal(t, []string{"go", "web"}, values["tags[]"])
	assert.Equal(t, "report", values.Get(urlstate.KeySearch))
}

func TestDecodeBasicFilter(t *testing.T) {
	t.Parallel()

	values := url.Values{"name": {"john"}}
	s, problems := urlstate.Decode(values, testColumns(t), testConfig())

	assert.Empty(t, problems)
	require.Contains(t, s.Filters, "name")
	v := s.Filters["name"]
	assert.Equal(t, filter.TypeText, v.Type)
	assert.Equal(t, "john", v.Raw)
	assert.Equal(t, filter.OpContains, v.Operator)
}

func TestDecodeTolerance(t *testing.T) {
	t.Parallel()

	t.Run("malformed page falls back to one", func(t *testing.T) {
		t.Parallel()

		s, problems := urlstate.Decode(url.Values{"page": {"banana"}}, testColumns(t), testConfig())
		assert.Equal(t, 1, s.Page)
		require.Len(t, problems, 1)
		assert.Equal(t, "page", problems[0].Key)
	})

	t.Run("negative page falls back to one", func(t *testing.T) {
		t.Parallel()

		s, problems := urlstate.Decode(url.Values{"page": {"-2"}}, testColumns(t), testConfig())
		assert.Equal(t, 1, s.Page)
		assert.Len(t, problems, 1)
	})

	t.Run("disallowed page size falls back to default", func(t *testing.T) {
		t.Parallel()

		s, problems := urlstate.Decode(url.Values{"page_size": {"9999"}}, testColumns(t), testConfig())
		assert.Equal(t, 25, s.PageSize)
		assert.Len(t, problems, 1)
	})

	t.Run("unsortable field dropped, rest kept", func(t *testing.T) {
		t.Parallel()

		s, problems := urlstate.Decode(url.Values{"sort": {"-secret,title"}}, testColumns(t), testConfig())
		assert.Equal(t, []sortcycle.Entry{{Field: "title", Direction: sortcycle.Asc}}, s.Sort)
		assert.Len(t, problems, 1)
	})

	t.Run("unparseable filter dropped, rest kept", func(t *testing.T) {
		t.Parallel()

		values := url.Values{"price_min": {"ten"}, "name": {"john"}}
		s, problems := urlstate.Decode(values, testColumns(t), testConfig())
		assert.NotContains(t, s.Filters, "price")
		assert.Contains(t, s.Filters, "name")
		assert.Len(t, problems, 1)
	})

	t.Run("disallowed choice dropped", func(t *testing.T) {
		t.Parallel()

		s, problems := urlstate.Decode(url.Values{"status": {"archived"}}, testColumns(t), testConfig())
		assert.NotContains(t, s.Filters, "status")
		assert.Len(t, problems, 1)
	})

	t.Run("malformed cursor dropped", func(t *testing.T) {
		t.Parallel()

		s, problems := urlstate.Decode(url.Values{"cursor": {"!!!"}}, testColumns(t), testConfig())
		assert.Empty(t, s.Cursor)
		assert.Len(t, problems, 1)
	})

	t.Run("empty input decodes to pristine state", func(t *testing.T) {
		t.Parallel()

		s, problems := urlstate.Decode(url.Values{}, testColumns(t), testConfig())
		assert.Empty(t, problems)
		assert.Equal(t, 1, s.Page)
		assert.Equal(t, 25, s.PageSize)
		assert.Empty(t, s.Filters)
		assert.Empty(t, s.Sort)
		assert.Empty(t, s.Search)
	})
}

func TestDecodeSortDirections(t *testing.T) {
	t.Parallel()

	values := url.Values{"sort": {"++name,+-title,-+created_at,--created_at,-name,title"}}
	s, problems := urlstate.Decode(values, testColumns(t), testConfig())

	assert.Empty(t, problems)
	assert.Equal(t, []sortcycle.Entry{
		{Field: "name", Direction: sortcycle.AscNullsFirst},
		{Field: "title", Direction: sortcycle.AscNullsLast},
		{Field: "created_at", Direction: sortcycle.DescNullsFirst},
		{Field: "created_at", Direction: sortcycle.DescNullsLast},
		{Field: "name", Direction: sortcycle.Desc},
		{Field: "title", Direction: sortcycle.Asc},
	}, s.Sort)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	cols := testColumns(t)
	cfg := testConfig()

	states := []urlstate.State{
		{
			Filters:  map[string]filter.Value{},
			Page:     1,
			PageSize: 25,
		},
		{
			Filters: map[string]filter.Value{
				"name": {Type: filter.TypeText, Raw: "john", Operator: filter.OpContains, Fold: true},
			},
			Sort:     []sortcycle.Entry{{Field: "name", Direction: sortcycle.Desc}},
			Page:     3,
			PageSize: 50,
			Search:   "report",
		},
		{
			Filters: map[string]filter.Value{
				"price":  {Type: filter.TypeNumberRange, Min: "10", Max: "90", Operator: filter.OpBetween},
				"tags":   {Type: filter.TypeMultiSelect, Values: []string{"go", "web"}, Operator: filter.OpIn},
				"status": {Type: filter.TypeSelect, Raw: "published", Operator: filter.OpEquals},
			},
			Sort: []sortcycle.Entry{
				{Field: "created_at", Direction: sortcycle.DescNullsLast},
				{Field: "title", Direction: sortcycle.Asc},
			},
			Page:     1,
			PageSize: 25,
		},
	}

	for _, s := range states {
		decoded, problems := urlstate.Decode(urlstate.Encode(s, cfg), cols, cfg)
		assert.Empty(t, problems)
		assert.Equal(t, s, decoded)
	}
}
