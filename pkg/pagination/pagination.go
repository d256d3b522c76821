package pagination

// DefaultPageSize is used when no page-size configuration is provided.
const DefaultPageSize = 25

// DefaultPageSizes is the default allowed page-size set.
var DefaultPageSizes = []int{10, 25, 50, 100}

// Config holds the page-size policy for one grid.
type Config struct {
	// Default is the page size used when none is selected.
	Default int

	// Allowed is the selectable page-size set. A size outside the set
	// clamps to Default.
	Allowed []int
}

// Normalize fills zero values with the package defaults.
func (c Config) Normalize() Config {
	if c.Default <= 0 {
		c.Default = DefaultPageSize
	}
	if len(c.Allowed) == 0 {
		c.Allowed = DefaultPageSizes
	}
	// The default is always selectable.
	if !contains(c.Allowed, c.Default) {
		c.Allowed = append([]int{c.Default}, c.Allowed...)
	}
	return c
}

// ClampSize returns size when allowed, the configured default otherwise.
func (c Config) ClampSize(size int) int {
	if contains(c.Allowed, size) {
		return size
	}
	return c.Default
}

func contains(set []int, n int) bool {
	for _, v := range set {
		if v == n {
			return true
		}
	}
	return false
}

// Offset is page/offset pagination state. Page is 1-based.
type Offset struct {
	Page     int
	PageSize int
}

// Clamp normalizes out-of-range state against the config.
func (o Offset) Clamp(c Config) Offset {
	if o.Page < 1 {
		o.Page = 1
	}
	o.PageSize = c.ClampSize(o.PageSize)
	return o
}

// SkipRows returns the number of rows before this page.
func (o Offset) SkipRows() int {
	if o.Page < 1 {
		return 0
	}
	return (o.Page - 1) * o.PageSize
}

// Info is the pagination metadata returned to the view layer after a load.
type Info struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NextPage returns the following page number, or the current page when
// there is none.
func (i Info) NextPage() int {
	if i.HasNext {
		return i.Page + 1
	}
	return i.Page
}

// PrevPage returns the preceding page number, or the current page when
// there is none.
func (i Info) PrevPage() int {
	if i.HasPrev {
		return i.Page - 1
	}
	return i.Page
}

// NewInfo derives display metadata from an offset state and a total count.
func NewInfo(o Offset, total int64) Info {
	pages := 0
	if o.PageSize > 0 {
		pages = int((total + int64(o.PageSize) - 1) / int64(o.PageSize))
	}
	return Info{
		Page:       o.Page,
		PageSize:   o.PageSize,
		Total:      total,
		TotalPages: pages,
		HasNext:    o.Page < pages,
		HasPrev:    o.Page > 1 && total > 0,
	}
}
