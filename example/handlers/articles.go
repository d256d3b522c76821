package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/dmitrymomot/datagrid"
	"github.com/dmitrymomot/datagrid/pkg/column"
	"github.com/dmitrymomot/datagrid/pkg/htmx"
	"github.com/dmitrymomot/datagrid/pkg/pagination"
)

// ArticleStatus is a fixed-vocabulary field; the grid picks it up as a
// select filter.
type ArticleStatus string

func (ArticleStatus) EnumValues() []string {
	return []string{"draft", "published", "archived"}
}

type Author struct {
	ID   uint
	Name string
}

type Article struct {
	ID        uint
	Title     string
	Status    ArticleStatus
	Rating    float64
	AuthorID  uint
	Author    Author
	CreatedAt time.Time
}

// Articles serves the article list with filtering, sorting, search and
// pagination.
type Articles struct {
	db   *gorm.DB
	grid *datagrid.Grid
	tmpl *template.Template
}

func NewArticles(db *gorm.DB, log *slog.Logger) (*Articles, error) {
	grid, err := datagrid.New(
		datagrid.WithModel(&Article{}),
		datagrid.WithCustomLogger(log),
		datagrid.WithColumns(
			datagrid.Column{Field: "title", Filterable: true, Sortable: true, Searchable: true},
			datagrid.Column{Field: "status", Filterable: true},
			datagrid.Column{Field: "rating", Filterable: true, Sortable: true},
			datagrid.Column{Field: "author.name", Filterable: true},
			datagrid.Column{Field: "created_at", Sortable: true},
		),
		datagrid.WithDefaultSort(datagrid.SortEntry{Field: "created_at", Direction: datagrid.Desc}),
		datagrid.WithPageSizes(10, 25, 50),
		datagrid.WithDefaultPageSize(25),
	)
	if err != nil {
		return nil, err
	}

	return &Articles{
		db:   db,
		grid: grid,
		tmpl: template.Must(template.New("articles").Parse(articlesTemplate)),
	}, nil
}

func (h *Articles) Routes(r chi.Router) {
	r.Get("/articles", h.list)
	r.Post("/articles/filters", h.applyFilters)
	r.Post("/articles/sort/{field}", h.toggleSort)
	r.Post("/articles/search", h.search)
}

// list renders the grid from the URL state. HTMX requests get the table
// fragment only; the state travels in HX-Current-URL.
func (h *Articles) list(w http.ResponseWriter, r *http.Request) {
	h.grid.LoadParams(htmx.StateFromRequest(r))
	h.render(w, r)
}

func (h *Articles) applyFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	h.grid.ApplyFilters(r.PostForm)
	h.render(w, r)
}

func (h *Articles) toggleSort(w http.ResponseWriter, r *http.Request) {
	h.grid.ToggleSort(chi.URLParam(r, "field"))
	h.render(w, r)
}

func (h *Articles) search(w http.ResponseWriter, r *http.Request) {
	h.grid.Search(r.FormValue("q"))
	h.render(w, r)
}

type listPage struct {
	Columns  []column.Column
	Rows     []Article
	Info     pagination.Info
	Selected []string
	Query    template.URL
}

func (h *Articles) render(w http.ResponseWriter, r *http.Request) {
	var rows []Article
	if err := h.grid.Scope(h.db.Model(&Article{})).Find(&rows).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var total int64
	if err := h.grid.FilterScope(h.db.Model(&Article{})).Count(&total).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	params := h.grid.Params()
	if htmx.IsHTMX(r) {
		htmx.PushState(w, "/articles", params)
	}

	page := listPage{
		Columns:  h.grid.Columns(),
		Rows:     rows,
		Info:     h.grid.PageInfo(total),
		Selected: h.grid.Selected(),
		Query:    template.URL(params.Encode()),
	}
	if err := h.tmpl.Execute(w, page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

const articlesTemplate = `<div id="articles-grid">
  <form hx-post="/articles/search" hx-target="#articles-grid" hx-swap="outerHTML">
    <input type="search" name="q" placeholder="Search articles">
  </form>
  <table>
    <thead>
      <tr>
        {{range .Columns}}{{if not .FilterOnly}}
        <th>
          {{if .Sortable}}
          <a href="#" hx-post="/articles/sort/{{.Field}}" hx-target="#articles-grid" hx-swap="outerHTML">{{.Label}}</a>
          {{else}}{{.Label}}{{end}}
        </th>
        {{end}}{{end}}
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td>{{.Title}}</td>
        <td>{{.Status}}</td>
        <td>{{.Rating}}</td>
        <td>{{.Author.Name}}</td>
        <td>{{.CreatedAt.Format "2006-01-02"}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <nav>
    {{if .Info.HasPrev}}<a href="/articles?page={{.Info.PrevPage}}&{{.Query}}">Previous</a>{{end}}
    <span>Page {{.Info.Page}} of {{.Info.TotalPages}}</span>
    {{if .Info.HasNext}}<a href="/articles?page={{.Info.NextPage}}&{{.Query}}">Next</a>{{end}}
  </nav>
</div>`
