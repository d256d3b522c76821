package internal

import "sort"

// Row selection for bulk actions. The selection is keyed by the host's
// row identifiers and lives outside the URL state: it survives page
// navigation but is cleared whenever the result set membership changes
// (filter, search or sort events).

// Select adds a row to the selection.
func (g *Grid) Select(id string) {
	if id == "" {
		return
	}
	g.selected[id] = struct{}{}
}

// Deselect removes a row from the selection.
func (g *Grid) Deselect(id string) {
	delete(g.selected, id)
}

// ToggleSelect flips a row's selection and reports the new state.
func (g *Grid) ToggleSelect(id string) bool {
	if _, ok := g.selected[id]; ok {
		delete(g.selected, id)
		return false
	}
	g.Select(id)
	return true
}

// SelectPage adds every id of the rendered page, for header checkboxes.
func (g *Grid) SelectPage(ids []string) {
	for _, id := range ids {
		g.Select(id)
	}
}

// ClearSelection empties the selection.
func (g *Grid) ClearSelection() {
	g.clearSelection()
}

// Selected returns the selected row ids in stable order.
func (g *Grid) Selected() []string {
	out := make([]string, 0, len(g.selected))
	for id := range g.selected {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// IsSelected reports whether a row is selected.
func (g *Grid) IsSelected(id string) bool {
	_, ok := g.selected[id]
	return ok
}

// SelectionCount returns the number of selected rows.
func (g *Grid) SelectionCount() int {
	return len(g.selected)
}

func (g *Grid) clearSelection() {
	if len(g.selected) > 0 {
		g.selected = make(map[string]struct{})
	}
}
