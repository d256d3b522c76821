package filter

import (
	"fmt"

	"gorm.io/gorm"
)

// TypeDef is the behavior bundle for one filter type: four pure functions
// dispatched by type tag. All four must be set for a registration to be
// accepted.
type TypeDef struct {
	// RenderHint names the UI control the view layer should render for
	// this type given the column's constraints.
	RenderHint func(Constraints) string

	// Parse converts raw form/URL input into a typed Value. Empty input
	// must return a zero Value and no error; malformed input returns an
	// error that the caller logs and drops.
	Parse func(Input, Constraints) (Value, error)

	// Validate checks a parsed Value against the column's constraints.
	Validate func(Value, Constraints) error

	// Predicate applies the value to a query as a condition on column.
	// The column argument is a ready-to-use SQL column expression; path
	// traversal has already been handled by the dispatcher.
	Predicate func(db *gorm.DB, column string, v Value) *gorm.DB
}

// complete reports whether all four functions are present.
func (d TypeDef) complete() bool {
	return d.RenderHint != nil && d.Parse != nil && d.Validate != nil && d.Predicate != nil
}

// Registry maps filter type names to their definitions. Registries are
// populated at startup and read-only afterwards; they are not safe for
// concurrent mutation.
type Registry struct {
	types map[string]TypeDef
}

// NewRegistry creates an empty registry. Most callers want Default.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]TypeDef)}
}

// Default returns a new registry preloaded with the built-in filter types.
func Default() *Registry {
	r := NewRegistry()
	for name, def := range builtins() {
		r.types[name] = def
	}
	return r
}

// Register adds a filter type under name. Registering a name twice or an
// incomplete definition is an error: both indicate a wiring bug that should
// fail at startup.
func (r *Registry) Register(name string, def TypeDef) error {
	if name == "" {
		return fmt.Errorf("filter: register: empty type name")
	}
	if !def.complete() {
		return fmt.Errorf("filter: register %q: definition must set RenderHint, Parse, Validate and Predicate", name)
	}
	if _, exists := r.types[name]; exists {
		return fmt.Errorf("filter: register %q: type already registered", name)
	}
	r.types[name] = def
	return nil
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (TypeDef, bool) {
	def, ok := r.types[name]
	return def, ok
}

// Has reports whether name is a registered filter type.
func (r *Registry) Has(name string) bool {
	_, ok := r.types[name]
	return ok
}

// Names returns the registered type names in unspecified order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	return names
}
