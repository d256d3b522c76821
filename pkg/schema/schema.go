package schema

// Kind classifies the primitive type behind a field path.
type Kind string

const (
	KindString  Kind = "string"
	KindBool    Kind = "bool"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindTime    Kind = "time"
	KindEnum    Kind = "enum"
	KindSlice   Kind = "slice"
	KindUnknown Kind = "unknown"
)

// Field describes what lives at one field path.
type Field struct {
	// Path is the declared field path (dotted for relationships,
	// double-underscore for embedded resources).
	Path string

	// Kind is the primitive classification of the field.
	Kind Kind

	// Elem is the element kind when Kind is KindSlice.
	Elem Kind

	// EnumValues is the fixed value set when Kind is KindEnum.
	EnumValues []string
}

// Relation describes how a relationship path joins to its related table:
// related.ForeignColumn = parent.ParentColumn.
type Relation struct {
	// Name is the path segment used in field paths (e.g. "author").
	Name string

	// Table is the related table name.
	Table string

	// ForeignColumn is the join column on the related table.
	ForeignColumn string

	// ParentColumn is the join column on the parent table.
	ParentColumn string
}

// Introspector answers field-path questions against a data schema.
// Lookups are best-effort: an unresolvable path reports absent and the
// caller degrades gracefully.
type Introspector interface {
	// Field resolves a field path. The second return is false when the
	// path cannot be confirmed against the schema.
	Field(path string) (Field, bool)
}

// RelationResolver is optionally implemented by introspectors that can
// resolve relationship path segments to join metadata. The query dispatcher
// uses it to build existential subqueries for dotted paths.
type RelationResolver interface {
	Relation(name string) (Relation, bool)
}

// TableNamer is optionally implemented by introspectors that know the
// parent table name. Existential subqueries need it to correlate against
// the outer query.
type TableNamer interface {
	Table() string
}

// Enum is implemented by model field types with a fixed value set. Fields
// of such types auto-detect as select filters with the enum's values as
// choices.
type Enum interface {
	EnumValues() []string
}

// MapIntrospector is a plain map-backed Introspector for tests and callers
// without a parseable model. Dotted and embedded paths are looked up
// verbatim as map keys.
type MapIntrospector struct {
	Fields    map[string]Field
	Relations map[string]Relation

	// TableName is the parent table, when known.
	TableName string
}

// Table implements TableNamer.
func (m MapIntrospector) Table() string {
	return m.TableName
}

// Field implements Introspector.
func (m MapIntrospector) Field(path string) (Field, bool) {
	f, ok := m.Fields[path]
	if ok && f.Path == "" {
		f.Path = path
	}
	return f, ok
}

// Relation implements RelationResolver.
func (m MapIntrospector) Relation(name string) (Relation, bool) {
	r, ok := m.Relations[name]
	return r, ok
}
