package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	gormschema "gorm.io/gorm/schema"
)

// ParseModel builds an Introspector from a GORM model struct. Direct fields,
// one level of relationship paths (author.name) and embedded fields are
// resolved; anything else reports absent.
//
// The returned value also implements RelationResolver and TableNamer.
func ParseModel(model any) (Introspector, error) {
	parsed, err := gormschema.Parse(model, &sync.Map{}, gormschema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("schema: parse model %T: %w", model, err)
	}

	in := &gormIntrospector{
		table:     parsed.Table,
		fields:    make(map[string]Field),
		relations: make(map[string]Relation),
	}

	for _, f := range parsed.Fields {
		if f.DBName == "" {
			continue
		}
		in.fields[f.DBName] = classify(f.DBName, f)
	}

	namer := gormschema.NamingStrategy{}
	for name, rel := range parsed.Relationships.Relations {
		if rel.FieldSchema == nil || len(rel.References) == 0 {
			continue
		}
		segment := namer.ColumnName("", name)

		ref := rel.References[0]
		r := Relation{Name: segment, Table: rel.FieldSchema.Table}
		if ref.OwnPrimaryKey {
			r.ParentColumn = ref.PrimaryKey.DBName
			r.ForeignColumn = ref.ForeignKey.DBName
		} else {
			r.ParentColumn = ref.ForeignKey.DBName
			r.ForeignColumn = ref.PrimaryKey.DBName
		}
		in.relations[segment] = r

		for _, f := range rel.FieldSchema.Fields {
			if f.DBName == "" {
				continue
			}
			path := segment + "." + f.DBName
			in.fields[path] = classify(path, f)
		}
	}

	return in, nil
}

type gormIntrospector struct {
	table     string
	fields    map[string]Field
	relations map[string]Relation
}

func (in *gormIntrospector) Table() string {
	return in.table
}

func (in *gormIntrospector) Field(path string) (Field, bool) {
	if f, ok := in.fields[path]; ok {
		return f, true
	}
	// Embedded paths use a double underscore in declarations while GORM
	// prefixes embedded columns with a single one.
	if strings.Contains(path, "__") {
		if f, ok := in.fields[strings.ReplaceAll(path, "__", "_")]; ok {
			f.Path = path
			return f, true
		}
	}
	return Field{}, false
}

func (in *gormIntrospector) Relation(name string) (Relation, bool) {
	r, ok := in.relations[name]
	return r, ok
}

var timeType = reflect.TypeOf(time.Time{})

// classify maps a parsed GORM field onto the package's Kind taxonomy.
// Enum detection looks for the Enum interface on the field's Go type.
func classify(path string, f *gormschema.Field) Field {
	out := Field{Path: path}

	if values, ok := enumValues(f.FieldType); ok {
		out.Kind = KindEnum
		out.EnumValues = values
		return out
	}

	switch f.DataType {
	case gormschema.Bool:
		out.Kind = KindBool
	case gormschema.Int, gormschema.Uint:
		out.Kind = KindInt
	case gormschema.Float:
		out.Kind = KindFloat
	case gormschema.String:
		out.Kind = KindString
	case gormschema.Time:
		out.Kind = KindTime
	default:
		out.Kind, out.Elem = classifyReflect(f.FieldType)
	}
	return out
}

func classifyReflect(t reflect.Type) (Kind, Kind) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return KindTime, ""
	}
	switch t.Kind() {
	case reflect.String:
		return KindString, ""
	case reflect.Bool:
		return KindBool, ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt, ""
	case reflect.Float32, reflect.Float64:
		return KindFloat, ""
	case reflect.Slice, reflect.Array:
		elem, _ := classifyReflect(t.Elem())
		if elem == KindSlice || elem == KindUnknown {
			return KindUnknown, ""
		}
		return KindSlice, elem
	}
	return KindUnknown, ""
}

// enumValues probes t (and *t) for the Enum interface.
func enumValues(t reflect.Type) ([]string, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	v := reflect.New(t)
	if e, ok := v.Elem().Interface().(Enum); ok {
		return e.EnumValues(), true
	}
	if e, ok := v.Interface().(Enum); ok {
		return e.EnumValues(), true
	}
	return nil, false
}
