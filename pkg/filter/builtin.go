package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Built-in filter type names.
const (
	TypeText         = "text"
	TypeSelect       = "select"
	TypeMultiSelect  = "multiselect"
	TypeBoolean      = "boolean"
	TypeDateRange    = "daterange"
	TypeNumberRange  = "numberrange"
	TypeCheckbox     = "checkbox"
	TypeAutocomplete = "autocomplete"
	TypeRadioGroup   = "radiogroup"
)

// dateLayouts are the accepted input formats for daterange bounds, tried in
// order. Values are normalized to the first layout on parse.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func builtins() map[string]TypeDef {
	return map[string]TypeDef{
		TypeText: {
			RenderHint: hint("text-input"),
			Parse:      parseText,
			Validate:   validateNothing,
			Predicate:  textPredicate,
		},
		TypeSelect: {
			RenderHint: hint("select"),
			Parse:      parseScalar(TypeSelect, OpEquals),
			Validate:   validateChoice,
			Predicate:  equalityPredicate,
		},
		TypeMultiSelect: {
			RenderHint: hint("multi-select"),
			Parse:      parseSet(TypeMultiSelect),
			Validate:   validateChoices,
			Predicate:  setPredicate,
		},
		TypeBoolean: {
			RenderHint: hint("toggle"),
			Parse:      parseBoolean,
			Validate:   validateNothing,
			Predicate:  booleanPredicate,
		},
		TypeDateRange: {
			RenderHint: hint("date-range"),
			Parse:      parseDateRange,
			Validate:   validateDateBounds,
			Predicate:  datePredicate,
		},
		TypeNumberRange: {
			RenderHint: hint("number-range"),
			Parse:      parseNumberRange,
			Validate:   validateNumberBounds,
			Predicate:  numberPredicate,
		},
		TypeCheckbox: {
			RenderHint: hint("checkbox"),
			Parse:      parseCheckbox,
			Validate:   validateNothing,
			Predicate:  booleanPredicate,
		},
		TypeAutocomplete: {
			RenderHint: hint("autocomplete"),
			Parse:      parseScalar(TypeAutocomplete, OpEquals),
			Validate:   validateNothing,
			Predicate:  equalityPredicate,
		},
		TypeRadioGroup: {
			RenderHint: hint("radio-group"),
			Parse:      parseScalar(TypeRadioGroup, OpEquals),
			Validate:   validateChoice,
			Predicate:  equalityPredicate,
		},
	}
}

func hint(name string) func(Constraints) string {
	return func(Constraints) string { return name }
}

// --- parsers ---

func parseText(in Input, c Constraints) (Value, error) {
	raw := strings.TrimSpace(in.First())
	if raw == "" {
		return Value{}, nil
	}
	op := c.Operator
	if op == "" {
		op = OpContains
	}
	switch op {
	case OpContains, OpEquals, OpStartsWith, OpEndsWith:
	default:
		return Value{}, fmt.Errorf("filter: text: unsupported operator %q", op)
	}
	return Value{Type: TypeText, Raw: raw, Operator: op, Fold: !c.CaseSensitive}, nil
}

func parseScalar(typ string, defaultOp Operator) func(Input, Constraints) (Value, error) {
	return func(in Input, c Constraints) (Value, error) {
		raw := strings.TrimSpace(in.First())
		if raw == "" {
			return Value{}, nil
		}
		op := c.Operator
		if op == "" {
			op = defaultOp
		}
		if op != OpEquals && op != OpNotEquals {
			return Value{}, fmt.Errorf("filter: %s: unsupported operator %q", typ, op)
		}
		return Value{Type: typ, Raw: raw, Operator: op}, nil
	}
}

func parseSet(typ string) func(Input, Constraints) (Value, error) {
	return func(in Input, _ Constraints) (Value, error) {
		var vals []string
		for _, v := range in.Values {
			v = strings.TrimSpace(v)
			if v != "" {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			return Value{}, nil
		}
		return Value{Type: typ, Values: vals, Operator: OpIn}, nil
	}
}

func parseBoolean(in Input, _ Constraints) (Value, error) {
	raw := strings.TrimSpace(in.First())
	if raw == "" {
		return Value{}, nil
	}
	switch strings.ToLower(raw) {
	case "true", "1", "on", "yes":
		return Value{Type: TypeBoolean, Raw: "true", Operator: OpIsTrue}, nil
	case "false", "0", "off", "no":
		return Value{Type: TypeBoolean, Raw: "false", Operator: OpIsFalse}, nil
	}
	return Value{}, fmt.Errorf("filter: boolean: unparseable value %q", raw)
}

func parseCheckbox(in Input, _ Constraints) (Value, error) {
	raw := strings.TrimSpace(in.First())
	switch strings.ToLower(raw) {
	case "", "false", "0", "off":
		// An unchecked checkbox means "no filter", not "filter false".
		return Value{}, nil
	}
	return Value{Type: TypeCheckbox, Raw: "true", Operator: OpIsTrue}, nil
}

func parseDateRange(in Input, _ Constraints) (Value, error) {
	v := Value{Type: TypeDateRange, Operator: OpBetween}
	var err error
	if v.Min, err = normalizeDate(in.Min); err != nil {
		return Value{}, err
	}
	if v.Max, err = normalizeDate(in.Max); err != nil {
		return Value{}, err
	}
	if v.Zero() {
		return Value{}, nil
	}
	switch {
	case v.Min == "":
		v.Operator = OpLessEqual
	case v.Max == "":
		v.Operator = OpGreaterEqual
	}
	return v, nil
}

func parseNumberRange(in Input, _ Constraints) (Value, error) {
	v := Value{Type: TypeNumberRange, Operator: OpBetween}
	var err error
	if v.Min, err = normalizeNumber(in.Min); err != nil {
		return Value{}, err
	}
	if v.Max, err = normalizeNumber(in.Max); err != nil {
		return Value{}, err
	}
	if v.Zero() {
		return Value{}, nil
	}
	switch {
	case v.Min == "":
		v.Operator = OpLessEqual
	case v.Max == "":
		v.Operator = OpGreaterEqual
	}
	return v, nil
}

func normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayouts[0]), nil
		}
	}
	return "", fmt.Errorf("filter: daterange: unparseable date %q", raw)
}

func normalizeNumber(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", fmt.Errorf("filter: numberrange: unparseable number %q", raw)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// --- validators ---

func validateNothing(Value, Constraints) error { return nil }

func validateChoice(v Value, c Constraints) error {
	if !c.allows(v.Raw) {
		return fmt.Errorf("filter: value %q is not an allowed choice", v.Raw)
	}
	return nil
}

func validateChoices(v Value, c Constraints) error {
	for _, val := range v.Values {
		if !c.allows(val) {
			return fmt.Errorf("filter: value %q is not an allowed choice", val)
		}
	}
	return nil
}

func validateNumberBounds(v Value, c Constraints) error {
	lo, hi := c.MinValue, c.MaxValue
	if lo != "" && v.Min != "" && mustFloat(v.Min) < mustFloat(lo) {
		return fmt.Errorf("filter: minimum %s is below the allowed %s", v.Min, lo)
	}
	if hi != "" && v.Max != "" && mustFloat(v.Max) > mustFloat(hi) {
		return fmt.Errorf("filter: maximum %s is above the allowed %s", v.Max, hi)
	}
	return nil
}

func validateDateBounds(v Value, c Constraints) error {
	if c.MinValue != "" && v.Min != "" && v.Min < c.MinValue {
		return fmt.Errorf("filter: date %s is before the allowed %s", v.Min, c.MinValue)
	}
	if c.MaxValue != "" && v.Max != "" && v.Max > c.MaxValue {
		return fmt.Errorf("filter: date %s is after the allowed %s", v.Max, c.MaxValue)
	}
	return nil
}

// mustFloat is only called on values already normalized by parsing.
func mustFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// --- predicates ---

func textPredicate(db *gorm.DB, column string, v Value) *gorm.DB {
	pattern := v.Raw
	switch v.Operator {
	case OpContains:
		pattern = "%" + v.Raw + "%"
	case OpStartsWith:
		pattern = v.Raw + "%"
	case OpEndsWith:
		pattern = "%" + v.Raw
	case OpEquals:
		if v.Fold {
			return db.Where("LOWER("+column+") = LOWER(?)", v.Raw)
		}
		return db.Where(column+" = ?", v.Raw)
	}
	if v.Fold {
		return db.Where("LOWER("+column+") LIKE LOWER(?)", pattern)
	}
	return db.Where(column+" LIKE ?", pattern)
}

func equalityPredicate(db *gorm.DB, column string, v Value) *gorm.DB {
	if v.Operator == OpNotEquals {
		return db.Where(column+" <> ?", v.Raw)
	}
	return db.Where(column+" = ?", v.Raw)
}

func setPredicate(db *gorm.DB, column string, v Value) *gorm.DB {
	return db.Where(column+" IN ?", v.Values)
}

func booleanPredicate(db *gorm.DB, column string, v Value) *gorm.DB {
	return db.Where(column+" = ?", v.Operator == OpIsTrue)
}

func datePredicate(db *gorm.DB, column string, v Value) *gorm.DB {
	if v.Min != "" {
		if t, err := time.Parse(dateLayouts[0], v.Min); err == nil {
			db = db.Where(column+" >= ?", t)
		}
	}
	if v.Max != "" {
		if t, err := time.Parse(dateLayouts[0], v.Max); err == nil {
			db = db.Where(column+" <= ?", t)
		}
	}
	return db
}

func numberPredicate(db *gorm.DB, column string, v Value) *gorm.DB {
	if v.Min != "" {
		db = db.Where(column+" >= ?", mustFloat(v.Min))
	}
	if v.Max != "" {
		db = db.Where(column+" <= ?", mustFloat(v.Max))
	}
	return db
}
