package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dmitrymomot/datagrid/pkg/filter"
)

func customType() filter.TypeDef {
	return filter.TypeDef{
		RenderHint: func(filter.Constraints) string { return "stars" },
		Parse: func(in filter.Input, _ filter.Constraints) (filter.Value, error) {
			return filter.Value{Type: "stars", Raw: in.First(), Operator: filter.OpEquals}, nil
		},
		Validate:  func(filter.Value, filter.Constraints) error { return nil },
		Predicate: func(db *gorm.DB, column string, v filter.Value) *gorm.DB { return db },
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := filter.Default()

	builtins := []string{
		filter.TypeText, filter.TypeSelect, filter.TypeMultiSelect,
		filter.TypeBoolean, filter.TypeDateRange, filter.TypeNumberRange,
		filter.TypeCheckbox, filter.TypeAutocomplete, filter.TypeRadioGroup,
	}
	for _, name := range builtins {
		assert.True(t, reg.Has(name), "missing builtin %q", name)
	}
	assert.Len(t, reg.Names(), len(builtins))
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("custom type is dispatchable", func(t *testing.T) {
		t.Parallel()

		reg := filter.Default()
		require.NoError(t, reg.Register("stars", customType()))

		def, ok := reg.Lookup("stars")
		require.True(t, ok)
		assert.Equal(t, "stars", def.RenderHint(filter.Constraints{}))

		v, err := def.Parse(filter.Input{Values: []string{"4"}}, filter.Constraints{})
		require.NoError(t, err)
		assert.Equal(t, "4", v.Raw)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		t.Parallel()

		reg := filter.Default()
		err := reg.Register(filter.TypeText, customType())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("incomplete definition fails", func(t *testing.T) {
		t.Parallel()

		def := customType()
		def.Predicate = nil

		reg := filter.NewRegistry()
		require.Error(t, reg.Register("stars", def))
	})

	t.Run("empty name fails", func(t *testing.T) {
		t.Parallel()

		reg := filter.NewRegistry()
		require.Error(t, reg.Register("", customType()))
	})
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, ok := filter.Default().Lookup("no-such-type")
	assert.False(t, ok)
}
