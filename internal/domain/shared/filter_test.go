package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = FilterSpec{
	{Key: "city_id", Column: "city_id", Mode: MatchEqual, Kind: ValueID},
	{Key: "street", Column: "street", Mode: MatchContains, Kind: ValueText},
	{Key: "price_min", Column: "suggested_price", Mode: MatchAtLeast, Kind: ValueDecimal},
}

func TestFilterSpec_Build(t *testing.T) {
	t.Run("empty query matches everything", func(t *testing.T) {
		f, err := testSpec.Build(map[string]string{})
		require.NoError(t, err)
		assert.Empty(t, f.Conditions)
	})

	t.Run("parses each kind and ignores unknown keys", func(t *testing.T) {
		f, err := testSpec.Build(map[string]string{
			"city_id":   "7",
			"street":    " Flor ",
			"price_min": "10.50",
			"unknown":   "x",
		})
		require.NoError(t, err)
		require.Len(t, f.Conditions, 3)

		v, ok := f.Value("city_id")
		assert.True(t, ok)
		assert.Equal(t, uint64(7), v)

		v, _ = f.Value("street")
		assert.Equal(t, "Flor", v)

		v, _ = f.Value("suggested_price")
		assert.True(t, decimal.RequireFromString("10.5").Equal(v.(decimal.Decimal)))
		_, ok = f.Value("cep")
		assert.False(t, ok)
	})

	t.Run("blank values are absent", func(t *testing.T) {
		f, err := testSpec.Build(map[string]string{"city_id": "  "})
		require.NoError(t, err)
		_, ok := f.Value("city_id")
		assert.False(t, ok)
	})

	t.Run("unparseable values name every key", func(t *testing.T) {
		_, err := testSpec.Build(map[string]string{"city_id": "abc", "price_min": "cheap"})
		require.Error(t, err)
		assert.True(t, IsKind(err, KindValidation))
		assert.Equal(t, "Invalid value for query param(s): city_id, price_min", err.Error())
	})

	t.Run("ids must fit a bigint key", func(t *testing.T) {
		tests := []struct {
			raw     string
			wantErr bool
		}{
			{raw: "9223372036854775807"},
			{raw: "9223372036854775808", wantErr: true},
			{raw: "18446744073709551615", wantErr: true},
		}
		for _, tt := range tests {
			f, err := testSpec.Build(map[string]string{"city_id": tt.raw})
			if tt.wantErr {
				require.Error(t, err, tt.raw)
				assert.True(t, IsKind(err, KindValidation))
				assert.Equal(t, "Invalid value for query param(s): city_id", err.Error())
				continue
			}
			require.NoError(t, err, tt.raw)
			v, _ := f.Value("city_id")
			assert.Equal(t, uint64(9223372036854775807), v)
		}
	})
}

func TestFailure(t *testing.T) {
	nf := NewNotFoundFailure("Address not found")
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.ErrorIs(t, NewConflictFailure("in use"), ErrConflict)
	assert.ErrorIs(t, NewValidationFailure("bad"), ErrInvalidInput)
	assert.Equal(t, "NOT_FOUND", nf.Kind.String())

	withID := nf.With("address_id", uint64(3))
	assert.Nil(t, nf.Fields)
	assert.Equal(t, uint64(3), withID.Fields["address_id"])

	f, ok := AsFailure(withID)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, f.Kind)
	assert.False(t, IsKind(assert.AnError, KindNotFound))
}
