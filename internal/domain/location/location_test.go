package location

import (
	"testing"

	"github.com/delivery/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
)

func TestAddress_Apply(t *testing.T) {
	original := func() *Address {
		a := NewAddress("Rua Florianopolis", 123, "apto 2", valueobject.PostalCode("89229780"), 1)
		a.ID = 10
		return a
	}

	t.Run("empty patch", func(t *testing.T) {
		assert.True(t, AddressPatch{}.IsEmpty())
		a := original()
		a.Apply(AddressPatch{})
		assert.Equal(t, original(), a)
	})

	t.Run("overwrites exactly the supplied fields", func(t *testing.T) {
		street := "Rua XV de Novembro"
		cep := valueobject.PostalCode("89201100")
		patch := AddressPatch{Street: &street, PostalCode: &cep}
		assert.False(t, patch.IsEmpty())

		a := original()
		a.Apply(patch)

		assert.Equal(t, street, a.Street)
		assert.Equal(t, cep, a.PostalCode)
		assert.Equal(t, 123, a.Number)
		assert.Equal(t, "apto 2", a.Complement)
		assert.Equal(t, uint64(1), a.CityID)
		assert.Equal(t, uint64(10), a.ID)
	})
}

func TestCity_BelongsTo(t *testing.T) {
	c := &City{StateID: 24}
	assert.True(t, c.BelongsTo(24))
	assert.False(t, c.BelongsTo(25))
}
