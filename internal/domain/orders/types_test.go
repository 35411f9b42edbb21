package orders

import (
	"testing"

	"github.com/refdudu/api-calvao-de-cria/internal/domain/addresses"

	"github.com/stretchr/testify/assert"
)

func TestShippingFromAddress(t *testing.T) {
	comp := "apto 42"
	a := &addresses.Address{
		ID:            3,
		UserID:        7,
		Alias:         "Casa",
		RecipientName: "Maria da Silva",
		Phone:         "11988888888",
		CEP:           "01000-000",
		Street:        "Rua das Flores",
		Number:        "123",
		Complement:    &comp,
		Neighborhood:  "Centro",
		City:          "São Paulo",
		State:         "SP",
	}

	ship := ShippingFromAddress(a)

	assert.Equal(t, "Maria da Silva", ship.RecipientName)
	assert.Equal(t, "11988888888", ship.Phone)
	assert.Equal(t, "Rua das Flores", ship.Street)
	assert.Equal(t, "123", ship.Number)
	assert.Equal(t, &comp, ship.Complement)
	assert.Equal(t, "Centro", ship.Neighborhood)
	assert.Equal(t, "São Paulo", ship.City)
	assert.Equal(t, "SP", ship.State)
	assert.Equal(t, "01000-000", ship.PostalCode)
	assert.Nil(t, ship.Country) // the store defaults it to BR
}
