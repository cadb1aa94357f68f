package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordsGenerateIDs(t *testing.T) {
	a := NewPartner(Partner{PartnerName: "Acme", ID: "caller-supplied"})
	b := NewPartner(Partner{PartnerName: "Acme"})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, "caller-supplied", a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	assert.NotEmpty(t, NewProduct(Product{}).ID)
	assert.NotEmpty(t, NewSale(Sale{}).ID)
}

func TestEqualityIsByIdentity(t *testing.T) {
	t.Run("partners with same fields but different ids differ", func(t *testing.T) {
		a := NewPartner(Partner{PartnerName: "Acme", INN: "123"})
		b := NewPartner(Partner{PartnerName: "Acme", INN: "123"})
		assert.False(t, a.Equal(b))
	})

	t.Run("partners with same id but different fields are equal", func(t *testing.T) {
		a := &Partner{ID: "p1", PartnerName: "Acme"}
		b := &Partner{ID: "p1", PartnerName: "Acme Holdings"}
		assert.True(t, a.Equal(b))
	})

	t.Run("products compare by id", func(t *testing.T) {
		assert.True(t, (&Product{ID: "x", ProductName: "a"}).Equal(&Product{ID: "x", ProductName: "b"}))
		assert.False(t, (&Product{ID: "x"}).Equal(&Product{ID: "y"}))
	})

	t.Run("product types compare by name", func(t *testing.T) {
		a := &ProductType{ProductType: "Laminate", Coefficient: 2.35}
		b := &ProductType{ProductType: "Laminate", Coefficient: 5.15}
		assert.True(t, a.Equal(b))
	})

	t.Run("nil handling", func(t *testing.T) {
		var nilSale *Sale
		assert.True(t, nilSale.Equal(nil))
		assert.False(t, nilSale.Equal(&Sale{ID: "s"}))
	})
}

func TestPartnerLabel(t *testing.T) {
	p := &Partner{PartnerName: "Acme", PartnerType: "LLC"}
	assert.Equal(t, "Acme | LLC", p.Label())
}
