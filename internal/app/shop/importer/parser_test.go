package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CompleteDocument(t *testing.T) {
	// Arrange
	raw := []byte(`
shop: Acme Wholesale
categories:
  - id: 10
    name: Smartphones
  - id: 20
    name: Accessories
goods:
  - name: Phone X
    category: 10
    model: phone-x-128
    quantity: 5
    price: 500
    price_rrc: 599.99
    parameters:
      color: black
      memory_gb: 128
      waterproof: true
`)

	// Act
	doc, err := Parse(raw)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Acme Wholesale", doc.Shop)
	require.Len(t, doc.Categories, 2)
	assert.Equal(t, 10, doc.Categories[0].ID)
	assert.Equal(t, "Smartphones", doc.Categories[0].Name)

	require.Len(t, doc.Goods, 1)
	good := doc.Goods[0]
	assert.Equal(t, "Phone X", good.Name)
	assert.Equal(t, 10, good.Category)
	assert.Equal(t, "phone-x-128", good.Model)
	assert.Equal(t, 5, good.Quantity)
	assert.Equal(t, 500.0, good.Price)
	assert.Equal(t, 599.99, good.PriceRRC)
}

func TestParse_ScalarParameterValues(t *testing.T) {
	// Числа и булевы значения параметров приводятся к строкам
	raw := []byte(`
shop: Acme
goods:
  - name: Phone X
    category: 10
    parameters:
      color: black
      memory_gb: 128
      weight: 0.195
      waterproof: true
`)

	doc, err := Parse(raw)

	require.NoError(t, err)
	require.Len(t, doc.Goods, 1)
	params := doc.Goods[0].Parameters
	assert.Equal(t, "black", params["color"].String())
	assert.Equal(t, "128", params["memory_gb"].String())
	assert.Equal(t, "0.195", params["weight"].String())
	assert.Equal(t, "true", params["waterproof"].String())
}

func TestParse_NonScalarParameterValue(t *testing.T) {
	raw := []byte(`
shop: Acme
goods:
  - name: Phone X
    category: 10
    parameters:
      colors: [black, white]
`)

	doc, err := Parse(raw)

	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.Nil(t, doc)
}

func TestParse_MalformedYAML(t *testing.T) {
	doc, err := Parse([]byte("{{{not yaml at all"))

	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.Nil(t, doc)
}

func TestParse_EmptyDocument(t *testing.T) {
	// Пустой документ синтаксически валиден: отсутствие shop
	// обнаруживается на этапе согласования
	doc, err := Parse([]byte(""))

	require.NoError(t, err)
	assert.Empty(t, doc.Shop)
	assert.Empty(t, doc.Categories)
	assert.Empty(t, doc.Goods)
}

func TestCategoryIDs(t *testing.T) {
	doc := &CatalogDocument{
		Categories: []CategoryRecord{
			{ID: 10, Name: "Smartphones"},
			{ID: 20, Name: "Accessories"},
		},
	}

	assert.Equal(t, []int{10, 20}, doc.CategoryIDs())
}
