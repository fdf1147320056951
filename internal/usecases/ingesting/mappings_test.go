package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBrandMappings(t *testing.T) {
	t.Run("Lista direta de mapeamentos", func(t *testing.T) {
		data := []byte(`[{"brand": "Stiiizy", "product_type": "Vape", "category": "Cartridge", "vendor": "Stiiizy Inc"}]`)

		mappings, err := ParseBrandMappings(data)

		assert.NoError(t, err)
		assert.Len(t, mappings, 1)
		assert.Equal(t, "Stiiizy", mappings[0].Brand)
		assert.Equal(t, "Vape", mappings[0].ProductType)
		assert.Equal(t, "Stiiizy Inc", mappings[0].Vendor)
	})

	t.Run("Lista embrulhada em objeto", func(t *testing.T) {
		data := []byte(`{"mappings": [{"brand": "Raw Garden", "product_type": "Concentrate"}]}`)

		mappings, err := ParseBrandMappings(data)

		assert.NoError(t, err)
		assert.Len(t, mappings, 1)
		assert.Equal(t, "Raw Garden", mappings[0].Brand)
	})

	t.Run("Objeto plano marca para tipo", func(t *testing.T) {
		data := []byte(`{"Stiiizy": "Vape", "Raw Garden": "Concentrate"}`)

		mappings, err := ParseBrandMappings(data)

		assert.NoError(t, err)
		assert.Len(t, mappings, 2)
		// Ordenado por marca para saída determinística
		assert.Equal(t, "Raw Garden", mappings[0].Brand)
		assert.Equal(t, "Concentrate", mappings[0].ProductType)
		assert.Equal(t, "Stiiizy", mappings[1].Brand)
	})

	t.Run("Objeto plano marca para objeto", func(t *testing.T) {
		data := []byte(`{"Stiiizy": {"product_type": "Vape", "category": "Cartridge", "vendor": "Stiiizy Inc"}}`)

		mappings, err := ParseBrandMappings(data)

		assert.NoError(t, err)
		assert.Len(t, mappings, 1)
		assert.Equal(t, "Cartridge", mappings[0].Category)
	})

	t.Run("JSON inválido retorna erro", func(t *testing.T) {
		_, err := ParseBrandMappings([]byte(`isso não é json`))

		assert.Error(t, err)
	})
}
