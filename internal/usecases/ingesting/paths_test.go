package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func TestExtractStoreFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected domain.StoreID
	}{
		{
			name:     "Caminho completo de upload",
			path:     "raw-uploads/grass_roots/sales_2024-01-01_2024-01-31_x.csv",
			expected: domain.StoreGrassRoots,
		},
		{
			name:     "Loja combinada",
			path:     "raw-uploads/combined/sales_2024.csv",
			expected: domain.StoreCombined,
		},
		{
			name:     "Caminho sem diretório de loja usa combined",
			path:     "sales.csv",
			expected: domain.StoreCombined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractStoreFromPath(tt.path))
		})
	}
}

func TestExtractDateRangeFromPath(t *testing.T) {
	t.Run("Intervalo compacto no nome do arquivo", func(t *testing.T) {
		got := ExtractDateRangeFromPath("raw-uploads/grass_roots/brand_20240101-20240131_x.csv")

		assert.NotNil(t, got)
		assert.Equal(t, "2024-01-01", got.Start)
		assert.Equal(t, "2024-01-31", got.End)
	})

	t.Run("Nome sem intervalo retorna nil", func(t *testing.T) {
		assert.Nil(t, ExtractDateRangeFromPath("raw-uploads/grass_roots/brand_latest.csv"))
	})
}
