package ingesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

func newTestCleaner() *Cleaner {
	cleaner := NewCleaner(NewSegmenter(config.DefaultSegments()))
	cleaner.now = func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return cleaner
}

func TestRawRow_Get(t *testing.T) {
	tests := []struct {
		name     string
		row      RawRow
		aliases  []string
		expected string
	}{
		{
			name:     "Primeiro alias presente vence",
			row:      RawRow{"net_sales": "100", "gross_sales": "200"},
			aliases:  []string{"net_sales", "gross_sales"},
			expected: "100",
		},
		{
			name:     "Alias seguinte é usado quando o primeiro está vazio",
			row:      RawRow{"gross_margin_": "", "gross_margin": "62.5"},
			aliases:  []string{"gross_margin_", "gross_margin"},
			expected: "62.5",
		},
		{
			name:     "Alias seguinte é usado quando o primeiro está ausente",
			row:      RawRow{"product_brand": "Stiiizy"},
			aliases:  []string{"brand", "product_brand"},
			expected: "Stiiizy",
		},
		{
			name:     "Nenhum alias presente retorna vazio",
			row:      RawRow{"outra_coluna": "x"},
			aliases:  []string{"brand", "product_brand"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.row.Get(tt.aliases...))
		})
	}
}

func TestCleaner_CleanSalesRecord(t *testing.T) {
	cleaner := newTestCleaner()

	t.Run("Linha válida é limpa e normalizada", func(t *testing.T) {
		csv := "Date,Store,Net Sales,Customers Count,Gross Margin %\n" +
			`01/15/2024,Grass Roots,"$1,250.00",12,62.5`

		rows := utils.ParseCSV(csv)
		record := cleaner.CleanSalesRecord(RawRow(rows[0]), domain.StoreCombined)

		assert.NotNil(t, record)
		assert.Equal(t, "2024-01-15", record.Date)
		assert.Equal(t, domain.StoreGrassRoots, record.StoreID)
		assert.Equal(t, 1250.0, record.NetSales)
		assert.Equal(t, 12.0, record.CustomersCount)
		assert.Equal(t, 62.5, record.GrossMarginPct)
	})

	t.Run("Menos de 5 clientes rejeita a linha", func(t *testing.T) {
		row := RawRow{
			"date":            "2024-01-15",
			"store":           "Grass Roots",
			"net_sales":       "1250",
			"customers_count": "3",
		}

		assert.Nil(t, cleaner.CleanSalesRecord(row, domain.StoreCombined))
	})

	t.Run("Vendas líquidas não positivas rejeitam a linha", func(t *testing.T) {
		row := RawRow{
			"date":            "2024-01-15",
			"net_sales":       "0",
			"customers_count": "12",
		}

		assert.Nil(t, cleaner.CleanSalesRecord(row, domain.StoreCombined))
	})

	t.Run("Data ausente rejeita a linha", func(t *testing.T) {
		row := RawRow{
			"net_sales":       "1250",
			"customers_count": "12",
		}

		assert.Nil(t, cleaner.CleanSalesRecord(row, domain.StoreCombined))
	})

	t.Run("Loja desconhecida usa o fallback do caminho do arquivo", func(t *testing.T) {
		row := RawRow{
			"date":            "2024-01-15",
			"store":           "Loja Nova",
			"net_sales":       "1250",
			"customers_count": "12",
		}

		record := cleaner.CleanSalesRecord(row, domain.StoreBarbaryCoast)

		assert.NotNil(t, record)
		assert.Equal(t, domain.StoreBarbaryCoast, record.StoreID)
	})

	t.Run("Margem em fração é convertida para escala 0-100", func(t *testing.T) {
		row := RawRow{
			"date":            "2024-01-15",
			"net_sales":       "1250",
			"customers_count": "12",
			"gross_margin_":   "0.625",
		}

		record := cleaner.CleanSalesRecord(row, domain.StoreCombined)

		assert.NotNil(t, record)
		assert.Equal(t, 62.5, record.GrossMarginPct)
	})
}

func TestCleaner_CleanBrandRecord(t *testing.T) {
	cleaner := newTestCleaner()
	dateRange := &domain.DateRange{Start: "2024-01-01", End: "2024-01-31"}

	t.Run("Linha válida recebe loja e intervalo do upload", func(t *testing.T) {
		row := RawRow{
			"brand":               "Stiiizy",
			"net_sales":           "5000",
			"gross_margin_":       "55",
			"_of_total_net_sales": "12.3",
		}

		record := cleaner.CleanBrandRecord(row, domain.StoreGrassRoots, dateRange)

		assert.NotNil(t, record)
		assert.Equal(t, "Stiiizy", record.Brand)
		assert.Equal(t, domain.StoreGrassRoots, record.StoreID)
		assert.Equal(t, 12.3, record.PctOfTotalNetSales)
		assert.Equal(t, "2024-01-01", record.UploadStartDate)
		assert.Equal(t, "2024-01-31", record.UploadEndDate)
	})

	t.Run("Marca com marcador de amostra é rejeitada", func(t *testing.T) {
		row := RawRow{"brand": "Stiiizy [DS]", "net_sales": "5000"}

		assert.Nil(t, cleaner.CleanBrandRecord(row, domain.StoreGrassRoots, nil))
	})

	t.Run("Marcador de amostra de loja também rejeita", func(t *testing.T) {
		row := RawRow{"brand": "Raw Garden [SS]", "net_sales": "5000"}

		assert.Nil(t, cleaner.CleanBrandRecord(row, domain.StoreGrassRoots, nil))
	})

	t.Run("Coluna legada product_brand é aceita", func(t *testing.T) {
		row := RawRow{"product_brand": "Raw Garden", "net_sales": "3000"}

		record := cleaner.CleanBrandRecord(row, domain.StoreGrassRoots, nil)

		assert.NotNil(t, record)
		assert.Equal(t, "Raw Garden", record.Brand)
		assert.Empty(t, record.UploadStartDate)
	})

	t.Run("Vendas não positivas rejeitam a linha", func(t *testing.T) {
		row := RawRow{"brand": "Stiiizy", "net_sales": "-10"}

		assert.Nil(t, cleaner.CleanBrandRecord(row, domain.StoreGrassRoots, nil))
	})
}

func TestCleaner_CleanProductRecord(t *testing.T) {
	cleaner := newTestCleaner()

	t.Run("Linha válida é limpa", func(t *testing.T) {
		row := RawRow{
			"product_type":        "Flower",
			"net_sales":           "8000",
			"gross_margin_":       "48",
			"avg_cost_w/o_excise": "12.5",
		}

		record := cleaner.CleanProductRecord(row, domain.StoreBarbaryCoast)

		assert.NotNil(t, record)
		assert.Equal(t, "Flower", record.ProductType)
		assert.Equal(t, 12.5, record.AvgCostWoExcise)
		assert.Equal(t, domain.StoreBarbaryCoast, record.StoreID)
	})

	t.Run("Vendas não positivas rejeitam a linha", func(t *testing.T) {
		row := RawRow{"product_type": "Flower", "net_sales": "0"}

		assert.Nil(t, cleaner.CleanProductRecord(row, domain.StoreBarbaryCoast))
	})
}

func TestCleaner_CleanCustomerRecord(t *testing.T) {
	cleaner := newTestCleaner()

	t.Run("Cliente válido recebe segmentos derivados", func(t *testing.T) {
		row := RawRow{
			"customer_id":        "CUST-1",
			"name":               "Maria Silva",
			"lifetime_net_sales": "$6,500.00",
			"last_visit_date":    "2024-05-20",
		}

		record := cleaner.CleanCustomerRecord(row)

		assert.NotNil(t, record)
		assert.Equal(t, domain.SegmentVIP, record.CustomerSegment)
		// 12 dias desde a última visita em 2024-06-01
		assert.Equal(t, domain.RecencyActive, record.RecencySegment)
		assert.Equal(t, 6500.0, record.LifetimeNetSales)
	})

	t.Run("Sem customer_id a linha é rejeitada", func(t *testing.T) {
		row := RawRow{"name": "Sem ID", "lifetime_net_sales": "100"}

		assert.Nil(t, cleaner.CleanCustomerRecord(row))
	})

	t.Run("Cliente sem última visita conta como ativo", func(t *testing.T) {
		row := RawRow{"customer_id": "CUST-2", "lifetime_net_sales": "50"}

		record := cleaner.CleanCustomerRecord(row)

		assert.NotNil(t, record)
		assert.Equal(t, domain.RecencyActive, record.RecencySegment)
		assert.Equal(t, domain.SegmentNewLow, record.CustomerSegment)
	})

	t.Run("Cliente sem visita há mais de um ano é perdido", func(t *testing.T) {
		row := RawRow{
			"customer_id":     "CUST-3",
			"last_visit_date": "2023-01-01",
		}

		record := cleaner.CleanCustomerRecord(row)

		assert.NotNil(t, record)
		assert.Equal(t, domain.RecencyLost, record.RecencySegment)
	})
}

func TestCleaner_CleanBudtenderRecord(t *testing.T) {
	cleaner := newTestCleaner()

	t.Run("Linha válida é limpa com aliases alternativos", func(t *testing.T) {
		row := RawRow{
			"employee": "João Pereira",
			"store":    "Barbary Coast",
			"date":     "01/10/2024",
			"tickets":  "40",
			"aov":      "55.20",
		}

		record := cleaner.CleanBudtenderRecord(row)

		assert.NotNil(t, record)
		assert.Equal(t, "João Pereira", record.EmployeeName)
		assert.Equal(t, domain.StoreBarbaryCoast, record.StoreID)
		assert.Equal(t, "2024-01-10", record.Date)
		assert.Equal(t, 40.0, record.TicketsCount)
		assert.Equal(t, 55.20, record.AvgOrderValue)
	})

	t.Run("Sem nome de funcionário a linha é rejeitada", func(t *testing.T) {
		row := RawRow{"store": "Grass Roots", "net_sales": "100"}

		assert.Nil(t, cleaner.CleanBudtenderRecord(row))
	})
}
