package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Cabeçalho com espaços e símbolo de porcentagem",
			input:    "Gross Margin %",
			expected: "gross_margin_",
		},
		{
			name:     "Cabeçalho simples vira minúsculas",
			input:    "Date",
			expected: "date",
		},
		{
			name:     "Parênteses são removidos",
			input:    "Net Sales (USD)",
			expected: "net_sales_usd",
		},
		{
			name:     "Underscores consecutivos são colapsados",
			input:    "Total  ( ) Sales",
			expected: "total_sales",
		},
		{
			name:     "Espaços nas bordas são removidos",
			input:    "  Customers Count  ",
			expected: "customers_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHeader(tt.input))
		})
	}
}

func TestParseCSVLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Linha simples sem aspas",
			input:    "a,b,c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "Vírgula dentro de aspas é preservada no campo",
			input:    `"Smith, John",100,SF`,
			expected: []string{"Smith, John", "100", "SF"},
		},
		{
			name:     "Campo vazio no meio",
			input:    "a,,c",
			expected: []string{"a", "", "c"},
		},
		{
			name:     "Campo vazio no final",
			input:    "a,b,",
			expected: []string{"a", "b", ""},
		},
		{
			name:     "Valor monetário entre aspas",
			input:    `2024-01-15,"$1,250.00",42`,
			expected: []string{"2024-01-15", "$1,250.00", "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCSVLine(tt.input))
		})
	}
}

func TestParseCSV(t *testing.T) {
	t.Run("Deve normalizar cabeçalhos e mapear valores", func(t *testing.T) {
		csv := "Date,Net Sales,Gross Margin %\n2024-01-15,\"$1,250.00\",62.5%\n2024-01-16,$900.00,58%"

		rows := ParseCSV(csv)

		assert.Len(t, rows, 2)
		assert.Equal(t, "2024-01-15", rows[0]["date"])
		assert.Equal(t, "$1,250.00", rows[0]["net_sales"])
		assert.Equal(t, "62.5%", rows[0]["gross_margin_"])
		assert.Equal(t, "$900.00", rows[1]["net_sales"])
	})

	t.Run("Linhas com quantidade de campos diferente do cabeçalho são descartadas", func(t *testing.T) {
		csv := "a,b,c\n1,2,3\n1,2\n4,5,6"

		rows := ParseCSV(csv)

		assert.Len(t, rows, 2)
		assert.Equal(t, "1", rows[0]["a"])
		assert.Equal(t, "4", rows[1]["a"])
	})

	t.Run("Linhas em branco são ignoradas", func(t *testing.T) {
		csv := "a,b\n1,2\n\n3,4\n"

		rows := ParseCSV(csv)

		assert.Len(t, rows, 2)
	})

	t.Run("Arquivo só com cabeçalho retorna vazio", func(t *testing.T) {
		assert.Nil(t, ParseCSV("a,b,c"))
	})

	t.Run("Quebras de linha no estilo Windows são aceitas", func(t *testing.T) {
		csv := "a,b\r\n1,2\r\n3,4"

		rows := ParseCSV(csv)

		assert.Len(t, rows, 2)
		assert.Equal(t, "3", rows[1]["a"])
	})
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Formato americano com zeros",
			input:    "01/15/2024",
			expected: "2024-01-15",
		},
		{
			name:     "Formato ISO já canônico",
			input:    "2024-01-15",
			expected: "2024-01-15",
		},
		{
			name:     "Formato americano sem zeros",
			input:    "1/5/2024",
			expected: "2024-01-05",
		},
		{
			name:     "Formato americano com hífen",
			input:    "01-15-2024",
			expected: "2024-01-15",
		},
		{
			name:     "Formato desconhecido retorna o valor original",
			input:    "Jan 15 2024",
			expected: "Jan 15 2024",
		},
		{
			name:     "String vazia retorna vazio",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDate(tt.input))
		})
	}
}
