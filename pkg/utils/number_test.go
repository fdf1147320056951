package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "Número simples deve ser convertido",
			input:    "42",
			expected: 42,
		},
		{
			name:     "Valor monetário com símbolo deve ser convertido",
			input:    "$1,250.00",
			expected: 1250,
		},
		{
			name:     "Porcentagem deve perder o símbolo",
			input:    "62.5%",
			expected: 62.5,
		},
		{
			name:     "Espaços nas bordas devem ser ignorados",
			input:    "  42 ",
			expected: 42,
		},
		{
			name:     "Valor negativo deve manter o sinal",
			input:    "-$300.50",
			expected: -300.5,
		},
		{
			name:     "Separador de milhar em número grande",
			input:    "1,234,567.89",
			expected: 1234567.89,
		},
		{
			name:     "String vazia deve retornar zero",
			input:    "",
			expected: 0,
		},
		{
			name:     "Texto não numérico deve retornar zero",
			input:    "abc",
			expected: 0,
		},
		{
			name:     "Apenas símbolos deve retornar zero",
			input:    "$%",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.input))
		})
	}
}

func TestNormalizePercentage(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Fração deve ser convertida para escala 0-100",
			input:    0.625,
			expected: 62.5,
		},
		{
			name:     "Valor já em escala 0-100 não muda",
			input:    62.5,
			expected: 62.5,
		},
		{
			name:     "Exatamente 1 é tratado como fração",
			input:    1,
			expected: 100,
		},
		{
			name:     "Zero permanece zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "Valor negativo não é alterado",
			input:    -0.5,
			expected: -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePercentage(tt.input))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.345001))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
