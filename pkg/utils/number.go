package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseNumber converte strings numéricas de formato livre ("$1,250.00",
// "62.5%", " 42 ") em float64. Remove símbolo de moeda, separadores de
// milhar e sinal de porcentagem. Entrada vazia ou não numérica retorna 0;
// nunca retorna erro, porque linha inválida é rejeitada pelo cleaner, não
// pelo parser.
func ParseNumber(value string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "", "%", "").Replace(value)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0
	}

	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return num
}

// NormalizePercentage converte valores de margem que chegam como fração
// (0.625) para a escala 0-100 (62.5). A heurística é aplicada uma única vez,
// na fronteira de limpeza: valores entre 0 e 1 são tratados como fração e
// multiplicados por 100.
func NormalizePercentage(value float64) float64 {
	if value > 0 && value <= 1 {
		return value * 100
	}

	return value
}
