package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	specialCharRegex = regexp.MustCompile(`[()%]`)
	underscoreRegex  = regexp.MustCompile(`_+`)
)

// NormalizeHeader normaliza um cabeçalho de CSV para o formato usado nas
// buscas por alias: minúsculas, espaços e caracteres ()% viram underscore,
// underscores consecutivos são colapsados. Ex.: "Gross Margin %" vira
// "gross_margin_"
func NormalizeHeader(header string) string {
	h := strings.TrimSpace(header)
	h = strings.ToLower(h)
	h = whitespaceRegex.ReplaceAllString(h, "_")
	h = specialCharRegex.ReplaceAllString(h, "")
	h = underscoreRegex.ReplaceAllString(h, "_")
	h = strings.Trim(h, `"`)
	return h
}

// ParseCSVLine divide uma linha de CSV nas vírgulas que estão fora de aspas
// duplas. Vírgulas dentro de um par de aspas são preservadas no campo.
// Aspas duplas escapadas ("") dentro de campo não são suportadas; é uma
// limitação conhecida do formato de entrada aceito.
func ParseCSVLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}
	result = append(result, current.String())

	return result
}

// ParseCSV converte o conteúdo de um CSV em uma lista de mapas
// coluna-normalizada → valor. A primeira linha define os cabeçalhos; linhas
// com quantidade de campos diferente dos cabeçalhos são descartadas em
// silêncio.
func ParseCSV(text string) []map[string]string {
	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil
	}

	rawHeaders := ParseCSVLine(lines[0])
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = NormalizeHeader(h)
	}

	records := make([]map[string]string, 0, len(lines)-1)

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := ParseCSVLine(line)
		if len(values) != len(headers) {
			continue
		}

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			row[header] = strings.TrimSpace(strings.Trim(strings.TrimSpace(values[i]), `"`))
		}
		records = append(records, row)
	}

	return records
}
