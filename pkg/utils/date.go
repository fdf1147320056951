package utils

import "time"

// Formatos de data aceitos nos CSVs de upload, na ordem em que são tentados
var uploadDateLayouts = []string{
	"01/02/2006",
	"2006-01-02",
	"1/2/2006",
	"01-02-2006",
}

// NormalizeDate converte datas de formato variado ("01/15/2024",
// "2024-01-15", "1/15/2024", "01-15-2024") para o formato canônico
// "2006-01-02". Se nenhum formato casar, retorna a string original sem
// alteração e a validação da data fica a cargo do cleaner.
func NormalizeDate(dateStr string) string {
	if dateStr == "" {
		return ""
	}

	for _, layout := range uploadDateLayouts {
		if parsed, err := time.Parse(layout, dateStr); err == nil {
			return parsed.Format(time.DateOnly)
		}
	}

	return dateStr
}
