package ingesting

import (
	"regexp"
	"strings"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Nomes de arquivo de upload carregam o intervalo de datas como
// <yyyymmdd>-<yyyymmdd>
var dateRangeRegex = regexp.MustCompile(`(\d{8})-(\d{8})`)

// ExtractStoreFromPath extrai o identificador da loja do caminho do objeto.
// A convenção é prefix/<loja-ou-combined>/<tipo>_<datas>_<timestamp>.csv.
func ExtractStoreFromPath(path string) domain.StoreID {
	parts := strings.Split(path, "/")
	if len(parts) >= 2 {
		return parts[1]
	}
	return domain.StoreCombined
}

// ExtractDateRangeFromPath extrai o intervalo de datas do nome do arquivo,
// ou nil quando o nome não segue a convenção
func ExtractDateRangeFromPath(path string) *domain.DateRange {
	parts := strings.Split(path, "/")
	filename := parts[len(parts)-1]

	match := dateRangeRegex.FindStringSubmatch(filename)
	if match == nil {
		return nil
	}

	return &domain.DateRange{
		Start: formatCompactDate(match[1]),
		End:   formatCompactDate(match[2]),
	}
}

func formatCompactDate(compact string) string {
	return compact[0:4] + "-" + compact[4:6] + "-" + compact[6:8]
}
