package ingesting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	storagedomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/domain"
)

// ComputeFingerprint calcula o fingerprint do conjunto de arquivos do
// bucket: ordena as entradas por chave, concatena pares key:etag com "|" e
// aplica um digest rápido. O resultado muda se qualquer arquivo for
// adicionado, removido ou alterado, e só nesses casos. É um sinal de
// invalidação de cache, não uma garantia criptográfica.
func ComputeFingerprint(objects []storagedomain.ObjectInfo) string {
	parts := make([]string, 0, len(objects))
	for _, obj := range objects {
		parts = append(parts, obj.Key+":"+obj.ETag)
	}
	sort.Strings(parts)

	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(parts, "|")))
}
