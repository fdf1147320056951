package ingesting

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// ParseBrandMappings decodifica o JSON de mapeamento marca → produto.
// O arquivo já circulou em três formatos e todos precisam ser aceitos:
//
//	[]                          lista de mapeamentos
//	{"mappings": [...]}         lista embrulhada em objeto
//	{"Marca": "Tipo", ...}      objeto plano marca → tipo (ou marca → objeto)
func ParseBrandMappings(data []byte) ([]*domain.BrandMapping, error) {
	// Formato 1: lista direta
	var list []*domain.BrandMapping
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	// Formato 2: objeto com campo "mappings"
	var wrapped struct {
		Mappings []*domain.BrandMapping `json:"mappings"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Mappings != nil {
		return wrapped.Mappings, nil
	}

	// Formato 3: objeto plano marca → valor
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("formato de mapeamento de marcas desconhecido: %w", err)
	}

	mappings := make([]*domain.BrandMapping, 0, len(flat))
	for brand, raw := range flat {
		mapping := &domain.BrandMapping{Brand: brand}

		// O valor pode ser uma string (tipo de produto) ou um objeto
		var productType string
		if err := json.Unmarshal(raw, &productType); err == nil {
			mapping.ProductType = productType
		} else {
			var info struct {
				ProductType string `json:"product_type"`
				Category    string `json:"category"`
				Vendor      string `json:"vendor"`
			}
			if err := json.Unmarshal(raw, &info); err != nil {
				continue
			}
			mapping.ProductType = info.ProductType
			mapping.Category = info.Category
			mapping.Vendor = info.Vendor
		}

		mappings = append(mappings, mapping)
	}

	// Mapas não têm ordem de iteração estável
	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].Brand < mappings[j].Brand
	})

	return mappings, nil
}
