package invoicing

import (
	tabledomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/domain"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// A tabela de notas fiscais já circulou com três convenções de nome de
// atributo (snake_case, PascalCase e os nomes genéricos de chave). Cada campo
// aceita todas elas, na ordem de preferência.
func mapLineItem(item tabledomain.Item) *domain.InvoiceLineItem {
	return &domain.InvoiceLineItem{
		InvoiceID:       itemString(item, "invoice_id", "InvoiceId", "PK"),
		LineItemID:      itemString(item, "line_item_id", "LineItemId", "SK"),
		ProductName:     itemString(item, "product_name", "ProductName", "product"),
		ProductType:     itemString(item, "product_type", "ProductType", "category"),
		SkuUnits:        itemNumber(item, "sku_units", "SkuUnits", "quantity", "units"),
		UnitCost:        itemNumber(item, "unit_cost", "UnitCost", "cost"),
		TotalCost:       itemNumber(item, "total_cost", "TotalCost", "total"),
		TotalWithExcise: itemNumber(item, "total_with_excise", "TotalWithExcise", "total_excise"),
		Strain:          itemString(item, "strain", "Strain"),
		UnitSize:        itemString(item, "unit_size", "UnitSize"),
		TraceID:         itemString(item, "trace_id", "TraceId", "metrc_id"),
		IsPromo:         itemBool(item, "is_promo", "IsPromo", "promo"),
	}
}

func itemString(item tabledomain.Item, keys ...string) string {
	for _, key := range keys {
		if v := item.String(key); v != "" {
			return v
		}
	}
	return ""
}

// itemNumber aceita atributos numéricos gravados como número ou como string
// formatada ("$1,250.00")
func itemNumber(item tabledomain.Item, keys ...string) float64 {
	for _, key := range keys {
		switch v := item[key].(type) {
		case float64:
			if v != 0 {
				return v
			}
		case int:
			if v != 0 {
				return float64(v)
			}
		case string:
			if parsed := utils.ParseNumber(v); parsed != 0 {
				return parsed
			}
		}
	}
	return 0
}

func itemBool(item tabledomain.Item, keys ...string) bool {
	for _, key := range keys {
		if item.Bool(key) {
			return true
		}
	}
	return false
}
