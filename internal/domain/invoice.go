package domain

// InvoiceLineItem representa um item de linha de nota fiscal vindo da tabela
// remota. Os campos numéricos são coagidos na carga; o valor padrão é 0.
type InvoiceLineItem struct {
	InvoiceID       string  `json:"invoice_id"`
	LineItemID      string  `json:"line_item_id"`
	ProductName     string  `json:"product_name"`
	ProductType     string  `json:"product_type"`
	SkuUnits        float64 `json:"sku_units"`
	UnitCost        float64 `json:"unit_cost"`
	TotalCost       float64 `json:"total_cost"`
	TotalWithExcise float64 `json:"total_with_excise"`
	Strain          string  `json:"strain,omitempty"`
	UnitSize        string  `json:"unit_size,omitempty"`
	TraceID         string  `json:"trace_id,omitempty"`
	IsPromo         bool    `json:"is_promo"`
}

// DedupKey retorna a chave natural (invoice_id, line_item_id)
func (i *InvoiceLineItem) DedupKey() string {
	return i.InvoiceID + "#" + i.LineItemID
}
