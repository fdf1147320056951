package domain

// ProductRecord representa o desempenho de um tipo de produto em uma loja
type ProductRecord struct {
	ProductType        string  `json:"product_type"`
	PctOfTotalNetSales float64 `json:"pct_of_total_net_sales"`
	GrossMarginPct     float64 `json:"gross_margin_pct"`
	AvgCostWoExcise    float64 `json:"avg_cost_wo_excise"`
	NetSales           float64 `json:"net_sales"`
	Store              string  `json:"store"`
	StoreID            StoreID `json:"store_id"`
}
