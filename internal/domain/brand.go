package domain

// BrandRecord representa o desempenho de uma marca em um período de upload
type BrandRecord struct {
	Brand              string  `json:"brand"`
	PctOfTotalNetSales float64 `json:"pct_of_total_net_sales"`
	GrossMarginPct     float64 `json:"gross_margin_pct"`
	AvgCostWoExcise    float64 `json:"avg_cost_wo_excise"`
	NetSales           float64 `json:"net_sales"`
	Store              string  `json:"store"`
	StoreID            StoreID `json:"store_id"`
	UploadStartDate    string  `json:"upload_start_date,omitempty"`
	UploadEndDate      string  `json:"upload_end_date,omitempty"`
}

// BrandMapping associa uma marca ao seu tipo de produto, categoria e fornecedor
type BrandMapping struct {
	Brand       string `json:"brand"`
	ProductType string `json:"product_type"`
	Category    string `json:"category,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
}
