package domain

// SalesRecord representa uma linha diária de vendas de uma loja, já
// normalizada pela limpeza. A chave natural é (store_id, date).
type SalesRecord struct {
	Date           string  `json:"date"`
	Store          string  `json:"store"`
	StoreID        StoreID `json:"store_id"`
	Week           string  `json:"week"`
	TicketsCount   float64 `json:"tickets_count"`
	UnitsSold      float64 `json:"units_sold"`
	CustomersCount float64 `json:"customers_count"`
	NewCustomers   float64 `json:"new_customers"`
	GrossSales     float64 `json:"gross_sales"`
	Discounts      float64 `json:"discounts"`
	Returns        float64 `json:"returns"`
	NetSales       float64 `json:"net_sales"`
	Taxes          float64 `json:"taxes"`
	GrossReceipts  float64 `json:"gross_receipts"`
	COGSWithExcise float64 `json:"cogs_with_excise"`
	GrossIncome    float64 `json:"gross_income"`
	GrossMarginPct float64 `json:"gross_margin_pct"`
	DiscountPct    float64 `json:"discount_pct"`
	CostPct        float64 `json:"cost_pct"`
	AvgBasketSize  float64 `json:"avg_basket_size"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	AvgOrderProfit float64 `json:"avg_order_profit"`
}

// DedupKey retorna a chave natural usada para deduplicar registros de
// vendas entre uploads sobrepostos
func (r *SalesRecord) DedupKey() string {
	return r.StoreID + "_" + r.Date
}
