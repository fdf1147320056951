package domain

// BudtenderRecord representa o desempenho diário de um atendente em uma loja.
// Não há chave natural; a agregação é feita por (employee_name, store).
type BudtenderRecord struct {
	Store          string  `json:"store"`
	StoreID        StoreID `json:"store_id"`
	EmployeeName   string  `json:"employee_name"`
	Date           string  `json:"date"`
	TicketsCount   float64 `json:"tickets_count"`
	CustomersCount float64 `json:"customers_count"`
	NetSales       float64 `json:"net_sales"`
	GrossMarginPct float64 `json:"gross_margin_pct"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	UnitsSold      float64 `json:"units_sold"`
}
