package domain

// StoreSummary são os agregados de vendas de uma loja
type StoreSummary struct {
	Revenue      float64 `json:"revenue"`
	Transactions float64 `json:"transactions"`
	Margin       float64 `json:"margin"`
}

// SalesSummary são os agregados de vendas do período carregado. Os totais
// somam todos os registros; o valor médio de pedido e a margem média são a
// média das médias por loja, não a média geral dos registros.
type SalesSummary struct {
	TotalRevenue      float64                  `json:"total_revenue"`
	TotalTransactions float64                  `json:"total_transactions"`
	TotalCustomers    float64                  `json:"total_customers"`
	AvgOrderValue     float64                  `json:"avg_order_value"`
	AvgMargin         float64                  `json:"avg_margin"`
	ByStore           map[StoreID]StoreSummary `json:"by_store"`
}

// BrandSummary são os agregados de desempenho de marcas
type BrandSummary struct {
	TopBrands       []*BrandRecord            `json:"top_brands"`
	LowMarginBrands []*BrandRecord            `json:"low_margin_brands"`
	ByCategory      map[string][]*BrandRecord `json:"by_category"`
}

// CustomerSummary são os agregados da base de clientes
type CustomerSummary struct {
	TotalCustomers   int            `json:"total_customers"`
	SegmentBreakdown map[string]int `json:"segment_breakdown"`
	RecencyBreakdown map[string]int `json:"recency_breakdown"`
	AvgLifetimeValue float64        `json:"avg_lifetime_value"`
}

// BudtenderSummary é o desempenho agregado de um atendente em uma loja
type BudtenderSummary struct {
	EmployeeName      string  `json:"employee_name"`
	Store             string  `json:"store"`
	TotalSales        float64 `json:"total_sales"`
	TotalTickets      float64 `json:"total_tickets"`
	TotalCustomers    float64 `json:"total_customers"`
	TotalUnits        float64 `json:"total_units"`
	AvgMargin         float64 `json:"avg_margin"`
	AvgTicketValue    float64 `json:"avg_ticket_value"`
	AvgUnitsPerTicket float64 `json:"avg_units_per_ticket"`
	DayCount          int     `json:"day_count"`
}

// ProductTypeSpend é o gasto agregado de um tipo de produto nas notas fiscais
type ProductTypeSpend struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// InvoiceSummary são os agregados das notas fiscais de compra
type InvoiceSummary struct {
	TotalInvoices   int                          `json:"total_invoices"`
	TotalLineItems  int                          `json:"total_line_items"`
	TotalCost       float64                      `json:"total_cost"`
	TotalWithExcise float64                      `json:"total_with_excise"`
	PromoCount      int                          `json:"promo_count"`
	ByProductType   map[string]*ProductTypeSpend `json:"by_product_type"`
}
