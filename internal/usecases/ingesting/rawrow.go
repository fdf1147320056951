package ingesting

import "github.com/vfg2006/retail-analytics-api/pkg/utils"

// RawRow é uma linha de CSV já com os cabeçalhos normalizados. O acesso aos
// campos é feito por listas de aliases porque o esquema dos uploads muda
// entre lotes (cabeçalhos renomeados, colunas legadas).
type RawRow map[string]string

// Get retorna o primeiro valor não vazio entre os aliases informados, na
// ordem de precedência dada. Colunas desconhecidas são ignoradas.
func (r RawRow) Get(aliases ...string) string {
	for _, alias := range aliases {
		if value, ok := r[alias]; ok && value != "" {
			return value
		}
	}
	return ""
}

// GetNumber aplica Get e converte o resultado com ParseNumber
func (r RawRow) GetNumber(aliases ...string) float64 {
	return utils.ParseNumber(r.Get(aliases...))
}

// Aliases por campo canônico. A primeira entrada é o cabeçalho atual dos
// exports; as demais são variações já vistas em lotes antigos.
var (
	aliasDate           = []string{"date"}
	aliasWeek           = []string{"week"}
	aliasStore          = []string{"store"}
	aliasStoreName      = []string{"store_name"}
	aliasTicketsCount   = []string{"tickets_count", "tickets"}
	aliasUnitsSold      = []string{"units_sold", "units"}
	aliasCustomersCount = []string{"customers_count", "customers"}
	aliasNewCustomers   = []string{"new_customers"}
	aliasGrossSales     = []string{"gross_sales"}
	aliasDiscounts      = []string{"discounts"}
	aliasReturns        = []string{"returns"}
	aliasNetSales       = []string{"net_sales"}
	aliasTaxes          = []string{"taxes"}
	aliasGrossReceipts  = []string{"gross_receipts"}
	aliasCogsWithExcise = []string{"cogs_with_excise"}
	aliasGrossIncome    = []string{"gross_income"}
	aliasGrossMargin    = []string{"gross_margin_", "gross_margin"}
	aliasDiscountPct    = []string{"discount_", "discount"}
	aliasCostPct        = []string{"cost_", "cost"}
	aliasAvgBasketSize  = []string{"avg_basket_size"}
	aliasAvgOrderValue  = []string{"avg_order_value", "aov"}
	aliasAvgOrderProfit = []string{"avg_order_profit"}

	// O export de marcas renomeou "Product Brand" para "Brand"
	aliasBrand            = []string{"brand", "product_brand"}
	aliasPctOfTotal       = []string{"_of_total_net_sales", "of_total_net_sales"}
	aliasAvgCostWoExcise  = []string{"avg_cost_w/o_excise", "avg_cost_wo_excise"}
	aliasProductType      = []string{"product_type"}
	aliasCustomerID       = []string{"customer_id"}
	aliasCustomerName     = []string{"name"}
	aliasDateOfBirth      = []string{"date_of_birth"}
	aliasAge              = []string{"age"}
	aliasLifetimeVisits   = []string{"lifetime_visits", "lifetime_in-store_visits"}
	aliasLifetimeTx       = []string{"lifetime_transactions"}
	aliasLifetimeNetSales = []string{"lifetime_net_sales"}
	aliasLifetimeAOV      = []string{"lifetime_aov", "lifetime_avg_order_value"}
	aliasSignupDate       = []string{"signup_date", "sign-up_date"}
	aliasLastVisitDate    = []string{"last_visit_date"}
	aliasEmployeeName     = []string{"employee_name", "employee"}
)
