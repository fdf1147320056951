package aggregating

import (
	"sort"
	"strings"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Limiares do resumo de marcas: top N por vendas e o corte de margem baixa
// com volume relevante
const (
	topBrandsLimit     = 50
	lowMarginThreshold = 40.0
	lowMarginMinSales  = 1000.0
)

// ComputeSalesSummary agrega os registros diários de vendas. Receita,
// transações e clientes são somas diretas; valor médio de pedido e margem
// média são a média das médias por loja ativa, paridade com o relatório que
// este serviço substitui. Registros da visão combinada entram nos totais mas
// não contam como loja ativa.
func ComputeSalesSummary(sales []*domain.SalesRecord) *domain.SalesSummary {
	type storeAccum struct {
		revenue      float64
		transactions float64
		marginSum    float64
		aovSum       float64
		count        int
	}

	byStore := map[domain.StoreID]*storeAccum{
		domain.StoreGrassRoots:   {},
		domain.StoreBarbaryCoast: {},
	}

	summary := &domain.SalesSummary{
		ByStore: make(map[domain.StoreID]domain.StoreSummary, 3),
	}

	for _, record := range sales {
		summary.TotalRevenue += record.NetSales
		summary.TotalTransactions += record.TicketsCount
		summary.TotalCustomers += record.CustomersCount

		if accum, ok := byStore[record.StoreID]; ok {
			accum.revenue += record.NetSales
			accum.transactions += record.TicketsCount
			accum.marginSum += record.GrossMarginPct
			accum.aovSum += record.AvgOrderValue
			accum.count++
		}
	}

	var aovTotal, marginTotal float64
	activeStores := 0

	for storeID, accum := range byStore {
		storeSummary := domain.StoreSummary{
			Revenue:      accum.revenue,
			Transactions: accum.transactions,
		}

		if accum.count > 0 {
			storeSummary.Margin = accum.marginSum / float64(accum.count)
			aovTotal += accum.aovSum / float64(accum.count)
			marginTotal += storeSummary.Margin
			activeStores++
		}

		summary.ByStore[storeID] = storeSummary
	}

	if activeStores > 0 {
		summary.AvgOrderValue = aovTotal / float64(activeStores)
		summary.AvgMargin = marginTotal / float64(activeStores)
	}

	summary.ByStore[domain.StoreCombined] = domain.StoreSummary{
		Revenue:      summary.TotalRevenue,
		Transactions: summary.TotalTransactions,
		Margin:       summary.AvgMargin,
	}

	return summary
}

// ComputeBrandSummary agrega o desempenho de marcas. A entrada já vem
// ordenada por vendas líquidas decrescentes, então o top N é um corte direto.
func ComputeBrandSummary(brands []*domain.BrandRecord) *domain.BrandSummary {
	summary := &domain.BrandSummary{
		ByCategory: make(map[string][]*domain.BrandRecord),
	}

	if len(brands) > topBrandsLimit {
		summary.TopBrands = brands[:topBrandsLimit]
	} else {
		summary.TopBrands = brands
	}

	for _, brand := range brands {
		if brand.GrossMarginPct < lowMarginThreshold && brand.NetSales > lowMarginMinSales {
			summary.LowMarginBrands = append(summary.LowMarginBrands, brand)
		}

		// Categoria simplificada: primeira letra da marca. Nome vazio fica
		// fora do agrupamento
		if brand.Brand != "" {
			category := strings.ToUpper(string([]rune(brand.Brand)[0]))
			summary.ByCategory[category] = append(summary.ByCategory[category], brand)
		}
	}

	return summary
}

// ComputeCustomerSummary agrega a base de clientes por segmento de valor e de
// recência
func ComputeCustomerSummary(customers []*domain.CustomerRecord) *domain.CustomerSummary {
	summary := &domain.CustomerSummary{
		TotalCustomers:   len(customers),
		SegmentBreakdown: make(map[string]int, 5),
		RecencyBreakdown: make(map[string]int, 5),
	}

	var totalLTV float64
	for _, customer := range customers {
		summary.SegmentBreakdown[customer.CustomerSegment]++
		summary.RecencyBreakdown[customer.RecencySegment]++
		totalLTV += customer.LifetimeNetSales
	}

	if len(customers) > 0 {
		summary.AvgLifetimeValue = totalLTV / float64(len(customers))
	}

	return summary
}

// ComputeBudtenderRanking agrega o desempenho diário dos atendentes por
// (funcionário, loja) e ordena por vendas totais decrescentes
func ComputeBudtenderRanking(budtenders []*domain.BudtenderRecord) []*domain.BudtenderSummary {
	type employeeAccum struct {
		summary   *domain.BudtenderSummary
		marginSum float64
	}

	byEmployee := make(map[string]*employeeAccum)
	order := make([]string, 0)

	for _, record := range budtenders {
		key := record.EmployeeName + "_" + record.Store
		accum, ok := byEmployee[key]
		if !ok {
			accum = &employeeAccum{
				summary: &domain.BudtenderSummary{
					EmployeeName: record.EmployeeName,
					Store:        record.Store,
				},
			}
			byEmployee[key] = accum
			order = append(order, key)
		}

		accum.summary.TotalSales += record.NetSales
		accum.summary.TotalTickets += record.TicketsCount
		accum.summary.TotalCustomers += record.CustomersCount
		accum.summary.TotalUnits += record.UnitsSold
		accum.marginSum += record.GrossMarginPct
		accum.summary.DayCount++
	}

	ranking := make([]*domain.BudtenderSummary, 0, len(byEmployee))
	for _, key := range order {
		accum := byEmployee[key]
		summary := accum.summary

		if summary.DayCount > 0 {
			summary.AvgMargin = accum.marginSum / float64(summary.DayCount)
		}
		if summary.TotalTickets > 0 {
			summary.AvgTicketValue = summary.TotalSales / summary.TotalTickets
			summary.AvgUnitsPerTicket = summary.TotalUnits / summary.TotalTickets
		}

		ranking = append(ranking, summary)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalSales > ranking[j].TotalSales
	})

	return ranking
}

// ComputeInvoiceSummary agrega os itens de nota fiscal. Os itens não carregam
// fornecedor, então a quebra é por tipo de produto; itens sem tipo caem em
// "Unknown".
func ComputeInvoiceSummary(items []*domain.InvoiceLineItem) *domain.InvoiceSummary {
	summary := &domain.InvoiceSummary{
		TotalLineItems: len(items),
		ByProductType:  make(map[string]*domain.ProductTypeSpend),
	}

	invoices := make(map[string]bool)
	for _, item := range items {
		if item.InvoiceID != "" {
			invoices[item.InvoiceID] = true
		}

		summary.TotalCost += item.TotalCost
		summary.TotalWithExcise += item.TotalWithExcise
		if item.IsPromo {
			summary.PromoCount++
		}

		productType := item.ProductType
		if productType == "" {
			productType = "Unknown"
		}

		spend, ok := summary.ByProductType[productType]
		if !ok {
			spend = &domain.ProductTypeSpend{}
			summary.ByProductType[productType] = spend
		}
		spend.Count++
		spend.Total += item.TotalCost
	}

	summary.TotalInvoices = len(invoices)

	return summary
}
