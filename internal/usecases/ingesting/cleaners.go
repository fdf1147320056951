package ingesting

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// Cleaner transforma linhas brutas de CSV em registros de domínio validados.
// Linha rejeitada retorna nil; o chamador conta e segue. A heurística de
// margem (fração 0-1 vira escala 0-100) é aplicada aqui e em nenhum outro
// lugar do pipeline.
type Cleaner struct {
	segmenter *Segmenter
	now       func() time.Time
}

func NewCleaner(segmenter *Segmenter) *Cleaner {
	return &Cleaner{
		segmenter: segmenter,
		now:       time.Now,
	}
}

// CleanSalesRecord valida e normaliza uma linha de vendas diárias.
// Rejeita registros sem data, com vendas líquidas não positivas ou com menos
// de 5 clientes; dias assim são ruído de teste ou de loja fechada.
func (c *Cleaner) CleanSalesRecord(row RawRow, fallbackStore domain.StoreID) *domain.SalesRecord {
	storeName := row.Get(aliasStore...)
	storeID := domain.ResolveStoreID(storeName, fallbackStore)

	date := utils.NormalizeDate(row.Get(aliasDate...))
	netSales := row.GetNumber(aliasNetSales...)
	customersCount := row.GetNumber(aliasCustomersCount...)

	if date == "" || netSales <= 0 || customersCount < 5 {
		return nil
	}

	return &domain.SalesRecord{
		Date:           date,
		Store:          storeName,
		StoreID:        storeID,
		Week:           row.Get(aliasWeek...),
		TicketsCount:   row.GetNumber(aliasTicketsCount...),
		UnitsSold:      row.GetNumber(aliasUnitsSold...),
		CustomersCount: customersCount,
		NewCustomers:   row.GetNumber(aliasNewCustomers...),
		GrossSales:     row.GetNumber(aliasGrossSales...),
		Discounts:      row.GetNumber(aliasDiscounts...),
		Returns:        row.GetNumber(aliasReturns...),
		NetSales:       netSales,
		Taxes:          row.GetNumber(aliasTaxes...),
		GrossReceipts:  row.GetNumber(aliasGrossReceipts...),
		COGSWithExcise: row.GetNumber(aliasCogsWithExcise...),
		GrossIncome:    row.GetNumber(aliasGrossIncome...),
		GrossMarginPct: utils.NormalizePercentage(row.GetNumber(aliasGrossMargin...)),
		DiscountPct:    row.GetNumber(aliasDiscountPct...),
		CostPct:        row.GetNumber(aliasCostPct...),
		AvgBasketSize:  row.GetNumber(aliasAvgBasketSize...),
		AvgOrderValue:  row.GetNumber(aliasAvgOrderValue...),
		AvgOrderProfit: row.GetNumber(aliasAvgOrderProfit...),
	}
}

// CleanBrandRecord valida e normaliza uma linha de desempenho de marca.
// Marcas com marcador de amostra ([DS] ou [SS]) e vendas não positivas são
// descartadas.
func (c *Cleaner) CleanBrandRecord(row RawRow, storeID domain.StoreID, dateRange *domain.DateRange) *domain.BrandRecord {
	brand := row.Get(aliasBrand...)
	netSales := row.GetNumber(aliasNetSales...)

	if brand == "" || netSales <= 0 || isSampleBrand(brand) {
		return nil
	}

	record := &domain.BrandRecord{
		Brand:              brand,
		PctOfTotalNetSales: row.GetNumber(aliasPctOfTotal...),
		GrossMarginPct:     utils.NormalizePercentage(row.GetNumber(aliasGrossMargin...)),
		AvgCostWoExcise:    row.GetNumber(aliasAvgCostWoExcise...),
		NetSales:           netSales,
		Store:              row.Get(aliasStore...),
		StoreID:            storeID,
	}

	if dateRange != nil {
		record.UploadStartDate = dateRange.Start
		record.UploadEndDate = dateRange.End
	}

	return record
}

// CleanProductRecord valida e normaliza uma linha de tipo de produto
func (c *Cleaner) CleanProductRecord(row RawRow, storeID domain.StoreID) *domain.ProductRecord {
	netSales := row.GetNumber(aliasNetSales...)
	if netSales <= 0 {
		return nil
	}

	return &domain.ProductRecord{
		ProductType:        row.Get(aliasProductType...),
		PctOfTotalNetSales: row.GetNumber(aliasPctOfTotal...),
		GrossMarginPct:     utils.NormalizePercentage(row.GetNumber(aliasGrossMargin...)),
		AvgCostWoExcise:    row.GetNumber(aliasAvgCostWoExcise...),
		NetSales:           netSales,
		Store:              row.Get(aliasStore...),
		StoreID:            storeID,
	}
}

// CleanCustomerRecord valida e normaliza uma linha de cliente. O registro
// precisa de customer_id; os segmentos são derivados aqui, nunca lidos do
// CSV.
func (c *Cleaner) CleanCustomerRecord(row RawRow) *domain.CustomerRecord {
	customerID := row.Get(aliasCustomerID...)
	if customerID == "" {
		return nil
	}

	lifetimeNetSales := row.GetNumber(aliasLifetimeNetSales...)
	lastVisitDate := utils.NormalizeDate(row.Get(aliasLastVisitDate...))
	daysSinceVisit := c.daysSinceVisit(lastVisitDate)

	var age int
	if rawAge := row.Get(aliasAge...); rawAge != "" {
		age, _ = strconv.Atoi(rawAge)
	}

	return &domain.CustomerRecord{
		StoreName:            row.Get(aliasStoreName...),
		CustomerID:           customerID,
		Name:                 row.Get(aliasCustomerName...),
		DateOfBirth:          row.Get(aliasDateOfBirth...),
		Age:                  age,
		LifetimeVisits:       row.GetNumber(aliasLifetimeVisits...),
		LifetimeTransactions: row.GetNumber(aliasLifetimeTx...),
		LifetimeNetSales:     lifetimeNetSales,
		LifetimeAOV:          row.GetNumber(aliasLifetimeAOV...),
		SignupDate:           row.Get(aliasSignupDate...),
		LastVisitDate:        lastVisitDate,
		CustomerSegment:      c.segmenter.SpendingSegment(lifetimeNetSales),
		RecencySegment:       c.segmenter.RecencySegment(daysSinceVisit),
	}
}

// CleanBudtenderRecord valida e normaliza uma linha de desempenho de
// atendente. Registro sem nome de funcionário é descartado.
func (c *Cleaner) CleanBudtenderRecord(row RawRow) *domain.BudtenderRecord {
	employeeName := row.Get(aliasEmployeeName...)
	if employeeName == "" {
		return nil
	}

	storeName := row.Get(aliasStore...)

	return &domain.BudtenderRecord{
		Store:          storeName,
		StoreID:        domain.ResolveStoreID(storeName, domain.StoreGrassRoots),
		EmployeeName:   employeeName,
		Date:           utils.NormalizeDate(row.Get(aliasDate...)),
		TicketsCount:   row.GetNumber(aliasTicketsCount...),
		CustomersCount: row.GetNumber(aliasCustomersCount...),
		NetSales:       row.GetNumber(aliasNetSales...),
		GrossMarginPct: utils.NormalizePercentage(row.GetNumber(aliasGrossMargin...)),
		AvgOrderValue:  row.GetNumber(aliasAvgOrderValue...),
		UnitsSold:      row.GetNumber(aliasUnitsSold...),
	}
}

// daysSinceVisit calcula os dias desde a última visita. Data ausente ou
// inválida conta como visita hoje, o que classifica o cliente como ativo em
// vez de perdido.
func (c *Cleaner) daysSinceVisit(lastVisitDate string) float64 {
	if lastVisitDate == "" {
		return 0
	}

	lastVisit, err := time.Parse(time.DateOnly, lastVisitDate)
	if err != nil {
		return 0
	}

	return c.now().Sub(lastVisit).Hours() / 24
}

// Marcadores de amostra de distribuidor nos exports de marca
func isSampleBrand(brand string) bool {
	return strings.Contains(brand, "[DS]") || strings.Contains(brand, "[SS]")
}
