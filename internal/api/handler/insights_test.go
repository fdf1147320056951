package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetSalesSummary(t *testing.T) {
	t.Run("Resumo de vendas é retornado com o detalhamento por loja", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		aggregator := mocks.NewMockAggregator(ctrl)
		aggregator.EXPECT().SalesSummary(gomock.Any()).Return(&domain.SalesSummary{
			TotalRevenue:      125000.50,
			TotalTransactions: 2300,
			AvgOrderValue:     54.35,
			ByStore: map[domain.StoreID]domain.StoreSummary{
				domain.StoreGrassRoots: {Revenue: 75000, Transactions: 1400},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/insights/sales", nil)
		rec := httptest.NewRecorder()

		GetSalesSummary(aggregator).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var summary domain.SalesSummary
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, 125000.50, summary.TotalRevenue)
		assert.Contains(t, summary.ByStore, domain.StoreGrassRoots)
	})

	t.Run("Falha na agregação responde 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		aggregator := mocks.NewMockAggregator(ctrl)
		aggregator.EXPECT().SalesSummary(gomock.Any()).
			Return(nil, errors.New("dataset indisponível"))

		req := httptest.NewRequest(http.MethodGet, "/v1/insights/sales", nil)
		rec := httptest.NewRecorder()

		GetSalesSummary(aggregator).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestGetBudtenderRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := mocks.NewMockAggregator(ctrl)
	aggregator.EXPECT().BudtenderRanking(gomock.Any()).Return([]*domain.BudtenderSummary{
		{EmployeeName: "Maria", Store: "Grass Roots", TotalSales: 42000},
		{EmployeeName: "João", Store: "Barbary Coast", TotalSales: 38000},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/budtenders", nil)
	rec := httptest.NewRecorder()

	GetBudtenderRanking(aggregator).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var ranking []*domain.BudtenderSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranking))
	assert.Len(t, ranking, 2)
	assert.Equal(t, "Maria", ranking[0].EmployeeName)
}

func TestGetInvoiceSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := mocks.NewMockAggregator(ctrl)
	aggregator.EXPECT().InvoiceSummary(gomock.Any()).Return(&domain.InvoiceSummary{
		TotalInvoices:  12,
		TotalLineItems: 340,
		TotalCost:      88000,
		ByProductType: map[string]*domain.ProductTypeSpend{
			"Flower": {Count: 120, Total: 45000},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/invoices", nil)
	rec := httptest.NewRecorder()

	GetInvoiceSummary(aggregator).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var summary domain.InvoiceSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 12, summary.TotalInvoices)
	assert.Contains(t, summary.ByProductType, "Flower")
}
