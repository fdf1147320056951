package aggregating

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	ingestingmocks "github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting/mocks"
	invoicingmocks "github.com/vfg2006/retail-analytics-api/internal/usecases/invoicing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_SalesSummary(t *testing.T) {
	t.Run("Resumo calculado sobre o dataset do ingestor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := ingestingmocks.NewMockIngestor(ctrl)
		service := NewService(ingestor, invoicingmocks.NewMockInvoicer(ctrl))

		dataset := &domain.Dataset{
			Sales: []*domain.SalesRecord{
				{StoreID: domain.StoreGrassRoots, NetSales: 1000, GrossMarginPct: 60},
			},
		}
		ingestor.EXPECT().GetDataset(gomock.Any()).Return(dataset, true, nil)

		summary, err := service.SalesSummary(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1000.0, summary.TotalRevenue)
	})

	t.Run("Erro do ingestor é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := ingestingmocks.NewMockIngestor(ctrl)
		service := NewService(ingestor, invoicingmocks.NewMockInvoicer(ctrl))

		ingestor.EXPECT().GetDataset(gomock.Any()).Return(nil, false, errors.New("bucket indisponível"))

		_, err := service.SalesSummary(context.Background())

		assert.Error(t, err)
	})
}

func TestService_InvoiceSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoicer := invoicingmocks.NewMockInvoicer(ctrl)
	service := NewService(ingestingmocks.NewMockIngestor(ctrl), invoicer)

	invoicer.EXPECT().GetLineItems(gomock.Any()).Return([]*domain.InvoiceLineItem{
		{InvoiceID: "INV-1", TotalCost: 100},
	}, true, nil)

	summary, err := service.InvoiceSummary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalInvoices)
	assert.Equal(t, 100.0, summary.TotalCost)
}
