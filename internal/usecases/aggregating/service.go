package aggregating

import (
	"context"

	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/invoicing"
)

type Aggregator interface {
	SalesSummary(ctx context.Context) (*domain.SalesSummary, error)
	BrandSummary(ctx context.Context) (*domain.BrandSummary, error)
	CustomerSummary(ctx context.Context) (*domain.CustomerSummary, error)
	BudtenderRanking(ctx context.Context) ([]*domain.BudtenderSummary, error)
	InvoiceSummary(ctx context.Context) (*domain.InvoiceSummary, error)
}

// Service calcula os agregados sobre o dataset em cache. Cada chamada lê o
// dataset pelo ingestor, então os resumos seguem a mesma validade de cache da
// carga.
type Service struct {
	ingestor ingesting.Ingestor
	invoicer invoicing.Invoicer
}

func NewService(ingestor ingesting.Ingestor, invoicer invoicing.Invoicer) Aggregator {
	return &Service{
		ingestor: ingestor,
		invoicer: invoicer,
	}
}

func (s *Service) SalesSummary(ctx context.Context) (*domain.SalesSummary, error) {
	dataset, _, err := s.ingestor.GetDataset(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeSalesSummary(dataset.Sales), nil
}

func (s *Service) BrandSummary(ctx context.Context) (*domain.BrandSummary, error) {
	dataset, _, err := s.ingestor.GetDataset(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeBrandSummary(dataset.Brands), nil
}

func (s *Service) CustomerSummary(ctx context.Context) (*domain.CustomerSummary, error) {
	dataset, _, err := s.ingestor.GetDataset(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeCustomerSummary(dataset.Customers), nil
}

func (s *Service) BudtenderRanking(ctx context.Context) ([]*domain.BudtenderSummary, error) {
	dataset, _, err := s.ingestor.GetDataset(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeBudtenderRanking(dataset.Budtenders), nil
}

func (s *Service) InvoiceSummary(ctx context.Context) (*domain.InvoiceSummary, error) {
	items, _, err := s.invoicer.GetLineItems(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeInvoiceSummary(items), nil
}
