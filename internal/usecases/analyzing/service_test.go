package analyzing

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	anthropicmocks "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/anthropic/mocks"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	aggregatingmocks "github.com/vfg2006/retail-analytics-api/internal/usecases/aggregating/mocks"
	ingestingmocks "github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	anthropic  *anthropicmocks.MockAnthropicIntegrator
	aggregator *aggregatingmocks.MockAggregator
	ingestor   *ingestingmocks.MockIngestor
}

func newTestService(ctrl *gomock.Controller) (Analyzer, testMocks) {
	m := testMocks{
		anthropic:  anthropicmocks.NewMockAnthropicIntegrator(ctrl),
		aggregator: aggregatingmocks.NewMockAggregator(ctrl),
		ingestor:   ingestingmocks.NewMockIngestor(ctrl),
	}

	cfg := &config.Config{
		Anthropic: config.Anthropic{
			Model:       "claude-sonnet-4-20250514",
			MaxTokens:   2048,
			CacheTTLMin: 1440,
		},
	}

	return NewService(cfg, m.anthropic, m.aggregator, m.ingestor), m
}

func TestService_Analyze(t *testing.T) {
	t.Run("Análise de vendas monta o prompt com os agregados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		m.aggregator.EXPECT().SalesSummary(gomock.Any()).Return(&domain.SalesSummary{
			TotalRevenue: 3500,
			AvgMargin:    57.5,
		}, nil)

		m.anthropic.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(system, prompt string) (string, error) {
				assert.Contains(t, system, "retail analytics expert")
				assert.Contains(t, prompt, "3500")
				return "Análise de vendas", nil
			})

		response, err := service.Analyze(context.Background(), AnalysisSales)

		assert.NoError(t, err)
		assert.Equal(t, "Análise de vendas", response)
	})

	t.Run("Mesmo prompt dentro do TTL responde do cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		summary := &domain.CustomerSummary{TotalCustomers: 10}
		m.aggregator.EXPECT().CustomerSummary(gomock.Any()).Return(summary, nil).Times(2)

		// Uma única consulta ao modelo para duas chamadas
		m.anthropic.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Análise", nil)

		first, err := service.Analyze(context.Background(), AnalysisCustomers)
		assert.NoError(t, err)

		second, err := service.Analyze(context.Background(), AnalysisCustomers)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Dados diferentes geram prompts e consultas diferentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		gomock.InOrder(
			m.aggregator.EXPECT().CustomerSummary(gomock.Any()).
				Return(&domain.CustomerSummary{TotalCustomers: 10}, nil),
			m.aggregator.EXPECT().CustomerSummary(gomock.Any()).
				Return(&domain.CustomerSummary{TotalCustomers: 20}, nil),
		)
		m.anthropic.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("A", nil)
		m.anthropic.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("B", nil)

		first, err := service.Analyze(context.Background(), AnalysisCustomers)
		assert.NoError(t, err)

		second, err := service.Analyze(context.Background(), AnalysisCustomers)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Análise de categorias usa produtos e top marcas do dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		m.ingestor.EXPECT().GetDataset(gomock.Any()).Return(&domain.Dataset{
			Products: []*domain.ProductRecord{{ProductType: "Flower", NetSales: 8000}},
			Brands:   []*domain.BrandRecord{{Brand: "Stiiizy", NetSales: 5000}},
		}, true, nil)

		m.anthropic.EXPECT().
			Complete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(system, prompt string) (string, error) {
				assert.Contains(t, system, "category manager")
				assert.Contains(t, prompt, "Flower")
				assert.Contains(t, prompt, "Stiiizy")
				return "Análise de categorias", nil
			})

		_, err := service.Analyze(context.Background(), AnalysisCategories)

		assert.NoError(t, err)
	})

	t.Run("Tipo de análise desconhecido retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestService(ctrl)

		_, err := service.Analyze(context.Background(), "seo")

		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "desconhecido"))
	})

	t.Run("Erro do modelo é propagado sem preencher o cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)

		m.aggregator.EXPECT().SalesSummary(gomock.Any()).
			Return(&domain.SalesSummary{}, nil).Times(2)

		gomock.InOrder(
			m.anthropic.EXPECT().Complete(gomock.Any(), gomock.Any()).
				Return("", errors.New("api indisponível")),
			m.anthropic.EXPECT().Complete(gomock.Any(), gomock.Any()).
				Return("Análise", nil),
		)

		_, err := service.Analyze(context.Background(), AnalysisSales)
		assert.Error(t, err)

		response, err := service.Analyze(context.Background(), AnalysisSales)
		assert.NoError(t, err)
		assert.Equal(t, "Análise", response)
	})
}
