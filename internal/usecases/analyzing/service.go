package analyzing

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/anthropic"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tipos de análise aceitos
const (
	AnalysisSales      = "sales"
	AnalysisBrands     = "brands"
	AnalysisCategories = "categories"
	AnalysisCustomers  = "customers"
)

type Analyzer interface {
	Analyze(ctx context.Context, analysisType string) (string, error)
}

// Service monta prompts a partir dos agregados e consulta o modelo. As
// respostas são cacheadas por chave derivada do prompt, então o mesmo dataset
// não paga duas consultas.
type Service struct {
	anthropic  anthropic.AnthropicIntegrator
	aggregator aggregating.Aggregator
	ingestor   ingesting.Ingestor
	cache      *responseCache
	cfg        *config.Config
}

func NewService(
	cfg *config.Config,
	anthropicIntegrator anthropic.AnthropicIntegrator,
	aggregator aggregating.Aggregator,
	ingestor ingesting.Ingestor,
) Analyzer {
	return &Service{
		anthropic:  anthropicIntegrator,
		aggregator: aggregator,
		ingestor:   ingestor,
		cache:      newResponseCache(cfg.Anthropic.CacheTTL()),
		cfg:        cfg,
	}
}

func (s *Service) Analyze(ctx context.Context, analysisType string) (string, error) {
	system, prompt, err := s.buildPrompt(ctx, analysisType)
	if err != nil {
		return "", err
	}

	key := cacheKey(s.cfg.Anthropic.Model, system, prompt)
	if response, ok := s.cache.get(key); ok {
		logrus.WithField("tipo", analysisType).Debug("Análise respondida do cache")
		return response, nil
	}

	response, err := s.anthropic.Complete(system, prompt)
	if err != nil {
		return "", fmt.Errorf("erro ao consultar o modelo: %w", err)
	}

	s.cache.set(key, response)

	return response, nil
}

func (s *Service) buildPrompt(ctx context.Context, analysisType string) (system, prompt string, err error) {
	switch analysisType {
	case AnalysisSales:
		return s.salesPrompt(ctx)
	case AnalysisBrands:
		return s.brandsPrompt(ctx)
	case AnalysisCategories:
		return s.categoriesPrompt(ctx)
	case AnalysisCustomers:
		return s.customersPrompt(ctx)
	}

	return "", "", fmt.Errorf("tipo de análise desconhecido: %s", analysisType)
}

func (s *Service) salesPrompt(ctx context.Context) (string, string, error) {
	summary, err := s.aggregator.SalesSummary(ctx)
	if err != nil {
		return "", "", err
	}

	system := `You are a retail analytics expert for cannabis dispensaries in San Francisco.
Analyze the provided sales data and provide actionable insights. Focus on:
1. Key observations about performance trends
2. Store-by-store comparisons
3. Areas of concern
4. Specific recommendations for improving sales and margins
5. Promotional strategies`

	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", "", err
	}

	prompt := fmt.Sprintf(`Analyze this sales data and provide insights:

%s

Provide a concise analysis with specific, actionable recommendations.`, encoded)

	return system, prompt, nil
}

func (s *Service) brandsPrompt(ctx context.Context) (string, string, error) {
	summary, err := s.aggregator.BrandSummary(ctx)
	if err != nil {
		return "", "", err
	}

	system := `You are a retail buying expert for cannabis dispensaries.
Analyze brand performance data and provide recommendations for:
1. Brands to increase orders for (high margin, growing)
2. Brands to consider discontinuing (low margin, declining)
3. Brands requiring margin investigation
4. Brand mix optimization strategies
5. Promotional candidates`

	topBrands, err := json.MarshalIndent(summary.TopBrands, "", "  ")
	if err != nil {
		return "", "", err
	}
	byCategory, err := json.MarshalIndent(summary.ByCategory, "", "  ")
	if err != nil {
		return "", "", err
	}

	prompt := fmt.Sprintf(`Analyze this brand performance data:

Top 50 Brands:
%s

Brands by Category:
%s

Provide specific recommendations for inventory and buying decisions.`, topBrands, byCategory)

	return system, prompt, nil
}

func (s *Service) categoriesPrompt(ctx context.Context) (string, string, error) {
	dataset, _, err := s.ingestor.GetDataset(ctx)
	if err != nil {
		return "", "", err
	}

	system := `You are a retail category manager for cannabis dispensaries.
Analyze category performance and provide recommendations for:
1. Best performing categories and why
2. Categories needing improvement
3. Cross-category opportunities
4. Space allocation recommendations`

	products, err := json.MarshalIndent(dataset.Products, "", "  ")
	if err != nil {
		return "", "", err
	}

	topBrands := dataset.Brands
	if len(topBrands) > 30 {
		topBrands = topBrands[:30]
	}
	brands, err := json.MarshalIndent(topBrands, "", "  ")
	if err != nil {
		return "", "", err
	}

	prompt := fmt.Sprintf(`Analyze this category performance data:

Category Performance:
%s

Top Brands by Category:
%s

Provide specific recommendations for category management.`, products, brands)

	return system, prompt, nil
}

func (s *Service) customersPrompt(ctx context.Context) (string, string, error) {
	summary, err := s.aggregator.CustomerSummary(ctx)
	if err != nil {
		return "", "", err
	}

	system := `You are a customer retention expert for cannabis retail.
Analyze customer data and provide recommendations for:
1. Customer retention strategies by segment
2. Acquisition opportunities
3. Re-engagement campaigns for lapsed customers
4. VIP program recommendations`

	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", "", err
	}

	prompt := fmt.Sprintf(`Analyze this customer data:

%s

Provide specific recommendations for customer retention and growth.`, encoded)

	return system, prompt, nil
}
