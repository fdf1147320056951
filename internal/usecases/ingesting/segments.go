package ingesting

import (
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

// Segmenter classifica clientes por valor vitalício e por recência usando
// tabelas de faixas ordenadas vindas da configuração. Toda entrada recebe
// exatamente um segmento: as faixas cobrem o domínio inteiro e a última é
// aberta (Max zero).
type Segmenter struct {
	spending []domain.SegmentRange
	recency  []domain.SegmentRange
}

func NewSegmenter(cfg config.Segments) *Segmenter {
	return &Segmenter{
		spending: cfg.Spending,
		recency:  cfg.Recency,
	}
}

// SpendingSegment retorna o segmento de valor para o gasto vitalício. O
// limite superior de cada faixa é exclusivo.
func (s *Segmenter) SpendingSegment(lifetimeNetSales float64) string {
	return segmentFor(s.spending, lifetimeNetSales, domain.SegmentNewLow)
}

// RecencySegment retorna o segmento de recência para a quantidade de dias
// desde a última visita
func (s *Segmenter) RecencySegment(daysSinceVisit float64) string {
	return segmentFor(s.recency, daysSinceVisit, domain.RecencyLost)
}

func segmentFor(ranges []domain.SegmentRange, value float64, fallback string) string {
	for _, r := range ranges {
		if value >= r.Min && (r.Max <= 0 || value < r.Max) {
			return r.Label
		}
	}
	return fallback
}
