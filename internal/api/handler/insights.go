package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/retail-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

// GetSalesSummary retorna o resumo agregado de vendas por loja
func GetSalesSummary(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.SalesSummary(r.Context())
		if err != nil {
			logger.WithError(err).Error("insights: falha ao agregar o resumo de vendas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao calcular o resumo de vendas", nil)
			return
		}

		writeInsight(w, logger, summary)
	})
}

// GetBrandSummary retorna o desempenho por marca
func GetBrandSummary(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.BrandSummary(r.Context())
		if err != nil {
			logger.WithError(err).Error("insights: falha ao agregar o resumo de marcas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao calcular o resumo de marcas", nil)
			return
		}

		writeInsight(w, logger, summary)
	})
}

// GetCustomerSummary retorna a segmentação da base de clientes
func GetCustomerSummary(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.CustomerSummary(r.Context())
		if err != nil {
			logger.WithError(err).Error("insights: falha ao agregar o resumo de clientes")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao calcular o resumo de clientes", nil)
			return
		}

		writeInsight(w, logger, summary)
	})
}

// GetBudtenderRanking retorna o ranking de atendentes por vendas
func GetBudtenderRanking(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ranking, err := service.BudtenderRanking(r.Context())
		if err != nil {
			logger.WithError(err).Error("insights: falha ao calcular o ranking de atendentes")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao calcular o ranking de atendentes", nil)
			return
		}

		writeInsight(w, logger, ranking)
	})
}

// GetInvoiceSummary retorna o resumo de compras por tipo de produto
func GetInvoiceSummary(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.InvoiceSummary(r.Context())
		if err != nil {
			logger.WithError(err).Error("insights: falha ao agregar o resumo de notas fiscais")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao calcular o resumo de notas fiscais", nil)
			return
		}

		writeInsight(w, logger, summary)
	})
}

func writeInsight(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("insights: falha ao codificar a resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
