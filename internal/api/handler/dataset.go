package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

// DatasetResponse é o payload completo do dataset normalizado, com a flag
// indicando se a resposta veio do cache
type DatasetResponse struct {
	Sales       any    `json:"sales"`
	Brands      any    `json:"brands"`
	Products    any    `json:"products"`
	Customers   any    `json:"customers"`
	Budtenders  any    `json:"budtenders"`
	Mappings    any    `json:"mappings"`
	Fingerprint string `json:"fingerprint"`
	LoadedAt    string `json:"loaded_at"`
	Cached      bool   `json:"cached"`
}

// GetDataset retorna o dataset completo de vendas normalizado
func GetDataset(service ingesting.Ingestor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dataset, cached, err := service.GetDataset(r.Context())
		if err != nil {
			logger.WithError(err).Error("dataset: falha ao carregar o dataset")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao carregar os dados de vendas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sales":       len(dataset.Sales),
			"customers":   len(dataset.Customers),
			"fingerprint": dataset.Fingerprint,
			"cached":      cached,
		}).Info("dataset: dataset entregue")

		response := DatasetResponse{
			Sales:       dataset.Sales,
			Brands:      dataset.Brands,
			Products:    dataset.Products,
			Customers:   dataset.Customers,
			Budtenders:  dataset.Budtenders,
			Mappings:    dataset.Mappings,
			Fingerprint: dataset.Fingerprint,
			LoadedAt:    dataset.LoadedAt.Format("2006-01-02T15:04:05Z07:00"),
			Cached:      cached,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dataset: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// RefreshDataset força a recarga do dataset, ignorando o cache
func RefreshDataset(service ingesting.Ingestor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dataset: recarga manual solicitada")

		dataset, err := service.RefreshDataset(r.Context())
		if err != nil {
			logger.WithError(err).Error("dataset: falha na recarga manual")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao recarregar os dados de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":     "Dataset recarregado com sucesso",
			"fingerprint": dataset.Fingerprint,
			"sales":       len(dataset.Sales),
			"brands":      len(dataset.Brands),
			"products":    len(dataset.Products),
			"customers":   len(dataset.Customers),
			"budtenders":  len(dataset.Budtenders),
		})
	})
}
