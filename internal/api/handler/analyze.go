package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

type AnalyzeRequest struct {
	Type string `json:"type"`
}

// Analyze gera uma análise em linguagem natural sobre os agregados do dataset
func Analyze(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Type == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de análise não especificado", nil)
			return
		}

		logger.WithField("analysis_type", req.Type).Info("analyze: análise solicitada")

		analysis, err := service.Analyze(r.Context(), req.Type)
		if err != nil {
			if strings.Contains(err.Error(), "tipo de análise desconhecido") {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de análise inválido. Valores aceitos: sales, brands, categories, customers", nil)
				return
			}

			logger.WithFields(log.Fields{
				"analysis_type": req.Type,
				"error":         err.Error(),
			}).Error("analyze: falha ao gerar a análise")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar a análise", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"type":     req.Type,
			"analysis": analysis,
		}); err != nil {
			logger.WithError(err).Error("analyze: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
