package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/middleware"
)

// RunCronJob dispara manualmente um dos aquecimentos de cache agendados
func RunCronJob(warmer *scheduler.CacheWarmerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		warmupType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if warmupType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if warmer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de pré-aquecimento não disponível", nil)
			return
		}

		if err := warmer.TriggerManualSync(warmupType); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset, invoices", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    warmupType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status do agendador de pré-aquecimento
func GetCronStatus(warmer *scheduler.CacheWarmerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"cache_warmer": warmer.GetStatus(),
		})
	}
}
