package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/tracking"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

type CreateQRCodeRequest struct {
	Name      string         `json:"name"`
	TargetURL string         `json:"target_url"`
	StoreID   domain.StoreID `json:"store_id,omitempty"`
}

// CreateQRCode cria um QR code rastreável com código curto
func CreateQRCode(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CreateQRCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		qrCode, err := service.CreateQRCode(r.Context(), tracking.CreateParams{
			Name:      req.Name,
			TargetURL: req.TargetURL,
			StoreID:   req.StoreID,
		})
		if err != nil {
			if errors.Is(err, tracking.ErrInvalidTarget) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "URL de destino inválida", nil)
				return
			}

			logger.WithError(err).Error("qrcodes: falha ao criar o QR code")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao criar o QR code", nil)
			return
		}

		logger.WithFields(log.Fields{
			"short_code": qrCode.ShortCode,
			"target_url": qrCode.TargetURL,
		}).Info("qrcodes: QR code criado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(qrCode)
	})
}

// ListQRCodes lista os QR codes cadastrados. Apagados entram apenas com
// include_deleted=true na query string.
func ListQRCodes(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		includeDeleted := r.URL.Query().Get("include_deleted") == "true"

		codes, err := service.ListQRCodes(r.Context(), includeDeleted)
		if err != nil {
			logger.WithError(err).Error("qrcodes: falha ao listar os QR codes")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar os QR codes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"qrcodes": codes,
			"count":   len(codes),
		}); err != nil {
			logger.WithError(err).Error("qrcodes: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetQRCodeAnalytics retorna o resumo de acessos de um QR code
func GetQRCodeAnalytics(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		shortCode := httprouter.ParamsFromContext(r.Context()).ByName("code")

		analytics, err := service.Analytics(r.Context(), shortCode)
		if err != nil {
			if errors.Is(err, tracking.ErrQRCodeNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "QR code não encontrado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"short_code": shortCode,
				"error":      err.Error(),
			}).Error("qrcodes: falha ao consultar os acessos")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar os acessos do QR code", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(analytics)
	})
}

// RedirectQRCode resolve o código curto e redireciona para a URL de destino,
// registrando o clique. Rota pública, usada pelo QR code impresso.
func RedirectQRCode(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		shortCode := httprouter.ParamsFromContext(r.Context()).ByName("code")

		target, err := service.ResolveAndTrack(r.Context(), shortCode, tracking.ClickInfo{
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
			Referer:   r.Referer(),
		})
		if err != nil {
			if errors.Is(err, tracking.ErrQRCodeNotFound) {
				http.NotFound(w, r)
				return
			}

			logger.WithFields(log.Fields{
				"short_code": shortCode,
				"error":      err.Error(),
			}).Error("qrcodes: falha ao resolver o código curto")

			http.Error(w, "Erro ao resolver o código", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, target, http.StatusFound)
	})
}

// DeleteQRCode apaga logicamente um QR code
func DeleteQRCode(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		shortCode := httprouter.ParamsFromContext(r.Context()).ByName("code")

		if err := service.DeleteQRCode(r.Context(), shortCode); err != nil {
			if errors.Is(err, tracking.ErrQRCodeNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "QR code não encontrado", nil)
				return
			}

			logger.WithError(err).Error("qrcodes: falha ao apagar o QR code")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao apagar o QR code", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message":    "QR code apagado com sucesso",
			"short_code": shortCode,
		})
	})
}

// RestoreQRCode reativa um QR code apagado logicamente
func RestoreQRCode(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		shortCode := httprouter.ParamsFromContext(r.Context()).ByName("code")

		if err := service.RestoreQRCode(r.Context(), shortCode); err != nil {
			if errors.Is(err, tracking.ErrQRCodeNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "QR code não encontrado", nil)
				return
			}

			logger.WithError(err).Error("qrcodes: falha ao restaurar o QR code")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao restaurar o QR code", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message":    "QR code restaurado com sucesso",
			"short_code": shortCode,
		})
	})
}

// clientIP extrai o IP do cliente, respeitando o X-Forwarded-For quando a
// requisição passa por proxy
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
