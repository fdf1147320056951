package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/retail-analytics-api/internal/usecases/invoicing"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

// GetInvoiceLineItems retorna todos os itens de nota fiscal da tabela remota
func GetInvoiceLineItems(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		items, cached, err := service.GetLineItems(r.Context())
		if err != nil {
			logger.WithError(err).Error("invoices: falha ao carregar os itens de nota fiscal")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao carregar as notas fiscais", nil)
			return
		}

		logger.WithFields(log.Fields{
			"count":  len(items),
			"cached": cached,
		}).Info("invoices: itens de nota fiscal entregues")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"items":  items,
			"count":  len(items),
			"cached": cached,
		}); err != nil {
			logger.WithError(err).Error("invoices: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
