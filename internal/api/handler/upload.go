package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/log"
)

// Limite de tamanho do CSV enviado por upload
const maxUploadBytes = 25 << 20

// UploadData recebe um CSV via multipart e grava no bucket de dados brutos.
// O tipo de dado vem da URL; loja e intervalo de datas vêm do formulário.
func UploadData(service ingesting.Ingestor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dataType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if !ingesting.ValidUploadType(dataType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de upload inválido. Valores aceitos: sales, brand, product, customers", nil)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			logger.WithError(err).Warn("upload: falha ao interpretar o formulário multipart")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido ou arquivo grande demais", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não enviado no campo 'file'", nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logger.WithError(err).Error("upload: falha ao ler o arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
			return
		}

		storeID := domain.StoreID(r.FormValue("store"))
		if storeID == "" {
			storeID = domain.StoreCombined
		}
		if !domain.ValidStoreID(storeID) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidStore, "Loja desconhecida", map[string]any{
				"store": storeID,
			})
			return
		}

		result, err := service.UploadCSV(ingesting.UploadParams{
			StoreID:   storeID,
			DataType:  dataType,
			StartDate: r.FormValue("start_date"),
			EndDate:   r.FormValue("end_date"),
			Filename:  header.Filename,
			Content:   content,
		})
		if err != nil {
			if errors.Is(err, ingesting.ErrNoRecords) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O arquivo não contém linhas de CSV interpretáveis", nil)
				return
			}

			logger.WithFields(log.Fields{
				"data_type": dataType,
				"store":     storeID,
				"filename":  header.Filename,
				"error":     err.Error(),
			}).Error("upload: falha ao gravar o arquivo no bucket")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gravar o arquivo no bucket", nil)
			return
		}

		logger.WithFields(log.Fields{
			"data_type": dataType,
			"store":     storeID,
			"key":       result.Key,
			"aceitas":   result.AcceptedRecords,
			"size":      len(content),
		}).Info("upload: arquivo recebido e gravado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message":          "Arquivo enviado com sucesso",
			"key":              result.Key,
			"type":             dataType,
			"store":            storeID,
			"accepted_records": result.AcceptedRecords,
		})
	})
}
