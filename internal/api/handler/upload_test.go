package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func multipartUpload(t *testing.T, fields map[string]string, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}

	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)

	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadData(t *testing.T) {
	t.Run("Upload válido grava o arquivo e responde 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := mocks.NewMockIngestor(ctrl)
		ingestor.EXPECT().
			UploadCSV(gomock.Any()).
			DoAndReturn(func(params ingesting.UploadParams) (*ingesting.UploadResult, error) {
				assert.Equal(t, "sales", params.DataType)
				assert.Equal(t, domain.StoreGrassRoots, params.StoreID)
				assert.Equal(t, "2024-01-01", params.StartDate)
				assert.Equal(t, "2024-01-31", params.EndDate)
				assert.Equal(t, "vendas.csv", params.Filename)
				assert.Contains(t, string(params.Content), "Net Sales")
				return &ingesting.UploadResult{
					Key:             "raw-uploads/grass_roots/sales_x.csv",
					AcceptedRecords: 1,
				}, nil
			})

		body, contentType := multipartUpload(t, map[string]string{
			"store":      "grass_roots",
			"start_date": "2024-01-01",
			"end_date":   "2024-01-31",
		}, "vendas.csv", "Date,Store,Net Sales\n2024-01-15,Grass Roots,1250")

		req := httptest.NewRequest(http.MethodPost, "/v1/data/sales/upload", body)
		req.Header.Set("Content-Type", contentType)
		req = withRouteParams(req, httprouter.Params{{Key: "type", Value: "sales"}})
		rec := httptest.NewRecorder()

		UploadData(ingestor).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "raw-uploads/grass_roots/sales_x.csv")
		assert.Contains(t, rec.Body.String(), `"accepted_records":1`)
	})

	t.Run("Conteúdo sem linha interpretável responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := mocks.NewMockIngestor(ctrl)
		ingestor.EXPECT().
			UploadCSV(gomock.Any()).
			Return(nil, ingesting.ErrNoRecords)

		body, contentType := multipartUpload(t, map[string]string{
			"store": "grass_roots",
		}, "vendas.csv", "isto nao e um csv")

		req := httptest.NewRequest(http.MethodPost, "/v1/data/sales/upload", body)
		req.Header.Set("Content-Type", contentType)
		req = withRouteParams(req, httprouter.Params{{Key: "type", Value: "sales"}})
		rec := httptest.NewRecorder()

		UploadData(ingestor).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "não contém linhas de CSV interpretáveis")
	})

	t.Run("Tipo desconhecido responde 400 sem tocar no bucket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := mocks.NewMockIngestor(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/data/seo/upload", nil)
		req = withRouteParams(req, httprouter.Params{{Key: "type", Value: "seo"}})
		rec := httptest.NewRecorder()

		UploadData(ingestor).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Requisição sem arquivo responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := mocks.NewMockIngestor(ctrl)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		assert.NoError(t, writer.WriteField("store", "grass_roots"))
		assert.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/data/sales/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req = withRouteParams(req, httprouter.Params{{Key: "type", Value: "sales"}})
		rec := httptest.NewRecorder()

		UploadData(ingestor).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Loja desconhecida responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := mocks.NewMockIngestor(ctrl)

		body, contentType := multipartUpload(t, map[string]string{
			"store": "loja_fantasma",
		}, "vendas.csv", "Date,Store\n2024-01-15,X")

		req := httptest.NewRequest(http.MethodPost, "/v1/data/sales/upload", body)
		req.Header.Set("Content-Type", contentType)
		req = withRouteParams(req, httprouter.Params{{Key: "type", Value: "sales"}})
		rec := httptest.NewRecorder()

		UploadData(ingestor).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
