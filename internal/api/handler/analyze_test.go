package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestAnalyze(t *testing.T) {
	t.Run("Análise válida retorna o texto do modelo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := mocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().
			Analyze(gomock.Any(), analyzing.AnalysisSales).
			Return("As vendas cresceram no período.", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ai/analyze", strings.NewReader(`{"type":"sales"}`))
		rec := httptest.NewRecorder()

		Analyze(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "sales", response["type"])
		assert.Equal(t, "As vendas cresceram no período.", response["analysis"])
	})

	t.Run("Tipo desconhecido responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := mocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().
			Analyze(gomock.Any(), "seo").
			Return("", errors.New("tipo de análise desconhecido: seo"))

		req := httptest.NewRequest(http.MethodPost, "/v1/ai/analyze", strings.NewReader(`{"type":"seo"}`))
		rec := httptest.NewRecorder()

		Analyze(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Tipo ausente responde 400 sem consultar o modelo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := mocks.NewMockAnalyzer(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/ai/analyze", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		Analyze(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Falha no modelo responde 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := mocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().
			Analyze(gomock.Any(), analyzing.AnalysisBrands).
			Return("", errors.New("modelo indisponível"))

		req := httptest.NewRequest(http.MethodPost, "/v1/ai/analyze", strings.NewReader(`{"type":"brands"}`))
		rec := httptest.NewRecorder()

		Analyze(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
