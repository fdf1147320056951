package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	ingestingmocks "github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting/mocks"
	invoicingmocks "github.com/vfg2006/retail-analytics-api/internal/usecases/invoicing/mocks"
	"github.com/vfg2006/retail-analytics-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newHandlerTestWarmer(ingestor *ingestingmocks.MockIngestor, invoicer *invoicingmocks.MockInvoicer) *scheduler.CacheWarmerService {
	cfg := &config.Config{
		CacheWarmer: config.CacheWarmer{
			DatasetCron: "*/5 * * * *",
			InvoiceCron: "*/30 * * * *",
			Enabled:     true,
		},
	}

	return scheduler.NewCacheWarmerService(cfg, ingestor, invoicer)
}

func withClaims(req *http.Request, claims *domain.Claims) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, claims)
	return req.WithContext(ctx)
}

func TestRunCronJob(t *testing.T) {
	t.Run("Administrador dispara o aquecimento do dataset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := ingestingmocks.NewMockIngestor(ctrl)
		invoicer := invoicingmocks.NewMockInvoicer(ctrl)
		warmer := newHandlerTestWarmer(ingestor, invoicer)

		done := make(chan struct{})
		ingestor.EXPECT().RefreshDataset(gomock.Any()).
			DoAndReturn(func(any) (*domain.Dataset, error) {
				close(done)
				return &domain.Dataset{}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/cron/dataset/run", nil)
		req = withClaims(req, &domain.Claims{UserID: 1, UserRoleID: 1})
		req = withRouteParams(req, httprouter.Params{{Key: "type", Value: "dataset"}})
		rec := httptest.NewRecorder()

		RunCronJob(warmer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "dataset", response["type"])

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("aquecimento manual não executou")
		}
	})

	t.Run("Usuário sem privilégio de administrador recebe 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		warmer := newHandlerTestWarmer(ingestingmocks.NewMockIngestor(ctrl), invoicingmocks.NewMockInvoicer(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/cron/dataset/run", nil)
		req = withClaims(req, &domain.Claims{UserID: 2, UserRoleID: 3})
		req = withRouteParams(req, httprouter.Params{{Key: "type", Value: "dataset"}})
		rec := httptest.NewRecorder()

		RunCronJob(warmer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Tipo de aquecimento desconhecido responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		warmer := newHandlerTestWarmer(ingestingmocks.NewMockIngestor(ctrl), invoicingmocks.NewMockInvoicer(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/cron/seo/run", nil)
		req = withClaims(req, &domain.Claims{UserID: 1, UserRoleID: 1})
		req = withRouteParams(req, httprouter.Params{{Key: "type", Value: "seo"}})
		rec := httptest.NewRecorder()

		RunCronJob(warmer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetCronStatus(t *testing.T) {
	t.Run("Status do agendador é retornado para administradores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		warmer := newHandlerTestWarmer(ingestingmocks.NewMockIngestor(ctrl), invoicingmocks.NewMockInvoicer(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req = withClaims(req, &domain.Claims{UserID: 1, UserRoleID: 1})
		rec := httptest.NewRecorder()

		GetCronStatus(warmer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

		status, ok := response["cache_warmer"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, true, status["enabled"])
	})

	t.Run("Usuário comum recebe 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		warmer := newHandlerTestWarmer(ingestingmocks.NewMockIngestor(ctrl), invoicingmocks.NewMockInvoicer(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req = withClaims(req, &domain.Claims{UserID: 2, UserRoleID: 3})
		rec := httptest.NewRecorder()

		GetCronStatus(warmer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
