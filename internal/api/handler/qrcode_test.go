package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/tracking"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/tracking/mocks"
	"go.uber.org/mock/gomock"
)

// withRouteParams injeta parâmetros de rota no contexto, como o httprouter
// faria em uma requisição real
func withRouteParams(req *http.Request, params httprouter.Params) *http.Request {
	ctx := context.WithValue(req.Context(), httprouter.ParamsKey, params)
	return req.WithContext(ctx)
}

func TestCreateQRCode(t *testing.T) {
	t.Run("Criação responde 201 com o código gerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tracker := mocks.NewMockTracker(ctrl)
		tracker.EXPECT().
			CreateQRCode(gomock.Any(), tracking.CreateParams{
				Name:      "Promo Junho",
				TargetURL: "https://example.com/promo",
				StoreID:   domain.StoreGrassRoots,
			}).
			Return(&domain.QRCode{ShortCode: "abc12345", Name: "Promo Junho"}, nil)

		body := `{"name":"Promo Junho","target_url":"https://example.com/promo","store_id":"grass_roots"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/qrcodes", strings.NewReader(body))
		rec := httptest.NewRecorder()

		CreateQRCode(tracker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var qrCode domain.QRCode
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qrCode))
		assert.Equal(t, "abc12345", qrCode.ShortCode)
	})

	t.Run("URL inválida responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tracker := mocks.NewMockTracker(ctrl)
		tracker.EXPECT().
			CreateQRCode(gomock.Any(), gomock.Any()).
			Return(nil, tracking.ErrInvalidTarget)

		body := `{"name":"Promo","target_url":"example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/qrcodes", strings.NewReader(body))
		rec := httptest.NewRecorder()

		CreateQRCode(tracker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRedirectQRCode(t *testing.T) {
	t.Run("Código conhecido redireciona com 302", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tracker := mocks.NewMockTracker(ctrl)
		tracker.EXPECT().
			ResolveAndTrack(gomock.Any(), "abc12345", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, click tracking.ClickInfo) (string, error) {
				assert.Equal(t, "10.0.0.1", click.IPAddress)
				return "https://example.com/promo", nil
			})

		req := httptest.NewRequest(http.MethodGet, "/r/abc12345", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
		req = withRouteParams(req, httprouter.Params{{Key: "code", Value: "abc12345"}})
		rec := httptest.NewRecorder()

		RedirectQRCode(tracker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://example.com/promo", rec.Header().Get("Location"))
	})

	t.Run("Código desconhecido responde 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tracker := mocks.NewMockTracker(ctrl)
		tracker.EXPECT().
			ResolveAndTrack(gomock.Any(), "zzz", gomock.Any()).
			Return("", tracking.ErrQRCodeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/r/zzz", nil)
		req = withRouteParams(req, httprouter.Params{{Key: "code", Value: "zzz"}})
		rec := httptest.NewRecorder()

		RedirectQRCode(tracker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetQRCodeAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mocks.NewMockTracker(ctrl)
	tracker.EXPECT().
		Analytics(gomock.Any(), "abc12345").
		Return(&domain.QRAnalytics{
			ShortCode:      "abc12345",
			TotalClicks:    3,
			UniqueVisitors: 2,
			ClicksByDay:    map[string]int{"2024-06-01": 2, "2024-06-02": 1},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/qrcodes/abc12345/analytics", nil)
	req = withRouteParams(req, httprouter.Params{{Key: "code", Value: "abc12345"}})
	rec := httptest.NewRecorder()

	GetQRCodeAnalytics(tracker).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var analytics domain.QRAnalytics
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analytics))
	assert.Equal(t, 3, analytics.TotalClicks)
	assert.Equal(t, 2, analytics.UniqueVisitors)
}

func TestListQRCodes(t *testing.T) {
	t.Run("Listagem repassa a flag de apagados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tracker := mocks.NewMockTracker(ctrl)
		tracker.EXPECT().
			ListQRCodes(gomock.Any(), true).
			Return([]*domain.QRCode{{ShortCode: "abc12345"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/qrcodes?include_deleted=true", nil)
		rec := httptest.NewRecorder()

		ListQRCodes(tracker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, float64(1), response["count"])
	})
}

func TestDeleteQRCode(t *testing.T) {
	t.Run("Código inexistente responde 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tracker := mocks.NewMockTracker(ctrl)
		tracker.EXPECT().
			DeleteQRCode(gomock.Any(), "zzz").
			Return(tracking.ErrQRCodeNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/qrcodes/zzz", nil)
		req = withRouteParams(req, httprouter.Params{{Key: "code", Value: "zzz"}})
		rec := httptest.NewRecorder()

		DeleteQRCode(tracker).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
