package ingesting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	storagedomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/domain"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/mocks"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func newTestService(objectStore *mocks.MockObjectStoreIntegrator) *Service {
	cfg := &config.Config{
		ObjectStore:  config.ObjectStore{Prefix: "raw-uploads/"},
		DatasetCache: config.DatasetCache{TTLMinutes: 5},
		Segments:     config.DefaultSegments(),
	}

	service := &Service{
		objectStore: objectStore,
		cleaner:     NewCleaner(NewSegmenter(cfg.Segments)),
		cache:       cache.New[*domain.Dataset](cfg.DatasetCache.TTL()),
		cfg:         cfg,
		now: func() time.Time {
			return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		},
	}
	service.cleaner.now = service.now

	return service
}

func TestService_GetDataset(t *testing.T) {
	salesCSV := []byte("Date,Store,Net Sales,Customers Count,Gross Margin %\n" +
		"01/15/2024,Grass Roots,\"$1,250.00\",12,62.5\n" +
		"01/16/2024,Grass Roots,800,3,60\n")

	brandCSV := []byte("Brand,Net Sales,Gross Margin %\n" +
		"Stiiizy,5000,55\n" +
		"Stiiizy [DS],100,55\n")

	customersCSV := []byte("Customer ID,Name,Lifetime Net Sales,Last Visit Date\n" +
		"CUST-1,Maria Silva,6500,2024-05-20\n")

	objects := []storagedomain.ObjectInfo{
		{Key: "raw-uploads/grass_roots/sales_20240101-20240131_a.csv", ETag: "e1"},
		{Key: "raw-uploads/grass_roots/brand_20240101-20240131_b.csv", ETag: "e2"},
		{Key: "raw-uploads/combined/customers_20240101-20240131_c.csv", ETag: "e3"},
	}

	t.Run("Carga completa limpa, valida e agrega cada tipo de arquivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		objectStore := mocks.NewMockObjectStoreIntegrator(ctrl)
		service := newTestService(objectStore)

		objectStore.EXPECT().ListAllObjects("raw-uploads/").Return(objects, nil).Times(2)
		objectStore.EXPECT().GetObject(objects[0].Key).Return(salesCSV, nil)
		objectStore.EXPECT().GetObject(objects[1].Key).Return(brandCSV, nil)
		objectStore.EXPECT().GetObject(objects[2].Key).Return(customersCSV, nil)
		objectStore.EXPECT().GetObject(budtenderDataKey).Return(nil, errors.New("not found"))
		objectStore.EXPECT().GetObject(brandMappingKey).Return([]byte(`{"Stiiizy": "Vape"}`), nil)

		dataset, fromCache, err := service.GetDataset(context.Background())

		assert.NoError(t, err)
		assert.False(t, fromCache)

		// A linha com 3 clientes foi rejeitada
		assert.Len(t, dataset.Sales, 1)
		assert.Equal(t, "2024-01-15", dataset.Sales[0].Date)
		assert.Equal(t, domain.StoreGrassRoots, dataset.Sales[0].StoreID)
		assert.Equal(t, 1250.0, dataset.Sales[0].NetSales)

		// A marca de amostra foi rejeitada; o intervalo veio do nome do arquivo
		assert.Len(t, dataset.Brands, 1)
		assert.Equal(t, "Stiiizy", dataset.Brands[0].Brand)
		assert.Equal(t, "2024-01-01", dataset.Brands[0].UploadStartDate)

		assert.Len(t, dataset.Customers, 1)
		assert.Equal(t, domain.SegmentVIP, dataset.Customers[0].CustomerSegment)

		assert.Len(t, dataset.Mappings, 1)
		assert.NotEmpty(t, dataset.Fingerprint)
	})

	t.Run("Segunda leitura com bucket inalterado vem do cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		objectStore := mocks.NewMockObjectStoreIntegrator(ctrl)
		service := newTestService(objectStore)

		objectStore.EXPECT().ListAllObjects("raw-uploads/").Return(objects, nil).Times(3)
		objectStore.EXPECT().GetObject(objects[0].Key).Return(salesCSV, nil)
		objectStore.EXPECT().GetObject(objects[1].Key).Return(brandCSV, nil)
		objectStore.EXPECT().GetObject(objects[2].Key).Return(customersCSV, nil)
		objectStore.EXPECT().GetObject(budtenderDataKey).Return(nil, errors.New("not found"))
		objectStore.EXPECT().GetObject(brandMappingKey).Return(nil, errors.New("not found"))

		first, fromCache, err := service.GetDataset(context.Background())
		assert.NoError(t, err)
		assert.False(t, fromCache)

		second, fromCache, err := service.GetDataset(context.Background())
		assert.NoError(t, err)
		assert.True(t, fromCache)
		assert.Same(t, first, second)
	})

	t.Run("Bucket alterado invalida o cache e recarrega", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		objectStore := mocks.NewMockObjectStoreIntegrator(ctrl)
		service := newTestService(objectStore)

		salesOnly := []storagedomain.ObjectInfo{
			{Key: "raw-uploads/grass_roots/sales_20240101-20240131_a.csv", ETag: "e1"},
		}
		changed := []storagedomain.ObjectInfo{
			{Key: "raw-uploads/grass_roots/sales_20240101-20240131_a.csv", ETag: "e9"},
		}

		gomock.InOrder(
			objectStore.EXPECT().ListAllObjects("raw-uploads/").Return(salesOnly, nil).Times(2),
			objectStore.EXPECT().ListAllObjects("raw-uploads/").Return(changed, nil).Times(2),
		)
		objectStore.EXPECT().GetObject(salesOnly[0].Key).Return(salesCSV, nil).Times(2)
		objectStore.EXPECT().GetObject(budtenderDataKey).Return(nil, errors.New("not found")).Times(2)
		objectStore.EXPECT().GetObject(brandMappingKey).Return(nil, errors.New("not found")).Times(2)

		_, fromCache, err := service.GetDataset(context.Background())
		assert.NoError(t, err)
		assert.False(t, fromCache)

		_, fromCache, err = service.GetDataset(context.Background())
		assert.NoError(t, err)
		assert.False(t, fromCache)
	})

	t.Run("Falha em um arquivo não derruba a carga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		objectStore := mocks.NewMockObjectStoreIntegrator(ctrl)
		service := newTestService(objectStore)

		objectStore.EXPECT().ListAllObjects("raw-uploads/").Return(objects, nil).Times(2)
		objectStore.EXPECT().GetObject(objects[0].Key).Return(nil, errors.New("timeout"))
		objectStore.EXPECT().GetObject(objects[1].Key).Return(brandCSV, nil)
		objectStore.EXPECT().GetObject(objects[2].Key).Return(customersCSV, nil)
		objectStore.EXPECT().GetObject(budtenderDataKey).Return(nil, errors.New("not found"))
		objectStore.EXPECT().GetObject(brandMappingKey).Return(nil, errors.New("not found"))

		dataset, _, err := service.GetDataset(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, dataset.Sales)
		assert.Len(t, dataset.Brands, 1)
	})

	t.Run("Falha na listagem sem cache anterior retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		objectStore := mocks.NewMockObjectStoreIntegrator(ctrl)
		service := newTestService(objectStore)

		objectStore.EXPECT().ListAllObjects("raw-uploads/").
			Return(nil, errors.New("bucket indisponível")).Times(2)

		_, _, err := service.GetDataset(context.Background())

		assert.Error(t, err)
	})
}

func TestService_DedupLastWriteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	objectStore := mocks.NewMockObjectStoreIntegrator(ctrl)
	service := newTestService(objectStore)

	// Dois uploads cobrem o mesmo dia da mesma loja com valores diferentes
	older := []byte("Date,Store,Net Sales,Customers Count\n" +
		"2024-01-15,Grass Roots,1000,10\n")
	newer := []byte("Date,Store,Net Sales,Customers Count\n" +
		"2024-01-15,Grass Roots,1500,12\n" +
		"2024-01-14,Grass Roots,900,8\n")

	objects := []storagedomain.ObjectInfo{
		{Key: "raw-uploads/grass_roots/sales_20240101-20240131_old.csv", ETag: "e1"},
		{Key: "raw-uploads/grass_roots/sales_20240101-20240131_new.csv", ETag: "e2"},
	}

	objectStore.EXPECT().ListAllObjects("raw-uploads/").Return(objects, nil).Times(2)
	objectStore.EXPECT().GetObject(objects[0].Key).Return(older, nil)
	objectStore.EXPECT().GetObject(objects[1].Key).Return(newer, nil)
	objectStore.EXPECT().GetObject(budtenderDataKey).Return(nil, errors.New("not found"))
	objectStore.EXPECT().GetObject(brandMappingKey).Return(nil, errors.New("not found"))

	dataset, _, err := service.GetDataset(context.Background())

	assert.NoError(t, err)
	assert.Len(t, dataset.Sales, 2)

	// Ordenado por data crescente e com o registro mais recente vencendo
	assert.Equal(t, "2024-01-14", dataset.Sales[0].Date)
	assert.Equal(t, "2024-01-15", dataset.Sales[1].Date)
	assert.Equal(t, 1500.0, dataset.Sales[1].NetSales)
}

func TestService_CurrentFingerprint(t *testing.T) {
	t.Run("Falha na listagem gera valor baseado no relógio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		objectStore := mocks.NewMockObjectStoreIntegrator(ctrl)
		service := newTestService(objectStore)

		objectStore.EXPECT().ListAllObjects("raw-uploads/").
			Return(nil, errors.New("bucket indisponível"))

		got := service.CurrentFingerprint()

		assert.Equal(t, "1717243200000", got)
	})
}
