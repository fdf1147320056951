package ingesting

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore"
	storagedomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/domain"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/cache"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Chaves fixas no bucket, fora do prefixo de uploads
const (
	brandMappingKey  = "config/brand_product_mapping.json"
	budtenderDataKey = "data/budtender_performance.csv"
)

type Ingestor interface {
	GetDataset(ctx context.Context) (*domain.Dataset, bool, error)
	RefreshDataset(ctx context.Context) (*domain.Dataset, error)
	CurrentFingerprint() string
	UploadCSV(params UploadParams) (*UploadResult, error)
}

type Service struct {
	objectStore objectstore.ObjectStoreIntegrator
	cleaner     *Cleaner
	cache       *cache.Slot[*domain.Dataset]
	cfg         *config.Config
	now         func() time.Time
}

func NewService(cfg *config.Config, objectStore objectstore.ObjectStoreIntegrator) Ingestor {
	return &Service{
		objectStore: objectStore,
		cleaner:     NewCleaner(NewSegmenter(cfg.Segments)),
		cache:       cache.New[*domain.Dataset](cfg.DatasetCache.TTL()),
		cfg:         cfg,
		now:         time.Now,
	}
}

// GetDataset retorna o dataset completo, do cache quando os arquivos do
// bucket não mudaram e o TTL não venceu. O booleano indica se a resposta
// veio do cache.
func (s *Service) GetDataset(ctx context.Context) (*domain.Dataset, bool, error) {
	fingerprint := s.CurrentFingerprint()

	if dataset, ok := s.cache.Get(fingerprint); ok {
		return dataset, true, nil
	}

	dataset, err := s.cache.GetOrLoad(ctx, fingerprint, func(_ context.Context) (*domain.Dataset, string, error) {
		dataset, err := s.loadAll(fingerprint)
		if err != nil {
			return nil, "", err
		}
		return dataset, fingerprint, nil
	})
	if err != nil {
		return nil, false, err
	}

	return dataset, false, nil
}

// RefreshDataset descarta o cache e recarrega tudo do bucket
func (s *Service) RefreshDataset(ctx context.Context) (*domain.Dataset, error) {
	s.cache.Invalidate()

	dataset, _, err := s.GetDataset(ctx)
	return dataset, err
}

// CurrentFingerprint calcula o fingerprint atual dos arquivos do bucket.
// Quando a listagem falha, devolve um valor baseado no relógio para que o
// cache expire naturalmente em vez de travar no último valor bom.
func (s *Service) CurrentFingerprint() string {
	objects, err := s.objectStore.ListAllObjects(s.cfg.ObjectStore.Prefix)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar arquivos do bucket para o fingerprint")
		return strconv.FormatInt(s.now().UnixMilli(), 10)
	}

	return ComputeFingerprint(objects)
}

// loadAll executa a passada completa de ingestão: descobre os arquivos no
// bucket, baixa e limpa cada um, agrega os registros, deduplica e ordena.
// Os downloads acontecem em paralelo; a limpeza segue a ordem de descoberta
// para manter a política de deduplicação determinística. Falha em um arquivo
// individual é registrada e não derruba a carga.
func (s *Service) loadAll(fingerprint string) (*domain.Dataset, error) {
	objects, err := s.objectStore.ListAllObjects(s.cfg.ObjectStore.Prefix)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar arquivos do bucket: %w", err)
	}

	logrus.WithField("arquivos", len(objects)).Info("Iniciando carga completa do dataset")

	dataset := &domain.Dataset{
		Fingerprint: fingerprint,
		LoadedAt:    s.now(),
	}

	keys := make([]string, 0, len(objects)+1)
	for _, obj := range objects {
		if isUploadKey(obj.Key) {
			keys = append(keys, obj.Key)
		}
	}
	keys = append(keys, budtenderDataKey)

	bodies := s.fetchObjects(keys)

	for _, obj := range objects {
		switch {
		case isUploadOfType(obj.Key, "sales"):
			s.loadSalesFile(obj, bodies, dataset)
		case isUploadOfType(obj.Key, "brand"):
			s.loadBrandFile(obj, bodies, dataset)
		case isUploadOfType(obj.Key, "product"):
			s.loadProductFile(obj, bodies, dataset)
		case isUploadOfType(obj.Key, "customers"):
			s.loadCustomerFile(obj, bodies, dataset)
		}
	}

	s.loadBudtenders(bodies, dataset)
	s.loadMappings(dataset)

	s.dedupAndSort(dataset)

	logrus.WithFields(logrus.Fields{
		"vendas":      len(dataset.Sales),
		"marcas":      len(dataset.Brands),
		"produtos":    len(dataset.Products),
		"clientes":    len(dataset.Customers),
		"atendentes":  len(dataset.Budtenders),
		"mapeamentos": len(dataset.Mappings),
	}).Info("Carga completa do dataset concluída")

	return dataset, nil
}

// isUploadOfType confere a convenção de nome dos uploads:
// prefix/<loja>/<tipo>_<datas>_<timestamp>.csv
func isUploadOfType(key, fileType string) bool {
	return strings.Contains(key, "/"+fileType+"_") && strings.HasSuffix(key, ".csv")
}

func isUploadKey(key string) bool {
	for _, fileType := range []string{"sales", "brand", "product", "customers"} {
		if isUploadOfType(key, fileType) {
			return true
		}
	}
	return false
}

// fetchObjects baixa os arquivos do bucket com a concorrência limitada pela
// configuração de varredura. Arquivo que falha no download fica de fora do
// mapa e a carga segue sem ele.
func (s *Service) fetchObjects(keys []string) map[string][]byte {
	limit := s.cfg.Scan.MaxConcurrentJobs
	if limit < 1 {
		limit = 1
	}

	var (
		mu     sync.Mutex
		group  errgroup.Group
		bodies = make(map[string][]byte, len(keys))
	)
	group.SetLimit(limit)

	for _, key := range keys {
		key := key
		group.Go(func() error {
			data, err := s.objectStore.GetObject(key)
			if err != nil {
				logrus.WithError(err).WithField("arquivo", key).Error("Erro ao baixar arquivo do bucket")
				return nil
			}

			mu.Lock()
			bodies[key] = data
			mu.Unlock()
			return nil
		})
	}

	_ = group.Wait()
	return bodies
}

func (s *Service) loadSalesFile(obj storagedomain.ObjectInfo, bodies map[string][]byte, dataset *domain.Dataset) {
	rows, ok := s.csvRows(bodies, obj.Key)
	if !ok {
		return
	}

	kept := 0
	fallbackStore := ExtractStoreFromPath(obj.Key)
	for _, row := range rows {
		if record := s.cleaner.CleanSalesRecord(row, fallbackStore); record != nil {
			dataset.Sales = append(dataset.Sales, record)
			kept++
		}
	}

	logRejects(obj.Key, kept, len(rows))
}

func (s *Service) loadBrandFile(obj storagedomain.ObjectInfo, bodies map[string][]byte, dataset *domain.Dataset) {
	rows, ok := s.csvRows(bodies, obj.Key)
	if !ok {
		return
	}

	kept := 0
	storeID := ExtractStoreFromPath(obj.Key)
	dateRange := ExtractDateRangeFromPath(obj.Key)
	for _, row := range rows {
		if record := s.cleaner.CleanBrandRecord(row, storeID, dateRange); record != nil {
			dataset.Brands = append(dataset.Brands, record)
			kept++
		}
	}

	logRejects(obj.Key, kept, len(rows))
}

func (s *Service) loadProductFile(obj storagedomain.ObjectInfo, bodies map[string][]byte, dataset *domain.Dataset) {
	rows, ok := s.csvRows(bodies, obj.Key)
	if !ok {
		return
	}

	kept := 0
	storeID := ExtractStoreFromPath(obj.Key)
	for _, row := range rows {
		if record := s.cleaner.CleanProductRecord(row, storeID); record != nil {
			dataset.Products = append(dataset.Products, record)
			kept++
		}
	}

	logRejects(obj.Key, kept, len(rows))
}

func (s *Service) loadCustomerFile(obj storagedomain.ObjectInfo, bodies map[string][]byte, dataset *domain.Dataset) {
	rows, ok := s.csvRows(bodies, obj.Key)
	if !ok {
		return
	}

	kept := 0
	for _, row := range rows {
		if record := s.cleaner.CleanCustomerRecord(row); record != nil {
			dataset.Customers = append(dataset.Customers, record)
			kept++
		}
	}

	logRejects(obj.Key, kept, len(rows))
}

// logRejects registra quantas linhas de um arquivo foram descartadas na limpeza
func logRejects(key string, kept, total int) {
	if rejected := total - kept; rejected > 0 {
		logrus.WithFields(logrus.Fields{
			"arquivo":     key,
			"aceitas":     kept,
			"descartadas": rejected,
		}).Debug("Linhas descartadas na limpeza")
	}
}

// loadBudtenders carrega o CSV de desempenho de atendentes, que mora em uma
// chave fixa fora do fluxo de uploads. Ausência do arquivo não é erro.
func (s *Service) loadBudtenders(bodies map[string][]byte, dataset *domain.Dataset) {
	rows, ok := s.csvRows(bodies, budtenderDataKey)
	if !ok {
		return
	}

	for _, row := range rows {
		if record := s.cleaner.CleanBudtenderRecord(row); record != nil {
			dataset.Budtenders = append(dataset.Budtenders, record)
		}
	}
}

func (s *Service) loadMappings(dataset *domain.Dataset) {
	data, err := s.objectStore.GetObject(brandMappingKey)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar o mapeamento de marcas")
		return
	}

	mappings, err := ParseBrandMappings(data)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao decodificar o mapeamento de marcas")
		return
	}

	dataset.Mappings = mappings
}

func parseRows(content []byte) []RawRow {
	parsed := utils.ParseCSV(string(content))
	rows := make([]RawRow, len(parsed))
	for i, row := range parsed {
		rows[i] = RawRow(row)
	}

	return rows
}

func (s *Service) csvRows(bodies map[string][]byte, key string) ([]RawRow, bool) {
	data, ok := bodies[key]
	if !ok {
		return nil, false
	}

	return parseRows(data), true
}

// dedupAndSort aplica a política de deduplicação (o último registro na
// ordem de descoberta vence) e a ordenação canônica de cada coleção
func (s *Service) dedupAndSort(dataset *domain.Dataset) {
	// Vendas: chave natural (store_id, date), ordenadas por data crescente
	salesByKey := make(map[string]*domain.SalesRecord, len(dataset.Sales))
	salesOrder := make([]string, 0, len(dataset.Sales))
	for _, record := range dataset.Sales {
		key := record.DedupKey()
		if _, seen := salesByKey[key]; !seen {
			salesOrder = append(salesOrder, key)
		}
		salesByKey[key] = record
	}

	sales := make([]*domain.SalesRecord, 0, len(salesByKey))
	for _, key := range salesOrder {
		sales = append(sales, salesByKey[key])
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date < sales[j].Date
	})
	dataset.Sales = sales

	// Clientes: chave natural customer_id, sem ordenação canônica
	customersByID := make(map[string]*domain.CustomerRecord, len(dataset.Customers))
	customerOrder := make([]string, 0, len(dataset.Customers))
	for _, record := range dataset.Customers {
		if _, seen := customersByID[record.CustomerID]; !seen {
			customerOrder = append(customerOrder, record.CustomerID)
		}
		customersByID[record.CustomerID] = record
	}

	customers := make([]*domain.CustomerRecord, 0, len(customersByID))
	for _, id := range customerOrder {
		customers = append(customers, customersByID[id])
	}
	dataset.Customers = customers

	// Marcas, produtos e atendentes não têm chave natural: ordenados por
	// vendas líquidas decrescentes
	sort.SliceStable(dataset.Brands, func(i, j int) bool {
		return dataset.Brands[i].NetSales > dataset.Brands[j].NetSales
	})
	sort.SliceStable(dataset.Products, func(i, j int) bool {
		return dataset.Products[i].NetSales > dataset.Products[j].NetSales
	})
	sort.SliceStable(dataset.Budtenders, func(i, j int) bool {
		return dataset.Budtenders[i].NetSales > dataset.Budtenders[j].NetSales
	})
}
