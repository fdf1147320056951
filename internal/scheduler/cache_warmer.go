package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/invoicing"
)

// Tipos de aquecimento aceitos pelo disparo manual
const (
	WarmupDataset  = "dataset"
	WarmupInvoices = "invoices"
)

// CacheWarmerConfig representa a configuração do agendador de pré-aquecimento
type CacheWarmerConfig struct {
	DatasetCron string
	InvoiceCron string
	Enabled     bool
}

// CacheWarmerService agenda recargas periódicas dos caches de dataset e de
// notas fiscais, para que as requisições do dashboard encontrem os dados
// quentes em vez de pagar a carga completa
type CacheWarmerService struct {
	scheduler *gocron.Scheduler
	config    CacheWarmerConfig
	ingestor  ingesting.Ingestor
	invoicer  invoicing.Invoicer

	syncMutex           sync.Mutex
	datasetRunning      bool
	invoicesRunning     bool
	lastDatasetWarmup   time.Time
	lastInvoicesWarmup  time.Time
	lastDatasetDuration time.Duration
	lastInvoicesDur     time.Duration
}

// NewCacheWarmerService cria uma nova instância do serviço de pré-aquecimento
func NewCacheWarmerService(
	appConfig *config.Config,
	ingestor ingesting.Ingestor,
	invoicer invoicing.Invoicer,
) *CacheWarmerService {
	warmerConfig := CacheWarmerConfig{
		DatasetCron: appConfig.CacheWarmer.DatasetCron,
		InvoiceCron: appConfig.CacheWarmer.InvoiceCron,
		Enabled:     appConfig.CacheWarmer.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"dataset_cron": warmerConfig.DatasetCron,
		"invoice_cron": warmerConfig.InvoiceCron,
		"enabled":      warmerConfig.Enabled,
	}).Info("Configuração do agendador de pré-aquecimento carregada")

	return &CacheWarmerService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    warmerConfig,
		ingestor:  ingestor,
		invoicer:  invoicer,
	}
}

// Start inicia o agendador
func (s *CacheWarmerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Pré-aquecimento de caches desabilitado por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"dataset_cron": s.config.DatasetCron,
		"invoice_cron": s.config.InvoiceCron,
	}).Info("Iniciando agendador de pré-aquecimento de caches")

	if _, err := s.scheduler.Cron(s.config.DatasetCron).Do(func() {
		s.warmDataset(context.Background())
	}); err != nil {
		return fmt.Errorf("erro ao agendar pré-aquecimento do dataset: %w", err)
	}

	if _, err := s.scheduler.Cron(s.config.InvoiceCron).Do(func() {
		s.warmInvoices(context.Background())
	}); err != nil {
		return fmt.Errorf("erro ao agendar pré-aquecimento das notas fiscais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pré-aquecimento de caches")
		s.scheduler.Stop()
	}()

	return nil
}

// warmDataset recarrega o cache do dataset de vendas
func (s *CacheWarmerService) warmDataset(ctx context.Context) {
	s.syncMutex.Lock()
	if s.datasetRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pré-aquecimento do dataset já em andamento, ignorando")
		return
	}
	s.datasetRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.datasetRunning = false
		s.lastDatasetWarmup = time.Now()
		s.lastDatasetDuration = time.Since(startTime)
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando pré-aquecimento do cache do dataset")

	dataset, err := s.ingestor.RefreshDataset(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro no pré-aquecimento do cache do dataset")
		return
	}

	logrus.WithFields(logrus.Fields{
		"vendas":   len(dataset.Sales),
		"clientes": len(dataset.Customers),
		"duration": time.Since(startTime).String(),
	}).Info("Pré-aquecimento do cache do dataset concluído")
}

// warmInvoices recarrega o cache das notas fiscais
func (s *CacheWarmerService) warmInvoices(ctx context.Context) {
	s.syncMutex.Lock()
	if s.invoicesRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pré-aquecimento das notas fiscais já em andamento, ignorando")
		return
	}
	s.invoicesRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.invoicesRunning = false
		s.lastInvoicesWarmup = time.Now()
		s.lastInvoicesDur = time.Since(startTime)
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando pré-aquecimento do cache de notas fiscais")

	items, err := s.invoicer.RefreshLineItems(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro no pré-aquecimento do cache de notas fiscais")
		return
	}

	logrus.WithFields(logrus.Fields{
		"itens":    len(items),
		"duration": time.Since(startTime).String(),
	}).Info("Pré-aquecimento do cache de notas fiscais concluído")
}

// TriggerManualSync dispara manualmente um dos aquecimentos. Tipo
// desconhecido retorna erro para o handler responder 400.
func (s *CacheWarmerService) TriggerManualSync(warmupType string) error {
	switch warmupType {
	case WarmupDataset:
		logrus.Info("Disparo manual do pré-aquecimento do dataset")
		go s.warmDataset(context.Background())
	case WarmupInvoices:
		logrus.Info("Disparo manual do pré-aquecimento das notas fiscais")
		go s.warmInvoices(context.Background())
	default:
		return fmt.Errorf("tipo de aquecimento desconhecido: %s", warmupType)
	}

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *CacheWarmerService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"dataset_cron":          s.config.DatasetCron,
		"invoice_cron":          s.config.InvoiceCron,
		"dataset_running":       s.datasetRunning,
		"invoices_running":      s.invoicesRunning,
		"last_dataset_warmup":   s.lastDatasetWarmup,
		"last_invoices_warmup":  s.lastInvoicesWarmup,
		"last_dataset_duration": s.lastDatasetDuration.String(),
		"last_invoices_dur":     s.lastInvoicesDur.String(),
	}
}
