package invoicing

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore"
	tabledomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/domain"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/tableclient"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/cache"
)

type Invoicer interface {
	GetLineItems(ctx context.Context) ([]*domain.InvoiceLineItem, bool, error)
	RefreshLineItems(ctx context.Context) ([]*domain.InvoiceLineItem, error)
}

// Service varre a tabela remota de itens de nota fiscal em páginas, com
// backoff exponencial quando a tabela sinaliza excesso de capacidade, e
// mantém o resultado em cache por TTL.
type Service struct {
	tableStore tablestore.TableStoreIntegrator
	cache      *cache.Slot[[]*domain.InvoiceLineItem]
	cfg        *config.Config

	// Injetável para os testes não dormirem de verdade
	sleep func(time.Duration)
}

func NewService(cfg *config.Config, tableStore tablestore.TableStoreIntegrator) Invoicer {
	return &Service{
		tableStore: tableStore,
		cache:      cache.New[[]*domain.InvoiceLineItem](cfg.InvoiceCache.TTL()),
		cfg:        cfg,
		sleep:      time.Sleep,
	}
}

// GetLineItems retorna todos os itens de nota fiscal, do cache quando o TTL
// não venceu. O booleano indica se a resposta veio do cache. Diferente do
// dataset de vendas, a tabela não expõe um fingerprint barato: a validade é
// só por TTL.
func (s *Service) GetLineItems(ctx context.Context) ([]*domain.InvoiceLineItem, bool, error) {
	if items, ok := s.cache.Get(""); ok {
		return items, true, nil
	}

	items, err := s.cache.GetOrLoad(ctx, "", func(ctx context.Context) ([]*domain.InvoiceLineItem, string, error) {
		items, err := s.scanAll(ctx)
		if err != nil {
			return nil, "", err
		}
		return items, "", nil
	})
	if err != nil {
		return nil, false, err
	}

	return items, false, nil
}

// RefreshLineItems descarta o cache e varre a tabela de novo
func (s *Service) RefreshLineItems(ctx context.Context) ([]*domain.InvoiceLineItem, error) {
	s.cache.Invalidate()

	items, _, err := s.GetLineItems(ctx)
	return items, err
}

// scanAll percorre a tabela página a página. Página que estoura a capacidade
// é retentada com backoff exponencial; esgotadas as tentativas, os itens já
// coletados são devolvidos como resultado parcial. Erro sem nenhum item
// coletado é propagado.
func (s *Service) scanAll(ctx context.Context) ([]*domain.InvoiceLineItem, error) {
	var items []*domain.InvoiceLineItem
	cursor := ""
	pageCount := 0

	logrus.Info("Iniciando varredura da tabela de notas fiscais")

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.scanPageWithRetry(cursor)
		if err != nil {
			logrus.WithError(err).WithField("pagina", pageCount+1).
				Error("Erro na varredura da tabela de notas fiscais")

			// Resultado parcial ainda serve para o dashboard
			if len(items) > 0 {
				logrus.WithField("itens", len(items)).
					Warn("Devolvendo resultado parcial da varredura")
				return items, nil
			}

			return nil, fmt.Errorf("erro ao varrer a tabela de notas fiscais: %w", err)
		}

		pageCount++
		for _, item := range page.Items {
			items = append(items, mapLineItem(item))
		}

		logrus.WithFields(logrus.Fields{
			"pagina": pageCount,
			"itens":  len(items),
		}).Debug("Página da varredura concluída")

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor

		// Pausa entre páginas para não estourar a capacidade da tabela
		s.sleep(s.cfg.Scan.InterPageDelay())
	}

	logrus.WithFields(logrus.Fields{
		"paginas": pageCount,
		"itens":   len(items),
	}).Info("Varredura da tabela de notas fiscais concluída")

	return items, nil
}

// scanPageWithRetry busca uma página, retentando com backoff exponencial
// enquanto a tabela sinalizar excesso de capacidade
func (s *Service) scanPageWithRetry(cursor string) (tabledomain.ScanPage, error) {
	var lastErr error

	// Pelo menos uma tentativa, mesmo com configuração zerada
	maxRetries := s.cfg.Scan.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	for retry := 0; retry < maxRetries; retry++ {
		if retry > 0 {
			backoff := s.cfg.Scan.BaseBackoff() * time.Duration(1<<retry)
			logrus.WithFields(logrus.Fields{
				"tentativa": retry,
				"espera":    backoff,
			}).Warn("Tabela de notas fiscais sem capacidade, aguardando para retentar")
			s.sleep(backoff)
		}

		page, err := s.tableStore.ScanPage(s.cfg.TableStore.InvoiceTable, cursor, s.cfg.Scan.PageSize)
		if err == nil {
			return page, nil
		}

		if !errors.Is(err, tableclient.ErrCapacityExceeded) {
			return tabledomain.ScanPage{}, err
		}

		lastErr = err
	}

	return tabledomain.ScanPage{}, fmt.Errorf("capacidade da tabela esgotada após %d tentativas: %w", maxRetries, lastErr)
}
