package tracking

import (
	"context"
	"fmt"
	"net/url"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

var (
	ErrQRCodeNotFound = errors.New("qr code não encontrado")
	ErrInvalidTarget  = errors.New("url de destino inválida")
)

const shortCodeLength = 8

// CreateParams descreve um novo QR code rastreável
type CreateParams struct {
	Name      string
	TargetURL string
	StoreID   domain.StoreID
}

// ClickInfo é o contexto de um acesso via redirecionamento
type ClickInfo struct {
	IPAddress string
	UserAgent string
	Referer   string
}

type Tracker interface {
	CreateQRCode(ctx context.Context, params CreateParams) (*domain.QRCode, error)
	ListQRCodes(ctx context.Context, includeDeleted bool) ([]*domain.QRCode, error)
	ResolveAndTrack(ctx context.Context, shortCode string, click ClickInfo) (string, error)
	Analytics(ctx context.Context, shortCode string) (*domain.QRAnalytics, error)
	DeleteQRCode(ctx context.Context, shortCode string) error
	RestoreQRCode(ctx context.Context, shortCode string) error
}

// Service gerencia QR codes rastreáveis na tabela remota: criação com código
// curto, redirecionamento com registro de clique e análise de acessos
type Service struct {
	tableStore tablestore.TableStoreIntegrator
	cfg        *config.Config
	now        func() time.Time
}

func NewService(cfg *config.Config, tableStore tablestore.TableStoreIntegrator) Tracker {
	return &Service{
		tableStore: tableStore,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *Service) CreateQRCode(ctx context.Context, params CreateParams) (*domain.QRCode, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("nome do qr code é obrigatório")
	}

	parsed, err := url.Parse(params.TargetURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrInvalidTarget
	}

	shortCode, err := gonanoid.New(shortCodeLength)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o código curto: %w", err)
	}

	qrCode := &domain.QRCode{
		ShortCode: shortCode,
		Name:      params.Name,
		TargetURL: params.TargetURL,
		StoreID:   params.StoreID,
		CreatedAt: s.now(),
	}

	if err := s.tableStore.PutItem(s.cfg.TableStore.QRCodeTable, itemFromQRCode(qrCode)); err != nil {
		return nil, fmt.Errorf("erro ao gravar o qr code: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"short_code": shortCode,
		"destino":    params.TargetURL,
	}).Info("QR code criado")

	return qrCode, nil
}

func (s *Service) ListQRCodes(ctx context.Context, includeDeleted bool) ([]*domain.QRCode, error) {
	var codes []*domain.QRCode
	cursor := ""

	for {
		page, err := s.tableStore.ScanPage(s.cfg.TableStore.QRCodeTable, cursor, s.cfg.Scan.PageSize)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar qr codes: %w", err)
		}

		for _, item := range page.Items {
			qrCode := qrCodeFromItem(item)
			if qrCode.Deleted && !includeDeleted {
				continue
			}
			codes = append(codes, qrCode)
		}

		if page.NextCursor == "" {
			return codes, nil
		}
		cursor = page.NextCursor
	}
}

// ResolveAndTrack resolve o código curto para a URL de destino e registra o
// acesso. Falha ao registrar o clique não impede o redirecionamento.
func (s *Service) ResolveAndTrack(ctx context.Context, shortCode string, click ClickInfo) (string, error) {
	qrCode, err := s.getQRCode(shortCode)
	if err != nil {
		return "", err
	}

	clickItem := itemFromClick(&domain.QRClick{
		ShortCode: shortCode,
		Timestamp: s.now(),
		IPAddress: click.IPAddress,
		UserAgent: click.UserAgent,
		Referer:   click.Referer,
	})
	if err := s.tableStore.PutItem(s.cfg.TableStore.QRClickTable, clickItem); err != nil {
		logrus.WithError(err).WithField("short_code", shortCode).Warn("Erro ao registrar clique do qr code")
	}

	// Contador denormalizado no próprio registro, melhor esforço
	qrCode.TotalClicks++
	if err := s.tableStore.PutItem(s.cfg.TableStore.QRCodeTable, itemFromQRCode(qrCode)); err != nil {
		logrus.WithError(err).WithField("short_code", shortCode).Warn("Erro ao atualizar contador de cliques")
	}

	return qrCode.TargetURL, nil
}

func (s *Service) Analytics(ctx context.Context, shortCode string) (*domain.QRAnalytics, error) {
	if _, err := s.getQRCode(shortCode); err != nil {
		return nil, err
	}

	items, err := s.tableStore.Query(s.cfg.TableStore.QRClickTable, map[string]string{
		"short_code": shortCode,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar cliques do qr code: %w", err)
	}

	analytics := &domain.QRAnalytics{
		ShortCode:   shortCode,
		TotalClicks: len(items),
		ClicksByDay: make(map[string]int),
	}

	uniqueIPs := make(map[string]bool)
	for _, item := range items {
		if ip := item.String("ip_address"); ip != "" {
			uniqueIPs[ip] = true
		}

		if timestamp := item.String("timestamp"); len(timestamp) >= 10 {
			analytics.ClicksByDay[timestamp[:10]]++
		}
	}
	analytics.UniqueVisitors = len(uniqueIPs)

	return analytics, nil
}

func (s *Service) DeleteQRCode(ctx context.Context, shortCode string) error {
	return s.setDeleted(shortCode, true)
}

func (s *Service) RestoreQRCode(ctx context.Context, shortCode string) error {
	return s.setDeleted(shortCode, false)
}

// setDeleted marca o registro sem removê-lo, preservando o histórico de
// cliques. A restauração precisa enxergar registros apagados, então a busca
// ignora a flag.
func (s *Service) setDeleted(shortCode string, deleted bool) error {
	qrCode, err := s.getQRCodeIncludingDeleted(shortCode)
	if err != nil {
		return err
	}

	qrCode.Deleted = deleted
	if err := s.tableStore.PutItem(s.cfg.TableStore.QRCodeTable, itemFromQRCode(qrCode)); err != nil {
		return fmt.Errorf("erro ao atualizar o qr code: %w", err)
	}

	return nil
}

func (s *Service) getQRCode(shortCode string) (*domain.QRCode, error) {
	qrCode, err := s.getQRCodeIncludingDeleted(shortCode)
	if err != nil {
		return nil, err
	}

	if qrCode.Deleted {
		return nil, ErrQRCodeNotFound
	}

	return qrCode, nil
}

func (s *Service) getQRCodeIncludingDeleted(shortCode string) (*domain.QRCode, error) {
	item, err := s.tableStore.GetItem(s.cfg.TableStore.QRCodeTable, map[string]string{
		"short_code": shortCode,
	})
	if err != nil {
		return nil, ErrQRCodeNotFound
	}

	return qrCodeFromItem(item), nil
}
