package tableclient

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	tabledomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/domain"
	"github.com/vfg2006/retail-analytics-api/internal/config"
)

// ErrCapacityExceeded indica que a tabela remota recusou a requisição por
// limite de capacidade de leitura. É um erro transitório: o chamador deve
// aplicar backoff e tentar de novo.
var ErrCapacityExceeded = errors.New("capacidade de leitura da tabela excedida")

// ErrItemNotFound indica que a chave não existe na tabela
var ErrItemNotFound = errors.New("item não encontrado na tabela")

type Client interface {
	Scan(params ScanParams) (tabledomain.ScanPage, error)
	GetItem(table string, key map[string]string) (tabledomain.Item, error)
	PutItem(table string, item tabledomain.Item) error
	Query(table string, partitionKey map[string]string) ([]tabledomain.Item, error)
}

type TableClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do gateway de tabelas
func NewClient(cfg *config.Config) Client {
	return &TableClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
