package tablestore

import (
	tabledomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/domain"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/tableclient"
	"github.com/vfg2006/retail-analytics-api/internal/config"
)

type TableStoreIntegrator interface {
	ScanPage(table, cursor string, pageSize int) (tabledomain.ScanPage, error)
	GetItem(table string, key map[string]string) (tabledomain.Item, error)
	PutItem(table string, item tabledomain.Item) error
	Query(table string, partitionKey map[string]string) ([]tabledomain.Item, error)
}

type TableStoreService struct {
	cfg    *config.Config
	Client tableclient.Client
}

func New(cfg *config.Config, client tableclient.Client) TableStoreIntegrator {
	return &TableStoreService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TableStoreService) ScanPage(table, cursor string, pageSize int) (tabledomain.ScanPage, error) {
	return s.Client.Scan(tableclient.ScanParams{
		Table:    table,
		Cursor:   cursor,
		PageSize: pageSize,
	})
}

func (s *TableStoreService) GetItem(table string, key map[string]string) (tabledomain.Item, error) {
	return s.Client.GetItem(table, key)
}

func (s *TableStoreService) PutItem(table string, item tabledomain.Item) error {
	return s.Client.PutItem(table, item)
}

func (s *TableStoreService) Query(table string, partitionKey map[string]string) ([]tabledomain.Item, error) {
	return s.Client.Query(table, partitionKey)
}
