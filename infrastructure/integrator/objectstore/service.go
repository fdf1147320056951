package objectstore

import (
	storagedomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/domain"
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/storageclient"
	"github.com/vfg2006/retail-analytics-api/internal/config"
)

type ObjectStoreIntegrator interface {
	ListAllObjects(prefix string) ([]storagedomain.ObjectInfo, error)
	GetObject(key string) ([]byte, error)
	PutObject(key string, body []byte, contentType string) error
}

type ObjectStoreService struct {
	cfg    *config.Config
	Client storageclient.Client
}

func New(cfg *config.Config, client storageclient.Client) ObjectStoreIntegrator {
	return &ObjectStoreService{
		cfg:    cfg,
		Client: client,
	}
}

// ListAllObjects percorre todas as páginas da listagem do bucket seguindo os
// tokens de continuação até esgotar o prefixo
func (s *ObjectStoreService) ListAllObjects(prefix string) ([]storagedomain.ObjectInfo, error) {
	var objects []storagedomain.ObjectInfo
	var continuationToken string

	for {
		page, err := s.Client.ListObjects(storageclient.ListObjectsParams{
			Prefix:            prefix,
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, err
		}

		objects = append(objects, page.Objects...)

		if !page.Truncated || page.NextToken == "" {
			break
		}

		continuationToken = page.NextToken
	}

	return objects, nil
}

func (s *ObjectStoreService) GetObject(key string) ([]byte, error) {
	return s.Client.GetObject(key)
}

func (s *ObjectStoreService) PutObject(key string, body []byte, contentType string) error {
	return s.Client.PutObject(key, body, contentType)
}
