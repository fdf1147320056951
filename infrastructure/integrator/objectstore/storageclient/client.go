package storageclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/config"
)

type Client interface {
	ListObjects(params ListObjectsParams) (ListObjectsResponse, error)
	GetObject(key string) ([]byte, error)
	PutObject(key string, body []byte, contentType string) error
}

type StorageClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do gateway de objetos
func NewClient(cfg *config.Config) Client {
	return &StorageClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
