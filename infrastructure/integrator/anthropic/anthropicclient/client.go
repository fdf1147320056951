package anthropicclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-analytics-api/internal/config"
)

type Client interface {
	CreateMessage(params MessageParams) (MessageResponse, error)
}

type AnthropicClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API de mensagens
func NewClient(cfg *config.Config) Client {
	return &AnthropicClient{
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		config: cfg,
	}
}
