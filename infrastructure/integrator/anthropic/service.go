package anthropic

import (
	"github.com/vfg2006/retail-analytics-api/infrastructure/integrator/anthropic/anthropicclient"
	"github.com/vfg2006/retail-analytics-api/internal/config"
)

type AnthropicIntegrator interface {
	Complete(system, prompt string) (string, error)
}

type AnthropicService struct {
	cfg    *config.Config
	Client anthropicclient.Client
}

func New(cfg *config.Config, client anthropicclient.Client) AnthropicIntegrator {
	return &AnthropicService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AnthropicService) Complete(system, prompt string) (string, error) {
	resp, err := s.Client.CreateMessage(anthropicclient.MessageParams{
		System: system,
		Prompt: prompt,
	})
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
