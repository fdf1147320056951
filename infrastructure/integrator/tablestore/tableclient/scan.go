package tableclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	tabledomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/domain"
)

type ScanParams struct {
	Table    string
	Cursor   string
	PageSize int
}

type scanRequestBody struct {
	Cursor string `json:"cursor,omitempty"`
	Limit  int    `json:"limit"`
}

func (c *TableClient) Scan(params ScanParams) (tabledomain.ScanPage, error) {
	var response tabledomain.ScanPage

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.TableStore.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "t", params.Table, "scan")

	payload, err := json.Marshal(scanRequestBody{
		Cursor: params.Cursor,
		Limit:  params.PageSize,
	})
	if err != nil {
		return response, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.TableStore.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// 429 é sinal de throttling da tabela, tratado com backoff pelo chamador
	if resp.StatusCode == http.StatusTooManyRequests {
		return response, ErrCapacityExceeded
	}

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
