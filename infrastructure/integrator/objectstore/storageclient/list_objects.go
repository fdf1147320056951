package storageclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	storagedomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/domain"
)

type ListObjectsParams struct {
	Prefix            string
	ContinuationToken string
}

type ListObjectsResponse storagedomain.ListPage

func (c *StorageClient) ListObjects(params ListObjectsParams) (ListObjectsResponse, error) {
	var response ListObjectsResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.ObjectStore.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "b", c.config.ObjectStore.Bucket, "objects")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("prefix", params.Prefix)
	if params.ContinuationToken != "" {
		query.Set("continuation-token", params.ContinuationToken)
	}
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.ObjectStore.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
