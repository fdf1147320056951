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

type getItemResponse struct {
	Item tabledomain.Item `json:"item"`
}

func (c *TableClient) GetItem(table string, key map[string]string) (tabledomain.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body, err := c.doItemRequest(ctx, table, "get", map[string]interface{}{"key": key})
	if err != nil {
		return nil, err
	}

	var response getItemResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.Item == nil {
		return nil, ErrItemNotFound
	}

	return response.Item, nil
}

func (c *TableClient) PutItem(table string, item tabledomain.Item) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := c.doItemRequest(ctx, table, "put", map[string]interface{}{"item": item})

	return err
}

type queryResponse struct {
	Items []tabledomain.Item `json:"items"`
}

func (c *TableClient) Query(table string, partitionKey map[string]string) ([]tabledomain.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	body, err := c.doItemRequest(ctx, table, "query", map[string]interface{}{"key": partitionKey})
	if err != nil {
		return nil, err
	}

	var response queryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Items, nil
}

func (c *TableClient) doItemRequest(ctx context.Context, table, operation string, payload map[string]interface{}) ([]byte, error) {
	endpoint, err := url.Parse(c.config.TableStore.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "t", table, operation)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.TableStore.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrCapacityExceeded
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	return buf.Bytes(), nil
}
