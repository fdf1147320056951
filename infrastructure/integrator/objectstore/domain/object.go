package domain

import "time"

// ObjectInfo descreve um objeto armazenado no bucket de uploads. O ETag muda
// sempre que o conteúdo do objeto muda e é a base do fingerprint do dataset.
type ObjectInfo struct {
	Key          string    `json:"key"`
	ETag         string    `json:"etag"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// ListPage é uma página da listagem de objetos do bucket
type ListPage struct {
	Objects   []ObjectInfo `json:"objects"`
	NextToken string       `json:"next_token"`
	Truncated bool         `json:"truncated"`
}
