package analyzing

import (
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// responseCache guarda respostas do modelo por chave derivada do prompt.
// Diferente dos slots de dataset, aqui o cache é um mapa: cada combinação de
// tipo de análise e dados agregados gera um prompt diferente.
type responseCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	response string
	at       time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// cacheKey deriva a chave do cache do modelo e do conteúdo completo enviado
func cacheKey(model, system, prompt string) string {
	return fmt.Sprintf("%s_%016x", model, xxhash.Sum64String(system+"|"+prompt))
}

func (c *responseCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.at) > c.ttl {
		return "", false
	}

	return entry.response, true
}

func (c *responseCache) set(key, response string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		response: response,
		at:       c.now(),
	}
}
