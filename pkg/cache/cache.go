package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Slot guarda um único valor em memória com expiração por TTL e fingerprint
// da origem dos dados. É o mecanismo de cache usado para o dataset de vendas
// e para as notas fiscais: um valor por processo, substituído atomicamente.
//
// Um valor só é considerado válido quando está dentro do TTL E o fingerprint
// da origem não mudou desde a gravação.
type Slot[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	value T
	fp    string
	at    time.Time
	ok    bool

	group singleflight.Group
	now   func() time.Time
}

// Loader produz um valor novo para o slot junto com o fingerprint da origem
type Loader[T any] func(ctx context.Context) (T, string, error)

func New[T any](ttl time.Duration) *Slot[T] {
	return &Slot[T]{
		ttl: ttl,
		now: time.Now,
	}
}

// Get retorna o valor em cache se ele ainda estiver dentro do TTL e o
// fingerprint informado for igual ao da gravação. Fingerprint vazio
// desabilita a checagem de origem e valida apenas o TTL.
func (s *Slot[T]) Get(fingerprint string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	valid := s.ok &&
		s.now().Sub(s.at) < s.ttl &&
		(fingerprint == "" || s.fp == fingerprint)

	if !valid {
		var zero T
		return zero, false
	}

	return s.value, true
}

// Peek retorna o valor em cache mesmo expirado ou com origem alterada.
// Usado como fallback quando uma recarga falha e o valor antigo ainda é
// melhor do que nada.
func (s *Slot[T]) Peek() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ok {
		var zero T
		return zero, false
	}

	return s.value, true
}

// Fingerprint retorna o fingerprint da origem do valor em cache, ou vazio se
// o slot nunca foi preenchido
func (s *Slot[T]) Fingerprint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fp
}

// Set substitui o valor do slot atomicamente e reinicia o TTL
func (s *Slot[T]) Set(value T, fingerprint string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.fp = fingerprint
	s.at = s.now()
	s.ok = true
}

// Invalidate descarta o valor em cache. A próxima leitura força recarga.
func (s *Slot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value = zero
	s.fp = ""
	s.ok = false
}

// GetOrLoad retorna o valor em cache, se válido para o fingerprint
// informado, ou executa o loader para preenchê-lo. Chamadas concorrentes
// durante uma recarga são coalescidas: apenas uma executa o loader, as
// demais esperam o resultado.
func (s *Slot[T]) GetOrLoad(ctx context.Context, fingerprint string, load Loader[T]) (T, error) {
	if value, ok := s.Get(fingerprint); ok {
		return value, nil
	}

	result, err, _ := s.group.Do("load", func() (interface{}, error) {
		// Outra goroutine pode ter preenchido o slot enquanto esperávamos
		if value, ok := s.Get(fingerprint); ok {
			return value, nil
		}

		value, newFingerprint, err := load(ctx)
		if err != nil {
			// Valor expirado ainda serve como fallback em caso de falha
			if stale, ok := s.Peek(); ok {
				return stale, nil
			}

			var zero T
			return zero, err
		}

		s.Set(value, newFingerprint)

		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}
