package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlot_GetSet(t *testing.T) {
	t.Run("Slot vazio não retorna valor", func(t *testing.T) {
		slot := New[string](5 * time.Minute)

		_, ok := slot.Get("")

		assert.False(t, ok)
	})

	t.Run("Valor dentro do TTL com fingerprint igual é retornado", func(t *testing.T) {
		slot := New[string](5 * time.Minute)
		slot.Set("dataset", "fp-1")

		value, ok := slot.Get("fp-1")

		assert.True(t, ok)
		assert.Equal(t, "dataset", value)
		assert.Equal(t, "fp-1", slot.Fingerprint())
	})

	t.Run("Fingerprint diferente invalida o valor mesmo dentro do TTL", func(t *testing.T) {
		slot := New[string](5 * time.Minute)
		slot.Set("dataset", "fp-1")

		_, ok := slot.Get("fp-2")

		assert.False(t, ok)
	})

	t.Run("Fingerprint vazio valida apenas o TTL", func(t *testing.T) {
		slot := New[string](5 * time.Minute)
		slot.Set("dataset", "fp-1")

		value, ok := slot.Get("")

		assert.True(t, ok)
		assert.Equal(t, "dataset", value)
	})

	t.Run("Valor expirado não é retornado pelo Get mas sim pelo Peek", func(t *testing.T) {
		slot := New[string](5 * time.Minute)
		current := time.Now()
		slot.now = func() time.Time { return current }

		slot.Set("dataset", "fp-1")
		current = current.Add(6 * time.Minute)

		_, ok := slot.Get("fp-1")
		assert.False(t, ok)

		stale, ok := slot.Peek()
		assert.True(t, ok)
		assert.Equal(t, "dataset", stale)
	})

	t.Run("Invalidate descarta o valor", func(t *testing.T) {
		slot := New[string](5 * time.Minute)
		slot.Set("dataset", "fp-1")

		slot.Invalidate()

		_, ok := slot.Get("fp-1")
		assert.False(t, ok)
		_, ok = slot.Peek()
		assert.False(t, ok)
		assert.Empty(t, slot.Fingerprint())
	})
}

func TestSlot_GetOrLoad(t *testing.T) {
	t.Run("Executa o loader quando o slot está vazio", func(t *testing.T) {
		slot := New[int](5 * time.Minute)

		value, err := slot.GetOrLoad(context.Background(), "fp-1", func(_ context.Context) (int, string, error) {
			return 42, "fp-1", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, value)
		assert.Equal(t, "fp-1", slot.Fingerprint())
	})

	t.Run("Não executa o loader com valor válido em cache", func(t *testing.T) {
		slot := New[int](5 * time.Minute)
		slot.Set(42, "fp-1")

		value, err := slot.GetOrLoad(context.Background(), "fp-1", func(_ context.Context) (int, string, error) {
			t.Fatal("loader não deveria ser chamado")
			return 0, "", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("Fingerprint novo força recarga", func(t *testing.T) {
		slot := New[int](5 * time.Minute)
		slot.Set(42, "fp-1")

		value, err := slot.GetOrLoad(context.Background(), "fp-2", func(_ context.Context) (int, string, error) {
			return 99, "fp-2", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 99, value)
		assert.Equal(t, "fp-2", slot.Fingerprint())
	})

	t.Run("Chamadas concorrentes são coalescidas em uma única carga", func(t *testing.T) {
		slot := New[int](5 * time.Minute)
		var calls atomic.Int32
		release := make(chan struct{})

		loader := func(_ context.Context) (int, string, error) {
			calls.Add(1)
			<-release
			return 42, "fp-1", nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				value, err := slot.GetOrLoad(context.Background(), "fp-1", loader)
				assert.NoError(t, err)
				assert.Equal(t, 42, value)
			}()
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Falha na recarga com valor expirado devolve o valor antigo", func(t *testing.T) {
		slot := New[int](5 * time.Minute)
		current := time.Now()
		slot.now = func() time.Time { return current }

		slot.Set(42, "fp-1")
		current = current.Add(10 * time.Minute)

		value, err := slot.GetOrLoad(context.Background(), "fp-1", func(_ context.Context) (int, string, error) {
			return 0, "", errors.New("origem indisponível")
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("Falha na carga sem valor anterior propaga o erro", func(t *testing.T) {
		slot := New[int](5 * time.Minute)

		_, err := slot.GetOrLoad(context.Background(), "fp-1", func(_ context.Context) (int, string, error) {
			return 0, "", errors.New("origem indisponível")
		})

		assert.Error(t, err)
	})
}
