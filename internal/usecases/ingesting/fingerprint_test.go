package ingesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	storagedomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/objectstore/domain"
)

func TestComputeFingerprint(t *testing.T) {
	t.Run("Ordem da listagem não altera o fingerprint", func(t *testing.T) {
		a := ComputeFingerprint([]storagedomain.ObjectInfo{
			{Key: "a.csv", ETag: "e1"},
			{Key: "b.csv", ETag: "e2"},
		})
		b := ComputeFingerprint([]storagedomain.ObjectInfo{
			{Key: "b.csv", ETag: "e2"},
			{Key: "a.csv", ETag: "e1"},
		})

		assert.Equal(t, a, b)
	})

	t.Run("ETag alterado muda o fingerprint", func(t *testing.T) {
		a := ComputeFingerprint([]storagedomain.ObjectInfo{
			{Key: "a.csv", ETag: "e1"},
			{Key: "b.csv", ETag: "e2"},
		})
		b := ComputeFingerprint([]storagedomain.ObjectInfo{
			{Key: "a.csv", ETag: "e1"},
			{Key: "b.csv", ETag: "e3"},
		})

		assert.NotEqual(t, a, b)
	})

	t.Run("Arquivo adicionado muda o fingerprint", func(t *testing.T) {
		a := ComputeFingerprint([]storagedomain.ObjectInfo{
			{Key: "a.csv", ETag: "e1"},
		})
		b := ComputeFingerprint([]storagedomain.ObjectInfo{
			{Key: "a.csv", ETag: "e1"},
			{Key: "b.csv", ETag: "e2"},
		})

		assert.NotEqual(t, a, b)
	})

	t.Run("Lista vazia gera um fingerprint estável", func(t *testing.T) {
		a := ComputeFingerprint(nil)
		b := ComputeFingerprint([]storagedomain.ObjectInfo{})

		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})
}
