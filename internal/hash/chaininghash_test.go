//go:build unit

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeparateChainingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns correct table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")
	})
}

func TestSeparateChainingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		a := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}

		h := NewSeparateChainingHashAlgorithm(10)

		// Execute
		bucketNo := h.HashFunc1(a)

		// Check
		assert.GreaterOrEqual(t, bucketNo, int64(0), "bucket number not negative")
		assert.Less(t, bucketNo, int64(10), "bucket number less than table size")
	})

	t.Run("uses crc32 modulo table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(10)

		// Execute
		bucketNo := h.HashFunc1([]byte("Alex"))

		// Check
		assert.Equal(t, int64(8), bucketNo, "create a valid bucket number")
	})
}

func TestSeparateChainingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(10)
		tableSize := h.GetTableSize()
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")

		// Execute
		h.SetTableSize(16 + 7)

		// Check
		tableSize = h.GetTableSize()
		assert.Equal(t, int64(23), tableSize, "correct tableSize value")
	})
}
