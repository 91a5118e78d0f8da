//go:build unit

package hashtables

import (
	"testing"

	"github.com/alexander1616/hashtables/internal/hash"
	"github.com/stretchr/testify/assert"
)

// fixedHashAlgorithm - Test hash algorithm returning the same value for every key
type fixedHashAlgorithm struct {
	tableSize int64
	value     int64
	grow      int64
}

func (F *fixedHashAlgorithm) SetTableSize(tableSize int64) { F.tableSize = tableSize + F.grow }
func (F *fixedHashAlgorithm) HashFunc1(_ []byte) int64 { return F.value }
func (F *fixedHashAlgorithm) GetTableSize() int64 { return F.tableSize }

func TestNewHashTable(t *testing.T) {
	t.Run("creates hash table with reference algorithm", func(t *testing.T) {
		// Execute
		ht, info, err := NewHashTable(10, nil)

		// Check
		assert.NoError(t, err, "creates hash table")
		assert.Equal(t, int64(10), info.NumberOfBuckets, "correct number of buckets in info")
		assert.True(t, info.InternalAlgorithm, "has internal hash algorithm")
		assert.Len(t, ht.buckets, 10, "buckets allocated")
		assert.Equal(t, int64(10), ht.NumberOfBuckets(), "correct number of buckets")
		assert.IsType(t, &hash.ReferenceHashAlgorithm{}, ht.hashAlgorithm, "reference algorithm assigned")
	})

	t.Run("creates hash table with custom algorithm", func(t *testing.T) {
		// Prepare
		ha := hash.NewSeparateChainingHashAlgorithm(3)

		// Execute
		ht, info, err := NewHashTable(10, ha)

		// Check
		assert.NoError(t, err, "creates hash table")
		assert.False(t, info.InternalAlgorithm, "has custom hash algorithm")
		assert.Equal(t, int64(10), ha.GetTableSize(), "table size set on custom algorithm")
		assert.Same(t, ha, ht.hashAlgorithm, "custom algorithm assigned")
	})

	t.Run("error when table size is not positive", func(t *testing.T) {
		for _, size := range []int64{0, -1} {
			// Execute
			_, _, err := NewHashTable(size, nil)

			// Check
			assert.Errorf(t, err, "rejects table size %d", size)
		}
	})

	t.Run("error when custom algorithm changes table size", func(t *testing.T) {
		// Execute
		_, _, err := NewHashTable(10, &fixedHashAlgorithm{grow: 6})

		// Check
		assert.Error(t, err, "rejects growing algorithm")
	})
}

func TestHashTable_Init(t *testing.T) {
	t.Run("empties every bucket", func(t *testing.T) {
		// Prepare
		ht, _, err := NewHashTable(10, nil)
		assert.NoError(t, err, "creates hash table")

		for _, key := range []string{"Alex", "Mikey", "Toby", "Tiger", "Godzilla"} {
			assert.NoError(t, ht.Insert(&Record{Key: key}), "inserts record")
		}

		// Execute
		ht.Init()

		// Check
		stat := ht.Stat(false)
		assert.Equal(t, int64(0), stat.Records, "no records left")
		assert.Equal(t, int64(10), stat.EmptyBuckets, "all buckets empty")

		for _, key := range []string{"Alex", "Mikey", "Toby", "Tiger", "Godzilla"} {
			_, err = ht.Lookup(key)
			assert.Errorf(t, err, "%s not found after init", key)
		}
	})
}
