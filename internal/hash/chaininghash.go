package hash

import (
	"hash/crc32"

	"github.com/alexander1616/hashtables/internal/utils"
)

// SeparateChainingHashAlgorithm - An alternative bucket selection algorithm implemented using crc32.ChecksumIEEE to
// create a hash value over the key and then applying bucket = hash % tableSize to get the bucket number.
// It spreads keys far better than ReferenceHashAlgorithm but gives different bucket numbers.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the hash table will address
func (S *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm) HashFunc1(key []byte) int64 {
	h := int64(crc32.ChecksumIEEE(utils.BoundedKey(string(key))))
	return h % S.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (S *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}
