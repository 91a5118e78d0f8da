package hash

import "github.com/alexander1616/hashtables/internal/utils"

// ReferenceHashAlgorithm - The default bucket selection algorithm. It reproduces the reference arithmetic bit for bit
// so that bucket numbers stay compatible with values already computed by the reference:
//
//	acc = 0
//	for each byte c: acc = ((acc + c) * c) % tableSize
//
// acc is a 32-bit unsigned value that wraps on overflow and each byte is taken as a signed char.
// It is a weak hash and not uniform, but it is deterministic and always in range.
type ReferenceHashAlgorithm struct {
	tableSize int64
}

// NewReferenceHashAlgorithm - Returns a pointer to a new ReferenceHashAlgorithm instance
func NewReferenceHashAlgorithm(tableSize int64) *ReferenceHashAlgorithm {
	ha := &ReferenceHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The table size is used as is, the table never grows.
func (R *ReferenceHashAlgorithm) SetTableSize(tableSize int64) {
	R.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1.
// Only the bytes up to the first zero byte and at most conf.MaxName bytes are hashed, an empty key gives 0.
func (R *ReferenceHashAlgorithm) HashFunc1(key []byte) int64 {
	modulus := uint32(R.tableSize)
	var acc uint32

	for _, b := range boundedBytes(key) {
		c := uint32(int32(int8(b)))
		acc += c
		acc = (acc * c) % modulus
	}

	return int64(acc)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (R *ReferenceHashAlgorithm) GetTableSize() int64 {
	return R.tableSize
}

// boundedBytes - Applies the same key bounding as the hash table does, so the algorithm can also be used stand alone
func boundedBytes(key []byte) []byte {
	return utils.BoundedKey(string(key))
}
