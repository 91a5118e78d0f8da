package hashtables

import (
	"fmt"

	"github.com/alexander1616/hashtables/hashfunc"
	"github.com/alexander1616/hashtables/internal/hash"
	"github.com/alexander1616/hashtables/internal/model"
	"github.com/alexander1616/hashtables/internal/storage/separatechaining"
)

// Record - A record stored in the hash table, see model.Record
type Record = model.Record

// HashTableInfo - Information structure containing some information about the hash table created
//   - NumberOfBuckets is the fixed number of buckets in the table
//   - InternalAlgorithm is true if the default reference hash algorithm is used
type HashTableInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - EmptyBuckets is the number of buckets without any record
//   - LongestChain is the number of records in the most populated bucket
//   - LoadFactor is Records divided by the number of buckets, the table never acts on it
//   - BucketDistribution is the number of records stored in each available bucket
type HashTableStat struct {
	Records            int64
	EmptyBuckets       int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// HashTable - A fixed size hash table resolving collisions by separate chaining.
// It never grows and keys are not required to be unique, a later inserted record shadows an earlier one
// with the same key. A HashTable is not safe for concurrent use.
type HashTable struct {
	buckets           []separatechaining.Chain
	numberOfBuckets   int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewHashTable - Returns a new hash table with all buckets empty.
//   - tableSize is the fixed number of buckets
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the HashAlgorithm interface, nil gives the reference algorithm
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable(tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	hashTable *HashTable,
	hashTableInfo HashTableInfo,
	err error,
) {
	// Check if tableSize is valid
	if tableSize <= 0 {
		err = fmt.Errorf("tableSize must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewReferenceHashAlgorithm(tableSize)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(tableSize)
	}

	if hashAlgorithm.GetTableSize() != tableSize {
		err = fmt.Errorf("hash algorithm changed table size from %d to %d, table size is fixed", tableSize, hashAlgorithm.GetTableSize())
		return
	}

	hashTable = &HashTable{
		buckets:           make([]separatechaining.Chain, tableSize),
		numberOfBuckets:   tableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	hashTableInfo = HashTableInfo{
		NumberOfBuckets:   tableSize,
		InternalAlgorithm: internalAlg,
	}

	return
}

// Init - Empties every bucket. All records in the table are released, callers must not rely on
// any of them surviving.
func (H *HashTable) Init() {
	for i := range H.buckets {
		H.buckets[i].Clear()
	}
}

// NumberOfBuckets - Returns the fixed number of buckets
func (H *HashTable) NumberOfBuckets() int64 {
	return H.numberOfBuckets
}
