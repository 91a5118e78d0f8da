package hashtables

import (
	"github.com/alexander1616/hashtables/internal/storage/separatechaining"
)

// ChainRecords - Is used to iterate over the records of one bucket one by one, most recently inserted first.
// The hash table must not be modified while iterating.
type ChainRecords struct {
	records *separatechaining.Records
}

// newChainRecords - Returns a pointer to a new ChainRecords struct
func newChainRecords(chain *separatechaining.Chain) *ChainRecords {
	return &ChainRecords{records: chain.Records()}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (C *ChainRecords) HasNext() bool {
	return C.records.HasNext()
}

// Next - Returns record.
// It returns:
//   - record is the next record in the bucket.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (C *ChainRecords) Next() (record *Record, err error) {
	return C.records.Next()
}
