package separatechaining

import (
	"github.com/alexander1616/hashtables/crt"
	"github.com/alexander1616/hashtables/internal/model"
)

// Records - Is used to iterate over chained records one by one.
// The chain must not be modified while iterating.
type Records struct {
	current *node
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.current != nil
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (R *Records) Next() (record *model.Record, err error) {
	if R.current == nil {
		err = crt.NoRecordFound{}
		return
	}

	record = R.current.record
	R.current = R.current.next

	return
}
