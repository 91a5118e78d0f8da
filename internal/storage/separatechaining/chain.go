package separatechaining

import (
	"github.com/alexander1616/hashtables/crt"
	"github.com/alexander1616/hashtables/internal/model"
	"github.com/alexander1616/hashtables/internal/utils"
)

// node - One link in a chain, owned by the chain
type node struct {
	record *model.Record
	next   *node
}

// Chain - Represents the records of one bucket as a singly linked list.
// Records are prepended, so the most recently inserted record comes first and shadows
// any older record with an equal key. The zero value is an empty chain.
type Chain struct {
	head   *node
	length int64
}

// Prepend - Links the record in as the new head of the chain. No check for duplicate keys is made.
func (C *Chain) Prepend(record *model.Record) {
	C.head = &node{record: record, next: C.head}
	C.length++
}

// Find - Returns the first record from head whose key equals key (see utils.IsEqualKey).
// It returns an error of type crt.NoRecordFound if there is no such record.
func (C *Chain) Find(key string) (record *model.Record, err error) {
	for n := C.head; n != nil; n = n.next {
		if utils.IsEqualKey(n.record.Key, key) {
			record = n.record
			return
		}
	}

	err = crt.NoRecordFound{}
	return
}

// Remove - Unlinks the first record from head whose key equals key and returns it.
// Any older record with the same key stays in the chain.
// It returns an error of type crt.NoRecordFound, and leaves the chain untouched, if there is no such record.
func (C *Chain) Remove(key string) (record *model.Record, err error) {
	var prev *node
	n := C.head
	for n != nil && !utils.IsEqualKey(n.record.Key, key) {
		prev = n
		n = n.next
	}

	if n == nil {
		err = crt.NoRecordFound{}
		return
	}

	if prev == nil {
		C.head = n.next
	} else {
		prev.next = n.next
	}
	C.length--

	record = n.record
	n.next = nil
	n.record = nil

	return
}

// Clear - Unlinks every node so that no record is retained by the chain
func (C *Chain) Clear() {
	n := C.head
	for n != nil {
		next := n.next
		n.next = nil
		n.record = nil
		n = next
	}

	C.head = nil
	C.length = 0
}

// Len - Returns the number of records in the chain
func (C *Chain) Len() int64 {
	return C.length
}

// IsEmpty - Returns true if the chain holds no records
func (C *Chain) IsEmpty() bool {
	return C.head == nil
}

// Records - Returns an iterator over the records in chain order
func (C *Chain) Records() *Records {
	return &Records{current: C.head}
}
