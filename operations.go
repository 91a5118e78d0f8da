package hashtables

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexander1616/hashtables/crt"
	"github.com/alexander1616/hashtables/internal/utils"
)

// Insert - Adds the record at the head of its bucket. No check for existing records with the same key is
// made, an existing one is shadowed by the new record until the new record is deleted.
//   - record is the record to add, the table keeps a reference to it until it is deleted or the table is re-initialized
//
// It returns:
//   - err is of type crt.InvalidArgument if record is nil, or a standard error if the hash algorithm misbehaves
func (H *HashTable) Insert(record *Record) (err error) {
	if record == nil {
		err = crt.InvalidArgument{}
		return
	}

	bucketNo, err := H.GetBucketNo(record.Key)
	if err != nil {
		return
	}

	H.buckets[bucketNo].Prepend(record)

	return
}

// Lookup - Gets the most recently inserted record matching key.
//   - key is the identifier of a record, only the first conf.MaxName bytes up to any zero byte are compared
//
// It returns:
//   - record is the matching record if found.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (H *HashTable) Lookup(key string) (record *Record, err error) {
	bucketNo, err := H.GetBucketNo(key)
	if err != nil {
		return
	}

	record, err = H.buckets[bucketNo].Find(key)

	return
}

// Delete - Removes the most recently inserted record matching key and hands it back to the caller.
// An older record with the same key becomes visible to Lookup again.
//   - key is the identifier of a record
//
// It returns:
//   - record is the removed record if found, the table holds no reference to it anymore.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (H *HashTable) Delete(key string) (record *Record, err error) {
	bucketNo, err := H.GetBucketNo(key)
	if err != nil {
		return
	}

	record, err = H.buckets[bucketNo].Remove(key)

	return
}

// Hash - Returns the raw value from the hash algorithm for key
func (H *HashTable) Hash(key string) int64 {
	return H.hashAlgorithm.HashFunc1(utils.BoundedKey(key))
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record
func (H *HashTable) GetBucketNo(key string) (bucketNo int64, err error) {
	bucketNo = H.Hash(key)
	if bucketNo < 0 || bucketNo >= H.numberOfBuckets {
		err = fmt.Errorf("recieved bucket number from hash algorithm is outside permitted range")
		return
	}

	return
}

// GetBucket - Returns an iterator over the records in a bucket, in chain order
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (H *HashTable) GetBucket(bucketNo int64) (chainRecords *ChainRecords, err error) {
	if bucketNo < 0 || bucketNo >= H.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside range 0 to %d", bucketNo, H.numberOfBuckets-1)
		return
	}

	chainRecords = newChainRecords(&H.buckets[bucketNo])

	return
}

// Stat - Walks through the entire set of buckets and produce a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashTableStat.BucketDistribution to nil.
func (H *HashTable) Stat(includeDistribution bool) (hashTableStat *HashTableStat) {
	var hts HashTableStat

	if includeDistribution {
		hts.BucketDistribution = make([]int64, H.numberOfBuckets)
	}

	for i := range H.buckets {
		n := H.buckets[i].Len()
		hts.Records += n
		if n == 0 {
			hts.EmptyBuckets++
		}
		if n > hts.LongestChain {
			hts.LongestChain = n
		}
		if includeDistribution {
			hts.BucketDistribution[i] = n
		}
	}

	hts.LoadFactor = float64(hts.Records) / float64(H.numberOfBuckets)

	hashTableStat = &hts
	return
}

// Print - Writes the table bucket by bucket to w. Empty buckets are shown as "---",
// other buckets list their keys in chain order.
func (H *HashTable) Print(w io.Writer) (err error) {
	var sb strings.Builder

	sb.WriteString("Start\n")
	for i := range H.buckets {
		if H.buckets[i].IsEmpty() {
			fmt.Fprintf(&sb, "\t%d\t---\n", i)
			continue
		}

		fmt.Fprintf(&sb, "\t%d\t", i)
		iter := H.buckets[i].Records()
		for iter.HasNext() {
			record, _ := iter.Next()
			fmt.Fprintf(&sb, "%s - ", record.Key)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("End\n")

	_, err = io.WriteString(w, sb.String())
	if err != nil {
		err = fmt.Errorf("error while printing hash table: %s", err)
	}

	return
}
