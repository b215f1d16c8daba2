package scmem

import (
	"fmt"
)

// record - One stored key/value pair in a bucket chain. Key and value are copies exclusively owned by
// the record, next links records hashing to the same bucket.
type record struct {
	key   []byte
	value []byte
	next  *record
}

// grow - Doubles the size of the bucket array and relinks every record according to the new table size.
// Records are moved by pointer relinking only, no keys or values are copied or reallocated.
//
// The relinking is preceded by a validation pass over all stored keys, hence a hash algorithm that
// refuses to grow or that would route an existing key outside the new table leaves the storage unchanged
// at its current size. The caller then continues to operate, over-loaded, on the current bucket array.
func (S *SCMem) grow() (err error) {
	S.hashAlgorithm.SetTableSize(S.numberOfBuckets * 2)
	newSize := S.hashAlgorithm.GetTableSize()
	if newSize <= S.numberOfBuckets {
		S.hashAlgorithm.SetTableSize(S.numberOfBuckets)
		err = fmt.Errorf("hash algorithm could not provide a bigger table size")
		return
	}

	for _, r := range S.buckets {
		for ; r != nil; r = r.next {
			bucketNo := S.hashAlgorithm.BucketNumber(r.key)
			if bucketNo < 0 || bucketNo >= newSize {
				S.hashAlgorithm.SetTableSize(S.numberOfBuckets)
				err = fmt.Errorf("recieved bucket number from bucket algorithm is outside permitted range")
				return
			}
		}
	}

	newBuckets := make([]*record, newSize)
	for _, r := range S.buckets {
		for r != nil {
			next := r.next
			bucketNo := S.hashAlgorithm.BucketNumber(r.key)
			r.next = newBuckets[bucketNo]
			newBuckets[bucketNo] = r
			r = next
		}
	}

	S.buckets = newBuckets
	S.numberOfBuckets = newSize

	return
}
