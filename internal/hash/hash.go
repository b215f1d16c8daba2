package hash

import (
	"hash/fnv"

	"github.com/gostonefire/memhashmap/internal/utils"
)

// BucketAlgorithm - The internally used bucket selection algorithm is implemented using 64 bit FNV-1a to
// create a hash value over the key and then applying bucket = hash & (tableSize - 1) to get the bucket number,
// where tableSize is the nearest bigger exponent of 2 of the requested table size.
type BucketAlgorithm struct {
	tableSize int64
}

// NewBucketAlgorithm - Returns a pointer to a new BucketAlgorithm instance
func NewBucketAlgorithm(tableSize int64) *BucketAlgorithm {
	ha := &BucketAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
//   - tableSize is the number of buckets the hash map will address
func (B *BucketAlgorithm) SetTableSize(tableSize int64) {
	B.tableSize = utils.RoundUp2(tableSize)
}

// BucketNumber - Given key it generates a bucket number between 0 and table size - 1.
// The empty key is valid input and hashes to the FNV-1a offset basis.
func (B *BucketAlgorithm) BucketNumber(key []byte) int64 {
	h := fnv.New64a()
	_, _ = h.Write(key)
	return int64(h.Sum64() & uint64(B.tableSize-1))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (B *BucketAlgorithm) GetTableSize() int64 {
	return B.tableSize
}
