package memhashmap

import (
	"fmt"

	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/scmem"
)

// StorageManagement - Interface for any storage implementation
type StorageManagement interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
	Pop(key []byte) (value []byte, err error)
	Clear()
	Keys() (keys [][]byte)
	GetBucketNo(key []byte) (bucketNo int64, err error)
	ChainLength(bucketNo int64) (length int64, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the number of buckets the hash map starts out with
//   - MaxLoadFactor is the load factor that, when an insert would breach it, doubles the bucket array
//   - InternalAlgorithm is whether the hash map uses the internal bucket algorithm or a custom supplied one
type HashMapInfo struct {
	NumberOfBuckets   int64
	MaxLoadFactor     float64
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - UsedBuckets is the number of buckets with at least one record
//   - MaxChainLength is the longest chain over all buckets
//   - TotalCollisions is the sum over buckets of chain length - 1 for all non empty buckets
//   - NumberOfBuckets is the current size of the bucket array
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	UsedBuckets        int64
	MaxChainLength     int64
	TotalCollisions    int64
	NumberOfBuckets    int64
	BucketDistribution []int64
}

// MemHashMap - The main implementation struct.
//
// A MemHashMap is not safe for concurrent use, callers sharing one instance between goroutines have to
// serialize access to it. Every operation is a bounded synchronous computation.
type MemHashMap struct {
	storage StorageManagement
	// Close - Releases all records and the bucket array and invalidates the hash map for any further
	// operation. Use this preferably in a "defer" directly after a NewMemHashMap. Calling it more than
	// once is a no-op.
	Close func()
}

// NewMemHashMap - Returns a new in-memory hash map starting out with an empty bucket array of
// conf.InitialNumberOfBuckets buckets. The bucket array doubles automatically whenever an insert would
// push the load factor past conf.MaxLoadFactor, it never shrinks.
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal FNV-1a algorithm.
//
// It returns:
//   - hashMap is a pointer to a MemHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is a normal Go Error which should be nil if everything went ok
func NewMemHashMap(hashAlgorithm hashfunc.HashAlgorithm) (hashMap *MemHashMap, hashMapInfo HashMapInfo, err error) {
	var sm StorageManagement
	sm, err = scmem.NewSCMem(scmem.SCMemConf{HashAlgorithm: hashAlgorithm})
	if err != nil {
		return
	}

	// Prepare return data
	hashMap = &MemHashMap{storage: sm}
	hashMap.Close = func() { hashMap.storage = nil }

	sp := sm.GetStorageParameters()

	hashMapInfo = HashMapInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		MaxLoadFactor:     conf.MaxLoadFactor,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// checkOpen - Guards every operation against use after Close
func (F *MemHashMap) checkOpen() (err error) {
	if F.storage == nil {
		err = fmt.Errorf("hash map is closed")
	}

	return
}
