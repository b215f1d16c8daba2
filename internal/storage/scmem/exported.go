package scmem

import (
	"fmt"

	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/conf"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// SCMemConf - Is a struct to be passed in the call to NewSCMem and contains configuration that affects
// bucket array management.
//   - HashAlgorithm is the hash function to use, a nil value selects the internal FNV-1a algorithm
type SCMemConf struct {
	HashAlgorithm hashfunc.HashAlgorithm
}

// SCMem - Represents an implementation of in-memory storage for the Separate Chaining Collision Resolution
// Technique. It holds one directly addressable bucket array where each bucket is the head of a singly
// linked chain of records, and it doubles the bucket array whenever an insert would push the load factor
// past conf.MaxLoadFactor.
type SCMem struct {
	buckets           []*record
	numberOfBuckets   int64
	records           int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewSCMem - Returns a pointer to a new instance of Separate Chaining in-memory storage.
//   - scMemConf is a SCMemConf struct providing configuration parameters affecting bucket array management
//
// It returns:
//   - scMem which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCMem(scMemConf SCMemConf) (scMem *SCMem, err error) {
	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	hashAlgorithm := scMemConf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewBucketAlgorithm(conf.InitialNumberOfBuckets)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(conf.InitialNumberOfBuckets)
	}

	numberOfBuckets := hashAlgorithm.GetTableSize()
	if numberOfBuckets < 1 {
		err = fmt.Errorf("hash algorithm reported a table size less than 1")
		return
	}

	scMem = &SCMem{
		buckets:           make([]*record, numberOfBuckets),
		numberOfBuckets:   numberOfBuckets,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Get - Returns the stored value for the given key.
// The returned slice is the storage internal buffer, hence the caller has to copy it if it is to be kept
// past the next mutating operation on the same key.
//
// It returns:
//   - value is the stored value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCMem) Get(key []byte) (value []byte, err error) {
	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	for r := S.buckets[bucketNo]; r != nil; r = r.next {
		if utils.IsEqual(key, r.key) {
			value = r.value
			return
		}
	}

	err = crt.NoRecordFound{}
	return
}

// Set - Updates an existing record with a new value copy or adds a new record at the head of its bucket
// chain if no existing is found with same key. Both key and value are stored as copies owned by the
// storage, the caller supplied slices are never aliased.
//
// If the insert would push the load factor past conf.MaxLoadFactor the bucket array is grown first,
// hence no single insert is ever served by an over-loaded table. Should the hash algorithm be unable to
// serve a bigger table the insert still proceeds at the current size.
func (S *SCMem) Set(key []byte, value []byte) (err error) {
	if float64(S.records+1)/float64(S.numberOfBuckets) > conf.MaxLoadFactor {
		_ = S.grow()
	}

	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	// Try to find an existing record with matching key, the key itself is never touched on update
	for r := S.buckets[bucketNo]; r != nil; r = r.next {
		if utils.IsEqual(key, r.key) {
			r.value = utils.CopyBytes(value)
			return
		}
	}

	S.buckets[bucketNo] = &record{
		key:   utils.CopyBytes(key),
		value: utils.CopyBytes(value),
		next:  S.buckets[bucketNo],
	}
	S.records++

	return
}

// Pop - Returns the stored value for the given key and removes the record from its bucket chain.
// Ownership of the returned value follows the removed record, so the caller is free to keep it.
//
// It returns:
//   - value is the stored value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCMem) Pop(key []byte) (value []byte, err error) {
	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	var prev *record
	for r := S.buckets[bucketNo]; r != nil; r = r.next {
		if utils.IsEqual(key, r.key) {
			if prev == nil {
				S.buckets[bucketNo] = r.next
			} else {
				prev.next = r.next
			}
			S.records--
			value = r.value
			return
		}
		prev = r
	}

	err = crt.NoRecordFound{}
	return
}

// Clear - Removes all records but keeps the bucket array at its current size.
// The bucket array never shrinks for the lifetime of the storage.
func (S *SCMem) Clear() {
	for i := range S.buckets {
		S.buckets[i] = nil
	}
	S.records = 0
}

// Keys - Returns a copy of every stored key. The length of the returned slice always equals the number
// of stored records, an empty storage results in an empty but non nil slice. Order among keys follows
// bucket order which is an implementation artifact and not a contract.
func (S *SCMem) Keys() (keys [][]byte) {
	keys = make([][]byte, 0, S.records)
	for _, r := range S.buckets {
		for ; r != nil; r = r.next {
			keys = append(keys, utils.CopyBytes(r.key))
		}
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record
func (S *SCMem) GetBucketNo(key []byte) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.BucketNumber(key)
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("recieved bucket number from bucket algorithm is outside permitted range")
		return
	}

	return
}

// ChainLength - Returns the number of records in the chain of the given bucket
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (S *SCMem) ChainLength(bucketNo int64) (length int64, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number is outside permitted range")
		return
	}

	for r := S.buckets[bucketNo]; r != nil; r = r.next {
		length++
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters
func (S *SCMem) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		Records:           S.records,
		NumberOfBuckets:   S.numberOfBuckets,
		InternalAlgorithm: S.internalAlgorithm,
	}

	return
}
