package memhashmap

import (
	"errors"
	"fmt"
	"io"

	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record, it can be of any length including empty, but not nil
//
// It returns:
//   - value is an owned copy of the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (F *MemHashMap) Get(key []byte) (value []byte, err error) {
	if err = F.checkOpen(); err != nil {
		return
	}
	// Check validity of the key
	if key == nil {
		err = fmt.Errorf("key can not be nil, use an empty key instead")
		return
	}

	stored, err := F.storage.Get(key)
	if err != nil {
		return
	}

	value = utils.CopyBytes(stored)

	return
}

// Set - Updates an existing record with a new value or adds it if no existing is found with same key.
// Both key and value are stored as independent copies, the hash map never aliases caller memory.
//   - key is the identifier of a record, it can be of any length including empty, but not nil
//   - value is the bytes to be stored along with the key, it can be of any length including empty, but not nil
//
// It returns:
//   - err is a standard error, if something went wrong. A failed Set leaves the hash map unchanged.
func (F *MemHashMap) Set(key []byte, value []byte) (err error) {
	if err = F.checkOpen(); err != nil {
		return
	}
	// Check validity of the key
	if key == nil {
		err = fmt.Errorf("key can not be nil, use an empty key instead")
		return
	}
	// Check validity of the value
	if value == nil {
		err = fmt.Errorf("value can not be nil, use an empty value instead")
		return
	}

	err = F.storage.Set(key, value)

	return
}

// Pop - Returns the value corresponding to key and removes the record from the hash map.
//   - key is the identifier of a record, it can be of any length including empty, but not nil
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (F *MemHashMap) Pop(key []byte) (value []byte, err error) {
	if err = F.checkOpen(); err != nil {
		return
	}
	// Check validity of the key
	if key == nil {
		err = fmt.Errorf("key can not be nil, use an empty key instead")
		return
	}

	value, err = F.storage.Pop(key)

	return
}

// Delete - Removes the record corresponding to key from the hash map.
// Removing records never shrinks the bucket array.
//   - key is the identifier of a record, it can be of any length including empty, but not nil
//
// It returns:
//   - err is of type crt.NoRecordFound if no record with the given key was stored, or a standard error if something went wrong
func (F *MemHashMap) Delete(key []byte) (err error) {
	_, err = F.Pop(key)

	return
}

// Exists - Returns whether a record with the given key is present, without exposing its value.
// It is defined in terms of Get, hence a crt.NoRecordFound outcome maps to false rather than an error.
//   - key is the identifier of a record, it can be of any length including empty, but not nil
func (F *MemHashMap) Exists(key []byte) (exists bool, err error) {
	if err = F.checkOpen(); err != nil {
		return
	}
	// Check validity of the key
	if key == nil {
		err = fmt.Errorf("key can not be nil, use an empty key instead")
		return
	}

	_, err = F.storage.Get(key)
	if err == nil {
		exists = true
	} else if errors.Is(err, crt.NoRecordFound{}) {
		err = nil
	}

	return
}

// Clear - Removes all records but leaves the bucket array at its current size.
// The hash map remains valid and usable afterwards, calling Clear on an already empty hash map is a no-op.
func (F *MemHashMap) Clear() (err error) {
	if err = F.checkOpen(); err != nil {
		return
	}

	F.storage.Clear()

	return
}

// Keys - Returns owned copies of every currently stored key, in no defined order.
// The length of the returned slice always equals the number of stored records, an empty hash map gives
// an empty but non nil slice.
func (F *MemHashMap) Keys() (keys [][]byte, err error) {
	if err = F.checkOpen(); err != nil {
		return
	}

	keys = F.storage.Keys()

	return
}

// Len - Returns the number of stored records. A closed hash map reports zero.
func (F *MemHashMap) Len() (length int64) {
	if F.storage == nil {
		return
	}

	return F.storage.GetStorageParameters().Records
}

// GetBucketNo - Returns which bucket number that the given key results in.
// The number is a pure function of the key and the current bucket array size.
//   - key is the identifier of a record, it can be of any length including empty, but not nil
func (F *MemHashMap) GetBucketNo(key []byte) (bucketNo int64, err error) {
	if err = F.checkOpen(); err != nil {
		return
	}
	// Check validity of the key
	if key == nil {
		err = fmt.Errorf("key can not be nil, use an empty key instead")
		return
	}

	bucketNo, err = F.storage.GetBucketNo(key)

	return
}

// Stat - Walks through the entire bucket array and produces a HashMapStat struct with information.
// The walk is purely observational, the hash map is left untouched.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (F *MemHashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	if err = F.checkOpen(); err != nil {
		return
	}

	sp := F.storage.GetStorageParameters()
	hms := HashMapStat{
		Records:         sp.Records,
		NumberOfBuckets: sp.NumberOfBuckets,
	}

	if includeDistribution {
		hms.BucketDistribution = make([]int64, sp.NumberOfBuckets)
	}

	// Iterate over every available bucket
	var chain int64
	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		chain, err = F.storage.ChainLength(i)
		if err != nil {
			return
		}
		if chain == 0 {
			continue
		}

		hms.UsedBuckets++
		hms.TotalCollisions += chain - 1
		if chain > hms.MaxChainLength {
			hms.MaxChainLength = chain
		}
		if includeDistribution {
			hms.BucketDistribution[i] = chain
		}
	}

	hashMapStat = &hms

	return
}

// Dump - Writes every stored key/value pair to the given writer, one "key -> value" line per record.
// Intended for debugging, the order of lines follows bucket order and is not a contract.
func (F *MemHashMap) Dump(w io.Writer) (err error) {
	if err = F.checkOpen(); err != nil {
		return
	}

	keys := F.storage.Keys()
	_, err = fmt.Fprintf(w, "hash map contents (%d records):\n", len(keys))
	if err != nil {
		return
	}

	var value []byte
	for _, key := range keys {
		value, err = F.storage.Get(key)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "  %s -> %s\n", key, value)
		if err != nil {
			return
		}
	}

	return
}
