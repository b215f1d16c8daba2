package hashfunc

// HashAlgorithm - Interface that permits an implementation using the MemHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash map and again every time the hash map grows its bucket array.
	// Hence, if a custom hash algorithm is supplied and the instance is already having a table size, it
	// will be overwritten.
	//   - tableSize is the number of buckets the hash map will address
	SetTableSize(tableSize int64)

	// BucketNumber - Given key it generates a bucket number between 0 and table size - 1.
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// The function must be deterministic given key and table size since it is re-run for every stored key
	// when the hash map grows its bucket array.
	BucketNumber(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// It is very important that this function returns the actual table size and not just the table size given
	// in a call to SetTableSize. Some algorithms are implemented by rounding up to nearest 2 to the power of x,
	// and if such operations are built in the implementation of this interface it must be covered in the
	// GetTableSize.
	GetTableSize() int64
}
