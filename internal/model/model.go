package model

// StorageParameters - Represents parameters specific for any implementation of storage
//   - Records is the number of records currently stored
//   - NumberOfBuckets is the current size of the bucket array
//   - InternalAlgorithm is whether the storage uses the internal bucket algorithm or a custom supplied one
type StorageParameters struct {
	Records           int64
	NumberOfBuckets   int64
	InternalAlgorithm bool
}
