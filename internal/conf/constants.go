package conf

// InitialNumberOfBuckets - Number of buckets a new hash map starts out with when using the internal
// bucket algorithm, always an exponent of 2
const InitialNumberOfBuckets int64 = 64

// MaxLoadFactor - Highest accepted ratio between number of stored records and number of buckets.
// An insert that would breach it grows the bucket array to double its size before the insert is served.
const MaxLoadFactor float64 = 0.75
