package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// CopyBytes - Returns a copy of the given byte slice with its own backing array.
// A nil input results in an empty but non nil slice.
func CopyBytes(a []byte) (b []byte) {
	b = make([]byte, len(a))
	_ = copy(b, a)

	return
}

// RoundUp2 - Rounds the given value up to the nearest exponent of 2 that can hold it
func RoundUp2(value int64) (rounded int64) {
	rounded = 1
	for rounded < value {
		rounded <<= 1
	}

	return
}
