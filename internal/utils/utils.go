package utils

import "github.com/alexander1616/hashtables/internal/conf"

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

// BoundedKey - Returns the significant part of a key, which is everything up to the first zero byte
// but never more than conf.MaxName bytes.
func BoundedKey(key string) []byte {
	n := len(key)
	if n > conf.MaxName {
		n = conf.MaxName
	}

	for i := 0; i < n; i++ {
		if key[i] == 0 {
			n = i
			break
		}
	}

	return []byte(key[:n])
}

// IsEqualKey - Returns true if the significant parts of the keys a and b are equal
func IsEqualKey(a, b string) bool {
	return IsEqual(BoundedKey(a), BoundedKey(b))
}
