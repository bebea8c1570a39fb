package hashtable

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

var fallbackSeed = maphash.MakeSeed()

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K comparable] func(K) uint64

// DefaultHasher hashes the key's canonical byte form with xxhash.
// Strings, integers and floats are hashed directly; other comparable types
// fall back to maphash.Comparable, which agrees with ==.
func DefaultHasher[K comparable](key K) uint64 {
	var buf [8]byte
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int32:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], k)
	case uint32:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case float64:
		binary.LittleEndian.PutUint64(buf[:], floatBits(k))
	case float32:
		binary.LittleEndian.PutUint64(buf[:], floatBits(float64(k)))
	default:
		return maphash.Comparable(fallbackSeed, key)
	}

	return xxhash.Sum64(buf[:])
}

// floatBits folds -0 onto +0, since the two compare equal.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}

	return math.Float64bits(f)
}
