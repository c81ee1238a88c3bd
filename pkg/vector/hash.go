package vector

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit xxhash of the component values.
// Vectors that compare equal have the same fingerprint; +0 and -0 are folded
// together for that reason.
func (v Vector[T]) Fingerprint() uint64 {
	buf := make([]byte, 0, 24)
	buf = binary.LittleEndian.AppendUint64(buf, componentBits(v.x))
	buf = binary.LittleEndian.AppendUint64(buf, componentBits(v.y))
	buf = binary.LittleEndian.AppendUint64(buf, componentBits(v.z))
	return xxhash.Sum64(buf)
}

func componentBits[T Scalar](c T) uint64 {
	if c == 0 {
		return 0
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.Float64bits(rv.Float())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	default:
		return uint64(rv.Int())
	}
}
