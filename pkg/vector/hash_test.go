package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	p1 := New2(1.0, 0.5)

	assert.Equal(t, p1.Fingerprint(), New(1.0, 0.5, 0.0).Fingerprint())
	assert.NotEqual(t, p1.Fingerprint(), New2(0.5, 1.0).Fingerprint())
	assert.NotEqual(t, p1.Fingerprint(), New2(1.0, 0.5-1.0e-16).Fingerprint())

	negZero := math.Copysign(0, -1)
	assert.Equal(t, New(0.0, 0.0, 0.0).Fingerprint(), New(negZero, negZero, negZero).Fingerprint())

	assert.Equal(t, New(1, -2, 3).Fingerprint(), New(1, -2, 3).Fingerprint())
	assert.NotEqual(t, New(1, -2, 3).Fingerprint(), New(1, 2, 3).Fingerprint())
}

func TestFingerprint_AsKey(t *testing.T) {
	seen := make(map[uint64]Vector[float64])
	for _, v := range []Vector[float64]{
		New2(1.0, 0.5),
		New2(2.4, 3.9),
		New2(1.0, 0.5-1.0e-17),
	} {
		seen[v.Fingerprint()] = v
	}

	assert.Len(t, seen, 2)
}
