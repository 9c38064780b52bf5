// Package number: structural equality and hashing.
//
// Hash and Equal agree: equal values hash identically. Values of
// different kinds are never equal, which the canonical constructors
// make safe (6/1 is stored as the Integer 6, never as a Rational).
package number

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/apd/v3"
)

// Equal reports exact structural equality of a and b.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInteger:
		return a.i.Cmp(b.i) == 0
	case KindRational:
		return a.r.Cmp(b.r) == 0
	case KindReal:
		return a.d.Cmp(b.d) == 0
	case KindComplex:
		return Equal(*a.re, *b.re) && Equal(*a.im, *b.im)
	case KindFloat:
		return a.f == b.f
	case KindSymbolic:
		return a.s == b.s
	default:
		return false
	}
}

// Hash returns a 64-bit structural hash of v.
func (v Value) Hash() uint64 {
	h := xxhash.New()
	v.hashInto(h)
	return h.Sum64()
}

func (v Value) hashInto(h *xxhash.Digest) {
	_, _ = h.Write([]byte{byte(v.kind)})
	switch v.kind {
	case KindInteger:
		_, _ = h.WriteString(v.i.String())
	case KindRational:
		_, _ = h.WriteString(v.r.Num().String())
		_, _ = h.Write([]byte{'/'})
		_, _ = h.WriteString(v.r.Denom().String())
	case KindReal:
		// Reduce first so 1.0 and 1.00 hash identically, matching
		// the numeric comparison in Equal.
		var red apd.Decimal
		red.Reduce(v.d)
		_, _ = h.WriteString(red.String())
	case KindComplex:
		var buf [16]byte
		binary.BigEndian.PutUint64(buf[:8], v.re.Hash())
		binary.BigEndian.PutUint64(buf[8:], v.im.Hash())
		_, _ = h.Write(buf[:])
	case KindFloat:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v.f))
		_, _ = h.Write(buf[:])
	case KindSymbolic:
		_, _ = h.WriteString(v.s)
	}
}
