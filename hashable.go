package seedtree

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/zeebo/xxh3"
)

// Word is the fixed-width digest value the whole library is built on.
// It is the 128-bit output of the xxh3 hash.
type Word = xxh3.Uint128

// Hashable is the capability a type must provide to be usable as a seed or
// derivation key: a deterministic conversion of its value into a single
// 128-bit digest. The conversion must be stable across runs and platforms,
// so all implementations in this package hash little-endian byte encodings.
//
// User-defined struct types implement Hashable by folding their fields in
// declaration order with HashValues. Types with multiple variants should
// fold a variant tag before their fields so that distinct variants cannot
// collide.
type Hashable interface {
	Sum128() Word
}

// Key types for the built-in kinds. Numeric types hash their little-endian
// byte encoding, so e.g. Int32(10) and Uint32(10) hash equal while
// Uint32(10) and Uint64(10) do not (different widths).
type (
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	Rune    rune
	String  string
	Bytes   []byte

	// List folds the digests of its elements in order. Element order is
	// significant: List{a, b} and List{b, a} produce different digests.
	List []Hashable
)

func (v Uint16) Sum128() Word {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(v))
	return xxh3.Hash128(b[:])
}

func (v Uint32) Sum128() Word {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return xxh3.Hash128(b[:])
}

func (v Uint64) Sum128() Word {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return xxh3.Hash128(b[:])
}

func (v Int16) Sum128() Word {
	return Uint16(v).Sum128()
}

func (v Int32) Sum128() Word {
	return Uint32(v).Sum128()
}

func (v Int64) Sum128() Word {
	return Uint64(v).Sum128()
}

func (v Float32) Sum128() Word {
	return Uint32(math.Float32bits(float32(v))).Sum128()
}

func (v Float64) Sum128() Word {
	return Uint64(math.Float64bits(float64(v))).Sum128()
}

// Rune hashes its UTF-8 encoding, so Rune(r) and String(string(r)) produce
// the same digest.
func (v Rune) Sum128() Word {
	var b [utf8.UTFMax]byte
	n := utf8.EncodeRune(b[:], rune(v))
	return xxh3.Hash128(b[:n])
}

func (v String) Sum128() Word {
	return xxh3.HashString128(string(v))
}

func (v Bytes) Sum128() Word {
	return xxh3.Hash128(v)
}

func (l List) Sum128() Word {
	return HashValues(l...)
}

// HashValues folds the digests of vs in the given order into a single Word.
// It is the helper user-defined types call from their own Sum128 method,
// passing their fields in declaration order.
func HashValues(vs ...Hashable) Word {
	buf := make([]byte, 0, len(vs)*wordBytes)
	for _, v := range vs {
		d := leWord(v.Sum128())
		buf = append(buf, d[:]...)
	}
	return xxh3.Hash128(buf)
}

const wordBytes = 16

// leWord serializes a Word little-endian, low half first, matching the byte
// order every digest in this package is computed over.
func leWord(w Word) [wordBytes]byte {
	var b [wordBytes]byte
	binary.LittleEndian.PutUint64(b[0:8], w.Lo)
	binary.LittleEndian.PutUint64(b[8:16], w.Hi)
	return b
}
