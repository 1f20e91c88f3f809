package seedtree

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// RNG is a deterministic pseudo-random number generator with hierarchical
// derivation and O(1) random access. It pairs an immutable accumulator
// (see accumulator) with a mutable 64-bit cursor; the output at cursor
// position i is a pure function of (accumulator, i).
// This random number generator is deterministic in the sequence of numbers it generates.
// This random number generator supports seeking to any position without generating intermediate values.
// This random number generator can derive independent child generators keyed by arbitrary Hashable values or path strings.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe: Uint64/SeekUint64/FillBytes mutate the cursor,
// so a single instance must not be shared between goroutines without synchronization.
// Deriving children from an instance only reads the accumulator and is safe concurrently
// with cursor motion on that same instance.
// This random number generator has a small memory footprint (40 bytes).
type RNG struct {
	acc    accumulator
	cursor uint64
}

// New creates a root RNG from a seed with the cursor at position 0.
// Two distinguishable seed values produce independent output streams with
// overwhelming probability.
func New(seed Hashable) *RNG {
	return &RNG{acc: newAccumulator(seed)}
}

// NewFromBytes creates a root RNG from a raw byte seed. It is the
// interoperability path for callers that hold an externally supplied seed
// (e.g. 8 bytes from a seed file) rather than a Hashable value; the entropy
// of the stream is bounded by the entropy of the bytes, so prefer New with
// a structured seed where possible. NewFromBytes(b) is equivalent to
// New(Bytes(b)).
func NewFromBytes(seed []byte) *RNG {
	return New(Bytes(seed))
}

// Clone returns an independent copy of g, including its cursor position.
// Advancing or seeking either copy has no effect on the other.
func (g *RNG) Clone() *RNG {
	c := *g
	return &c
}

// Get returns a child RNG derived from g's accumulator and key, with the
// child's cursor at 0. The receiver is not modified, and its cursor
// position is irrelevant: deriving the same key before or after any number
// of Uint64/SeekUint64 calls on g yields an identical child.
func (g *RNG) Get(key Hashable) *RNG {
	return &RNG{acc: g.acc.combine(key)}
}

// Descendant folds the keys into g's accumulator in the given order and
// returns the resulting child, equivalent to chaining one Get call per key.
// With no keys it returns a clone of g.
func (g *RNG) Descendant(keys ...Hashable) *RNG {
	child := g.Clone()
	for _, k := range keys {
		child = child.Get(k)
	}
	return child
}

// Cursor returns the current cursor position, i.e. the index of the value
// the next Uint64 call will produce.
func (g *RNG) Cursor() uint64 {
	return g.cursor
}

// next reads the 128-bit value at the current cursor position and advances
// the cursor by one.
func (g *RNG) next() Word {
	w := g.acc.index(g.cursor)
	g.cursor++
	return w
}

// Uint64 returns the low 64 bits of the value at the current cursor
// position and advances the cursor.
func (g *RNG) Uint64() uint64 {
	return g.next().Lo
}

// Uint32 returns a uniformly distributed uint32, truncated from the value
// at the current cursor position, and advances the cursor.
func (g *RNG) Uint32() uint32 {
	return uint32(g.next().Lo)
}

// Int64 returns a uniformly distributed int64 and advances the cursor.
func (g *RNG) Int64() int64 {
	return int64(g.Uint64())
}

// SeekUint64 sets the cursor to index and returns the value there, leaving
// the cursor at index+1. It is exactly "jump then read one value":
// SeekUint64(n) on a fresh generator returns the same value as the (n+1)th
// Uint64 call, at the same cost as reading position 0.
func (g *RNG) SeekUint64(index uint64) uint64 {
	g.cursor = index
	return g.Uint64()
}

// FillBytes fills b with pseudo-random bytes, consuming one cursor position
// per 8 bytes (little-endian, fill-via-next convention). A trailing chunk
// shorter than 8 bytes consumes one position and discards the unused bytes.
func (g *RNG) FillBytes(b []byte) {
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b[:8], g.Uint64())
		b = b[8:]
	}
	if len(b) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], g.Uint64())
		copy(b, tail[:])
	}
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0) and
// advances the cursor.
// This function will never return -0.0.
// This function will never return 1.0.
// This function will never return NaN or Inf.
// This function uses 52 random bits for the mantissa. This is the maximum randomness
// that can be represented in a float64 without breaking uniformity.
// See: https://en.wikipedia.org/wiki/Double-precision_floating-point_format
func (g *RNG) Float64() float64 {
	u := g.Uint64()

	u &= 0x000FFFFFFFFFFFFF // 52 random bits for mantissa

	const sign uint64 = 0
	const exp uint64 = 1023
	bits := (sign << 63) | (exp << 52) | u
	return math.Float64frombits(bits) - 1.0
}

// Uint32N returns a uniformly distributed number in the half-open interval
// [0,n) and advances the cursor. Use this function for generating random
// indices or sizes for slices or arrays, for example. It avoids division
// and modulo operations and compensates for bias.
// For n=0 and n=1, Uint32N returns 0 (still consuming one cursor position).
//
// For implementation details, see:
//
//	https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
//	https://lemire.me/blog/2016/06/30/fast-random-shuffling
func (g *RNG) Uint32N(n uint32) uint32 {
	v := g.Uint32()
	if n < 2 {
		return 0
	}
	prod := uint64(v) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := uint32(-n) % n
		for low < thresh {
			v = g.Uint32()
			prod = uint64(v) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// *RNG satisfies math/rand's Source64, so it can back a *rand.Rand.
var _ rand.Source64 = (*RNG)(nil)

// Int63 returns a non-negative int64, advancing the cursor. Part of the
// math/rand Source interface.
func (g *RNG) Int63() int64 {
	return int64(g.Uint64() >> 1)
}

// Seed re-roots the generator from a 64-bit seed and resets the cursor to
// 0. Part of the math/rand Source interface; like NewFromBytes this is a
// low-entropy interoperability path, not the primary construction API.
func (g *RNG) Seed(seed int64) {
	*g = RNG{acc: newAccumulator(Int64(seed))}
}
