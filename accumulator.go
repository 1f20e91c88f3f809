package seedtree

import "github.com/zeebo/xxh3"

// stateWords is the number of 128-bit words in the accumulator state
// (two words, i.e. 256 bits).
const stateWords = 2

// accumulator is an immutable 256-bit hash state representing one point in
// the seed/key derivation hierarchy. Its state is a pure function of the
// root seed and the ordered sequence of keys folded into it; it carries no
// cursor and no history beyond the final folded words. Every operation
// returns a new value and never mutates the receiver, which is what makes
// derivation independent of any cursor motion on the parent.
type accumulator struct {
	state [stateWords]Word
}

// newAccumulator folds a single seed value into fresh state. The first word
// is the seed's digest, the second word is the digest of the first, so the
// full state carries 256 bits derived from the seed alone.
func newAccumulator(seed Hashable) accumulator {
	h := seed.Sum128()
	return accumulator{state: [stateWords]Word{h, rehash(h)}}
}

// combine folds one more key into the state and returns the result. The
// fold is sequence-sensitive: the new first word is the digest of the full
// current state concatenated with the key's digest, so folding key A then B
// yields a different accumulator than folding B then A.
func (a accumulator) combine(key Hashable) accumulator {
	sb := a.bytes()
	kb := leWord(key.Sum128())
	buf := make([]byte, 0, len(sb)+len(kb))
	buf = append(buf, sb[:]...)
	buf = append(buf, kb[:]...)
	h := xxh3.Hash128(buf)
	return accumulator{state: [stateWords]Word{h, rehash(h)}}
}

// index derives the output value at position i: the seeded digest of the
// state bytes with i as the seed. Position n costs the same as position 0,
// which is what makes random access O(1).
func (a accumulator) index(i uint64) Word {
	b := a.bytes()
	return xxh3.Hash128Seed(b[:], i)
}

// bytes serializes the state little-endian, low word first.
func (a accumulator) bytes() [stateWords * wordBytes]byte {
	var b [stateWords * wordBytes]byte
	for i, w := range a.state {
		lw := leWord(w)
		copy(b[i*wordBytes:], lw[:])
	}
	return b
}

func rehash(w Word) Word {
	b := leWord(w)
	return xxh3.Hash128(b[:])
}
