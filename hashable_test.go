package seedtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumbersEqualSum128(t *testing.T) {
	assert.Equal(t, Uint32(10).Sum128(), Uint32(10).Sum128())
	assert.Equal(t, Uint32(10).Sum128(), Int32(10).Sum128())
	assert.Equal(t, Uint64(10).Sum128(), Int64(10).Sum128())
	assert.Equal(t, Uint16(10).Sum128(), Int16(10).Sum128())
}

func TestNumbersNotEqualSum128(t *testing.T) {
	assert.NotEqual(t, Uint32(10).Sum128(), Uint64(10).Sum128())
	assert.NotEqual(t, Int32(-10).Sum128(), Uint32(10).Sum128())
	assert.NotEqual(t, Uint32(10).Sum128(), Uint32(11).Sum128())
	assert.NotEqual(t, Uint32(1).Sum128(), Uint32(3).Sum128())
}

func TestRuneMatchesString(t *testing.T) {
	assert.Equal(t, String("π").Sum128(), Rune('π').Sum128())
	assert.Equal(t, String("a").Sum128(), Rune('a').Sum128())
	assert.NotEqual(t, Rune('a').Sum128(), Rune('b').Sum128())
}

func TestStringAndBytesEquivalence(t *testing.T) {
	assert.Equal(t, String("hello").Sum128(), Bytes([]byte("hello")).Sum128())
	assert.NotEqual(t, String("hello").Sum128(), String("world").Sum128())
}

func TestFloatBitPatternHashing(t *testing.T) {
	assert.Equal(t, Float64(1.5).Sum128(), Float64(1.5).Sum128())
	assert.NotEqual(t, Float64(1.5).Sum128(), Float64(1.5000001).Sum128())
	assert.NotEqual(t, Float32(1.5).Sum128(), Float64(1.5).Sum128())
}

func TestListOrderIsSignificant(t *testing.T) {
	forward := List{Uint64(1), Uint64(2)}
	backward := List{Uint64(2), Uint64(1)}
	assert.NotEqual(t, forward.Sum128(), backward.Sum128())
}

func TestNestedLists(t *testing.T) {
	a := List{List{String("hello"), String("world")}, List{String("stuff"), String("things")}}
	b := List{List{String("hello"), String("world")}, List{String("stuff"), String("things")}}
	assert.Equal(t, a.Sum128(), b.Sum128())

	swapped := List{List{String("stuff"), String("things")}, List{String("hello"), String("world")}}
	assert.NotEqual(t, a.Sum128(), swapped.Sum128())
}

// coordinate and point have identical field sequences; their digests must be
// equal because the Hashable contract, not the Go type identity, determines
// key equality.
type coordinate struct {
	x, y uint64
}

func (c coordinate) Sum128() Word {
	return HashValues(Uint64(c.x), Uint64(c.y))
}

type point struct {
	x, y uint64
}

func (p point) Sum128() Word {
	return HashValues(Uint64(p.x), Uint64(p.y))
}

func TestStructFieldOrderIsSignificant(t *testing.T) {
	parent := New(Uint64(123456))

	child1 := parent.Get(coordinate{x: 1, y: 2})
	child2 := parent.Get(coordinate{x: 2, y: 1})

	for range 1000 {
		assert.NotEqual(t, child1.Uint64(), child2.Uint64())
	}
}

func TestStructurallyEqualTypesHashEqual(t *testing.T) {
	parent := New(Uint64(123456))

	child1 := parent.Get(coordinate{x: 1, y: 2})
	child2 := parent.Get(point{x: 1, y: 2})

	for range 1000 {
		assert.Equal(t, child1.Uint64(), child2.Uint64())
	}
}

// tileKind is an enum-like key: a variant tag folded before the payload, so
// distinct variants with identical payloads cannot collide.
type tileKind struct {
	variant uint64
	depth   uint64
}

func (k tileKind) Sum128() Word {
	return HashValues(Uint64(k.variant), Uint64(k.depth))
}

func TestVariantTagSeparatesKeys(t *testing.T) {
	parent := New(Uint64(123456))

	water := parent.Get(tileKind{variant: 0, depth: 7})
	lava := parent.Get(tileKind{variant: 1, depth: 7})

	assert.NotEqual(t, water.Uint64(), lava.Uint64())
}

func TestHashValuesMatchesList(t *testing.T) {
	vs := []Hashable{String("a"), Uint64(1), Float64(0.5)}
	assert.Equal(t, HashValues(vs...), List(vs).Sum128())
}
