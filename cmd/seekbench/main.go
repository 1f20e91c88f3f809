// seekbench times random access against sequential generation. Reading the
// value at position n via SeekUint64 costs the same as reading position 0;
// walking there with n Uint64 calls does not.
package main

import (
	"fmt"
	"math"

	"github.com/TomTonic/seedtree"
)

const calibrationRounds = 1_000_000

// timerPrecision returns the smallest positive difference observable between
// two consecutive sampleTime calls, in nanoseconds.
func timerPrecision() int64 {
	minDiff := int64(math.MaxInt64)
	for range calibrationRounds {
		t1 := sampleTime()
		t2 := sampleTime()
		diff := diffNanos(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}

// timeSeek measures the total time of reps SeekUint64(position) calls.
func timeSeek(g *seedtree.RNG, position uint64, reps int) int64 {
	var sink uint64
	t1 := sampleTime()
	for range reps {
		sink ^= g.SeekUint64(position)
	}
	t2 := sampleTime()
	_ = sink
	return diffNanos(t1, t2)
}

// timeWalk measures the time to reach and read position by sequential
// generation: position+1 Uint64 calls covering positions 0 through position.
func timeWalk(g *seedtree.RNG, position uint64) int64 {
	var sink uint64
	t1 := sampleTime()
	sink ^= g.SeekUint64(0)
	for range position {
		sink ^= g.Uint64()
	}
	t2 := sampleTime()
	_ = sink
	return diffNanos(t1, t2)
}

func main() {
	fmt.Printf("timer precision: %d ns\n\n", timerPrecision())

	g := seedtree.New(seedtree.String("seekbench"))
	const reps = 1_000_000

	for _, position := range []uint64{0, 1_000, 1_000_000, 100_000_000} {
		seekTotal := timeSeek(g, position, reps)
		fmt.Printf("seek(%12d): %6.1f ns/op", position, float64(seekTotal)/float64(reps))
		if position > 0 && position <= 1_000_000 {
			walk := timeWalk(g, position)
			fmt.Printf("   sequential read of positions 0..%d: %d ns total", position, walk)
		}
		fmt.Println()
	}
}
