package main

import (
	"fmt"

	"github.com/TomTonic/seedtree"
)

const (
	gridW = 48
	gridH = 16
)

// terrainFor maps a uniform sample in [0,1) to a terrain glyph.
func terrainFor(v float64) byte {
	switch {
	case v < 0.30:
		return '~' // water
	case v < 0.40:
		return '.' // sand
	case v < 0.80:
		return '"' // grass
	default:
		return '^' // mountain
	}
}

func main() {
	world := seedtree.New(seedtree.String("demo-world"))

	// Every tile owns an independent stream, addressable by path. Tiles can
	// be generated in any order (or in parallel) and always come out the
	// same.
	for y := range gridH {
		row := make([]byte, gridW)
		for x := range gridW {
			tile, err := world.Path(fmt.Sprintf("terrain/%d/%d", x, y))
			if err != nil {
				panic(err)
			}
			row[x] = terrainFor(tile.Float64())
		}
		fmt.Println(string(row))
	}

	// The same tile stream is also randomly addressable: the 1000th sample
	// for a tile costs the same as the first.
	tile, err := world.Path("terrain/12/7")
	if err != nil {
		panic(err)
	}
	fmt.Printf("\ntile (12,7): first=%d thousandth=%d\n", tile.SeekUint64(0), tile.SeekUint64(999))
}
