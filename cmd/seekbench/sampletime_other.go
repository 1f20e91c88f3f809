//go:build !windows

package main

import "time"

// timeStamp is a relative timestamp with the highest possible precision on
// the current runtime system. Values are only comparable between two calls
// to sampleTime within the same run of the program.
type timeStamp = time.Time

// sampleTime returns a timestamp with the highest possible precision on the
// current runtime system.
func sampleTime() timeStamp {
	return time.Now()
}

// diffNanos returns the difference between two timestamps in nanoseconds.
// The result is negative if tLater is earlier than tEarlier.
func diffNanos(tEarlier, tLater timeStamp) int64 {
	return tLater.Sub(tEarlier).Nanoseconds()
}
