//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// timeStamp is a relative timestamp with the highest possible precision on
// the current runtime system. Values are only comparable between two calls
// to sampleTime within the same run of the program.
type timeStamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns the performance counter frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("call failed: %v", err))
	}
	return freq
}

// sampleTime returns a timestamp with the highest possible precision on the
// current runtime system.
func sampleTime() timeStamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// diffNanos returns the difference between two timestamps in nanoseconds.
// The result is negative if tLater is earlier than tEarlier.
func diffNanos(tEarlier, tLater timeStamp) int64 {
	result := tLater - tEarlier
	result *= int64(1_000_000_000) // ns per sec
	result /= qpcFrequency
	return result
}
