// Copyright 2026 The gc Authors.

// Package gc implements a conservative, stop-the-world, mark-and-sweep
// garbage collector intended to be linked into a host program as its
// sole dynamic memory provider. Client code requests memory through
// Alloc and never explicitly releases it; the collector reclaims
// unreachable memory by periodically scanning the mutator's call stack
// for words that look like pointers into managed blocks.
//
// Call Init exactly once, from a frame at or below every subsequent
// mutator frame, before the first call to Alloc.
package gc

import (
	"fmt"
	"os"
	"unsafe"
)

// Verbose gates the collector's human-readable progress lines (threshold
// crossed, mark count, post-sweep live bytes, next threshold, free-list
// length) to os.Stderr. Output is advisory; its exact format is not part
// of this package's API. The idiom mirrors the teacher's own trace-gated
// diagnostics in memory.go.
var Verbose = false

const (
	// MinimumThreshold is the initial and floor trigger_threshold.
	MinimumThreshold = 8 * 1024 * 1024

	// MinimumBlockSize floors a single OS mapping request so small
	// allocations don't each cost a syscall.
	MinimumBlockSize = 4096
)

// heap groups the collector's entire state into a single value so
// tests can build independent instances instead of sharing mutable
// package globals.
type heap struct {
	allocHead *allocHeader
	free      freeList

	bytesAllocated   int64
	triggerThreshold int64
	stackBoundary    uintptr

	markCount int64
	allocs    int64

	initialized bool
}

var globalHeap = heap{triggerThreshold: MinimumThreshold}

// Stats is a read-only snapshot of the collector's diagnostic counters,
// for embedding host programs and tests.
type Stats struct {
	BytesAllocated   int64
	TriggerThreshold int64
	FreeListLen      int
	LastMarkCount    int64
	Allocs           int64
}

// CurrentStats returns a snapshot of the package-level heap's current
// state.
func CurrentStats() Stats {
	return globalHeap.stats()
}

// stats returns a snapshot of the current heap state.
func (h *heap) stats() Stats {
	return Stats{
		BytesAllocated:   h.bytesAllocated,
		TriggerThreshold: h.triggerThreshold,
		FreeListLen:      h.free.len,
		LastMarkCount:    h.markCount,
		Allocs:           h.allocs,
	}
}

// Init must be called exactly once, from a frame at or below every
// subsequent mutator frame. It records the stack boundary: the current
// stack pointer observed here, biased by stackBias to skip Init's own
// locals, becomes the high end of the region later collection cycles
// scan.
func Init() {
	globalHeap.init()
}

func (h *heap) init() {
	if h.initialized {
		panic("gc: Init called more than once")
	}
	h.stackBoundary = stackPointer() + uintptr(stackBias)
	h.initialized = true
}

// Alloc returns the address of a payload of at least size bytes. Memory
// fresh from the OS mapping is zeroed; memory reused from a reclaimed
// span is not. It never returns nil; it terminates the process if the
// OS mapping primitive fails. size must be non-negative.
func Alloc(size int) unsafe.Pointer {
	return globalHeap.alloc(size)
}

func logf(format string, args ...interface{}) {
	if Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
