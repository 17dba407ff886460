// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Modifications (c) 2026 The gc Authors.

package gc

import "unsafe"

// allocHeader is the prefix of every in-use span. It shares its first
// bytes with freeHeader so a span can be reinterpreted between the two
// shapes without moving its payload bytes.
type allocHeader struct {
	mark uint64
	size int64
	next *allocHeader
}

// freeHeader is the prefix of every span currently on the free list.
type freeHeader struct {
	size int64
	next *freeHeader
}

const (
	allocHeaderSize = int64(unsafe.Sizeof(allocHeader{}))
	freeHeaderSize  = int64(unsafe.Sizeof(freeHeader{}))

	// headerDelta is sizeof(alloc header) − sizeof(free header), the
	// number of bytes a span gains or loses when its header is
	// reinterpreted from one shape to the other in place.
	headerDelta = allocHeaderSize - freeHeaderSize
)

// payloadOf returns the address immediately following h, i.e. the
// pointer Alloc hands back to its caller.
func payloadOf(h *allocHeader) unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + uintptr(allocHeaderSize))
}

// headerOfPayload recovers the allocation header from a payload pointer
// previously returned by payloadOf.
func headerOfPayload(p unsafe.Pointer) *allocHeader {
	return (*allocHeader)(unsafe.Pointer(uintptr(p) - uintptr(allocHeaderSize)))
}

// baseAddr and freeEnd give the address range a free span occupies:
// [baseAddr(f), freeEnd(f)).
func baseAddr(f *freeHeader) uintptr {
	return uintptr(unsafe.Pointer(f))
}

func freeEnd(f *freeHeader) uintptr {
	return baseAddr(f) + uintptr(freeHeaderSize) + uintptr(f.size)
}

// asFreeHeader reinterprets raw span bytes (freshly mapped, or a swept
// allocation) as a free header. The caller is responsible for setting
// size and next afterwards.
func asFreeHeader(base unsafe.Pointer) *freeHeader {
	return (*freeHeader)(base)
}
