// Copyright 2026 The gc Authors.

package gc

import "unsafe"

// stackBias is the one machine word added to the address stackPointer
// returns when the boundary is recorded, mirroring the original's "+4" bias in
// original_source/input/baseline/gc.c's gc_init (the comment there:
// "Save the current stack pointer as the start of the stack").
const stackBias = unsafe.Sizeof(uintptr(0))

// stackPointer approximates the address of the mutator's current stack
// frame by taking the address of a local variable, the same technique
// original_source/std/baseline/gc.c's get_sp() uses via a volatile local.
// Go has no portable way to read the hardware stack pointer without
// assembly; //go:noinline keeps the compiler from inlining this away and
// returning an address inside the caller's own frame instead.
//
//go:noinline
func stackPointer() uintptr {
	var low byte
	return uintptr(unsafe.Pointer(&low))
}
