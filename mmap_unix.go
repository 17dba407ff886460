// Copyright 2011 Evan Shaw. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE-MMAP-GO file.

// Modifications (c) 2026 The gc Authors.

//go:build darwin || dragonfly || freebsd || linux || openbsd || solaris || netbsd

package gc

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// osMap obtains a page-aligned, zero-filled, process-private region of
// exactly size bytes from the OS. It terminates the process on
// failure; the allocator cannot make progress without memory, and
// there is no escape hatch to report the failure back to the caller.
func osMap(size int) unsafe.Pointer {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gc: mmap(%d) failed: %v\n", size, err)
		os.Exit(1)
	}
	return unsafe.Pointer(&b[0])
}
