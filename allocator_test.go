// Copyright 2026 The gc Authors.

package gc

import "testing"

// TestAllocExactMinimumBlock checks the boundary case where allocating
// exactly MinimumBlockSize-sizeof(alloc header) bytes from an empty
// heap consumes exactly one OS mapping and leaves no free span behind
// (the whole mapping is consumed by the single allocation).
func TestAllocExactMinimumBlock(t *testing.T) {
	h := newTestHeap()

	size := MinimumBlockSize - int(allocHeaderSize)
	p := h.alloc(size)
	if p == nil {
		t.Fatal("alloc returned nil")
	}

	if h.free.len != 0 {
		t.Fatalf("expected the mapping to be fully consumed, got %d free spans", h.free.len)
	}
	if headerOfPayload(p).size != int64(size) {
		t.Fatalf("payload size = %d, want %d", headerOfPayload(p).size, size)
	}
}

// TestAllocThenCollectRestoresFreeStructure checks that allocating k
// same-sized blocks, dropping every reference, then collecting returns
// the free list to its pre-allocation shape, modulo a single coalesced
// span absorbing the headers reclaimed along the way.
func TestAllocThenCollectRestoresFreeStructure(t *testing.T) {
	h := newTestHeap()

	// Force exactly one mapping up front, then note its shape.
	_ = h.alloc(16)
	h.collect()
	freeSpansAfterFirstCollect := h.free.len

	const k = 8
	for i := 0; i < k; i++ {
		_ = h.alloc(16)
	}
	h.collect()

	if h.free.len != freeSpansAfterFirstCollect {
		t.Fatalf("free list shape diverged: %d spans before the batch, %d after", freeSpansAfterFirstCollect, h.free.len)
	}
}

// TestAllocAccountsBeforeSearch verifies that one request adds its full
// demand (payload plus allocation header) to the bytesAllocated
// counter. On this fresh heap the request is served by mapping new
// memory and splitting it.
func TestAllocAccountsBeforeSearch(t *testing.T) {
	h := newTestHeap()

	before := h.bytesAllocated
	h.alloc(16)
	want := before + 16 + allocHeaderSize
	if h.bytesAllocated != want {
		t.Fatalf("bytesAllocated = %d, want %d", h.bytesAllocated, want)
	}
}

// TestAllocSplitPreservesHeadPosition checks that when a request is
// satisfied by splitting, the head remnant keeps its place in the free
// list instead of the caller having to re-splice it.
func TestAllocSplitPreservesHeadPosition(t *testing.T) {
	h := newTestHeap()

	h.alloc(16) // first alloc maps MinimumBlockSize and splits it
	headAfterFirst := h.free.head

	h.alloc(16) // second alloc should split the same remnant again
	if h.free.head != headAfterFirst {
		t.Fatal("splitting moved the free list's head span")
	}
}
