// Copyright 2026 The gc Authors.

package gc

import "unsafe"

// alloc finds or carves a span large enough for size bytes, possibly
// triggering a collection first if the heap is over its growth budget.
func (h *heap) alloc(size int) unsafe.Pointer {
	if size < 0 {
		panic("gc: negative alloc size")
	}
	if !h.initialized {
		panic("gc: Alloc called before Init")
	}

	need := int64(size) + allocHeaderSize

	// Check the threshold before accounting for this request: the
	// request that pushes the counter over the threshold is served
	// without a collection, and the collection runs at the start of
	// the next call.
	if h.bytesAllocated > h.triggerThreshold {
		h.collect()
	}

	// Account before the search runs, so bytesAllocated reflects demand
	// even when the request ends up satisfied by splitting an existing
	// span rather than mapping new memory.
	h.bytesAllocated += need

	span, prev := h.free.findFit(need)
	if span == nil {
		span, prev = h.mapFresh(need)
	}

	var hdr *allocHeader
	if span.size > need {
		hdr = h.free.split(span, need)
	} else {
		h.free.remove(span, prev)
		hdr = (*allocHeader)(unsafe.Pointer(span))
	}

	hdr.mark = 0
	hdr.size = need - allocHeaderSize
	hdr.next = h.allocHead
	h.allocHead = hdr

	h.allocs++
	return payloadOf(hdr)
}

// mapFresh requests a new OS mapping large enough to serve need bytes,
// inserts it into the free list, and re-derives the span now containing
// the freshly mapped memory (which coalescing may have folded into an
// existing neighbor) along with its predecessor.
func (h *heap) mapFresh(need int64) (span, prev *freeHeader) {
	size := need
	if size < MinimumBlockSize {
		size = MinimumBlockSize
	}

	base := osMap(int(size))
	fresh := asFreeHeader(base)
	fresh.size = size - freeHeaderSize
	fresh.next = nil

	h.free.insert(fresh)
	return h.free.spanContaining(uintptr(base))
}
