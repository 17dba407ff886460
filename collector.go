// Copyright 2026 The gc Authors.

package gc

import "unsafe"

const wordSize = unsafe.Sizeof(uintptr(0))

// collect runs one mark/sweep cycle synchronously on the mutator's
// thread, then recomputes the next trigger threshold from what's left
// allocated.
func (h *heap) collect() {
	logf("gc: reached threshold of %d bytes, starting collection\n", h.bytesAllocated)

	h.mark()
	logf("gc: mark done, objects marked %d\n", h.markCount)

	h.sweep()
	logf("gc: sweep done, %d bytes allocated\n", h.bytesAllocated)

	h.triggerThreshold = max(h.bytesAllocated*2, MinimumThreshold)
	h.bytesAllocated = 0
	logf("gc: next threshold is %d bytes, free list length %d\n", h.triggerThreshold, h.free.len)
}

// mark scans the mutator stack word by word from the current low stack
// address up to the recorded boundary, conservatively marking anything
// that looks like a pointer into a live allocation and transitively
// marking reachable payloads. The worklist is explicit, not recursive,
// so a deep object graph can't overflow the Go call stack.
func (h *heap) mark() {
	h.markCount = 0

	var worklist []*allocHeader

	low := stackPointer()
	for addr := low; addr < h.stackBoundary; addr += wordSize {
		word := *(*uintptr)(unsafe.Pointer(addr))
		h.markCandidate(word, &worklist)
	}

	for len(worklist) > 0 {
		n := len(worklist) - 1
		hdr := worklist[n]
		worklist = worklist[:n]

		payload := payloadOf(hdr)
		words := hdr.size / int64(wordSize)
		for i := int64(0); i < words; i++ {
			word := *(*uintptr)(unsafe.Pointer(uintptr(payload) + uintptr(i)*uintptr(wordSize)))
			h.markCandidate(word, &worklist)
		}
	}
}

// markCandidate classifies a single machine word found during the
// scan: a hit requires it to equal a live payload's base address
// exactly. Interior pointers are never recognized.
func (h *heap) markCandidate(p uintptr, worklist *[]*allocHeader) {
	if p == 0 {
		return
	}

	for cur := h.allocHead; cur != nil; cur = cur.next {
		if uintptr(payloadOf(cur)) == p {
			if cur.mark == 0 {
				cur.mark = 1
				h.markCount++
				*worklist = append(*worklist, cur)
			}
			return
		}
	}
}

// sweep walks the allocation list once, reclaiming unmarked blocks to
// the free list and clearing the mark bit of survivors.
func (h *heap) sweep() {
	var prev *allocHeader
	cur := h.allocHead

	for cur != nil {
		next := cur.next

		if cur.mark == 0 {
			if prev == nil {
				h.allocHead = next
			} else {
				prev.next = next
			}

			h.bytesAllocated -= cur.size + allocHeaderSize

			// The reclaimed span's size is grown by headerDelta, not
			// by allocHeaderSize: the free header is Δ bytes smaller
			// than the allocation header it replaces, so the span's
			// free size is its whole length minus freeHeaderSize —
			// the same accounting as a span mapped fresh.
			free := asFreeHeader(unsafe.Pointer(cur))
			free.size = cur.size + headerDelta
			free.next = nil
			h.free.insert(free)
		} else {
			cur.mark = 0
			prev = cur
		}

		cur = next
	}
}
