// Copyright 2017 The Memory Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Modifications (c) 2026 The gc Authors.

package gc

import "unsafe"

// freeList is the address-ordered singly linked list of free spans.
// The zero value is an empty list.
type freeList struct {
	head *freeHeader
	len  int // diagnostic counter, kept in sync by insert/coalesce/remove
}

// findFit walks the list for the first span whose size is at least
// need, returning it along with its predecessor (nil if it is the
// head). O(n): there is no size index to binary-search.
func (l *freeList) findFit(need int64) (span, prev *freeHeader) {
	for cur, p := l.head, (*freeHeader)(nil); cur != nil; cur, p = cur.next, cur {
		if cur.size >= need {
			return cur, p
		}
	}
	return nil, nil
}

// insert splices span into the list at the position that preserves
// ascending base-address order, then coalesces it with whatever ends up
// adjacent.
func (l *freeList) insert(span *freeHeader) {
	if l.head == nil || baseAddr(span) < baseAddr(l.head) {
		span.next = l.head
		l.head = span
		l.len++
		l.coalesceFrom(span)
		return
	}

	cur := l.head
	for cur.next != nil && baseAddr(cur.next) < baseAddr(span) {
		cur = cur.next
	}

	span.next = cur.next
	cur.next = span
	l.len++

	l.coalesceFrom(cur)
	// coalesceFrom(cur) only reaches span's right neighbor if cur and
	// span merged first (the loop then continues past the merged
	// node). If they didn't — cur.next is still span — span may yet
	// be adjacent to its own successor, so check from span directly.
	if cur.next == span {
		l.coalesceFrom(span)
	}
}

// coalesceFrom merges start with however many of its immediate
// successors are physically adjacent. Absorbing a neighbor reclaims
// that neighbor's header bytes as additional payload.
func (l *freeList) coalesceFrom(start *freeHeader) {
	for start.next != nil && freeEnd(start) == baseAddr(start.next) {
		start.size += freeHeaderSize + start.next.size
		start.next = start.next.next
		l.len--
	}
}

// remove unlinks span, whose predecessor is prev (nil if span is the
// head).
func (l *freeList) remove(span, prev *freeHeader) {
	if prev == nil {
		l.head = span.next
	} else {
		prev.next = span.next
	}
	l.len--
}

// split carves a need-byte tail (including the returning allocation's
// header) off the end of span. Precondition: span.size > need. The
// head remnant keeps its existing list position — only its size field
// shrinks — so the caller never has to re-splice the list for a split.
func (l *freeList) split(span *freeHeader, need int64) *allocHeader {
	span.size -= need
	tail := baseAddr(span) + uintptr(freeHeaderSize) + uintptr(span.size)
	return (*allocHeader)(unsafe.Pointer(tail))
}

// spanContaining locates the free span whose address range contains
// addr, along with its predecessor. Used after mapping fresh memory and
// inserting it: coalescing may have folded the new region into an
// existing neighbor rather than leaving it as its own node, so the
// node and predecessor returned by insert's caller can't be assumed —
// they have to be looked up again by address.
func (l *freeList) spanContaining(addr uintptr) (span, prev *freeHeader) {
	for cur, p := l.head, (*freeHeader)(nil); cur != nil; cur, p = cur.next, cur {
		if addr >= baseAddr(cur) && addr < freeEnd(cur) {
			return cur, p
		}
	}
	return nil, nil
}
