// Package valla implements the §4.E/§4.F canonical set-encoding engine: an
// ordered sequence of non-negative integers is compressed into a chain of
// perfectly balanced, canonically-oriented binary trees, hash-consed through
// a Swiss-table-style open-addressed map, with a side bitset pool recording
// the per-node swap decisions needed to recover the original order.
//
// This is the piece of the toolkit that makes successor-state bookkeeping
// cheap: two states that contain the same set of ground atoms, built up
// through entirely different action sequences, always collapse onto the
// same root — same internal tree index, same size, same ordering bitset
// identity — which is what lets the search layer use that triple as an O(1)
// state-equality key instead of comparing sorted slices.
package valla

import "math/bits"

// Ref is a child reference inside the canonical tree: either a raw leaf
// value (an element of the encoded set) or an index into the internal slot
// table. Which one it is, is determined structurally: the bit-floor split
// used to build the tree always lands on a subtree of size 1 in exactly the
// same places on decode as it did on encode, so a reader always knows which
// interpretation applies for a given child without consulting the Ref
// itself.
//
// A discriminant is nonetheless carried explicitly here rather than relying
// purely on that structural knowledge, trading a few bytes of redundancy for
// an implementation that can be checked for self-consistency without a
// compiler in the loop.
type Ref struct {
	IsInternal bool
	Value      int // meaningful when !IsInternal
	Internal   int // meaningful when IsInternal: index into Table's slots
}

// Leaf builds a Ref to a raw element value.
func Leaf(v int) Ref { return Ref{IsInternal: false, Value: v} }

// Node builds a Ref to an internal slot index.
func Node(i int) Ref { return Ref{IsInternal: true, Internal: i} }

// Slot is the payload of one internal tree node: two children, left always
// holding the structurally-smaller subtree per the canonicalization
// invariant in §3.
type Slot struct {
	Left, Right Ref
}

// Root is the root of one encoded sequence: an index into the internal
// slot table (or a raw value, when the sequence has exactly one element,
// or the zero Root, when it is empty), the element count, and the identity
// of the ordering bitset recording swap decisions made while encoding.
//
// Two Roots describing sequences with identical sorted contents are always
// field-for-field equal: same Ref, same Size, same Ordering index. This is
// the structural-sharing guarantee in §3 ("root indices ... are stable")
// restated at the value level.
type Root struct {
	Ref      Ref
	Size     int
	Ordering int // index into the bitset uniqueness table; -1 when Size <= 1
}

// Empty is the canonical root of the empty sequence.
var Empty = Root{Ref: Leaf(0), Size: 0, Ordering: -1}

// bitFloor returns the largest power of two <= n, for n >= 1.
func bitFloor(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(n)) - 1)
}
