package valla

import "github.com/simon-stahlberg/mimir-sub009/bitset"

// Tree is the canonical tree encoder of §4.E, composed with the Tree variant
// of the Swiss-table HashIDMap from §4.F: an internal Table that hash-conses
// tree nodes (and may rehash/move indices at any insert), plus a stable root
// table whose indices never move and whose Ref field is patched in place
// whenever the internal table rehashes underneath it.
//
// The zero Tree is not ready to use; call NewTree.
type Tree struct {
	internal  *Table
	bitsets   *bitsetRepo
	roots     []Root
	rootIndex map[Root]int
}

// NewTree returns a Tree containing only the pre-inserted empty root at
// index 0, matching the original_source construction which seeds its root
// table with the empty sequence up front.
func NewTree() *Tree {
	tr := &Tree{
		internal:  NewTable(64),
		bitsets:   newBitsetRepo(),
		roots:     []Root{Empty},
		rootIndex: map[Root]int{Empty: 0},
	}
	tr.internal.onRemap = tr.handleRemap
	return tr
}

// NumRoots returns the number of distinct encoded sequences interned so far.
func (tr *Tree) NumRoots() int { return len(tr.roots) }

// NumInternalSlots returns the number of distinct internal tree nodes
// currently hash-consed. This count is meaningful only until the next
// rehash moves indices around; it is exposed for diagnostics, not for
// indexing by callers.
func (tr *Tree) NumInternalSlots() int { return tr.internal.Len() }

// RootAt returns the Root value stored at a stable root index.
func (tr *Tree) RootAt(index int) Root { return tr.roots[index] }

// Insert encodes a sorted sequence of non-negative integers into a chain of
// canonically-oriented balanced binary trees, hash-consing every internal
// node and the sequence's root itself, and returns the root's stable index
// together with its value.
//
// values must already be sorted ascending; Insert does not re-sort it (the
// encoding's canonicalization operates on subtree *identity*, not on
// reordering an unsorted caller input — see §4.E).
func (tr *Tree) Insert(values []int) (index int, root Root) {
	n := len(values)
	switch {
	case n == 0:
		return tr.internRoot(Empty)
	case n == 1:
		return tr.internRoot(Root{Ref: Leaf(values[0]), Size: 1, Ordering: -1})
	}

	// Encoding adds at most n-1 internal slots. Growing up front means no
	// rehash happens mid-encode, where it would leave the child Refs held
	// by encodeRange pointing at old indices.
	for (tr.internal.size+n-1)*maxLoadDen > tr.internal.cap*maxLoadNum {
		tr.internal.grow()
	}
	width := bitCeil(n)
	bits := make([]bool, width)
	ref := tr.encodeRange(values, 0, n, 0, bits)

	set := make([]int, 0, width)
	for b, v := range bits {
		if v {
			set = append(set, b)
		}
	}
	ordering := tr.bitsets.intern(width, set)

	return tr.internRoot(Root{Ref: ref, Size: n, Ordering: ordering})
}

// encodeRange recursively splits values[lo:hi] at bit_floor(n-1), as in
// §4.E step 3, threading a breadth-first node index so that the ordering
// bitset can later be read back in the same traversal order.
func (tr *Tree) encodeRange(values []int, lo, hi, bitIndex int, bits []bool) Ref {
	n := hi - lo
	if n == 1 {
		return Leaf(values[lo])
	}

	mid := bitFloor(n - 1)
	left := tr.encodeRange(values, lo, lo+mid, 2*bitIndex+1, bits)
	right := tr.encodeRange(values, lo+mid, hi, 2*bitIndex+2, bits)

	// A rehash renumbers internal nodes, which can flip refOrderKey between
	// two children; a parent that already exists is reused in the
	// orientation it was first stored in.
	if _, ok := tr.internal.Lookup(Slot{Left: left, Right: right}); !ok {
		if _, ok := tr.internal.Lookup(Slot{Left: right, Right: left}); ok || refOrderKey(right) < refOrderKey(left) {
			left, right = right, left
			bits[bitIndex] = true
		}
	}

	idx, _ := tr.internal.Insert(Slot{Left: left, Right: right})
	return Node(idx)
}

// refOrderKey gives the integer used to decide which child goes left: a
// leaf orders by its raw value, an internal node orders by its (transient)
// table index. This mirrors the original_source implementation, which
// reuses a single integer type for both raw elements and internal table
// indices and compares them directly — the canonicalization this buys is
// about making two discovery orders of the same subtree pair collapse onto
// the same parent Slot, not about sorting by element value.
func refOrderKey(r Ref) int {
	if r.IsInternal {
		return r.Internal
	}
	return r.Value
}

// Read decodes root back into the original sorted sequence.
func (tr *Tree) Read(root Root) []int {
	switch root.Size {
	case 0:
		return nil
	case 1:
		return []int{root.Ref.Value}
	}
	out := make([]int, 0, root.Size)
	ordering := tr.bitsets.get(root.Ordering)
	tr.decodeRange(root.Ref, root.Size, 0, ordering, &out)
	return out
}

func (tr *Tree) decodeRange(ref Ref, n, bitIndex int, ordering bitset.Allocation, out *[]int) {
	if n == 1 {
		*out = append(*out, ref.Value)
		return
	}
	slot := tr.internal.At(ref.Internal)
	left, right := slot.Left, slot.Right
	if ordering.Get(bitIndex) {
		left, right = right, left
	}
	mid := bitFloor(n - 1)
	tr.decodeRange(left, mid, 2*bitIndex+1, ordering, out)
	tr.decodeRange(right, n-mid, 2*bitIndex+2, ordering, out)
}

func (tr *Tree) internRoot(r Root) (int, Root) {
	if idx, ok := tr.rootIndex[r]; ok {
		return idx, tr.roots[idx]
	}
	idx := len(tr.roots)
	tr.roots = append(tr.roots, r)
	tr.rootIndex[r] = idx
	return idx, r
}

// handleRemap is installed as the internal Table's onRemap hook (§4.F
// "DFS-rehash that preserves structural sharing"). A root's Ref.Internal
// value moved along with everything else in the internal table's rehash;
// its Size and Ordering did not, so only Ref needs patching. Because a
// rehash changes the content of live Root values, the content-keyed index
// used for hash-consing must be rebuilt from scratch afterward — but the
// dense root indices callers hold onto never change, which is the
// stability guarantee of §3 ("Root indices ... are stable across
// rehashes").
func (tr *Tree) handleRemap(oldToNew []int) {
	newIndex := make(map[Root]int, len(tr.roots))
	for i, r := range tr.roots {
		if r.Ref.IsInternal {
			r.Ref = Node(oldToNew[r.Ref.Internal])
			tr.roots[i] = r
		}
		newIndex[r] = i
	}
	tr.rootIndex = newIndex
}
