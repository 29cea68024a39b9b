// Package flatter implements the §4.A/§4.B flat-buffer serialization layer:
// a tag-driven, compile-time-computed layout system that packs tuples,
// vectors and primitive leaves into one contiguous byte buffer, addressable
// by offset-based Views without ever deserializing into a Go value graph.
//
// The layout calculator (Layout, ComputeTupleLayout) is a pure function of a
// Tag, grounded on this project's retrieval-pack teacher's own
// unsafe2/layout package (itself explicitly scoped to "nothing in this
// package is actually unsafe" — Size/Align/Of queries, no pointer
// arithmetic); this package reuses that same split between computing a
// layout and writing into memory, but replaces unsafe.Pointer-based writes
// with plain byte-slice indexing so every offset is checked by the Go
// runtime instead of trusted blindly.
package flatter

// Buffer is an append-only byte stream with alignment-aware padding,
// implementing the §4.A responsibility "append(bytes), append(value),
// append_padding(n), clear, read-only access to the underlying bytes."
//
// Appending past the current capacity moves the contents to a new backing
// array, so a slice obtained earlier from Bytes does not see later writes;
// the offsets the Append methods return stay valid until Clear.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer with capacity pre-reserved.
func NewBuffer(capacityHint int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacityHint)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer's contents. The returned slice aliases the
// Buffer's internal storage and must not be retained across a subsequent
// Append or Clear.
func (b *Buffer) Bytes() []byte { return b.data }

// AppendBytes appends raw bytes verbatim, returning the offset they were
// written at.
func (b *Buffer) AppendBytes(p []byte) int {
	off := len(b.data)
	b.data = append(b.data, p...)
	return off
}

// AppendPadding appends n zero bytes, returning the offset they start at.
func (b *Buffer) AppendPadding(n int) int {
	off := len(b.data)
	for i := 0; i < n; i++ {
		b.data = append(b.data, 0)
	}
	return off
}

// PadTo appends zero bytes, if needed, until Len() is a multiple of align.
func (b *Buffer) PadTo(align int) {
	if align <= 1 {
		return
	}
	if rem := len(b.data) % align; rem != 0 {
		b.AppendPadding(align - rem)
	}
}

// Clear resets the buffer to empty, retaining its backing array.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// PatchUint32 overwrites the little-endian uint32 at byte offset off. Used
// to backpatch a dynamic field's offset slot once its payload's final
// position in the dynamic section is known (§4.B: "finish performs a
// two-pass emit").
func (b *Buffer) PatchUint32(off int, v uint32) {
	b.data[off+0] = byte(v)
	b.data[off+1] = byte(v >> 8)
	b.data[off+2] = byte(v >> 16)
	b.data[off+3] = byte(v >> 24)
}

// PatchBytes overwrites len(p) bytes starting at off. Used to fill in a
// static (inline) field's value once the header region around it has
// already been reserved.
func (b *Buffer) PatchBytes(off int, p []byte) {
	copy(b.data[off:off+len(p)], p)
}
