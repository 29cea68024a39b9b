package flatter

import "unsafe"

// SizeOf returns T's size in bytes, and AlignOf its alignment. Both are read
// through unsafe.Sizeof/unsafe.Alignof, which — unlike unsafe.Pointer
// arithmetic — never dereference memory; they are pure, compile-time-folded
// queries about a type's shape, the same safe subset the teacher's own
// layout helper restricts itself to.
func SizeOf[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

func AlignOf[T any]() int {
	var z T
	return int(unsafe.Alignof(z))
}

// Layout is the size and alignment of some field or composite, computed
// once per Tag and reused for every Builder/View pair over that Tag (§4.A:
// "Layouts are pure functions of the tag").
type Layout struct {
	Size, Align int
}

// Max returns a Layout as large (in both size and alignment) as the larger
// of l and other — used when combining element layouts into a composite's
// overall alignment.
func (l Layout) Max(other Layout) Layout {
	return Layout{max(l.Size, other.Size), max(l.Align, other.Align)}
}

// dynamicFieldLayout is the layout of the fixed-width offset slot a dynamic
// field occupies inline in its parent's header; the payload it points to
// lives in the dynamic section appended after every header field.
var dynamicFieldLayout = Layout{Size: 4, Align: 4}

// Kind distinguishes the three shapes a Tag can take: a fixed-width
// primitive leaf, a tuple of heterogeneous fields, or a vector of
// homogeneous elements.
type Kind int

const (
	KindPrimitive Kind = iota
	KindTuple
	KindVector
)

// Tag describes, recursively, the shape of one flat-buffer value — the
// "type tag" the layout calculator, Builder and View are all indexed by.
// Tag values are built once (typically as package-level vars) and shared
// across every Builder/View instantiated against them.
type Tag struct {
	Kind      Kind
	Primitive Layout // meaningful when Kind == KindPrimitive
	Fields    []Tag  // meaningful when Kind == KindTuple
	Elem      *Tag   // meaningful when Kind == KindVector
}

// Primitive returns a Tag for a fixed-width scalar leaf of the given size
// and alignment (both in bytes).
func Primitive(size, align int) Tag {
	return Tag{Kind: KindPrimitive, Primitive: Layout{size, align}}
}

// Tuple returns a Tag for an ordered tuple of fields, mirroring §3's
// "Flat buffer ... For a tuple (T1...Tn)".
func Tuple(fields ...Tag) Tag {
	return Tag{Kind: KindTuple, Fields: fields}
}

// Vector returns a Tag for a vector of homogeneous elem values.
func Vector(elem Tag) Tag {
	return Tag{Kind: KindVector, Elem: &elem}
}

// Dynamic reports whether a value of this tag is offset-indirected rather
// than stored inline: every vector is dynamic (its length is not known
// until construction), and a tuple is dynamic iff any of its fields is.
func (t Tag) Dynamic() bool {
	switch t.Kind {
	case KindVector:
		return true
	case KindTuple:
		for _, f := range t.Fields {
			if f.Dynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// HeaderLayout returns the size/alignment this tag's value occupies inline
// in its parent's header: for a dynamic tag this is exactly the fixed-width
// offset slot; for a static tag it is the tag's own composite layout.
func (t Tag) HeaderLayout() Layout {
	if t.Dynamic() {
		return dynamicFieldLayout
	}
	return t.Layout()
}

// Layout computes this tag's own size and alignment: for a primitive, as
// given; for a tuple, per §3's offset/padding rule (each field's offset is
// a multiple of its own alignment, composite alignment is the max of its
// parts); for a vector, undefined statically (it depends on the runtime
// element count), so Layout reports {Size: 0, Align: 1} for it; a vector
// only ever appears as a dynamic field, whose header slot is described by
// HeaderLayout.
func (t Tag) Layout() Layout {
	switch t.Kind {
	case KindPrimitive:
		return t.Primitive
	case KindTuple:
		l, _ := ComputeTupleLayout(t.Fields)
		return l
	default:
		return Layout{Size: 0, Align: 1}
	}
}

// FieldOffsets is the result of laying out a tuple's fields: Offsets[i] is
// the byte offset of field i's header-slot within the tuple's header
// region (either the field's inline static value, or its dynamic offset
// slot), and Size/Align is the composite layout of the whole tuple header.
type FieldOffsets struct {
	Offsets []int
	Layout  Layout
}

// ComputeTupleLayout lays out fields left to right, inserting alignment
// padding before each one so its offset is a multiple of its own
// alignment (its HeaderLayout alignment, i.e. 4 for a dynamic field), and
// reports the composite's own alignment as the max of every field's
// alignment, per §3.
func ComputeTupleLayout(fields []Tag) (Layout, FieldOffsets) {
	offsets := make([]int, len(fields))
	cursor := 0
	align := 1
	for i, f := range fields {
		hl := f.HeaderLayout()
		if hl.Align > 1 && cursor%hl.Align != 0 {
			cursor += hl.Align - cursor%hl.Align
		}
		offsets[i] = cursor
		cursor += hl.Size
		if hl.Align > align {
			align = hl.Align
		}
	}
	if align > 1 && cursor%align != 0 {
		cursor += align - cursor%align
	}
	return Layout{Size: cursor, Align: align}, FieldOffsets{Offsets: offsets, Layout: Layout{Size: cursor, Align: align}}
}
