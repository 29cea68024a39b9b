package flatter

import "encoding/binary"

// Builder constructs one value of a given Tag. Builders compose: a tuple
// Builder holds one child Builder per field, a vector Builder holds one
// child Builder per element, and Finish on the root performs the two-pass
// emit described in §4.B — headers (with dynamic fields as zeroed
// placeholder offset slots) are written first, then every dynamic child's
// payload is appended to the section immediately following, and finally
// each placeholder slot is backpatched with its child's absolute offset.
type Builder struct {
	tag Tag

	// scalar holds this Builder's raw bytes when tag.Kind == KindPrimitive.
	scalar []byte

	// fields holds one child per tag.Fields entry when tag.Kind == KindTuple.
	fields []*Builder

	// elems holds one child per vector element when tag.Kind == KindVector.
	elems []*Builder
}

// NewScalarBuilder wraps raw, already-encoded bytes as a primitive value.
// len(bytes) must equal tag.Primitive.Size.
func NewScalarBuilder(tag Tag, bytes []byte) *Builder {
	return &Builder{tag: tag, scalar: bytes}
}

func scalarTag(size, align int) Tag { return Primitive(size, align) }

// Uint8Tag, Uint32Tag, etc. are the primitive Tags used throughout the rest
// of the toolkit (dense indices, ground-atom ids, byte flags).
var (
	Uint8Tag   = scalarTag(1, 1)
	Uint16Tag  = scalarTag(2, 2)
	Uint32Tag  = scalarTag(4, 4)
	Uint64Tag  = scalarTag(8, 8)
	Int32Tag   = Uint32Tag
	Int64Tag   = Uint64Tag
	Float64Tag = scalarTag(8, 8)
)

func NewUint8(v uint8) *Builder   { return NewScalarBuilder(Uint8Tag, []byte{v}) }
func NewUint32(v uint32) *Builder { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, v); return NewScalarBuilder(Uint32Tag, b) }
func NewUint64(v uint64) *Builder { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, v); return NewScalarBuilder(Uint64Tag, b) }
func NewInt32(v int32) *Builder   { return NewUint32(uint32(v)) }
func NewInt64(v int64) *Builder   { return NewUint64(uint64(v)) }

// NewTupleBuilder returns a Builder for a tuple tag, with every field set
// to its zero Builder; use SetField to populate them before Finish.
func NewTupleBuilder(tag Tag) *Builder {
	return &Builder{tag: tag, fields: make([]*Builder, len(tag.Fields))}
}

// SetField assigns the Builder for field i. child's tag must match
// tag.Fields[i] (not checked here; a mismatch is a caller bug caught by
// whatever later reads the view incorrectly).
func (b *Builder) SetField(i int, child *Builder) {
	b.fields[i] = child
}

// NewVectorBuilder returns an empty vector Builder over elem.
func NewVectorBuilder(elem Tag) *Builder {
	return &Builder{tag: Vector(elem)}
}

// Append adds one element to a vector Builder.
func (b *Builder) Append(elem *Builder) {
	b.elems = append(b.elems, elem)
}

// Len reports how many elements have been appended so far.
func (b *Builder) Len() int { return len(b.elems) }

// Finish emits b (and everything it transitively references) into a fresh
// Buffer and returns its bytes. The root value always starts at offset 0.
func (b *Builder) Finish() []byte {
	buf := NewBuffer(64)
	b.write(buf)
	return buf.Bytes()
}

// write appends b's encoding to buf and returns the absolute offset its
// value starts at.
func (b *Builder) write(buf *Buffer) int {
	switch b.tag.Kind {
	case KindPrimitive:
		buf.PadTo(b.tag.Primitive.Align)
		return buf.AppendBytes(b.scalar)

	case KindTuple:
		return b.writeTuple(buf)

	case KindVector:
		return b.writeVector(buf)

	default:
		panic("flatter: unknown tag kind")
	}
}

func (b *Builder) writeTuple(buf *Buffer) int {
	layout, fo := ComputeTupleLayout(b.tag.Fields)
	buf.PadTo(layout.Align)
	headerOff := buf.AppendPadding(layout.Size)

	type pending struct {
		slotOff int
		child   *Builder
	}
	var deferred []pending

	for i, field := range b.tag.Fields {
		child := b.fields[i]
		slotOff := headerOff + fo.Offsets[i]
		if field.Dynamic() {
			deferred = append(deferred, pending{slotOff, child})
			continue
		}
		inline := make([]byte, field.HeaderLayout().Size)
		writeStaticInline(inline, child)
		buf.PatchBytes(slotOff, inline)
	}

	for _, p := range deferred {
		childOff := p.child.write(buf)
		buf.PatchUint32(p.slotOff, uint32(childOff))
	}

	return headerOff
}

// writeStaticInline fills dst (sized to b.tag's own layout) with b's bytes
// without touching a Buffer at all: b.tag is guaranteed non-dynamic here,
// so it can contain no offset-indirected descendants.
func writeStaticInline(dst []byte, b *Builder) {
	switch b.tag.Kind {
	case KindPrimitive:
		copy(dst, b.scalar)
	case KindTuple:
		_, fo := ComputeTupleLayout(b.tag.Fields)
		for i, field := range b.tag.Fields {
			sz := field.HeaderLayout().Size
			writeStaticInline(dst[fo.Offsets[i]:fo.Offsets[i]+sz], b.fields[i])
		}
	default:
		panic("flatter: a vector tag is always dynamic")
	}
}

func (b *Builder) writeVector(buf *Buffer) int {
	elem := *b.tag.Elem
	n := len(b.elems)

	buf.PadTo(4)
	headerOff := buf.AppendPadding(4)
	binary.LittleEndian.PutUint32(buf.data[headerOff:headerOff+4], uint32(n))

	if !elem.Dynamic() {
		elemSize := elem.HeaderLayout().Size
		buf.PadTo(elem.HeaderLayout().Align)
		for _, e := range b.elems {
			inline := make([]byte, elemSize)
			writeStaticInline(inline, e)
			buf.AppendBytes(inline)
		}
		return headerOff
	}

	buf.PadTo(4)
	slotsOff := buf.AppendPadding(4 * n)
	for i, e := range b.elems {
		childOff := e.write(buf)
		buf.PatchUint32(slotsOff+4*i, uint32(childOff))
	}
	return headerOff
}
