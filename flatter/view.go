package flatter

import "encoding/binary"

// View is a non-owning (base bytes, offset, tag) triple that reads a value
// without ever deserializing it into a Go value graph, per §4.B: "A View is
// a non-owning pair of (base pointer, offset)".
type View struct {
	Tag    Tag
	Data   []byte
	Offset int
}

// NewView wraps bytes produced by Builder.Finish as a View over tag,
// starting at the root offset (always zero for a freshly finished buffer).
func NewView(tag Tag, bytes []byte) View {
	return View{Tag: tag, Data: bytes, Offset: 0}
}

func (v View) slot(off int) []byte { return v.Data[v.Offset+off:] }

// Uint8 reads this view as a one-byte primitive.
func (v View) Uint8() uint8 { return v.slot(0)[0] }

// Uint32 reads this view as a little-endian 4-byte primitive.
func (v View) Uint32() uint32 { return binary.LittleEndian.Uint32(v.slot(0)) }

// Uint64 reads this view as a little-endian 8-byte primitive.
func (v View) Uint64() uint64 { return binary.LittleEndian.Uint64(v.slot(0)) }

// Int32 and Int64 reinterpret Uint32/Uint64 as signed.
func (v View) Int32() int32 { return int32(v.Uint32()) }
func (v View) Int64() int64 { return int64(v.Uint64()) }

// Field returns the view of tuple field i ("operator[](size_t)" for a
// vector is Index below; this is the tuple analogue, "get<I>()"). If field
// i is dynamic, Field dereferences its offset slot first, per §4.B.
func (v View) Field(i int) View {
	if v.Tag.Kind != KindTuple {
		panic("flatter: Field called on a non-tuple view")
	}
	_, fo := ComputeTupleLayout(v.Tag.Fields)
	field := v.Tag.Fields[i]
	slotOff := v.Offset + fo.Offsets[i]
	if !field.Dynamic() {
		return View{Tag: field, Data: v.Data, Offset: slotOff}
	}
	target := int(binary.LittleEndian.Uint32(v.Data[slotOff : slotOff+4]))
	return View{Tag: field, Data: v.Data, Offset: target}
}

// Len returns a vector view's element count.
func (v View) Len() int {
	if v.Tag.Kind != KindVector {
		panic("flatter: Len called on a non-vector view")
	}
	return int(binary.LittleEndian.Uint32(v.slot(0)))
}

// Index returns the view of vector element i.
func (v View) Index(i int) View {
	if v.Tag.Kind != KindVector {
		panic("flatter: Index called on a non-vector view")
	}
	elem := *v.Tag.Elem
	n := v.Len()
	if i < 0 || i >= n {
		panic("flatter: vector index out of range")
	}

	if !elem.Dynamic() {
		elemSize := elem.HeaderLayout().Size
		elemsOff := v.Offset + 4
		if align := elem.HeaderLayout().Align; align > 1 && elemsOff%align != 0 {
			elemsOff += align - elemsOff%align
		}
		return View{Tag: elem, Data: v.Data, Offset: elemsOff + i*elemSize}
	}

	slotsOff := v.Offset + 4
	slotOff := slotsOff + 4*i
	target := int(binary.LittleEndian.Uint32(v.Data[slotOff : slotOff+4]))
	return View{Tag: elem, Data: v.Data, Offset: target}
}
