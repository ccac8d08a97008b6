package dcbor

// ValueBuilder incrementally assembles an Array or Map Value, the way the
// teacher CborWriter assembled a byte buffer incrementally: a stack of
// open containers, each tracking how many items (or key/value pairs) have
// been written so far, with StartX/EndX calls that must balance. Unlike
// the teacher, a ValueBuilder never touches bytes directly — it builds a
// Value tree, and the tree as a whole is encoded only when Bytes() or
// Encode() is finally called on the result (map keys are encoded earlier,
// when EndMap inserts them in canonical order). This is the natural shape for
// constructing a large nested Value programmatically (e.g. from a decoded
// host data structure) without juggling raw slices by hand.
type ValueBuilder struct {
	stack []frame
	root  *Value
	err   error
}

type frame struct {
	isMap bool
	items []Value // array items, or flattened key,value,key,value... for maps
}

// NewValueBuilder creates an empty builder.
func NewValueBuilder() *ValueBuilder {
	return &ValueBuilder{}
}

// Err returns the first error encountered, if any. Once set, all further
// calls are no-ops.
func (b *ValueBuilder) Err() error { return b.err }

func (b *ValueBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// StartArray opens a new array as the next item (or, at the top level, as
// the value under construction).
func (b *ValueBuilder) StartArray() *ValueBuilder {
	if b.err != nil {
		return b
	}
	b.stack = append(b.stack, frame{})
	return b
}

// EndArray closes the innermost open array, attaching it to its parent (or
// to the builder's root if this was the outermost container).
func (b *ValueBuilder) EndArray() *ValueBuilder {
	if b.err != nil {
		return b
	}
	if len(b.stack) == 0 || b.stack[len(b.stack)-1].isMap {
		b.fail(&ModelError{Msg: "EndArray without matching StartArray"})
		return b
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.attach(NewArray(top.items))
	return b
}

// StartMap opens a new map as the next item.
func (b *ValueBuilder) StartMap() *ValueBuilder {
	if b.err != nil {
		return b
	}
	b.stack = append(b.stack, frame{isMap: true})
	return b
}

// EndMap closes the innermost open map.
func (b *ValueBuilder) EndMap() *ValueBuilder {
	if b.err != nil {
		return b
	}
	if len(b.stack) == 0 || !b.stack[len(b.stack)-1].isMap {
		b.fail(&ModelError{Msg: "EndMap without matching StartMap"})
		return b
	}
	top := b.stack[len(b.stack)-1]
	if len(top.items)%2 != 0 {
		b.fail(&ModelError{Msg: "map closed with a key but no value"})
		return b
	}
	b.stack = b.stack[:len(b.stack)-1]
	m := NewEmptyMap()
	for i := 0; i+1 < len(top.items); i += 2 {
		m.Insert(top.items[i], top.items[i+1])
	}
	b.attach(NewMap(m))
	return b
}

// Add appends a value: as the next array element, the next map key (if the
// innermost container is a map awaiting a key), the next map value (if a
// key is pending), or the builder's single root value.
func (b *ValueBuilder) Add(v Value) *ValueBuilder {
	if b.err != nil {
		return b
	}
	b.attach(v)
	return b
}

// attach places v into the innermost open container, or into root if the
// stack is empty.
func (b *ValueBuilder) attach(v Value) {
	if len(b.stack) == 0 {
		if b.root != nil {
			b.fail(&ModelError{Msg: "builder already has a root value"})
			return
		}
		r := v
		b.root = &r
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.items = append(top.items, v)
}

// Build returns the completed root Value. The stack must be empty (every
// StartArray/StartMap matched with an End call) and exactly one value must
// have been attached at the top level.
func (b *ValueBuilder) Build() (Value, error) {
	if b.err != nil {
		return Value{}, b.err
	}
	if len(b.stack) != 0 {
		return Value{}, &ModelError{Msg: "unclosed container in builder"}
	}
	if b.root == nil {
		return Value{}, &ModelError{Msg: "builder produced no value"}
	}
	return *b.root, nil
}
