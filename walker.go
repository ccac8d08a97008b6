package dcbor

// ValueWalker performs a pull-style depth-first traversal of an already
// decoded Value tree, the same state-machine shape as the teacher
// CborReader's PeekState/advanceContainer pair, but walking Value nodes
// instead of raw bytes: each call to Next reports one WalkEvent and
// advances an explicit nesting stack rather than a byte cursor. dcbortext's
// annotated hex printer drives a ValueWalker instead of recursing directly;
// its diagnostic-notation printer recurses over the Value on its own.
type ValueWalker struct {
	stack []walkFrame
	root  *Value
	done  bool
}

type walkFrame struct {
	kind      Kind // KindArray, KindMap or KindTagged
	items     []Value
	pairs     []Pair
	index     int
	onValue   bool // for maps: true if the next event is the value half of pairs[index]
}

// EventKind labels a single step of the walk.
type EventKind int

const (
	// EventScalar: Value is a leaf (neither Array, Map nor Tagged; a Tagged
	// value yields EventEnterTag and the walker then descends into its
	// content).
	EventScalar EventKind = iota
	EventEnterArray
	EventLeaveArray
	EventEnterMap
	EventMapKey
	EventLeaveMap
	EventEnterTag
	EventLeaveTag
)

// WalkEvent is one step yielded by ValueWalker.Next.
type WalkEvent struct {
	Kind  EventKind
	Value Value // meaningful for EventScalar, EventMapKey, EventEnterArray/Map, EventEnterTag
	Depth int
}

// NewValueWalker starts a walk rooted at v.
func NewValueWalker(v Value) *ValueWalker {
	r := v
	return &ValueWalker{root: &r}
}

// Next returns the next event and true, or a zero WalkEvent and false once
// the walk is exhausted.
func (w *ValueWalker) Next() (WalkEvent, bool) {
	if w.done {
		return WalkEvent{}, false
	}

	if w.root != nil {
		v := *w.root
		w.root = nil
		return w.enter(v), true
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		depth := len(w.stack)

		switch top.kind {
		case KindArray:
			if top.index >= len(top.items) {
				w.stack = w.stack[:len(w.stack)-1]
				return WalkEvent{Kind: EventLeaveArray, Depth: depth - 1}, true
			}
			item := top.items[top.index]
			top.index++
			return w.enter(item), true

		case KindMap:
			if top.index >= len(top.pairs) {
				w.stack = w.stack[:len(w.stack)-1]
				return WalkEvent{Kind: EventLeaveMap, Depth: depth - 1}, true
			}
			pair := top.pairs[top.index]
			if !top.onValue {
				top.onValue = true
				return WalkEvent{Kind: EventMapKey, Value: pair.Key, Depth: depth}, true
			}
			top.onValue = false
			top.index++
			return w.enter(pair.Value), true

		case KindTagged:
			if top.index >= len(top.items) {
				w.stack = w.stack[:len(w.stack)-1]
				return WalkEvent{Kind: EventLeaveTag, Depth: depth - 1}, true
			}
			item := top.items[top.index]
			top.index++
			return w.enter(item), true

		default:
			w.stack = w.stack[:len(w.stack)-1]
			return WalkEvent{Depth: depth - 1}, true
		}
	}

	w.done = true
	return WalkEvent{}, false
}

// enter pushes a container frame (or a single-shot tag frame) for v if it
// is one, and returns the corresponding Enter/Scalar event.
func (w *ValueWalker) enter(v Value) WalkEvent {
	depth := len(w.stack)
	switch v.kind {
	case KindArray:
		w.stack = append(w.stack, walkFrame{kind: KindArray, items: v.items})
		return WalkEvent{Kind: EventEnterArray, Value: v, Depth: depth}
	case KindMap:
		w.stack = append(w.stack, walkFrame{kind: KindMap, pairs: v.m.Iter()})
		return WalkEvent{Kind: EventEnterMap, Value: v, Depth: depth}
	case KindTagged:
		w.stack = append(w.stack, walkFrame{kind: KindTagged, items: []Value{*v.content}})
		return WalkEvent{Kind: EventEnterTag, Value: v, Depth: depth}
	default:
		return WalkEvent{Kind: EventScalar, Value: v, Depth: depth}
	}
}
