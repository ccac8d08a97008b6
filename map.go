package dcbor

import "sort"

// mapEntry pairs a key/value with the key's cached canonical bytes, the
// trade-off the spec names in §9: insertion must canonically encode the
// key to place it, so entries keep that encoding around instead of
// recomputing it on every comparison.
type mapEntry struct {
	keyBytes []byte
	key      Value
	value    Value
}

// Map is an ordered associative container keyed by Value, whose serialized
// iteration order is always the ascending lexicographic order of keys'
// canonical encodings (spec §3 invariant 4, §4.G). Entries are kept in a
// sorted slice rather than a hash table or balanced tree: the access
// pattern here is "encode once, search+insert, then iterate in order",
// which a binary-searched slice serves in O(log n) lookups, with insertion
// costing an O(k log n) search plus an O(n) shift of later entries, and
// without extra pointer-chasing overhead for typical map sizes.
type Map struct {
	entries []mapEntry
}

// NewEmptyMap constructs an empty Map.
func NewEmptyMap() *Map {
	return &Map{}
}

// Len reports the number of entries.
func (m *Map) Len() int { return len(m.entries) }

func cmpBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// search returns the index of keyBytes in m.entries, and whether it was
// found exactly.
func (m *Map) search(keyBytes []byte) (int, bool) {
	idx := sort.Search(len(m.entries), func(i int) bool {
		return cmpBytes(m.entries[i].keyBytes, keyBytes) >= 0
	})
	if idx < len(m.entries) && cmpBytes(m.entries[idx].keyBytes, keyBytes) == 0 {
		return idx, true
	}
	return idx, false
}

// Insert adds or replaces the entry for key. Any existing entry whose key
// is canonical-bytes-equal to key is overwritten in place, preserving its
// position; a new key is inserted at the position its canonical bytes sort
// to.
func (m *Map) Insert(key, value Value) {
	kb := key.Bytes()
	idx, found := m.search(kb)
	if found {
		m.entries[idx].value = value
		return
	}
	m.entries = append(m.entries, mapEntry{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = mapEntry{keyBytes: kb, key: key, value: value}
}

// Get looks up the value for key.
func (m *Map) Get(key Value) (Value, bool) {
	idx, found := m.search(key.Bytes())
	if !found {
		return Value{}, false
	}
	return m.entries[idx].value, true
}

// Pair is a single key/value entry, as yielded by Iter.
type Pair struct {
	Key   Value
	Value Value
}

// Iter returns the entries in canonical (ascending encoded-key) order.
func (m *Map) Iter() []Pair {
	out := make([]Pair, len(m.entries))
	for i, e := range m.entries {
		out[i] = Pair{Key: e.key, Value: e.value}
	}
	return out
}

// MapOf builds a Map from pairs supplied in any order, sorting them into
// canonical order as each is inserted. This is the normal way to build a
// Value::Map from already-known key/value pairs, e.g. when decoding a host
// struct into CBOR.
func MapOf(pairs ...Pair) *Map {
	m := NewEmptyMap()
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}
