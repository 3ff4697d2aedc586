package value

import "iter"

// Entry is one key/value pair of a table.
type Entry struct {
	Key   Value
	Value Value
}

// Table is an ordered key/value container. Keys are unique; the position of a
// key is fixed by its first insertion.
type Table struct {
	entries []Entry
	index   map[indexKey]int
}

// indexKey is the comparable identity of a key value.
type indexKey struct {
	kind Kind
	b    bool
	n    float64
	s    string
	t    *Table
}

func (v Value) indexKey() indexKey {
	switch v.kind {
	case KindBool:
		return indexKey{kind: KindBool, b: v.b}
	case KindNumber:
		return indexKey{kind: KindNumber, n: v.n}
	case KindString:
		return indexKey{kind: KindString, s: v.s}
	case KindTable:
		return indexKey{kind: KindTable, t: v.t}
	default:
		return indexKey{}
	}
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{index: make(map[indexKey]int)}
}

// Set assigns val to key. Assigning Nil removes the key; a nil key is ignored.
func (t *Table) Set(key, val Value) {
	if key.IsNil() {
		return
	}
	ik := key.indexKey()
	if i, ok := t.index[ik]; ok {
		if val.IsNil() {
			t.remove(i)
			return
		}
		t.entries[i].Value = val
		return
	}
	if val.IsNil() {
		return
	}
	t.index[ik] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Value: val})
}

// SetField is Set with a string key.
func (t *Table) SetField(name string, val Value) {
	t.Set(String(name), val)
}

// Append stores val under the next array index (1-based), like a Lua list item.
func (t *Table) Append(val Value) {
	n := 1
	for {
		if _, ok := t.index[Number(float64(n)).indexKey()]; !ok {
			break
		}
		n++
	}
	t.Set(Number(float64(n)), val)
}

func (t *Table) remove(i int) {
	delete(t.index, t.entries[i].Key.indexKey())
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	for j := i; j < len(t.entries); j++ {
		t.index[t.entries[j].Key.indexKey()] = j
	}
}

// Get returns the value stored under key.
func (t *Table) Get(key Value) (Value, bool) {
	if t == nil {
		return Nil, false
	}
	i, ok := t.index[key.indexKey()]
	if !ok {
		return Nil, false
	}
	return t.entries[i].Value, true
}

// Field returns the value stored under a string key.
func (t *Table) Field(name string) (Value, bool) {
	return t.Get(String(name))
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// First returns the earliest inserted entry.
func (t *Table) First() (Entry, bool) {
	if t.Len() == 0 {
		return Entry{}, false
	}
	return t.entries[0], true
}

// All iterates over the entries in insertion order.
func (t *Table) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		if t == nil {
			return
		}
		for _, e := range t.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []Value {
	keys := make([]Value, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// KeyNames returns a display name per key: string keys verbatim, other keys
// in bracketed form.
func (t *Table) KeyNames() []string {
	names := make([]string, 0, t.Len())
	for k := range t.All() {
		if s, ok := k.AsString(); ok {
			names = append(names, s)
			continue
		}
		names = append(names, "["+k.KeyString()+"]")
	}
	return names
}
