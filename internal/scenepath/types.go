package scenepath

import "github.com/specialistvlad/scenescript/internal/value"

// Segment is a single component of a path: either a named field (`properties`)
// or a bracketed key (`["Bob"]`, `[12.5]`).
type Segment struct {
	Name string
	Key  value.Value // Nil for field segments.
}

// NewField creates a field segment.
func NewField(name string) Segment {
	return Segment{Name: name}
}

// NewKey creates a key segment.
func NewKey(key value.Value) Segment {
	return Segment{Key: key}
}

// IsKey returns true if the segment is a bracketed key.
func (s Segment) IsKey() bool {
	return !s.Key.IsNil()
}

// Path is the structured representation of a location in a scene script.
// Paths are values: Field and Key return extended copies and never modify
// the receiver.
type Path []Segment

// Root is the empty path, the script's top-level value.
var Root = Path(nil)

// Field returns p extended with a field segment.
func (p Path) Field(name string) Path {
	return p.with(NewField(name))
}

// Key returns p extended with a key segment.
func (p Path) Key(key value.Value) Path {
	return p.with(NewKey(key))
}

func (p Path) with(s Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}
