package scenepath

import "strings"

// String serializes the path into its canonical text representation. The
// root path renders as "<root>".
func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}

	var sb strings.Builder
	for i, segment := range p {
		if segment.IsKey() {
			sb.WriteByte('[')
			sb.WriteString(segment.Key.KeyString())
			sb.WriteByte(']')
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(segment.Name)
	}
	return sb.String()
}

// Equal checks whether two paths address the same location.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i].Name != other[i].Name || !p[i].Key.Equal(other[i].Key) {
			return false
		}
	}
	return true
}
