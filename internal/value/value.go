package value

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindTable
)

// String returns the script-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTable:
		return "table"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single node of the dynamic tree. The zero Value is nil.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	t    *Table
}

// Nil is the absent value.
var Nil = Value{}

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a number. All script numbers are float64.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// TableOf wraps a table. A nil table yields Nil.
func TableOf(t *Table) Value {
	if t == nil {
		return Nil
	}
	return Value{kind: KindTable, t: t}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the absent value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsTable returns the table held by v.
func (v Value) AsTable() (*Table, bool) { return v.t, v.kind == KindTable }

// Equal reports whether two values are the same key. Tables compare by identity.
func (v Value) Equal(other Value) bool {
	return v.indexKey() == other.indexKey()
}

// String renders v in a Lua-like literal form, suitable for diagnostics.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb, 0)
	return sb.String()
}

// KeyString renders v the way it appears between brackets in a table key.
func (v Value) KeyString() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.s)
	case KindTable:
		return "table"
	default:
		return v.String()
	}
}

// maxRenderDepth bounds String output for deeply nested or cyclic tables.
const maxRenderDepth = 16

func (v Value) write(sb *strings.Builder, depth int) {
	switch v.kind {
	case KindNil:
		sb.WriteString("nil")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		sb.WriteString(FormatNumber(v.n))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindTable:
		if depth >= maxRenderDepth {
			sb.WriteString("{...}")
			return
		}
		if v.t.Len() == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		i := 0
		for k, val := range v.t.All() {
			if i > 0 {
				sb.WriteString(", ")
			}
			if name, ok := k.AsString(); ok && isIdentifier(name) {
				sb.WriteString(name)
			} else {
				sb.WriteByte('[')
				k.write(sb, depth+1)
				sb.WriteByte(']')
			}
			sb.WriteString(" = ")
			val.write(sb, depth+1)
			i++
		}
		sb.WriteString(" }")
	}
}

// FormatNumber renders a number with the shortest representation that
// round-trips, always using '.' as the decimal separator.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
