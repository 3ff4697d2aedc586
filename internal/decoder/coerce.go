package decoder

import (
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// noopWrappers may decorate plain integer fields. They carry no kind.
var noopWrappers = []string{"wid", "cdiid"}

// toFloat accepts numbers and numeric text.
func (d *Decoder) toFloat(p scenepath.Path, v value.Value) (float32, error) {
	switch v.Kind() {
	case value.KindNumber:
		n, _ := v.AsNumber()
		return float32(n), nil
	case value.KindString:
		s, _ := v.AsString()
		n, err := d.numbers.ParseFloat(unquote(s))
		if err != nil {
			return 0, mismatch(p, "number", v)
		}
		return float32(n), nil
	default:
		return 0, mismatch(p, "number", v)
	}
}

// toInt accepts numbers, truncated toward zero, and integer text. Text may be
// wrapped in one of the given marker calls, e.g. cid(42).
func toInt(p scenepath.Path, v value.Value, wrappers ...string) (int, error) {
	expected := "integer"
	if len(wrappers) > 0 {
		expected = "integer or " + strings.Join(wrappers, "(n)/") + "(n)"
	}

	switch v.Kind() {
	case value.KindNumber:
		n, _ := v.AsNumber()
		if math.IsNaN(n) || math.IsInf(n, 0) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, mismatch(p, expected, v)
		}
		return int(n), nil
	case value.KindString:
		s, _ := v.AsString()
		s = stripWrapper(strings.TrimSpace(unquote(s)), wrappers)
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, mismatch(p, expected, v)
		}
		return n, nil
	default:
		return 0, mismatch(p, expected, v)
	}
}

// toID is toInt for identifier fields, which only accept their own wrapper.
func toID[T ~int](p scenepath.Path, v value.Value, wrapper string) (T, error) {
	n, err := toInt(p, v, wrapper)
	return T(n), err
}

// toBool accepts booleans and the words true/false in any case.
func toBool(p scenepath.Path, v value.Value) (bool, error) {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case value.KindString:
		s, _ := v.AsString()
		s = strings.TrimSpace(unquote(s))
		switch {
		case strings.EqualFold(s, "true"):
			return true, nil
		case strings.EqualFold(s, "false"):
			return false, nil
		}
	}
	return false, mismatch(p, "boolean", v)
}

// toString accepts text, dropping one pair of surrounding quotes.
func toString(p scenepath.Path, v value.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", mismatch(p, "string", v)
	}
	return unquote(s), nil
}

func toTable(p scenepath.Path, v value.Value) (*value.Table, error) {
	t, ok := v.AsTable()
	if !ok {
		return nil, mismatch(p, "table", v)
	}
	return t, nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func stripWrapper(s string, wrappers []string) string {
	for _, w := range wrappers {
		if strings.HasPrefix(s, w+"(") && strings.HasSuffix(s, ")") {
			return strings.TrimSpace(s[len(w)+1 : len(s)-1])
		}
	}
	return s
}
