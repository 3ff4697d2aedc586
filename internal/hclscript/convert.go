package hclscript

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/scenescript/internal/value"
)

// fromCty converts an evaluated HCL value. Objects and maps come out in
// lexical key order since cty does not keep source order.
func fromCty(v cty.Value) (value.Value, error) {
	v, _ = v.Unmark()
	if v.IsNull() {
		return value.Nil, nil
	}
	if !v.IsWhollyKnown() {
		return value.Nil, fmt.Errorf("value of type %s is not known", v.Type().FriendlyName())
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return value.String(v.AsString()), nil
	case ty == cty.Bool:
		return value.Bool(v.True()), nil
	case ty == cty.Number:
		var n float64
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return value.Nil, err
		}
		return value.Number(n), nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		t := value.NewTable()
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			cv, err := fromCty(ev)
			if err != nil {
				return value.Nil, err
			}
			t.Append(cv)
		}
		return value.TableOf(t), nil
	case ty.IsObjectType() || ty.IsMapType():
		t := value.NewTable()
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			cv, err := fromCty(ev)
			if err != nil {
				return value.Nil, err
			}
			t.SetField(k.AsString(), cv)
		}
		return value.TableOf(t), nil
	default:
		return value.Nil, fmt.Errorf("values of type %s cannot be part of a scene", ty.FriendlyName())
	}
}
