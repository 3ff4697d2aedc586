package decoder

import (
	"fmt"

	"github.com/specialistvlad/scenescript/internal/value"
)

// tbl builds a table from alternating keys and values, keeping their order.
func tbl(kv ...any) value.Value {
	if len(kv)%2 != 0 {
		panic("tbl: odd number of arguments")
	}
	t := value.NewTable()
	for i := 0; i < len(kv); i += 2 {
		t.Set(val(kv[i]), val(kv[i+1]))
	}
	return value.TableOf(t)
}

// list builds an array-like table.
func list(items ...any) value.Value {
	t := value.NewTable()
	for _, item := range items {
		t.Append(val(item))
	}
	return value.TableOf(t)
}

func val(x any) value.Value {
	switch x := x.(type) {
	case value.Value:
		return x
	case string:
		return value.String(x)
	case float64:
		return value.Number(x)
	case int:
		return value.Number(float64(x))
	case bool:
		return value.Bool(x)
	default:
		panic(fmt.Sprintf("val: unsupported %T", x))
	}
}

// scene wraps properties of a single actor into a full script root.
func scene(actor string, props ...any) value.Value {
	return tbl("actors", tbl(actor, tbl("properties", tbl(props...))))
}

func events(e value.Value) value.Value {
	return tbl("events", e)
}

func position(x, y, z float64) value.Value {
	return tbl("x", x, "y", y, "z", z)
}

func transform(x, y, z, yaw, pitch, roll float64) value.Value {
	return tbl("position", position(x, y, z), "yaw", yaw, "pitch", pitch, "roll", roll)
}
