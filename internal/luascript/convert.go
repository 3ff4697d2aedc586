package luascript

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// convert copies a Lua value into a value.Value. Table entries keep the
// order Lua iterates them in: the array part first, then the remaining keys
// in insertion order.
func convert(lv lua.LValue) (value.Value, error) {
	c := &converter{active: make(map[*lua.LTable]bool)}
	return c.value(scenepath.Root, lv)
}

type converter struct {
	active map[*lua.LTable]bool
}

func (c *converter) value(p scenepath.Path, lv lua.LValue) (value.Value, error) {
	switch v := lv.(type) {
	case *lua.LNilType:
		return value.Nil, nil
	case lua.LBool:
		return value.Bool(bool(v)), nil
	case lua.LNumber:
		return value.Number(float64(v)), nil
	case lua.LString:
		return value.String(string(v)), nil
	case *lua.LTable:
		return c.table(p, v)
	default:
		return value.Nil, fmt.Errorf("%s: a %s cannot be part of a scene", p, lv.Type())
	}
}

func (c *converter) table(p scenepath.Path, lt *lua.LTable) (value.Value, error) {
	if c.active[lt] {
		return value.Nil, fmt.Errorf("%s: table contains itself", p)
	}
	c.active[lt] = true
	defer delete(c.active, lt)

	t := value.NewTable()
	for k, v := lt.Next(lua.LNil); k != lua.LNil; k, v = lt.Next(k) {
		key, err := c.value(p, k)
		if err != nil {
			return value.Nil, err
		}
		val, err := c.value(p.Key(key), v)
		if err != nil {
			return value.Nil, err
		}
		t.Set(key, val)
	}
	return value.TableOf(t), nil
}
