package luascript

import lua "github.com/yuin/gopher-lua"

// markers annotate identifiers in scene scripts: wid(n), cid(n) and so on.
var markers = []string{"wid", "cdiid", "fid", "cid", "gdi", "iid"}

func installPrelude(L *lua.LState) {
	for _, name := range markers {
		L.SetGlobal(name, L.NewFunction(returnArg(1)))
	}
	// SceneTimelineAddFileData(name, data) registers data under name and
	// yields data.
	L.SetGlobal("SceneTimelineAddFileData", L.NewFunction(returnArg(2)))
}

func returnArg(n int) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(L.Get(n))
		return 1
	}
}
