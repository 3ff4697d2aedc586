// Package luascript evaluates scene scripts written as Lua table literals.
//
// Every evaluation runs in a fresh interpreter without the standard
// libraries. The only globals are the marker functions scene scripts use to
// annotate identifiers, all of which return their argument unchanged.
package luascript

import (
	"context"
	"strings"
	"unicode"

	lua "github.com/yuin/gopher-lua"

	"github.com/specialistvlad/scenescript/internal/ctxlog"
	"github.com/specialistvlad/scenescript/internal/script"
	"github.com/specialistvlad/scenescript/internal/value"
)

// Evaluator implements script.Evaluator for Lua sources.
type Evaluator struct{}

var _ script.Evaluator = (*Evaluator)(nil)

// New creates a Lua evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate runs src as the expression of a return statement and converts the
// first returned value. A source holding only comments returns value.Nil.
func (e *Evaluator) Evaluate(ctx context.Context, name string, src []byte) (value.Value, error) {
	logger := ctxlog.FromContext(ctx)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)
	installPrelude(L)

	fn, err := L.LoadString(chunk(string(src)))
	if err != nil {
		return value.Nil, script.Evaluation(name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return value.Nil, script.Evaluation(name, err)
	}

	if L.GetTop() == 0 {
		logger.Debug("Lua script returned nothing.", "script", name)
		return value.Nil, nil
	}
	v, err := convert(L.Get(1))
	if err != nil {
		return value.Nil, script.Evaluation(name, err)
	}
	return v, nil
}

// chunk turns a script body into a Lua chunk returning it. Bodies that
// already start with a return statement are kept as they are.
func chunk(src string) string {
	trimmed := strings.TrimLeftFunc(src, unicode.IsSpace)
	if rest, ok := strings.CutPrefix(trimmed, "return"); ok {
		if rest == "" || !isIdentRune(rune(rest[0])) {
			return src
		}
	}
	return "return " + src
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
