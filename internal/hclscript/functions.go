package hclscript

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// fileDataFunc is handled by the walker where it can, so that the table it
// wraps keeps its key order.
const fileDataFunc = "SceneTimelineAddFileData"

var markers = []string{"wid", "cdiid", "fid", "cid", "gdi", "iid"}

func newEvalContext() *hcl.EvalContext {
	funcs := make(map[string]function.Function, len(markers)+1)
	for _, name := range markers {
		funcs[name] = markerFunc()
	}
	funcs[fileDataFunc] = fileDataFunction()
	return &hcl.EvalContext{Functions: funcs}
}

// markerFunc returns its numeric argument unchanged.
func markerFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Marks a number as an identifier of a specific kind.",
		Params: []function.Parameter{
			{Name: "id", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return args[0], nil
		},
	})
}

// fileDataFunction returns its second argument unchanged.
func fileDataFunction() function.Function {
	return function.New(&function.Spec{
		Description: "Registers scene data under a name.",
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
			{Name: "data", Type: cty.DynamicPseudoType},
		},
		Type: func(args []cty.Value) (cty.Type, error) {
			return args[1].Type(), nil
		},
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return args[1], nil
		},
	})
}
