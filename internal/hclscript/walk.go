package hclscript

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/specialistvlad/scenescript/internal/value"
)

// walker converts constructor expressions structurally and evaluates every
// other expression with evalCtx.
type walker struct {
	ctx     context.Context
	evalCtx *hcl.EvalContext
}

func (w *walker) walk(expr hclsyntax.Expression) (value.Value, error) {
	if err := w.ctx.Err(); err != nil {
		return value.Nil, err
	}

	switch e := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		t := value.NewTable()
		for _, item := range e.Items {
			key, err := w.key(item.KeyExpr)
			if err != nil {
				return value.Nil, err
			}
			val, err := w.walk(item.ValueExpr)
			if err != nil {
				return value.Nil, err
			}
			t.Set(key, val)
		}
		return value.TableOf(t), nil
	case *hclsyntax.TupleConsExpr:
		t := value.NewTable()
		for _, item := range e.Exprs {
			val, err := w.walk(item)
			if err != nil {
				return value.Nil, err
			}
			t.Append(val)
		}
		return value.TableOf(t), nil
	case *hclsyntax.ParenthesesExpr:
		return w.walk(e.Expression)
	case *hclsyntax.FunctionCallExpr:
		if e.Name == fileDataFunc && len(e.Args) == 2 && !e.ExpandFinal {
			if _, err := w.evaluate(e.Args[0]); err != nil {
				return value.Nil, err
			}
			return w.walk(e.Args[1])
		}
	}
	return w.evaluate(expr)
}

// key converts an object key. Bare identifiers name string keys unless the
// key is parenthesised, in which case it is evaluated like any expression.
func (w *walker) key(expr hclsyntax.Expression) (value.Value, error) {
	if k, ok := expr.(*hclsyntax.ObjectConsKeyExpr); ok {
		if !k.ForceNonLiteral {
			if name := hcl.ExprAsKeyword(k.Wrapped); name != "" {
				return value.String(name), nil
			}
		}
		expr = k.Wrapped
	}

	key, err := w.walk(expr)
	if err != nil {
		return value.Nil, err
	}
	if key.IsNil() {
		r := expr.Range()
		return value.Nil, fmt.Errorf("%s: object key must not be null", r.String())
	}
	return key, nil
}

func (w *walker) evaluate(expr hclsyntax.Expression) (value.Value, error) {
	v, diags := expr.Value(w.evalCtx)
	if diags.HasErrors() {
		return value.Nil, diags
	}
	return fromCty(v)
}
