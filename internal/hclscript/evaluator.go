// Package hclscript evaluates scene scripts written as a single HCL
// expression.
//
// The HCL form mirrors the Lua table syntax:
//
//	{
//	  actors = {
//	    "Bob" = {
//	      properties = {
//	        Scale = { events = [{ (0.5) = { scale = 1.5, duration = 2 } }] }
//	      }
//	    }
//	  }
//	}
//
// Object constructors are walked directly so that key order survives and
// keys may be numbers. Bare identifiers and strings become string keys,
// numeric and parenthesised keys are evaluated. Tuples become arrays indexed
// from 1.
package hclscript

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/specialistvlad/scenescript/internal/ctxlog"
	"github.com/specialistvlad/scenescript/internal/script"
	"github.com/specialistvlad/scenescript/internal/value"
)

// Evaluator implements script.Evaluator for HCL sources.
type Evaluator struct{}

var _ script.Evaluator = (*Evaluator)(nil)

// New creates an HCL evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate parses src as one HCL expression and converts it. A source that
// holds only comments returns value.Nil.
func (e *Evaluator) Evaluate(ctx context.Context, name string, src []byte) (value.Value, error) {
	logger := ctxlog.FromContext(ctx)

	if isBlank(src, name) {
		logger.Debug("HCL script holds no expression.", "script", name)
		return value.Nil, nil
	}

	expr, diags := hclsyntax.ParseExpression(src, name, hcl.InitialPos)
	if diags.HasErrors() {
		return value.Nil, script.Evaluation(name, diags)
	}

	w := &walker{ctx: ctx, evalCtx: newEvalContext()}
	v, err := w.walk(expr)
	if err != nil {
		return value.Nil, script.Evaluation(name, err)
	}
	logger.Debug("HCL script evaluated.", "script", name, "kind", v.Kind().String())
	return v, nil
}

// isBlank reports whether src lexes to nothing but comments and newlines.
func isBlank(src []byte, name string) bool {
	tokens, diags := hclsyntax.LexExpression(src, name, hcl.InitialPos)
	if diags.HasErrors() {
		return false
	}
	for _, tok := range tokens {
		switch tok.Type {
		case hclsyntax.TokenComment, hclsyntax.TokenNewline, hclsyntax.TokenEOF:
		default:
			return false
		}
	}
	return true
}
