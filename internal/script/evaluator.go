package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/scenescript/internal/value"
)

// ErrEvaluation marks failures of the script language itself: syntax errors,
// runtime errors and values that cannot be represented.
var ErrEvaluation = errors.New("script evaluation failed")

// Evaluator runs scene script source and returns the value it produced.
// A script that produces nothing returns value.Nil.
type Evaluator interface {
	Evaluate(ctx context.Context, name string, src []byte) (value.Value, error)
}

// EvaluationError wraps the evaluator's own error without exposing its type.
type EvaluationError struct {
	Name string
	Err  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Name, ErrEvaluation, e.Err)
}

// Unwrap exposes both ErrEvaluation and the underlying cause, so that
// errors.Is also matches context.Canceled and the like.
func (e *EvaluationError) Unwrap() []error {
	return []error{ErrEvaluation, e.Err}
}

// Evaluation wraps err as an EvaluationError for the named script.
func Evaluation(name string, err error) error {
	if err == nil {
		return nil
	}
	return &EvaluationError{Name: name, Err: err}
}
