package decoder

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/scenescript/internal/ctxlog"
	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// Decoder maps an evaluated scene script onto a model.Timeline. A Decoder
// holds configuration only and is safe for concurrent use.
type Decoder struct {
	numbers     NumberFormat
	diagnostics io.Writer
	onSkip      func(context.Context, *UnhandledPropertyError)
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithNumberFormat sets the format used for numbers written as text.
// The default is Invariant.
func WithNumberFormat(f NumberFormat) Option {
	return func(d *Decoder) {
		d.numbers = f
	}
}

// WithDiagnostics makes the decoder print the layout of every skipped
// property to w.
func WithDiagnostics(w io.Writer) Option {
	return func(d *Decoder) {
		d.diagnostics = w
	}
}

// WithSkipHandler registers fn to be called for every skipped property. It
// receives the context passed to Decode and may be called concurrently when
// the Decoder is shared.
func WithSkipHandler(fn func(context.Context, *UnhandledPropertyError)) Option {
	return func(d *Decoder) {
		d.onSkip = fn
	}
}

// New creates a Decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{numbers: Invariant}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var (
	rootKeys   = []string{"actors"}
	actorKeys  = []string{"properties"}
	actorsPath = scenepath.Root.Field("actors")
)

// Decode builds a Timeline from the value a script evaluated to. A nil root
// is a script without content and yields an empty Timeline. Any malformed
// part of a known property fails the whole decode; unknown property kinds are
// skipped.
func (d *Decoder) Decode(ctx context.Context, root value.Value) (*model.Timeline, error) {
	logger := ctxlog.FromContext(ctx)
	timeline := model.NewTimeline()

	if root.IsNil() {
		logger.Debug("Script produced no value, returning empty timeline.")
		return timeline, nil
	}

	rt, err := toTable(scenepath.Root, root)
	if err != nil {
		return nil, err
	}
	if err := expectOnly(scenepath.Root, rt, rootKeys...); err != nil {
		return nil, err
	}

	av, ok := rt.Field("actors")
	if !ok {
		return timeline, nil
	}
	actors, err := toTable(actorsPath, av)
	if err != nil {
		return nil, err
	}

	for k, v := range actors.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ap := actorsPath.Key(k)
		name, err := toString(ap, k)
		if err != nil {
			return nil, err
		}
		if _, dup := timeline.Actors[name]; dup {
			return nil, &ShapeError{Path: ap, Detail: fmt.Sprintf("actor %q is declared more than once", name)}
		}

		actor, err := d.decodeActor(ctx, ap, v)
		if err != nil {
			return nil, err
		}
		timeline.Actors[name] = actor
	}

	logger.Debug("Timeline decoded.", "actors", len(timeline.Actors))
	return timeline, nil
}

func (d *Decoder) decodeActor(ctx context.Context, p scenepath.Path, v value.Value) (*model.Actor, error) {
	t, err := toTable(p, v)
	if err != nil {
		return nil, err
	}
	if err := expectKeys(p, t, actorKeys, true); err != nil {
		return nil, err
	}

	pp := p.Field("properties")
	pv, _ := t.Field("properties")
	props, err := toTable(pp, pv)
	if err != nil {
		return nil, err
	}

	actor := &model.Actor{}
	for k, v := range props.All() {
		name, ok := k.AsString()
		if !ok {
			return nil, mismatch(pp.Key(k), "property name", k)
		}
		if err := d.dispatch(ctx, pp.Field(name), name, v, &actor.Properties); err != nil {
			return nil, err
		}
	}
	return actor, nil
}
