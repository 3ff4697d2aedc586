package decoder

import (
	"fmt"

	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// field decodes one named script field into a record of type E.
type field[E any] struct {
	required bool
	decode   func(d *Decoder, p scenepath.Path, v value.Value, e *E) error
}

// record is the closed field set of one event kind.
type record[E any] struct {
	kind   string
	fields *lookup[field[E]]
}

func newRecord[E any](kind string, fields ...entry[field[E]]) *record[E] {
	return &record[E]{kind: kind, fields: newLookup(FailOnUnknown, fields...)}
}

const (
	required = true
	optional = false
)

func floatField[E any](req bool, target func(*E) *float32) field[E] {
	return field[E]{required: req, decode: func(d *Decoder, p scenepath.Path, v value.Value, e *E) error {
		f, err := d.toFloat(p, v)
		if err != nil {
			return err
		}
		*target(e) = f
		return nil
	}}
}

func intField[E any](req bool, target func(*E) *int) field[E] {
	return field[E]{required: req, decode: func(_ *Decoder, p scenepath.Path, v value.Value, e *E) error {
		n, err := toInt(p, v, noopWrappers...)
		if err != nil {
			return err
		}
		*target(e) = n
		return nil
	}}
}

func idField[E any, T ~int](req bool, wrapper string, target func(*E) *T) field[E] {
	return field[E]{required: req, decode: func(_ *Decoder, p scenepath.Path, v value.Value, e *E) error {
		id, err := toID[T](p, v, wrapper)
		if err != nil {
			return err
		}
		*target(e) = id
		return nil
	}}
}

func boolField[E any](req bool, target func(*E) *bool) field[E] {
	return field[E]{required: req, decode: func(_ *Decoder, p scenepath.Path, v value.Value, e *E) error {
		b, err := toBool(p, v)
		if err != nil {
			return err
		}
		*target(e) = b
		return nil
	}}
}

func stringField[E any](req bool, target func(*E) *string) field[E] {
	return field[E]{required: req, decode: func(_ *Decoder, p scenepath.Path, v value.Value, e *E) error {
		s, err := toString(p, v)
		if err != nil {
			return err
		}
		*target(e) = s
		return nil
	}}
}

func transformField[E any](req bool, target func(*E) *model.Transform) field[E] {
	return field[E]{required: req, decode: func(d *Decoder, p scenepath.Path, v value.Value, e *E) error {
		tf, err := d.decodeTransform(p, v)
		if err != nil {
			return err
		}
		*target(e) = tf
		return nil
	}}
}

func decodeRecord[E any](d *Decoder, p scenepath.Path, v value.Value, r *record[E]) (E, error) {
	var e E
	err := decodeRecordInto(d, p, v, r, &e)
	return e, err
}

// decodeRecordInto applies the fields present in v onto e, failing on unknown
// field names and on required fields that are absent.
func decodeRecordInto[E any](d *Decoder, p scenepath.Path, v value.Value, r *record[E], e *E) error {
	t, err := toTable(p, v)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, t.Len())
	for k, fv := range t.All() {
		name, ok := k.AsString()
		if !ok {
			return &UnhandledFieldError{Path: p.Key(k), Field: k.KeyString(), Value: fv}
		}
		fp := p.Field(name)
		f, _, err := r.fields.find(fp, name, fv)
		if err != nil {
			return err
		}
		if err := f.decode(d, fp, fv, e); err != nil {
			return err
		}
		seen[name] = true
	}

	for _, name := range r.fields.names {
		if r.fields.entries[name].required && !seen[name] {
			return &ShapeError{
				Path:     p,
				Expected: r.fields.names,
				Actual:   t.KeyNames(),
				Detail:   fmt.Sprintf("%s event is missing required field %q", r.kind, name),
			}
		}
	}
	return nil
}
