package decoder

import (
	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

var (
	positionKeys  = []string{"x", "y", "z"}
	transformKeys = []string{"position", "yaw", "pitch", "roll"}
)

// decodePosition reads { x = .., y = .., z = .. }, x first.
func (d *Decoder) decodePosition(p scenepath.Path, v value.Value) (model.Position, error) {
	var pos model.Position
	t, err := toTable(p, v)
	if err != nil {
		return pos, err
	}
	if err := expectKeys(p, t, positionKeys, true); err != nil {
		return pos, err
	}

	targets := []*float32{&pos.X, &pos.Y, &pos.Z}
	for i, name := range positionKeys {
		if *targets[i], err = d.floatField(p, t, name); err != nil {
			return pos, err
		}
	}
	return pos, nil
}

// decodeTransform reads { position = {..}, yaw = .., pitch = .., roll = .. },
// position first.
func (d *Decoder) decodeTransform(p scenepath.Path, v value.Value) (model.Transform, error) {
	var tf model.Transform
	t, err := toTable(p, v)
	if err != nil {
		return tf, err
	}
	if err := expectKeys(p, t, transformKeys, true); err != nil {
		return tf, err
	}

	pv, _ := t.Field("position")
	if tf.Position, err = d.decodePosition(p.Field("position"), pv); err != nil {
		return tf, err
	}
	if tf.Yaw, err = d.floatField(p, t, "yaw"); err != nil {
		return tf, err
	}
	if tf.Pitch, err = d.floatField(p, t, "pitch"); err != nil {
		return tf, err
	}
	if tf.Roll, err = d.floatField(p, t, "roll"); err != nil {
		return tf, err
	}
	return tf, nil
}

// decodeTransformOrPosition accepts either geometry. A bare position becomes
// a transform with no rotation.
func (d *Decoder) decodeTransformOrPosition(p scenepath.Path, v value.Value) (model.Transform, error) {
	if t, ok := v.AsTable(); ok {
		if first, ok := t.First(); ok && first.Key.Equal(value.String("x")) {
			pos, err := d.decodePosition(p, v)
			return model.Transform{Position: pos}, err
		}
	}
	return d.decodeTransform(p, v)
}

func (d *Decoder) floatField(p scenepath.Path, t *value.Table, name string) (float32, error) {
	v, _ := t.Field(name)
	return d.toFloat(p.Field(name), v)
}
