package decoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// dump prints the events of a skipped property so its layout can be studied.
// It is best effort: malformed parts are printed as such and never fail the
// decode. The dump reaches out in a single Write.
func (d *Decoder) dump(out io.Writer, unhandled *UnhandledPropertyError, p scenepath.Path, events value.Value) {
	w := &bytes.Buffer{}
	defer func() { _, _ = out.Write(w.Bytes()) }()

	fmt.Fprintf(w, "Unhandled property %q at %s\n", unhandled.Name, unhandled.Path)

	err := eachEvent(p, events, func(key value.Value, ep scenepath.Path, ev value.Value) error {
		fmt.Fprintf(w, "\tEvent [%s]\n", key.KeyString())
		t, ok := ev.AsTable()
		if !ok {
			fmt.Fprintf(w, "\t\t%s\n", ev)
			return nil
		}
		for k, fv := range t.All() {
			name, ok := k.AsString()
			if !ok {
				fmt.Fprintf(w, "\t\t[%s] = %s\n", k.KeyString(), fv)
				continue
			}
			fmt.Fprintf(w, "\t\t%s = %s\n", name, d.formatField(ep.Field(name), name, fv))
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(w, "\t<unreadable: %v>\n", err)
	}
}

func (d *Decoder) formatField(p scenepath.Path, name string, v value.Value) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	if v.Kind() != value.KindTable {
		return v.String()
	}

	switch name {
	case "transform", "position":
		tf, err := d.decodeTransformOrPosition(p, v)
		if err != nil {
			return fmt.Sprintf("<malformed: %v>", err)
		}
		return formatTransform(tf)
	case "offset":
		pos, err := d.decodePosition(p, v)
		if err != nil {
			return fmt.Sprintf("<malformed: %v>", err)
		}
		return fmt.Sprintf("%g %g %g", pos.X, pos.Y, pos.Z)
	default:
		return v.String()
	}
}

func formatTransform(tf model.Transform) string {
	return fmt.Sprintf("XYZ: <%g, %g, %g>, yaw: %g, pitch: %g, roll: %g",
		tf.Position.X, tf.Position.Y, tf.Position.Z, tf.Yaw, tf.Pitch, tf.Roll)
}
