package decoder

import (
	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// eachEvent calls fn for every event entry of an events table. Scripts nest
// events one level deeper than needed:
//
//	events = { { [0.5] = {...} }, { [2] = {...} } }
//
// An entry whose value is a table without string keys is such a wrapper and
// is unwrapped. Any other entry is taken as an event in its own right, so the
// flat form { [0.5] = {...} } is accepted as well. Event paths leave out the
// wrapper index.
func eachEvent(p scenepath.Path, v value.Value, fn func(key value.Value, p scenepath.Path, v value.Value) error) error {
	events, err := toTable(p, v)
	if err != nil {
		return err
	}

	for k, ev := range events.All() {
		if inner, ok := ev.AsTable(); ok && isWrapper(inner) {
			for ik, iv := range inner.All() {
				if err := fn(ik, p.Key(ik), iv); err != nil {
					return err
				}
			}
			continue
		}
		if err := fn(k, p.Key(k), ev); err != nil {
			return err
		}
	}
	return nil
}

func isWrapper(t *value.Table) bool {
	for k := range t.All() {
		if k.Kind() == value.KindString {
			return false
		}
	}
	return true
}

func eventTime(p scenepath.Path, key value.Value) (float32, error) {
	n, ok := key.AsNumber()
	if !ok {
		return 0, mismatch(p, "event time", key)
	}
	return float32(n), nil
}

// decodeTimed maps every event of an events table to a typed record keyed by
// its time. A repeated time overwrites the earlier event.
func decodeTimed[E any](d *Decoder, p scenepath.Path, v value.Value, r *record[E]) (model.Events[E], error) {
	events := make(model.Events[E])
	err := eachEvent(p, v, func(key value.Value, ep scenepath.Path, ev value.Value) error {
		t, err := eventTime(ep, key)
		if err != nil {
			return err
		}
		e, err := decodeRecord(d, ep, ev, r)
		if err != nil {
			return err
		}
		events[t] = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func decodeAppearance(d *Decoder, p scenepath.Path, v value.Value) (*model.AppearanceProperty, error) {
	events, err := decodeTimed(d, p, v, appearanceRecord)
	if err != nil {
		return nil, err
	}
	return &model.AppearanceProperty{Events: events}, nil
}

func decodeCustomScript(d *Decoder, p scenepath.Path, v value.Value) (*model.CustomScriptProperty, error) {
	events, err := decodeTimed(d, p, v, customScriptRecord)
	if err != nil {
		return nil, err
	}
	return &model.CustomScriptProperty{Events: events}, nil
}

func decodeEquipWeapon(d *Decoder, p scenepath.Path, v value.Value) (*model.EquipWeaponProperty, error) {
	events, err := decodeTimed(d, p, v, equipWeaponRecord)
	if err != nil {
		return nil, err
	}
	return &model.EquipWeaponProperty{Events: events}, nil
}

func decodeFade(d *Decoder, p scenepath.Path, v value.Value) (*model.FadeProperty, error) {
	events, err := decodeTimed(d, p, v, fadeRecord)
	if err != nil {
		return nil, err
	}
	return &model.FadeProperty{Events: events}, nil
}

func decodeFadeRegion(d *Decoder, p scenepath.Path, v value.Value) (*model.FadeRegionProperty, error) {
	events, err := decodeTimed(d, p, v, fadeRegionRecord)
	if err != nil {
		return nil, err
	}
	return &model.FadeRegionProperty{Events: events}, nil
}

func decodeGroundSnap(d *Decoder, p scenepath.Path, v value.Value) (*model.GroundSnapProperty, error) {
	events, err := decodeTimed(d, p, v, groundSnapRecord)
	if err != nil {
		return nil, err
	}
	return &model.GroundSnapProperty{Events: events}, nil
}

func decodeMusic(d *Decoder, p scenepath.Path, v value.Value) (*model.MusicProperty, error) {
	events, err := decodeTimed(d, p, v, musicRecord)
	if err != nil {
		return nil, err
	}
	return &model.MusicProperty{Events: events}, nil
}

func decodeScale(d *Decoder, p scenepath.Path, v value.Value) (*model.ScaleProperty, error) {
	events, err := decodeTimed(d, p, v, scaleRecord)
	if err != nil {
		return nil, err
	}
	return &model.ScaleProperty{Events: events}, nil
}

func decodeSheathe(d *Decoder, p scenepath.Path, v value.Value) (*model.SheatheProperty, error) {
	events, err := decodeTimed(d, p, v, sheatheRecord)
	if err != nil {
		return nil, err
	}
	return &model.SheatheProperty{Events: events}, nil
}

func decodeTransformProperty(d *Decoder, p scenepath.Path, v value.Value) (*model.TransformProperty, error) {
	events, err := decodeTimed(d, p, v, transformRecord)
	if err != nil {
		return nil, err
	}
	return &model.TransformProperty{Events: events}, nil
}
