package decoder

import (
	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// decodeMoveSpline splits the entries of a spline by the kind of their key: a
// number is the time of a spline point, a table or string key holds the flags
// block. Several flags blocks are merged in source order.
func decodeMoveSpline(d *Decoder, p scenepath.Path, v value.Value) (*model.MoveSplineProperty, error) {
	prop := &model.MoveSplineProperty{Events: make(model.Events[model.Transform])}

	err := eachEvent(p, v, func(key value.Value, ep scenepath.Path, ev value.Value) error {
		switch key.Kind() {
		case value.KindNumber:
			t, _ := eventTime(ep, key)
			point, err := decodeRecord(d, ep, ev, splinePointRecord)
			if err != nil {
				return err
			}
			prop.Events[t] = point
		case value.KindTable, value.KindString:
			if err := decodeRecordInto(d, ep, ev, moveSplineFlagsRecord, &prop.MoveSplineFlags); err != nil {
				return err
			}
			prop.HasFlags = true
		default:
			return mismatch(ep, "event time or flags key", key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prop, nil
}
