package decoder

import (
	"context"

	"github.com/specialistvlad/scenescript/internal/ctxlog"
	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// propertyDecoder decodes the events of one property kind into its slot of
// the property set.
type propertyDecoder func(d *Decoder, p scenepath.Path, events value.Value, set *model.PropertySet) error

func assign[P any](decode func(*Decoder, scenepath.Path, value.Value) (*P, error), slot func(*model.PropertySet) **P) propertyDecoder {
	return func(d *Decoder, p scenepath.Path, events value.Value, set *model.PropertySet) error {
		prop, err := decode(d, p, events)
		if err != nil {
			return err
		}
		*slot(set) = prop
		return nil
	}
}

// propertyKinds is the closed catalogue of supported property kinds. Names
// outside it are skipped, never failed.
var propertyKinds = newLookup(SkipUnknown,
	named("Appearance", assign(decodeAppearance, func(s *model.PropertySet) **model.AppearanceProperty { return &s.Appearance })),
	named("CustomScript", assign(decodeCustomScript, func(s *model.PropertySet) **model.CustomScriptProperty { return &s.CustomScript })),
	named("EquipWeapon", assign(decodeEquipWeapon, func(s *model.PropertySet) **model.EquipWeaponProperty { return &s.EquipWeapon })),
	named("Fade", assign(decodeFade, func(s *model.PropertySet) **model.FadeProperty { return &s.Fade })),
	named("FadeRegion", assign(decodeFadeRegion, func(s *model.PropertySet) **model.FadeRegionProperty { return &s.FadeRegion })),
	named("GroundSnap", assign(decodeGroundSnap, func(s *model.PropertySet) **model.GroundSnapProperty { return &s.GroundSnap })),
	named("MoveSpline", assign(decodeMoveSpline, func(s *model.PropertySet) **model.MoveSplineProperty { return &s.MoveSpline })),
	named("Music", assign(decodeMusic, func(s *model.PropertySet) **model.MusicProperty { return &s.Music })),
	named("Scale", assign(decodeScale, func(s *model.PropertySet) **model.ScaleProperty { return &s.Scale })),
	named("Sheathe", assign(decodeSheathe, func(s *model.PropertySet) **model.SheatheProperty { return &s.Sheathe })),
	named("Transform", assign(decodeTransformProperty, func(s *model.PropertySet) **model.TransformProperty { return &s.Transform })),
)

// PropertyKinds returns the names of the supported property kinds.
func PropertyKinds() []string {
	return append([]string(nil), propertyKinds.names...)
}

var propertyKeys = []string{"events"}

// dispatch decodes one property table, { events = {...} }, into set. The
// table must have that shape even when the property kind is unknown.
func (d *Decoder) dispatch(ctx context.Context, p scenepath.Path, name string, v value.Value, set *model.PropertySet) error {
	t, err := toTable(p, v)
	if err != nil {
		return err
	}
	if err := expectKeys(p, t, propertyKeys, true); err != nil {
		return err
	}
	events, _ := t.Field("events")
	ep := p.Field("events")

	decode, ok, err := propertyKinds.find(p, name, events)
	if err != nil {
		return err
	}
	if !ok {
		d.skip(ctx, p, name, ep, events)
		return nil
	}

	ctxlog.FromContext(ctx).Debug("Decoding property.", "path", p.String(), "kind", name)
	return decode(d, ep, events, set)
}

func (d *Decoder) skip(ctx context.Context, p scenepath.Path, name string, ep scenepath.Path, events value.Value) {
	ctxlog.FromContext(ctx).Debug("Skipping unhandled property.", "path", p.String(), "kind", name)

	unhandled := &UnhandledPropertyError{Path: p, Name: name}
	if d.onSkip != nil {
		d.onSkip(ctx, unhandled)
	}
	if d.diagnostics != nil {
		d.dump(d.diagnostics, unhandled, ep, events)
	}
}
