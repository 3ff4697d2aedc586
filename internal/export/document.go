// Package export writes decoded timelines in machine and human readable
// formats.
//
// Events are exported as keyframe lists sorted by time rather than as maps,
// since neither JSON nor YAML keys can hold the float times.
package export

import (
	"github.com/specialistvlad/scenescript/internal/model"
)

// Document is the exported form of one or more scripts.
type Document struct {
	Scripts []Script `json:"scripts" yaml:"scripts"`
}

// Script is one decoded script. Error is set instead of Actors when the
// script failed to load.
type Script struct {
	Path   string  `json:"path" yaml:"path"`
	Actors []Actor `json:"actors,omitempty" yaml:"actors,omitempty"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Actor is one actor and its properties.
type Actor struct {
	Name       string     `json:"name" yaml:"name"`
	Properties Properties `json:"properties" yaml:"properties"`
}

// Properties lists the keyframes of every property the actor has.
type Properties struct {
	Appearance   []model.Keyframe[model.AppearanceEvent]   `json:"Appearance,omitempty" yaml:"Appearance,omitempty"`
	CustomScript []model.Keyframe[model.CustomScriptEvent] `json:"CustomScript,omitempty" yaml:"CustomScript,omitempty"`
	EquipWeapon  []model.Keyframe[model.EquipWeaponEvent]  `json:"EquipWeapon,omitempty" yaml:"EquipWeapon,omitempty"`
	Fade         []model.Keyframe[model.FadeEvent]         `json:"Fade,omitempty" yaml:"Fade,omitempty"`
	FadeRegion   []model.Keyframe[model.FadeRegionEvent]   `json:"FadeRegion,omitempty" yaml:"FadeRegion,omitempty"`
	GroundSnap   []model.Keyframe[model.GroundSnapEvent]   `json:"GroundSnap,omitempty" yaml:"GroundSnap,omitempty"`
	MoveSpline   *MoveSpline                               `json:"MoveSpline,omitempty" yaml:"MoveSpline,omitempty"`
	Music        []model.Keyframe[model.MusicEvent]        `json:"Music,omitempty" yaml:"Music,omitempty"`
	Scale        []model.Keyframe[model.ScaleEvent]        `json:"Scale,omitempty" yaml:"Scale,omitempty"`
	Sheathe      []model.Keyframe[model.SheatheEvent]      `json:"Sheathe,omitempty" yaml:"Sheathe,omitempty"`
	Transform    []model.Keyframe[model.Transform]         `json:"Transform,omitempty" yaml:"Transform,omitempty"`
}

// MoveSpline is a spline with its optional flags block.
type MoveSpline struct {
	Flags  *model.MoveSplineFlags            `json:"flags,omitempty" yaml:"flags,omitempty"`
	Points []model.Keyframe[model.Transform] `json:"points" yaml:"points"`
}

// NewScript converts a loaded timeline. A non-nil err produces a failed
// script entry.
func NewScript(path string, timeline *model.Timeline, err error) Script {
	s := Script{Path: path}
	if err != nil {
		s.Error = err.Error()
		return s
	}
	if timeline == nil {
		return s
	}
	for _, name := range timeline.ActorNames() {
		s.Actors = append(s.Actors, Actor{
			Name:       name,
			Properties: newProperties(&timeline.Actors[name].Properties),
		})
	}
	return s
}

func newProperties(ps *model.PropertySet) Properties {
	var p Properties
	if ps.Appearance != nil {
		p.Appearance = ps.Appearance.Events.Keyframes()
	}
	if ps.CustomScript != nil {
		p.CustomScript = ps.CustomScript.Events.Keyframes()
	}
	if ps.EquipWeapon != nil {
		p.EquipWeapon = ps.EquipWeapon.Events.Keyframes()
	}
	if ps.Fade != nil {
		p.Fade = ps.Fade.Events.Keyframes()
	}
	if ps.FadeRegion != nil {
		p.FadeRegion = ps.FadeRegion.Events.Keyframes()
	}
	if ps.GroundSnap != nil {
		p.GroundSnap = ps.GroundSnap.Events.Keyframes()
	}
	if ps.MoveSpline != nil {
		spline := &MoveSpline{Points: ps.MoveSpline.Events.Keyframes()}
		if ps.MoveSpline.HasFlags {
			flags := ps.MoveSpline.MoveSplineFlags
			spline.Flags = &flags
		}
		p.MoveSpline = spline
	}
	if ps.Music != nil {
		p.Music = ps.Music.Events.Keyframes()
	}
	if ps.Scale != nil {
		p.Scale = ps.Scale.Events.Keyframes()
	}
	if ps.Sheathe != nil {
		p.Sheathe = ps.Sheathe.Events.Keyframes()
	}
	if ps.Transform != nil {
		p.Transform = ps.Transform.Events.Keyframes()
	}
	return p
}

// count returns how many keyframes each present property has, in catalogue
// order.
func (p Properties) count() []propertyCount {
	var counts []propertyCount
	add := func(name string, n int, present bool) {
		if present {
			counts = append(counts, propertyCount{name: name, events: n})
		}
	}
	add("Appearance", len(p.Appearance), p.Appearance != nil)
	add("CustomScript", len(p.CustomScript), p.CustomScript != nil)
	add("EquipWeapon", len(p.EquipWeapon), p.EquipWeapon != nil)
	add("Fade", len(p.Fade), p.Fade != nil)
	add("FadeRegion", len(p.FadeRegion), p.FadeRegion != nil)
	add("GroundSnap", len(p.GroundSnap), p.GroundSnap != nil)
	if p.MoveSpline != nil {
		add("MoveSpline", len(p.MoveSpline.Points), true)
	}
	add("Music", len(p.Music), p.Music != nil)
	add("Scale", len(p.Scale), p.Scale != nil)
	add("Sheathe", len(p.Sheathe), p.Sheathe != nil)
	add("Transform", len(p.Transform), p.Transform != nil)
	return counts
}

type propertyCount struct {
	name   string
	events int
}
