// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the root of the decoded model: the Timeline, its Actors
// and the PropertySet each actor carries.

package model

import "sort"

// Timeline is the decoded form of a whole scene script.
type Timeline struct {
	Actors map[string]*Actor
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{Actors: make(map[string]*Actor)}
}

// ActorNames returns the actor names in lexical order.
func (t *Timeline) ActorNames() []string {
	names := make([]string, 0, len(t.Actors))
	for name := range t.Actors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Actor is a single participant of the scene.
type Actor struct {
	Properties PropertySet
}

// PropertySet holds at most one instance of every property kind.
type PropertySet struct {
	Appearance   *AppearanceProperty
	CustomScript *CustomScriptProperty
	EquipWeapon  *EquipWeaponProperty
	Fade         *FadeProperty
	FadeRegion   *FadeRegionProperty
	GroundSnap   *GroundSnapProperty
	MoveSpline   *MoveSplineProperty
	Music        *MusicProperty
	Scale        *ScaleProperty
	Sheathe      *SheatheProperty
	Transform    *TransformProperty
}

// Present returns the names of the properties that are set, in catalogue order.
func (ps *PropertySet) Present() []string {
	var names []string
	add := func(name string, set bool) {
		if set {
			names = append(names, name)
		}
	}
	add("Appearance", ps.Appearance != nil)
	add("CustomScript", ps.CustomScript != nil)
	add("EquipWeapon", ps.EquipWeapon != nil)
	add("Fade", ps.Fade != nil)
	add("FadeRegion", ps.FadeRegion != nil)
	add("GroundSnap", ps.GroundSnap != nil)
	add("MoveSpline", ps.MoveSpline != nil)
	add("Music", ps.Music != nil)
	add("Scale", ps.Scale != nil)
	add("Sheathe", ps.Sheathe != nil)
	add("Transform", ps.Transform != nil)
	return names
}
