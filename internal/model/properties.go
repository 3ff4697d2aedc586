// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the eleven property kinds and the event record each of
// them carries. Field names mirror the script field names so that the mapping
// from script to model stays obvious.

package model

// AppearanceProperty changes how an actor looks.
type AppearanceProperty struct {
	Events Events[AppearanceEvent]
}

// AppearanceEvent selects the model an actor is displayed with. Every field is
// optional in scripts; absent fields keep their zero value.
type AppearanceEvent struct {
	CreatureID              CreatureID              `json:"creatureID" yaml:"creatureID"`
	CreatureDisplaySetIndex int                     `json:"creatureDisplaySetIndex" yaml:"creatureDisplaySetIndex"`
	CreatureDisplayInfoID   int                     `json:"creatureDisplayInfoID" yaml:"creatureDisplayInfoID"`
	FileDataID              FileDataID              `json:"fileDataID" yaml:"fileDataID"`
	WMOGameObjectDisplayID  GameObjectDisplayInfoID `json:"wmoGameObjectDisplayID" yaml:"wmoGameObjectDisplayID"`
	ItemID                  ItemID                  `json:"itemID" yaml:"itemID"`
	IsPlayerClone           bool                    `json:"isPlayerClone" yaml:"isPlayerClone"`
	IsPlayerCloneNative     bool                    `json:"isPlayerCloneNative" yaml:"isPlayerCloneNative"`
	PlayerSummon            bool                    `json:"playerSummon" yaml:"playerSummon"`
	PlayerGroupIndex        int                     `json:"playerGroupIndex" yaml:"playerGroupIndex"`
	SmoothPhase             bool                    `json:"smoothPhase" yaml:"smoothPhase"`
}

// CustomScriptProperty runs script snippets at given times.
type CustomScriptProperty struct {
	Events Events[CustomScriptEvent]
}

// CustomScriptEvent carries the source of one snippet.
type CustomScriptEvent struct {
	Script string `json:"script" yaml:"script"`
}

// EquipWeaponProperty equips items into weapon slots.
type EquipWeaponProperty struct {
	Events Events[EquipWeaponEvent]
}

// EquipWeaponEvent equips ItemID into the flagged slots.
type EquipWeaponEvent struct {
	ItemID   ItemID `json:"itemID" yaml:"itemID"`
	MainHand bool   `json:"MainHand" yaml:"MainHand"`
	OffHand  bool   `json:"OffHand" yaml:"OffHand"`
	Ranged   bool   `json:"Ranged" yaml:"Ranged"`
}

// FadeProperty fades the actor in or out.
type FadeProperty struct {
	Events Events[FadeEvent]
}

// FadeEvent fades to Alpha over Time seconds.
type FadeEvent struct {
	Alpha float32 `json:"alpha" yaml:"alpha"`
	Time  float32 `json:"time" yaml:"time"`
}

// FadeRegionProperty fades everything within a radius around the actor.
type FadeRegionProperty struct {
	Events Events[FadeRegionEvent]
}

// FadeRegionEvent configures the faded region.
type FadeRegionEvent struct {
	Enabled           bool    `json:"enabled" yaml:"enabled"`
	Radius            float32 `json:"radius" yaml:"radius"`
	IncludePlayer     bool    `json:"includePlayer" yaml:"includePlayer"`
	ExcludePlayers    bool    `json:"excludePlayers" yaml:"excludePlayers"`
	ExcludeNonPlayers bool    `json:"excludeNonPlayers" yaml:"excludeNonPlayers"`
	IncludeSounds     bool    `json:"includeSounds" yaml:"includeSounds"`
	IncludeWMOs       bool    `json:"includeWMOs" yaml:"includeWMOs"`
}

// GroundSnapProperty toggles snapping the actor to the ground.
type GroundSnapProperty struct {
	Events Events[GroundSnapEvent]
}

// GroundSnapEvent enables or disables ground snapping.
type GroundSnapEvent struct {
	Snap bool `json:"snap" yaml:"snap"`
}

// MoveSplineProperty moves the actor along a spline. Unlike every other
// property it also carries a set of flags that apply to the whole spline.
type MoveSplineProperty struct {
	MoveSplineFlags
	// HasFlags reports whether the script contained a flags block.
	HasFlags bool
	Events   Events[Transform]
}

// MoveSplineFlags tune how a spline is followed.
type MoveSplineFlags struct {
	OverrideSpeed          float32 `json:"overrideSpeed" yaml:"overrideSpeed"`
	UseModelRunSpeed       bool    `json:"useModelRunSpeed" yaml:"useModelRunSpeed"`
	UseModelWalkSpeed      bool    `json:"useModelWalkSpeed" yaml:"useModelWalkSpeed"`
	YawUsesSplineTangent   bool    `json:"yawUsesSplineTangent" yaml:"yawUsesSplineTangent"`
	YawUsesNodeTransform   bool    `json:"yawUsesNodeTransform" yaml:"yawUsesNodeTransform"`
	YawBlendDisabled       bool    `json:"yawBlendDisabled" yaml:"yawBlendDisabled"`
	PitchUsesSplineTangent bool    `json:"pitchUsesSplineTangent" yaml:"pitchUsesSplineTangent"`
	PitchUsesNodeTransform bool    `json:"pitchUsesNodeTransform" yaml:"pitchUsesNodeTransform"`
	RollUsesNodeTransform  bool    `json:"rollUsesNodeTransform" yaml:"rollUsesNodeTransform"`
}

// MusicProperty starts music.
type MusicProperty struct {
	Events Events[MusicEvent]
}

// MusicEvent plays a sound kit.
type MusicEvent struct {
	SoundKitID int `json:"soundKitID" yaml:"soundKitID"`
}

// ScaleProperty resizes the actor.
type ScaleProperty struct {
	Events Events[ScaleEvent]
}

// ScaleEvent scales to Scale over Duration seconds.
type ScaleEvent struct {
	Scale    float32 `json:"scale" yaml:"scale"`
	Duration float32 `json:"duration" yaml:"duration"`
}

// SheatheProperty sheathes or draws weapons.
type SheatheProperty struct {
	Events Events[SheatheEvent]
}

// SheatheEvent describes the weapon state.
type SheatheEvent struct {
	IsSheathed bool `json:"isSheathed" yaml:"isSheathed"`
	IsRanged   bool `json:"isRanged" yaml:"isRanged"`
	Animated   bool `json:"animated" yaml:"animated"`
}

// TransformProperty places the actor.
type TransformProperty struct {
	Events Events[Transform]
}
