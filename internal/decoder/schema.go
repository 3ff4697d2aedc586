package decoder

import (
	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// Field sets of every event record. Unknown field names fail the decode.

var appearanceRecord = newRecord("Appearance",
	named("creatureID", idField(optional, "cid", func(e *model.AppearanceEvent) *model.CreatureID { return &e.CreatureID })),
	named("creatureDisplaySetIndex", intField(optional, func(e *model.AppearanceEvent) *int { return &e.CreatureDisplaySetIndex })),
	named("creatureDisplayInfoID", intField(optional, func(e *model.AppearanceEvent) *int { return &e.CreatureDisplayInfoID })),
	named("fileDataID", idField(optional, "fid", func(e *model.AppearanceEvent) *model.FileDataID { return &e.FileDataID })),
	named("wmoGameObjectDisplayID", idField(optional, "gdi", func(e *model.AppearanceEvent) *model.GameObjectDisplayInfoID { return &e.WMOGameObjectDisplayID })),
	named("itemID", idField(optional, "iid", func(e *model.AppearanceEvent) *model.ItemID { return &e.ItemID })),
	named("isPlayerClone", boolField(optional, func(e *model.AppearanceEvent) *bool { return &e.IsPlayerClone })),
	named("isPlayerCloneNative", boolField(optional, func(e *model.AppearanceEvent) *bool { return &e.IsPlayerCloneNative })),
	named("playerSummon", boolField(optional, func(e *model.AppearanceEvent) *bool { return &e.PlayerSummon })),
	named("playerGroupIndex", intField(optional, func(e *model.AppearanceEvent) *int { return &e.PlayerGroupIndex })),
	named("smoothPhase", boolField(optional, func(e *model.AppearanceEvent) *bool { return &e.SmoothPhase })),
)

var customScriptRecord = newRecord("CustomScript",
	named("script", stringField(required, func(e *model.CustomScriptEvent) *string { return &e.Script })),
)

var equipWeaponRecord = newRecord("EquipWeapon",
	named("itemID", idField(required, "iid", func(e *model.EquipWeaponEvent) *model.ItemID { return &e.ItemID })),
	named("MainHand", boolField(required, func(e *model.EquipWeaponEvent) *bool { return &e.MainHand })),
	named("OffHand", boolField(required, func(e *model.EquipWeaponEvent) *bool { return &e.OffHand })),
	named("Ranged", boolField(required, func(e *model.EquipWeaponEvent) *bool { return &e.Ranged })),
)

var fadeRecord = newRecord("Fade",
	named("alpha", floatField(required, func(e *model.FadeEvent) *float32 { return &e.Alpha })),
	named("time", floatField(required, func(e *model.FadeEvent) *float32 { return &e.Time })),
)

var fadeRegionRecord = newRecord("FadeRegion",
	named("enabled", boolField(required, func(e *model.FadeRegionEvent) *bool { return &e.Enabled })),
	named("radius", floatField(required, func(e *model.FadeRegionEvent) *float32 { return &e.Radius })),
	named("includePlayer", boolField(required, func(e *model.FadeRegionEvent) *bool { return &e.IncludePlayer })),
	named("excludePlayers", boolField(required, func(e *model.FadeRegionEvent) *bool { return &e.ExcludePlayers })),
	named("excludeNonPlayers", boolField(required, func(e *model.FadeRegionEvent) *bool { return &e.ExcludeNonPlayers })),
	named("includeSounds", boolField(required, func(e *model.FadeRegionEvent) *bool { return &e.IncludeSounds })),
	named("includeWMOs", boolField(required, func(e *model.FadeRegionEvent) *bool { return &e.IncludeWMOs })),
)

var groundSnapRecord = newRecord("GroundSnap",
	named("snap", boolField(required, func(e *model.GroundSnapEvent) *bool { return &e.Snap })),
)

var musicRecord = newRecord("Music",
	named("soundKitID", intField(required, func(e *model.MusicEvent) *int { return &e.SoundKitID })),
)

var scaleRecord = newRecord("Scale",
	named("scale", floatField(required, func(e *model.ScaleEvent) *float32 { return &e.Scale })),
	named("duration", floatField(required, func(e *model.ScaleEvent) *float32 { return &e.Duration })),
)

var sheatheRecord = newRecord("Sheathe",
	named("isSheathed", boolField(required, func(e *model.SheatheEvent) *bool { return &e.IsSheathed })),
	named("isRanged", boolField(required, func(e *model.SheatheEvent) *bool { return &e.IsRanged })),
	named("animated", boolField(required, func(e *model.SheatheEvent) *bool { return &e.Animated })),
)

var transformRecord = newRecord("Transform",
	named("transform", transformField(required, func(e *model.Transform) *model.Transform { return e })),
)

// A spline point is usually a full transform under "position"; a bare
// position is accepted too.
var splinePointRecord = newRecord("MoveSpline",
	named("position", field[model.Transform]{
		required: true,
		decode: func(d *Decoder, p scenepath.Path, v value.Value, e *model.Transform) error {
			tf, err := d.decodeTransformOrPosition(p, v)
			if err != nil {
				return err
			}
			*e = tf
			return nil
		},
	}),
)

// Every flag is optional; the block as a whole marks the spline as flagged.
var moveSplineFlagsRecord = newRecord("MoveSpline flags",
	named("overrideSpeed", floatField(optional, func(f *model.MoveSplineFlags) *float32 { return &f.OverrideSpeed })),
	named("useModelRunSpeed", boolField(optional, func(f *model.MoveSplineFlags) *bool { return &f.UseModelRunSpeed })),
	named("useModelWalkSpeed", boolField(optional, func(f *model.MoveSplineFlags) *bool { return &f.UseModelWalkSpeed })),
	named("yawUsesSplineTangent", boolField(optional, func(f *model.MoveSplineFlags) *bool { return &f.YawUsesSplineTangent })),
	named("yawUsesNodeTransform", boolField(optional, func(f *model.MoveSplineFlags) *bool { return &f.YawUsesNodeTransform })),
	named("yawBlendDisabled", boolField(optional, func(f *model.MoveSplineFlags) *bool { return &f.YawBlendDisabled })),
	named("pitchUsesSplineTangent", boolField(optional, func(f *model.MoveSplineFlags) *bool { return &f.PitchUsesSplineTangent })),
	named("pitchUsesNodeTransform", boolField(optional, func(f *model.MoveSplineFlags) *bool { return &f.PitchUsesNodeTransform })),
	named("rollUsesNodeTransform", boolField(optional, func(f *model.MoveSplineFlags) *bool { return &f.RollUsesNodeTransform })),
)
