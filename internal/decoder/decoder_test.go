package decoder

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/scenescript/internal/model"
	"github.com/specialistvlad/scenescript/internal/value"
)

func decode(t *testing.T, root value.Value, opts ...Option) (*model.Timeline, error) {
	t.Helper()
	return New(opts...).Decode(context.Background(), root)
}

func TestDecode_EmptyScripts(t *testing.T) {
	testCases := []struct {
		name string
		root value.Value
	}{
		{name: "no value", root: value.Nil},
		{name: "empty root", root: tbl()},
		{name: "no actors", root: tbl("actors", tbl())},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			timeline, err := decode(t, tc.root)
			require.NoError(t, err)
			require.NotNil(t, timeline)
			assert.Empty(t, timeline.Actors)
		})
	}
}

func TestDecode_RootShape(t *testing.T) {
	testCases := []struct {
		name    string
		root    value.Value
		wantErr error
	}{
		{name: "extra root key", root: tbl("actors", tbl(), "somethingElse", 1), wantErr: ErrUnexpectedShape},
		{name: "root not a table", root: value.Number(1), wantErr: ErrTypeMismatch},
		{name: "actors not a table", root: tbl("actors", "Bob"), wantErr: ErrTypeMismatch},
		{name: "actor with extra key", root: tbl("actors", tbl("Bob", tbl("properties", tbl(), "x", 1))), wantErr: ErrUnexpectedShape},
		{name: "actor without properties", root: tbl("actors", tbl("Bob", tbl("props", tbl()))), wantErr: ErrUnexpectedShape},
		{name: "actor name not a string", root: tbl("actors", list(tbl("properties", tbl()))), wantErr: ErrTypeMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			timeline, err := decode(t, tc.root)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, timeline)
		})
	}
}

func TestDecode_RootKeysCheckedBeforeActors(t *testing.T) {
	root := tbl(
		"actors", tbl("Bob", tbl("properties", tbl("Fade", events(tbl(0, tbl("alpha", true, "time", 1)))))),
		"somethingElse", 1,
	)

	_, err := decode(t, root)

	require.ErrorIs(t, err, ErrUnexpectedShape)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
}

func TestDecode_ActorNames(t *testing.T) {
	root := tbl("actors", tbl(
		`"Bob"`, tbl("properties", tbl()),
		"Alice", tbl("properties", tbl()),
	))

	timeline, err := decode(t, root)

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, timeline.ActorNames())
}

func TestDecode_DuplicateActorAfterUnquoting(t *testing.T) {
	root := tbl("actors", tbl(
		"Bob", tbl("properties", tbl()),
		`"Bob"`, tbl("properties", tbl()),
	))

	_, err := decode(t, root)

	require.ErrorIs(t, err, ErrUnexpectedShape)
	assert.Contains(t, err.Error(), `actor "Bob" is declared more than once`)
}

func TestDecode_ScaleFlatForm(t *testing.T) {
	root := scene("Bob", "Scale", events(tbl(0.0, tbl("scale", 1.5, "duration", 2.0))))

	timeline, err := decode(t, root)
	require.NoError(t, err)

	expected := &model.ScaleProperty{Events: model.Events[model.ScaleEvent]{
		0: {Scale: 1.5, Duration: 2},
	}}
	if diff := cmp.Diff(expected, timeline.Actors["Bob"].Properties.Scale); diff != "" {
		t.Errorf("Scale mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_NestedEvents(t *testing.T) {
	root := scene("Bob", "Music", events(list(
		tbl(1, tbl("soundKitID", "wid(42)")),
		tbl(2.5, tbl("soundKitID", 7)),
	)))

	timeline, err := decode(t, root)
	require.NoError(t, err)

	assert.Equal(t, model.Events[model.MusicEvent]{
		1:   {SoundKitID: 42},
		2.5: {SoundKitID: 7},
	}, timeline.Actors["Bob"].Properties.Music.Events)
}

func TestDecode_DuplicateTimesOverwrite(t *testing.T) {
	root := scene("Bob", "GroundSnap", events(list(
		tbl(1, tbl("snap", true)),
		tbl(1, tbl("snap", "false")),
	)))

	timeline, err := decode(t, root)
	require.NoError(t, err)

	assert.Equal(t, model.Events[model.GroundSnapEvent]{1: {Snap: false}},
		timeline.Actors["Bob"].Properties.GroundSnap.Events)
}

func TestDecode_FlatKinds(t *testing.T) {
	root := scene("Bob",
		"CustomScript", events(list(tbl(0, tbl("script", `"print(1)"`)))),
		"EquipWeapon", events(list(tbl(1, tbl("itemID", "iid(1234)", "MainHand", true, "OffHand", false, "Ranged", "true")))),
		"Fade", events(list(tbl(2, tbl("alpha", 0.5, "time", "1.5")))),
		"FadeRegion", events(list(tbl(3, tbl(
			"enabled", true, "radius", 20,
			"includePlayer", false, "excludePlayers", true, "excludeNonPlayers", false,
			"includeSounds", true, "includeWMOs", false,
		)))),
		"Sheathe", events(list(tbl(4, tbl("isSheathed", true, "isRanged", false, "animated", true)))),
		"Transform", events(list(tbl(5, tbl("transform", transform(1, 2, 3, 90, 0, 45))))),
	)

	timeline, err := decode(t, root)
	require.NoError(t, err)

	expected := model.PropertySet{
		CustomScript: &model.CustomScriptProperty{Events: model.Events[model.CustomScriptEvent]{0: {Script: "print(1)"}}},
		EquipWeapon: &model.EquipWeaponProperty{Events: model.Events[model.EquipWeaponEvent]{
			1: {ItemID: 1234, MainHand: true, Ranged: true},
		}},
		Fade: &model.FadeProperty{Events: model.Events[model.FadeEvent]{2: {Alpha: 0.5, Time: 1.5}}},
		FadeRegion: &model.FadeRegionProperty{Events: model.Events[model.FadeRegionEvent]{
			3: {Enabled: true, Radius: 20, ExcludePlayers: true, IncludeSounds: true},
		}},
		Sheathe: &model.SheatheProperty{Events: model.Events[model.SheatheEvent]{
			4: {IsSheathed: true, Animated: true},
		}},
		Transform: &model.TransformProperty{Events: model.Events[model.Transform]{
			5: {Position: model.Position{X: 1, Y: 2, Z: 3}, Yaw: 90, Roll: 45},
		}},
	}
	if diff := cmp.Diff(expected, timeline.Actors["Bob"].Properties); diff != "" {
		t.Errorf("PropertySet mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Appearance(t *testing.T) {
	root := scene("Bob", "Appearance", events(list(tbl(12.5, tbl(
		"creatureID", "cid(123)",
		"creatureDisplaySetIndex", 2,
		"creatureDisplayInfoID", "cdiid(99)",
		"fileDataID", "fid(456)",
		"wmoGameObjectDisplayID", "gdi(7)",
		"itemID", 8,
		"isPlayerClone", true,
		"isPlayerCloneNative", "false",
		"playerSummon", false,
		"playerGroupIndex", "wid(3)",
		"smoothPhase", "True",
	)))))

	timeline, err := decode(t, root)
	require.NoError(t, err)

	expected := model.Events[model.AppearanceEvent]{12.5: {
		CreatureID:              123,
		CreatureDisplaySetIndex: 2,
		CreatureDisplayInfoID:   99,
		FileDataID:              456,
		WMOGameObjectDisplayID:  7,
		ItemID:                  8,
		IsPlayerClone:           true,
		PlayerGroupIndex:        3,
		SmoothPhase:             true,
	}}
	if diff := cmp.Diff(expected, timeline.Actors["Bob"].Properties.Appearance.Events); diff != "" {
		t.Errorf("Appearance mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_AppearancePartialEvent(t *testing.T) {
	root := scene("Bob", "Appearance", events(list(tbl(0, tbl("creatureID", "cid(1)")))))

	timeline, err := decode(t, root)
	require.NoError(t, err)

	assert.Equal(t, model.AppearanceEvent{CreatureID: 1}, timeline.Actors["Bob"].Properties.Appearance.Events[0])
}

func TestDecode_UnhandledField(t *testing.T) {
	root := scene("Bob", "Appearance", events(list(tbl(12.5, tbl("creatureDisplayInfoId", 5)))))

	_, err := decode(t, root)

	require.ErrorIs(t, err, ErrUnhandledField)
	var fieldErr *UnhandledFieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "creatureDisplayInfoId", fieldErr.Field)
	assert.Equal(t, "creatureDisplayInfoID", fieldErr.Suggestion)
	assert.Equal(t, `actors["Bob"].properties.Appearance.events[12.5].creatureDisplayInfoId`, fieldErr.Path.String())
}

func TestDecode_UnhandledFieldInFlatRecord(t *testing.T) {
	root := scene("Bob", "Scale", events(tbl(0, tbl("scale", 1, "duration", 1, "easing", "linear"))))

	_, err := decode(t, root)

	require.ErrorIs(t, err, ErrUnhandledField)
}

func TestDecode_TypeMismatchCarriesPath(t *testing.T) {
	root := scene("Bob", "Appearance", events(list(tbl(12.5, tbl("creatureDisplaySetIndex", true)))))

	_, err := decode(t, root)

	require.ErrorIs(t, err, ErrTypeMismatch)
	var mismatchErr *TypeMismatchError
	require.True(t, errors.As(err, &mismatchErr))
	assert.Equal(t, `actors["Bob"].properties.Appearance.events[12.5].creatureDisplaySetIndex`, mismatchErr.Path.String())
	assert.Equal(t, value.Bool(true), mismatchErr.Actual)
	assert.Contains(t, err.Error(), "got boolean true")
}

func TestDecode_MissingRequiredField(t *testing.T) {
	root := scene("Bob", "Fade", events(tbl(0, tbl("alpha", 1))))

	_, err := decode(t, root)

	require.ErrorIs(t, err, ErrUnexpectedShape)
	assert.Contains(t, err.Error(), `missing required field "time"`)
}

func TestDecode_EventTimeMustBeNumber(t *testing.T) {
	root := scene("Bob", "Music", events(tbl("soon", tbl("soundKitID", 5))))

	_, err := decode(t, root)

	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDecode_TransformShape(t *testing.T) {
	testCases := []struct {
		name      string
		transform value.Value
	}{
		{name: "position not first", transform: tbl("yaw", 0, "position", position(1, 2, 3), "pitch", 0, "roll", 0)},
		{name: "missing roll", transform: tbl("position", position(1, 2, 3), "yaw", 0, "pitch", 0)},
		{name: "misnamed roll", transform: tbl("position", position(1, 2, 3), "yaw", 0, "pitch", 0, "rol", 0)},
		{name: "x not first", transform: tbl("position", tbl("y", 1, "x", 2, "z", 3), "yaw", 0, "pitch", 0, "roll", 0)},
		{name: "position with w", transform: tbl("position", tbl("x", 1, "y", 2, "z", 3, "w", 4), "yaw", 0, "pitch", 0, "roll", 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := scene("Bob", "Transform", events(tbl(0, tbl("transform", tc.transform))))
			_, err := decode(t, root)
			require.ErrorIs(t, err, ErrUnexpectedShape)
		})
	}
}

func TestDecode_MoveSpline(t *testing.T) {
	flagsKey := value.TableOf(value.NewTable())
	root := scene("Bob", "MoveSpline", events(list(
		tbl(flagsKey, tbl("overrideSpeed", 2.5, "useModelRunSpeed", true, "yawBlendDisabled", "true")),
		tbl(0, tbl("position", transform(1, 2, 3, 10, 0, 0))),
		tbl(1.5, tbl("position", position(4, 5, 6))),
	)))

	timeline, err := decode(t, root)
	require.NoError(t, err)

	expected := &model.MoveSplineProperty{
		MoveSplineFlags: model.MoveSplineFlags{OverrideSpeed: 2.5, UseModelRunSpeed: true, YawBlendDisabled: true},
		HasFlags:        true,
		Events: model.Events[model.Transform]{
			0:   {Position: model.Position{X: 1, Y: 2, Z: 3}, Yaw: 10},
			1.5: {Position: model.Position{X: 4, Y: 5, Z: 6}},
		},
	}
	if diff := cmp.Diff(expected, timeline.Actors["Bob"].Properties.MoveSpline); diff != "" {
		t.Errorf("MoveSpline mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_MoveSplineNamedFlagsAndNoFlags(t *testing.T) {
	root := scene("Bob", "MoveSpline", events(tbl(
		"flags", tbl("rollUsesNodeTransform", true),
		2, tbl("position", transform(0, 0, 1, 0, 0, 0)),
	)))
	timeline, err := decode(t, root)
	require.NoError(t, err)
	spline := timeline.Actors["Bob"].Properties.MoveSpline
	assert.True(t, spline.HasFlags)
	assert.True(t, spline.RollUsesNodeTransform)
	assert.Len(t, spline.Events, 1)

	root = scene("Bob", "MoveSpline", events(list(tbl(0, tbl("position", position(1, 1, 1))))))
	timeline, err = decode(t, root)
	require.NoError(t, err)
	assert.False(t, timeline.Actors["Bob"].Properties.MoveSpline.HasFlags)
}

func TestDecode_MoveSplineUnknownFlag(t *testing.T) {
	root := scene("Bob", "MoveSpline", events(tbl("flags", tbl("overideSpeed", 1))))

	_, err := decode(t, root)

	require.ErrorIs(t, err, ErrUnhandledField)
	var fieldErr *UnhandledFieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "overrideSpeed", fieldErr.Suggestion)
}

func TestDecode_PropertyShape(t *testing.T) {
	testCases := []struct {
		name string
		prop value.Value
	}{
		{name: "known kind without events", prop: tbl("Scale", tbl("evts", tbl()))},
		{name: "unknown kind without events", prop: tbl("Glow", tbl("evts", tbl()))},
		{name: "extra key", prop: tbl("Scale", tbl("events", tbl(), "loop", true))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := tbl("actors", tbl("Bob", tbl("properties", tc.prop)))
			_, err := decode(t, root)
			require.ErrorIs(t, err, ErrUnexpectedShape)
		})
	}
}

func TestDecode_UnknownPropertyIsSkipped(t *testing.T) {
	var skipped []*UnhandledPropertyError
	var diagnostics bytes.Buffer
	root := scene("Bob",
		"Glow", events(list(tbl(0.5, tbl(
			"intensity", 0.75,
			"color", "red",
			"transform", transform(1, 2, 3, 90, 0, 0),
			"offset", position(4, 5, 6),
		)))),
		"Scale", events(tbl(0, tbl("scale", 2, "duration", 1))),
	)

	timeline, err := decode(t, root,
		WithSkipHandler(func(_ context.Context, e *UnhandledPropertyError) { skipped = append(skipped, e) }),
		WithDiagnostics(&diagnostics),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"Scale"}, timeline.Actors["Bob"].Properties.Present())

	require.Len(t, skipped, 1)
	assert.Equal(t, "Glow", skipped[0].Name)
	assert.ErrorIs(t, skipped[0], ErrUnhandledProperty)
	assert.Equal(t, `actors["Bob"].properties.Glow`, skipped[0].Path.String())

	out := diagnostics.String()
	assert.Contains(t, out, `Unhandled property "Glow" at actors["Bob"].properties.Glow`)
	assert.Contains(t, out, "\tEvent [0.5]\n")
	assert.Contains(t, out, "\t\tintensity = 0.75\n")
	assert.Contains(t, out, "\t\tcolor = red\n")
	assert.Contains(t, out, "\t\ttransform = XYZ: <1, 2, 3>, yaw: 90, pitch: 0, roll: 0\n")
	assert.Contains(t, out, "\t\toffset = 4 5 6\n")
}

func TestDecode_DiagnosticsNeverFail(t *testing.T) {
	var diagnostics bytes.Buffer
	root := scene("Bob", "Glow", events(list(tbl(0, tbl("transform", tbl("bogus", 1))))))

	timeline, err := decode(t, root, WithDiagnostics(&diagnostics))

	require.NoError(t, err)
	assert.Empty(t, timeline.Actors["Bob"].Properties.Present())
	assert.Contains(t, diagnostics.String(), "transform = <malformed:")
}

func TestDecode_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Decode(ctx, scene("Bob"))

	require.ErrorIs(t, err, context.Canceled)
}

func TestPropertyKinds(t *testing.T) {
	assert.Equal(t, []string{
		"Appearance", "CustomScript", "EquipWeapon", "Fade", "FadeRegion", "GroundSnap",
		"MoveSpline", "Music", "Scale", "Sheathe", "Transform",
	}, PropertyKinds())
}
