package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestEvents_KeyframesAreSortedByTime(t *testing.T) {
	events := Events[ScaleEvent]{
		2.5: {Scale: 2, Duration: 1},
		0:   {Scale: 1, Duration: 0.5},
		1.5: {Scale: 1.5, Duration: 1},
	}

	assert.Equal(t, []float32{0, 1.5, 2.5}, events.Times())

	expected := []Keyframe[ScaleEvent]{
		{Time: 0, Event: ScaleEvent{Scale: 1, Duration: 0.5}},
		{Time: 1.5, Event: ScaleEvent{Scale: 1.5, Duration: 1}},
		{Time: 2.5, Event: ScaleEvent{Scale: 2, Duration: 1}},
	}
	if diff := cmp.Diff(expected, events.Keyframes()); diff != "" {
		t.Errorf("Keyframes() mismatch (-want +got):\n%s", diff)
	}
}

func TestEvents_Empty(t *testing.T) {
	var events Events[MusicEvent]
	assert.Empty(t, events.Times())
	assert.Empty(t, events.Keyframes())
}

func TestPropertySet_Present(t *testing.T) {
	ps := PropertySet{
		Transform:  &TransformProperty{},
		Appearance: &AppearanceProperty{},
		MoveSpline: &MoveSplineProperty{},
	}
	assert.Equal(t, []string{"Appearance", "MoveSpline", "Transform"}, ps.Present())
	assert.Empty(t, (&PropertySet{}).Present())
}

func TestTimeline_ActorNames(t *testing.T) {
	tl := NewTimeline()
	tl.Actors["Zed"] = &Actor{}
	tl.Actors["Bob"] = &Actor{}
	tl.Actors["alice"] = &Actor{}

	assert.Equal(t, []string{"Bob", "Zed", "alice"}, tl.ActorNames())
}
