// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the generic time-keyed event collection shared by every
// property kind.
//
// Scene scripts key events by their time in seconds, and a later entry with
// the same time replaces the earlier one. Consumers that need chronological
// order use Times or Keyframes.

package model

import "slices"

// Events maps a time in seconds to the event that fires at that time.
type Events[E any] map[float32]E

// Times returns the event times in ascending order.
func (e Events[E]) Times() []float32 {
	times := make([]float32, 0, len(e))
	for t := range e {
		times = append(times, t)
	}
	slices.Sort(times)
	return times
}

// Keyframe is one event together with its time.
type Keyframe[E any] struct {
	Time  float32 `json:"time" yaml:"time"`
	Event E       `json:"event" yaml:"event"`
}

// Keyframes returns the events in ascending time order.
func (e Events[E]) Keyframes() []Keyframe[E] {
	frames := make([]Keyframe[E], 0, len(e))
	for _, t := range e.Times() {
		frames = append(frames, Keyframe[E]{Time: t, Event: e[t]})
	}
	return frames
}
