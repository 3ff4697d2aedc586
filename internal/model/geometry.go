// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Position is a point in world space.
type Position struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// Transform is a position plus an orientation in degrees.
type Transform struct {
	Position Position `json:"position" yaml:"position"`
	Yaw      float32  `json:"yaw" yaml:"yaw"`
	Pitch    float32  `json:"pitch" yaml:"pitch"`
	Roll     float32  `json:"roll" yaml:"roll"`
}
