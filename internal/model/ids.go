// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// CreatureID identifies a creature template. Scripts write it as cid(n).
type CreatureID int

// FileDataID identifies a game data file. Scripts write it as fid(n).
type FileDataID int

// GameObjectDisplayInfoID identifies a game object display. Scripts write it as gdi(n).
type GameObjectDisplayInfoID int

// ItemID identifies an item. Scripts write it as iid(n).
type ItemID int
