// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of a decoded scene
// script timeline. Its core purpose is to hold a strongly-typed, in-memory view
// of a cinematic: which actors exist and what happens to each of them over
// time.
//
// # Core Concepts
//
//   - Timeline: The root container. It maps actor names to actors.
//
//   - Actor: A named participant in the scene. Every actor owns exactly one
//     PropertySet.
//
//   - PropertySet: A fixed catalogue of eleven optional properties
//     (Appearance, CustomScript, EquipWeapon, Fade, FadeRegion, GroundSnap,
//     MoveSpline, Music, Scale, Sheathe, Transform). A nil field means the
//     script did not mention that property for the actor.
//
//   - Events: A time-keyed collection. Each property maps a time in seconds to
//     the typed event that fires at that moment.
//
// Why typed identifiers?
//
// Scene scripts refer to game data through several unrelated numeric
// identifier spaces (creatures, files, game object displays, items). Each has
// its own named type here so a creature ID cannot be passed where a file ID is
// expected without an explicit conversion.
//
// The model is built once by the decoder and never mutated afterwards.
package model
