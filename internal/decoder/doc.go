// Package decoder turns the value a scene script evaluates to into a typed
// model.Timeline.
//
// The input is an untyped tree of tables. The decoder walks it in source
// order and checks every table against the fixed shape expected at its
// location:
//
//	{ actors = { ["Name"] = { properties = { Kind = { events = {...} } } } } }
//
// Each supported property kind has a closed record schema. A wrong value
// kind, a missing required field or an unknown field name inside a known
// record fails the whole decode with an error carrying the path of the
// offending value, e.g.
//
//	actors["Bob"].properties.Appearance.events[12.5].creatureDisplaySetIndex
//
// Unknown property kinds are the one tolerated unknown: they are skipped,
// reported to the skip handler and optionally dumped to a diagnostics writer.
package decoder
