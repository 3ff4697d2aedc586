// Package value defines the dynamic value tree produced by evaluating a scene
// script. It is a closed tagged union of nil, boolean, number, string and
// table values, where tables keep their entries in insertion order.
//
// Evaluators (Lua, HCL) build trees with this package; the decoder only ever
// reads them. Nothing here knows about actors, properties or events.
package value
