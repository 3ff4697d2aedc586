/*
Package scenepath provides a structured representation of a logical location
inside a scene script, used to point at the exact table or field a decode
error is about.

The canonical text form chains field segments with dots and renders key
segments in brackets, e.g.
`actors["Bob"].properties.Appearance.events[12.5].creatureDisplaySetIndex`.

This package centralizes formatting and parsing of that form, and resolving a
path against a value tree.
*/
package scenepath
