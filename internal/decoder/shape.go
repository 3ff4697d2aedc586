package decoder

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// expectKeys checks that t holds exactly the given string keys. With ordered
// set, the first key in source order must also be keys[0].
func expectKeys(p scenepath.Path, t *value.Table, keys []string, ordered bool) error {
	shapeErr := func(detail string) error {
		return &ShapeError{Path: p, Expected: keys, Actual: t.KeyNames(), Detail: detail}
	}

	if t.Len() != len(keys) {
		return shapeErr(fmt.Sprintf("want %d keys, got %d", len(keys), t.Len()))
	}
	for _, k := range keys {
		if _, ok := t.Field(k); !ok {
			return shapeErr(fmt.Sprintf("missing key %q", k))
		}
	}
	if ordered {
		first, _ := t.First()
		if !first.Key.Equal(value.String(keys[0])) {
			return shapeErr(fmt.Sprintf("first key must be %q, got %s", keys[0], first.Key.KeyString()))
		}
	}
	return nil
}

// expectOnly checks that every key of t is one of the allowed names.
func expectOnly(p scenepath.Path, t *value.Table, allowed ...string) error {
	for k := range t.All() {
		name, ok := k.AsString()
		if !ok || !slices.Contains(allowed, name) {
			return &ShapeError{
				Path:     p,
				Expected: allowed,
				Actual:   t.KeyNames(),
				Detail:   fmt.Sprintf("unexpected key %s", k.KeyString()),
			}
		}
	}
	return nil
}
