package scenepath

import (
	"fmt"

	"github.com/specialistvlad/scenescript/internal/value"
)

// Resolve walks root along p and returns the value found there. Field
// segments look up string keys; key segments look up their exact key.
func Resolve(root value.Value, p Path) (value.Value, error) {
	current := root
	for i, segment := range p {
		tbl, ok := current.AsTable()
		if !ok {
			return value.Nil, fmt.Errorf("%s is a %s, not a table", p[:i], current.Kind())
		}
		key := segment.Key
		if !segment.IsKey() {
			key = value.String(segment.Name)
		}
		next, ok := tbl.Get(key)
		if !ok {
			return value.Nil, fmt.Errorf("%s not found", p[:i+1])
		}
		current = next
	}
	return current, nil
}
