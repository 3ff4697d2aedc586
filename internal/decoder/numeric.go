package decoder

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberFormat fixes how numeric text embedded in scripts is parsed. It is
// configured explicitly and never derived from the host locale.
type NumberFormat struct {
	DecimalSeparator rune
}

// Invariant is the format scene scripts are written in.
var Invariant = NumberFormat{DecimalSeparator: '.'}

// ParseFloat parses s using the format's decimal separator.
func (f NumberFormat) ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	sep := f.DecimalSeparator
	if sep == 0 {
		sep = '.'
	}
	if sep != '.' {
		if strings.ContainsRune(s, '.') {
			return 0, fmt.Errorf("%q: '.' is not the decimal separator %q", s, sep)
		}
		s = strings.Replace(s, string(sep), ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}
