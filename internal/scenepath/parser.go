package scenepath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/scenescript/internal/value"
)

// Parse creates a Path from its canonical text representation.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	if raw == "<root>" {
		return Root, nil
	}

	var p Path
	rest := raw
	for rest != "" {
		switch {
		case rest[0] == '[':
			key, n, err := parseKey(rest)
			if err != nil {
				return nil, fmt.Errorf("invalid key in %q: %w", raw, err)
			}
			p = append(p, NewKey(key))
			rest = rest[n:]
		case rest[0] == '.':
			if len(p) == 0 {
				return nil, fmt.Errorf("path %q cannot start with '.'", raw)
			}
			rest = rest[1:]
			name, n := scanIdentifier(rest)
			if n == 0 {
				return nil, fmt.Errorf("path %q contains empty segment", raw)
			}
			p = append(p, NewField(name))
			rest = rest[n:]
		default:
			if len(p) > 0 {
				return nil, fmt.Errorf("unexpected %q in path %q", rest[0], raw)
			}
			name, n := scanIdentifier(rest)
			if n == 0 {
				return nil, fmt.Errorf("invalid path segment format: %q", rest)
			}
			p = append(p, NewField(name))
			rest = rest[n:]
		}
	}
	return p, nil
}

// parseKey reads a bracketed key at the start of s and returns it together
// with the number of bytes consumed.
func parseKey(s string) (value.Value, int, error) {
	body := s[1:]
	if strings.HasPrefix(body, `"`) {
		quoted, err := strconv.QuotedPrefix(body)
		if err != nil {
			return value.Nil, 0, err
		}
		if !strings.HasPrefix(body[len(quoted):], "]") {
			return value.Nil, 0, fmt.Errorf("missing closing ']'")
		}
		unquoted, err := strconv.Unquote(quoted)
		if err != nil {
			return value.Nil, 0, err
		}
		return value.String(unquoted), 1 + len(quoted) + 1, nil
	}

	end := strings.IndexByte(body, ']')
	if end < 0 {
		return value.Nil, 0, fmt.Errorf("missing closing ']'")
	}
	n, err := strconv.ParseFloat(body[:end], 64)
	if err != nil {
		return value.Nil, 0, fmt.Errorf("key %q is neither a quoted string nor a number", body[:end])
	}
	return value.Number(n), 1 + end + 1, nil
}

func scanIdentifier(s string) (string, int) {
	n := 0
	for n < len(s) {
		c := s[n]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (n > 0 && c >= '0' && c <= '9') {
			n++
			continue
		}
		break
	}
	return s[:n], n
}
