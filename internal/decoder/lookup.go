package decoder

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/specialistvlad/scenescript/internal/scenepath"
	"github.com/specialistvlad/scenescript/internal/value"
)

// UnknownPolicy decides what a lookup does with a name it does not hold.
type UnknownPolicy uint8

const (
	// FailOnUnknown turns an unknown name into an UnhandledFieldError.
	FailOnUnknown UnknownPolicy = iota
	// SkipUnknown reports the name as not found and lets the caller move on.
	SkipUnknown
)

func (p UnknownPolicy) String() string {
	switch p {
	case FailOnUnknown:
		return "fail"
	case SkipUnknown:
		return "skip"
	default:
		return fmt.Sprintf("UnknownPolicy(%d)", uint8(p))
	}
}

type entry[T any] struct {
	name  string
	value T
}

func named[T any](name string, v T) entry[T] {
	return entry[T]{name: name, value: v}
}

// lookup is a static name table with an explicit policy for unknown names.
type lookup[T any] struct {
	policy  UnknownPolicy
	names   []string
	entries map[string]T
}

func newLookup[T any](policy UnknownPolicy, entries ...entry[T]) *lookup[T] {
	l := &lookup[T]{policy: policy, entries: make(map[string]T, len(entries))}
	for _, e := range entries {
		if _, exists := l.entries[e.name]; exists {
			panic(fmt.Sprintf("lookup: duplicate name %q", e.name))
		}
		l.names = append(l.names, e.name)
		l.entries[e.name] = e.value
	}
	return l
}

// find returns the entry for name. Under SkipUnknown a miss is reported
// through the bool; under FailOnUnknown it is an error carrying the closest
// known name.
func (l *lookup[T]) find(p scenepath.Path, name string, raw value.Value) (T, bool, error) {
	if v, ok := l.entries[name]; ok {
		return v, true, nil
	}
	var zero T
	if l.policy == SkipUnknown {
		return zero, false, nil
	}
	return zero, false, &UnhandledFieldError{
		Path:       p,
		Field:      name,
		Value:      raw,
		Suggestion: closestMatch(name, l.names),
	}
}

// closestMatch suggests a known name for a misspelt one. It prefers names that
// contain the input as a fuzzy subsequence, then names the input contains.
func closestMatch(name string, candidates []string) string {
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best := ""
	for _, c := range candidates {
		if fuzzy.MatchFold(c, name) && len(c) > len(best) {
			best = c
		}
	}
	return best
}
