package pattern

import (
	"strings"
)

// Polarity tells whether the matches of a pattern are added to or removed from the result.
type Polarity byte

const (
	// Include marks a pattern whose matches are candidates for the result.
	Include Polarity = iota
	// Exclude marks a pattern whose matches are removed from the result.
	Exclude
)

// NegationMarker is the prefix that turns a pattern into an exclusion pattern.
const NegationMarker = "!"

func (polarity Polarity) String() string {
	if polarity == Exclude {
		return "exclude"
	}

	return "include"
}

// SearchPattern is a single normalized glob expression with its polarity.
type SearchPattern struct {
	pattern  string
	polarity Polarity
}

// NewSearchPattern returns a SearchPattern for the given, already normalized, glob expression.
func NewSearchPattern(pattern string, polarity Polarity) SearchPattern {
	return SearchPattern{pattern: pattern, polarity: polarity}
}

// Pattern returns the glob expression without the negation marker.
func (p SearchPattern) Pattern() string {
	return p.pattern
}

// Polarity returns whether this is an inclusion or an exclusion pattern.
func (p SearchPattern) Polarity() Polarity {
	return p.polarity
}

// IsExclude returns true for exclusion patterns.
func (p SearchPattern) IsExclude() bool {
	return p.polarity == Exclude
}

// String returns the pattern as it would be written in a search path.
func (p SearchPattern) String() string {
	if p.IsExclude() {
		return NegationMarker + p.pattern
	}

	return p.pattern
}

// Patterns is an ordered list of search patterns.
type Patterns []SearchPattern

// Includes returns the inclusion patterns, keeping their order.
func (patterns Patterns) Includes() Patterns {
	return patterns.filter(Include)
}

// Excludes returns the exclusion patterns, keeping their order.
func (patterns Patterns) Excludes() Patterns {
	return patterns.filter(Exclude)
}

// Strings returns the glob expressions without negation markers.
func (patterns Patterns) Strings() []string {
	strs := make([]string, len(patterns))

	for i, p := range patterns {
		strs[i] = p.Pattern()
	}

	return strs
}

func (patterns Patterns) String() string {
	strs := make([]string, len(patterns))

	for i, p := range patterns {
		strs[i] = p.String()
	}

	return strings.Join(strs, "\n")
}

func (patterns Patterns) filter(polarity Polarity) Patterns {
	var out Patterns

	for _, p := range patterns {
		if p.polarity == polarity {
			out = append(out, p)
		}
	}

	return out
}
