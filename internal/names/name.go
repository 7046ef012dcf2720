package names

import (
	"fmt"
	"regexp"
	"strings"
)

// fullNameRe decomposes a full name into first, last and an optional
// generational suffix. The first component is non-greedy so multi-word
// first names work; the last component is the final token before any
// suffix. The suffix vocabulary is fixed: Jr, Sr (with or without a
// period), II, III, IV, V. Lowercase or otherwise-punctuated suffixes
// are treated as ordinary last-name tokens.
var fullNameRe = regexp.MustCompile(
	`^(?P<first>.+?)\s(?P<last>[^\s,]+)(,?\s(?P<suffix>[JS]r\.?|III?|IV|V))?$`)

var (
	firstIdx  = fullNameRe.SubexpIndex("first")
	lastIdx   = fullNameRe.SubexpIndex("last")
	suffixIdx = fullNameRe.SubexpIndex("suffix")
)

// Name is a player name decomposed into its components.
type Name struct {
	Full   string
	First  string
	Last   string
	Suffix string // empty when absent
}

// Parse decomposes full into first/last/suffix. Returns ErrNameFormat
// when the input has no internal whitespace to split on.
func Parse(full string) (Name, error) {
	full = strings.TrimSpace(full)
	m := fullNameRe.FindStringSubmatch(full)
	if m == nil {
		return Name{}, fmt.Errorf("parse %q: %w", full, ErrNameFormat)
	}
	return Name{
		Full:   full,
		First:  m[firstIdx],
		Last:   m[lastIdx],
		Suffix: m[suffixIdx],
	}, nil
}

// ParseAll decomposes every parseable name in raw, silently skipping
// names that do not match the pattern.
func ParseAll(raw []string) []Name {
	parsed := make([]Name, 0, len(raw))
	for _, full := range raw {
		n, err := Parse(full)
		if err != nil {
			continue
		}
		parsed = append(parsed, n)
	}
	return parsed
}
