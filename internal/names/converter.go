package names

import (
	"fmt"
	"sort"
)

// Source identifies which reference dataset recognized a name.
type Source int

const (
	// SourceConversion means the name had a known canonical replacement.
	SourceConversion Source = iota + 1
	// SourceKnownMissing means the player is legitimately absent from
	// playerstats; the name passes through unchanged.
	SourceKnownMissing
	// SourceCanonical means the name is already the canonical spelling.
	SourceCanonical
)

// Resolution is the outcome of a Clean call. Resolved is false when the
// name matched none of the reference datasets.
type Resolution struct {
	Name     string
	Source   Source
	Resolved bool
}

// ConverterConfig carries the reference datasets for one session.
type ConverterConfig struct {
	// Pairs maps non-canonical spellings to their canonical replacement.
	Pairs map[string]string
	// KnownMissing lists players legitimately absent from playerstats.
	KnownMissing []string
	// Known is the canonical-name universe from playerstats.
	Known []string
	// TeamNames, when set, are treated as known so team references in
	// mixed feeds do not flag as unrecognized players.
	TeamNames []string
	// Lenient disables the error on unrecognized names; callers then
	// check Resolution.Resolved instead.
	Lenient bool
}

// Converter classifies incoming names against the reference datasets
// loaded for a session. The datasets are read-only after construction;
// the only mutable state is the log of unhandled names.
type Converter struct {
	pairs        map[string]string
	knownMissing map[string]struct{}
	known        map[string]struct{}
	unhandled    map[string]struct{}
	lenient      bool
}

// NewConverter builds a converter from session reference data.
func NewConverter(cfg ConverterConfig) *Converter {
	c := &Converter{
		pairs:        make(map[string]string, len(cfg.Pairs)),
		knownMissing: make(map[string]struct{}, len(cfg.KnownMissing)),
		known:        make(map[string]struct{}, len(cfg.Known)),
		unhandled:    make(map[string]struct{}),
		lenient:      cfg.Lenient,
	}
	for old, canon := range cfg.Pairs {
		c.pairs[old] = canon
	}
	for _, n := range cfg.KnownMissing {
		c.knownMissing[n] = struct{}{}
	}
	for _, n := range cfg.Known {
		c.known[n] = struct{}{}
	}
	for _, n := range cfg.TeamNames {
		c.known[n] = struct{}{}
	}
	return c
}

// Clean classifies name against, in order, the conversion pairs, the
// known-missing set and the canonical universe. A conversion pair wins
// even when the input is itself canonical. Unrecognized names are
// recorded in the unhandled log; in strict mode (the default) they also
// return ErrNameMissing.
func (c *Converter) Clean(name string) (Resolution, error) {
	if canon, ok := c.pairs[name]; ok {
		return Resolution{Name: canon, Source: SourceConversion, Resolved: true}, nil
	}
	if _, ok := c.knownMissing[name]; ok {
		return Resolution{Name: name, Source: SourceKnownMissing, Resolved: true}, nil
	}
	if _, ok := c.known[name]; ok {
		return Resolution{Name: name, Source: SourceCanonical, Resolved: true}, nil
	}

	c.unhandled[name] = struct{}{}
	if !c.lenient {
		return Resolution{}, fmt.Errorf(
			"clean %q: not in playerstats, associated pairs, or known to be missing: %w",
			name, ErrNameMissing)
	}
	return Resolution{}, nil
}

// IsProblematic reports whether name needs attention, with a reason
// string. Unlike Clean it never mutates the unhandled log; the integrity
// checker uses it for read-only scanning.
func (c *Converter) IsProblematic(name string) (bool, string) {
	if canon, ok := c.pairs[name]; ok {
		return true, fmt.Sprintf("Should be %s.", canon)
	}
	if _, ok := c.knownMissing[name]; ok {
		return false, "Known to be missing from playerstats."
	}
	if _, ok := c.known[name]; ok {
		return false, "In playerstats."
	}
	return true, "Not in playerstats, no associated name, and not known to be missing."
}

// Unhandled returns the names Clean could not classify, sorted.
func (c *Converter) Unhandled() []string {
	out := make([]string, 0, len(c.unhandled))
	for n := range c.unhandled {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// HasUnhandled reports whether any unrecognized names were encountered.
func (c *Converter) HasUnhandled() bool {
	return len(c.unhandled) != 0
}
