package names

import "errors"

var (
	// ErrNameFormat reports an input that does not split into first and
	// last components (single-token names, empty strings).
	ErrNameFormat = errors.New("name does not match first/last pattern")

	// ErrNameNotFound reports that no resolution rule produced a
	// universe hit.
	ErrNameNotFound = errors.New("name not found in universe")

	// ErrNameMissing reports a name that is not in the canonical set,
	// the conversion pairs, or the known-missing set.
	ErrNameMissing = errors.New("name not recognized")
)
