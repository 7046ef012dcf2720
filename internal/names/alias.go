package names

// AliasEntry links a canonical first name with a known nickname.
type AliasEntry struct {
	Name     string
	Nickname string
}

// AliasTable answers first-name nickname lookups in both directions. The
// entries are loaded once per session and never mutated.
type AliasTable struct {
	entries   []AliasEntry
	names     map[string]struct{}
	nicknames map[string]struct{}
}

// NewAliasTable builds a table from name/nickname pairs.
func NewAliasTable(entries []AliasEntry) *AliasTable {
	t := &AliasTable{
		entries:   entries,
		names:     make(map[string]struct{}, len(entries)),
		nicknames: make(map[string]struct{}, len(entries)),
	}
	for _, e := range entries {
		t.names[e.Name] = struct{}{}
		t.nicknames[e.Nickname] = struct{}{}
	}
	return t
}

// Aliases returns the alternatives for a first name: nicknames when the
// input is a regular name, regular names when the input is a nickname.
// Returns nil when the name appears in neither column.
func (t *AliasTable) Aliases(first string) []string {
	if _, ok := t.names[first]; ok {
		var out []string
		seen := make(map[string]struct{})
		for _, e := range t.entries {
			if e.Name != first {
				continue
			}
			if _, dup := seen[e.Nickname]; dup {
				continue
			}
			seen[e.Nickname] = struct{}{}
			out = append(out, e.Nickname)
		}
		return out
	}
	if _, ok := t.nicknames[first]; ok {
		var out []string
		seen := make(map[string]struct{})
		for _, e := range t.entries {
			if e.Nickname != first {
				continue
			}
			if _, dup := seen[e.Name]; dup {
				continue
			}
			seen[e.Name] = struct{}{}
			out = append(out, e.Name)
		}
		return out
	}
	return nil
}

// HasAliases reports whether first appears in either column.
func (t *AliasTable) HasAliases(first string) bool {
	if _, ok := t.names[first]; ok {
		return true
	}
	_, ok := t.nicknames[first]
	return ok
}
