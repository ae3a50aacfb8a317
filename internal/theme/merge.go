package theme

import "fmt"

// Merge combines themes that share a name. Later themes override earlier
// ones token by token; every override produces a warning.
func Merge(themes []Theme) (Set, []string) {
	set := make(Set)
	origin := make(map[string]map[string]string) // theme -> token -> source file
	warnings := []string{}

	for _, t := range themes {
		existing, found := set[t.Name]
		if !found {
			merged := Theme{Name: t.Name, Tokens: make(map[string]string, len(t.Tokens)), Source: t.Source}
			origin[t.Name] = make(map[string]string, len(t.Tokens))
			for k, v := range t.Tokens {
				merged.Tokens[k] = v
				origin[t.Name][k] = t.Source
			}
			set[t.Name] = merged
			continue
		}

		for _, k := range t.Keys() {
			v := t.Tokens[k]
			if prev, ok := existing.Tokens[k]; ok && prev != v {
				warnings = append(warnings, fmt.Sprintf(
					"Token '--%s' in theme '%s' redefined in %s (was %s) - later value wins",
					k, t.Name, t.Source, origin[t.Name][k],
				))
			}
			existing.Tokens[k] = v
			origin[t.Name][k] = t.Source
		}
	}

	return set, warnings
}

// Extend returns a copy of base with overrides layered on top. Used to
// derive named themes from the default theme so a dark theme only needs to
// declare the tokens it changes.
func Extend(base Theme, overrides Theme) Theme {
	out := Theme{Name: overrides.Name, Tokens: make(map[string]string, len(base.Tokens)+len(overrides.Tokens)), Source: overrides.Source}
	for k, v := range base.Tokens {
		out.Tokens[k] = v
	}
	for k, v := range overrides.Tokens {
		out.Tokens[k] = v
	}
	return out
}
