package nameindex

import (
	"sort"
	"strings"
)

// greekAbbreviations maps the two- and three-letter Bayer-designation
// abbreviations used throughout star catalogs to their Greek letters.
var greekAbbreviations = map[string]string{
	"alf": "α", "bet": "β", "gam": "γ", "del": "δ", "eps": "ε",
	"zet": "ζ", "eta": "η", "the": "θ", "iot": "ι", "kap": "κ",
	"lam": "λ", "mu": "μ", "nu": "ν", "xi": "ξ", "omi": "ο",
	"pi": "π", "rho": "ρ", "sig": "σ", "tau": "τ", "ups": "υ",
	"phi": "φ", "chi": "χ", "psi": "ψ", "ome": "ω",
}

// expandGreekPrefix reports whether name begins with a recognized Bayer
// abbreviation immediately followed by end-of-string, a digit (numbered
// variants like "Alf2"), or a space, and if so returns name with that
// abbreviation replaced by its Greek letter.
func expandGreekPrefix(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, abbr := range sortedGreekKeys() {
		if !strings.HasPrefix(lower, abbr) {
			continue
		}
		rest := name[len(abbr):]
		if rest != "" {
			c := rest[0]
			if !(c == ' ' || (c >= '0' && c <= '9')) {
				continue
			}
		}
		return greekAbbreviations[abbr] + rest, true
	}
	return "", false
}

var sortedGreekKeysCache []string

// sortedGreekKeys returns abbreviation keys longest-first so that "the"
// isn't shadowed by a shorter, coincidentally matching prefix.
func sortedGreekKeys() []string {
	if sortedGreekKeysCache != nil {
		return sortedGreekKeysCache
	}
	keys := make([]string, 0, len(greekAbbreviations))
	for k := range greekAbbreviations {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	sortedGreekKeysCache = keys
	return keys
}

// GetCompletion returns every display name whose name (or, when
// greekExpansion is true, whose Bayer-abbreviation-expanded form) starts
// with prefix, case-insensitively, sorted alphabetically. When i18n is
// true the localized overlay is searched in addition to the plain index.
func (d *Database) GetCompletion(prefix string, i18n bool, greekExpansion bool) []string {
	d.lazyInit()
	lowerPrefix := strings.ToLower(prefix)

	candidates := []string{lowerPrefix}
	if greekExpansion {
		if expanded, ok := expandGreekPrefix(prefix); ok {
			candidates = append(candidates, strings.ToLower(expanded))
		}
	}

	seen := make(map[string]struct{})
	var results []string
	collect := func(keyToDisplay map[string]string) {
		for key, display := range keyToDisplay {
			for _, c := range candidates {
				if strings.HasPrefix(key, c) {
					if _, dup := seen[key]; !dup {
						seen[key] = struct{}{}
						results = append(results, display)
					}
					break
				}
			}
		}
	}

	if i18n {
		collect(d.localizedKeyToDisplay)
	}
	collect(d.nameKeyToDisplay)

	sort.Slice(results, func(i, j int) bool {
		return strings.ToLower(results[i]) < strings.ToLower(results[j])
	})
	return results
}
