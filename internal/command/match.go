// Package command implements the ex-style command-line parser and
// executor (spec C7): verb registry with prefix resolution, a
// settings registry for `set`/`setlocal`, and substitute parsing.
package command

import (
	"sort"
	"strings"
)

// MatchKind classifies how a name-registry lookup resolved.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchPrefix
	MatchAmbiguous
	MatchUnknown
)

// MatchResult is the outcome of resolving user input against a set of
// canonical names and aliases.
type MatchResult struct {
	Kind    MatchKind
	Name    string   // canonical name, for Exact/Prefix
	Prefix  string   // the input prefix, for Ambiguous
	Matches []string // candidate canonical names, for Ambiguous
}

// nameEntry is one registrable (canonical name, aliases) pair shared
// by the verb registry and the settings registry.
type nameEntry struct {
	canonical string
	aliases   []string
}

// nameMatcher resolves an input token against a list of entries: an
// exact hit on the canonical name or an alias wins outright; failing
// that, an unambiguous prefix match against canonical names and
// aliases wins; two or more candidates is Ambiguous.
type nameMatcher struct {
	entries []nameEntry
}

func (m *nameMatcher) add(canonical string, aliases ...string) {
	lowered := make([]string, len(aliases))
	for i, a := range aliases {
		lowered[i] = strings.ToLower(a)
	}
	m.entries = append(m.entries, nameEntry{canonical: strings.ToLower(canonical), aliases: lowered})
}

func (m *nameMatcher) match(input string) MatchResult {
	input = strings.ToLower(input)
	if input == "" {
		return MatchResult{Kind: MatchUnknown}
	}

	for _, e := range m.entries {
		if e.canonical == input {
			return MatchResult{Kind: MatchExact, Name: e.canonical}
		}
		for _, a := range e.aliases {
			if a == input {
				return MatchResult{Kind: MatchExact, Name: e.canonical}
			}
		}
	}

	seen := map[string]bool{}
	var candidates []string
	for _, e := range m.entries {
		if strings.HasPrefix(e.canonical, input) {
			if !seen[e.canonical] {
				seen[e.canonical] = true
				candidates = append(candidates, e.canonical)
			}
			continue
		}
		for _, a := range e.aliases {
			if strings.HasPrefix(a, input) {
				if !seen[e.canonical] {
					seen[e.canonical] = true
					candidates = append(candidates, e.canonical)
				}
				break
			}
		}
	}

	switch len(candidates) {
	case 0:
		return MatchResult{Kind: MatchUnknown}
	case 1:
		return MatchResult{Kind: MatchPrefix, Name: candidates[0]}
	default:
		sort.Strings(candidates)
		return MatchResult{Kind: MatchAmbiguous, Prefix: input, Matches: candidates}
	}
}
