// Package search implements the editor's hybrid search engine (spec
// C6): line-by-line regex search for single-line patterns, whole
// buffer materialization for multi-line ones, with vim-style
// smartcase and explicit \c / \C case flags.
package search

import (
	"fmt"
	"regexp"
	"strings"
)

// Direction is which way a search moves from its starting position.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Match is a single search hit: a half-open code-point interval,
// ordered by Start.
type Match struct {
	Start, End int
}

// Source is the minimal view over a text buffer the search engine
// needs. internal/text.Buffer satisfies it; tests use a fake.
type Source interface {
	Len() int
	LineCount() int
	LineStart(line int) int
	LineEnd(line int) int
	LineAt(pos int) int
	Text(start, end int) string
	CharToByte(pos int) int
	ByteToChar(pos int) int
}

// config is the parsed, compiled form of a raw query string.
type config struct {
	pattern       string
	caseSensitive bool
}

// parseQuery extracts vim-style \c / \C flags from raw, applying
// smartcase when neither is present: case-sensitive iff the pattern
// (with flags removed) contains any uppercase rune.
func parseQuery(raw string, smartcaseEnabled bool) config {
	pattern := raw
	caseSensitive := false
	smartcase := smartcaseEnabled

	if idx := strings.Index(pattern, `\c`); idx >= 0 {
		pattern = pattern[:idx] + pattern[idx+2:]
		caseSensitive = false
		smartcase = false
	} else if idx := strings.Index(pattern, `\C`); idx >= 0 {
		pattern = pattern[:idx] + pattern[idx+2:]
		caseSensitive = true
		smartcase = false
	}

	if smartcase {
		caseSensitive = strings.IndexFunc(pattern, func(r rune) bool {
			return r >= 'A' && r <= 'Z'
		}) >= 0
	}

	return config{pattern: pattern, caseSensitive: caseSensitive}
}

func compile(c config) (*regexp.Regexp, error) {
	pattern := c.pattern
	if !c.caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return re, nil
}

// isMultiline reports whether the (flag-stripped) pattern can match a
// newline, which forces the whole-buffer strategy.
func isMultiline(pattern string) bool {
	return strings.Contains(pattern, `\n`) || strings.Contains(pattern, "\n")
}

// FindNext searches for query starting at startPos (a code-point
// offset) in direction dir. An empty query always returns no match
// per spec §8's boundary behavior.
func FindNext(src Source, startPos int, query string, dir Direction, smartcaseEnabled bool) (*Match, error) {
	if query == "" {
		return nil, nil
	}
	cfg := parseQuery(query, smartcaseEnabled)
	re, err := compile(cfg)
	if err != nil {
		return nil, err
	}
	if isMultiline(cfg.pattern) {
		return findMultiline(src, startPos, re, dir)
	}
	return findLineByLine(src, startPos, re, dir)
}

// FindAll returns every non-overlapping match in the buffer, ordered
// by start position, driving highlight rendering and substitute.
func FindAll(src Source, query string, smartcaseEnabled bool) ([]Match, error) {
	if query == "" {
		return nil, nil
	}
	cfg := parseQuery(query, smartcaseEnabled)
	re, err := compile(cfg)
	if err != nil {
		return nil, err
	}
	full := src.Text(0, src.Len())
	var out []Match
	for _, loc := range re.FindAllStringIndex(full, -1) {
		out = append(out, Match{
			Start: len([]rune(full[:loc[0]])),
			End:   len([]rune(full[:loc[1]])),
		})
	}
	return out, nil
}

func findLineByLine(src Source, startPos int, re *regexp.Regexp, dir Direction) (*Match, error) {
	lineCount := src.LineCount()
	if lineCount == 0 {
		return nil, nil
	}
	startLine := src.LineAt(startPos)

	switch dir {
	case Forward:
		if m := searchLine(src, startLine, re, &startPos); m != nil {
			return m, nil
		}
		for i := startLine + 1; i < lineCount; i++ {
			if m := searchLine(src, i, re, nil); m != nil {
				return m, nil
			}
		}
		for i := 0; i <= startLine; i++ {
			m := searchLine(src, i, re, nil)
			if m == nil {
				continue
			}
			if i == startLine && m.Start >= startPos {
				continue
			}
			return m, nil
		}
		return nil, nil
	default: // Backward
		if m := searchLineBackward(src, startLine, re, startPos); m != nil {
			return m, nil
		}
		for i := startLine - 1; i >= 0; i-- {
			if m := searchLineBackward(src, i, re, -1); m != nil {
				return m, nil
			}
		}
		for i := lineCount - 1; i > startLine; i-- {
			if m := searchLineBackward(src, i, re, -1); m != nil {
				return m, nil
			}
		}
		if m := searchLineBackward(src, startLine, re, -1); m != nil && m.Start > startPos {
			return m, nil
		}
		return nil, nil
	}
}

// searchLine finds the first match on line whose start is >= minStart
// (code-point offset), or the first match on the line at all when
// minStart is nil.
func searchLine(src Source, line int, re *regexp.Regexp, minStart *int) *Match {
	lineStart := src.LineStart(line)
	lineEnd := src.LineEnd(line)
	text := src.Text(lineStart, lineEnd)

	for _, loc := range re.FindAllStringIndex(text, -1) {
		absStart := lineStart + len([]rune(text[:loc[0]]))
		absEnd := lineStart + len([]rune(text[:loc[1]]))
		if minStart != nil && absStart < *minStart {
			continue
		}
		return &Match{Start: absStart, End: absEnd}
	}
	return nil
}

// searchLineBackward returns the last match on line that starts
// strictly before maxStart (or every match, if maxStart < 0).
func searchLineBackward(src Source, line int, re *regexp.Regexp, maxStart int) *Match {
	lineStart := src.LineStart(line)
	lineEnd := src.LineEnd(line)
	text := src.Text(lineStart, lineEnd)

	var last *Match
	for _, loc := range re.FindAllStringIndex(text, -1) {
		absStart := lineStart + len([]rune(text[:loc[0]]))
		absEnd := lineStart + len([]rune(text[:loc[1]]))
		if maxStart >= 0 && absStart >= maxStart {
			break
		}
		last = &Match{Start: absStart, End: absEnd}
	}
	return last
}

// findMultiline materializes the whole buffer and runs a single scan,
// the fallback strategy for patterns containing a literal or escaped
// newline (spec §4.4).
func findMultiline(src Source, startPos int, re *regexp.Regexp, dir Direction) (*Match, error) {
	full := src.Text(0, src.Len())
	startByte := charOffsetToByteOffset(full, startPos)

	switch dir {
	case Forward:
		if loc := re.FindStringIndex(full[startByte:]); loc != nil {
			return matchFromBytes(full, startByte+loc[0], startByte+loc[1]), nil
		}
		if loc := re.FindStringIndex(full); loc != nil {
			return matchFromBytes(full, loc[0], loc[1]), nil
		}
		return nil, nil
	default:
		all := re.FindAllStringIndex(full, -1)
		var lastBefore []int
		for _, loc := range all {
			if loc[0] < startByte {
				lastBefore = loc
			} else {
				break
			}
		}
		if lastBefore != nil {
			return matchFromBytes(full, lastBefore[0], lastBefore[1]), nil
		}
		if len(all) > 0 {
			last := all[len(all)-1]
			if last[0] >= startByte {
				return matchFromBytes(full, last[0], last[1]), nil
			}
		}
		return nil, nil
	}
}

func charOffsetToByteOffset(s string, charOffset int) int {
	if charOffset <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == charOffset {
			return i
		}
		n++
	}
	return len(s)
}

func matchFromBytes(full string, byteStart, byteEnd int) *Match {
	return &Match{
		Start: len([]rune(full[:byteStart])),
		End:   len([]rune(full[:byteEnd])),
	}
}
