package command

import (
	"strconv"
	"strings"
	"unicode"
)

// Parser turns a raw command-line string into a Parsed command,
// resolving the verb (and, for `:set`, the option name) against
// registries with prefix matching.
type Parser struct {
	verbs    *VerbRegistry
	settings *SettingsRegistry
}

func NewParser(verbs *VerbRegistry, settings *SettingsRegistry) *Parser {
	return &Parser{verbs: verbs, settings: settings}
}

// Parse accepts input with or without a leading ':'.
func (p *Parser) Parse(input string) Parsed {
	line := strings.TrimSpace(input)
	line = strings.TrimPrefix(line, ":")
	line = strings.TrimSpace(line)
	if line == "" {
		return Parsed{Kind: Unknown, Name: ""}
	}

	fields := strings.Fields(line)
	head := fields[0]
	args := fields[1:]

	// The verb ends at the first rune that cannot belong to a verb name,
	// so ":s/foo/bar/" splits into verb "s" and argument "/foo/bar/".
	if i := strings.IndexFunc(head, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '%' && r != '!'
	}); i > 0 {
		args = append([]string{head[i:]}, args...)
		head = head[:i]
	}

	verb, bangs := splitBangs(head)
	if verb == "" {
		return Parsed{Kind: Unknown, Name: ""}
	}

	switch p.verbs.Resolve(verb).Kind {
	case MatchAmbiguous:
		res := p.verbs.Resolve(verb)
		return Parsed{Kind: Ambiguous, Prefix: res.Prefix, Matches: res.Matches}
	case MatchUnknown:
		return Parsed{Kind: Unknown, Name: verb}
	}

	canonical := p.verbs.Resolve(verb).Name
	return p.dispatch(canonical, args, bangs)
}

// splitBangs strips trailing '!' characters from head, returning the
// bare verb and how many were stripped.
func splitBangs(head string) (string, int) {
	n := 0
	for len(head) > 0 && head[len(head)-1] == '!' {
		head = head[:len(head)-1]
		n++
	}
	return head, n
}

func (p *Parser) dispatch(verb string, args []string, bangs int) Parsed {
	switch verb {
	case "quit":
		return Parsed{Kind: Quit, Bangs: bangs}
	case "write":
		return parsePathCommand(Write, "write", args, bangs)
	case "wq":
		return parsePathCommand(WriteQuit, "wq", args, bangs)
	case "edit":
		return parsePathCommand(Edit, "edit", args, bangs)
	case "set":
		return p.parseSet(args, bangs, false)
	case "setlocal":
		return p.parseSet(args, bangs, true)
	case "notify":
		return parseNotify(args, bangs)
	case "redraw":
		if len(args) != 0 {
			return Parsed{Kind: Unknown, Name: "redraw (usage: :redraw)"}
		}
		return Parsed{Kind: Redraw, Bangs: bangs}
	case "bnext":
		return Parsed{Kind: BufferNext, Bangs: bangs}
	case "bprev":
		return Parsed{Kind: BufferPrev, Bangs: bangs}
	case "ls":
		return Parsed{Kind: BufferList}
	case "nohighlight":
		return Parsed{Kind: NoHighlight, Bangs: bangs}
	case "substitute":
		return parseSubstitute(args, bangs, "")
	case "substitute_range":
		return parseSubstitute(args, bangs, "%")
	case "undo":
		return parseUndo(args, bangs)
	case "redo":
		return parseRedo(args, bangs)
	case "checkpoint":
		return Parsed{Kind: Checkpoint, Bangs: bangs}
	case "undotree":
		return Parsed{Kind: UndoTree, Bangs: bangs}
	case "explore":
		return parsePathCommand(Explore, "explore", args, bangs)
	case "terminal":
		cmd := ""
		if len(args) > 0 {
			cmd = strings.Join(args, " ")
		}
		return Parsed{Kind: Terminal, Cmd: cmd, Bangs: bangs}
	default:
		return Parsed{Kind: Unknown, Name: verb}
	}
}

func parsePathCommand(kind Kind, name string, args []string, bangs int) Parsed {
	switch len(args) {
	case 0:
		return Parsed{Kind: kind, Bangs: bangs}
	case 1:
		return Parsed{Kind: kind, Path: args[0], Bangs: bangs}
	default:
		return Parsed{Kind: Unknown, Name: name + " (too many arguments)"}
	}
}

func parseNotify(args []string, bangs int) Parsed {
	if len(args) == 1 && (args[0] == "clear" || args[0] == "clear!") {
		extra := 0
		if strings.HasSuffix(args[0], "!") {
			extra = 1
		}
		return Parsed{Kind: Notify, NotifyKind: "clear", Bangs: bangs + extra}
	}
	if len(args) < 2 {
		return Parsed{Kind: Unknown, Name: "notify (usage: :notify <type> <message>)"}
	}
	return Parsed{Kind: Notify, NotifyKind: args[0], Message: strings.Join(args[1:], " "), Bangs: bangs}
}

func parseUndo(args []string, bangs int) Parsed {
	if len(args) == 0 {
		return Parsed{Kind: Undo, Bangs: bangs}
	}
	seq, err := strconv.Atoi(args[0])
	if err != nil {
		return Parsed{Kind: Unknown, Name: "undo (invalid argument: " + args[0] + ")"}
	}
	return Parsed{Kind: UndoGoto, Seq: &seq, Bangs: bangs}
}

func parseRedo(args []string, bangs int) Parsed {
	if len(args) == 0 {
		return Parsed{Kind: Redo, Bangs: bangs}
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return Parsed{Kind: Unknown, Name: "redo (invalid argument: " + args[0] + ")"}
	}
	return Parsed{Kind: Redo, Count: &count, Bangs: bangs}
}

// parseSet mirrors the teacher's parse_set_impl: "no"-prefixed
// booleans, option=value assignment, space-separated value, and bare
// boolean-on, each resolved through the option registry's prefix
// matcher before being wrapped in a Set/SetLocal Parsed.
func (p *Parser) parseSet(args []string, bangs int, local bool) Parsed {
	if len(args) == 0 {
		return Parsed{Kind: Unknown, Name: "set"}
	}
	kind := Set
	if local {
		kind = SetLocal
	}
	optionStr := args[0]
	lower := strings.ToLower(optionStr)

	if strings.HasPrefix(lower, "no") && len(lower) > 2 {
		without := lower[2:]
		res := p.settings.Resolve(without)
		switch res.Kind {
		case MatchExact, MatchPrefix:
			return Parsed{Kind: kind, Option: res.Name, Value: "false", HasValue: true, Bangs: bangs}
		case MatchAmbiguous:
			noMatches := make([]string, len(res.Matches))
			for i, m := range res.Matches {
				noMatches[i] = "no" + m
			}
			return Parsed{Kind: Ambiguous, Prefix: "no" + res.Prefix, Matches: noMatches}
		}
	}

	if eq := strings.Index(optionStr, "="); eq >= 0 {
		optionPart := optionStr[:eq]
		value := optionStr[eq+1:]
		res := p.settings.Resolve(optionPart)
		switch res.Kind {
		case MatchExact, MatchPrefix:
			return Parsed{Kind: kind, Option: res.Name, Value: value, HasValue: true, Bangs: bangs}
		case MatchAmbiguous:
			return Parsed{Kind: Ambiguous, Prefix: res.Prefix + "=", Matches: res.Matches}
		default:
			return Parsed{Kind: kind, Option: optionPart, Value: value, HasValue: true, Bangs: bangs}
		}
	}

	if len(args) > 1 {
		value := args[1]
		res := p.settings.Resolve(optionStr)
		switch res.Kind {
		case MatchExact, MatchPrefix:
			return Parsed{Kind: kind, Option: res.Name, Value: value, HasValue: true, Bangs: bangs}
		case MatchAmbiguous:
			return Parsed{Kind: Ambiguous, Prefix: res.Prefix, Matches: res.Matches}
		default:
			return Parsed{Kind: kind, Option: optionStr, Value: value, HasValue: true, Bangs: bangs}
		}
	}

	res := p.settings.Resolve(optionStr)
	switch res.Kind {
	case MatchExact, MatchPrefix:
		return Parsed{Kind: kind, Option: res.Name, Value: "true", HasValue: true, Bangs: bangs}
	case MatchAmbiguous:
		return Parsed{Kind: Ambiguous, Prefix: res.Prefix, Matches: res.Matches}
	default:
		return Parsed{Kind: kind, Option: optionStr, Value: "true", HasValue: true, Bangs: bangs}
	}
}

// parseSubstitute implements the separator-delimited
// pattern/replacement/flags grammar: the character right after the
// verb (commonly '/') is the separator; '\' escapes the next
// character, including the separator itself. Flag 'g' is a substitute
// flag (replace all on the line); any other flag letters are put in
// front of the pattern as an inline regex flag group, e.g. "(?i)".
func parseSubstitute(args []string, bangs int, defaultRange string) Parsed {
	raw := strings.TrimSpace(strings.Join(args, " "))
	if raw == "" {
		return Parsed{Kind: Unknown, Name: "substitute (usage: :s/pattern/replacement/flags)"}
	}

	runes := []rune(raw)
	separator := runes[0]
	i := 1

	pattern, i := scanSubstitutePart(runes, i, separator)
	foundFirstSep := i < len(runes)
	if foundFirstSep {
		i++ // skip separator
	}

	replacement := ""
	foundSecondSep := false
	if foundFirstSep {
		replacement, i = scanSubstitutePart(runes, i, separator)
		foundSecondSep = i < len(runes)
		if foundSecondSep {
			i++
		}
	}

	flagsStr := ""
	if foundSecondSep {
		flagsStr = string(runes[i:])
	}

	substFlags := strings.Builder{}
	regexFlags := strings.Builder{}
	for _, c := range flagsStr {
		if c == 'g' {
			substFlags.WriteRune(c)
		} else {
			regexFlags.WriteRune(c)
		}
	}

	if regexFlags.Len() > 0 {
		pattern = "(?" + regexFlags.String() + ")" + pattern
	}

	return Parsed{
		Kind: Substitute, Pattern: pattern, Replacement: replacement,
		Flags: substFlags.String(), Range: defaultRange, Bangs: bangs,
	}
}

// scanSubstitutePart consumes runes from i until an unescaped
// separator or end of input, returning the unescaped text and the
// index it stopped at (either at the separator or len(runes)).
func scanSubstitutePart(runes []rune, i int, separator rune) (string, int) {
	var out strings.Builder
	escaped := false
	for ; i < len(runes); i++ {
		c := runes[i]
		switch {
		case escaped:
			out.WriteRune(c)
			escaped = false
		case c == '\\':
			out.WriteRune(c)
			escaped = true
		case c == separator:
			return out.String(), i
		default:
			out.WriteRune(c)
		}
	}
	return out.String(), i
}
