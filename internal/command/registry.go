package command

// verbDef is one registrable ex-command verb.
type verbDef struct {
	name    string
	aliases []string
}

// VerbRegistry resolves the leading token of a command line
// (":w" -> "write", ":bn" -> "bnext", ...) via the shared prefix
// matcher, mirroring the teacher's command registry.
type VerbRegistry struct {
	matcher nameMatcher
	known   map[string]bool
}

func NewVerbRegistry() *VerbRegistry {
	r := &VerbRegistry{known: map[string]bool{}}
	for _, v := range defaultVerbs() {
		r.matcher.add(v.name, v.aliases...)
		r.known[v.name] = true
	}
	return r
}

func (r *VerbRegistry) Resolve(input string) MatchResult {
	return r.matcher.match(input)
}

// defaultVerbs is wtedit's verb table. Buffer subcommands
// ("buffer next"/"buffer.next") are exposed directly as top-level
// verbs (bnext/bprev/ls) rather than through dotted-subcommand
// routing, since the spec's command grammar treats them as ordinary
// verbs.
func defaultVerbs() []verbDef {
	return []verbDef{
		{name: "quit", aliases: []string{"q"}},
		{name: "write", aliases: []string{"w"}},
		{name: "wq", aliases: nil},
		{name: "edit", aliases: []string{"e"}},
		{name: "set", aliases: []string{"se"}},
		{name: "setlocal", aliases: []string{"setl"}},
		{name: "notify", aliases: nil},
		{name: "redraw", aliases: nil},
		{name: "bnext", aliases: []string{"bn"}},
		{name: "bprev", aliases: []string{"bp"}},
		{name: "ls", aliases: nil},
		{name: "nohighlight", aliases: []string{"noh"}},
		{name: "substitute", aliases: []string{"s"}},
		{name: "substitute_range", aliases: []string{"s%"}},
		{name: "undo", aliases: []string{"u"}},
		{name: "redo", aliases: []string{"red"}},
		{name: "checkpoint", aliases: nil},
		{name: "undotree", aliases: []string{"ut"}},
		{name: "explore", aliases: []string{"E", "file"}},
		{name: "terminal", aliases: []string{"term"}},
	}
}
