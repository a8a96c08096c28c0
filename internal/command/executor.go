package command

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ehrlich-b/wtedit/internal/config"
	"github.com/ehrlich-b/wtedit/internal/document"
)

// ResultKind is the outcome an executor hands back to the editor,
// which folds it into side effects. Executors never touch the
// filesystem directly: Write/WriteQuit express intent, and the editor
// schedules the corresponding job (spec §4.7/§4.5).
type ResultKind int

const (
	ResultFailure ResultKind = iota
	ResultSuccess
	ResultQuit
	ResultWrite
	ResultWriteAndQuit
	ResultEdit
	ResultBufferNext
	ResultBufferPrev
	ResultBufferList
	ResultUndo
	ResultUndoGoto
	ResultRedo
	ResultGoto
	ResultNoHighlight
	ResultRedraw
	ResultOpenComponent
	ResultSpawnJob
	ResultOpenTerminal
	ResultCheckpoint
)

// Result is what Execute returns: a kind plus whichever fields that
// kind uses.
type Result struct {
	Kind    ResultKind
	Message string
	Path    string
	Bangs   int
	Count   int
	Seq     int
	Cmd     string
}

// Execute runs a Parsed command against doc and settings, returning
// the effect the editor should apply. doc may be nil for commands
// that don't touch a document (quit, buffer navigation); settings is
// required for Set/SetLocal.
func Execute(p Parsed, doc *document.Document, settings *SettingsRegistry, merged *config.Settings) Result {
	switch p.Kind {
	case Unknown:
		return Result{Kind: ResultFailure, Message: fmt.Sprintf("unknown command: %s", p.Name)}
	case Ambiguous:
		sort.Strings(p.Matches)
		return Result{Kind: ResultFailure, Message: fmt.Sprintf("ambiguous command %q: %s", p.Prefix, strings.Join(p.Matches, ", "))}
	case Quit:
		return Result{Kind: ResultQuit, Bangs: p.Bangs}
	case Write:
		return Result{Kind: ResultWrite, Path: p.Path, Bangs: p.Bangs}
	case WriteQuit:
		return Result{Kind: ResultWriteAndQuit, Path: p.Path, Bangs: p.Bangs}
	case Edit:
		return Result{Kind: ResultEdit, Path: p.Path, Bangs: p.Bangs}
	case Set, SetLocal:
		return executeSet(p, settings, merged)
	case Notify:
		return Result{Kind: ResultSuccess, Message: p.Message}
	case Redraw:
		return Result{Kind: ResultRedraw}
	case BufferNext:
		return Result{Kind: ResultBufferNext}
	case BufferPrev:
		return Result{Kind: ResultBufferPrev}
	case BufferList:
		return Result{Kind: ResultBufferList}
	case NoHighlight:
		return Result{Kind: ResultNoHighlight}
	case Substitute:
		return executeSubstitute(p, doc)
	case Undo:
		return Result{Kind: ResultUndo}
	case UndoGoto:
		seq := 0
		if p.Seq != nil {
			seq = *p.Seq
		}
		return Result{Kind: ResultUndoGoto, Seq: seq}
	case Redo:
		count := 1
		if p.Count != nil {
			count = *p.Count
		}
		return Result{Kind: ResultRedo, Count: count}
	case Checkpoint:
		return Result{Kind: ResultCheckpoint}
	case UndoTree:
		return Result{Kind: ResultOpenComponent, Message: "undotree"}
	case Explore:
		return Result{Kind: ResultOpenComponent, Message: "explore", Path: p.Path}
	case Terminal:
		return Result{Kind: ResultOpenTerminal, Cmd: p.Cmd}
	default:
		return Result{Kind: ResultFailure, Message: "unhandled command"}
	}
}

func executeSet(p Parsed, settings *SettingsRegistry, merged *config.Settings) Result {
	if settings == nil || merged == nil {
		return Result{Kind: ResultFailure, Message: "no settings registry available"}
	}
	res := settings.Resolve(p.Option)
	var d SettingDescriptor
	switch res.Kind {
	case MatchExact, MatchPrefix:
		d, _ = settings.Lookup(res.Name)
	case MatchAmbiguous:
		return Result{Kind: ResultFailure, Message: fmt.Sprintf("ambiguous option %q: %s", res.Prefix, strings.Join(res.Matches, ", "))}
	default:
		return Result{Kind: ResultFailure, Message: fmt.Sprintf("unknown option: %s", p.Option)}
	}

	if err := settings.ParseAndApply(d, p.Value, merged); err != nil {
		return Result{Kind: ResultFailure, Message: err.Error()}
	}
	return Result{Kind: ResultSuccess, Message: fmt.Sprintf("%s=%s", d.Name, p.Value)}
}

// executeSubstitute runs the substitute command in a single pass:
// matches are collected first (on the target line or the whole
// buffer) and applied back-to-front so earlier replacements don't
// invalidate later offsets (spec §4.5). The replacement text is
// inserted literally: capture references such as `\1` or `&` are not
// expanded.
func executeSubstitute(p Parsed, doc *document.Document) Result {
	if doc == nil {
		return Result{Kind: ResultFailure, Message: "no active document"}
	}
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return Result{Kind: ResultFailure, Message: fmt.Sprintf("substitute: %v", err)}
	}

	start, end := substituteRange(doc, p.Range)
	text := doc.Buffer.Text(start, end)

	global := strings.Contains(p.Flags, "g")
	var locs [][]int
	if global {
		locs = re.FindAllStringIndex(text, -1)
	} else if loc := re.FindStringIndex(text); loc != nil {
		locs = [][]int{loc}
	}
	if len(locs) == 0 {
		return Result{Kind: ResultFailure, Message: "pattern not found"}
	}

	count := 0
	for i := len(locs) - 1; i >= 0; i-- {
		loc := locs[i]
		byteStart, byteEnd := loc[0], loc[1]
		charStart := start + len([]rune(text[:byteStart]))
		charEnd := start + len([]rune(text[:byteEnd]))
		doc.Buffer.Delete(charStart, charEnd)
		doc.Buffer.Insert(charStart, p.Replacement)
		count++
	}
	return Result{Kind: ResultSuccess, Message: fmt.Sprintf("%d substitution(s)", count)}
}

func substituteRange(doc *document.Document, rng string) (int, int) {
	if rng == "%" {
		return 0, doc.Buffer.Len()
	}
	line := doc.Buffer.LineAt(doc.Buffer.Cursor())
	return doc.Buffer.LineStart(line), doc.Buffer.LineEnd(line)
}
