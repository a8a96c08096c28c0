package command

import (
	"fmt"
	"strconv"

	"github.com/ehrlich-b/wtedit/internal/config"
)

// SettingType describes the shape a setting's value must take, used
// both to parse the raw string from `:set` and to validate it.
type SettingType int

const (
	TypeBool SettingType = iota
	TypeInt
	TypeEnum
)

// SettingValue is a parsed, typed `:set` argument.
type SettingValue struct {
	Kind SettingType
	Bool bool
	Int  int
	Str  string
}

// SettingDescriptor binds a canonical option name and its aliases to
// a parser/validator and an apply function that mutates the editor's
// merged settings in place.
type SettingDescriptor struct {
	Name    string
	Aliases []string
	Type    SettingType
	Min     int // inclusive lower bound, for TypeInt
	Max     int // inclusive upper bound, 0 means unbounded
	Enum    []string
	Apply   func(*config.Settings, SettingValue) error
}

// SettingsRegistry resolves `:set` option names (with prefix
// matching, exactly like the verb registry) and applies typed,
// validated values to a config.Settings.
type SettingsRegistry struct {
	descriptors map[string]SettingDescriptor
	matcher     nameMatcher
}

func NewSettingsRegistry() *SettingsRegistry {
	r := &SettingsRegistry{descriptors: map[string]SettingDescriptor{}}
	for _, d := range defaultSettingDescriptors() {
		r.register(d)
	}
	return r
}

func (r *SettingsRegistry) register(d SettingDescriptor) {
	r.descriptors[d.Name] = d
	r.matcher.add(d.Name, d.Aliases...)
}

// Resolve applies the usual Exact/Prefix/Ambiguous/Unknown resolution
// to an option name.
func (r *SettingsRegistry) Resolve(name string) MatchResult {
	return r.matcher.match(name)
}

// Lookup returns the descriptor for a canonical option name.
func (r *SettingsRegistry) Lookup(canonical string) (SettingDescriptor, bool) {
	d, ok := r.descriptors[canonical]
	return d, ok
}

// ParseAndApply parses raw (the string the parser extracted, e.g.
// "true", "false", "4", "solarized") according to descriptor's type
// and applies it to target.
func (r *SettingsRegistry) ParseAndApply(d SettingDescriptor, raw string, target *config.Settings) error {
	val, err := parseValue(raw, d)
	if err != nil {
		return err
	}
	return d.Apply(target, val)
}

func parseValue(raw string, d SettingDescriptor) (SettingValue, error) {
	switch d.Type {
	case TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return SettingValue{}, fmt.Errorf("option %q expects a boolean, got %q", d.Name, raw)
		}
		return SettingValue{Kind: TypeBool, Bool: b}, nil
	case TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return SettingValue{}, fmt.Errorf("option %q expects an integer, got %q", d.Name, raw)
		}
		if n < d.Min || (d.Max != 0 && n > d.Max) {
			return SettingValue{}, fmt.Errorf("option %q value %d out of range", d.Name, n)
		}
		return SettingValue{Kind: TypeInt, Int: n}, nil
	case TypeEnum:
		for _, v := range d.Enum {
			if v == raw {
				return SettingValue{Kind: TypeEnum, Str: raw}, nil
			}
		}
		return SettingValue{}, fmt.Errorf("option %q has no value %q (want one of %v)", d.Name, raw, d.Enum)
	default:
		return SettingValue{}, fmt.Errorf("option %q: unsupported type", d.Name)
	}
}

// defaultSettingDescriptors is wtedit's option namespace, grounded on
// the teacher source's UserSettings fields it can reach.
func defaultSettingDescriptors() []SettingDescriptor {
	return []SettingDescriptor{
		{
			Name: "expandtabs", Aliases: []string{"et"}, Type: TypeBool,
			Apply: func(s *config.Settings, v SettingValue) error { s.ExpandTabs = v.Bool; return nil },
		},
		{
			Name: "tabwidth", Aliases: []string{"tw"}, Type: TypeInt, Min: 1,
			Apply: func(s *config.Settings, v SettingValue) error { s.TabWidth = v.Int; return nil },
		},
		{
			Name: "number", Aliases: []string{"nu"}, Type: TypeBool,
			Apply: func(s *config.Settings, v SettingValue) error { s.ShowLineNumbers = v.Bool; return nil },
		},
		{
			Name: "smartcase", Aliases: []string{"scs"}, Type: TypeBool,
			Apply: func(s *config.Settings, v SettingValue) error { s.SearchSmartcase = v.Bool; return nil },
		},
		{
			Name: "lineending", Aliases: []string{"le"}, Type: TypeEnum, Enum: []string{"lf", "crlf"},
			Apply: func(s *config.Settings, v SettingValue) error { s.LineEnding = v.Str; return nil },
		},
		{
			Name: "theme", Aliases: nil, Type: TypeEnum, Enum: []string{"default", "solarized", "monokai"},
			Apply: func(s *config.Settings, v SettingValue) error { s.Theme = v.Str; return nil },
		},
	}
}
