package command

import (
	"testing"

	"github.com/ehrlich-b/wtedit/internal/config"
)

func TestSettingsRegistryResolvePrefixAndAlias(t *testing.T) {
	r := NewSettingsRegistry()

	if res := r.Resolve("tabwidth"); res.Kind != MatchExact || res.Name != "tabwidth" {
		t.Fatalf("Resolve(tabwidth) = %+v", res)
	}
	if res := r.Resolve("tw"); res.Kind != MatchExact || res.Name != "tabwidth" {
		t.Fatalf("Resolve(tw) = %+v", res)
	}
	if res := r.Resolve("tab"); res.Kind != MatchPrefix || res.Name != "tabwidth" {
		t.Fatalf("Resolve(tab) = %+v", res)
	}
}

func TestSettingsRegistryIntRangeValidation(t *testing.T) {
	r := NewSettingsRegistry()
	d, ok := r.Lookup("tabwidth")
	if !ok {
		t.Fatal("tabwidth descriptor not found")
	}
	merged := config.Defaults()
	if err := r.ParseAndApply(d, "0", &merged); err == nil {
		t.Fatal("tabwidth=0 should fail Min validation")
	}
	if err := r.ParseAndApply(d, "2", &merged); err != nil {
		t.Fatalf("tabwidth=2 should succeed: %v", err)
	}
	if merged.TabWidth != 2 {
		t.Fatalf("TabWidth = %d, want 2", merged.TabWidth)
	}
}

func TestSettingsRegistryEnumValidation(t *testing.T) {
	r := NewSettingsRegistry()
	d, ok := r.Lookup("theme")
	if !ok {
		t.Fatal("theme descriptor not found")
	}
	merged := config.Defaults()
	if err := r.ParseAndApply(d, "nonexistent", &merged); err == nil {
		t.Fatal("unknown theme value should fail")
	}
	if err := r.ParseAndApply(d, "solarized", &merged); err != nil {
		t.Fatalf("valid theme should succeed: %v", err)
	}
}
