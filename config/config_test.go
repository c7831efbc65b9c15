package config_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/heurisearch/config"
)

const sample = `
profiles:
  korf-quick:
    algorithm: aees
    flags:
      wt0: 1.5
      dropdups: true
      label: quick
`

func TestLoad_ParsesProfile(t *testing.T) {
	f, err := config.Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	p, ok := f.Profile("korf-quick")
	if !ok {
		t.Fatal("expected profile \"korf-quick\" to be present")
	}
	if p.Algorithm != "aees" {
		t.Fatalf("Algorithm = %q, want aees", p.Algorithm)
	}
	if got := p.FloatFlag("wt0", 1); got != 1.5 {
		t.Fatalf("FloatFlag(wt0) = %v, want 1.5", got)
	}
	if !p.BoolFlag("dropdups", false) {
		t.Fatal("BoolFlag(dropdups) = false, want true")
	}
	if got := p.StringFlag("label", ""); got != "quick" {
		t.Fatalf("StringFlag(label) = %q, want quick", got)
	}
}

func TestProfile_MissingNameNotFound(t *testing.T) {
	f, err := config.Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, ok := f.Profile("does-not-exist"); ok {
		t.Fatal("expected a missing profile name to report false")
	}
}

func TestFlagAccessors_FallBackToDefault(t *testing.T) {
	p := config.Profile{Flags: map[string]any{}}
	if got := p.FloatFlag("missing", 42); got != 42 {
		t.Fatalf("FloatFlag default = %v, want 42", got)
	}
	if got := p.StringFlag("missing", "def"); got != "def" {
		t.Fatalf("StringFlag default = %q, want def", got)
	}
	if got := p.BoolFlag("missing", true); got != true {
		t.Fatalf("BoolFlag default = %v, want true", got)
	}
}
