package config

import "testing"

func TestGateAllowsFeatureInsideConstraint(t *testing.T) {
	gate, err := NewGate(DefaultConfig())
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	for _, name := range []string{"generics", "throws", "inline_asm", "compile_time_ops"} {
		if !gate.FeatureAllowed(name) {
			t.Fatalf("default config should allow %q", name)
		}
	}
}

func TestGateRejectsFeatureOutsideConstraint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Project.LanguageVersion = "~0.1.0" // predates every gated feature

	gate, err := NewGate(cfg)
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	if gate.FeatureAllowed("generics") {
		t.Fatal("~0.1.0 should not admit generics (introduced in 0.2.0)")
	}
}

func TestGateHonoursExplicitToggle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Project.Features.Throws = false

	gate, err := NewGate(cfg)
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	if gate.FeatureAllowed("throws") {
		t.Fatal("explicitly disabled feature should be rejected")
	}

	if !gate.FeatureAllowed("generics") {
		t.Fatal("other features should be unaffected")
	}
}

func TestGateIgnoresUnknownFeatureNames(t *testing.T) {
	gate, err := NewGate(DefaultConfig())
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	if !gate.FeatureAllowed("hypothetical") {
		t.Fatal("unknown feature names must pass through unrestricted")
	}
}

func TestNewGateRejectsMalformedConstraint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Project.LanguageVersion = "not a version"

	if _, err := NewGate(cfg); err == nil {
		t.Fatal("expected an error for a malformed constraint")
	}
}
