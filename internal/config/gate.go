package config

import "github.com/Masterminds/semver/v3"

// featureIntroducedIn records the language version each gated feature was
// introduced at. A project's language_version constraint must admit that
// version for the parser to accept the corresponding syntax.
var featureIntroducedIn = map[string]string{
	"generics":         "0.2.0",
	"throws":           "0.2.0",
	"inline_asm":       "0.3.0",
	"compile_time_ops": "0.3.0",
}

// Gate resolves a project's language_version constraint once and answers
// FeatureAllowed for the parser's feature-gate checks.
type Gate struct {
	constraint *semver.Constraints
	toggles    FeatureToggles
}

// NewGate parses cfg's language_version constraint string.
func NewGate(cfg *Config) (*Gate, error) {
	c, err := semver.NewConstraint(cfg.Project.LanguageVersion)
	if err != nil {
		return nil, err
	}

	return &Gate{constraint: c, toggles: cfg.Project.Features}, nil
}

// FeatureAllowed reports whether name is both toggled on and introduced at
// a version the active constraint admits. An unrecognised feature name is
// always allowed — the gate only restricts features it knows about.
func (g *Gate) FeatureAllowed(name string) bool {
	introducedAt, known := featureIntroducedIn[name]
	if !known {
		return true
	}

	v, err := semver.NewVersion(introducedAt)
	if err != nil || !g.constraint.Check(v) {
		return false
	}

	switch name {
	case "generics":
		return g.toggles.Generics
	case "throws":
		return g.toggles.Throws
	case "inline_asm":
		return g.toggles.InlineAsm
	case "compile_time_ops":
		return g.toggles.CompileTimeOps
	default:
		return true
	}
}
