// Package config loads a project's tspp.toml — module name, target
// language-version constraint, and lexer/parser feature toggles — the way
// tangzhangming/tugo's internal/config package loads its own tugo.toml: a
// BurntSushi/toml decode with FindConfigFile walking up from a start
// directory, and a DefaultConfig fallback when none is found.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root of a decoded tspp.toml.
type Config struct {
	Project ProjectConfig `toml:"project"`
}

// ProjectConfig holds the module identity plus the version/feature gating
// consumed by NewGate.
type ProjectConfig struct {
	Module          string         `toml:"module"`
	LanguageVersion string         `toml:"language_version"`
	Features        FeatureToggles `toml:"features"`
}

// FeatureToggles lets a project opt out of a syntax family even within a
// language_version range that would otherwise allow it.
type FeatureToggles struct {
	Generics       bool `toml:"generics"`
	Throws         bool `toml:"throws"`
	InlineAsm      bool `toml:"inline_asm"`
	CompileTimeOps bool `toml:"compile_time_ops"`
}

// DefaultConfig is used when no tspp.toml is found, with every feature on
// and a language_version constraint wide enough to accept all of them.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Module:          "main",
			LanguageVersion: ">= 0.1.0",
			Features: FeatureToggles{
				Generics:       true,
				Throws:         true,
				InlineAsm:      true,
				CompileTimeOps: true,
			},
		},
	}
}

// FindConfigFile walks up from startDir looking for tspp.toml, returning ""
// if it reaches the filesystem root without finding one.
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		candidate := filepath.Join(dir, "tspp.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}

// Load decodes the tspp.toml at path, filling in DefaultConfig's module
// name and language_version when the file leaves them empty. Feature
// toggles are taken as decoded, so a toggle the file omits is false.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	def := DefaultConfig()

	if cfg.Project.Module == "" {
		cfg.Project.Module = def.Project.Module
	}

	if cfg.Project.LanguageVersion == "" {
		cfg.Project.LanguageVersion = def.Project.LanguageVersion
	}

	return &cfg, nil
}

// FindAndLoad finds and decodes the nearest tspp.toml above startDir,
// falling back to DefaultConfig with an empty path when none exists.
func FindAndLoad(startDir string) (*Config, string, error) {
	path := FindConfigFile(startDir)
	if path == "" {
		return DefaultConfig(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}
