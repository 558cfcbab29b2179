package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigEnablesEveryFeature(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Project.Module != "main" {
		t.Fatalf("Module = %q, want %q", cfg.Project.Module, "main")
	}

	if !cfg.Project.Features.Generics || !cfg.Project.Features.Throws ||
		!cfg.Project.Features.InlineAsm || !cfg.Project.Features.CompileTimeOps {
		t.Fatalf("DefaultConfig left a feature disabled: %+v", cfg.Project.Features)
	}
}

func TestFindConfigFileWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")

	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	tomlPath := filepath.Join(root, "tspp.toml")
	if err := os.WriteFile(tomlPath, []byte("[project]\nmodule = \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := FindConfigFile(nested); got != tomlPath {
		t.Fatalf("FindConfigFile = %q, want %q", got, tomlPath)
	}
}

func TestFindConfigFileReturnsEmptyWhenNoneExists(t *testing.T) {
	if got := FindConfigFile(t.TempDir()); got != "" {
		t.Fatalf("FindConfigFile = %q, want empty", got)
	}
}

func TestLoadFillsDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tspp.toml")

	src := "[project]\nmodule = \"widgets\"\n\n[project.features]\ngenerics = false\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Project.Module != "widgets" {
		t.Fatalf("Module = %q, want %q", cfg.Project.Module, "widgets")
	}

	if cfg.Project.LanguageVersion != DefaultConfig().Project.LanguageVersion {
		t.Fatalf("LanguageVersion = %q, want the default", cfg.Project.LanguageVersion)
	}

	if cfg.Project.Features.Generics {
		t.Fatalf("Features.Generics = true, want false (explicitly disabled in the file)")
	}
}

func TestFindAndLoadFallsBackToDefaultConfig(t *testing.T) {
	cfg, path, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}

	if path != "" {
		t.Fatalf("path = %q, want empty", path)
	}

	if cfg.Project.Module != DefaultConfig().Project.Module {
		t.Fatalf("Module = %q, want the default", cfg.Project.Module)
	}
}
