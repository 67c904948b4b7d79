package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptionsEmptyPathYieldsEmptyMap(t *testing.T) {
	options, err := LoadOptions("")
	if err != nil {
		t.Fatalf("load empty path: %v", err)
	}
	if options == nil || len(options) != 0 {
		t.Fatalf("expected empty map, got %v", options)
	}
}

func TestLoadOptionsMissingFileYieldsNil(t *testing.T) {
	options, err := LoadOptions(filepath.Join(t.TempDir(), "absent.properties"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if options != nil {
		t.Fatalf("expected nil map for missing file, got %v", options)
	}
}

func TestLoadOptionsParsesKeyValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "java.properties")
	content := "indent.size=2\nindent.char=space\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	options, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if options[KeyIndentSize] != "2" || options[KeyIndentChar] != "space" {
		t.Fatalf("unexpected options: %v", options)
	}
}

func TestCompilerOptions(t *testing.T) {
	cfg := &Config{CompilerSource: "17", CompilerCompliance: "17", CompilerTarget: "21"}
	options := cfg.CompilerOptions()
	if options[KeyCompilerSource] != "17" || options[KeyCompilerTarget] != "21" {
		t.Fatalf("unexpected compiler options: %v", options)
	}
}
