package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func withWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	originalWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	defer func() {
		_ = os.Chdir(originalWD)
	}()
	fn()
}

func newFormatCmdForTest() *cobra.Command {
	cmd := &cobra.Command{Use: "format"}
	addRunFlags(cmd)
	return cmd
}

func newCheckCmdForTest() *cobra.Command {
	cmd := &cobra.Command{Use: "check"}
	addRunFlags(cmd)
	cmd.Flags().Bool("no-diff", false, "")
	_ = cmd.Flags().Set("no-diff", "true")
	return cmd
}

func TestFormatCommandFormatsTree(t *testing.T) {
	root := t.TempDir()
	appPath := filepath.Join(root, "App.java")
	mustWriteFile(t, appPath, "class App {\nvoid run() {\n}\n}\n")

	withWorkingDir(t, root, func() {
		if err := RunFormat(newFormatCmdForTest(), nil); err != nil {
			t.Fatalf("RunFormat failed: %v", err)
		}
	})

	out, err := os.ReadFile(appPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(out), "    void run() {") {
		t.Fatalf("body not reindented:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(root, ".refmt", "refmt-cache.properties")); err != nil {
		t.Fatalf("cache store not written: %v", err)
	}

	// A second run converges.
	withWorkingDir(t, root, func() {
		if err := RunFormat(newFormatCmdForTest(), nil); err != nil {
			t.Fatalf("second RunFormat failed: %v", err)
		}
	})
	again, err := os.ReadFile(appPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(again) != string(out) {
		t.Fatalf("second run modified an already formatted file")
	}
}

func TestCheckCommandReportsPendingChanges(t *testing.T) {
	root := t.TempDir()
	src := "class App {\nvoid run() {\n}\n}\n"
	appPath := filepath.Join(root, "App.java")
	mustWriteFile(t, appPath, src)

	withWorkingDir(t, root, func() {
		err := RunCheck(newCheckCmdForTest(), nil)
		if err == nil {
			t.Fatalf("expected check to fail on unformatted tree")
		}
		if !strings.Contains(err.Error(), "would be reformatted") {
			t.Fatalf("unexpected check error: %v", err)
		}
	})

	out, err := os.ReadFile(appPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(out) != src {
		t.Fatalf("check modified the file")
	}

	withWorkingDir(t, root, func() {
		if err := RunFormat(newFormatCmdForTest(), nil); err != nil {
			t.Fatalf("RunFormat failed: %v", err)
		}
		if err := RunCheck(newCheckCmdForTest(), nil); err != nil {
			t.Fatalf("check after format should pass: %v", err)
		}
	})
}

func TestFormatHonorsExcludeFlag(t *testing.T) {
	root := t.TempDir()
	genSrc := "class Gen {\nint x;\n}\n"
	mustWriteFile(t, filepath.Join(root, "src", "App.java"), "class App {\nint x;\n}\n")
	mustWriteFile(t, filepath.Join(root, "gen", "Gen.java"), genSrc)

	withWorkingDir(t, root, func() {
		cmd := newFormatCmdForTest()
		if err := cmd.Flags().Set("exclude", "gen/"); err != nil {
			t.Fatalf("set exclude flag: %v", err)
		}
		if err := RunFormat(cmd, nil); err != nil {
			t.Fatalf("RunFormat failed: %v", err)
		}
	})

	formatted, err := os.ReadFile(filepath.Join(root, "src", "App.java"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(formatted), "    int x;") {
		t.Fatalf("included file not formatted:\n%s", formatted)
	}
	excluded, err := os.ReadFile(filepath.Join(root, "gen", "Gen.java"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(excluded) != genSrc {
		t.Fatalf("excluded file was formatted")
	}
}

func TestFormatFailsOnBadLineEndingFlag(t *testing.T) {
	root := t.TempDir()
	withWorkingDir(t, root, func() {
		cmd := newFormatCmdForTest()
		if err := cmd.Flags().Set("line-ending", "UNIXISH"); err != nil {
			t.Fatalf("set line-ending flag: %v", err)
		}
		if err := RunFormat(cmd, nil); err == nil {
			t.Fatalf("expected error for unknown line ending")
		}
	})
}

func TestNewRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand("test")
	want := map[string]bool{"format": false, "check": false, "version": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
