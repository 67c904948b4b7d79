package javascript

import (
	"errors"
	"testing"

	"github.com/refmt-dev/refmt/internal/config"
	"github.com/refmt-dev/refmt/internal/encoding"
	"github.com/refmt-dev/refmt/internal/formatter"
	"github.com/refmt-dev/refmt/internal/lineending"
)

func newInitialized(t *testing.T) *Formatter {
	t.Helper()
	f := New()
	cfg := &config.Config{Encoding: encoding.Default(), LineEnding: lineending.LF}
	if err := f.Init(map[string]string{config.KeyIndentSize: "2"}, cfg); err != nil {
		t.Fatalf("init: %v", err)
	}
	return f
}

func TestFormatReindents(t *testing.T) {
	f := newInitialized(t)

	input := "function hello(name) {\nif (name) {\nconsole.log(name);\n}\n}\n"
	want := "function hello(name) {\n" +
		"  if (name) {\n" +
		"    console.log(name);\n" +
		"  }\n" +
		"}\n"

	out, changed, err := f.Format(input, lineending.LF)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if !changed || out != want {
		t.Fatalf("unexpected output (changed=%v):\n%s", changed, out)
	}
}

func TestFormatReportsNoChangeForCanonicalInput(t *testing.T) {
	f := newInitialized(t)

	input := "const x = 1;\n"
	out, changed, err := f.Format(input, lineending.LF)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if changed || out != "" {
		t.Fatalf("expected no change, got changed=%v out=%q", changed, out)
	}
}

func TestFormatFailsOnMalformedSource(t *testing.T) {
	f := newInitialized(t)

	_, _, err := f.Format("function ( { ) }\n", lineending.LF)
	if err == nil {
		t.Fatal("expected format error")
	}
	if !errors.Is(err, formatter.ErrCannotFormat) {
		t.Fatalf("expected cannot-format error, got %v", err)
	}
}

func TestUninitializedFormatterRefusesWork(t *testing.T) {
	f := New()
	if err := f.Init(nil, &config.Config{}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if f.Initialized() {
		t.Fatal("expected uninitialized formatter")
	}
	if _, _, err := f.Format("const x = 1;\n", lineending.LF); err == nil {
		t.Fatal("expected error from uninitialized formatter")
	}
}
