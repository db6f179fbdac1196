package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_DisabledIsNoop(t *testing.T) {
	Close()
	if Enabled() {
		t.Fatal("Enabled() = true after Close, want false")
	}
	// Must not panic or create files.
	Log("nothing", "n", 1)
}

func TestLog_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "flex.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	if !Enabled() {
		t.Fatal("Enabled() = false after Init, want true")
	}
	Log("compute", "pass", 3, "solved", 7)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	for _, want := range []string{"level=DEBUG", "msg=compute", "pass=3", "solved=7"} {
		if !strings.Contains(got, want) {
			t.Errorf("log contents = %q, want %q", got, want)
		}
	}
}

func TestInit_ReplacesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	t.Cleanup(func() { Close() })

	if err := Init(first); err != nil {
		t.Fatalf("Init(first) error = %v", err)
	}
	if err := Init(second); err != nil {
		t.Fatalf("Init(second) error = %v", err)
	}
	Log("after switch")
	Close()

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("ReadFile(first) error = %v", err)
	}
	if strings.Contains(string(data), "after switch") {
		t.Error("record written to the replaced file")
	}
	data, err = os.ReadFile(second)
	if err != nil {
		t.Fatalf("ReadFile(second) error = %v", err)
	}
	if !strings.Contains(string(data), "after switch") {
		t.Error("record missing from the active file")
	}
}

func TestInit_BadPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	// A regular file cannot be a parent directory.
	if err := Init(filepath.Join(file, "x.log")); err == nil {
		Close()
		t.Error("Init() under a regular file succeeded, want error")
	}
}
