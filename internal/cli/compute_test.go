package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestComputeCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(sampleScene), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, err := runCommand(t, "compute", path)
	if err != nil {
		t.Fatalf("compute error = %v", err)
	}

	for _, want := range []string{"ok", "cancel", "content size"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestComputeCommandDebugMarkers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(sampleScene), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, err := runCommand(t, "compute", "--debug", path)
	if err != nil {
		t.Fatalf("compute --debug error = %v", err)
	}

	if !strings.Contains(out, "marker") {
		t.Errorf("debug output missing marker rows:\n%s", out)
	}
}

func TestComputeCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "compute", filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("compute with missing file succeeded, want error")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"compute": false, "demo": false, "completion": false}
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
