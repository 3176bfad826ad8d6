package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tesselkit/listflow/pkg/errors"
	"github.com/tesselkit/listflow/pkg/listlayout"
)

const sampleScene = `
[container]
name = "panel"
width = 300.0
height = 100.0

[layout]
direction = "horizontal"
horizontal-align = "center"
padding-offset = 10.0

[[children]]
name = "ok"
width = 50.0
height = 20.0
order = 1

[[children]]
name = "cancel"
width = 70.0
height = 20.0
order = 2
visible = false
`

func TestParseScene(t *testing.T) {
	root, cfg, err := parseScene([]byte(sampleScene))
	if err != nil {
		t.Fatalf("parseScene() error = %v", err)
	}

	if root.Name() != "panel" {
		t.Errorf("container name = %q, want panel", root.Name())
	}
	if ext := root.AbsoluteExtent(); ext.X != 300 || ext.Y != 100 {
		t.Errorf("container extent = %v, want 300x100", ext)
	}

	if cfg.Direction != listlayout.Horizontal {
		t.Errorf("direction = %v, want Horizontal", cfg.Direction)
	}
	if cfg.HorizontalAlign != listlayout.HorizontalCenter {
		t.Errorf("horizontal align = %v, want center", cfg.HorizontalAlign)
	}
	if cfg.Padding.Offset != 10 {
		t.Errorf("padding offset = %v, want 10", cfg.Padding.Offset)
	}
	// Omitted fields keep engine defaults.
	if cfg.SortOrder != listlayout.ByOrderIndex {
		t.Errorf("sort order = %v, want ByOrderIndex", cfg.SortOrder)
	}
	if cfg.VerticalAlign != listlayout.VerticalTop {
		t.Errorf("vertical align = %v, want top", cfg.VerticalAlign)
	}

	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("got %d children, want 2", len(kids))
	}
	if kids[0].Name() != "ok" || kids[0].OrderIndex() != 1 {
		t.Errorf("first child = %s/%d, want ok/1", kids[0].Name(), kids[0].OrderIndex())
	}
	if kids[1].Visible() {
		t.Error("cancel should be hidden")
	}
}

func TestParseSceneDefaults(t *testing.T) {
	root, cfg, err := parseScene([]byte("[container]\nwidth = 10.0\nheight = 10.0\n"))
	if err != nil {
		t.Fatalf("parseScene() error = %v", err)
	}

	if root.Name() != "container" {
		t.Errorf("unnamed container = %q, want container", root.Name())
	}
	if cfg != (listlayout.Config{}) {
		t.Errorf("config = %+v, want zero value", cfg)
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "invalid toml",
			input:    "[[container",
			wantCode: errors.ErrCodeInvalidScene,
		},
		{
			name:     "bad direction",
			input:    "[layout]\ndirection = \"diagonal\"\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "reserved child name",
			input:    "[[children]]\nname = \"listflow.marker.fake\"\n",
			wantCode: errors.ErrCodeInvalidName,
		},
		{
			name:     "empty child name",
			input:    "[[children]]\nwidth = 5.0\n",
			wantCode: errors.ErrCodeInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseScene([]byte(tt.input))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("parseScene() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestLoadSceneFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(sampleScene), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	root, _, err := loadSceneFile(path)
	if err != nil {
		t.Fatalf("loadSceneFile() error = %v", err)
	}
	if len(root.Children()) != 2 {
		t.Errorf("got %d children, want 2", len(root.Children()))
	}
}

func TestLoadSceneFileMissing(t *testing.T) {
	_, _, err := loadSceneFile(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("loadSceneFile() error = %v, want code %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadedSceneLaysOut(t *testing.T) {
	root, cfg, err := parseScene([]byte(sampleScene))
	if err != nil {
		t.Fatalf("parseScene() error = %v", err)
	}

	engine, err := listlayout.New(root, cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer engine.Destroy()

	// Only "ok" is visible: centered alone in the 300-wide panel.
	ok := root.Children()[0]
	if x := ok.Position().X.Offset; x != 125 {
		t.Errorf("ok.x = %v, want 125", x)
	}
}
