package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tesselkit/listflow/pkg/errors"
	"github.com/tesselkit/listflow/pkg/listlayout"
	"github.com/tesselkit/listflow/pkg/scene"
)

// =============================================================================
// Scene File Format
// =============================================================================

// sceneFile is the TOML schema for the compute command:
//
//	[container]
//	name = "panel"
//	width = 300.0
//	height = 100.0
//
//	[layout]
//	direction = "horizontal"        # horizontal | vertical (default vertical)
//	sort = "order-index"            # order-index | name
//	horizontal-align = "center"     # left | right | center
//	vertical-align = "top"          # top | bottom | center
//	padding-offset = 10.0
//	padding-scale = 0.0
//
//	[[children]]
//	name = "ok"
//	width = 50.0
//	height = 20.0
//	order = 1
//	visible = true                  # default true
//	width-scale = 0.0               # optional proportional size parts
//	height-scale = 0.0
type sceneFile struct {
	Container containerSection `toml:"container"`
	Layout    layoutSection    `toml:"layout"`
	Children  []childSection   `toml:"children"`
}

type containerSection struct {
	Name   string  `toml:"name"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type layoutSection struct {
	Direction       string  `toml:"direction"`
	Sort            string  `toml:"sort"`
	HorizontalAlign string  `toml:"horizontal-align"`
	VerticalAlign   string  `toml:"vertical-align"`
	PaddingOffset   float64 `toml:"padding-offset"`
	PaddingScale    float64 `toml:"padding-scale"`
}

type childSection struct {
	Name        string  `toml:"name"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	WidthScale  float64 `toml:"width-scale"`
	HeightScale float64 `toml:"height-scale"`
	Order       int     `toml:"order"`
	Visible     *bool   `toml:"visible"`
}

// loadSceneFile reads a TOML scene file and materializes it as a scene
// tree plus a layout configuration.
func loadSceneFile(path string) (*scene.Node, listlayout.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, listlayout.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s not found", path)
		}
		return nil, listlayout.Config{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "read scene file %s", path)
	}
	return parseScene(data)
}

// parseScene decodes TOML bytes into a scene tree and configuration.
func parseScene(data []byte) (*scene.Node, listlayout.Config, error) {
	var sf sceneFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, listlayout.Config{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "parse scene file")
	}

	cfg, err := sf.Layout.config()
	if err != nil {
		return nil, listlayout.Config{}, err
	}

	name := sf.Container.Name
	if name == "" {
		name = "container"
	}
	if err := errors.ValidateNodeName(name); err != nil {
		return nil, listlayout.Config{}, err
	}
	root := scene.New(name)
	root.SetSize(scene.FixedSize(sf.Container.Width, sf.Container.Height))

	for _, cs := range sf.Children {
		if err := errors.ValidateNodeName(cs.Name); err != nil {
			return nil, listlayout.Config{}, err
		}
		child := scene.New(cs.Name)
		child.SetSize(scene.Dim2{
			X: scene.Dim{Scale: cs.WidthScale, Offset: cs.Width},
			Y: scene.Dim{Scale: cs.HeightScale, Offset: cs.Height},
		})
		child.SetOrderIndex(cs.Order)
		if cs.Visible != nil {
			child.SetVisible(*cs.Visible)
		}
		if err := child.SetParent(root); err != nil {
			return nil, listlayout.Config{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "attach child %s", cs.Name)
		}
	}

	return root, cfg, nil
}

// config converts the TOML layout section to a listlayout.Config,
// applying the engine defaults for omitted fields.
func (s layoutSection) config() (listlayout.Config, error) {
	cfg := listlayout.Config{
		Padding: scene.Dim{Scale: s.PaddingScale, Offset: s.PaddingOffset},
	}

	var err error
	if s.Direction != "" {
		if cfg.Direction, err = listlayout.ParseDirection(s.Direction); err != nil {
			return cfg, err
		}
	}
	if s.Sort != "" {
		if cfg.SortOrder, err = listlayout.ParseSortOrder(s.Sort); err != nil {
			return cfg, err
		}
	}
	if s.HorizontalAlign != "" {
		if cfg.HorizontalAlign, err = listlayout.ParseHorizontalAlign(s.HorizontalAlign); err != nil {
			return cfg, err
		}
	}
	if s.VerticalAlign != "" {
		if cfg.VerticalAlign, err = listlayout.ParseVerticalAlign(s.VerticalAlign); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
