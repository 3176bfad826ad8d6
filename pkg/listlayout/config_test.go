package listlayout

import (
	"testing"

	"github.com/tesselkit/listflow/pkg/errors"
)

func TestConfigZeroValueDefaults(t *testing.T) {
	var cfg Config

	if cfg.Direction != Vertical {
		t.Errorf("default Direction = %v, want Vertical", cfg.Direction)
	}
	if cfg.SortOrder != ByOrderIndex {
		t.Errorf("default SortOrder = %v, want ByOrderIndex", cfg.SortOrder)
	}
	if cfg.HorizontalAlign != HorizontalLeft {
		t.Errorf("default HorizontalAlign = %v, want HorizontalLeft", cfg.HorizontalAlign)
	}
	if cfg.VerticalAlign != VerticalTop {
		t.Errorf("default VerticalAlign = %v, want VerticalTop", cfg.VerticalAlign)
	}
	if cfg.Padding.Scale != 0 || cfg.Padding.Offset != 0 {
		t.Errorf("default Padding = %v, want zero", cfg.Padding)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on zero value = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "zero value", cfg: Config{}, wantErr: false},
		{
			name: "all fields set",
			cfg: Config{
				Direction:       Horizontal,
				SortOrder:       ByName,
				HorizontalAlign: HorizontalCenter,
				VerticalAlign:   VerticalBottom,
			},
			wantErr: false,
		},
		{name: "bad direction", cfg: Config{Direction: Direction(7)}, wantErr: true},
		{name: "bad sort order", cfg: Config{SortOrder: SortOrder(-1)}, wantErr: true},
		{name: "bad horizontal align", cfg: Config{HorizontalAlign: HorizontalAlign(3)}, wantErr: true},
		{name: "bad vertical align", cfg: Config{VerticalAlign: VerticalAlign(3)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestEnumParsing(t *testing.T) {
	t.Run("direction round trip", func(t *testing.T) {
		for _, d := range []Direction{Vertical, Horizontal} {
			got, err := ParseDirection(d.String())
			if err != nil || got != d {
				t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
			}
		}
		if _, err := ParseDirection("diagonal"); err == nil {
			t.Error("ParseDirection(diagonal) succeeded, want error")
		}
	})

	t.Run("sort order round trip", func(t *testing.T) {
		for _, s := range []SortOrder{ByOrderIndex, ByName} {
			got, err := ParseSortOrder(s.String())
			if err != nil || got != s {
				t.Errorf("ParseSortOrder(%q) = %v, %v", s.String(), got, err)
			}
		}
		if _, err := ParseSortOrder("random"); err == nil {
			t.Error("ParseSortOrder(random) succeeded, want error")
		}
	})

	t.Run("horizontal align round trip", func(t *testing.T) {
		for _, a := range []HorizontalAlign{HorizontalLeft, HorizontalRight, HorizontalCenter} {
			got, err := ParseHorizontalAlign(a.String())
			if err != nil || got != a {
				t.Errorf("ParseHorizontalAlign(%q) = %v, %v", a.String(), got, err)
			}
		}
		if _, err := ParseHorizontalAlign("middle"); err == nil {
			t.Error("ParseHorizontalAlign(middle) succeeded, want error")
		}
	})

	t.Run("vertical align round trip", func(t *testing.T) {
		for _, a := range []VerticalAlign{VerticalTop, VerticalBottom, VerticalCenter} {
			got, err := ParseVerticalAlign(a.String())
			if err != nil || got != a {
				t.Errorf("ParseVerticalAlign(%q) = %v, %v", a.String(), got, err)
			}
		}
		if _, err := ParseVerticalAlign("middle"); err == nil {
			t.Error("ParseVerticalAlign(middle) succeeded, want error")
		}
	})
}
