package scene

import "testing"

func TestDimResolve(t *testing.T) {
	tests := []struct {
		name   string
		dim    Dim
		extent float64
		want   float64
	}{
		{
			name:   "fixed only",
			dim:    Fixed(40),
			extent: 300,
			want:   40,
		},
		{
			name:   "relative only",
			dim:    Relative(0.5),
			extent: 300,
			want:   150,
		},
		{
			name:   "mixed",
			dim:    Dim{Scale: 0.1, Offset: 10},
			extent: 300,
			want:   40,
		},
		{
			name:   "zero extent",
			dim:    Dim{Scale: 0.5, Offset: 7},
			extent: 0,
			want:   7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dim.Resolve(tt.extent); got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", tt.extent, got, tt.want)
			}
		})
	}
}

func TestDim2Resolve(t *testing.T) {
	d := Dim2{X: Dim{Scale: 0.5, Offset: 10}, Y: Fixed(20)}
	got := d.Resolve(Vec2{X: 100, Y: 50})
	want := Vec2{X: 60, Y: 20}
	if got != want {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestFixedSize(t *testing.T) {
	s := FixedSize(50, 20)
	if s.X.Scale != 0 || s.Y.Scale != 0 {
		t.Errorf("FixedSize scale parts = %v/%v, want 0/0", s.X.Scale, s.Y.Scale)
	}
	if s.X.Offset != 50 || s.Y.Offset != 20 {
		t.Errorf("FixedSize offsets = %v/%v, want 50/20", s.X.Offset, s.Y.Offset)
	}
}
