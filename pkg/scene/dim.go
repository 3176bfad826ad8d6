package scene

// Dim is a one-axis value composed of a proportional part relative to the
// parent's extent and a fixed part in absolute units.
type Dim struct {
	Scale  float64
	Offset float64
}

// Fixed returns a Dim with only a fixed part.
func Fixed(offset float64) Dim {
	return Dim{Offset: offset}
}

// Relative returns a Dim with only a proportional part.
func Relative(scale float64) Dim {
	return Dim{Scale: scale}
}

// Resolve converts the Dim to an absolute value against the given extent.
func (d Dim) Resolve(extent float64) float64 {
	return d.Scale*extent + d.Offset
}

// Dim2 is a two-axis scale/offset pair, used for node sizes and positions.
type Dim2 struct {
	X Dim
	Y Dim
}

// FixedSize returns a Dim2 with fixed parts only, the common case for
// absolutely sized nodes.
func FixedSize(width, height float64) Dim2 {
	return Dim2{X: Fixed(width), Y: Fixed(height)}
}

// Resolve converts both axes to absolute values against the given extent.
func (d Dim2) Resolve(extent Vec2) Vec2 {
	return Vec2{X: d.X.Resolve(extent.X), Y: d.Y.Resolve(extent.Y)}
}

// Vec2 is a resolved absolute coordinate or extent pair.
type Vec2 struct {
	X float64
	Y float64
}
