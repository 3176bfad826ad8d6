package listlayout

import (
	"github.com/tesselkit/listflow/pkg/errors"
	"github.com/tesselkit/listflow/pkg/scene"
)

// =============================================================================
// Enums
// =============================================================================

// Direction selects the fill axis children are laid out along.
type Direction int

const (
	// Vertical lays children out top to bottom (the default).
	Vertical Direction = iota
	// Horizontal lays children out left to right.
	Horizontal
)

// String returns the canonical name used in scene files and logs.
func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// ParseDirection converts a scene-file string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return Vertical, errors.New(errors.ErrCodeInvalidConfig, "unknown direction %q (want vertical or horizontal)", s)
	}
}

// SortOrder selects the key children are ordered by along the fill axis.
type SortOrder int

const (
	// ByOrderIndex sorts by each child's explicit order index (the default).
	ByOrderIndex SortOrder = iota
	// ByName sorts lexicographically by child name.
	ByName
)

// String returns the canonical name used in scene files and logs.
func (s SortOrder) String() string {
	switch s {
	case ByOrderIndex:
		return "order-index"
	case ByName:
		return "name"
	default:
		return "unknown"
	}
}

// ParseSortOrder converts a scene-file string to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "order-index":
		return ByOrderIndex, nil
	case "name":
		return ByName, nil
	default:
		return ByOrderIndex, errors.New(errors.ErrCodeInvalidConfig, "unknown sort order %q (want order-index or name)", s)
	}
}

// HorizontalAlign positions content along the horizontal axis.
type HorizontalAlign int

const (
	HorizontalLeft HorizontalAlign = iota
	HorizontalRight
	HorizontalCenter
)

// String returns the canonical name used in scene files and logs.
func (a HorizontalAlign) String() string {
	switch a {
	case HorizontalLeft:
		return "left"
	case HorizontalRight:
		return "right"
	case HorizontalCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseHorizontalAlign converts a scene-file string to a HorizontalAlign.
func ParseHorizontalAlign(s string) (HorizontalAlign, error) {
	switch s {
	case "left":
		return HorizontalLeft, nil
	case "right":
		return HorizontalRight, nil
	case "center":
		return HorizontalCenter, nil
	default:
		return HorizontalLeft, errors.New(errors.ErrCodeInvalidConfig, "unknown horizontal alignment %q (want left, right, or center)", s)
	}
}

// VerticalAlign positions content along the vertical axis.
type VerticalAlign int

const (
	VerticalTop VerticalAlign = iota
	VerticalBottom
	VerticalCenter
)

// String returns the canonical name used in scene files and logs.
func (a VerticalAlign) String() string {
	switch a {
	case VerticalTop:
		return "top"
	case VerticalBottom:
		return "bottom"
	case VerticalCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseVerticalAlign converts a scene-file string to a VerticalAlign.
func ParseVerticalAlign(s string) (VerticalAlign, error) {
	switch s {
	case "top":
		return VerticalTop, nil
	case "bottom":
		return VerticalBottom, nil
	case "center":
		return VerticalCenter, nil
	default:
		return VerticalTop, errors.New(errors.ErrCodeInvalidConfig, "unknown vertical alignment %q (want top, bottom, or center)", s)
	}
}

// =============================================================================
// Config
// =============================================================================

// Config holds the immutable layout configuration for an Engine. The zero
// value is a valid configuration: zero padding, vertical fill, sort by
// order index, left/top alignment.
type Config struct {
	// Padding is the gap inserted between consecutive children along the
	// fill axis: a fixed part plus a part proportional to the container's
	// fill-axis extent.
	Padding scene.Dim

	// Direction is the fill axis.
	Direction Direction

	// SortOrder is the ordering key along the fill axis.
	SortOrder SortOrder

	// HorizontalAlign positions content horizontally. On a horizontal
	// fill axis it picks the starting offset; on a vertical one it
	// aligns each child across the axis.
	HorizontalAlign HorizontalAlign

	// VerticalAlign positions content vertically, mirroring
	// HorizontalAlign for the other axis.
	VerticalAlign VerticalAlign
}

// Validate checks that every enum field holds a defined value.
func (c Config) Validate() error {
	if c.Direction < Vertical || c.Direction > Horizontal {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid direction %d", int(c.Direction))
	}
	if c.SortOrder < ByOrderIndex || c.SortOrder > ByName {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid sort order %d", int(c.SortOrder))
	}
	if c.HorizontalAlign < HorizontalLeft || c.HorizontalAlign > HorizontalCenter {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid horizontal alignment %d", int(c.HorizontalAlign))
	}
	if c.VerticalAlign < VerticalTop || c.VerticalAlign > VerticalCenter {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid vertical alignment %d", int(c.VerticalAlign))
	}
	return nil
}

// axisAlign normalizes the two alignment enums to one fill/cross scheme.
type axisAlign int

const (
	alignStart axisAlign = iota
	alignEnd
	alignCenter
)

// fillAlign returns the alignment governing the fill-axis start offset.
func (c Config) fillAlign() axisAlign {
	if c.Direction == Horizontal {
		return horizontalAxisAlign(c.HorizontalAlign)
	}
	return verticalAxisAlign(c.VerticalAlign)
}

// crossAlign returns the alignment governing per-child cross offsets.
func (c Config) crossAlign() axisAlign {
	if c.Direction == Horizontal {
		return verticalAxisAlign(c.VerticalAlign)
	}
	return horizontalAxisAlign(c.HorizontalAlign)
}

func horizontalAxisAlign(a HorizontalAlign) axisAlign {
	switch a {
	case HorizontalRight:
		return alignEnd
	case HorizontalCenter:
		return alignCenter
	default:
		return alignStart
	}
}

func verticalAxisAlign(a VerticalAlign) axisAlign {
	switch a {
	case VerticalBottom:
		return alignEnd
	case VerticalCenter:
		return alignCenter
	default:
		return alignStart
	}
}
