package scene

// FillStyle selects how a shape interior is painted.
type FillStyle string

const (
	FillNone       FillStyle = "none"
	FillSolid      FillStyle = "solid"
	FillHachure    FillStyle = "hachure"
	FillCrossHatch FillStyle = "cross-hatch"
)

// StrokeStyle selects how an outline is painted.
type StrokeStyle string

const (
	StrokeNone      StrokeStyle = "none"
	StrokeStandard  StrokeStyle = "standard"
	StrokeDashed    StrokeStyle = "dashed"
	StrokeDotted    StrokeStyle = "dotted"
	StrokeHanddrawn StrokeStyle = "handdrawn"
)

// Appearance holds the paint attributes shared by shapes and connectors.
type Appearance struct {
	FillColor     string      `json:"fillColor,omitempty"`
	FillStyle     FillStyle   `json:"fillStyle,omitempty"`
	FillOpacity   float64     `json:"fillOpacity,omitempty"`
	StrokeColor   string      `json:"strokeColor,omitempty"`
	StrokeStyle   StrokeStyle `json:"strokeStyle,omitempty"`
	StrokeWidth   float64     `json:"strokeWidth,omitempty"`
	StrokeOpacity float64     `json:"strokeOpacity,omitempty"`
}

// DefaultAppearance returns the appearance new entities are created with.
func DefaultAppearance() Appearance {
	return Appearance{
		FillColor:     "#ffffff",
		FillStyle:     FillSolid,
		FillOpacity:   1,
		StrokeColor:   "#1a1a1a",
		StrokeStyle:   StrokeStandard,
		StrokeWidth:   2,
		StrokeOpacity: 1,
	}
}

// State holds the mutable UI flags of an entity. It is never persisted;
// NeedsRender is the dirty bit consumed by the render pipeline.
type State struct {
	Selected    bool
	Active      bool
	Hovered     bool
	Locked      bool
	Resizable   bool
	EditingText bool
	NeedsRender bool
}
