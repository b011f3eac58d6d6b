package contracts

import (
	"fmt"
	"math"
)

// Color is a brush color. The palette is closed: see Colors.
type Color string

const (
	Red       Color = "red"
	LimeGreen Color = "limegreen"
	Blue      Color = "blue"
	Yellow    Color = "yellow"
	Black     Color = "black"
)

// Colors lists the palette in display order.
var Colors = []Color{Red, LimeGreen, Blue, Yellow, Black}

// ParseColor returns the palette color with the given name.
func ParseColor(name string) (Color, error) {
	for _, c := range Colors {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown color %q", ErrInvalidPoint, name)
}

// DrawnPoint is one captured sample of a stroke.
type DrawnPoint struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Color Color   `yaml:"color" json:"color"`
	Size  float64 `yaml:"size" json:"size"`
}

// Validate checks the point against the canvas bounds and brush invariants.
func (p DrawnPoint) Validate(width, height float64) error {
	if !finite(p.X) || p.X < 0 || p.X > width {
		return fmt.Errorf("%w: x=%v outside [0, %v]", ErrInvalidPoint, p.X, width)
	}
	if !finite(p.Y) || p.Y < 0 || p.Y > height {
		return fmt.Errorf("%w: y=%v outside [0, %v]", ErrInvalidPoint, p.Y, height)
	}
	if !finite(p.Size) || p.Size <= 0 {
		return fmt.Errorf("%w: size=%v must be positive", ErrInvalidPoint, p.Size)
	}
	if _, err := ParseColor(string(p.Color)); err != nil {
		return err
	}
	return nil
}

// Geometry is the canvas extent and composition length a drawing is mapped against.
type Geometry struct {
	Width         float64
	Height        float64
	TotalDuration float64
}

// DefaultGeometry returns the 800x400 canvas with a four second composition.
func DefaultGeometry() Geometry {
	return Geometry{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight, TotalDuration: DefaultTotalDuration}
}

// Validate rejects zero, negative and non-finite extents.
func (g Geometry) Validate() error {
	if !finite(g.Width) || g.Width <= 0 || !finite(g.Height) || g.Height <= 0 {
		return fmt.Errorf("%w: canvas %vx%v", ErrInvalidGeometry, g.Width, g.Height)
	}
	if !finite(g.TotalDuration) || g.TotalDuration < 0 {
		return fmt.Errorf("%w: total duration %v", ErrInvalidGeometry, g.TotalDuration)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
