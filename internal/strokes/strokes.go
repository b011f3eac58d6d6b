// Package strokes reads drawings from YAML scripts and replays them onto a
// canvas the way a pointer would have drawn them.
package strokes

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leandrodaf/drawsound/sdk/contracts"
)

// Script is a recorded drawing. Strokes are replayed as pointer gestures,
// Points are appended as they are.
type Script struct {
	Strokes []Stroke               `yaml:"strokes"`
	Points  []contracts.DrawnPoint `yaml:"points"`
}

// Stroke is one pointer-down to pointer-up gesture with a fixed brush.
type Stroke struct {
	Color  contracts.Color `yaml:"color"`
	Size   float64         `yaml:"size"`
	Points []XY            `yaml:"points"`
}

// XY is a pointer position in canvas pixels.
type XY struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Surface is what a script is drawn onto.
type Surface interface {
	SetBrushColor(c contracts.Color) error
	SetBrushSize(size float64) error
	PointerDown(x, y float64) error
	PointerMove(x, y float64) error
	PointerUp()
	Append(p contracts.DrawnPoint) error
}

// LoadFile reads a script from disk.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a script and fills in brush defaults. Unknown keys are
// rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding stroke script: %w", err)
	}
	s.applyDefaults()
	return &s, nil
}

func (s *Script) applyDefaults() {
	for i := range s.Strokes {
		if s.Strokes[i].Color == "" {
			s.Strokes[i].Color = contracts.DefaultBrushColor
		}
		if s.Strokes[i].Size == 0 {
			s.Strokes[i].Size = contracts.DefaultBrushSize
		}
	}
}

// Len is the number of points the script produces.
func (s *Script) Len() int {
	n := len(s.Points)
	for _, st := range s.Strokes {
		n += len(st.Points)
	}
	return n
}

// Replay draws every stroke, then appends the loose points. The pointer is
// always released, even when a capture fails.
func (s *Script) Replay(dst Surface) error {
	for i, st := range s.Strokes {
		if err := replayStroke(dst, st); err != nil {
			return fmt.Errorf("stroke %d: %w", i, err)
		}
	}
	for i, p := range s.Points {
		if err := dst.Append(p); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	return nil
}

func replayStroke(dst Surface, st Stroke) error {
	if len(st.Points) == 0 {
		return nil
	}
	if err := dst.SetBrushColor(st.Color); err != nil {
		return err
	}
	if err := dst.SetBrushSize(st.Size); err != nil {
		return err
	}

	defer dst.PointerUp()
	first := st.Points[0]
	if err := dst.PointerDown(first.X, first.Y); err != nil {
		return err
	}
	for _, p := range st.Points[1:] {
		if err := dst.PointerMove(p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}
