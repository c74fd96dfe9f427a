package goban

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// --- Configuration Structs ---

// BoardOptions is the user-facing description of a board, usually read
// from a JSON file. Pointer fields distinguish "omitted, use the
// default" from an explicit (possibly invalid) value. Pass it to
// NewBoardSpec to obtain a validated BoardSpec.
type BoardOptions struct {
	Size              *SizeSpec       `json:"size,omitempty"`                // number of vertical and horizontal lines
	LineWidths        *FloatPair      `json:"line_widths,omitempty"`         // grid and border stroke widths in mm
	LineSpacing       *FloatPair      `json:"line_spacing,omitempty"`        // distance between adjacent lines in mm
	BorderSpacing     *FloatPair      `json:"border_spacing,omitempty"`      // margin outside the outermost lines in mm
	StarPointDiameter *float64        `json:"star_point_diameter,omitempty"` // marker diameter in mm
	StarPointPos      *StarPointSpec  `json:"star_point_pos,omitempty"`      // "auto", a stride, or explicit points
	XAnnotation       AnnotationStyle `json:"x_annotation,omitempty"`        // labels for the vertical lines
	YAnnotation       AnnotationStyle `json:"y_annotation,omitempty"`        // labels for the horizontal lines
	FontFace          string          `json:"font_face,omitempty"`           // passed through to the renderer, opaque here
	FontSize          *float64        `json:"font_size,omitempty"`
	Outline           *bool           `json:"outline,omitempty"` // rounded cutting outline at the canvas edge
}

// AnnotationStyle selects how grid lines along one axis are labeled.
type AnnotationStyle string

const (
	AnnotationNone    AnnotationStyle = ""
	AnnotationArabic  AnnotationStyle = "arabic_numerals"
	AnnotationLatin   AnnotationStyle = "latin_letters"
	AnnotationChinese AnnotationStyle = "chinese_numerals"
	AnnotationRoman   AnnotationStyle = "roman_numerals"
)

// --- Scalar-or-Pair Types ---

// SizeSpec holds the number of vertical (Cols) and horizontal (Rows)
// grid lines. In JSON it may be a single integer, applied to both
// axes, or a two-element array [cols, rows].
type SizeSpec struct {
	Cols int
	Rows int
}

// Square returns a SizeSpec with n lines on both axes.
func Square(n int) SizeSpec { return SizeSpec{Cols: n, Rows: n} }

// Rect returns a SizeSpec with cols vertical and rows horizontal lines.
func Rect(cols, rows int) SizeSpec { return SizeSpec{Cols: cols, Rows: rows} }

func (s *SizeSpec) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		s.Cols, s.Rows = n, n
		return nil
	}
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("size must be an integer or a [cols, rows] array: %w", ErrInvalidDimension)
	}
	s.Cols, s.Rows = pair[0], pair[1]
	return nil
}

func (s SizeSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Cols, s.Rows})
}

// FloatPair is a per-axis pair of physical values in mm. In JSON it may
// be a single number, applied symmetrically, or a two-element array.
// For line widths the pair reads as [grid, border] instead of [x, y].
type FloatPair struct {
	X float64
	Y float64
}

// Sym returns a FloatPair with the same value on both axes.
func Sym(v float64) FloatPair { return FloatPair{X: v, Y: v} }

// Asym returns a FloatPair with distinct per-axis values.
func Asym(x, y float64) FloatPair { return FloatPair{X: x, Y: y} }

func (p *FloatPair) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		p.X, p.Y = v, v
		return nil
	}
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("value must be a number or a two-element array: %w", ErrInvalidSpacingOrWidth)
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

func (p FloatPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// --- Grid Indices ---

// GridIndex addresses one grid intersection, 0-based. Col counts
// vertical lines left to right, Row counts horizontal lines top to
// bottom. In JSON it is a two-element array [col, row].
type GridIndex struct {
	Col int
	Row int
}

func (g *GridIndex) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("grid index must be a [col, row] array: %w", ErrInvalidStarPoint)
	}
	g.Col, g.Row = pair[0], pair[1]
	return nil
}

func (g GridIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{g.Col, g.Row})
}

// --- Star Point Placement ---

type starPointMode int

const (
	starAuto starPointMode = iota
	starEvery
	starExplicit
)

// StarPointSpec selects how star point markers are placed. The zero
// value is auto placement. In JSON it is the string "auto", a positive
// integer stride, or an array of [col, row] pairs.
type StarPointSpec struct {
	mode   starPointMode
	every  int
	points []GridIndex
}

// StarPointsAuto places the traditional hoshi layout where the board is
// large enough for one.
func StarPointsAuto() StarPointSpec { return StarPointSpec{mode: starAuto} }

// StarPointsEvery marks every intersection whose column and row indices
// are both divisible by k.
func StarPointsEvery(k int) StarPointSpec { return StarPointSpec{mode: starEvery, every: k} }

// StarPointsAt marks exactly the given intersections.
func StarPointsAt(points ...GridIndex) StarPointSpec {
	return StarPointSpec{mode: starExplicit, points: points}
}

func (sp *StarPointSpec) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty star point setting: %w", ErrInvalidStarPoint)
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("star point setting: %w", ErrInvalidStarPoint)
		}
		if s != "auto" {
			return fmt.Errorf("star point setting %q (want \"auto\", a stride or a point list): %w", s, ErrInvalidStarPoint)
		}
		*sp = StarPointsAuto()
	case '[':
		var points []GridIndex
		if err := json.Unmarshal(trimmed, &points); err != nil {
			return err
		}
		*sp = StarPointsAt(points...)
	default:
		var k int
		if err := json.Unmarshal(trimmed, &k); err != nil {
			return fmt.Errorf("star point stride must be an integer: %w", ErrInvalidStarPoint)
		}
		*sp = StarPointsEvery(k)
	}
	return nil
}

func (sp StarPointSpec) MarshalJSON() ([]byte, error) {
	switch sp.mode {
	case starEvery:
		return json.Marshal(sp.every)
	case starExplicit:
		return json.Marshal(sp.points)
	default:
		return json.Marshal("auto")
	}
}
