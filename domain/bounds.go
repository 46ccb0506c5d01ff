package domain

import (
	"fmt"
	"math"
)

// Point is a Cartesian coordinate in the site's plane.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned bounding box for the site.
type Bounds struct {
	XMin, YMin, XMax, YMax float64
}

// Validate checks xmin<xmax, ymin<ymax.
func (b Bounds) Validate() error {
	if b.XMin >= b.XMax {
		return fmt.Errorf("bounds: xmin (%g) must be < xmax (%g)", b.XMin, b.XMax)
	}
	if b.YMin >= b.YMax {
		return fmt.Errorf("bounds: ymin (%g) must be < ymax (%g)", b.YMin, b.YMax)
	}
	return nil
}

// Width returns xmax-xmin.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns ymax-ymin.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Area returns the box area.
func (b Bounds) Area() float64 { return b.Width() * b.Height() }

// Diagonal returns the Euclidean length of the box diagonal, used to
// normalize the walking-distance objective (spec.md §4.B.5).
func (b Bounds) Diagonal() float64 {
	w, h := b.Width(), b.Height()
	return math.Sqrt(w*w + h*h)
}

// Erode returns the box shrunk inward by margin on every side. An eroded box
// with negative width or height has Contains always return false.
func (b Bounds) Erode(margin float64) Bounds {
	return Bounds{
		XMin: b.XMin + margin,
		YMin: b.YMin + margin,
		XMax: b.XMax - margin,
		YMax: b.YMax - margin,
	}
}

// Contains reports whether p lies within the box, inclusive of the boundary.
func (b Bounds) Contains(p Point) bool {
	if b.XMin > b.XMax || b.YMin > b.YMax {
		return false
	}
	return b.XMin <= p.X && p.X <= b.XMax && b.YMin <= p.Y && p.Y <= b.YMax
}

// Clamp moves p to the nearest point within the box.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: clampf(p.X, minf(b.XMin, b.XMax), maxf(b.XMin, b.XMax)),
		Y: clampf(p.Y, minf(b.YMin, b.YMax), maxf(b.YMin, b.YMax)),
	}
}

// Polygon is an opaque "contains(point)" collaborator for a richer site
// boundary than the axis-aligned Bounds box (spec.md §3). The core treats it
// as a black box; no implementation is provided here.
type Polygon interface {
	Contains(p Point) bool
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
