// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box on an integer grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a half-open horizontal interval [Start, Start+Len) on a row.
type Span struct {
	Start int
	Len   int
}

// SpanAt returns the span covered by an element whose left edge sits at the
// continuous offset x. The start is snapped down to the cell it falls in.
func SpanAt(x float64, length int) Span {
	return Span{Start: int(math.Floor(x)), Len: length}
}

// End returns the first position past the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Contains reports whether pos lies in the span. A position exactly at the
// trailing edge is outside.
func (s Span) Contains(pos float64) bool {
	return pos >= float64(s.Start) && pos < float64(s.End())
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
