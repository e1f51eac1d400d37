// Package tetromino holds the immutable catalog of the seven falling pieces.
// Each kind stores only the rotation states that are actually distinct, so
// lookups wrap the requested angle around the number of stored shapes.
package tetromino

import (
	"iter"
	"math/rand/v2"
)

// Angle is the canonical rotation state of a piece, clockwise in quarter turns.
type Angle int

const (
	Deg0 Angle = iota
	Deg90
	Deg180
	Deg270
)

// Next returns the angle one clockwise quarter turn further.
func (a Angle) Next() Angle {
	return (a + 1) % 4
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 90
}

// Shape is a square occupancy matrix indexed [row][column]; cells are 0 or 1.
type Shape [][]uint8

// Cells yields the (x, y) offsets of every occupied cell, row by row.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y, row := range s {
			for x, cell := range row {
				if cell == 0 {
					continue
				}
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Point is a fractional position inside a bounding box, in cell units.
type Point struct {
	X, Y float64
}

// Kind is a catalog entry. Kinds are shared and never mutated after init.
type Kind struct {
	Name string
	// ColorIndex selects one of the two per-level colours.
	ColorIndex int
	// Size is the side of the bounding square.
	Size int
	// VerticalOffset counts the empty rows at the top of the spawn shape.
	VerticalOffset int
	Centers        []Point
	Shapes         []Shape
}

// Shape returns the occupancy matrix for the given angle.
func (k *Kind) Shape(angle Angle) Shape {
	return k.Shapes[int(angle)%len(k.Shapes)]
}

// Center returns the pivot that keeps the piece visually centered in its box.
func (k *Kind) Center(angle Angle) Point {
	return k.Centers[int(angle)%len(k.Centers)]
}

// DistinctRotations is the number of stored shapes for the kind.
func (k *Kind) DistinctRotations() int {
	return len(k.Shapes)
}

func (k *Kind) String() string {
	return k.Name
}

var (
	I = newKind("I", 0, 2, Shape{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	})
	O = newKind("O", 0, 1, Shape{
		{1, 1},
		{1, 1},
	})
	T = newKind("T", 0, 4, Shape{
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	J = newKind("J", 1, 4, Shape{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 1},
	})
	L = newKind("L", 1, 4, Shape{
		{0, 0, 0},
		{1, 1, 1},
		{1, 0, 0},
	})
	S = newKind("S", 1, 2, Shape{
		{0, 0, 0},
		{0, 1, 1},
		{1, 1, 0},
	})
	Z = newKind("Z", 1, 2, Shape{
		{0, 0, 0},
		{1, 1, 0},
		{0, 1, 1},
	})
)

// catalog is ordered the way the statistics panel lists pieces.
var catalog = []*Kind{T, Z, J, O, L, S, I}

// Kinds returns every kind in statistics order.
func Kinds() []*Kind {
	return catalog
}

// ByName looks a kind up by its single-letter name.
func ByName(name string) (*Kind, bool) {
	for _, k := range catalog {
		if k.Name == name {
			return k, true
		}
	}
	return nil, false
}

// Random draws a kind uniformly. Draws are independent, repeats are allowed.
func Random(rng *rand.Rand) *Kind {
	return catalog[rng.IntN(len(catalog))]
}

func newKind(name string, colorIndex, distinct int, base Shape) *Kind {
	k := &Kind{
		Name:           name,
		ColorIndex:     colorIndex,
		Size:           len(base),
		VerticalOffset: emptyTopRows(base),
	}

	shape := base
	for range distinct {
		k.Shapes = append(k.Shapes, shape)
		k.Centers = append(k.Centers, boundsCenter(shape))
		shape = rotateShape(shape)
	}
	return k
}

func rotateShape(shape Shape) Shape {
	size := len(shape)
	rotated := make(Shape, size)
	for i := range rotated {
		rotated[i] = make([]uint8, size)
	}

	for i := range size {
		for j := range size {
			rotated[j][size-1-i] = shape[i][j]
		}
	}

	return rotated
}

func emptyTopRows(shape Shape) int {
	for y, row := range shape {
		for _, cell := range row {
			if cell != 0 {
				return y
			}
		}
	}
	return len(shape)
}

func boundsCenter(shape Shape) Point {
	minX, minY := len(shape), len(shape)
	maxX, maxY := -1, -1
	for x, y := range shape.Cells() {
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}
	return Point{
		X: float64(minX+maxX+1) / 2,
		Y: float64(minY+maxY+1) / 2,
	}
}
