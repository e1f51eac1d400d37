package tetromino

// Piece is an active instance of a kind: its rotation and grid position.
// Y may be negative while the piece is above the visible playfield.
type Piece struct {
	Kind  *Kind
	Angle Angle
	X, Y  int
}

// NewPiece returns a piece of the kind at angle zero and the origin.
func NewPiece(kind *Kind) *Piece {
	return &Piece{Kind: kind}
}

// Shape returns the occupancy matrix at the current angle.
func (p *Piece) Shape() Shape {
	return p.Kind.Shape(p.Angle)
}

// Center returns the piece pivot in grid cell units.
func (p *Piece) Center() Point {
	c := p.Kind.Center(p.Angle)
	return Point{X: float64(p.X) + c.X, Y: float64(p.Y) + c.Y}
}
