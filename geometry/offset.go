package geometry

import "fmt"

// An Offset is a cell position relative to a piece's anchor, carrying the
// number of points the piece contributes to that cell. X is the column and
// Y is the row; Y grows downwards.
type Offset struct {
	X     int
	Y     int
	Value int
}

func NewOffset(x, y, value int) Offset {
	return Offset{X: x, Y: y, Value: value}
}

// Rotate turns the offset 90 degrees clockwise about the origin, k times.
// Only k mod 4 matters.
func (o Offset) Rotate(k int) Offset {
	x, y := o.X, o.Y
	for i := 0; i < ((k%4)+4)%4; i++ {
		x, y = -y, x
	}
	return Offset{X: x, Y: y, Value: o.Value}
}

// Translate moves the offset by (dx, dy).
func (o Offset) Translate(dx, dy int) Offset {
	return Offset{X: o.X + dx, Y: o.Y + dy, Value: o.Value}
}

func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d,%d)", o.X, o.Y, o.Value)
}
