package core

// Pointer is an optional pointer coordinate in surface pixels
// The zero value is absent
type Pointer struct {
	X, Y    float64
	Present bool
}

// NoPointer is the absent pointer
var NoPointer = Pointer{}

// PointerAt returns a present pointer at the given pixel coordinate
func PointerAt(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}
