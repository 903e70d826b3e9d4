package model

import "strconv"

type Color string

const (
	Red   Color = "RED"
	Black Color = "BLACK"
	Green Color = "GREEN"
)

// DoubleZero is the spot index standing for "00" on an American wheel.
const DoubleZero = 37

// Outcome is the result of a single spin
type Outcome struct {
	Number int
	Color  Color
}

// Label returns the number as printed on the wheel
func (o Outcome) Label() string {
	if o.Number == DoubleZero {
		return "00"
	}
	return strconv.Itoa(o.Number)
}
