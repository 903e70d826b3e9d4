// Package wheel models an American roulette wheel: spots 0..36 plus 37
// standing for "00".
package wheel

import (
	"errors"
	"math/rand"
	"roulette/internal/model"
	"time"
)

// NumSpots is the number of pockets on the wheel, 0 and 00 included
const NumSpots = 38

var ErrNotSpun = errors.New("wheel has not been spun yet")

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// colors is filled once and never changes
var colors = buildColors()

func buildColors() [NumSpots]model.Color {
	var table [NumSpots]model.Color
	for n := 0; n < NumSpots; n++ {
		switch {
		case n == 0 || n == model.DoubleZero:
			table[n] = model.Green
		case redNumbers[n]:
			table[n] = model.Red
		default:
			table[n] = model.Black
		}
	}
	return table
}

// ColorOf returns the fixed color of a spot
func ColorOf(number int) model.Color {
	return colors[number]
}

type Wheel struct {
	rng  *rand.Rand
	last *model.Outcome
}

// New constructs a Wheel with provided rng or a time-seeded default.
func New(rng *rand.Rand) *Wheel {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Wheel{rng: rng}
}

// Spin draws a spot uniformly and remembers it as the current outcome
func (w *Wheel) Spin() model.Outcome {
	n := w.rng.Intn(NumSpots)
	o := model.Outcome{Number: n, Color: colors[n]}
	w.last = &o
	return o
}

// Outcome returns the most recent spin
func (w *Wheel) Outcome() (model.Outcome, error) {
	if w.last == nil {
		return model.Outcome{}, ErrNotSpun
	}
	return *w.last, nil
}

func (w *Wheel) Number() (int, error) {
	o, err := w.Outcome()
	if err != nil {
		return 0, err
	}
	return o.Number, nil
}

func (w *Wheel) Color() (model.Color, error) {
	o, err := w.Outcome()
	if err != nil {
		return "", err
	}
	return o.Color, nil
}
