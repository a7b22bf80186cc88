package planckt

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Limit68 is a 68% confidence interval around a central value. It is either
// Symmetric or Asymmetric; switch on the concrete type to tell them apart:
//
//	switch l := p.Limit68.(type) {
//	case planckt.Symmetric:
//		fmt.Println("±", l.Delta)
//	case planckt.Asymmetric:
//		fmt.Println("-", l.Lower, "+", l.Upper)
//	}
type Limit68 interface {
	// Bounds returns the lower and upper deltas. They are equal for Symmetric.
	Bounds() (lower, upper float64)

	// String renders the interval as "±d" or "-l/+u".
	String() string

	limit68()
}

// Symmetric is an interval with the same delta on both sides.
type Symmetric struct {
	Delta float64
}

// Bounds returns Delta twice.
func (s Symmetric) Bounds() (lower, upper float64) { return s.Delta, s.Delta }

func (Symmetric) limit68() {}

func (s Symmetric) String() string {
	return "±" + strconv.FormatFloat(s.Delta, 'g', -1, 64)
}

// MarshalJSON encodes the interval as a bare number.
func (s Symmetric) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Delta)
}

// Asymmetric is an interval whose lower and upper deltas differ. Use the side
// that matches the direction being bounded.
type Asymmetric struct {
	Lower float64
	Upper float64
}

// Bounds returns the lower and upper deltas.
func (a Asymmetric) Bounds() (lower, upper float64) { return a.Lower, a.Upper }

func (Asymmetric) limit68() {}

func (a Asymmetric) String() string {
	return fmt.Sprintf("-%s/+%s",
		strconv.FormatFloat(a.Lower, 'g', -1, 64),
		strconv.FormatFloat(a.Upper, 'g', -1, 64))
}

// MarshalJSON encodes the interval as [lower, upper].
func (a Asymmetric) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{a.Lower, a.Upper})
}

// newLimit68 collapses equal deltas into Symmetric.
func newLimit68(limits [2]float64) Limit68 {
	if limits[0] == limits[1] {
		return Symmetric{Delta: limits[0]}
	}
	return Asymmetric{Lower: limits[0], Upper: limits[1]}
}
