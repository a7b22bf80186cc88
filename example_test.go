package planckt_test

import (
	"errors"
	"fmt"

	"github.com/corey/planckt"
	"github.com/rs/zerolog"
)

func ExampleNew() {
	p, err := planckt.New("H_0", planckt.TTTEEELowELensingBAO)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Value, p.Limit68, p.Units)
	// Output: 67.66 ±0.42 km/s/Mpc
}

func ExampleNew_asymmetric() {
	p, err := planckt.New("tau", planckt.TTTEEELowE, planckt.WithLogger(zerolog.Nop()))
	if err != nil {
		fmt.Println(err)
		return
	}
	switch l := p.Limit68.(type) {
	case planckt.Symmetric:
		fmt.Println("±", l.Delta)
	case planckt.Asymmetric:
		fmt.Println("lower", l.Lower, "upper", l.Upper)
	}
	// Output: lower 0.0081 upper 0.007
}

func ExampleNew_errors() {
	_, err := planckt.New("f_2000^143", planckt.EELowE)
	fmt.Println(errors.Is(err, planckt.ErrAnalysisVariantNotFound))

	_, err = planckt.New("H_0", planckt.TTLowE, planckt.WithModel("not-a-model"))
	var mns *planckt.ModelNotSupportedError
	fmt.Println(errors.As(err, &mns), mns.Model)
	// Output:
	// true
	// true not-a-model
}
