package sar

import (
	"errors"
	"fmt"
)

// ErrNoMass is returned when an aggregation sums to zero mass: the center of
// gravity is undefined.
var ErrNoMass = errors.New("total mass is zero, center of gravity is undefined")

// OutOfRangeError is returned for altitudes above the highest modeled
// atmosphere layer. There is no silent extrapolation.
type OutOfRangeError struct {
	Altitude float64 // [m]
	Limit    float64 // [m]
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("altitude of %.1f m is above the %.1f m atmosphere model limit", e.Altitude, e.Limit)
}

// ConvergenceError is returned when the cycle solver cannot find a turbine
// inlet temperature within its search bound which produces the required
// thrust: the request is infeasible for the given cycle parameters.
type ConvergenceError struct {
	Required   float64 // [N]
	Achieved   float64 // [N]
	T04        float64 // [K]
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("no turbine inlet temperature yields %.1f N (best: %.1f N at %.1f K after %d iterations)", e.Required, e.Achieved, e.T04, e.Iterations)
}

// ValidationError is returned when an input is rejected before any
// computation starts.
type ValidationError struct {
	Field      string
	Value      float64
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s of %v %s", e.Field, e.Value, e.Constraint)
}

// InfeasibleFuelError is returned when the fuel mass exceeds what the gross
// mass can accommodate including reserves, i.e. the usable fuel fraction is
// not positive and the range logarithm is undefined.
type InfeasibleFuelError struct {
	FuelMass  float64 // [kg]
	Available float64 // [kg]
}

func (e *InfeasibleFuelError) Error() string {
	return fmt.Sprintf("fuel mass of %.1f kg exceeds the %.1f kg of gross mass including reserves", e.FuelMass, e.Available)
}
