package sar

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// Heating values used to translate kerosene mission segments to hydrogen,
// MJ/kg.
const (
	keroseneHeatingValue = 42.8
	hydrogenHeatingValue = 142.0
)

// RangeInputs collects everything the Breguet cruise range estimate needs.
// The fuel fractions are the mass ratios of the non cruise mission segments
// in flight order, e.g. the six Roskam segments from engine start to landing.
type RangeInputs struct {
	FuelMass       float64   // kg
	GrossMass      float64   // kg, at the start of the mission
	ReservePercent float64   // reserve fuel as a percentage of the mission fuel
	FuelFractions  []float64 // per segment mass fractions, each in (0, 1]
	Mach           float64
	SpeedOfSound   float64 // m/s at the cruise altitude
	SFC            float64 // kg/(N s)
	LiftToDrag     float64
}

// RangeResult is the outcome of one Breguet estimate. A cruise mass ratio
// above one means the non cruise segments alone burn more than the fuel on
// board, and the range goes negative.
type RangeResult struct {
	Range              float64 // m
	CruiseMassRatio    float64 // end of cruise over start of cruise mass
	UsableFuelFraction float64 // end of mission over start of mission mass
}

// EstimateRange computes the Breguet cruise range left once the non cruise
// mission segments have taken their share of the fuel.
func EstimateRange(in RangeInputs) (RangeResult, error) {
	for _, err := range []error{
		checkNonNegative("fuel mass", in.FuelMass),
		checkPositive("gross mass", in.GrossMass),
		checkNonNegative("reserve percent", in.ReservePercent),
		checkPositive("mach number", in.Mach),
		checkPositive("speed of sound", in.SpeedOfSound),
		checkPositive("SFC", in.SFC),
		checkPositive("lift to drag ratio", in.LiftToDrag),
	} {
		if err != nil {
			return RangeResult{}, err
		}
	}
	if len(in.FuelFractions) == 0 {
		return RangeResult{}, &ValidationError{Field: "fuel fractions", Value: 0, Constraint: "must contain at least one segment"}
	}
	for i, f := range in.FuelFractions {
		if err := checkEfficiency(fmt.Sprintf("fuel fraction %d", i), f); err != nil {
			return RangeResult{}, err
		}
	}
	available := in.GrossMass * (1 + in.ReservePercent/100)
	usable := 1 - in.FuelMass/available
	if usable <= 0 {
		return RangeResult{}, &InfeasibleFuelError{FuelMass: in.FuelMass, Available: available}
	}
	ratio := usable / floats.Prod(in.FuelFractions)
	rng := in.Mach * in.SpeedOfSound / in.SFC * in.LiftToDrag * math.Log(1/ratio)
	return RangeResult{Range: rng, CruiseMassRatio: ratio, UsableFuelFraction: usable}, nil
}

// HydrogenFuelFractions converts kerosene segment fractions to hydrogen
// equivalents. The burned mass of each segment scales with the heating value
// ratio and the relative overall engine efficiency.
func HydrogenFuelFractions(fractions []float64, ηKerosene, ηHydrogen float64) []float64 {
	converted := make([]float64, len(fractions))
	for i, f := range fractions {
		converted[i] = 1 - (1-f)*keroseneHeatingValue/hydrogenHeatingValue*(ηKerosene/ηHydrogen)
	}
	return converted
}

// MidCruiseMass returns the aircraft mass halfway through cruise, the mean
// of the masses on either side of the cruise segment under the Roskam
// fraction bookkeeping.
func MidCruiseMass(grossMass float64, fractions []float64) (float64, error) {
	if err := checkPositive("gross mass", grossMass); err != nil {
		return 0, err
	}
	if len(fractions) < 5 {
		return 0, &ValidationError{Field: "fuel fractions", Value: float64(len(fractions)), Constraint: "must cover the five segments surrounding cruise"}
	}
	before := floats.Prod(fractions[:4])
	after := floats.Prod(fractions[:5])
	return grossMass * (before + after) / 2, nil
}
