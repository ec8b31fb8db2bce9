package sar

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// MassItem is a single point mass of the weight statement. Payload marks
// masses which do not belong to the operating empty mass, such as fuel,
// persons and cargo.
type MassItem struct {
	Name    string
	Mass    float64 // kg
	X       float64 // m, longitudinal arm from the nose
	Payload bool
}

// VariableGroup distributes a repeated unit mass over several positions,
// e.g. seat rows or cargo containers: Counts[i] units sit at Positions[i].
// PayloadMass is the payload share of each unit, so a seat row keeps its
// structure with the airframe while its passengers count as payload.
type VariableGroup struct {
	Name        string
	UnitMass    float64 // kg per unit
	PayloadMass float64 // kg per unit counted as payload, at most UnitMass
	Counts      []int
	Positions   []float64 // m
}

func (g VariableGroup) validate() error {
	if len(g.Counts) != len(g.Positions) {
		return &ValidationError{Field: fmt.Sprintf("group %s", g.Name), Value: float64(len(g.Counts)), Constraint: fmt.Sprintf("must have one count per position (%d)", len(g.Positions))}
	}
	if err := checkNonNegative(fmt.Sprintf("unit mass of %s", g.Name), g.UnitMass); err != nil {
		return err
	}
	if err := checkNonNegative(fmt.Sprintf("payload mass of %s", g.Name), g.PayloadMass); err != nil {
		return err
	}
	if g.PayloadMass > g.UnitMass {
		return &ValidationError{Field: fmt.Sprintf("payload mass of %s", g.Name), Value: g.PayloadMass, Constraint: fmt.Sprintf("must not exceed the unit mass of %v", g.UnitMass)}
	}
	for i, c := range g.Counts {
		if c < 0 {
			return &ValidationError{Field: fmt.Sprintf("count %d of %s", i, g.Name), Value: float64(c), Constraint: "must not be negative"}
		}
	}
	return nil
}

// CenterOfGravityResult is the aggregated weight statement. The operating
// empty mass and the total are reported separately and never conflated.
type CenterOfGravityResult struct {
	CGX                float64 // m
	TotalMass          float64 // kg
	OperatingEmptyMass float64 // kg, total minus the payload share
}

// Aggregate sums the weight statement and locates the center of gravity.
func Aggregate(items []MassItem, groups []VariableGroup) (CenterOfGravityResult, error) {
	var masses, positions []float64
	var payload float64
	for _, it := range items {
		if err := checkNonNegative(fmt.Sprintf("mass of %s", it.Name), it.Mass); err != nil {
			return CenterOfGravityResult{}, err
		}
		masses = append(masses, it.Mass)
		positions = append(positions, it.X)
		if it.Payload {
			payload += it.Mass
		}
	}
	for _, g := range groups {
		if err := g.validate(); err != nil {
			return CenterOfGravityResult{}, err
		}
		for i, c := range g.Counts {
			masses = append(masses, float64(c)*g.UnitMass)
			positions = append(positions, g.Positions[i])
			payload += float64(c) * g.PayloadMass
		}
	}
	total := floats.Sum(masses)
	if total == 0 {
		return CenterOfGravityResult{}, ErrNoMass
	}
	moment := mat64.Dot(mat64.NewVector(len(masses), masses), mat64.NewVector(len(positions), positions))
	return CenterOfGravityResult{CGX: moment / total, TotalMass: total, OperatingEmptyMass: total - payload}, nil
}

// LoadingStep is one point of a loading excursion.
type LoadingStep struct {
	Label     string
	TotalMass float64 // kg
	CGX       float64 // m
}

// LoadingExcursion loads the variable groups one position at a time on top
// of the base weight statement and records the center of gravity travel.
// Load order is the slice order, so a group walked back to front is given
// its positions reversed.
func LoadingExcursion(base []MassItem, groups []VariableGroup) ([]LoadingStep, error) {
	start, err := Aggregate(base, nil)
	if err != nil {
		return nil, err
	}
	steps := []LoadingStep{{Label: "base", TotalMass: start.TotalMass, CGX: start.CGX}}
	mass := start.TotalMass
	moment := start.CGX * start.TotalMass
	for _, g := range groups {
		if err := g.validate(); err != nil {
			return nil, err
		}
		for i, c := range g.Counts {
			if c == 0 {
				continue
			}
			mass += float64(c) * g.UnitMass
			moment += float64(c) * g.UnitMass * g.Positions[i]
			steps = append(steps, LoadingStep{Label: fmt.Sprintf("%s %d", g.Name, i+1), TotalMass: mass, CGX: moment / mass})
		}
	}
	return steps, nil
}

// CGPercentMAC expresses a center of gravity position as a percentage of the
// mean aerodynamic chord.
func CGPercentMAC(cgx, macLeadingEdge, mac float64) float64 {
	return (cgx - macLeadingEdge) / mac * 100
}
