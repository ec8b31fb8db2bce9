package sar

import (
	"testing"

	"github.com/gonum/floats"
)

func TestAggregateTwoItems(t *testing.T) {
	res, err := Aggregate([]MassItem{
		{Name: "wing", Mass: 8000, X: 15},
		{Name: "nose gear", Mass: 2000, X: 5},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !floats.EqualWithinAbs(res.CGX, 13.0, 1e-12) {
		t.Fatalf("wrong center of gravity: %f m", res.CGX)
	}
	if res.TotalMass != 10000 {
		t.Fatalf("wrong total mass: %f kg", res.TotalMass)
	}
}

func TestAggregateBounded(t *testing.T) {
	items := []MassItem{
		{Name: "radome", Mass: 120, X: 1.5},
		{Name: "fuselage", Mass: 9000, X: 17},
		{Name: "empennage", Mass: 1100, X: 34},
		{Name: "wing", Mass: 8800, X: 16.5},
	}
	res, err := Aggregate(items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if res.CGX < 1.5 || res.CGX > 34 {
		t.Fatalf("center of gravity %f m escapes the item positions", res.CGX)
	}
}

func TestAggregateNoMass(t *testing.T) {
	if _, err := Aggregate(nil, nil); err != ErrNoMass {
		t.Fatalf("expected ErrNoMass, got %v", err)
	}
	if _, err := Aggregate([]MassItem{{Name: "ghost", Mass: 0, X: 10}}, nil); err != ErrNoMass {
		t.Fatalf("expected ErrNoMass for all zero masses, got %v", err)
	}
}

func TestAggregateGroupValidation(t *testing.T) {
	_, err := Aggregate(nil, []VariableGroup{{
		Name:      "seats",
		UnitMass:  100,
		Counts:    []int{2, 2},
		Positions: []float64{10, 12, 14},
	}})
	if err == nil {
		t.Fatal("expected a validation error for mismatched counts and positions")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected a *ValidationError, got %T", err)
	}
	_, err = Aggregate(nil, []VariableGroup{{
		Name:        "seats",
		UnitMass:    100,
		PayloadMass: 150,
		Counts:      []int{2},
		Positions:   []float64{10},
	}})
	if err == nil {
		t.Fatal("expected a validation error for a payload share above the unit mass")
	}
}

func TestAggregateOperatingEmptyMass(t *testing.T) {
	res, err := Aggregate([]MassItem{
		{Name: "wing", Mass: 8000, X: 15},
		{Name: "fuel", Mass: 2000, X: 5, Payload: true},
	}, []VariableGroup{{
		Name:        "economy rows",
		UnitMass:    100,
		PayloadMass: 90,
		Counts:      []int{2, 2},
		Positions:   []float64{10, 12},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !floats.EqualWithinAbs(res.TotalMass, 10400, 1e-9) {
		t.Fatalf("wrong total mass: %f kg", res.TotalMass)
	}
	// Fuel and persons leave, seat structure stays.
	if !floats.EqualWithinAbs(res.OperatingEmptyMass, 8040, 1e-9) {
		t.Fatalf("wrong operating empty mass: %f kg", res.OperatingEmptyMass)
	}
}

func TestLoadingExcursion(t *testing.T) {
	base := []MassItem{{Name: "airframe", Mass: 8000, X: 15}}
	steps, err := LoadingExcursion(base, []VariableGroup{{
		Name:      "rows",
		UnitMass:  100,
		Counts:    []int{1, 1},
		Positions: []float64{5, 25},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if steps[1].CGX >= steps[0].CGX {
		t.Fatalf("loading forward should move the center of gravity forward: %f m vs %f m", steps[1].CGX, steps[0].CGX)
	}
	if !floats.EqualWithinAbs(steps[2].CGX, 15.0, 1e-9) {
		t.Fatalf("wrong final center of gravity: %f m", steps[2].CGX)
	}
	if !floats.EqualWithinAbs(steps[2].TotalMass, 8200, 1e-9) {
		t.Fatalf("wrong final mass: %f kg", steps[2].TotalMass)
	}
}

func TestCGPercentMAC(t *testing.T) {
	if pct := CGPercentMAC(13, 12, 4); !floats.EqualWithinAbs(pct, 25, 1e-12) {
		t.Fatalf("expected 25%% MAC, got %f", pct)
	}
}
