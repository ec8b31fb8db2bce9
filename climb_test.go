package sar

import (
	"testing"

	"github.com/gonum/floats"
)

func testClimbTable() ClimbTable {
	return ClimbTable{
		Altitudes: []float64{0, 5000, 10000},
		Speeds:    []float64{100, 150, 200},
		Thrusts:   []float64{140e3, 110e3, 80e3},
	}
}

func TestDrag(t *testing.T) {
	a := testAircraft()
	amb, err := Atmosphere(0)
	if err != nil {
		t.Fatal(err)
	}
	if d := a.Drag(amb.Density, 100, 60000); !floats.EqualWithinAbs(d, 31744.6, 1.0) {
		t.Fatalf("sea level drag %f N", d)
	}
}

func TestClimbRate(t *testing.T) {
	a := testAircraft()
	rate, err := a.ClimbRate(0, 60000, testClimbTable())
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(rate, 18.39, 0.01) {
		t.Fatalf("sea level climb rate %f m/s", rate)
	}
	if _, err = a.ClimbRate(90e3, 60000, testClimbTable()); err == nil {
		t.Fatal("expected an out of range error above the atmosphere model")
	}
}

func TestClimbProfileValidation(t *testing.T) {
	a := testAircraft()
	badTable := ClimbTable{Altitudes: []float64{0, 5000}, Speeds: []float64{100}, Thrusts: []float64{140e3, 110e3}}
	if _, err := NewClimbProfile(a, badTable, 60000, 0, 11000, ExportConfig{}); err == nil {
		t.Fatal("expected a validation error on a lopsided table")
	}
	if _, err := NewClimbProfile(a, testClimbTable(), 60000, 5000, 1000, ExportConfig{}); err == nil {
		t.Fatal("expected a validation error with the target below the start")
	}
}

func TestClimbProfilePropagate(t *testing.T) {
	a := testAircraft()
	cl, err := NewClimbProfile(a, testClimbTable(), 60000, 0, 11000, ExportConfig{})
	if err != nil {
		t.Fatal(err)
	}
	cl.Propagate()
	if cl.Altitude < 11000 || cl.Altitude > 11100 {
		t.Fatalf("final altitude %f m", cl.Altitude)
	}
	if sec := cl.Elapsed.Seconds(); sec < 500 || sec > 750 {
		t.Fatalf("time to climb %f s", sec)
	}
}

func TestClimbProfileCeiling(t *testing.T) {
	a := testAircraft()
	table := ClimbTable{
		Altitudes: []float64{0, 3000},
		Speeds:    []float64{100, 120},
		Thrusts:   []float64{40e3, 25e3},
	}
	cl, err := NewClimbProfile(a, table, 60000, 0, 3000, ExportConfig{})
	if err != nil {
		t.Fatal(err)
	}
	cl.Propagate()
	if cl.Altitude >= 3000 {
		t.Fatalf("the climb should have stalled below the target, reached %f m", cl.Altitude)
	}
	if cl.Altitude < 1000 || cl.Altitude > 2500 {
		t.Fatalf("stalled at %f m", cl.Altitude)
	}
	if cl.rate >= minClimbRate {
		t.Fatalf("final rate %f m/s", cl.rate)
	}
}
