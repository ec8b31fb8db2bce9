package sar

import (
	"testing"

	"github.com/gonum/floats"
)

func TestInletMassFlowCruise(t *testing.T) {
	mdot, err := InletMassFlowCruise(0.78, 12910, 1.73)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !floats.EqualWithinAbs(mdot, 145.69, 0.05) {
		t.Fatalf("expected 145.69 kg/s, got %f kg/s", mdot)
	}
	if _, err = InletMassFlowCruise(0.78, 90000, 1.73); err == nil {
		t.Fatal("expected an out of range error above the atmosphere model")
	}
}

func TestHydrogenLEAPDeck(t *testing.T) {
	op := HydrogenLEAP(0.78, 12910, 145.69, 5000)
	if err := op.Validate(); err != nil {
		t.Fatalf("the preset deck should validate: %s", err)
	}
	if op.FanCorePressureRatio != op.FanDuctPressureRatio {
		t.Fatal("the preset fan streams should be tied")
	}
	if op.BypassRatio != 11 {
		t.Fatalf("expected a bypass ratio of 11, got %f", op.BypassRatio)
	}
}
