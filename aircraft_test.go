package sar

import (
	"testing"

	"github.com/gonum/floats"
)

// testAircraft returns a narrow body sized hydrogen retrofit used across the tests.
func testAircraft() *Aircraft {
	return NewAircraft(Aircraft{
		Name:               "testbird",
		OperatingEmptyMass: 45000,
		PaxCount:           120,
		CargoVolume:        15,
		WingArea:           122.6,
		AspectRatio:        9.478,
		OswaldFactor:       0.85,
		CD0:                0.018,
		CruiseMach:         0.78,
		CruiseAltitude:     11280,
		LiftToDrag:         17,
		TankVolume:         100,
		ReservePercent:     5,
		FuelFractions:      []float64{0.990, 0.995, 0.995, 0.985, 0.990, 0.995},
		KeroseneEfficiency: 0.3,
		HydrogenEfficiency: 0.3,
		EngineCount:        2,
		FanDiameter:        1.73,
		Engine:             HydrogenLEAP(0, 0, 0, 0),
	})
}

func TestAircraftMassBuildup(t *testing.T) {
	a := testAircraft()
	if fuel := a.FuelMass(); !floats.EqualWithinAbs(fuel, 6518.2, 0.1) {
		t.Fatalf("fuel mass %f kg", fuel)
	}
	if tank := a.TankMass(); !floats.EqualWithinAbs(tank, 7170.02, 0.1) {
		t.Fatalf("tank mass %f kg", tank)
	}
	if vol := TankVolumeForFuel(a.FuelMass()); !floats.EqualWithinAbs(vol, a.TankVolume, 1e-9) {
		t.Fatalf("tank volume %f m^3 for the full fuel load", vol)
	}
	if pax := a.PaxMass(); !floats.EqualWithinAbs(pax, 10800, 1e-9) {
		t.Fatalf("pax mass %f kg", pax)
	}
	if cargo := a.CargoMass(); !floats.EqualWithinAbs(cargo, 2415, 1e-9) {
		t.Fatalf("cargo mass %f kg", cargo)
	}
	if mtom := a.MTOM(); !floats.EqualWithinAbs(mtom, 64733.2, 0.1) {
		t.Fatalf("MTOM %f kg", mtom)
	}
}

func TestAircraftMidCruiseMass(t *testing.T) {
	a := testAircraft()
	mid, err := a.MidCruiseMass()
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(mid, 62182.44, 0.1) {
		t.Fatalf("mid cruise mass %f kg", mid)
	}
	a.FuelFractions = a.FuelFractions[:3]
	if _, err = a.MidCruiseMass(); err == nil {
		t.Fatal("expected an error with only three fuel fractions")
	}
}

func TestAircraftHydrogenFractions(t *testing.T) {
	a := testAircraft()
	h := a.HydrogenFractions()
	if len(h) != len(a.FuelFractions) {
		t.Fatalf("expected %d fractions, got %d", len(a.FuelFractions), len(h))
	}
	if !floats.EqualWithinAbs(h[0], 0.9969859, 1e-6) {
		t.Fatalf("hydrogen fraction %f", h[0])
	}
}

func TestAircraftCruiseRequirements(t *testing.T) {
	a := testAircraft()
	req, err := a.CruiseThrustRequired()
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(req, 35882.9, 0.5) {
		t.Fatalf("required cruise thrust %f N", req)
	}
	cl, err := a.CruiseCL()
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(cl, 0.5395, 1e-3) {
		t.Fatalf("cruise lift coefficient %f", cl)
	}
}

func TestAircraftRanges(t *testing.T) {
	a := testAircraft()
	sfc := 1.5e-5
	atMTOM, err := a.MaxPayloadRange(sfc)
	if err != nil {
		t.Fatal(err)
	}
	ferry, err := a.FerryRange(sfc)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(atMTOM.UsableFuelFraction, 0.904102, 1e-5) {
		t.Fatalf("usable fuel fraction %f", atMTOM.UsableFuelFraction)
	}
	if atMTOM.Range <= 0 {
		t.Fatalf("max payload range %f m", atMTOM.Range)
	}
	if ferry.Range <= atMTOM.Range {
		t.Fatalf("ferry range %f m not beyond max payload range %f m", ferry.Range, atMTOM.Range)
	}
}

func TestAircraftPayloadRangeDiagram(t *testing.T) {
	a := testAircraft()
	pts, err := a.PayloadRangeDiagram(1.5e-5)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 3 {
		t.Fatalf("expected three diagram points, got %d", len(pts))
	}
	payload := a.PaxMass() + a.CargoMass()
	if pts[0].Range != 0 || !floats.EqualWithinAbs(pts[0].Payload, payload, 1e-9) {
		t.Fatalf("first point %+v", pts[0])
	}
	if !floats.EqualWithinAbs(pts[1].Payload, payload, 1e-9) {
		t.Fatalf("second point %+v", pts[1])
	}
	if pts[2].Payload != 0 {
		t.Fatalf("third point %+v", pts[2])
	}
	if pts[1].Range <= 0 || pts[2].Range <= pts[1].Range {
		t.Fatalf("diagram ranges not increasing: %f then %f", pts[1].Range, pts[2].Range)
	}
}

func TestSolveCruise(t *testing.T) {
	a := testAircraft()
	// Lighten the airframe so that the retrofitted engines can hold level flight.
	a.OperatingEmptyMass = 18000
	a.PaxCount = 60
	a.CargoVolume = 8
	a.TankVolume = 25
	sol, err := a.SolveCruise()
	if err != nil {
		t.Fatalf("cruise did not converge: %s", err)
	}
	req, err := a.CruiseThrustRequired()
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(sol.Thrust, req/float64(a.EngineCount), thrustTol) {
		t.Fatalf("per engine thrust %f N, required %f N", sol.Thrust, req/float64(a.EngineCount))
	}
	if sol.T04 <= t04SearchLo || sol.T04 >= t04SearchHi {
		t.Fatalf("turbine entry temperature %f K stuck on a search bound", sol.T04)
	}
	if sol.SFC <= 0 {
		t.Fatalf("SFC %f", sol.SFC)
	}
}

func TestSolveCruiseNoLogger(t *testing.T) {
	// A literal built aircraft carries no logger and must still solve.
	a := &Aircraft{
		Name:               "testbird",
		OperatingEmptyMass: 18000,
		PaxCount:           60,
		CargoVolume:        8,
		WingArea:           122.6,
		AspectRatio:        9.478,
		OswaldFactor:       0.85,
		CD0:                0.018,
		CruiseMach:         0.78,
		CruiseAltitude:     11280,
		LiftToDrag:         17,
		TankVolume:         25,
		ReservePercent:     5,
		FuelFractions:      []float64{0.990, 0.995, 0.995, 0.985, 0.990, 0.995},
		KeroseneEfficiency: 0.3,
		HydrogenEfficiency: 0.3,
		EngineCount:        2,
		FanDiameter:        1.73,
		Engine:             HydrogenLEAP(0, 0, 0, 0),
	}
	sol, err := a.SolveCruise()
	if err != nil {
		t.Fatalf("cruise did not converge: %s", err)
	}
	if sol.SFC <= 0 {
		t.Fatalf("SFC %f", sol.SFC)
	}
}
