package sar

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// Gravitational acceleration used for weights, m/s².
const gravity = 9.81

// LH2 fuel system and payload constants.
const (
	lh2Density         = 70.85 // kg/m³
	tankFillFraction   = 0.92  // usable share of the tank volume
	tankWeightFraction = 1.1   // tank structure mass per unit fuel mass
	personMass         = 90.0  // kg
	cargoDensity       = 161.0 // kg per m³ of container volume
)

// Aircraft defines an aircraft design under study. Engine holds the
// turbomachinery of one engine; its flight condition fields are filled in by
// the cruise analysis.
type Aircraft struct {
	Name string

	OperatingEmptyMass float64 // kg, tank structure included

	PaxCount    int
	CargoVolume float64 // m³ of containerized cargo

	WingArea     float64 // m²
	AspectRatio  float64
	OswaldFactor float64
	CD0          float64

	CruiseMach     float64
	CruiseAltitude float64 // m
	LiftToDrag     float64

	TankVolume         float64   // m³
	ReservePercent     float64   // reserve fuel percentage
	FuelFractions      []float64 // kerosene Roskam segment fractions
	KeroseneEfficiency float64   // overall power conversion efficiency, kerosene
	HydrogenEfficiency float64   // overall power conversion efficiency, hydrogen

	EngineCount int
	FanDiameter float64 // m
	Engine      CycleOperatingPoint

	logger kitlog.Logger
}

// NewAircraft returns the given design with its logger configured.
func NewAircraft(a Aircraft) *Aircraft {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "aircraft", a.Name)
	a.logger = klog
	return &a
}

// FuelMass returns the LH2 mass of the filled tanks.
func (a *Aircraft) FuelMass() float64 {
	return a.TankVolume * tankFillFraction * lh2Density
}

// TankMass returns the structural mass of the LH2 tanks.
func (a *Aircraft) TankMass() float64 {
	return a.FuelMass() * tankWeightFraction
}

// TankVolumeForFuel returns the tank volume which holds the given fuel mass
// once filled, the inverse of FuelMass.
func TankVolumeForFuel(fuelMass float64) float64 {
	return fuelMass / (tankFillFraction * lh2Density)
}

// PaxMass returns the mass of all passengers.
func (a *Aircraft) PaxMass() float64 {
	return float64(a.PaxCount) * personMass
}

// CargoMass returns the mass of the containerized cargo.
func (a *Aircraft) CargoMass() float64 {
	return cargoDensity * a.CargoVolume
}

// MTOM returns the maximum takeoff mass.
func (a *Aircraft) MTOM() float64 {
	return a.OperatingEmptyMass + a.PaxMass() + a.CargoMass() + a.FuelMass()
}

// HydrogenFractions converts the kerosene segment fractions to the hydrogen
// mission flown after the retrofit.
func (a *Aircraft) HydrogenFractions() []float64 {
	return HydrogenFuelFractions(a.FuelFractions, a.KeroseneEfficiency, a.HydrogenEfficiency)
}

// MidCruiseMass returns the mass halfway through cruise when departing at
// maximum takeoff mass.
func (a *Aircraft) MidCruiseMass() (float64, error) {
	return MidCruiseMass(a.MTOM(), a.FuelFractions)
}

// MaxPayloadRange returns the Breguet range when departing at maximum
// takeoff mass, for the given cruise SFC.
func (a *Aircraft) MaxPayloadRange(sfc float64) (RangeResult, error) {
	return a.rangeAt(a.MTOM(), sfc)
}

// FerryRange returns the Breguet range with full fuel and no payload.
func (a *Aircraft) FerryRange(sfc float64) (RangeResult, error) {
	return a.rangeAt(a.OperatingEmptyMass+a.FuelMass(), sfc)
}

func (a *Aircraft) rangeAt(gross, sfc float64) (RangeResult, error) {
	amb, err := Atmosphere(a.CruiseAltitude)
	if err != nil {
		return RangeResult{}, err
	}
	return EstimateRange(RangeInputs{
		FuelMass:       a.FuelMass(),
		GrossMass:      gross,
		ReservePercent: a.ReservePercent,
		FuelFractions:  a.HydrogenFractions(),
		Mach:           a.CruiseMach,
		SpeedOfSound:   SpeedOfSound(amb.Temperature),
		SFC:            sfc,
		LiftToDrag:     a.LiftToDrag,
	})
}

// PayloadRangePoint is one corner of the payload range diagram.
type PayloadRangePoint struct {
	Range   float64 // m
	Payload float64 // kg
}

// PayloadRangeDiagram returns the three corners of the diagram: full payload
// standing still, full payload at the maximum takeoff mass range, and no
// payload at the ferry range.
func (a *Aircraft) PayloadRangeDiagram(sfc float64) ([]PayloadRangePoint, error) {
	atMTOM, err := a.MaxPayloadRange(sfc)
	if err != nil {
		return nil, err
	}
	ferry, err := a.FerryRange(sfc)
	if err != nil {
		return nil, err
	}
	payload := a.PaxMass() + a.CargoMass()
	return []PayloadRangePoint{
		{0, payload},
		{atMTOM.Range, payload},
		{ferry.Range, 0},
	}, nil
}

// CruiseThrustRequired returns the total thrust balancing drag at the mid
// cruise mass, N.
func (a *Aircraft) CruiseThrustRequired() (float64, error) {
	mid, err := a.MidCruiseMass()
	if err != nil {
		return 0, err
	}
	return mid * gravity / a.LiftToDrag, nil
}

// CruiseCL returns the lift coefficient needed at the mid cruise mass.
func (a *Aircraft) CruiseCL() (float64, error) {
	mid, err := a.MidCruiseMass()
	if err != nil {
		return 0, err
	}
	amb, err := Atmosphere(a.CruiseAltitude)
	if err != nil {
		return 0, err
	}
	v := a.CruiseMach * SpeedOfSound(amb.Temperature)
	return mid * gravity / (0.5 * amb.Density * v * v * a.WingArea), nil
}

// CruiseCycle returns the operating point of one engine at cruise for the
// given total required thrust.
func (a *Aircraft) CruiseCycle(totalThrust float64) (CycleOperatingPoint, error) {
	mdot, err := InletMassFlowCruise(a.CruiseMach, a.CruiseAltitude, a.FanDiameter)
	if err != nil {
		return CycleOperatingPoint{}, err
	}
	op := a.Engine
	op.Mach = a.CruiseMach
	op.Altitude = a.CruiseAltitude
	op.CorrectedMassFlow = mdot
	op.Thrust = totalThrust / float64(a.EngineCount)
	return op, nil
}

// SolveCruise matches one engine to the thrust required at mid cruise and
// logs the outcome. Aircraft built without NewAircraft solve silently.
func (a *Aircraft) SolveCruise() (CycleSolution, error) {
	thrust, err := a.CruiseThrustRequired()
	if err != nil {
		return CycleSolution{}, err
	}
	op, err := a.CruiseCycle(thrust)
	if err != nil {
		return CycleSolution{}, err
	}
	sol, err := SolveCycle(op)
	if err != nil {
		return CycleSolution{}, err
	}
	if a.logger != nil {
		a.logger.Log("level", "info", "subsys", "engine", "thrust(N)", sol.Thrust, "TIT(K)", sol.T04, "SFC(kg/Ns)", sol.SFC)
	}
	return sol, nil
}
