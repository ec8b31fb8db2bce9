package sar

import (
	"math"
)

// Reference conditions and gas properties for the cycle analysis. Combustion
// products are treated as a second calorically perfect gas.
const (
	pRef  = 101325.0 // Pa
	tRef  = 288.0    // K, referred mass flow reference
	cpAir = 1000.0   // J/(kg K)
	cpGas = 1150.0   // J/(kg K)
	γGas  = 1.33
)

// Turbine inlet temperature search window and convergence tolerances.
const (
	t04SearchLo  = 1000.0 // K
	t04SearchHi  = 3000.0 // K
	t04SearchTol = 1e-3   // K
	thrustTol    = 1.0    // N
)

// CycleOperatingPoint defines a two spool separate exhaust turbofan at one
// flight condition. The fan may apply different pressure ratios to the core
// and duct streams; tie them for a conventional single stage fan.
type CycleOperatingPoint struct {
	Mach     float64 // flight Mach number
	Altitude float64 // m

	BypassRatio            float64
	InletPressureRatio     float64 // total pressure recovery, at most 1
	FanCorePressureRatio   float64
	FanDuctPressureRatio   float64
	LPCPressureRatio       float64
	HPCPressureRatio       float64
	CombustorPressureRatio float64 // total pressure retained across the burner, at most 1

	FanCoreEfficiency    float64
	FanDuctEfficiency    float64
	LPCEfficiency        float64
	HPCEfficiency        float64
	HPTEfficiency        float64
	LPTEfficiency        float64
	MechanicalEfficiency float64
	CombustionEfficiency float64
	NozzleEfficiency     float64

	CorrectedMassFlow float64 // kg/s, one engine, referred to pRef and tRef
	FuelHeatingValue  float64 // MJ/kg
	Thrust            float64 // N, required net thrust for one engine
}

// CycleSolution is the matched cycle at the solved turbine inlet temperature.
type CycleSolution struct {
	SFC      float64 // kg/(N s)
	FuelFlow float64 // kg/s
	T04      float64 // K
	Thrust   float64 // N, achieved net thrust
}

// cycleState is one full station propagation at a given turbine inlet
// temperature.
type cycleState struct {
	thrust   float64
	fuelFlow float64
	sfc      float64
}

func checkNonNegative(field string, v float64) error {
	if v < 0 {
		return &ValidationError{Field: field, Value: v, Constraint: "must not be negative"}
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if v <= 0 {
		return &ValidationError{Field: field, Value: v, Constraint: "must be positive"}
	}
	return nil
}

func checkEfficiency(field string, v float64) error {
	if v <= 0 || v > 1 {
		return &ValidationError{Field: field, Value: v, Constraint: "must be in (0, 1]"}
	}
	return nil
}

func checkCompression(field string, v float64) error {
	if v < 1 {
		return &ValidationError{Field: field, Value: v, Constraint: "must be at least 1"}
	}
	return nil
}

// Validate checks the operating point before any cycle computation.
func (op CycleOperatingPoint) Validate() error {
	for _, err := range []error{
		checkNonNegative("mach number", op.Mach),
		checkPositive("bypass ratio", op.BypassRatio),
		checkEfficiency("inlet pressure ratio", op.InletPressureRatio),
		checkCompression("fan core pressure ratio", op.FanCorePressureRatio),
		checkCompression("fan duct pressure ratio", op.FanDuctPressureRatio),
		checkCompression("LPC pressure ratio", op.LPCPressureRatio),
		checkCompression("HPC pressure ratio", op.HPCPressureRatio),
		checkEfficiency("combustor pressure ratio", op.CombustorPressureRatio),
		checkEfficiency("fan core efficiency", op.FanCoreEfficiency),
		checkEfficiency("fan duct efficiency", op.FanDuctEfficiency),
		checkEfficiency("LPC efficiency", op.LPCEfficiency),
		checkEfficiency("HPC efficiency", op.HPCEfficiency),
		checkEfficiency("HPT efficiency", op.HPTEfficiency),
		checkEfficiency("LPT efficiency", op.LPTEfficiency),
		checkEfficiency("mechanical efficiency", op.MechanicalEfficiency),
		checkEfficiency("combustion efficiency", op.CombustionEfficiency),
		checkEfficiency("nozzle efficiency", op.NozzleEfficiency),
		checkPositive("corrected mass flow", op.CorrectedMassFlow),
		checkPositive("fuel heating value", op.FuelHeatingValue),
		checkPositive("required thrust", op.Thrust),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// thrustAt propagates the cycle station by station for a given turbine inlet
// temperature t04 and ambient state.
func (op CycleOperatingPoint) thrustAt(t04 float64, amb AtmosphericState) cycleState {
	vInf := op.Mach * SpeedOfSound(amb.Temperature)

	// Ram compression to station 2 with the inlet total pressure recovery.
	ram := 1 + (γAir-1)/2*op.Mach*op.Mach
	tt2 := amb.Temperature * ram
	pt2 := amb.Pressure * math.Pow(ram, γAir/(γAir-1)) * op.InletPressureRatio

	// Referred conditions set the actual inlet mass flow.
	δ := pt2 / pRef
	θ := tt2 / tRef
	mdot := op.CorrectedMassFlow * δ / math.Sqrt(θ)
	mdotCore := mdot / (op.BypassRatio + 1)
	mdotDuct := mdot - mdotCore

	// Fan, both streams. The shafts must drive the full fan work.
	tt21 := tt2 * (1 + (math.Pow(op.FanCorePressureRatio, (γAir-1)/γAir)-1)/op.FanCoreEfficiency)
	pt21 := pt2 * op.FanCorePressureRatio
	tt13 := tt2 * (1 + (math.Pow(op.FanDuctPressureRatio, (γAir-1)/γAir)-1)/op.FanDuctEfficiency)
	pt13 := pt2 * op.FanDuctPressureRatio
	wFan := mdotCore*cpAir*(tt21-tt2) + mdotDuct*cpAir*(tt13-tt2)

	// Booster and high pressure compressor, core stream only.
	tt25 := tt21 * (1 + (math.Pow(op.LPCPressureRatio, (γAir-1)/γAir)-1)/op.LPCEfficiency)
	pt25 := pt21 * op.LPCPressureRatio
	wLPC := mdotCore * cpAir * (tt25 - tt21)
	tt3 := tt25 * (1 + (math.Pow(op.HPCPressureRatio, (γAir-1)/γAir)-1)/op.HPCEfficiency)
	pt3 := pt25 * op.HPCPressureRatio
	wHPC := mdotCore * cpAir * (tt3 - tt25)

	// Combustor energy balance sets the fuel flow needed to reach t04.
	fuelFlow := mdotCore * cpGas * (t04 - tt3) / (op.CombustionEfficiency * op.FuelHeatingValue * 1e6)
	pt4 := pt3 * op.CombustorPressureRatio
	mdotGas := mdotCore + fuelFlow

	// The HPT drives the HPC, the LPT the fan and the booster.
	tt45 := t04 - wHPC/(op.MechanicalEfficiency*mdotGas*cpGas)
	pt45 := pt4 * math.Pow(1-(1-tt45/t04)/op.HPTEfficiency, γGas/(γGas-1))
	tt5 := tt45 - (wFan+wLPC)/(op.MechanicalEfficiency*mdotGas*cpGas)
	pt5 := pt45 * math.Pow(1-(1-tt5/tt45)/op.LPTEfficiency, γGas/(γGas-1))

	core, _ := nozzleThrust(mdotGas, pt5, tt5, amb.Pressure, vInf, cpGas, γGas, op.NozzleEfficiency)
	duct, _ := nozzleThrust(mdotDuct, pt13, tt13, amb.Pressure, vInf, cpAir, γAir, op.NozzleEfficiency)

	thrust := core + duct
	return cycleState{thrust: thrust, fuelFlow: fuelFlow, sfc: fuelFlow / thrust}
}

// nozzleThrust computes the net thrust of one convergent nozzle fed with the
// total conditions ptot and ttot. Above the critical pressure ratio the exit
// stays at Mach 1 and the pressure term acts on the exit area; below it the
// flow expands fully to ambient.
func nozzleThrust(mdot, ptot, ttot, pAmb, vInf, cp, γ, η float64) (thrust float64, choked bool) {
	critical := math.Pow(1-(γ-1)/((γ+1)*η), -γ/(γ-1))
	if ptot/pAmb > critical {
		tExit := ttot * 2 / (γ + 1)
		pExit := ptot / critical
		vExit := math.Sqrt(γ * rAir * tExit)
		area := mdot * rAir * tExit / (pExit * vExit)
		return mdot*(vExit-vInf) + area*(pExit-pAmb), true
	}
	tExit := ttot * (1 + (math.Pow(pAmb/ptot, (γ-1)/γ)-1)/η)
	return mdot*(math.Sqrt(2*cp*(ttot-tExit))-vInf), false
}

// SolveCycle finds the turbine inlet temperature at which the engine delivers
// the required net thrust and returns the matched fuel consumption. The
// temperature is searched over [1000, 3000] K by golden section on the
// thrust miss.
func SolveCycle(op CycleOperatingPoint) (CycleSolution, error) {
	if err := op.Validate(); err != nil {
		return CycleSolution{}, err
	}
	amb, err := Atmosphere(op.Altitude)
	if err != nil {
		return CycleSolution{}, err
	}
	objective := func(t04 float64) float64 {
		miss := math.Abs(op.Thrust - op.thrustAt(t04, amb).thrust)
		if notFinite(miss) {
			return math.Inf(1)
		}
		return miss
	}
	t04, miss, evals, serr := GoldenSection(objective, t04SearchLo, t04SearchHi, t04SearchTol)
	state := op.thrustAt(t04, amb)
	if serr != nil || notFinite(state.thrust) || miss > thrustTol {
		return CycleSolution{}, &ConvergenceError{Required: op.Thrust, Achieved: state.thrust, T04: t04, Iterations: evals}
	}
	return CycleSolution{SFC: state.sfc, FuelFlow: state.fuelFlow, T04: t04, Thrust: state.thrust}, nil
}
