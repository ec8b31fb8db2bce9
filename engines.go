package sar

import "math"

// HydrogenLEAP returns the operating point of the hydrogen retrofit of a
// LEAP class turbofan at the given flight condition. The fan core and duct
// streams are tied, as for a single stage fan.
func HydrogenLEAP(mach, altitude, correctedMassFlow, thrust float64) CycleOperatingPoint {
	return CycleOperatingPoint{
		Mach:                   mach,
		Altitude:               altitude,
		BypassRatio:            11,
		InletPressureRatio:     1.0,
		FanCorePressureRatio:   1.25,
		FanDuctPressureRatio:   1.25,
		LPCPressureRatio:       1.7,
		HPCPressureRatio:       10,
		CombustorPressureRatio: 0.96,
		FanCoreEfficiency:      0.93,
		FanDuctEfficiency:      0.93,
		LPCEfficiency:          0.91,
		HPCEfficiency:          0.84,
		HPTEfficiency:          0.92,
		LPTEfficiency:          0.92,
		MechanicalEfficiency:   0.99,
		CombustionEfficiency:   0.995,
		NozzleEfficiency:       0.98,
		CorrectedMassFlow:      correctedMassFlow,
		FuelHeatingValue:       120,
		Thrust:                 thrust,
	}
}

// InletMassFlowCruise estimates the mass flow captured by one fan of the
// given diameter at the cruise condition.
func InletMassFlowCruise(mach, altitude, fanDiameter float64) (float64, error) {
	amb, err := Atmosphere(altitude)
	if err != nil {
		return 0, err
	}
	v := mach * SpeedOfSound(amb.Temperature)
	area := math.Pi / 4 * fanDiameter * fanDiameter
	return v * area * amb.Density, nil
}
