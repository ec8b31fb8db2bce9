package sar

import (
	"fmt"
	"math"
)

const (
	// g0 is the standard gravitational acceleration used by the atmosphere
	// model definition.
	g0 = 9.80665 // [m/s^2]
	// rAir is the specific gas constant of air.
	rAir = 287.0 // [J/(kg K)]
	// γAir is the heat capacity ratio of air.
	γAir = 1.4
	// AtmosphereCeiling is the top of the highest modeled layer. Higher
	// altitudes return an OutOfRangeError.
	AtmosphereCeiling = 86000.0 // [m]
)

// isaLayer defines one layer of the standard atmosphere.
type isaLayer struct {
	baseAltitude    float64 // [m]
	baseTemperature float64 // [K]
	basePressure    float64 // [Pa]
	lapseRate       float64 // [K/m]
}

// The seven layers up to 86 km. The base values of each layer equal the
// computed values at the top of the previous one, so temperature, pressure
// and density are continuous at every boundary.
var isaLayers = []isaLayer{
	{0, 288.15, 101325.0, -0.0065},
	{11000, 216.65, 22632.1, 0},
	{20000, 216.65, 5474.89, 0.001},
	{32000, 228.65, 868.019, 0.0028},
	{47000, 270.65, 110.906, 0},
	{51000, 270.65, 66.9389, -0.0028},
	{71000, 214.65, 3.95642, -0.002},
}

// AtmosphericState holds the standard atmosphere conditions at one altitude.
type AtmosphericState struct {
	Altitude    float64 // [m]
	Temperature float64 // [K]
	Pressure    float64 // [Pa]
	Density     float64 // [kg/m^3]
}

// String implements the Stringer interface.
func (s AtmosphericState) String() string {
	return fmt.Sprintf("h=%.0f m T=%.2f K P=%.2f Pa ρ=%.6f kg/m^3", s.Altitude, s.Temperature, s.Pressure, s.Density)
}

// Atmosphere returns the standard atmosphere state at the given altitude.
// Within a zero lapse rate layer the temperature is constant and the pressure
// decays exponentially; otherwise the temperature varies linearly and the
// pressure follows a power law in the temperature ratio. Density always
// derives from the ideal gas relation.
func Atmosphere(altitude float64) (AtmosphericState, error) {
	if altitude > AtmosphereCeiling {
		return AtmosphericState{}, &OutOfRangeError{altitude, AtmosphereCeiling}
	}
	// A boundary altitude belongs to the upper layer, so the state at every
	// boundary is exactly the base values of that layer.
	layer := isaLayers[0]
	for _, next := range isaLayers[1:] {
		if altitude < next.baseAltitude {
			break
		}
		layer = next
	}
	temp := layer.baseTemperature + layer.lapseRate*(altitude-layer.baseAltitude)
	var press float64
	if layer.lapseRate == 0 {
		press = layer.basePressure * math.Exp(-g0*(altitude-layer.baseAltitude)/(rAir*temp))
	} else {
		press = layer.basePressure * math.Pow(temp/layer.baseTemperature, -g0/(layer.lapseRate*rAir))
	}
	return AtmosphericState{altitude, temp, press, press / (rAir * temp)}, nil
}

// SpeedOfSound returns the speed of sound in air at the given temperature.
func SpeedOfSound(temperature float64) float64 {
	return math.Sqrt(γAir * rAir * temperature)
}
