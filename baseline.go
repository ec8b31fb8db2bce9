package sar

import (
	"fmt"
	"strings"
)

/* Published data of the kerosene baseline aircraft used for comparisons. */

const (
	ftToM = 0.3048
	// Seat and container masses of the cabin layout.
	pilotSeatMass      = 60.0  // kg
	firstClassSeatMass = 10.0  // kg
	economySeatMass    = 11.0  // kg
	containerMass      = 274.0 // kg, empty AKH container
)

// ReferenceAircraft holds published payload range and climb performance data
// of a kerosene powered baseline.
type ReferenceAircraft struct {
	Name string
	// Payload range diagram, range in km against payload in tonnes.
	PayloadRangeKm []float64
	PayloadRangeT  []float64
	// Climb rates in ft/min against pressure altitude in ft at three gross
	// masses, with the scheduled true airspeed in m/s.
	ClimbAltitudesFt []float64
	ClimbRateLow     []float64
	ClimbRateNominal []float64 // 62.0 t
	ClimbRateHigh    []float64 // 73.5 t
	ClimbSpeeds      []float64
}

// ClimbAltitudes returns the published climb altitudes in m.
func (r ReferenceAircraft) ClimbAltitudes() []float64 {
	alts := make([]float64, len(r.ClimbAltitudesFt))
	for i, ft := range r.ClimbAltitudesFt {
		alts[i] = ft * ftToM
	}
	return alts
}

// ClimbRateAt returns one of the published climb rate lines of this aircraft
// interpolated at the given altitude in m, converted to m/s.
func (r ReferenceAircraft) ClimbRateAt(altitude float64, rates []float64) float64 {
	return interp(altitude, r.ClimbAltitudes(), rates) * ftToM / 60
}

// ClimbSpeedAt returns the scheduled true airspeed at the given altitude in m/s.
func (r ReferenceAircraft) ClimbSpeedAt(altitude float64) float64 {
	return interp(altitude, r.ClimbAltitudes(), r.ClimbSpeeds)
}

// A320 is the Airbus A320-200 which the hydrogen retrofit starts from.
var A320 = ReferenceAircraft{
	Name:             "A320",
	PayloadRangeKm:   []float64{0, 3800, 6150, 7600},
	PayloadRangeT:    []float64{19, 19, 13.5, 0},
	ClimbAltitudesFt: []float64{0, 2000, 3000, 4000, 6000, 8000, 10000, 14000, 18000, 22000, 26000, 30000, 32000, 34000, 36000, 38000, 40000},
	ClimbRateLow:     []float64{2180, 2230, 2620, 3100, 3690, 3540, 3390, 3060, 2650, 2220, 1770, 1880, 1690, 1480, 1250, 940, 710},
	ClimbRateNominal: []float64{2140, 2160, 2450, 2800, 3010, 2880, 2750, 2490, 2130, 1740, 1350, 1360, 1170, 970, 750, 470, 240},
	ClimbRateHigh:    []float64{1890, 1890, 2140, 2440, 2520, 2400, 2270, 2070, 1740, 1390, 1030, 950, 750, 540, 320, 70, 0},
	ClimbSpeeds:      []float64{80.8, 85.9, 97.7, 115.7, 139.9, 144.0, 148.7, 188.3, 199.6, 211.9, 225.3, 236.1, 234.1, 232.0, 230.0, 230.0, 230.0},
}

// A318 is the Airbus A318-100, payload range data only.
var A318 = ReferenceAircraft{
	Name:           "A318",
	PayloadRangeKm: []float64{0, 3700, 6000, 7100},
	PayloadRangeT:  []float64{14.7, 14.7, 9, 0},
}

// ReferenceAircraftFromString returns the reference aircraft associated to the given name.
func ReferenceAircraftFromString(name string) (ReferenceAircraft, error) {
	switch strings.ToLower(name) {
	case "a320":
		return A320, nil
	case "a318":
		return A318, nil
	default:
		return ReferenceAircraft{}, fmt.Errorf("undefined reference aircraft '%s'", name)
	}
}

// ObertPositions locates the component groups along the fuselage, in m from the nose.
type ObertPositions struct {
	MainWing, HorzTail, VertTail float64
	Fuselage                     float64 // also carries the operational items
	WingBox                      float64 // bleed air, fuel, hydraulic and air conditioning systems, main gear
	NoseBox                      float64 // avionics bay
	NoseGear, APU                float64
	Engines, Pylons              float64
	Pilots                       float64
	ForwardTank, AftTank         float64
}

// ObertStatement assembles the A320 component mass statement from the data of
// Obert, Aerodynamic Design of Transport Aircraft, with the hydrogen tanks and
// the retrofit cabin layout. Feed Items and Groups to Aggregate.
type ObertStatement struct {
	Positions         ObertPositions
	ForwardTankMass   float64   // structure, kg
	ForwardFuelMass   float64   // kg
	AftTankMass       float64   // structure, kg
	AftFuelMass       float64   // kg
	FirstClassRows    []float64 // x of each seat row, m
	FirstClassAbreast int
	EconomyRows       []float64
	EconomyAbreast    int
	ContainerXs       []float64
	ContainerVolume   float64 // m³ per container
}

// Items returns the located fixed masses of the statement.
func (st ObertStatement) Items() []MassItem {
	pos := st.Positions
	return []MassItem{
		{"main wing", 8801, pos.MainWing, false},
		{"horizontal tail", 625, pos.HorzTail, false},
		{"vertical tail", 463, pos.VertTail, false},
		{"fuselage", 8938, pos.Fuselage, false},
		{"operational items", 29 + 3712, pos.Fuselage, false}, // engine controls and the unlocated equipment
		{"bleed air system", 249, pos.WingBox, false},
		{"main landing gear", 0.85 * 2275, pos.WingBox, false},
		{"nose landing gear", 0.15 * 2275, pos.NoseGear, false},
		{"fuel system", 299, pos.WingBox, false},
		{"hydraulics", 547 + 319, pos.WingBox, false},
		{"air conditioning", 664, pos.WingBox, false},
		{"APU", 223, pos.APU, false},
		{"navigation system", 415, pos.NoseBox, false},
		{"communications", 186, pos.NoseBox, false},
		{"flight controls", 772, pos.NoseBox, false},
		{"electric generation", 343, pos.NoseBox, false},
		{"electric distribution", 1032, pos.NoseBox, false},
		{"autopilot", 101, pos.NoseBox, false},
		{"engines", 6621, pos.Engines, false},
		{"pylons", 907, pos.Pylons, false},
		{"pilots and seats", 2 * (personMass + pilotSeatMass), pos.Pilots, false},
		{"forward tank", st.ForwardTankMass, pos.ForwardTank, false},
		{"forward fuel", st.ForwardFuelMass, pos.ForwardTank, true},
		{"aft tank", st.AftTankMass, pos.AftTank, false},
		{"aft fuel", st.AftFuelMass, pos.AftTank, true},
	}
}

// Groups returns the seat rows and cargo containers of the statement.
func (st ObertStatement) Groups() []VariableGroup {
	groups := []VariableGroup{}
	if len(st.FirstClassRows) > 0 {
		counts := make([]int, len(st.FirstClassRows))
		for i := range counts {
			counts[i] = st.FirstClassAbreast
		}
		groups = append(groups, VariableGroup{
			Name:        "first class row",
			UnitMass:    personMass + firstClassSeatMass,
			PayloadMass: personMass,
			Counts:      counts,
			Positions:   st.FirstClassRows,
		})
	}
	if len(st.EconomyRows) > 0 {
		counts := make([]int, len(st.EconomyRows))
		for i := range counts {
			counts[i] = st.EconomyAbreast
		}
		groups = append(groups, VariableGroup{
			Name:        "economy row",
			UnitMass:    personMass + economySeatMass,
			PayloadMass: personMass,
			Counts:      counts,
			Positions:   st.EconomyRows,
		})
	}
	if len(st.ContainerXs) > 0 {
		counts := make([]int, len(st.ContainerXs))
		for i := range counts {
			counts[i] = 1
		}
		unit := containerMass + cargoDensity*st.ContainerVolume
		groups = append(groups, VariableGroup{
			Name:        "cargo container",
			UnitMass:    unit,
			PayloadMass: unit,
			Counts:      counts,
			Positions:   st.ContainerXs,
		})
	}
	return groups
}
