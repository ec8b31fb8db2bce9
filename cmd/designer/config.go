package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	sar "github.com/liammegill/sustainable-aircraft-retrofit"
	"github.com/spf13/viper"
)

// roskamFractions are the default twin jet segment fractions, engine start
// through landing, used when the scenario does not provide its own.
var roskamFractions = []float64{0.990, 0.995, 0.995, 0.985, 0.990, 0.995}

// Design is the baseline aircraft of the sweep. The empty mass excludes the
// hydrogen tanks, which are sized per design point.
type Design struct {
	base      sar.Aircraft
	emptyMass float64
}

func (d Design) String() string {
	return fmt.Sprintf("%s: %.0f kg empty (no tanks)\t%d pax\tS=%.1f m^2\tM%.2f", d.base.Name, d.emptyMass, d.base.PaxCount, d.base.WingArea, d.base.CruiseMach)
}

// Sweep is the design space grid.
type Sweep struct {
	fuelFrom, fuelUntil, fuelStep float64
	altitudes                     []float64
}

func (s Sweep) String() string {
	return fmt.Sprintf("fuel: %.0f -> %.0f kg by %.0f kg over %d altitude(s)", s.fuelFrom, s.fuelUntil, s.fuelStep, len(s.altitudes))
}

func readAircraft() Design {
	key := "aircraft"
	fractions := confReadFloats(fmt.Sprintf("%s.fractions", key))
	if len(fractions) == 0 {
		fractions = roskamFractions
	}
	base := sar.Aircraft{
		Name:               viper.GetString(fmt.Sprintf("%s.name", key)),
		PaxCount:           viper.GetInt(fmt.Sprintf("%s.pax", key)),
		CargoVolume:        viper.GetFloat64(fmt.Sprintf("%s.cargovolume", key)),
		WingArea:           viper.GetFloat64(fmt.Sprintf("%s.wingarea", key)),
		AspectRatio:        viper.GetFloat64(fmt.Sprintf("%s.aspectratio", key)),
		OswaldFactor:       viper.GetFloat64(fmt.Sprintf("%s.oswald", key)),
		CD0:                viper.GetFloat64(fmt.Sprintf("%s.cd0", key)),
		CruiseMach:         viper.GetFloat64(fmt.Sprintf("%s.mach", key)),
		CruiseAltitude:     viper.GetFloat64(fmt.Sprintf("%s.altitude", key)),
		LiftToDrag:         viper.GetFloat64(fmt.Sprintf("%s.lod", key)),
		ReservePercent:     viper.GetFloat64(fmt.Sprintf("%s.reserve", key)),
		FuelFractions:      fractions,
		KeroseneEfficiency: viper.GetFloat64(fmt.Sprintf("%s.keroseneefficiency", key)),
		HydrogenEfficiency: viper.GetFloat64(fmt.Sprintf("%s.hydrogenefficiency", key)),
		EngineCount:        viper.GetInt(fmt.Sprintf("%s.engines", key)),
		FanDiameter:        viper.GetFloat64(fmt.Sprintf("%s.fandiameter", key)),
	}
	if base.WingArea <= 0 {
		log.Fatalf("`%s.wingarea` is required", key)
	}
	if base.EngineCount <= 0 {
		log.Fatalf("`%s.engines` is required", key)
	}
	emptyMass := viper.GetFloat64(fmt.Sprintf("%s.emptymass", key))
	if emptyMass <= 0 {
		log.Fatalf("`%s.emptymass` is required", key)
	}
	return Design{base, emptyMass}
}

// readEngine returns the turbomachinery of one engine. The flight condition
// fields stay zero until the cruise analysis fills them in.
func readEngine() sar.CycleOperatingPoint {
	preset := strings.ToLower(viper.GetString("engine.preset"))
	switch preset {
	case "", "hydrogenleap", "h2leap":
		return sar.HydrogenLEAP(0, 0, 0, 0)
	case "custom":
		deck := sar.CycleOperatingPoint{
			BypassRatio:            viper.GetFloat64("engine.bpr"),
			InletPressureRatio:     viper.GetFloat64("engine.inletpr"),
			FanCorePressureRatio:   viper.GetFloat64("engine.fanpr"),
			FanDuctPressureRatio:   viper.GetFloat64("engine.fanpr"),
			LPCPressureRatio:       viper.GetFloat64("engine.lpcpr"),
			HPCPressureRatio:       viper.GetFloat64("engine.hpcpr"),
			CombustorPressureRatio: viper.GetFloat64("engine.combpr"),
			FanCoreEfficiency:      viper.GetFloat64("engine.faneff"),
			FanDuctEfficiency:      viper.GetFloat64("engine.faneff"),
			LPCEfficiency:          viper.GetFloat64("engine.lpceff"),
			HPCEfficiency:          viper.GetFloat64("engine.hpceff"),
			HPTEfficiency:          viper.GetFloat64("engine.hpteff"),
			LPTEfficiency:          viper.GetFloat64("engine.lpteff"),
			MechanicalEfficiency:   viper.GetFloat64("engine.mecheff"),
			CombustionEfficiency:   viper.GetFloat64("engine.combeff"),
			NozzleEfficiency:       viper.GetFloat64("engine.nozzleeff"),
			FuelHeatingValue:       viper.GetFloat64("engine.lhv"),
		}
		// A fan with distinct core and duct stages overrides the tied keys.
		if viper.IsSet("engine.fancorepr") {
			deck.FanCorePressureRatio = viper.GetFloat64("engine.fancorepr")
			deck.FanDuctPressureRatio = viper.GetFloat64("engine.fanductpr")
		}
		if viper.IsSet("engine.fancoreeff") {
			deck.FanCoreEfficiency = viper.GetFloat64("engine.fancoreeff")
			deck.FanDuctEfficiency = viper.GetFloat64("engine.fanducteff")
		}
		return deck
	default:
		log.Fatalf("could not understand engine preset `%s`", preset)
	}
	return sar.CycleOperatingPoint{}
}

func readSweep() Sweep {
	key := "sweep"
	s := Sweep{
		fuelFrom:  viper.GetFloat64(fmt.Sprintf("%s.fuelfrom", key)),
		fuelUntil: viper.GetFloat64(fmt.Sprintf("%s.fueluntil", key)),
		fuelStep:  viper.GetFloat64(fmt.Sprintf("%s.fuelstep", key)),
		altitudes: confReadFloats(fmt.Sprintf("%s.altitudes", key)),
	}
	if s.fuelStep <= 0 {
		log.Fatalf("`%s.fuelstep` must be positive", key)
	}
	if s.fuelUntil < s.fuelFrom {
		log.Fatalf("`%s.fueluntil` must not be below `%s.fuelfrom`", key, key)
	}
	if len(s.altitudes) == 0 {
		// Single altitude sweep at the baseline cruise altitude.
		s.altitudes = []float64{viper.GetFloat64("aircraft.altitude")}
	}
	return s
}

func confReadFloats(key string) []float64 {
	vals := viper.GetStringSlice(key)
	floats := make([]float64, len(vals))
	for i, val := range vals {
		f, perr := strconv.ParseFloat(val, 64)
		if perr != nil {
			log.Fatalf("could not understand `%s` in `%s`", val, key)
		}
		floats[i] = f
	}
	return floats
}
