package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	sar "github.com/liammegill/sustainable-aircraft-retrofit"
	"github.com/spf13/viper"
)

// This code effectively only reads the configuration file and runs the
// analysis of a single retrofit design.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "mission scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read aircraft
	emptyMass := viper.GetFloat64("aircraft.emptymass")
	tankVolume := viper.GetFloat64("aircraft.tankvolume")
	if tankVolume == 0 {
		tankVolume = sar.TankVolumeForFuel(viper.GetFloat64("aircraft.fuel"))
	}
	fractions := confReadFloats("aircraft.fractions")
	if len(fractions) == 0 {
		// Roskam's twin jet fractions, engine start through landing.
		fractions = []float64{0.990, 0.995, 0.995, 0.985, 0.990, 0.995}
	}
	a := sar.NewAircraft(sar.Aircraft{
		Name:               viper.GetString("aircraft.name"),
		PaxCount:           viper.GetInt("aircraft.pax"),
		CargoVolume:        viper.GetFloat64("aircraft.cargovolume"),
		WingArea:           viper.GetFloat64("aircraft.wingarea"),
		AspectRatio:        viper.GetFloat64("aircraft.aspectratio"),
		OswaldFactor:       viper.GetFloat64("aircraft.oswald"),
		CD0:                viper.GetFloat64("aircraft.cd0"),
		CruiseMach:         viper.GetFloat64("aircraft.mach"),
		CruiseAltitude:     viper.GetFloat64("aircraft.altitude"),
		LiftToDrag:         viper.GetFloat64("aircraft.lod"),
		TankVolume:         tankVolume,
		ReservePercent:     viper.GetFloat64("aircraft.reserve"),
		FuelFractions:      fractions,
		KeroseneEfficiency: viper.GetFloat64("aircraft.keroseneefficiency"),
		HydrogenEfficiency: viper.GetFloat64("aircraft.hydrogenefficiency"),
		EngineCount:        viper.GetInt("aircraft.engines"),
		FanDiameter:        viper.GetFloat64("aircraft.fandiameter"),
		Engine:             readEngine(),
	})
	a.OperatingEmptyMass = emptyMass + a.TankMass()
	log.Printf("[info] %s: MTOM %.1f kg (fuel %.1f kg, tanks %.1f kg)", a.Name, a.MTOM(), a.FuelMass(), a.TankMass())

	// Match the engines at mid cruise.
	sol, err := a.SolveCruise()
	if err != nil {
		log.Fatalf("cruise does not converge: %s", err)
	}

	// Ranges
	maxPayload, err := a.MaxPayloadRange(sol.SFC)
	if err != nil {
		log.Fatalf("max payload range: %s", err)
	}
	ferry, err := a.FerryRange(sol.SFC)
	if err != nil {
		log.Fatalf("ferry range: %s", err)
	}
	log.Printf("[info] max payload range: %.1f km", maxPayload.Range/1e3)
	log.Printf("[info] ferry range: %.1f km", ferry.Range/1e3)
	refName := viper.GetString("aircraft.reference")
	if len(refName) > 0 {
		ref, rerr := sar.ReferenceAircraftFromString(refName)
		if rerr != nil {
			log.Fatalf("%s", rerr)
		}
		for i, rng := range ref.PayloadRangeKm {
			log.Printf("[info] %s kerosene diagram: %.1f t @ %.0f km", ref.Name, ref.PayloadRangeT[i], rng)
		}
	}

	// Weight statement
	var items []sar.MassItem
	for itemNo := 0; viper.IsSet(fmt.Sprintf("masses.%d", itemNo)); itemNo++ {
		key := fmt.Sprintf("masses.%d", itemNo)
		items = append(items, sar.MassItem{
			Name:    viper.GetString(fmt.Sprintf("%s.name", key)),
			Mass:    viper.GetFloat64(fmt.Sprintf("%s.mass", key)),
			X:       viper.GetFloat64(fmt.Sprintf("%s.x", key)),
			Payload: viper.GetBool(fmt.Sprintf("%s.payload", key)),
		})
	}
	var groups []sar.VariableGroup
	for groupNo := 0; viper.IsSet(fmt.Sprintf("groups.%d", groupNo)); groupNo++ {
		key := fmt.Sprintf("groups.%d", groupNo)
		groups = append(groups, sar.VariableGroup{
			Name:        viper.GetString(fmt.Sprintf("%s.name", key)),
			UnitMass:    viper.GetFloat64(fmt.Sprintf("%s.unitmass", key)),
			PayloadMass: viper.GetFloat64(fmt.Sprintf("%s.payloadmass", key)),
			Counts:      viper.GetIntSlice(fmt.Sprintf("%s.counts", key)),
			Positions:   confReadFloats(fmt.Sprintf("%s.positions", key)),
		})
	}
	if len(items) > 0 {
		cg, cgerr := sar.Aggregate(items, groups)
		if cgerr != nil {
			log.Fatalf("weight statement: %s", cgerr)
		}
		log.Printf("[info] c.g. at %.2f m, %.1f kg total (OEM %.1f kg)", cg.CGX, cg.TotalMass, cg.OperatingEmptyMass)
		if mac := viper.GetFloat64("geometry.mac"); mac > 0 {
			log.Printf("[info] c.g. at %.1f%% MAC", sar.CGPercentMAC(cg.CGX, viper.GetFloat64("geometry.macstart"), mac))
		}
		if verbose && len(groups) > 0 {
			steps, serr := sar.LoadingExcursion(items, groups)
			if serr != nil {
				log.Fatalf("loading excursion: %s", serr)
			}
			for _, step := range steps {
				log.Printf("[info] loading %s: c.g. %.2f m at %.1f kg", step.Label, step.CGX, step.TotalMass)
			}
		}
	}

	// Climb
	if !viper.IsSet("climb.0") {
		return
	}
	var table sar.ClimbTable
	for rowNo := 0; viper.IsSet(fmt.Sprintf("climb.%d", rowNo)); rowNo++ {
		key := fmt.Sprintf("climb.%d", rowNo)
		table.Altitudes = append(table.Altitudes, viper.GetFloat64(fmt.Sprintf("%s.altitude", key)))
		table.Speeds = append(table.Speeds, viper.GetFloat64(fmt.Sprintf("%s.speed", key)))
		table.Thrusts = append(table.Thrusts, viper.GetFloat64(fmt.Sprintf("%s.thrust", key)))
	}
	mass := viper.GetFloat64("climb.mass")
	if mass == 0 {
		mass = a.MTOM()
	}
	start := viper.GetFloat64("climb.start")
	target := viper.GetFloat64("climb.target")
	if target == 0 {
		target = a.CruiseAltitude
	}
	export := sar.ExportConfig{}
	if viper.GetBool("export.csv") || viper.GetBool("export.summary") {
		filename := viper.GetString("export.filename")
		if len(filename) == 0 {
			filename = scenario
		}
		export = sar.ExportConfig{Filename: filename, AsCSV: viper.GetBool("export.csv"), Summary: viper.GetBool("export.summary"), Timestamp: viper.GetBool("export.timestamp")}
	}
	step := viper.GetDuration("climb.step")
	if verbose {
		log.Printf("[conf] climb step: %s\n", step)
	}
	var cl *sar.ClimbProfile
	var clerr error
	if step > 0 {
		cl, clerr = sar.NewPreciseClimbProfile(a, table, mass, start, target, step, export)
	} else {
		cl, clerr = sar.NewClimbProfile(a, table, mass, start, target, export)
	}
	if clerr != nil {
		log.Fatalf("climb: %s", clerr)
	}
	cl.Propagate()
}

// readEngine returns the turbomachinery of one engine from the scenario.
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
