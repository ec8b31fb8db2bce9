package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync"

	sar "github.com/liammegill/sustainable-aircraft-retrofit"
	"github.com/spf13/viper"
)

const defaultScenario = "~~unset~~"

var (
	wg         sync.WaitGroup
	strWG      sync.WaitGroup
	scenario   string
	prefix     string
	outputdir  string
	numCPUs    int
	ultraDebug bool
	design     Design
	sweep      Sweep
	cpuChan    chan (bool)
	rsltChan   chan (Result)
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "designer scenario TOML file")
	flag.IntVar(&numCPUs, "cpus", -1, "number of CPUs to use (set to 0 for max CPUs)")
	flag.BoolVar(&ultraDebug, "debug", false, "debug everything (really verbose)")
}

func main() {
	// Read the configuration file.
	flag.Parse()
	if ultraDebug {
		log.Println("[info] DEBUG is ON")
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	// End profiling
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	availableCPUs := runtime.NumCPU()
	if numCPUs <= 0 || numCPUs > availableCPUs {
		numCPUs = availableCPUs
	}
	runtime.GOMAXPROCS(numCPUs)
	log.Printf("[info] running on %d CPUs\n", numCPUs)

	cpuChan = make(chan (bool), numCPUs)
	// Load scenario
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}
	// Read scenario
	prefix = viper.GetString("general.fileprefix")
	outputdir = viper.GetString("general.outputdir")
	if len(outputdir) == 0 {
		outputdir = "./"
	}
	verbose := viper.GetBool("general.verbose")
	if verbose {
		log.Printf("[conf] file prefix: %s\n", prefix)
		log.Printf("[conf] file output: %s\n", outputdir)
	}

	design = readAircraft()
	design.base.Engine = readEngine()
	sweep = readSweep()

	if verbose {
		log.Printf("[conf] Aircraft: %s", design)
		log.Printf("[conf] Sweep: %s", sweep)
	}

	// Starting the streamer
	rsltChan = make(chan (Result), 10) // Buffered to not loose any data.
	strWG.Add(1)
	go func() {
		defer strWG.Done()
		StreamResults(prefix, rsltChan)
	}()

	// Let's do the magic.
	points := 0
	for _, altitude := range sweep.altitudes {
		for fuel := sweep.fuelFrom; fuel <= sweep.fuelUntil; fuel += sweep.fuelStep {
			cpuChan <- true
			wg.Add(1)
			go solvePoint(design, fuel, altitude)
			points++
		}
	}
	log.Printf("[info] all %d design points started", points)
	wg.Wait()
	close(rsltChan)
	strWG.Wait()
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
	log.Println("[info] Done")
}

// solvePoint sizes the tanks for one fuel load, matches the engine to the mid
// cruise thrust at the given altitude and estimates the ranges.
func solvePoint(d Design, fuelMass, altitude float64) {
	// All done, let's free that CPU.
	defer func() { wg.Done(); <-cpuChan }()
	a := d.base
	a.CruiseAltitude = altitude
	a.TankVolume = sar.TankVolumeForFuel(fuelMass)
	a.OperatingEmptyMass = d.emptyMass + a.TankMass()
	thrust, err := a.CruiseThrustRequired()
	if err != nil {
		if ultraDebug {
			log.Printf("[NOK ] %.0f kg @ %.0f m: %s", fuelMass, altitude, err)
		}
		return
	}
	op, err := a.CruiseCycle(thrust)
	if err != nil {
		if ultraDebug {
			log.Printf("[NOK ] %.0f kg @ %.0f m: %s", fuelMass, altitude, err)
		}
		return
	}
	sol, err := sar.SolveCycle(op)
	if err != nil {
		if ultraDebug {
			log.Printf("[NOK ] %.0f kg @ %.0f m: %s", fuelMass, altitude, err)
		}
		return
	}
	maxPayload, err := a.MaxPayloadRange(sol.SFC)
	if err != nil {
		if ultraDebug {
			log.Printf("[NOK ] %.0f kg @ %.0f m: %s", fuelMass, altitude, err)
		}
		return
	}
	ferry, err := a.FerryRange(sol.SFC)
	if err != nil {
		if ultraDebug {
			log.Printf("[NOK ] %.0f kg @ %.0f m: %s", fuelMass, altitude, err)
		}
		return
	}
	rsltChan <- Result{fuelMass, altitude, a.MTOM(), op.Thrust, sol.T04, sol.SFC, maxPayload.Range, ferry.Range}
	if ultraDebug {
		log.Printf("[ ok ] %.0f kg @ %.0f m", fuelMass, altitude)
	}
}
