package main

import (
	"fmt"
	"os"
)

// Result stores a converged design point.
type Result struct {
	fuelMass        float64
	altitude        float64
	mtom            float64
	thrust          float64 // N, one engine
	t04             float64 // K
	sfc             float64 // kg/(N s)
	maxPayloadRange float64 // m
	ferryRange      float64 // m
}

// CSV returns the CSV of this result
func (r Result) CSV() string {
	return fmt.Sprintf("%f,%f,%f,%f,%f,%e,%f,%f", r.fuelMass, r.altitude, r.mtom, r.thrust, r.t04, r.sfc, r.maxPayloadRange/1e3, r.ferryRange/1e3)
}

// StreamResults is used to stream the results to the output file.
func StreamResults(prefix string, rsltChan <-chan (Result)) {
	f, err := os.Create(fmt.Sprintf("%s/%s-results.csv", outputdir, prefix))
	if err != nil {
		panic(err)
	}
	hdrs := "fuel(kg),altitude(m),mtom(kg),engineThrust(N),TIT(K),sfc(kg/Ns),maxPayloadRange(km),ferryRange(km)\n"
	if _, err := f.WriteString(hdrs); err != nil {
		panic(err)
	}
	for rslt := range rsltChan {
		f.WriteString(rslt.CSV() + "\n")
	}
	f.Close()
	fmt.Printf("Saving file to %s.\n", f.Name())
}
