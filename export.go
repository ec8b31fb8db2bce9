package sar

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ClimbSummary condenses a full climb history into a handful of figures.
type ClimbSummary struct {
	Aircraft      string  `json:"aircraft"`
	StartAltitude float64 `json:"startAltitude"`
	FinalAltitude float64 `json:"finalAltitude"`
	Duration      string  `json:"duration"`
	Seconds       float64 `json:"seconds"`
	MeanRate      float64 `json:"meanRate"`
	Samples       int     `json:"samples"`
}

// createClimbCSVFile returns a file which requires a defer close statement!
func createClimbCSVFile(conf ExportConfig) *os.File {
	config := sarConfig()
	var filename string
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/climb-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", config.outputDir, conf.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/climb-%s.csv", config.outputDir, conf.Filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are time, altitude and rate of climb.
time(s),altitude(m),rate(m/s)`, time.Now().UTC()))
	if conf.CSVAppendHdr != nil {
		// Append the headers for the appended columns.
		f.WriteString("," + conf.CSVAppendHdr())
	}
	return f
}

// StreamClimbStates streams the output of the channel to CSV and, on closing,
// optionally writes a JSON summary of the whole climb.
func StreamClimbStates(conf ExportConfig, stateChan <-chan (ClimbState)) {
	var firstState, lastState ClimbState
	var started bool
	var f *os.File
	var rateSum float64
	var samples int
	defer func() {
		if conf.AsCSV && f != nil {
			f.Close()
		}
		if !conf.Summary || !started {
			return
		}
		summary := ClimbSummary{
			Aircraft:      conf.Filename,
			StartAltitude: firstState.Altitude,
			FinalAltitude: lastState.Altitude,
			Duration:      lastState.Elapsed.String(),
			Seconds:       lastState.Elapsed.Seconds(),
			MeanRate:      rateSum / float64(samples),
			Samples:       samples,
		}
		fc, err := os.Create(fmt.Sprintf("%s/climb-%s.json", sarConfig().outputDir, conf.Filename))
		if err != nil {
			panic(err)
		}
		defer fc.Close()
		fmt.Printf("Saving file to %s.\n", fc.Name())
		if marsh, err := json.Marshal(summary); err != nil {
			panic(err)
		} else {
			fc.Write(marsh)
		}
	}()

	for {
		state, more := <-stateChan
		if !more {
			break
		}
		if !started {
			started = true
			firstState = state
			if conf.AsCSV {
				f = createClimbCSVFile(conf)
			}
		}
		lastState = state
		rateSum += state.Rate
		samples++
		if conf.AsCSV {
			asTxt := fmt.Sprintf("\n%f,%f,%f", state.Elapsed.Seconds(), state.Altitude, state.Rate)
			if conf.CSVAppend != nil {
				asTxt += "," + conf.CSVAppend(state)
			}
			if _, err := f.WriteString(asTxt); err != nil {
				panic(err)
			}
		}
	}
}

// ExportConfig configures the exporting of a propagation.
type ExportConfig struct {
	Filename     string
	AsCSV        bool
	Summary      bool
	Timestamp    bool
	CSVAppend    func(st ClimbState) string // Custom export (do not include leading comma)
	CSVAppendHdr func() string              // Header for the custom export
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.Summary
}
