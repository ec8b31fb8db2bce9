package sar

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func TestStreamClimbStates(t *testing.T) {
	cfgLoaded = true
	config = _sarconfig{outputDir: t.TempDir()}
	conf := ExportConfig{Filename: "teststream", AsCSV: true, Summary: true}
	stateChan := make(chan (ClimbState), 100)
	wg.Add(1)
	go func() {
		defer wg.Done()
		StreamClimbStates(conf, stateChan)
	}()
	for i := 0; i <= 10; i++ {
		stateChan <- ClimbState{Elapsed: time.Duration(i) * time.Second, Altitude: float64(100 * i), Rate: 100}
	}
	close(stateChan)
	wg.Wait()

	csvData, err := os.ReadFile(config.outputDir + "/climb-teststream.csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	// Two comment lines, one header line and eleven records.
	if len(lines) != 14 {
		t.Fatalf("expected 14 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[2], "time(s),altitude(m),rate(m/s)") {
		t.Fatalf("header line %q", lines[2])
	}

	jsonData, err := os.ReadFile(config.outputDir + "/climb-teststream.json")
	if err != nil {
		t.Fatal(err)
	}
	var summary ClimbSummary
	if err = json.Unmarshal(jsonData, &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Samples != 11 {
		t.Fatalf("summary holds %d samples", summary.Samples)
	}
	if summary.StartAltitude != 0 || summary.FinalAltitude != 1000 {
		t.Fatalf("summary altitudes %f to %f", summary.StartAltitude, summary.FinalAltitude)
	}
	if summary.MeanRate != 100 || summary.Seconds != 10 {
		t.Fatalf("summary %+v", summary)
	}
}

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("an empty export config should be useless")
	}
	if (ExportConfig{AsCSV: true}).IsUseless() {
		t.Fatal("a CSV export config is not useless")
	}
	if (ExportConfig{Summary: true}).IsUseless() {
		t.Fatal("a summary export config is not useless")
	}
}
