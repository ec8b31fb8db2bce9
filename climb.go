package sar

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ChristopherRabotin/ode"
)

const (
	// ClimbStep is the default step size of a climb propagation.
	ClimbStep = time.Second
	// minClimbRate is the rate under which the aircraft is considered unable to climb any further.
	minClimbRate = 0.1 // m/s
)

var wg sync.WaitGroup

/* Handles the time to climb propagations. */

// ClimbTable schedules the true airspeed and the total installed thrust
// against altitude, e.g. from published climb ratings.
type ClimbTable struct {
	Altitudes []float64 // m
	Speeds    []float64 // m/s
	Thrusts   []float64 // N, all engines combined
}

func (tb ClimbTable) validate() error {
	if len(tb.Altitudes) == 0 {
		return &ValidationError{Field: "climb table", Value: 0, Constraint: "must hold at least one altitude"}
	}
	if len(tb.Speeds) != len(tb.Altitudes) || len(tb.Thrusts) != len(tb.Altitudes) {
		return &ValidationError{Field: "climb table", Value: float64(len(tb.Altitudes)), Constraint: "must hold one speed and one thrust per altitude"}
	}
	return nil
}

// Drag returns the drag of the parabolic polar at the given density, true
// airspeed and mass, in N.
func (a *Aircraft) Drag(density, speed, mass float64) float64 {
	q := 0.5 * density * speed * speed
	weight := mass * gravity
	return a.CD0*q*a.WingArea + weight*weight/(q*a.WingArea*math.Pi*a.AspectRatio*a.OswaldFactor)
}

// ClimbRate returns the steady rate of climb at the given altitude and mass
// under the table's speed and thrust schedule, in m/s.
func (a *Aircraft) ClimbRate(altitude, mass float64, table ClimbTable) (float64, error) {
	amb, err := Atmosphere(altitude)
	if err != nil {
		return 0, err
	}
	speed := interp(altitude, table.Altitudes, table.Speeds)
	thrust := interp(altitude, table.Altitudes, table.Thrusts)
	return (thrust - a.Drag(amb.Density, speed, mass)) * speed / (mass * gravity), nil
}

// ClimbProfile defines a climb to a target altitude and does the propagation.
type ClimbProfile struct {
	Vehicle          *Aircraft // As pointer because the logger is shared with the cruise analyses.
	Table            ClimbTable
	Mass             float64 // kg, frozen over the climb
	Altitude, Target float64 // m
	Elapsed          time.Duration
	step             time.Duration
	rate             float64
	stopChan         chan (bool)
	histChan         chan<- (ClimbState)
	done             bool
}

// NewClimbProfile is the same as NewPreciseClimbProfile with the default step size.
func NewClimbProfile(vehicle *Aircraft, table ClimbTable, mass, start, target float64, conf ExportConfig) (*ClimbProfile, error) {
	return NewPreciseClimbProfile(vehicle, table, mass, start, target, ClimbStep, conf)
}

// NewPreciseClimbProfile returns a new ClimbProfile instance with a custom provided time step.
func NewPreciseClimbProfile(vehicle *Aircraft, table ClimbTable, mass, start, target float64, step time.Duration, conf ExportConfig) (*ClimbProfile, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	if target <= start {
		return nil, &ValidationError{Field: "target altitude", Value: target, Constraint: fmt.Sprintf("must lie above the start altitude of %v m", start)}
	}
	rate, err := vehicle.ClimbRate(start, mass, table)
	if err != nil {
		return nil, err
	}
	// If no export is requested, then no output will be written.
	var histChan chan (ClimbState)
	if !conf.IsUseless() {
		histChan = make(chan (ClimbState), 1000) // a 1k entry buffer
		wg.Add(1)
		go func() {
			defer wg.Done()
			StreamClimbStates(conf, histChan)
		}()
	} else {
		histChan = nil
	}
	cl := &ClimbProfile{vehicle, table, mass, start, target, 0, step, rate, make(chan (bool), 1), histChan, false}
	// Write the first data point.
	if histChan != nil {
		histChan <- ClimbState{0, start, rate}
	}
	if rate < minClimbRate {
		vehicle.logger.Log("level", "warning", "subsys", "climb", "message", "no initial excess thrust")
	}
	return cl, nil
}

// LogStatus logs the altitude and rate of climb.
func (cl *ClimbProfile) LogStatus() {
	cl.Vehicle.logger.Log("level", "info", "subsys", "climb", "elapsed", cl.Elapsed, "altitude(m)", cl.Altitude, "rate(m/s)", cl.rate)
}

// Propagate starts the propagation.
func (cl *ClimbProfile) Propagate() {
	cl.LogStatus()
	ode.NewRK4(0, cl.step.Seconds(), cl).Solve() // Blocking.
	cl.done = true
	status := "reached"
	if cl.Altitude < cl.Target {
		status = "ceiling"
	}
	cl.Vehicle.logger.Log("level", "notice", "subsys", "climb", "status", status, "elapsed", cl.Elapsed, "altitude(m)", cl.Altitude, "rate(m/s)", cl.rate)
	wg.Wait() // Don't return until we're done writing all the files.
}

// StopPropagation is used to stop the propagation before the target altitude is reached.
func (cl *ClimbProfile) StopPropagation() {
	cl.stopChan <- true
}

// Stop implements the stop call of the integrator. To stop the propagation, call StopPropagation().
func (cl *ClimbProfile) Stop(t float64) bool {
	select {
	case <-cl.stopChan:
		if cl.histChan != nil {
			close(cl.histChan)
		}
		return true // Stop because there is a request to stop.
	default:
		if cl.Elapsed > 24*time.Hour {
			// A hard limit is set on a full day of climbing.
			cl.Vehicle.logger.Log("level", "critical", "subsys", "climb", "status", "killed")
			if cl.histChan != nil {
				close(cl.histChan)
			}
			return true
		}
		if cl.Altitude >= cl.Target {
			if cl.histChan != nil {
				close(cl.histChan)
			}
			return true // Stop, the target altitude is reached.
		}
		if cl.rate < minClimbRate {
			if cl.histChan != nil {
				close(cl.histChan)
			}
			return true // Stop, the aircraft is out of excess thrust.
		}
	}
	return false
}

// GetState returns the state of the climb for the integrator.
func (cl *ClimbProfile) GetState() []float64 {
	return []float64{cl.Altitude}
}

// SetState sets the updated state.
func (cl *ClimbProfile) SetState(t float64, s []float64) {
	cl.Elapsed = time.Duration(t * float64(time.Second))
	cl.Altitude = s[0]
	if cl.histChan != nil {
		cl.histChan <- ClimbState{cl.Elapsed, cl.Altitude, cl.rate}
	}
}

// Func is the climb rate differential equation.
func (cl *ClimbProfile) Func(t float64, f []float64) []float64 {
	rate, err := cl.Vehicle.ClimbRate(f[0], cl.Mass, cl.Table)
	if err != nil {
		// Above the atmosphere model, the climb is over.
		rate = 0
	}
	cl.rate = rate
	return []float64{rate}
}

// ClimbState stores a propagated climb state.
type ClimbState struct {
	Elapsed  time.Duration
	Altitude float64 // m
	Rate     float64 // m/s
}
