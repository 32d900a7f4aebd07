// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// TimeStepping is spec §6's `TimeStepping` section: the time interval, the
// Δt-selection strategy (exactly one of NumTimeSteps, TimeStepSize, CFL),
// and the stepper scheme name consumed by package stepper's New.
type TimeStepping struct {
	InitialTime float64 `json:"InitialTime"`
	FinalTime   float64 `json:"FinalTime"`

	NumTimeSteps int     `json:"NumTimeSteps"`
	TimeStepSize float64 `json:"TimeStepSize"`
	CFL          float64 `json:"CFL"`

	TimeStepper string `json:"TimeStepper"` // FE, RK4, LSRK4, SSPRK3, ADER

	OperatorSplittingExp bool `json:"OperatorSplitting_Exp"`
	OperatorSplittingImp bool `json:"OperatorSplitting_Imp"`
}

var timeSteppers = map[string]bool{
	"FE": true, "RK4": true, "LSRK4": true, "SSPRK3": true, "ADER": true,
}

// SetDefault mirrors inp/sim.go's SolverData.SetDefault: plain zero-value
// defaults for the numeric fields, RK4 as the non-exotic stepper default.
func (t *TimeStepping) SetDefault() {
	t.TimeStepper = "RK4"
}

// Validate enforces spec §6's "exactly one of NumTimeSteps, TimeStepSize,
// CFL" and that TimeStepper names a registered stepper.Scheme.
func (t *TimeStepping) Validate() error {
	if t.FinalTime <= t.InitialTime {
		return configErrf("TimeStepping.FinalTime (%g) must exceed InitialTime (%g)", t.FinalTime, t.InitialTime)
	}
	n := 0
	if t.NumTimeSteps > 0 {
		n++
	}
	if t.TimeStepSize > 0 {
		n++
	}
	if t.CFL > 0 {
		n++
	}
	if n != 1 {
		return configErrf("TimeStepping requires exactly one of NumTimeSteps, TimeStepSize, CFL to be set, got %d", n)
	}
	if !timeSteppers[t.TimeStepper] {
		return configErrf("TimeStepping.TimeStepper %q is not one of FE, RK4, LSRK4, SSPRK3, ADER", t.TimeStepper)
	}
	if t.OperatorSplittingImp && t.TimeStepper != "ADER" {
		return configErrf("OperatorSplitting_Imp is only meaningful with TimeStepper=ADER's implicit source half")
	}
	return nil
}
