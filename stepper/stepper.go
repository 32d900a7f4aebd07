// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stepper implements spec §4.7's time-advancement schemes (FE, RK4,
// LSRK4, SSPRK3, ADER) over a dgop.Operator's spatial residual, mirroring
// the teacher's fem/solver.go time loop (Δt selection, last-step truncation
// to land exactly on the final time) lifted out of its Newton-iteration
// driver into a standalone, registry-selected collaborator -- the teacher
// never separates "how time advances" from "how the nonlinear system is
// solved at each step" the way an explicit DG code must.
package stepper

import "github.com/gofem-dg/dgfem/dgop"

// Limiter is applied to a freshly advanced state, per spec §4.8; it is
// invoked either once per step or once per stage according to each scheme's
// LimitEachStage setting.
type Limiter func(op *dgop.Operator, U []dgop.ElemState) []dgop.ElemState

// Scheme advances the coefficient state across one step of size dt starting
// at time t.
type Scheme interface {
	Name() string
	Step(op *dgop.Operator, U []dgop.ElemState, t, dt float64) ([]dgop.ElemState, error)
}

var allocators = map[string]func() Scheme{
	"FE":     func() Scheme { return &FE{} },
	"RK4":    func() Scheme { return &RK4{} },
	"LSRK4":  func() Scheme { return &LSRK4{} },
	"SSPRK3": func() Scheme { return &SSPRK3{} },
	"ADER":   func() Scheme { return &ADER{} },
}

// UnsupportedError is returned for an unrecognized TimeStepper name.
type UnsupportedError struct{ Msg string }

func (e *UnsupportedError) Error() string { return "unsupported: " + e.Msg }

// New allocates a fresh Scheme by its `TimeStepping.TimeStepper` configuration
// name.
func New(name string) (Scheme, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, &UnsupportedError{Msg: "unknown time stepper " + name}
	}
	return alloc(), nil
}

// PlanSteps implements spec §4.7's Δt-selection rule: if dt is given
// directly it is used as-is (with the final step truncated to land exactly
// on finalTime); otherwise it is derived from numSteps over
// [initialTime, finalTime]. CFL-derived Δt (spec's third option) is left to
// the caller, which alone knows λ_max and h_min; PlanSteps still performs the
// resulting NumTimeSteps = ceil((finalTime-initialTime)/dt) count and
// last-step truncation once a candidate dt is in hand.
func PlanSteps(initialTime, finalTime, dt float64) []float64 {
	if dt <= 0 {
		return nil
	}
	var steps []float64
	t := initialTime
	for t < finalTime {
		step := dt
		if t+step >= finalTime {
			step = finalTime - t
		}
		steps = append(steps, step)
		t += step
	}
	return steps
}

// CFLTimeStep implements spec §4.7's CFL formula:
// Δt = CFL · h_min / (λ_max · (2p+1)).
func CFLTimeStep(cfl, hMin, lambdaMax float64, solutionOrder int) float64 {
	if lambdaMax <= 0 {
		return 0
	}
	return cfl * hMin / (lambdaMax * float64(2*solutionOrder+1))
}
