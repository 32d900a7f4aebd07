// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gofem-dg/dgfem/config"
)

// periodicScalarConfig builds a minimal but complete Config: a 4-element
// periodic segment mesh over [0,1], constant-velocity advection, a
// piecewise-constant ("ConstantState") initial condition, FE quadrature
// wide enough for the solution order, and a fixed number of RK4 steps --
// the same kind of small worked case original_source's scalar/1D examples
// use to smoke-test a configuration end to end.
func periodicScalarConfig() *config.Config {
	c := &config.Config{}
	c.SetDefault()
	c.Mesh = config.Mesh{
		ElementShape:        "segment",
		NumElemsX:           4,
		Xmin:                0,
		Xmax:                1,
		PeriodicBoundariesX: true,
	}
	c.Physics = config.Physics{Type: "ConstAdvScalar", ConvFluxNumerical: "LaxFriedrichs", ConstVelocity: 1}
	c.Numerics = config.Numerics{
		SolutionOrder:     2,
		SolutionBasis:     "LagrangeSeg",
		ElementQuadrature: 4,
		FaceQuadrature:    4,
		NodeType:          "GaussLobatto",
		ConvFluxSwitch:    true,
	}
	c.InitialCondition = config.FuncSpec{Type: "ConstantState", Params: []config.Param{{Name: "U0", Value: 1.0}}}
	c.TimeStepping = config.TimeStepping{InitialTime: 0, FinalTime: 0.1, NumTimeSteps: 5, TimeStepper: "RK4"}
	return c
}

// TestBuildAssemblesAnOperatorOfTheRequestedShape checks that Build wires a
// Driver whose Operator reports the mesh/physics/basis combination the
// Config actually named.
func TestBuildAssemblesAnOperatorOfTheRequestedShape(t *testing.T) {
	chk.PrintTitle("solver.Build assembles an Operator matching the Config")
	cfg := periodicScalarConfig()
	d, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d.Op.NumElements() != 4 {
		t.Fatalf("expected 4 elements, got %d", d.Op.NumElements())
	}
	if d.Op.NumStateVars() != 1 {
		t.Fatalf("expected 1 state var for ConstAdvScalar, got %d", d.Op.NumStateVars())
	}
	if d.Op.Physics.Name() != "ConstAdvScalar" {
		t.Fatalf("expected ConstAdvScalar physics, got %s", d.Op.Physics.Name())
	}
	if d.T != cfg.TimeStepping.InitialTime {
		t.Fatalf("expected initial time %g, got %g", cfg.TimeStepping.InitialTime, d.T)
	}
	io.Pfgreen("OK\n")
}

// TestRunOnAPeriodicConstantStateLeavesTheSolutionUnchanged advects a
// spatially-uniform state around a periodic ring: since the flux divergence
// of a constant is exactly zero everywhere, every scheme's update should
// leave U bit-for-bit (to rounding) where it started, regardless of how
// many steps are taken -- the same invariant stepper's own decayOperator
// fixture exploits for a closed-form answer without needing one.
func TestRunOnAPeriodicConstantStateLeavesTheSolutionUnchanged(t *testing.T) {
	chk.PrintTitle("advecting a uniform state around a periodic ring leaves U unchanged")
	cfg := periodicScalarConfig()
	d, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Run(nil); err != nil {
		t.Fatal(err)
	}
	if math.Abs(d.T-cfg.TimeStepping.FinalTime) > 1e-12 {
		t.Fatalf("expected final time %g, got %g", cfg.TimeStepping.FinalTime, d.T)
	}
	for e := range d.U {
		for a, coef := range d.U[e][0] {
			if math.Abs(coef-1.0) > 1e-8 {
				t.Fatalf("element %d coeff %d: expected 1.0, got %g", e, a, coef)
			}
		}
	}
	io.Pfgreen("OK\n")
}

// TestRunInvokesWriteOnEveryOutputIntervalPlusFinal checks the write-cadence
// gate: WriteInterval smaller than the run span should call write() more
// than once, and WriteFinalSolution should guarantee a call at t==FinalTime.
func TestRunInvokesWriteOnEveryOutputIntervalPlusFinal(t *testing.T) {
	chk.PrintTitle("Run invokes write() at each WriteInterval and at the final time")
	cfg := periodicScalarConfig()
	cfg.Output.WriteInterval = 0.04
	cfg.Output.WriteFinalSolution = true
	d, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	sawFinal := false
	err = d.Run(func(d *Driver) error {
		calls++
		if math.Abs(d.T-cfg.TimeStepping.FinalTime) < 1e-12 {
			sawFinal = true
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls < 2 {
		t.Fatalf("expected at least 2 write() calls over %d WriteInterval-sized windows, got %d", calls, calls)
	}
	if !sawFinal {
		t.Fatal("expected a write() call at the final time")
	}
	io.Pfgreen("OK\n")
}

// TestBuildRejectsABasisOnTheWrongShape checks the shape-mismatch guard:
// naming a quad-family basis over a segment mesh is a configuration
// mistake Validate alone (which only checks each section in isolation)
// cannot catch, so Build itself rejects it.
func TestBuildRejectsABasisOnTheWrongShape(t *testing.T) {
	chk.PrintTitle("Build rejects a SolutionBasis whose shape doesn't match the mesh")
	cfg := periodicScalarConfig()
	cfg.Numerics.SolutionBasis = "LagrangeQuad"
	_, err := Build(cfg)
	if err == nil {
		t.Fatal("expected an error for a basis/mesh shape mismatch")
	}
	io.Pfgreen("OK\n")
}
