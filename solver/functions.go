// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/gofem-dg/dgfem/config"
)

// VectorFunc is a conserved-state-valued function of the current state,
// physical position and time -- the common shape of physics.Physics.Source,
// dgop's per-boundary Dirichlet state and this solver's initial condition,
// generalizing gosl/fun.Func (scalar-valued) to the ns-component vector
// values a non-scalar physics (Euler, NavierStokes) needs. U is nil where
// the caller has no current state to offer (an initial condition, or a
// Dirichlet boundary function).
type VectorFunc func(U, x []float64, t float64) []float64

// paramMap flattens a config.FuncSpec's ordered parameter list into a
// by-name lookup, the form every vectorBuilder below reads its named
// parameters from.
func paramMap(f config.FuncSpec) map[string]float64 {
	m := make(map[string]float64, len(f.Params))
	for _, p := range f.Params {
		m[p.Name] = p.Value
	}
	return m
}

func paramOr(m map[string]float64, name string, def float64) float64 {
	if v, ok := m[name]; ok {
		return v
	}
	return def
}

// vectorBuilders holds the state-vector-valued function families named by
// spec §6's worked cases (Riemann-problem initial states for Euler, a
// damped sine wave and its matching linear source for scalar advection),
// grounded on original_source's per-scenario Python modules: "RiemannProblem"
// and "ExactRiemannSolution" both appear in examples/euler/1D/*/*.py as the
// uL/uR/xd-parameterized initial state and boundary condition; "DampingSine"
// and "SimpleSource" appear together in
// examples/scalar/1D/damping_sine_wave/damping_sine_wave.py as a matched
// exact-solution/source-term pair for the damped-advection manufactured
// solution. "ConstantState" is the degenerate one-piece case of
// RiemannProblem used throughout the Navier-Stokes manufactured-solution
// and simpler scalar scenarios.
var vectorBuilders = map[string]func(p map[string]float64, ns int) VectorFunc{
	"ConstantState": func(p map[string]float64, ns int) VectorFunc {
		v := make([]float64, ns)
		for i := range v {
			v[i] = paramOr(p, stateKey(i), 0)
		}
		return func(U, x []float64, t float64) []float64 {
			return append([]float64(nil), v...)
		}
	},
	"RiemannProblem": riemannBuilder,
	"ExactRiemannSolution": func(p map[string]float64, ns int) VectorFunc {
		// The exact Riemann fan is out of scope here (it needs the full
		// characteristic analysis original_source's functions module
		// performs); the piecewise-constant initial state is what every
		// worked case actually seeds InitialCondition/ExactSolution with
		// at t=0, so the two names share this builder.
		return riemannBuilder(p, ns)
	},
	"DampingSine": func(p map[string]float64, ns int) VectorFunc {
		omega := paramOr(p, "omega", 2*math.Pi)
		nu := paramOr(p, "nu", 0)
		c := paramOr(p, "c", 1)
		return func(U, x []float64, t float64) []float64 {
			return []float64{math.Sin(omega*(x[0]-c*t)) * math.Exp(nu*t)}
		}
	},
	"SimpleSource": func(p map[string]float64, ns int) VectorFunc {
		nu := paramOr(p, "nu", 0)
		return func(U, x []float64, t float64) []float64 {
			out := make([]float64, ns)
			if U != nil {
				out[0] = nu * U[0]
			}
			return out
		}
	},
}

func stateKey(i int) string {
	return "U" + string(rune('0'+i))
}

// riemannBuilder builds a left/right piecewise-constant state split at xd
// (default 0.5), reading uL0..uL{ns-1} and uR0..uR{ns-1}, grounded on every
// euler/1D worked case's uL/uR/xd triple.
func riemannBuilder(p map[string]float64, ns int) VectorFunc {
	uL := make([]float64, ns)
	uR := make([]float64, ns)
	for i := 0; i < ns; i++ {
		uL[i] = paramOr(p, "uL"+string(rune('0'+i)), 0)
		uR[i] = paramOr(p, "uR"+string(rune('0'+i)), 0)
	}
	xd := paramOr(p, "xd", 0.5)
	return func(U, x []float64, t float64) []float64 {
		if x[0] < xd {
			return append([]float64(nil), uL...)
		}
		return append([]float64(nil), uR...)
	}
}

// buildVectorFunc resolves a config.FuncSpec into a VectorFunc: first
// against the named multi-component registry above (the only option for a
// non-scalar physics), falling back to gosl/fun's scalar fun.New (the same
// path config.FuncSpec.Build already wraps) for a one-component physics,
// since every scalar advection/Burgers/PSR scenario names an ordinary
// gosl/fun type (Sine, Ramp, ...) directly.
func buildVectorFunc(f config.FuncSpec, ns int) (VectorFunc, error) {
	if mk, ok := vectorBuilders[f.Type]; ok {
		return mk(paramMap(f), ns), nil
	}
	if ns != 1 {
		return nil, &Error{Msg: "function type " + f.Type + " is not a recognized multi-component initial/boundary/source function"}
	}
	fn, err := f.Build()
	if err != nil {
		return nil, err
	}
	return func(U, x []float64, t float64) []float64 {
		return []float64{fn.F(t, x)}
	}, nil
}
