// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

func init() {
	register("ConstAdvScalar1D", func() Physics { return &ConstAdvScalar{dims: 1, c: []float64{1}} })
	register("ConstAdvScalar2D", func() Physics { return &ConstAdvScalar{dims: 2, c: []float64{1, 1}} })
	register("Burgers", func() Physics { return &Burgers{} })
}

// ConstAdvScalar is scalar advection with a constant velocity, grounded on
// original_source/src/physics/scalar/scalar.py's ConstAdvScalar/1D/2D: flux
// is c*u, max wave speed is |c|.
type ConstAdvScalar struct {
	dims int
	c    []float64 // length dims
}

// SetVelocity installs the constant advection velocity (spec §6
// `ConstVelocity` for 1D; `ConstXVelocity`/`ConstYVelocity` for 2D).
func (p *ConstAdvScalar) SetVelocity(c []float64) { p.c = c }

func (p *ConstAdvScalar) Name() string        { return "ConstAdvScalar" }
func (p *ConstAdvScalar) NumStateVars() int   { return 1 }
func (p *ConstAdvScalar) Dims() int           { return p.dims }

func (p *ConstAdvScalar) FluxInterior(U []float64) [][]float64 {
	F := make([][]float64, 1)
	F[0] = make([]float64, p.dims)
	for k := 0; k < p.dims; k++ {
		F[0][k] = p.c[k] * U[0]
	}
	return F
}

func (p *ConstAdvScalar) MaxWaveSpeed(U []float64) float64 {
	speed := 0.0
	for _, ck := range p.c {
		speed += ck * ck
	}
	return math.Sqrt(speed)
}

func (p *ConstAdvScalar) ComputeScalar(name string, U []float64) (float64, error) {
	switch name {
	case "MaxWaveSpeed":
		return p.MaxWaveSpeed(U), nil
	}
	return 0, &UnsupportedError{Msg: "ConstAdvScalar has no derived scalar " + name}
}

func (p *ConstAdvScalar) Source(U, x []float64, t float64) []float64 { return nil }

func (p *ConstAdvScalar) BoundaryState(kind string, UI, nhat, x []float64, t float64) ([]float64, error) {
	return nil, &UnsupportedError{Msg: "ConstAdvScalar supports no weak-prescribed BC kind " + kind}
}

func (p *ConstAdvScalar) GetPrms() fun.Prms {
	prms := fun.Prms{}
	for i, ck := range p.c {
		name := "ConstVelocity"
		if p.dims == 2 {
			if i == 0 {
				name = "ConstXVelocity"
			} else {
				name = "ConstYVelocity"
			}
		}
		prms = append(prms, &fun.Prm{N: name, V: ck})
	}
	return prms
}

// Burgers is the 1D inviscid Burgers equation: F(u) = u²/2, grounded on
// original_source/src/physics/scalar/scalar.py's Burgers1D.
type Burgers struct{}

func (p *Burgers) Name() string      { return "Burgers" }
func (p *Burgers) NumStateVars() int { return 1 }
func (p *Burgers) Dims() int         { return 1 }

func (p *Burgers) FluxInterior(U []float64) [][]float64 {
	return [][]float64{{0.5 * U[0] * U[0]}}
}

func (p *Burgers) MaxWaveSpeed(U []float64) float64 { return math.Abs(U[0]) }

func (p *Burgers) ComputeScalar(name string, U []float64) (float64, error) {
	switch name {
	case "MaxWaveSpeed":
		return p.MaxWaveSpeed(U), nil
	}
	return 0, &UnsupportedError{Msg: "Burgers has no derived scalar " + name}
}

func (p *Burgers) Source(U, x []float64, t float64) []float64 { return nil }

func (p *Burgers) BoundaryState(kind string, UI, nhat, x []float64, t float64) ([]float64, error) {
	return nil, &UnsupportedError{Msg: "Burgers supports no weak-prescribed BC kind " + kind}
}

func (p *Burgers) GetPrms() fun.Prms { return fun.Prms{} }
