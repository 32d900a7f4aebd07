// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

func init() {
	register("Euler1D", func() Physics { return &Euler{dims: 1, Gamma: 1.4, GasConstant: 1, BackPressure: 1} })
	register("Euler2D", func() Physics { return &Euler{dims: 2, Gamma: 1.4, GasConstant: 1, BackPressure: 1} })
}

// Euler is the compressible Euler equations in 1D (ρ,ρu,ρE) or 2D
// (ρ,ρu,ρv,ρE), grounded on
// original_source/src/physics/euler/functions.py (pressure/enthalpy/sound
// speed formulas used throughout its Roe1D/SlipWall/PressureOutlet) and the
// teacher's registry convention (msolid.allocators).
type Euler struct {
	dims         int
	Gamma        float64 // specific heat ratio
	GasConstant  float64
	BackPressure float64 // static pressure imposed by a downstream PressureOutlet BC
}

func (p *Euler) Name() string { return "Euler" }
func (p *Euler) Dims() int    { return p.dims }

// SpecificHeatRatio exposes γ for consumers (e.g. numflux.Roe, numflux.HLLC)
// that need it directly rather than through the generic ComputeScalar path.
func (p *Euler) SpecificHeatRatio() float64 { return p.Gamma }

func (p *Euler) NumStateVars() int { return p.dims + 2 }

func (p *Euler) velocity(U []float64) []float64 {
	rho := U[0]
	v := make([]float64, p.dims)
	for k := 0; k < p.dims; k++ {
		v[k] = U[1+k] / rho
	}
	return v
}

func (p *Euler) kineticEnergyDensity(U []float64) float64 {
	rho := U[0]
	sum := 0.0
	for k := 0; k < p.dims; k++ {
		sum += U[1+k] * U[1+k]
	}
	return 0.5 * sum / rho
}

// pressure returns p = (γ-1)(ρE - ½ρ|v|²).
func (p *Euler) pressure(U []float64) float64 {
	rhoE := U[p.dims+1]
	return (p.Gamma - 1) * (rhoE - p.kineticEnergyDensity(U))
}

func (p *Euler) soundSpeed(U []float64, pressure float64) float64 {
	return math.Sqrt(p.Gamma * pressure / U[0])
}

func (p *Euler) FluxInterior(U []float64) [][]float64 {
	rho := U[0]
	v := p.velocity(U)
	pr := p.pressure(U)
	rhoE := U[p.dims+1]
	ns := p.NumStateVars()
	F := make([][]float64, ns)
	for i := range F {
		F[i] = make([]float64, p.dims)
	}
	for k := 0; k < p.dims; k++ {
		F[0][k] = rho * v[k]
		for m := 0; m < p.dims; m++ {
			F[1+m][k] = rho*v[m]*v[k]
			if m == k {
				F[1+m][k] += pr
			}
		}
		F[p.dims+1][k] = (rhoE + pr) * v[k]
	}
	return F
}

func (p *Euler) MaxWaveSpeed(U []float64) float64 {
	pr := p.pressure(U)
	c := p.soundSpeed(U, pr)
	speed := 0.0
	for _, vk := range p.velocity(U) {
		speed += vk * vk
	}
	return math.Sqrt(speed) + c
}

func (p *Euler) ComputeScalar(name string, U []float64) (float64, error) {
	switch name {
	case "Pressure":
		return p.pressure(U), nil
	case "SoundSpeed":
		return p.soundSpeed(U, p.pressure(U)), nil
	case "TotalEnthalpy":
		rho := U[0]
		rhoE := U[p.dims+1]
		return (rhoE + p.pressure(U)) / rho, nil
	case "Temperature":
		return p.pressure(U) / (U[0] * p.GasConstant), nil
	case "MaxWaveSpeed":
		return p.MaxWaveSpeed(U), nil
	}
	return 0, &UnsupportedError{Msg: "Euler has no derived scalar " + name}
}

func (p *Euler) Source(U, x []float64, t float64) []float64 { return nil }

// BoundaryState implements SlipWall (mirror the normal momentum component)
// and PressureOutlet (Riemann-invariant characteristic extrapolation,
// falling back to the interior state if the normal Mach number >= 1), both
// grounded on original_source/src/physics/euler/functions.py.
func (p *Euler) BoundaryState(kind string, UI, nhat, x []float64, t float64) ([]float64, error) {
	switch kind {
	case "SlipWall":
		return p.slipWall(UI, nhat), nil
	case "PressureOutlet":
		return p.pressureOutlet(UI, nhat)
	}
	return nil, &UnsupportedError{Msg: "Euler supports no weak-prescribed BC kind " + kind}
}

func (p *Euler) slipWall(UI, nhat []float64) []float64 {
	UB := append([]float64(nil), UI...)
	rhoveln := 0.0
	for k := 0; k < p.dims; k++ {
		rhoveln += UI[1+k] * nhat[k]
	}
	for k := 0; k < p.dims; k++ {
		UB[1+k] -= 2 * rhoveln * nhat[k]
	}
	return UB
}

// pressureOutlet takes the imposed back-pressure from the Euler's own
// BackPressure field, so the BoundaryState signature stays contract-only
// (spec §4.6).
func (p *Euler) pressureOutlet(UI, nhat []float64) ([]float64, error) {
	pB := p.BackPressure
	rhoI := UI[0]
	velI := p.velocity(UI)
	velnI := 0.0
	for k := 0; k < p.dims; k++ {
		velnI += velI[k] * nhat[k]
	}
	pI := p.pressure(UI)
	if pI < 0 {
		return nil, notPhysicalf("Euler PressureOutlet: negative interior pressure %g", pI)
	}
	cI := p.soundSpeed(UI, pI)
	JI := velnI + 2*cI/(p.Gamma-1)
	velt := make([]float64, p.dims)
	for k := 0; k < p.dims; k++ {
		velt[k] = velI[k] - velnI*nhat[k]
	}

	Mn := velnI / cI
	if Mn >= 1 {
		return append([]float64(nil), UI...), nil
	}

	rhoB := rhoI * math.Pow(pB/pI, 1/p.Gamma)
	cB := math.Sqrt(p.Gamma * pB / rhoB)
	velB := make([]float64, p.dims)
	for k := 0; k < p.dims; k++ {
		velB[k] = (JI-2*cB/(p.Gamma-1))*nhat[k] + velt[k]
	}

	UB := make([]float64, p.NumStateVars())
	UB[0] = rhoB
	rhovel2 := 0.0
	for k := 0; k < p.dims; k++ {
		UB[1+k] = rhoB * velB[k]
		rhovel2 += velB[k] * velB[k]
	}
	UB[p.dims+1] = pB/(p.Gamma-1) + 0.5*rhoB*rhovel2
	return UB, nil
}

func (p *Euler) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "SpecificHeatRatio", V: p.Gamma},
		&fun.Prm{N: "GasConstant", V: p.GasConstant},
		&fun.Prm{N: "BackPressure", V: p.BackPressure},
	}
}
