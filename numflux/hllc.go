// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numflux

import (
	"math"

	"github.com/gofem-dg/dgfem/physics"
)

// HLLC is Toro's HLLC approximate Riemann solver for the Euler equations
// (Toro, "Riemann Solvers and Numerical Methods for Fluid Dynamics", 1997,
// §10.4), rotating momentum into the face-normal/tangential frame the same
// way Roe does. Unlike Roe and PressureOutlet/SlipWall, no HLLC class is
// present in the retrieved original source -- only its enumeration name
// (spec §6 `ConvFluxNumerical ∈ {LaxFriedrichs,Roe,HLLC}`) -- so this is the
// standard textbook wave-speed/star-state construction rather than a port.
type HLLC struct{}

func (f *HLLC) Compute(phys physics.Physics, UL, UR, nhat []float64) ([]float64, error) {
	gg, ok := phys.(gammaGetter)
	if !ok {
		return nil, &physics.UnsupportedError{Msg: "HLLC flux requires a physics exposing SpecificHeatRatio"}
	}
	gamma := gg.SpecificHeatRatio()
	d := phys.Dims()
	ns := phys.NumStateVars()

	n := normalize(nhat)
	var t []float64
	if d == 2 {
		t = []float64{-n[1], n[0]}
	}

	rhoL, rhoR := UL[0], UR[0]
	velL := velocityOf(UL, d)
	velR := velocityOf(UR, d)
	velnL, veltL := rotateVel(velL, n, t)
	velnR, veltR := rotateVel(velR, n, t)

	pL, err := phys.ComputeScalar("Pressure", UL)
	if err != nil {
		return nil, err
	}
	pR, err := phys.ComputeScalar("Pressure", UR)
	if err != nil {
		return nil, err
	}
	if pL < 0 || pR < 0 {
		return nil, &physics.NotPhysicalError{Msg: "HLLC flux: negative pressure"}
	}
	cL := math.Sqrt(gamma * pL / rhoL)
	cR := math.Sqrt(gamma * pR / rhoR)
	EL := UL[ns-1]
	ER := UR[ns-1]

	// Pressure-based wave speed estimate (Toro eq. 10.59/10.61).
	rhoBar := 0.5 * (rhoL + rhoR)
	cBar := 0.5 * (cL + cR)
	pPVRS := 0.5*(pL+pR) - 0.5*(velnR-velnL)*rhoBar*cBar
	pStar := math.Max(0, pPVRS)

	qL := 1.0
	if pStar > pL {
		qL = math.Sqrt(1 + (gamma+1)/(2*gamma)*(pStar/pL-1))
	}
	qR := 1.0
	if pStar > pR {
		qR = math.Sqrt(1 + (gamma+1)/(2*gamma)*(pStar/pR-1))
	}
	SL := velnL - cL*qL
	SR := velnR + cR*qR
	Sstar := (pR - pL + rhoL*velnL*(SL-velnL) - rhoR*velnR*(SR-velnR)) / (rhoL*(SL-velnL) - rhoR*(SR-velnR))

	rotate := func(U []float64, veln, velt float64) []float64 {
		out := append([]float64(nil), U...)
		if d == 1 {
			out[1] = U[0] * veln
			return out
		}
		out[1] = U[0] * veln
		out[2] = U[0] * velt
		return out
	}
	URotL := rotate(UL, velnL, veltL)
	URotR := rotate(UR, velnR, veltR)

	starState := func(Urot []float64, rho, veln, velt, p, S, E float64) []float64 {
		factor := rho * (S - veln) / (S - Sstar)
		out := make([]float64, ns)
		out[0] = factor
		out[1] = factor * Sstar
		if d == 2 {
			out[2] = factor * velt
		}
		out[ns-1] = factor * (E/rho + (Sstar-veln)*(Sstar+p/(rho*(S-veln))))
		return out
	}

	fluxOf := func(Urot []float64, veln, p float64) []float64 {
		F := make([]float64, ns)
		F[0] = Urot[0] * veln
		F[1] = Urot[1]*veln + p
		if d == 2 {
			F[2] = Urot[2] * veln
		}
		F[ns-1] = (Urot[ns-1] + p) * veln
		return F
	}

	var Frot []float64
	switch {
	case SL >= 0:
		Frot = fluxOf(URotL, velnL, pL)
	case SR <= 0:
		Frot = fluxOf(URotR, velnR, pR)
	case Sstar >= 0:
		FL := fluxOf(URotL, velnL, pL)
		UstarL := starState(URotL, rhoL, velnL, veltL, pL, SL, EL)
		Frot = make([]float64, ns)
		for i := range Frot {
			Frot[i] = FL[i] + SL*(UstarL[i]-URotL[i])
		}
	default:
		FR := fluxOf(URotR, velnR, pR)
		UstarR := starState(URotR, rhoR, velnR, veltR, pR, SR, ER)
		Frot = make([]float64, ns)
		for i := range Frot {
			Frot[i] = FR[i] + SR*(UstarR[i]-URotR[i])
		}
	}

	return unrotateState(Frot, n, t, d), nil
}
