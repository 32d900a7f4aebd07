// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numflux

import (
	"math"

	"github.com/gofem-dg/dgfem/physics"
)

// gammaGetter is satisfied by Euler-family physics exposing γ directly,
// needed by Roe/HLLC's closed-form eigenstructure.
type gammaGetter interface {
	SpecificHeatRatio() float64
}

// Roe is the classical Roe approximate Riemann solver for the Euler
// equations in 1D or 2D, grounded directly on
// original_source/src/physics/euler/functions.py's Roe1D/Roe2D: rotate the
// momentum components into the face-normal/tangential frame
// (RotateCoordSys), form the Roe-averaged state (RoeAverageState), the wave
// strengths (GetAlphas), eigenvalues (GetEigenvalues) and right
// eigenvectors (GetRightEigenvectors), then unrotate the dissipative
// correction before adding it to the arithmetic mean of the two physical
// fluxes.
type Roe struct{}

func (f *Roe) Compute(phys physics.Physics, UL, UR, nhat []float64) ([]float64, error) {
	gg, ok := phys.(gammaGetter)
	if !ok {
		return nil, &physics.UnsupportedError{Msg: "Roe flux requires a physics exposing SpecificHeatRatio"}
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

	HL, err := phys.ComputeScalar("TotalEnthalpy", UL)
	if err != nil {
		return nil, err
	}
	HR, err := phys.ComputeScalar("TotalEnthalpy", UR)
	if err != nil {
		return nil, err
	}
	pL, err := phys.ComputeScalar("Pressure", UL)
	if err != nil {
		return nil, err
	}
	pR, err := phys.ComputeScalar("Pressure", UR)
	if err != nil {
		return nil, err
	}

	rhoLsqrt, rhoRsqrt := math.Sqrt(rhoL), math.Sqrt(rhoR)
	denom := rhoLsqrt + rhoRsqrt
	velnRoe := (rhoLsqrt*velnL + rhoRsqrt*velnR) / denom
	veltRoe := 0.0
	if d == 2 {
		veltRoe = (rhoLsqrt*veltL + rhoRsqrt*veltR) / denom
	}
	HRoe := (rhoLsqrt*HL + rhoRsqrt*HR) / denom
	rhoRoe := rhoLsqrt * rhoRsqrt

	speedRoe2 := velnRoe*velnRoe + veltRoe*veltRoe
	c2 := (gamma - 1) * (HRoe - 0.5*speedRoe2)
	if c2 <= 0 {
		return nil, &physics.NotPhysicalError{Msg: "Roe flux: non-positive Roe-averaged sound speed squared"}
	}
	c := math.Sqrt(c2)

	dveln := velnR - velnL
	dvelt := veltR - veltL
	drho := rhoR - rhoL
	dp := pR - pL

	// alphas: wave strengths (left eigenvectors applied to dU), ordered
	// [a-c, entropy, (shear, 2D only), a+c].
	alphas := make([]float64, ns)
	alphas[0] = 0.5 / c2 * (dp - c*rhoRoe*dveln)
	alphas[1] = drho - dp/c2
	alphas[ns-1] = 0.5 / c2 * (dp + c*rhoRoe*dveln)
	if d == 2 {
		alphas[2] = rhoRoe * dvelt
	}

	evals := make([]float64, ns)
	evals[0] = velnRoe - c
	evals[1] = velnRoe
	evals[ns-1] = velnRoe + c
	if d == 2 {
		evals[2] = velnRoe
	}

	// R: right eigenvector matrix, rows = state components (rho, mom_n,
	// [mom_t,] rhoE), columns = wave index.
	R := make([][]float64, ns)
	for i := range R {
		R[i] = make([]float64, ns)
	}
	R[0][0], R[0][1], R[0][ns-1] = 1, 1, 1
	R[1][0], R[1][1], R[1][ns-1] = evals[0], velnRoe, evals[ns-1]
	R[ns-1][0] = HRoe - velnRoe*c
	R[ns-1][1] = 0.5 * speedRoe2
	R[ns-1][ns-1] = HRoe + velnRoe*c
	if d == 2 {
		R[ns-1][2] = veltRoe
		R[2][0], R[2][1], R[2][ns-1] = veltRoe, veltRoe, veltRoe
		R[2][2] = 1
	}

	FRoeRot := make([]float64, ns)
	for i := 0; i < ns; i++ {
		sum := 0.0
		for k := 0; k < ns; k++ {
			sum += R[i][k] * math.Abs(evals[k]) * alphas[k]
		}
		FRoeRot[i] = sum
	}
	FRoe := unrotateState(FRoeRot, n, t, d)

	FL := phys.FluxInterior(UL)
	FR := phys.FluxInterior(UR)
	Fhat := make([]float64, ns)
	for i := 0; i < ns; i++ {
		fLn, fRn := 0.0, 0.0
		for k := 0; k < d; k++ {
			fLn += FL[i][k] * n[k]
			fRn += FR[i][k] * n[k]
		}
		Fhat[i] = 0.5*(fLn+fRn) - 0.5*FRoe[i]
	}
	return Fhat, nil
}

func normalize(n []float64) []float64 {
	norm := 0.0
	for _, v := range n {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	out := make([]float64, len(n))
	for i, v := range n {
		out[i] = v / norm
	}
	return out
}

func velocityOf(U []float64, d int) []float64 {
	v := make([]float64, d)
	for k := 0; k < d; k++ {
		v[k] = U[1+k] / U[0]
	}
	return v
}

func rotateVel(vel, n, t []float64) (veln, velt float64) {
	for k := range vel {
		veln += vel[k] * n[k]
	}
	if t != nil {
		for k := range vel {
			velt += vel[k] * t[k]
		}
	}
	return
}

// unrotateState maps a state vector expressed in the (rho, mom_n, [mom_t,]
// rhoE) rotated frame back to Cartesian momentum components.
func unrotateState(Urot, n, t []float64, d int) []float64 {
	out := append([]float64(nil), Urot...)
	momn := Urot[1]
	if d == 1 {
		out[1] = momn * n[0]
		return out
	}
	momt := Urot[2]
	for k := 0; k < d; k++ {
		out[1+k] = momn*n[k] + momt*t[k]
	}
	return out
}
