// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dgop

import (
	"github.com/gofem-dg/dgfem/elemhelp"
	"github.com/gofem-dg/dgfem/physics"
)

// Residual evaluates spec §4.5's volume+face+source DG residual for every
// element at time t, then inverts each element's mass matrix, returning
// dU_e/dt = M_e⁻¹·R_e.
func (op *Operator) Residual(U []ElemState, t float64) ([]ElemState, error) {
	R := make([]ElemState, len(op.elems))
	for e := range R {
		R[e] = op.NewState()
	}

	if op.Switches.ConvFluxSwitch {
		for e, eh := range op.elems {
			op.addVolumeConvective(eh, U[e], R[e])
		}
	}

	if diff, ok := op.Physics.(physics.Diffusive); ok && op.Switches.ConvFluxSwitch {
		for e, eh := range op.elems {
			op.addVolumeDiffusive(diff, eh, U[e], R[e])
		}
	}

	if op.Switches.SourceSwitch {
		for e, eh := range op.elems {
			op.addSource(eh, U[e], R[e], t)
		}
	}

	if op.Switches.ConvFluxSwitch {
		for _, fg := range op.facesI {
			if err := op.addInteriorFace(fg, U, R); err != nil {
				return nil, err
			}
		}
		for _, fg := range op.facesB {
			if err := op.addBoundaryFace(fg, U, R, t); err != nil {
				return nil, err
			}
		}
	}

	out := make([]ElemState, len(op.elems))
	for e, eh := range op.elems {
		out[e] = op.invertMass(eh, R[e])
	}
	return out, nil
}

// addVolumeConvective implements spec §4.5 step 1:
// R_e += Σ_q (∇Φ)ᵀ·F(U_q)·(detJ·w)(q).
func (op *Operator) addVolumeConvective(eh *elemhelp.Element, U ElemState, R ElemState) {
	for q, w0 := range eh.QuadWts {
		Uq := traceAt(U, eh.Phi[q])
		F := op.Physics.FluxInterior(Uq)
		w := w0 * eh.DetJ[q]
		grads := eh.PhysGrad[q]
		for i := 0; i < op.ns; i++ {
			for a := 0; a < op.nb; a++ {
				sum := 0.0
				for k := range grads[a] {
					sum += grads[a][k] * F[i][k]
				}
				R[i][a] += w * sum
			}
		}
	}
}

// addVolumeDiffusive subtracts the viscous-flux divergence contribution
// (NavierStokes's diffusive flux enters with the opposite sign of the
// convective flux in the residual, per ∂U/∂t + ∇·(F_conv - F_diff) = S).
func (op *Operator) addVolumeDiffusive(diff physics.Diffusive, eh *elemhelp.Element, U ElemState, R ElemState) {
	for q, w0 := range eh.QuadWts {
		Uq := traceAt(U, eh.Phi[q])
		gradUq := gradTraceAt(U, eh.PhysGrad[q])
		G := diff.DiffusiveFlux(Uq, gradUq)
		w := w0 * eh.DetJ[q]
		grads := eh.PhysGrad[q]
		for i := 0; i < op.ns; i++ {
			for a := 0; a < op.nb; a++ {
				sum := 0.0
				for k := range grads[a] {
					sum -= grads[a][k] * G[i][k]
				}
				R[i][a] += w * sum
			}
		}
	}
}

// addSource implements spec §4.5 step 3: R_e += Σ_q Φᵀ·S(U_q,x_q,t)·(detJ·w)(q).
func (op *Operator) addSource(eh *elemhelp.Element, U ElemState, R ElemState, t float64) {
	sourceFn := op.Source
	if sourceFn == nil {
		sourceFn = op.Physics.Source
	}
	for q, w0 := range eh.QuadWts {
		Uq := traceAt(U, eh.Phi[q])
		S := sourceFn(Uq, eh.XPhys[q], t)
		if S == nil {
			continue
		}
		w := w0 * eh.DetJ[q]
		for i := 0; i < op.ns; i++ {
			for a, phia := range eh.Phi[q] {
				R[i][a] += w * phia * S[i]
			}
		}
	}
}

// addInteriorFace implements spec §4.5 step 2 for a shared face: compute the
// numerical flux once using the left side's outward normal, then apply it to
// the left element with a minus sign and to the right element with a plus
// sign (the opposite outward normal makes this the consistent choice, per
// spec §4.6's conservation requirement).
func (op *Operator) addInteriorFace(fg interiorFaceGeom, U []ElemState, R []ElemState) error {
	nq := len(fg.L.FaceWts)
	for q := 0; q < nq; q++ {
		UL := traceAt(U[fg.L.ElemID], fg.L.Phi[q])
		UR := traceAt(U[fg.R.ElemID], fg.R.Phi[q])
		Fhat, err := op.Flux.Compute(op.Physics, UL, UR, fg.L.Nhat[q])
		if err != nil {
			return err
		}
		w := fg.L.FaceWts[q]
		for i := 0; i < op.ns; i++ {
			for a, phia := range fg.L.Phi[q] {
				R[fg.L.ElemID][i][a] -= w * phia * Fhat[i]
			}
			for a, phia := range fg.R.Phi[q] {
				R[fg.R.ElemID][i][a] += w * phia * Fhat[i]
			}
		}
	}
	return nil
}

// addBoundaryFace implements spec §4.5 step 2 for a boundary face: the
// exterior state comes either from a Dirichlet function of (x,t) or from the
// physics's weak-Riemann/weak-prescribed BoundaryState constructor (spec
// §4.6), keyed by the face's boundary-group name.
func (op *Operator) addBoundaryFace(fg boundaryFaceGeom, U []ElemState, R []ElemState, t float64) error {
	spec, ok := op.boundary[fg.group]
	if !ok {
		return &physics.UnsupportedError{Msg: "no boundary condition configured for group " + fg.group}
	}
	side := fg.side
	nq := len(side.FaceWts)
	for q := 0; q < nq; q++ {
		UI := traceAt(U[side.ElemID], side.Phi[q])
		var UB []float64
		var err error
		if spec.Dirichlet != nil {
			UB = spec.Dirichlet(side.XPhys[q], t)
		} else {
			UB, err = op.Physics.BoundaryState(spec.Kind, UI, side.Nhat[q], side.XPhys[q], t)
			if err != nil {
				return err
			}
		}
		Fhat, err := op.Flux.Compute(op.Physics, UI, UB, side.Nhat[q])
		if err != nil {
			return err
		}
		w := side.FaceWts[q]
		for i := 0; i < op.ns; i++ {
			for a, phia := range side.Phi[q] {
				R[side.ElemID][i][a] -= w * phia * Fhat[i]
			}
		}
	}
	return nil
}

// LocalFluxRate evaluates one element's convective+diffusive volume residual
// (no face coupling, no source), mass-matrix inverted. Used by the ADER
// predictor (spec §4.7), which evolves each element independently of its
// neighbors and so must omit the face term entirely.
func (op *Operator) LocalFluxRate(e int, U ElemState) (ElemState, error) {
	eh := op.elems[e]
	R := op.NewState()
	if op.Switches.ConvFluxSwitch {
		op.addVolumeConvective(eh, U, R)
		if diff, ok := op.Physics.(physics.Diffusive); ok {
			op.addVolumeDiffusive(diff, eh, U, R)
		}
	}
	return op.invertMass(eh, R), nil
}

// LocalSourceRate evaluates one element's source-term volume residual, mass
// matrix inverted, with no flux contribution. Split out from LocalFluxRate
// so ADER's implicit source treatment can hold the flux half explicit while
// solving the (possibly stiff) source half implicitly.
func (op *Operator) LocalSourceRate(e int, U ElemState, t float64) (ElemState, error) {
	eh := op.elems[e]
	R := op.NewState()
	if op.Switches.SourceSwitch {
		op.addSource(eh, U, R, t)
	}
	return op.invertMass(eh, R), nil
}

// LocalRate is LocalFluxRate+LocalSourceRate, the full element-local rate
// used by ADER's explicit-source predictor.
func (op *Operator) LocalRate(e int, U ElemState, t float64) (ElemState, error) {
	flux, err := op.LocalFluxRate(e, U)
	if err != nil {
		return nil, err
	}
	src, err := op.LocalSourceRate(e, U, t)
	if err != nil {
		return nil, err
	}
	out := op.NewState()
	for i := 0; i < op.ns; i++ {
		for a := 0; a < op.nb; a++ {
			out[i][a] = flux[i][a] + src[i][a]
		}
	}
	return out, nil
}

// invertMass applies one element's precomputed mass-matrix inverse to a raw
// (un-inverted) local residual.
func (op *Operator) invertMass(eh *elemhelp.Element, R ElemState) ElemState {
	out := op.NewState()
	for i := 0; i < op.ns; i++ {
		for a := 0; a < op.nb; a++ {
			sum := 0.0
			for b := 0; b < op.nb; b++ {
				sum += eh.MassInv[a][b] * R[i][b]
			}
			out[i][a] = sum
		}
	}
	return out
}

// gradTraceAt evaluates Σ_a U[i][a]·physGrad[a][k] for every state component
// i and spatial direction k at one quadrature point.
func gradTraceAt(U ElemState, physGrad [][]float64) [][]float64 {
	ns := len(U)
	d := 0
	if len(physGrad) > 0 {
		d = len(physGrad[0])
	}
	out := make([][]float64, ns)
	for i := 0; i < ns; i++ {
		out[i] = make([]float64, d)
		for a, coeff := range U[i] {
			for k := 0; k < d; k++ {
				out[i][k] += coeff * physGrad[a][k]
			}
		}
	}
	return out
}
