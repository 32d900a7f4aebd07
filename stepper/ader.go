// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"github.com/cpmech/gosl/num"

	"github.com/gofem-dg/dgfem/dgop"
	"github.com/gofem-dg/dgfem/quadrature"
	"github.com/gofem-dg/dgfem/shp"
)

// ADER implements spec §4.7's space-time predictor/corrector scheme.
//
// Predictor: each element's coefficient state is marched, independently of
// its neighbors (no face term -- the predictor is local by construction),
// across a set of Gauss-Legendre time nodes spanning the step. With
// SourceTreatment "Explicit" both the flux-divergence and source halves of
// the local rate are evaluated at the previous node's state; with
// "Implicit" the flux half stays explicit but the source half is solved
// implicitly via a per-element Newton iteration (spec §4.7's "per-element
// nonlinear solve"), the right tool for a source term stiff enough that an
// explicit local march would require an impractically small sub-step.
//
// Corrector: the full face-coupled DG residual is evaluated at each
// predicted time-node's mesh-wide state and time-integrated (the same
// Gauss-Legendre quadrature used by the predictor) to advance the solution
// -- this is where neighboring elements' predicted states finally interact,
// through the numerical flux, exactly once per time node.
type ADER struct {
	Limiter Limiter

	// TimeNodeOrder is the polynomial degree the time quadrature must be
	// exact for; 0 selects 2·NumBasis-1 (matching the spatial scheme's own
	// order).
	TimeNodeOrder int

	// SourceTreatment selects "Explicit" (default) or "Implicit" source
	// handling within the predictor.
	SourceTreatment string
}

func (s *ADER) Name() string { return "ADER" }

func (s *ADER) Step(op *dgop.Operator, U []dgop.ElemState, t, dt float64) ([]dgop.ElemState, error) {
	order := s.TimeNodeOrder
	if order == 0 {
		order = 2*op.NumBasis() - 1
	}
	seg := shp.Get("segment")
	refPts, refWts, err := quadrature.Get(seg, order, quadrature.GaussLegendre, 0)
	if err != nil {
		return nil, err
	}
	M := len(refPts)
	tau := make([]float64, M)
	wgt := make([]float64, M)
	for m := range refPts {
		tau[m] = dt * (refPts[m][0] + 1) / 2
		wgt[m] = refWts[m] * dt / 2
	}

	implicit := s.SourceTreatment == "Implicit"

	// predictor
	Q := make([][]dgop.ElemState, M) // Q[m][e]
	for m := range Q {
		Q[m] = make([]dgop.ElemState, len(U))
	}
	prev := U
	prevTau := 0.0
	for m := 0; m < M; m++ {
		dtau := tau[m] - prevTau
		cur := make([]dgop.ElemState, len(U))
		for e := range U {
			if !implicit {
				rate, err := op.LocalRate(e, prev[e], t+prevTau)
				if err != nil {
					return nil, err
				}
				qe := cloneElem(prev[e])
				for i := range qe {
					for a := range qe[i] {
						qe[i][a] += dtau * rate[i][a]
					}
				}
				cur[e] = qe
			} else {
				qe, err := implicitLocalUpdate(op, e, prev[e], t+tau[m], dtau)
				if err != nil {
					return nil, err
				}
				cur[e] = qe
			}
		}
		Q[m] = cur
		prev = cur
		prevTau = tau[m]
	}

	// corrector
	Unew := cloneState(U)
	for m := 0; m < M; m++ {
		R, err := op.Residual(Q[m], t+tau[m])
		if err != nil {
			return nil, err
		}
		for e := range Unew {
			for i := range Unew[e] {
				for a := range Unew[e][i] {
					Unew[e][i][a] += wgt[m] * R[e][i][a]
				}
			}
		}
	}
	if s.Limiter != nil {
		Unew = s.Limiter(op, Unew)
	}
	return Unew, nil
}

// implicitLocalUpdate solves, for one element, the backward-Euler-in-source
// system q = q0 + dtau·(flux-rate at the previous state) + dtau·S(q) for the
// new coefficient vector q, via gosl/num's Newton solver with a numerical
// Jacobian (the source closure is arbitrary physics, so no analytic
// Jacobian is assumed), mirroring the teacher's own num.NlSolver calling
// convention (ana/pressurised_cylinder.go's Hill.Getc).
func implicitLocalUpdate(op *dgop.Operator, e int, prevElem dgop.ElemState, tNext, dtau float64) (dgop.ElemState, error) {
	fluxRate, err := op.LocalFluxRate(e, prevElem)
	if err != nil {
		return nil, err
	}

	ns, nb := op.NumStateVars(), op.NumBasis()
	n := ns * nb
	idx := func(i, a int) int { return i*nb + a }

	x0 := make([]float64, n)
	for i := 0; i < ns; i++ {
		for a := 0; a < nb; a++ {
			x0[idx(i, a)] = prevElem[i][a] + dtau*fluxRate[i][a]
		}
	}

	var solveErr error
	ffcn := func(fx, x []float64) error {
		q := op.NewState()
		for i := 0; i < ns; i++ {
			for a := 0; a < nb; a++ {
				q[i][a] = x[idx(i, a)]
			}
		}
		srcRate, err := op.LocalSourceRate(e, q, tNext)
		if err != nil {
			solveErr = err
			return err
		}
		for i := 0; i < ns; i++ {
			for a := 0; a < nb; a++ {
				fx[idx(i, a)] = x[idx(i, a)] - x0[idx(i, a)] - dtau*srcRate[i][a]
			}
		}
		return nil
	}

	var nls num.NlSolver
	defer nls.Clean()
	nls.Init(n, ffcn, nil, nil, false, true, nil)
	x := append([]float64(nil), x0...)
	if err := nls.Solve(x, true); err != nil {
		return nil, err
	}
	if solveErr != nil {
		return nil, solveErr
	}

	out := op.NewState()
	for i := 0; i < ns; i++ {
		for a := 0; a < nb; a++ {
			out[i][a] = x[idx(i, a)]
		}
	}
	return out, nil
}
