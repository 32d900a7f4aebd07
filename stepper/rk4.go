// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import "github.com/gofem-dg/dgfem/dgop"

// RK4 implements spec §4.7's classical 4-stage Runge-Kutta scheme: four
// residual evaluations per step, combined with the usual 1/6,2/6,2/6,1/6
// weights.
type RK4 struct {
	Limiter        Limiter
	LimitEachStage bool
}

func (s *RK4) Name() string { return "RK4" }

func (s *RK4) Step(op *dgop.Operator, U []dgop.ElemState, t, dt float64) ([]dgop.ElemState, error) {
	limit := func(X []dgop.ElemState) []dgop.ElemState {
		if s.Limiter != nil && s.LimitEachStage {
			return s.Limiter(op, X)
		}
		return X
	}

	k1, err := op.Residual(U, t)
	if err != nil {
		return nil, err
	}
	U2 := limit(axpy(U, dt/2, k1))

	k2, err := op.Residual(U2, t+dt/2)
	if err != nil {
		return nil, err
	}
	U3 := limit(axpy(U, dt/2, k2))

	k3, err := op.Residual(U3, t+dt/2)
	if err != nil {
		return nil, err
	}
	U4 := limit(axpy(U, dt, k3))

	k4, err := op.Residual(U4, t+dt)
	if err != nil {
		return nil, err
	}

	Unew := cloneState(U)
	for e := range Unew {
		for i := range Unew[e] {
			for a := range Unew[e][i] {
				Unew[e][i][a] += dt / 6 * (k1[e][i][a] + 2*k2[e][i][a] + 2*k3[e][i][a] + k4[e][i][a])
			}
		}
	}
	if s.Limiter != nil {
		Unew = s.Limiter(op, Unew)
	}
	return Unew, nil
}
