// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import "github.com/gofem-dg/dgfem/dgop"

// SSPRK3 implements spec §4.7's Shu-Osher 3-stage strong-stability-
// preserving scheme, the positivity-friendly choice the limiter (spec §4.8)
// is meant to pair with.
type SSPRK3 struct {
	Limiter        Limiter
	LimitEachStage bool
}

func (s *SSPRK3) Name() string { return "SSPRK3" }

func (s *SSPRK3) Step(op *dgop.Operator, U []dgop.ElemState, t, dt float64) ([]dgop.ElemState, error) {
	limit := func(X []dgop.ElemState) []dgop.ElemState {
		if s.Limiter != nil && s.LimitEachStage {
			return s.Limiter(op, X)
		}
		return X
	}

	R0, err := op.Residual(U, t)
	if err != nil {
		return nil, err
	}
	U1 := limit(axpy(U, dt, R0))

	R1, err := op.Residual(U1, t+dt)
	if err != nil {
		return nil, err
	}
	U2 := limit(combine2(0.75, U, 0.25, axpy(U1, dt, R1)))

	R2, err := op.Residual(U2, t+dt/2)
	if err != nil {
		return nil, err
	}
	U3 := combine2(1.0/3.0, U, 2.0/3.0, axpy(U2, dt, R2))

	if s.Limiter != nil {
		U3 = s.Limiter(op, U3)
	}
	return U3, nil
}
