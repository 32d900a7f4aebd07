// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import "github.com/gofem-dg/dgfem/dgop"

// FE implements spec §4.7's forward-Euler scheme:
// Uⁿ⁺¹ = Uⁿ + Δt · M⁻¹R(Uⁿ).
type FE struct {
	Limiter Limiter
}

func (s *FE) Name() string { return "FE" }

func (s *FE) Step(op *dgop.Operator, U []dgop.ElemState, t, dt float64) ([]dgop.ElemState, error) {
	R, err := op.Residual(U, t)
	if err != nil {
		return nil, err
	}
	Unew := axpy(U, dt, R)
	if s.Limiter != nil {
		Unew = s.Limiter(op, Unew)
	}
	return Unew, nil
}
