// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import "github.com/gofem-dg/dgfem/dgop"

// LSRK4 implements spec §4.7's Carpenter-Kennedy 5-stage low-storage RK4
// scheme (Williamson form): a single running buffer dU carries each stage's
// combination instead of retaining four separate stage residuals.
type LSRK4 struct {
	Limiter        Limiter
	LimitEachStage bool
}

var lsrk4A = [5]float64{
	0,
	-567301805773.0 / 1357537059087.0,
	-2404267990393.0 / 2016746695238.0,
	-3550918686646.0 / 2091501179385.0,
	-1275806237668.0 / 842570457699.0,
}

var lsrk4B = [5]float64{
	1432997174477.0 / 9575080441755.0,
	5161836677717.0 / 13612068292357.0,
	1720146321549.0 / 2090206949498.0,
	3134564353537.0 / 4481467310338.0,
	2277821191437.0 / 14882151754819.0,
}

var lsrk4C = [5]float64{
	0,
	1432997174477.0 / 9575080441755.0,
	2526269341429.0 / 6820363962896.0,
	2006345519317.0 / 3224310063776.0,
	2802321613138.0 / 2924317926251.0,
}

func (s *LSRK4) Name() string { return "LSRK4" }

func (s *LSRK4) Step(op *dgop.Operator, U []dgop.ElemState, t, dt float64) ([]dgop.ElemState, error) {
	Ucur := cloneState(U)
	dU := cloneState(U)
	for e := range dU {
		for i := range dU[e] {
			for a := range dU[e][i] {
				dU[e][i][a] = 0
			}
		}
	}
	for stage := 0; stage < 5; stage++ {
		R, err := op.Residual(Ucur, t+lsrk4C[stage]*dt)
		if err != nil {
			return nil, err
		}
		for e := range dU {
			for i := range dU[e] {
				for a := range dU[e][i] {
					dU[e][i][a] = lsrk4A[stage]*dU[e][i][a] + dt*R[e][i][a]
					Ucur[e][i][a] += lsrk4B[stage] * dU[e][i][a]
				}
			}
		}
		if s.Limiter != nil && s.LimitEachStage {
			Ucur = s.Limiter(op, Ucur)
		}
	}
	if s.Limiter != nil && !s.LimitEachStage {
		Ucur = s.Limiter(op, Ucur)
	}
	return Ucur, nil
}
