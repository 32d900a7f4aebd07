// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package limiter

import (
	"math"

	"github.com/gofem-dg/dgfem/dgop"
	"github.com/gofem-dg/dgfem/elemhelp"
)

// Euler implements spec §4.8's two-pass Euler limiter: a density pass
// (state component 0, identical formula to Scalar) followed by a pressure
// pass that finds, by bisection, the largest θ∈[0,1] such that pressure
// sampled at every quadrature/nodal point stays at or above PressureFloor.
type Euler struct {
	PressureFloor float64 // defaults to 1e-8 if zero
	BisectIters   int     // defaults to 40 if zero
}

func (lim Euler) floor() float64 {
	if lim.PressureFloor > 0 {
		return lim.PressureFloor
	}
	return 1e-8
}

func (lim Euler) iters() int {
	if lim.BisectIters > 0 {
		return lim.BisectIters
	}
	return 40
}

// Apply implements stepper.Limiter.
func (lim Euler) Apply(op *dgop.Operator, U []dgop.ElemState) []dgop.ElemState {
	densityLimited := Scalar{Component: 0}.Apply(op, U)

	out := make([]dgop.ElemState, len(densityLimited))
	for e, Ue := range densityLimited {
		eh := op.ElemGeom(e)
		mean := make([]float64, len(Ue))
		for i := range Ue {
			mean[i] = elementMean(eh, Ue[i])
		}
		theta := lim.pressureTheta(op, eh, Ue, mean)
		out[e] = cloneElemState(Ue)
		if theta < 1 {
			for i := range Ue {
				out[e][i] = rescale(Ue[i], mean[i], theta)
			}
		}
	}
	return out
}

// pressureTheta bisects for the largest θ∈[0,1] keeping the sampled minimum
// pressure at or above the floor, assuming (as is standard for this class
// of limiter) that pressure increases monotonically as θ shrinks the state
// toward its element mean.
func (lim Euler) pressureTheta(op *dgop.Operator, eh *elemhelp.Element, U dgop.ElemState, mean []float64) float64 {
	phiRows := samplePhiRows(op, eh)
	ns := len(U)

	minPressure := func(theta float64) (float64, bool) {
		minP := math.Inf(1)
		for _, phi := range phiRows {
			state := make([]float64, ns)
			for i := 0; i < ns; i++ {
				v := 0.0
				for a, p := range phi {
					v += p * U[i][a]
				}
				state[i] = mean[i] + theta*(v-mean[i])
			}
			p, err := op.Physics.ComputeScalar("Pressure", state)
			if err != nil {
				return 0, false
			}
			if p < minP {
				minP = p
			}
		}
		return minP, true
	}

	floor := lim.floor()
	if p1, ok := minPressure(1.0); ok && p1 >= floor {
		return 1.0
	}
	lo, hi := 0.0, 1.0
	for it := 0; it < lim.iters(); it++ {
		mid := 0.5 * (lo + hi)
		if p, ok := minPressure(mid); ok && p >= floor {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
