// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projection

import (
	"github.com/gofem-dg/dgfem/basis"
	"github.com/gofem-dg/dgfem/dgop"
)

// Resample implements spec §6's restart basis-change rule -- "Restart may
// change the basis/order by L2-projecting the read U onto the new basis;
// this is the only allowed shape change" -- for the case where the mesh is
// unchanged and only the solution basis/order differs between the
// checkpointed state and the running operator. Since the reference element
// of each mesh element is unchanged across a restart, the old state can be
// evaluated directly at the new operator's reference-space quadrature
// points (oldBasis.Values(newEh.QuadPts)), without needing physical
// coordinates or a continuous source function the way L2/Nodal do for a
// true initial condition -- this is the same mass-inversion half of L2,
// fed from a discrete old-basis sample rather than a continuous f(x,t0).
func Resample(oldBasis basis.Basis, oldU []dgop.ElemState, newOp *dgop.Operator) []dgop.ElemState {
	ns := newOp.NumStateVars()
	nb := newOp.NumBasis()
	out := make([]dgop.ElemState, newOp.NumElements())

	for e := 0; e < newOp.NumElements(); e++ {
		eh := newOp.ElemGeom(e)
		oldPhi := oldBasis.Values(eh.QuadPts)

		rhs := make([][]float64, ns)
		for i := range rhs {
			rhs[i] = make([]float64, nb)
		}
		for q, w0 := range eh.QuadWts {
			w := w0 * eh.DetJ[q]
			sample := make([]float64, ns)
			for i := 0; i < ns; i++ {
				v := 0.0
				for a, phia := range oldPhi[q] {
					v += phia * oldU[e][i][a]
				}
				sample[i] = v
			}
			for i := 0; i < ns; i++ {
				for a, phia := range eh.Phi[q] {
					rhs[i][a] += w * phia * sample[i]
				}
			}
		}

		Ue := newOp.NewState()
		for i := 0; i < ns; i++ {
			for a := 0; a < nb; a++ {
				sum := 0.0
				for b := 0; b < nb; b++ {
					sum += eh.MassInv[a][b] * rhs[i][b]
				}
				Ue[i][a] = sum
			}
		}
		out[e] = Ue
	}
	return out
}
