// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package projection implements spec §4.9's initial-condition/restart
// projection: lifting a physical-space function f(x,t0) onto an operator's
// per-element basis coefficients, either by L2 projection or by direct
// nodal interpolation. This mirrors the teacher's own initial-condition
// handling in fem/domain.go (SetIniIvs), which evaluates a configured
// function at each node/ip to seed the unknowns vector, generalized here
// from nodal-only sampling to the two strategies spec §4.9 calls for.
package projection

import (
	"github.com/gofem-dg/dgfem/dgop"
	"github.com/gofem-dg/dgfem/elemhelp"
)

// Func is the physical-space function an initial condition or restart
// source is specified by: f(x, t0) returns the ns-component state.
type Func func(x []float64, t0 float64) []float64

// L2 implements spec §4.9's L2 projection onto the operator's basis:
//
//	M_e·Û_e = Σ_q Φ_e(ξ_q)ᵀ·f(x(ξ_q),t0)·(detJ·w)(q)
//
// solved per element by applying the element's already-factored mass-matrix
// inverse (elemhelp.Element.MassInv), reusing the same quadrature cache
// dgop.Operator built for residual assembly rather than re-deriving the
// element geometry.
func L2(op *dgop.Operator, f Func, t0 float64) []dgop.ElemState {
	ns := op.NumStateVars()
	nb := op.NumBasis()
	out := make([]dgop.ElemState, op.NumElements())

	for e := 0; e < op.NumElements(); e++ {
		eh := op.ElemGeom(e)
		rhs := make([][]float64, ns)
		for i := range rhs {
			rhs[i] = make([]float64, nb)
		}

		for q, w0 := range eh.QuadWts {
			w := w0 * eh.DetJ[q]
			fq := f(eh.XPhys[q], t0)
			for i := 0; i < ns; i++ {
				for a, phia := range eh.Phi[q] {
					rhs[i][a] += w * phia * fq[i]
				}
			}
		}

		Ue := op.NewState()
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

// Nodal implements spec §4.9's nodal-interpolation fallback:
//
//	Û_e[i][a] = f(x(ξ_a), t0)
//
// evaluated at the operator's own basis node points, lifted to physical
// space per element via elemhelp.MapToPhysical. This interpolates f only for
// a nodal (Lagrange) basis, where coefficients coincide with point values;
// for a modal basis (whose Basis.Nodes() is defined as well) the
// coefficients are still set to the sampled values, which do not
// interpolate f.
func Nodal(op *dgop.Operator, f Func, t0 float64) ([]dgop.ElemState, error) {
	ns := op.NumStateVars()
	nodes := op.Basis.Nodes()
	out := make([]dgop.ElemState, op.NumElements())

	for e := 0; e < op.NumElements(); e++ {
		elem := &op.Mesh.Elements[e]
		xphys, err := elemhelp.MapToPhysical(op.Mesh, elem, nodes)
		if err != nil {
			return nil, err
		}
		Ue := op.NewState()
		for a, x := range xphys {
			fa := f(x, t0)
			for i := 0; i < ns; i++ {
				Ue[i][a] = fa[i]
			}
		}
		out[e] = Ue
	}
	return out, nil
}
