// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import "github.com/gofem-dg/dgfem/dgop"

// cloneElem deep-copies one element's [ns][nb] coefficient state.
func cloneElem(U dgop.ElemState) dgop.ElemState {
	out := make(dgop.ElemState, len(U))
	for i, row := range U {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// cloneState deep-copies a whole mesh's per-element coefficient state.
func cloneState(U []dgop.ElemState) []dgop.ElemState {
	out := make([]dgop.ElemState, len(U))
	for e, Ue := range U {
		out[e] = cloneElem(Ue)
	}
	return out
}

// axpy returns X + a·R, elementwise over the [nelem][ns][nb] shape, as a
// fresh allocation.
func axpy(X []dgop.ElemState, a float64, R []dgop.ElemState) []dgop.ElemState {
	out := cloneState(X)
	for e := range out {
		for i := range out[e] {
			for k := range out[e][i] {
				out[e][i][k] += a * R[e][i][k]
			}
		}
	}
	return out
}

// combine2 returns a·X + b·Y, elementwise.
func combine2(a float64, X []dgop.ElemState, b float64, Y []dgop.ElemState) []dgop.ElemState {
	out := cloneState(X)
	for e := range out {
		for i := range out[e] {
			for k := range out[e][i] {
				out[e][i][k] = a*X[e][i][k] + b*Y[e][i][k]
			}
		}
	}
	return out
}
