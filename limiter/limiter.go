// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package limiter implements spec §4.8's positivity-preserving limiters:
// Scalar (a single state component, rescaled around its element mean) and
// Euler (a density pass followed by a pressure-floor pass found by
// bisection). Both act as stepper.Limiter values. There is no teacher
// analogue -- the teacher's FEM elements never need a post-hoc positivity
// correction -- so this package's affine-shrink-about-the-mean construction
// follows spec §4.8's own formula directly.
package limiter

import (
	"math"

	"github.com/gofem-dg/dgfem/dgop"
	"github.com/gofem-dg/dgfem/elemhelp"
)

// samplePhiRows returns the basis-value rows at every quadrature point and
// every basis node of the element -- the two point sets spec §4.8 requires
// the limiter to search over for a minimum.
func samplePhiRows(op *dgop.Operator, eh *elemhelp.Element) [][]float64 {
	rows := make([][]float64, 0, len(eh.Phi)+op.NumBasis())
	rows = append(rows, eh.Phi...)
	rows = append(rows, op.Basis.Values(op.Basis.Nodes())...)
	return rows
}

// sampleValues evaluates one state component at every row of a
// samplePhiRows result.
func sampleValues(phiRows [][]float64, Ui []float64) []float64 {
	vals := make([]float64, len(phiRows))
	for r, phi := range phiRows {
		v := 0.0
		for a, p := range phi {
			v += p * Ui[a]
		}
		vals[r] = v
	}
	return vals
}

// elementMean computes the mass-matrix-weighted mean of one state component
// over an element: ū = (∫U_i(x) dx) / |Ω_e|, evaluated directly from the
// element's quadrature rule rather than via the mass matrix (spec §4.8).
func elementMean(eh *elemhelp.Element, Ui []float64) float64 {
	vol, integral := 0.0, 0.0
	for q, w0 := range eh.QuadWts {
		wj := w0 * eh.DetJ[q]
		vol += wj
		uq := 0.0
		for a, phia := range eh.Phi[q] {
			uq += phia * Ui[a]
		}
		integral += wj * uq
	}
	if vol == 0 {
		return 0
	}
	return integral / vol
}

func minOf(vals []float64) float64 {
	m := math.Inf(1)
	for _, v := range vals {
		if v < m {
			m = v
		}
	}
	return m
}

// thetaFor computes spec §4.8's clamp θ = ū/(ū−u_min), clamped to [0,1].
func thetaFor(mean, uMin float64) float64 {
	if uMin >= 0 {
		return 1
	}
	denom := mean - uMin
	if denom == 0 {
		return 0
	}
	theta := mean / denom
	if theta < 0 {
		theta = 0
	}
	if theta > 1 {
		theta = 1
	}
	return theta
}

// rescale applies U ← ū + θ(U − ū) to one state component's coefficient
// vector, returning a fresh slice.
func rescale(Ui []float64, mean, theta float64) []float64 {
	out := make([]float64, len(Ui))
	for a, v := range Ui {
		out[a] = mean + theta*(v-mean)
	}
	return out
}

func cloneElemState(U dgop.ElemState) dgop.ElemState {
	out := make(dgop.ElemState, len(U))
	for i, row := range U {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
