// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package basis implements the (shape, polynomial family) pairs of spec §4.2:
// nodal Lagrange bases on segment/quad/tri, modal Legendre bases on
// segment/quad, and a hierarchical H1 basis on the triangle. Every Basis
// evaluates its own values and reference-space gradients at arbitrary
// reference points; the teacher's per-order hardcoded closed forms (Lin2,
// Lin3, Qua4, Qua8, ... in shp/lins.go, shp/quads.go) are generalized here to
// arbitrary order via a generic nodal/tensor-product construction, since the
// spec requires order to be a runtime parameter rather than one Go type per
// order.
package basis

import (
	"github.com/gofem-dg/dgfem/shp"
)

// NodeFamily selects the 1D node distribution underlying a nodal basis.
type NodeFamily int

const (
	Equidistant NodeFamily = iota
	NodeGaussLegendre
	NodeGaussLobatto
)

// Basis is a polynomial family instantiated on a given reference Shape at a
// given order.
type Basis interface {

	// Shape returns the owning reference-element topology.
	Shape() shp.Shape

	// Order returns the polynomial order.
	Order() int

	// NumBasis returns the cardinality nb.
	NumBasis() int

	// Values evaluates all basis functions at n reference points,
	// returning Φ ∈ ℝ^{n × nb}.
	Values(pts [][]float64) [][]float64

	// RefGrads evaluates reference-space gradients at n reference points,
	// returning ∇Φ ∈ ℝ^{n × nb × d}.
	RefGrads(pts [][]float64) [][][]float64

	// Nodes returns the coordinates of the nodal-basis support points
	// (nodal families) or, for modal families, the sample points used to
	// define the node-interpolation contract required by spec §4.9's
	// "nodal interpolation" fallback.
	Nodes() [][]float64
}

// PhysicalGrads computes ∇Φ in physical space from reference gradients and
// the inverse Jacobian, per spec §4.2: (J⁻ᵀ · ∇Φᵀ)ᵀ, pointwise.
func PhysicalGrads(refGrads [][][]float64, jinv [][][]float64) [][][]float64 {
	n := len(refGrads)
	out := make([][][]float64, n)
	for q := 0; q < n; q++ {
		d := len(jinv[q])
		nb := len(refGrads[q])
		out[q] = make([][]float64, nb)
		for a := 0; a < nb; a++ {
			out[q][a] = make([]float64, d)
			for i := 0; i < d; i++ {
				sum := 0.0
				for k := 0; k < d; k++ {
					// (J^-T)_{ik} = (J^-1)_{ki}
					sum += jinv[q][k][i] * refGrads[q][a][k]
				}
				out[q][a][i] = sum
			}
		}
	}
	return out
}

// FaceValuesGrads lifts face-local points to element reference coordinates
// via the owning shape and evaluates values (and, if needPhysGrads, physical
// gradients using jinv at the lifted points) per spec §4.2.
func FaceValuesGrads(b Basis, faceID int, facePts [][]float64, needPhysGrads bool, jinv [][][]float64) (phi [][]float64, physGrads [][][]float64) {
	elemPts := b.Shape().FaceLift(faceID, facePts)
	phi = b.Values(elemPts)
	if needPhysGrads {
		refGrads := b.RefGrads(elemPts)
		physGrads = PhysicalGrads(refGrads, jinv)
	}
	return phi, physGrads
}
