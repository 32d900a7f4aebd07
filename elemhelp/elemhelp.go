// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elemhelp precomputes, per element and per face, the geometric
// quantities spec §4.4 requires of the "element/face helpers" component:
// isoparametric Jacobians and their inverses/determinants, quadrature-point
// physical coordinates, outward unit face normals and face measure
// weights, and basis values/gradients sampled at those points. This mirrors
// the teacher's shp/algos.go, whose Shape methods (`InvMap`,
// `GetIpsNatCoordsMat`, `GetShapeMatAtIps`) fuse the same per-element
// geometric bookkeeping into the (now split-out, package shp) isoparametric
// Shape type; here it is pulled into its own collaborator per spec §2's
// component list, built against the geometry basis of package basis and the
// mesh of package mesh instead of the teacher's single fused Shape.
package elemhelp

import (
	"github.com/cpmech/gosl/la"

	"github.com/gofem-dg/dgfem/basis"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/shp"
)

// MapToPhysical lifts arbitrary reference points on element e to physical
// coordinates via the same isoparametric geometry map BuildElement applies
// to its quadrature points, generalized to any point set -- used by package
// projection's nodal-interpolation fallback (spec §4.9), which samples at
// the solution basis's own node points rather than at quadrature points.
func MapToPhysical(m *mesh.Mesh, e *mesh.Element, pts [][]float64) ([][]float64, error) {
	geomBasis, err := geometryBasis(e.Shape, e.GeomOrder)
	if err != nil {
		return nil, err
	}
	coords := m.NodeCoords(e)
	geomVals := geomBasis.Values(pts)
	d := e.Shape.Dim()
	xphys := make([][]float64, len(pts))
	for q := range pts {
		xphys[q] = make([]float64, d)
		for a, N := range geomVals[q] {
			for k := 0; k < d; k++ {
				xphys[q][k] += N * coords[a][k]
			}
		}
	}
	return xphys, nil
}

// geometryBasis returns the order-p equidistant-node Lagrange basis used as
// the isoparametric geometry map on shape s, mirroring the teacher's
// Lin2/Qua4/Tri3-family geometry shape functions (shp/lins.go, quads.go,
// tris.go) generalized to runtime order via package basis.
func geometryBasis(s shp.Shape, order int) (basis.Basis, error) {
	switch s.Name() {
	case "segment":
		return basis.NewLagrangeSegment(order, basis.Equidistant), nil
	case "quad":
		return basis.NewLagrangeQuad(order, basis.Equidistant), nil
	case "tri":
		return basis.NewLagrangeTri(order), nil
	}
	return nil, &UnsupportedError{Msg: "no geometry basis for shape " + s.Name()}
}

// UnsupportedError is the spec §7 error kind for a (shape, order) pair this
// package cannot build a geometric helper for.
type UnsupportedError struct{ Msg string }

func (e *UnsupportedError) Error() string { return "unsupported: " + e.Msg }

// NumericError is the spec §7 error kind for a numerical failure during
// geometric precomputation -- a singular isoparametric Jacobian or element
// mass matrix, surfaced by invertSquare's gosl/la.MatInv call.
type NumericError struct{ Msg string }

func (e *NumericError) Error() string { return "numeric: " + e.Msg }

// refFaceNormal returns the constant outward unit normal, in reference
// coordinates, of faceID on shape s. Valid because every shape in package
// shp (segment, quad, tri) is a straight-sided reference polytope, so each
// face's reference-space normal is a fixed direction rather than something
// that must be evaluated pointwise; this is a design choice made here
// rather than widening the shp.Shape interface, since no other collaborator
// needs this information.
func refFaceNormal(s shp.Shape, faceID int) []float64 {
	switch s.Name() {
	case "segment":
		if faceID == 0 {
			return []float64{-1}
		}
		return []float64{1}
	case "quad":
		switch faceID {
		case 0:
			return []float64{0, -1}
		case 1:
			return []float64{1, 0}
		case 2:
			return []float64{0, 1}
		default:
			return []float64{-1, 0}
		}
	case "tri":
		switch faceID {
		case 0:
			inv := 1.0 / sqrt2
			return []float64{inv, inv}
		case 1:
			return []float64{-1, 0}
		default:
			return []float64{0, -1}
		}
	}
	return nil
}

const sqrt2 = 1.4142135623730951

// invertSquare inverts a small dense matrix via gosl/la, mirroring the
// teacher's own Jacobian-inversion call (shp/shp.go: la.MatInv(o.dRdx,
// o.dxdR, MINDET)).
func invertSquare(a [][]float64) (ainv [][]float64, det float64, err error) {
	n := len(a)
	ainv = la.MatAlloc(n, n)
	det, err = la.MatInv(ainv, a, 1e-13)
	if err != nil {
		return nil, 0, &NumericError{Msg: "singular matrix: " + err.Error()}
	}
	return
}
