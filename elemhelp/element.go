// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elemhelp

import (
	"github.com/cpmech/gosl/la"

	"github.com/gofem-dg/dgfem/basis"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/quadrature"
)

// Element is the precomputed geometric/basis cache for one mesh element's
// volume integration, per spec §4.4.
type Element struct {
	ElemID int
	Shape  string
	Dim    int

	QuadPts  [][]float64   // reference coordinates, [nq][d]
	QuadWts  []float64     // reference quadrature weights, [nq]
	XPhys    [][]float64   // physical coordinates at quad points, [nq][d]
	DetJ     []float64     // |J| at quad points, [nq]
	JacInv   [][][]float64 // J^-1 at quad points, [nq][d][d]
	Phi      [][]float64   // solution-basis values at quad points, [nq][nb]
	PhysGrad [][][]float64 // solution-basis physical gradients, [nq][nb][d]

	NumBasis int
	MassInv  [][]float64 // (M^-1)_{ab}, the reference mass-matrix inverse
}

// BuildElement precomputes the per-element geometry and solution-basis
// sampling for volume integration: Jacobians (from the isoparametric
// geometry basis of order e.GeomOrder), physical quadrature-point
// coordinates, solution-basis values/physical gradients, and the element
// mass matrix's inverse.
func BuildElement(m *mesh.Mesh, e *mesh.Element, solBasis basis.Basis, quadOrder int, rule quadrature.Rule) (*Element, error) {
	geomBasis, err := geometryBasis(e.Shape, e.GeomOrder)
	if err != nil {
		return nil, err
	}

	pts, wts, err := quadrature.Get(e.Shape, quadOrder, rule, 0)
	if err != nil {
		return nil, err
	}
	nq := len(pts)
	d := e.Shape.Dim()
	coords := m.NodeCoords(e)

	geomVals := geomBasis.Values(pts)
	geomGrads := geomBasis.RefGrads(pts)

	xphys := make([][]float64, nq)
	detJ := make([]float64, nq)
	jacInv := make([][][]float64, nq)
	for q := 0; q < nq; q++ {
		xphys[q] = make([]float64, d)
		for a, N := range geomVals[q] {
			for k := 0; k < d; k++ {
				xphys[q][k] += N * coords[a][k]
			}
		}

		J := la.MatAlloc(d, d)
		for i := 0; i < d; i++ {
			for k := 0; k < d; k++ {
				sum := 0.0
				for a := range coords {
					sum += geomGrads[q][a][k] * coords[a][i]
				}
				J[i][k] = sum
			}
		}
		Jinv, det, err := invertSquare(J)
		if err != nil {
			return nil, err
		}
		detJ[q] = det
		jacInv[q] = Jinv
	}

	phi := solBasis.Values(pts)
	refGrads := solBasis.RefGrads(pts)
	physGrad := basis.PhysicalGrads(refGrads, jacInv)

	nb := solBasis.NumBasis()
	Mass := la.MatAlloc(nb, nb)
	for q := 0; q < nq; q++ {
		w := wts[q] * detJ[q]
		for a := 0; a < nb; a++ {
			for b := 0; b < nb; b++ {
				Mass[a][b] += w * phi[q][a] * phi[q][b]
			}
		}
	}
	MassInv, _, err := invertSquare(Mass)
	if err != nil {
		return nil, err
	}

	return &Element{
		ElemID:   e.Id,
		Shape:    e.Shape.Name(),
		Dim:      d,
		QuadPts:  pts,
		QuadWts:  wts,
		XPhys:    xphys,
		DetJ:     detJ,
		JacInv:   jacInv,
		Phi:      phi,
		PhysGrad: physGrad,
		NumBasis: nb,
		MassInv:  MassInv,
	}, nil
}
