// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elemhelp

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/gofem-dg/dgfem/basis"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/quadrature"
)

// FaceSide is the one-sided geometric/basis trace of a face as seen from a
// single adjacent element, per spec §4.4.
type FaceSide struct {
	ElemID  int
	FaceID  int
	QuadPts  [][]float64   // element reference coordinates (lifted), [nq][d]
	XPhys    [][]float64   // physical coordinates at face quad points, [nq][d]
	Nhat     [][]float64   // outward unit normal (this element's side), [nq][d]
	FaceWts  []float64     // physical face quadrature weights (measure-scaled), [nq]
	Phi      [][]float64   // solution-basis trace values, [nq][nb]
	PhysGrad [][][]float64 // solution-basis physical gradients at face points, [nq][nb][d]
}

// BuildFaceSide precomputes one side of a face's geometry and solution-basis
// trace, per spec §4.4/§4.5: the physical normal is obtained by transforming
// the shape's constant reference-space outward normal through J^-T and
// renormalizing (standard isoparametric surface-normal formula), and the
// physical face measure is the reference face weight (the face rule's
// weight times half the edge's reference length) scaled by
// |J^-T·n_ref|·|detJ| (the Nanson-formula area-element factor).
func BuildFaceSide(m *mesh.Mesh, e *mesh.Element, faceID int, solBasis basis.Basis, faceQuadOrder int, rule quadrature.Rule) (*FaceSide, error) {
	geomBasis, err := geometryBasis(e.Shape, e.GeomOrder)
	if err != nil {
		return nil, err
	}

	faceShape := e.Shape.FaceShape()
	var facePts [][]float64
	var faceWts []float64
	if faceShape == nil {
		facePts = [][]float64{{}}
		faceWts = []float64{1}
	} else {
		facePts, faceWts, err = quadrature.Get(faceShape, faceQuadOrder, rule, 0)
		if err != nil {
			return nil, err
		}
	}

	// the face rule's weights live on the face's own parameter interval
	// [-1,1]; an edge whose reference length is not 2 (a triangle's) scales
	// them by half that length
	refScale := 1.0
	if faceShape != nil && faceShape.Dim() == 1 {
		ends := e.Shape.FaceLift(faceID, faceShape.PrincipalNodes())
		sum := 0.0
		for k := range ends[0] {
			dk := ends[1][k] - ends[0][k]
			sum += dk * dk
		}
		refScale = math.Sqrt(sum) / 2
	}

	elemPts := e.Shape.FaceLift(faceID, facePts)
	nq := len(elemPts)
	d := e.Shape.Dim()
	coords := m.NodeCoords(e)
	nref := refFaceNormal(e.Shape, faceID)

	geomGrads := geomBasis.RefGrads(elemPts)

	xphys := make([][]float64, nq)
	nhat := make([][]float64, nq)
	physWts := make([]float64, nq)
	jacInv := make([][][]float64, nq)

	geomVals := geomBasis.Values(elemPts)

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
		jacInv[q] = Jinv

		// n_phys_unnorm_i = Σ_k (J^-1)_{ki} · n_ref_k  (i.e. J^-T · n_ref)
		raw := make([]float64, d)
		for i := 0; i < d; i++ {
			sum := 0.0
			for k := 0; k < d; k++ {
				sum += Jinv[k][i] * nref[k]
			}
			raw[i] = sum
		}
		norm := 0.0
		for _, v := range raw {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		n := make([]float64, d)
		for i := range raw {
			n[i] = raw[i] / norm
		}
		nhat[q] = n
		physWts[q] = faceWts[q] * refScale * norm * math.Abs(det)
	}

	phi := solBasis.Values(elemPts)
	refGrads := solBasis.RefGrads(elemPts)
	physGrad := basis.PhysicalGrads(refGrads, jacInv)

	return &FaceSide{
		ElemID:   e.Id,
		FaceID:   faceID,
		QuadPts:  elemPts,
		XPhys:    xphys,
		Nhat:     nhat,
		FaceWts:  physWts,
		Phi:      phi,
		PhysGrad: physGrad,
	}, nil
}
