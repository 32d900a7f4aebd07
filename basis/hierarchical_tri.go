// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gofem-dg/dgfem/shp"
)

// HierarchicH1Tri is the hierarchical H1 basis on the reference triangle
// (vertices (0,0),(1,0),(0,1)): affine vertex functions, Kern-type edge modes
// built from barycentric products times Legendre polynomials of the
// edge-local barycentric difference, and bubble modes built the same way
// from all three barycentric coordinates. Using L2=x, L3=y, L1=1-x-y
// directly as the two independent reference coordinates (rather than three
// normalized area coordinates), Cartesian and barycentric derivatives
// coincide here, so no extra factor-of-2 barycentric-to-Cartesian gradient
// conversion is needed in this parametrization.
type HierarchicH1Tri struct {
	order int
}

// NewHierarchicH1Tri requires order>=1: the three affine vertex functions
// are always present, so there is no order-0 member of this family.
func NewHierarchicH1Tri(order int) *HierarchicH1Tri {
	if order < 1 {
		chk.Panic("basis: HierarchicH1Tri requires order>=1, got %d", order)
	}
	return &HierarchicH1Tri{order: order}
}

func (b *HierarchicH1Tri) Shape() shp.Shape { return shp.Get("tri") }
func (b *HierarchicH1Tri) Order() int       { return b.order }

func (b *HierarchicH1Tri) NumBasis() int {
	p := b.order
	return (p + 1) * (p + 2) / 2
}

// hierTriEdges lists, for each of the 3 edges, the pair of barycentric indices
// (0-based into L) spanning it: edge0=(1,2), edge1=(2,0), edge2=(0,1).
var hierTriEdges = [3][2]int{{1, 2}, {2, 0}, {0, 1}}

func hierTriBary(pt []float64) (L [3]float64, dL [3][2]float64) {
	x, y := pt[0], pt[1]
	L = [3]float64{1 - x - y, x, y}
	dL = [3][2]float64{{-1, -1}, {1, 0}, {0, 1}}
	return
}

func (b *HierarchicH1Tri) Values(pts [][]float64) [][]float64 {
	p := b.order
	nb := b.NumBasis()
	out := make([][]float64, len(pts))
	for q, pt := range pts {
		L, _ := hierTriBary(pt)
		row := make([]float64, 0, nb)

		// vertex functions
		row = append(row, L[0], L[1], L[2])

		// edge modes
		for _, e := range hierTriEdges {
			a, bb := e[0], e[1]
			t := L[bb] - L[a]
			leg, _ := legendreVal(p, t)
			for k := 2; k <= p; k++ {
				row = append(row, L[a]*L[bb]*leg[k-2])
			}
		}

		// bubble modes
		m := p - 3
		for s := 0; s <= m; s++ {
			for i := 0; i <= s; i++ {
				j := s - i
				t1 := L[1] - L[0]
				t2 := L[2] - L[1]
				leg1, _ := legendreVal(i, t1)
				leg2, _ := legendreVal(j, t2)
				row = append(row, L[0]*L[1]*L[2]*leg1[i]*leg2[j])
			}
		}
		out[q] = row
	}
	return out
}

func (b *HierarchicH1Tri) RefGrads(pts [][]float64) [][][]float64 {
	p := b.order
	nb := b.NumBasis()
	out := make([][][]float64, len(pts))
	for q, pt := range pts {
		L, dL := hierTriBary(pt)
		row := make([][]float64, 0, nb)

		// vertex functions
		row = append(row, []float64{dL[0][0], dL[0][1]}, []float64{dL[1][0], dL[1][1]}, []float64{dL[2][0], dL[2][1]})

		// edge modes: φ = L_a L_b P(t), t = L_b - L_a
		for _, e := range hierTriEdges {
			a, bb := e[0], e[1]
			t := L[bb] - L[a]
			dtx := dL[bb][0] - dL[a][0]
			dty := dL[bb][1] - dL[a][1]
			leg, dleg := legendreVal(p, t)
			for k := 2; k <= p; k++ {
				n := k - 2
				Pn, dPn := leg[n], dleg[n]
				gx := dL[a][0]*L[bb]*Pn + L[a]*dL[bb][0]*Pn + L[a]*L[bb]*dPn*dtx
				gy := dL[a][1]*L[bb]*Pn + L[a]*dL[bb][1]*Pn + L[a]*L[bb]*dPn*dty
				row = append(row, []float64{gx, gy})
			}
		}

		// bubble modes: φ = L0 L1 L2 P_i(t1) P_j(t2), t1=L1-L0, t2=L2-L1
		m := p - 3
		t1 := L[1] - L[0]
		t2 := L[2] - L[1]
		dt1x, dt1y := dL[1][0]-dL[0][0], dL[1][1]-dL[0][1]
		dt2x, dt2y := dL[2][0]-dL[1][0], dL[2][1]-dL[1][1]
		for s := 0; s <= m; s++ {
			for i := 0; i <= s; i++ {
				j := s - i
				leg1, dleg1 := legendreVal(i, t1)
				leg2, dleg2 := legendreVal(j, t2)
				Pi, dPi := leg1[i], dleg1[i]
				Pj, dPj := leg2[j], dleg2[j]
				bubble := L[0] * L[1] * L[2]
				dbx := dL[0][0]*L[1]*L[2] + L[0]*dL[1][0]*L[2] + L[0]*L[1]*dL[2][0]
				dby := dL[0][1]*L[1]*L[2] + L[0]*dL[1][1]*L[2] + L[0]*L[1]*dL[2][1]
				gx := dbx*Pi*Pj + bubble*dPi*dt1x*Pj + bubble*Pi*dPj*dt2x
				gy := dby*Pi*Pj + bubble*dPi*dt1y*Pj + bubble*Pi*dPj*dt2y
				row = append(row, []float64{gx, gy})
			}
		}
		out[q] = row
	}
	return out
}

// Nodes returns the principal vertices plus the equidistant-lattice nodes of
// matching order, used only as the sample set for spec §4.9's
// nodal-interpolation fallback (a modal/hierarchical basis has no true
// per-function nodes).
func (b *HierarchicH1Tri) Nodes() [][]float64 {
	return shp.Get("tri").EquidistantNodes(b.order)
}
