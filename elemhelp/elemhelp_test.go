// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elemhelp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gofem-dg/dgfem/basis"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/quadrature"
	"github.com/gofem-dg/dgfem/shp"
)

// oneQuadMesh builds a single quad element [0,2]x[0,1], with physical
// corners in the same order as quadShape.PrincipalNodes(), so the
// isoparametric Jacobian is the constant diagonal diag(1, 0.5).
func oneQuadMesh() (*mesh.Mesh, *mesh.Element) {
	q := shp.Get("quad")
	nodes := []mesh.Node{
		{Id: 0, X: []float64{0, 0}},
		{Id: 1, X: []float64{2, 0}},
		{Id: 2, X: []float64{0, 1}},
		{Id: 3, X: []float64{2, 1}},
	}
	e := mesh.Element{
		Id: 0, Shape: q, GeomOrder: 1, NodeIDs: []int{0, 1, 2, 3},
		Faces: []mesh.FaceRef{
			{Kind: mesh.BoundaryKind, Index: 0}, {Kind: mesh.BoundaryKind, Index: 1},
			{Kind: mesh.BoundaryKind, Index: 2}, {Kind: mesh.BoundaryKind, Index: 3},
		},
	}
	boundary := []mesh.BoundaryFace{
		{Elem: 0, Face: 0, NodeIDs: []int{0, 1}, Group: "bottom"},
		{Elem: 0, Face: 1, NodeIDs: []int{1, 3}, Group: "right"},
		{Elem: 0, Face: 2, NodeIDs: []int{3, 2}, Group: "top"},
		{Elem: 0, Face: 3, NodeIDs: []int{2, 0}, Group: "left"},
	}
	m, err := mesh.Build(nodes, []mesh.Element{e}, nil, boundary)
	if err != nil {
		panic(err)
	}
	return m, &m.Elements[0]
}

func TestElementJacobianConstantAndAreaMatches(t *testing.T) {
	chk.PrintTitle("BuildElement: constant Jacobian on an axis-aligned quad")
	m, e := oneQuadMesh()
	solBasis := basis.NewLagrangeQuad(1, basis.Equidistant)
	eh, err := BuildElement(m, e, solBasis, 2, quadrature.GaussLegendre)
	if err != nil {
		t.Fatal(err)
	}
	for q, det := range eh.DetJ {
		if math.Abs(det-0.5) > 1e-12 {
			t.Fatalf("quad point %d: expected detJ=0.5, got %g", q, det)
		}
	}
	for q, x := range eh.XPhys {
		r, s := eh.QuadPts[q][0], eh.QuadPts[q][1]
		wantX, wantY := 1+r, 0.5+0.5*s
		if math.Abs(x[0]-wantX) > 1e-12 || math.Abs(x[1]-wantY) > 1e-12 {
			t.Fatalf("quad point %d: expected physical (%g,%g), got (%g,%g)", q, wantX, wantY, x[0], x[1])
		}
	}
	io.Pfgreen("OK\n")
}

// massEntry recomputes one raw mass-matrix entry (not its inverse) for the
// partition-of-unity check, by re-integrating directly -- BuildElement only
// stores the inverse, since that is all the spatial operator needs.
func (eh *Element) massEntry(a, b int) float64 {
	sum := 0.0
	for q := range eh.QuadWts {
		sum += eh.QuadWts[q] * eh.DetJ[q] * eh.Phi[q][a] * eh.Phi[q][b]
	}
	return sum
}

func TestElementMassMatrixPartitionOfUnity(t *testing.T) {
	m, e := oneQuadMesh()
	solBasis := basis.NewLagrangeQuad(2, basis.Equidistant)
	eh, err := BuildElement(m, e, solBasis, 4, quadrature.GaussLegendre)
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for a := 0; a < eh.NumBasis; a++ {
		for b := 0; b < eh.NumBasis; b++ {
			total += eh.massEntry(a, b)
		}
	}
	area := 2.0 * 1.0
	if math.Abs(total-area) > 1e-10 {
		t.Fatalf("expected sum of mass-matrix entries to equal the physical area %g (partition of unity), got %g", area, total)
	}
}

func TestFaceSideOutwardNormalAndLength(t *testing.T) {
	chk.PrintTitle("BuildFaceSide: axis-aligned outward normal and physical face length")
	m, e := oneQuadMesh()
	solBasis := basis.NewLagrangeQuad(1, basis.Equidistant)

	fs, err := BuildFaceSide(m, e, 1, solBasis, 2, quadrature.GaussLegendre) // right face, x=2
	if err != nil {
		t.Fatal(err)
	}
	for q, n := range fs.Nhat {
		if math.Abs(n[0]-1.0) > 1e-12 || math.Abs(n[1]) > 1e-12 {
			t.Fatalf("face point %d: expected outward normal (1,0), got (%g,%g)", q, n[0], n[1])
		}
	}
	length := 0.0
	for _, w := range fs.FaceWts {
		length += w
	}
	if math.Abs(length-1.0) > 1e-10 {
		t.Fatalf("expected physical face length 1.0 (y from 0 to 1), got %g", length)
	}
}

func TestFaceSideBottomNormal(t *testing.T) {
	m, e := oneQuadMesh()
	solBasis := basis.NewLagrangeQuad(1, basis.Equidistant)
	fs, err := BuildFaceSide(m, e, 0, solBasis, 2, quadrature.GaussLegendre) // bottom face, y=0
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range fs.Nhat {
		if math.Abs(n[0]) > 1e-12 || math.Abs(n[1]+1.0) > 1e-12 {
			t.Fatalf("expected outward normal (0,-1), got (%g,%g)", n[0], n[1])
		}
	}
}
