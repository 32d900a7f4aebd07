// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gofem-dg/dgfem/shp"
)

// twoSegmentMesh builds [0,1]-[1,2] on the x-axis: two segment elements
// sharing node 1, with node 0 and node 2 as boundary faces.
func twoSegmentMesh() (*Mesh, error) {
	seg := shp.Get("segment")
	nodes := []Node{
		{Id: 0, X: []float64{0}},
		{Id: 1, X: []float64{1}},
		{Id: 2, X: []float64{2}},
	}
	elements := []Element{
		{Id: 0, Shape: seg, GeomOrder: 1, NodeIDs: []int{0, 1}, Faces: []FaceRef{{BoundaryKind, 0}, {InteriorKind, 0}}},
		{Id: 1, Shape: seg, GeomOrder: 1, NodeIDs: []int{1, 2}, Faces: []FaceRef{{InteriorKind, 0}, {BoundaryKind, 1}}},
	}
	interior := []InteriorFace{
		{ElemL: 0, FaceL: 1, ElemR: 1, FaceR: 0, NodeIDs: []int{1}},
	}
	boundary := []BoundaryFace{
		{Elem: 0, Face: 0, NodeIDs: []int{0}, Group: "left"},
		{Elem: 1, Face: 1, NodeIDs: []int{2}, Group: "right"},
	}
	return Build(nodes, elements, interior, boundary)
}

func TestBuildTwoSegmentMesh(tst *testing.T) {
	chk.PrintTitle("two-segment 1D mesh validates")
	m, err := twoSegmentMesh()
	if err != nil {
		tst.Fatal(err)
	}
	if len(m.Elements) != 2 || len(m.InteriorFaces) != 1 || len(m.BoundaryFaces) != 2 {
		tst.Errorf("unexpected mesh sizes: %d elems, %d ifaces, %d bfaces", len(m.Elements), len(m.InteriorFaces), len(m.BoundaryFaces))
	}
	if m.Xmin != 0 || m.Xmax != 2 {
		tst.Errorf("bounding box wrong: [%g,%g]", m.Xmin, m.Xmax)
	}
	io.Pfgreen("OK\n")
}

func TestDanglingFaceRefRejected(tst *testing.T) {
	chk.PrintTitle("dangling interior-face index is rejected")
	seg := shp.Get("segment")
	nodes := []Node{{Id: 0, X: []float64{0}}, {Id: 1, X: []float64{1}}}
	elements := []Element{
		{Id: 0, Shape: seg, GeomOrder: 1, NodeIDs: []int{0, 1}, Faces: []FaceRef{{BoundaryKind, 0}, {InteriorKind, 5}}},
	}
	boundary := []BoundaryFace{{Elem: 0, Face: 0, NodeIDs: []int{0}, Group: "left"}}
	_, err := Build(nodes, elements, nil, boundary)
	if err == nil {
		tst.Fatal("expected a MeshError for the dangling interior-face reference")
	}
	if _, ok := err.(*MeshError); !ok {
		tst.Errorf("expected *MeshError, got %T", err)
	}
}

func TestNonPeriodicOffsetRejected(tst *testing.T) {
	chk.PrintTitle("non-periodic interior face with mismatched physical position is rejected")
	seg := shp.Get("segment")
	nodes := []Node{
		{Id: 0, X: []float64{0}},
		{Id: 1, X: []float64{1}},
		{Id: 2, X: []float64{5}}, // deliberately not adjacent to node 1
		{Id: 3, X: []float64{6}},
	}
	elements := []Element{
		{Id: 0, Shape: seg, GeomOrder: 1, NodeIDs: []int{0, 1}, Faces: []FaceRef{{BoundaryKind, 0}, {InteriorKind, 0}}},
		{Id: 1, Shape: seg, GeomOrder: 1, NodeIDs: []int{2, 3}, Faces: []FaceRef{{InteriorKind, 0}, {BoundaryKind, 1}}},
	}
	interior := []InteriorFace{
		{ElemL: 0, FaceL: 1, ElemR: 1, FaceR: 0, NodeIDs: []int{1}, Periodic: false},
	}
	boundary := []BoundaryFace{
		{Elem: 0, Face: 0, NodeIDs: []int{0}, Group: "left"},
		{Elem: 1, Face: 1, NodeIDs: []int{3}, Group: "right"},
	}
	_, err := Build(nodes, elements, interior, boundary)
	if err == nil {
		tst.Fatal("expected a MeshError for mismatched non-periodic face positions")
	}
}

func TestPeriodicOffsetAccepted(tst *testing.T) {
	chk.PrintTitle("periodic interior face with a consistent offset validates")
	seg := shp.Get("segment")
	nodes := []Node{
		{Id: 0, X: []float64{0}},
		{Id: 1, X: []float64{1}},
		{Id: 2, X: []float64{0}}, // wrap point, offset from node 1 by -1
	}
	elements := []Element{
		{Id: 0, Shape: seg, GeomOrder: 1, NodeIDs: []int{0, 1}, Faces: []FaceRef{{BoundaryKind, 0}, {InteriorKind, 0}}},
		{Id: 1, Shape: seg, GeomOrder: 1, NodeIDs: []int{2, 0}, Faces: []FaceRef{{InteriorKind, 0}, {BoundaryKind, 1}}},
	}
	interior := []InteriorFace{
		{ElemL: 0, FaceL: 1, ElemR: 1, FaceR: 0, NodeIDs: []int{1}, Periodic: true},
	}
	boundary := []BoundaryFace{
		{Elem: 0, Face: 0, NodeIDs: []int{0}, Group: "left"},
		{Elem: 1, Face: 1, NodeIDs: []int{0}, Group: "right"},
	}
	_, err := Build(nodes, elements, interior, boundary)
	if err != nil {
		tst.Fatal(err)
	}
}
