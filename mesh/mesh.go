// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the arena-style mesh container of spec §2.4 and
// §3: nodes, elements, interior faces and boundary-face groups stored in
// flat vectors owned by the Mesh, with cross-references resolved by integer
// ID rather than back-pointers (Design Notes: "Cyclic element↔face
// references... Resolve with arena storage"). This mirrors the teacher's
// inp/msh.go Vert/Cell/CellFaceId arena and its tag-indexed derived maps,
// generalized from inp/msh.go's implicit file-reader construction to an
// explicit Build+Validate contract, since mesh ingestion from external files
// is an excluded collaborator here -- only the in-memory container and its
// structural invariants are core.
package mesh

import (
	"fmt"
	"math"

	"github.com/gofem-dg/dgfem/shp"
)

// Node is a point in ℝ^d.
type Node struct {
	Id int
	X  []float64
}

// FaceKind distinguishes interior from boundary face slots on an element.
type FaceKind int

const (
	InteriorKind FaceKind = iota
	BoundaryKind
)

// FaceRef identifies, for one local face ID of an element, which of the
// mesh's InteriorFaces/BoundaryFaces vectors it resolves to.
type FaceRef struct {
	Kind  FaceKind
	Index int
}

// Element is an ordered node-ID list, the owning shape/geometry order, and
// the ordered list of adjacent faces by local face ID (spec §3).
type Element struct {
	Id        int
	Tag       int
	Shape     shp.Shape
	GeomOrder int
	NodeIDs   []int
	Faces     []FaceRef // len == Shape.NumFaces()
}

// InteriorFace couples two elements across a shared edge/face. Per spec §3:
// face geometry is inferred from the left element; the right side uses the
// same physical positions but the opposite outward normal.
type InteriorFace struct {
	ElemL, FaceL int
	ElemR, FaceR int
	NodeIDs      []int // shared node IDs, in the left element's face-local order
	Periodic     bool  // true if the two sides are geometrically disjoint (wrap-around)
}

// BoundaryFace is a face with only one adjacent element, grouped by name.
type BoundaryFace struct {
	Elem, Face int
	NodeIDs    []int
	Group      string
}

// Mesh is the core's read-only view of the domain: flat vectors of nodes,
// elements, interior faces and named boundary-face groups.
type Mesh struct {
	Ndim          int
	Nodes         []Node
	Elements      []Element
	InteriorFaces []InteriorFace
	BoundaryFaces []BoundaryFace
	BoundaryNames map[string][]int // boundary name -> indices into BoundaryFaces

	Xmin, Xmax, Ymin, Ymax float64
}

// NodeCoords returns the physical coordinates of an element's nodes,
// [nₙ][d], in the element's local node order.
func (m *Mesh) NodeCoords(e *Element) [][]float64 {
	out := make([][]float64, len(e.NodeIDs))
	for i, id := range e.NodeIDs {
		out[i] = m.Nodes[id].X
	}
	return out
}

// computeBounds recomputes the bounding box from Nodes.
func (m *Mesh) computeBounds() {
	if len(m.Nodes) == 0 {
		return
	}
	m.Xmin, m.Xmax = m.Nodes[0].X[0], m.Nodes[0].X[0]
	if m.Ndim > 1 {
		m.Ymin, m.Ymax = m.Nodes[0].X[1], m.Nodes[0].X[1]
	}
	for _, n := range m.Nodes {
		if n.X[0] < m.Xmin {
			m.Xmin = n.X[0]
		}
		if n.X[0] > m.Xmax {
			m.Xmax = n.X[0]
		}
		if m.Ndim > 1 {
			if n.X[1] < m.Ymin {
				m.Ymin = n.X[1]
			}
			if n.X[1] > m.Ymax {
				m.Ymax = n.X[1]
			}
		}
	}
}

// Build assembles a Mesh from already-decoded nodes/elements and face lists
// (the external mesh-ingestion collaborator's output, per spec §1/§6), and
// runs Validate. Panicking on a malformed arena here would be wrong -- a
// MeshError (spec §7) is returned for the driver to report and exit
// nonzero, not a programmer-error panic.
func Build(nodes []Node, elements []Element, interior []InteriorFace, boundary []BoundaryFace) (*Mesh, error) {
	ndim := 1
	if len(nodes) > 0 {
		ndim = len(nodes[0].X)
	}
	m := &Mesh{
		Ndim:          ndim,
		Nodes:         nodes,
		Elements:      elements,
		InteriorFaces: interior,
		BoundaryFaces: boundary,
		BoundaryNames: make(map[string][]int),
	}
	for i, bf := range boundary {
		m.BoundaryNames[bf.Group] = append(m.BoundaryNames[bf.Group], i)
	}
	m.computeBounds()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MeshError is the spec §7 error kind for malformed mesh data: duplicate
// boundary names, dangling faces, or a non-watertight mesh.
type MeshError struct {
	Msg string
}

func (e *MeshError) Error() string { return "mesh: " + e.Msg }

func meshErrf(format string, args ...interface{}) error {
	return &MeshError{Msg: fmt.Sprintf(format, args...)}
}

// Validate checks the structural invariants of spec §3 and the periodic-face
// orientation open question of spec §9 Design Notes.
func (m *Mesh) Validate() error {

	for i, n := range m.Nodes {
		if n.Id != i {
			return meshErrf("nodes must be sequentially numbered: node %d has Id %d", i, n.Id)
		}
	}
	for i, e := range m.Elements {
		if e.Id != i {
			return meshErrf("elements must be sequentially numbered: element %d has Id %d", i, e.Id)
		}
		if e.Shape == nil {
			return meshErrf("element %d has no shape", e.Id)
		}
		if len(e.Faces) != e.Shape.NumFaces() {
			return meshErrf("element %d (%s) has %d face refs, want %d", e.Id, e.Shape.Name(), len(e.Faces), e.Shape.NumFaces())
		}
	}

	// every interior/boundary face slot on an element must resolve back to
	// a face record that in turn points at that same (element, local face).
	for fi, f := range m.InteriorFaces {
		if err := m.checkSlot(f.ElemL, f.FaceL, InteriorKind, fi); err != nil {
			return err
		}
		if err := m.checkSlot(f.ElemR, f.FaceR, InteriorKind, fi); err != nil {
			return err
		}
		if err := m.checkFaceOrientation(f); err != nil {
			return err
		}
	}
	for fi, f := range m.BoundaryFaces {
		if err := m.checkSlot(f.Elem, f.Face, BoundaryKind, fi); err != nil {
			return err
		}
	}

	// no element face slot may be unresolved (dangling): every Faces entry
	// must have been asserted by exactly one of the loops above. Since
	// checkSlot already verifies each referenced slot matches, the
	// remaining check is that no slot's Index falls outside its own array.
	for _, e := range m.Elements {
		for lf, ref := range e.Faces {
			switch ref.Kind {
			case InteriorKind:
				if ref.Index < 0 || ref.Index >= len(m.InteriorFaces) {
					return meshErrf("element %d face %d: dangling interior-face index %d", e.Id, lf, ref.Index)
				}
			case BoundaryKind:
				if ref.Index < 0 || ref.Index >= len(m.BoundaryFaces) {
					return meshErrf("element %d face %d: dangling boundary-face index %d", e.Id, lf, ref.Index)
				}
			}
		}
	}

	return nil
}

func (m *Mesh) checkSlot(elemID, faceLocal int, kind FaceKind, faceIndex int) error {
	if elemID < 0 || elemID >= len(m.Elements) {
		return meshErrf("face %d references unknown element %d", faceIndex, elemID)
	}
	e := m.Elements[elemID]
	if faceLocal < 0 || faceLocal >= len(e.Faces) {
		return meshErrf("face %d references element %d's unknown local face %d", faceIndex, elemID, faceLocal)
	}
	ref := e.Faces[faceLocal]
	if ref.Kind != kind || ref.Index != faceIndex {
		return meshErrf("element %d local face %d does not point back to face %d (kind %v)", elemID, faceLocal, faceIndex, kind)
	}
	return nil
}

// checkFaceOrientation verifies, per spec §9's periodic-face Open Question,
// that a non-periodic interior face's two sides lift to the same physical
// coordinates, and that a periodic face's two sides lift to a constant
// translation of each other (same relative ordering, consistent offset).
// Violations are MeshErrors, never a silently-swapped sign.
func (m *Mesh) checkFaceOrientation(f InteriorFace) error {
	const tol = 1e-9

	eL := &m.Elements[f.ElemL]
	eR := &m.Elements[f.ElemR]
	faceShape := eL.Shape.FaceShape()

	var faceRefPts [][]float64
	if faceShape == nil {
		faceRefPts = [][]float64{{}}
	} else {
		faceRefPts = faceShape.PrincipalNodes()
	}

	lPts := eL.Shape.FaceLift(f.FaceL, faceRefPts)
	rPts := eR.Shape.FaceLift(f.FaceR, faceRefPts)

	xL := lift(m, eL, lPts)
	xR := lift(m, eR, rPts)

	if len(xL) == 0 {
		return nil
	}

	offset := sub(xR[0], xL[0])
	for i := range xL {
		got := sub(xR[i], xL[i])
		if dist(got, offset) > tol {
			return meshErrf("interior face (elem %d face %d)/(elem %d face %d): inconsistent side-to-side offset at corner %d", f.ElemL, f.FaceL, f.ElemR, f.FaceR, i)
		}
	}
	if !f.Periodic && dist(offset, make([]float64, len(offset))) > tol {
		return meshErrf("interior face (elem %d face %d)/(elem %d face %d) is not marked periodic but left/right physical positions differ", f.ElemL, f.FaceL, f.ElemR, f.FaceR)
	}
	return nil
}

// lift maps reference-space face-corner points to physical space assuming
// straight (order-1) element geometry: x(ξ) = Σᵢ Nᵢ(ξ)·X_i using the
// element's own principal-node linear shape functions. Curved-element
// geometry is a Non-goal (spec §1), so a fuller isoparametric mapping is not
// needed for this structural check.
func lift(m *Mesh, e *Element, refPts [][]float64) [][]float64 {
	coords := m.NodeCoords(e)
	out := make([][]float64, len(refPts))
	for i, ref := range refPts {
		out[i] = affineMap(e.Shape, coords, ref)
	}
	return out
}

// affineMap evaluates the order-1 isoparametric map at a reference point
// using the shape's principal nodes as a barycentric/tensor basis.
func affineMap(s shp.Shape, coords [][]float64, ref []float64) []float64 {
	corners := s.PrincipalNodes()
	d := len(ref)
	x := make([]float64, d)
	switch s.Name() {
	case "segment":
		t := (ref[0] + 1) / 2
		for k := 0; k < d; k++ {
			x[k] = (1-t)*coords[0][k] + t*coords[1][k]
		}
	case "quad":
		r, ss := ref[0], ref[1]
		n := []float64{
			0.25 * (1 - r) * (1 - ss),
			0.25 * (1 + r) * (1 - ss),
			0.25 * (1 - r) * (1 + ss),
			0.25 * (1 + r) * (1 + ss),
		}
		for k := 0; k < d; k++ {
			for a := range n {
				x[k] += n[a] * coords[a][k]
			}
		}
	case "tri":
		r, ss := ref[0], ref[1]
		n := []float64{1 - r - ss, r, ss}
		for k := 0; k < d; k++ {
			for a := range n {
				x[k] += n[a] * coords[a][k]
			}
		}
	default:
		_ = corners
		if len(coords) > 0 {
			copy(x, coords[0])
		}
	}
	return x
}

func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func dist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
