// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/gofem-dg/dgfem/config"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/shp"
)

// buildMesh implements spec §6's built-in structured-grid Mesh source:
// "curved-element mesh generation" is excluded, so every generated element
// is straight-sided, mirroring the teacher's own always-linear GeomOrder=1
// elements. External-file ingestion (config.Mesh.File) is out of scope per
// spec §1 -- only the in-memory mesh.Mesh container is core -- so a
// non-empty File is reported as unsupported rather than silently ignored.
func buildMesh(c *config.Mesh) (*mesh.Mesh, error) {
	if c.File != "" {
		return nil, &Error{Msg: "Mesh.File ingestion is not implemented; use a built-in ElementShape description"}
	}
	switch c.ElementShape {
	case "segment":
		return buildSegmentMesh(c.NumElemsX, c.Xmin, c.Xmax, c.PeriodicBoundariesX)
	case "quad":
		return buildQuadMesh(c.NumElemsX, c.NumElemsY, c.Xmin, c.Xmax, c.Ymin, c.Ymax, c.PeriodicBoundariesX, c.PeriodicBoundariesY)
	case "tri":
		return buildTriMesh(c.NumElemsX, c.NumElemsY, c.Xmin, c.Xmax, c.Ymin, c.Ymax, c.PeriodicBoundariesX, c.PeriodicBoundariesY)
	default:
		return nil, &Error{Msg: "unknown Mesh.ElementShape " + c.ElementShape}
	}
}

// buildSegmentMesh lays out nx equal segments over [xmin,xmax], wiring face 0
// as the element's left face and face 1 as its right face, the same local
// convention projection's and stepper's own test fixtures use.
func buildSegmentMesh(nx int, xmin, xmax float64, periodic bool) (*mesh.Mesh, error) {
	seg := shp.Get("segment")
	h := (xmax - xmin) / float64(nx)

	nodes := make([]mesh.Node, nx+1)
	for i := 0; i <= nx; i++ {
		nodes[i] = mesh.Node{Id: i, X: []float64{xmin + float64(i)*h}}
	}

	elements := make([]mesh.Element, nx)
	var interior []mesh.InteriorFace
	var boundary []mesh.BoundaryFace

	for i := 0; i < nx; i++ {
		elements[i] = mesh.Element{
			Id: i, Shape: seg, GeomOrder: 1, NodeIDs: []int{i, i + 1},
			Faces: make([]mesh.FaceRef, 2),
		}
	}

	for i := 0; i < nx-1; i++ {
		idx := len(interior)
		interior = append(interior, mesh.InteriorFace{ElemL: i, FaceL: 1, ElemR: i + 1, FaceR: 0, NodeIDs: []int{i + 1}})
		elements[i].Faces[1] = mesh.FaceRef{Kind: mesh.InteriorKind, Index: idx}
		elements[i+1].Faces[0] = mesh.FaceRef{Kind: mesh.InteriorKind, Index: idx}
	}

	if periodic {
		idx := len(interior)
		interior = append(interior, mesh.InteriorFace{ElemL: nx - 1, FaceL: 1, ElemR: 0, FaceR: 0, NodeIDs: []int{nx}, Periodic: true})
		elements[nx-1].Faces[1] = mesh.FaceRef{Kind: mesh.InteriorKind, Index: idx}
		elements[0].Faces[0] = mesh.FaceRef{Kind: mesh.InteriorKind, Index: idx}
	} else {
		bidx := len(boundary)
		boundary = append(boundary, mesh.BoundaryFace{Elem: 0, Face: 0, NodeIDs: []int{0}, Group: "x1"})
		elements[0].Faces[0] = mesh.FaceRef{Kind: mesh.BoundaryKind, Index: bidx}
		bidx = len(boundary)
		boundary = append(boundary, mesh.BoundaryFace{Elem: nx - 1, Face: 1, NodeIDs: []int{nx}, Group: "x2"})
		elements[nx-1].Faces[1] = mesh.FaceRef{Kind: mesh.BoundaryKind, Index: bidx}
	}

	return mesh.Build(nodes, elements, interior, boundary)
}

// quadNodeID returns the node ID of grid point (i,j) on an (nx+1)x(ny+1)
// structured grid.
func quadNodeID(nx, i, j int) int { return j*(nx+1) + i }

// buildQuadMesh lays out nx*ny equal cells over [xmin,xmax]x[ymin,ymax],
// corner order (bl,br,tl,tr) and face order (bottom,right,top,left) matching
// elemhelp's own oneQuadMesh test fixture, so BuildElement's Jacobian sign
// convention is exercised the same way here as there.
func buildQuadMesh(nx, ny int, xmin, xmax, ymin, ymax float64, periodicX, periodicY bool) (*mesh.Mesh, error) {
	q := shp.Get("quad")
	hx := (xmax - xmin) / float64(nx)
	hy := (ymax - ymin) / float64(ny)

	nodes := make([]mesh.Node, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			nodes[quadNodeID(nx, i, j)] = mesh.Node{Id: quadNodeID(nx, i, j), X: []float64{xmin + float64(i)*hx, ymin + float64(j)*hy}}
		}
	}

	elemID := func(i, j int) int { return j*nx + i }
	elements := make([]mesh.Element, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			bl, br := quadNodeID(nx, i, j), quadNodeID(nx, i+1, j)
			tl, tr := quadNodeID(nx, i, j+1), quadNodeID(nx, i+1, j+1)
			elements[elemID(i, j)] = mesh.Element{
				Id: elemID(i, j), Shape: q, GeomOrder: 1, NodeIDs: []int{bl, br, tl, tr},
				Faces: make([]mesh.FaceRef, 4),
			}
		}
	}

	var interior []mesh.InteriorFace
	var boundary []mesh.BoundaryFace
	addInterior := func(eL, faceL, eR, faceR int, nodeIDs []int, periodic bool) {
		idx := len(interior)
		interior = append(interior, mesh.InteriorFace{ElemL: eL, FaceL: faceL, ElemR: eR, FaceR: faceR, NodeIDs: nodeIDs, Periodic: periodic})
		elements[eL].Faces[faceL] = mesh.FaceRef{Kind: mesh.InteriorKind, Index: idx}
		elements[eR].Faces[faceR] = mesh.FaceRef{Kind: mesh.InteriorKind, Index: idx}
	}
	addBoundary := func(e, face int, nodeIDs []int, group string) {
		idx := len(boundary)
		boundary = append(boundary, mesh.BoundaryFace{Elem: e, Face: face, NodeIDs: nodeIDs, Group: group})
		elements[e].Faces[face] = mesh.FaceRef{Kind: mesh.BoundaryKind, Index: idx}
	}

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			e := elemID(i, j)
			bl, br := quadNodeID(nx, i, j), quadNodeID(nx, i+1, j)
			tl, tr := quadNodeID(nx, i, j+1), quadNodeID(nx, i+1, j+1)

			// right neighbor / face1<->face3
			if i+1 < nx {
				addInterior(e, 1, elemID(i+1, j), 3, []int{br, tr}, false)
			} else if periodicX {
				addInterior(e, 1, elemID(0, j), 3, []int{br, tr}, true)
			} else {
				addBoundary(e, 1, []int{br, tr}, "x2")
			}
			// left boundary only at i==0 and non-periodic (periodic/interior handled from the right side above)
			if i == 0 && !periodicX {
				addBoundary(e, 3, []int{tl, bl}, "x1")
			}
			// top neighbor / face2<->face0
			if j+1 < ny {
				addInterior(e, 2, elemID(i, j+1), 0, []int{tr, tl}, false)
			} else if periodicY {
				addInterior(e, 2, elemID(i, 0), 0, []int{tr, tl}, true)
			} else {
				addBoundary(e, 2, []int{tr, tl}, "y2")
			}
			if j == 0 && !periodicY {
				addBoundary(e, 0, []int{bl, br}, "y1")
			}
		}
	}

	return mesh.Build(nodes, elements, interior, boundary)
}

// buildTriMesh generates the same structured grid as buildQuadMesh, then
// splits each cell along its bl-tr diagonal into two triangles, the
// simplest straight-sided triangulation of a structured grid and the one
// any textbook FEM mesh generator reaches for first.
func buildTriMesh(nx, ny int, xmin, xmax, ymin, ymax float64, periodicX, periodicY bool) (*mesh.Mesh, error) {
	if periodicX || periodicY {
		return nil, &Error{Msg: "periodic boundaries are not supported for a built-in tri mesh"}
	}
	tri := shp.Get("tri")
	hx := (xmax - xmin) / float64(nx)
	hy := (ymax - ymin) / float64(ny)

	nodes := make([]mesh.Node, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			nodes[quadNodeID(nx, i, j)] = mesh.Node{Id: quadNodeID(nx, i, j), X: []float64{xmin + float64(i)*hx, ymin + float64(j)*hy}}
		}
	}

	// two triangles per cell: lower (bl,br,tr) and upper (bl,tr,tl), split
	// along the bl-tr diagonal, per triShape's face convention
	// face0=(v1,v2), face1=(v2,v0), face2=(v0,v1).
	elemID := func(i, j, half int) int { return 2 * (j*nx + i) + half }
	elements := make([]mesh.Element, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			bl, br := quadNodeID(nx, i, j), quadNodeID(nx, i+1, j)
			tl, tr := quadNodeID(nx, i, j+1), quadNodeID(nx, i+1, j+1)
			elements[elemID(i, j, 0)] = mesh.Element{
				Id: elemID(i, j, 0), Shape: tri, GeomOrder: 1, NodeIDs: []int{bl, br, tr},
				Faces: make([]mesh.FaceRef, 3),
			}
			elements[elemID(i, j, 1)] = mesh.Element{
				Id: elemID(i, j, 1), Shape: tri, GeomOrder: 1, NodeIDs: []int{bl, tr, tl},
				Faces: make([]mesh.FaceRef, 3),
			}
		}
	}

	var interior []mesh.InteriorFace
	var boundary []mesh.BoundaryFace
	addInterior := func(eL, faceL, eR, faceR int, nodeIDs []int) {
		idx := len(interior)
		interior = append(interior, mesh.InteriorFace{ElemL: eL, FaceL: faceL, ElemR: eR, FaceR: faceR, NodeIDs: nodeIDs})
		elements[eL].Faces[faceL] = mesh.FaceRef{Kind: mesh.InteriorKind, Index: idx}
		elements[eR].Faces[faceR] = mesh.FaceRef{Kind: mesh.InteriorKind, Index: idx}
	}
	addBoundary := func(e, face int, nodeIDs []int, group string) {
		idx := len(boundary)
		boundary = append(boundary, mesh.BoundaryFace{Elem: e, Face: face, NodeIDs: nodeIDs, Group: group})
		elements[e].Faces[face] = mesh.FaceRef{Kind: mesh.BoundaryKind, Index: idx}
	}

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			bl, br := quadNodeID(nx, i, j), quadNodeID(nx, i+1, j)
			tl, tr := quadNodeID(nx, i, j+1), quadNodeID(nx, i+1, j+1)
			lower, upper := elemID(i, j, 0), elemID(i, j, 1)

			// lower is (v0,v1,v2)=(bl,br,tr): face1=(v2,v0)=(tr,bl) is the
			// diagonal; upper is (v0,v1,v2)=(bl,tr,tl): face2=(v0,v1)=(bl,tr)
			// is the same diagonal from the other side.
			addInterior(lower, 1, upper, 2, []int{tr, bl})

			// lower's face2=(v0,v1)=(bl,br), the bottom edge: a y1 boundary
			// unless j>0, where it is upper(i,j-1)'s face0=(v1,v2)=(tr,tl)
			// top edge -- the same physical nodes one row down, already
			// coupled from that side while row j-1 was processed.
			if j == 0 {
				addBoundary(lower, 2, []int{bl, br}, "y1")
			}
			// lower's face0=(v1,v2)=(br,tr), the right edge: an x2 boundary
			// unless i+1<nx, where it is upper(i+1,j)'s face1=(v2,v0)=(tl,bl)
			// left edge, the same physical nodes one column over.
			if i+1 < nx {
				addInterior(lower, 0, elemID(i+1, j, 1), 1, []int{br, tr})
			} else {
				addBoundary(lower, 0, []int{br, tr}, "x2")
			}
			// upper's face0=(v1,v2)=(tr,tl), the top edge: a y2 boundary
			// unless j+1<ny, where it is lower(i,j+1)'s face2=(v0,v1)=(bl,br)
			// bottom edge.
			if j+1 < ny {
				addInterior(upper, 0, elemID(i, j+1, 0), 2, []int{tr, tl})
			} else {
				addBoundary(upper, 0, []int{tr, tl}, "y2")
			}
			// upper's face1=(v2,v0)=(tl,bl), the left edge: an x1 boundary
			// unless i>0, where it is lower(i-1,j)'s face0=(v1,v2)=(br,tr)
			// right edge, already coupled from that side one column earlier.
			if i == 0 {
				addBoundary(upper, 1, []int{tl, bl}, "x1")
			}
		}
	}

	return mesh.Build(nodes, elements, interior, boundary)
}
