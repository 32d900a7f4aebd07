// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shp implements the reference-element topologies used by the DG
// solver: point, segment, quadrilateral and triangle. A Shape carries no
// polynomial family of its own -- that is the job of package basis -- it
// only answers questions about faces, principal nodes and the face-local to
// element-local reference-coordinate lift.
package shp

import "github.com/cpmech/gosl/chk"

// Shape describes the topology of a reference element.
type Shape interface {

	// Name returns the shape's registered name; e.g. "segment", "quad", "tri".
	Name() string

	// Dim returns the spatial dimension of the shape (0, 1 or 2).
	Dim() int

	// NumFaces returns the number of faces (0 for Point).
	NumFaces() int

	// FaceShape returns the shape of this shape's faces, or nil for Point.
	FaceShape() Shape

	// PrincipalNodes returns the order-1 node coordinates, [nverts][dim].
	PrincipalNodes() [][]float64

	// NumBasis returns the cardinality nb(p) of a complete basis of order p
	// on this shape (Lagrange/Legendre node count, not an implementation
	// detail of any particular basis family).
	NumBasis(order int) int

	// EquidistantNodes returns the order-p equidistant node lattice,
	// [nb(p)][dim], in the shape's canonical node numbering.
	EquidistantNodes(order int) [][]float64

	// FaceLift maps face-local reference points facePts [n][dim-1] to
	// element reference coordinates [n][dim] for the given local face ID.
	FaceLift(faceID int, facePts [][]float64) [][]float64

	// FaceLocalNodes returns, for the given local face ID and order p, the
	// indices (into EquidistantNodes(p)) of the nodes lying on that face.
	FaceLocalNodes(faceID, order int) []int
}

// factory holds all registered shapes by name.
var factory = make(map[string]Shape)

// register adds a shape to the factory; called from each shape's init().
func register(s Shape) {
	factory[s.Name()] = s
}

// Get returns a registered Shape, or nil if geoType is unknown.
func Get(geoType string) Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s
}

// MustGet is like Get but panics (via chk) on an unknown shape name; used
// where the caller has already validated the name at configuration time.
func MustGet(geoType string) Shape {
	s := Get(geoType)
	if s == nil {
		chk.Panic("shp: unknown shape %q", geoType)
	}
	return s
}
