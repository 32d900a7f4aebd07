// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package restartio implements spec §6's persisted-state contract: a binary
// restart artifact carrying the mesh, the physics identity and its
// parameters, the chosen basis family and order, the current time, and the
// per-element coefficient state. This mirrors the teacher's own choice of
// encoder -- inp/sim.go's Data.Encoder defaults to "gob" -- generalized from
// "whichever encoder the simulation config names" to this solver's single,
// fixed choice, since spec §6 asks for one persisted-state format, not a
// pluggable one.
package restartio

import (
	"encoding/gob"
	"os"

	"github.com/gofem-dg/dgfem/config"
	"github.com/gofem-dg/dgfem/dgop"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/shp"
)

// Error is the spec §7 error kind for a restart artifact that cannot be
// written or read back, following the same per-package error-type
// convention as config.ConfigError, mesh.MeshError and friends.
type Error struct{ Msg string }

func (e *Error) Error() string { return "restartio: " + e.Msg }

// elementRecord is mesh.Element with its shp.Shape interface field replaced
// by its registered name, since gob cannot encode an interface value
// without a concrete type registered for it, and shp.Shape implementations
// are stateless registry singletons looked up by name anyway (shp.Get).
type elementRecord struct {
	Id        int
	Tag       int
	ShapeName string
	GeomOrder int
	NodeIDs   []int
	Faces     []mesh.FaceRef
}

// meshRecord is the gob-safe flattening of mesh.Mesh.
type meshRecord struct {
	Nodes         []mesh.Node
	Elements      []elementRecord
	InteriorFaces []mesh.InteriorFace
	BoundaryFaces []mesh.BoundaryFace
}

func toMeshRecord(m *mesh.Mesh) meshRecord {
	r := meshRecord{
		Nodes:         m.Nodes,
		InteriorFaces: m.InteriorFaces,
		BoundaryFaces: m.BoundaryFaces,
	}
	for _, e := range m.Elements {
		r.Elements = append(r.Elements, elementRecord{
			Id: e.Id, Tag: e.Tag, ShapeName: e.Shape.Name(),
			GeomOrder: e.GeomOrder, NodeIDs: e.NodeIDs, Faces: e.Faces,
		})
	}
	return r
}

func (r meshRecord) rebuild() (*mesh.Mesh, error) {
	elements := make([]mesh.Element, len(r.Elements))
	for i, er := range r.Elements {
		s := shp.Get(er.ShapeName)
		if s == nil {
			return nil, &Error{Msg: "unknown shape name " + er.ShapeName}
		}
		elements[i] = mesh.Element{
			Id: er.Id, Tag: er.Tag, Shape: s,
			GeomOrder: er.GeomOrder, NodeIDs: er.NodeIDs, Faces: er.Faces,
		}
	}
	return mesh.Build(r.Nodes, elements, r.InteriorFaces, r.BoundaryFaces)
}

// Snapshot is the full gob-encoded persisted-state artifact: everything
// spec §6 names (mesh, physics identity+parameters, basis+order, time, U)
// reusing config.Physics/config.Numerics directly, since they are already
// the plain-data description of "which physics/basis and what parameters"
// that a restart needs to record -- no separate record type was needed.
type Snapshot struct {
	Time     float64
	Physics  config.Physics
	Numerics config.Numerics
	Mesh     meshRecord
	U        [][][]float64 // [element][stateVar][basisFn]
}

// Write serializes a solver's current state to path via encoding/gob, the
// teacher's own default encoder choice (inp/sim.go's Data.Encoder).
func Write(path string, t float64, phys config.Physics, num config.Numerics, m *mesh.Mesh, U []dgop.ElemState) error {
	snap := Snapshot{
		Time: t, Physics: phys, Numerics: num, Mesh: toMeshRecord(m),
		U: make([][][]float64, len(U)),
	}
	for e, Ue := range U {
		snap.U[e] = [][]float64(Ue)
	}
	f, err := os.Create(path)
	if err != nil {
		return &Error{Msg: "cannot create " + path + ": " + err.Error()}
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(&snap); err != nil {
		return &Error{Msg: "cannot encode " + path + ": " + err.Error()}
	}
	return nil
}

// Read deserializes a restart artifact, rebuilding the mesh from its
// flattened record (mesh.Build re-validates it, re-deriving the bounds and
// boundary-name index the way a fresh construction would).
func Read(path string) (t float64, phys config.Physics, num config.Numerics, m *mesh.Mesh, U []dgop.ElemState, err error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		err = &Error{Msg: "cannot open " + path + ": " + ferr.Error()}
		return
	}
	defer f.Close()
	var snap Snapshot
	if derr := gob.NewDecoder(f).Decode(&snap); derr != nil {
		err = &Error{Msg: "cannot decode " + path + ": " + derr.Error()}
		return
	}
	m, err = snap.Mesh.rebuild()
	if err != nil {
		return
	}
	t, phys, num = snap.Time, snap.Physics, snap.Numerics
	U = make([]dgop.ElemState, len(snap.U))
	for e, Ue := range snap.U {
		U[e] = dgop.ElemState(Ue)
	}
	return
}
