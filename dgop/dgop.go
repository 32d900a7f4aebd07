// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dgop implements spec §4.5's spatial operator: given per-element
// coefficient state, it returns the volume+face+source DG residual,
// mass-matrix-inverted per element, mirroring the teacher's fem/solver.go
// residual-assembly loop (`Solver.assembleRHS`-style element iteration)
// generalized from one-DOF-per-node elasticity/diffusion unknowns to an
// ns-component conservation-law state vector per basis function.
package dgop

import (
	"github.com/gofem-dg/dgfem/basis"
	"github.com/gofem-dg/dgfem/elemhelp"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/numflux"
	"github.com/gofem-dg/dgfem/physics"
	"github.com/gofem-dg/dgfem/quadrature"
)

// ElemState is one element's coefficient state, [ns][nb]: ElemState[i][a] is
// the coefficient of basis function a for state component i.
type ElemState [][]float64

// BoundarySpec describes how a named boundary group resolves its exterior
// state (spec §4.6): either a weak-prescribed/weak-Riemann physics BC kind
// (SlipWall, PressureOutlet, ...) or a directly-supplied Dirichlet function
// of physical position and time.
type BoundarySpec struct {
	Kind      string // physics.BoundaryState kind; empty if Dirichlet is set
	Dirichlet func(x []float64, t float64) []float64
}

// Switches mirrors spec §4.5's solver-construction-time options that bypass
// whole residual contributions.
type Switches struct {
	ConvFluxSwitch bool
	SourceSwitch   bool
}

// Operator is the precomputed (mesh, physics, basis, flux) spatial residual
// operator.
type Operator struct {
	Mesh     *mesh.Mesh
	Physics  physics.Physics
	Basis    basis.Basis
	Flux     numflux.Flux
	Switches Switches
	Source   func(U, x []float64, t float64) []float64 // overrides Physics.Source if non-nil (spec §6 SourceTerms)

	elems     []*elemhelp.Element
	facesI    []interiorFaceGeom
	facesB    []boundaryFaceGeom
	boundary  map[string]BoundarySpec
	nb        int
	ns        int
}

type interiorFaceGeom struct {
	L, R *elemhelp.FaceSide
}

type boundaryFaceGeom struct {
	side  *elemhelp.FaceSide
	group string
}

// New precomputes every element's and face's geometry/basis cache and
// returns an Operator ready for repeated Residual calls, per spec §4.4's
// "precompute per-element Jacobians... and basis evaluations" mandate
// (these quantities never change across time steps on a fixed mesh).
func New(m *mesh.Mesh, phys physics.Physics, b basis.Basis, flux numflux.Flux, quadOrder int, rule quadrature.Rule, boundary map[string]BoundarySpec) (*Operator, error) {
	op := &Operator{
		Mesh: m, Physics: phys, Basis: b, Flux: flux,
		Switches: Switches{ConvFluxSwitch: true, SourceSwitch: true},
		boundary: boundary,
		nb:       b.NumBasis(), ns: phys.NumStateVars(),
	}

	for i := range m.Elements {
		e := &m.Elements[i]
		eh, err := elemhelp.BuildElement(m, e, b, quadOrder, rule)
		if err != nil {
			return nil, err
		}
		op.elems = append(op.elems, eh)
	}

	for _, f := range m.InteriorFaces {
		eL := &m.Elements[f.ElemL]
		eR := &m.Elements[f.ElemR]
		sideL, err := elemhelp.BuildFaceSide(m, eL, f.FaceL, b, quadOrder, rule)
		if err != nil {
			return nil, err
		}
		sideR, err := elemhelp.BuildFaceSide(m, eR, f.FaceR, b, quadOrder, rule)
		if err != nil {
			return nil, err
		}
		op.facesI = append(op.facesI, interiorFaceGeom{L: sideL, R: sideR})
	}

	for _, f := range m.BoundaryFaces {
		e := &m.Elements[f.Elem]
		side, err := elemhelp.BuildFaceSide(m, e, f.Face, b, quadOrder, rule)
		if err != nil {
			return nil, err
		}
		op.facesB = append(op.facesB, boundaryFaceGeom{side: side, group: f.Group})
	}

	return op, nil
}

// traceAt evaluates Σ_a U[i][a]·Phi[q][a] for every state component i at
// face-quadrature point q.
func traceAt(U ElemState, phi []float64) []float64 {
	ns := len(U)
	out := make([]float64, ns)
	for i := 0; i < ns; i++ {
		sum := 0.0
		for a, v := range phi {
			sum += U[i][a] * v
		}
		out[i] = sum
	}
	return out
}

// NewState allocates a zero ElemState of the operator's (ns, nb) shape.
func (op *Operator) NewState() ElemState {
	U := make(ElemState, op.ns)
	for i := range U {
		U[i] = make([]float64, op.nb)
	}
	return U
}

// NumBasis and NumStateVars expose the operator's fixed shape.
func (op *Operator) NumBasis() int     { return op.nb }
func (op *Operator) NumStateVars() int { return op.ns }

// NumElements returns the number of mesh elements the operator was built
// over.
func (op *Operator) NumElements() int { return len(op.elems) }

// ElemGeom exposes one element's precomputed geometry/basis cache, for
// collaborators (e.g. package limiter) that need to resample U at
// quadrature points without duplicating the Jacobian/quadrature bookkeeping.
func (op *Operator) ElemGeom(e int) *elemhelp.Element { return op.elems[e] }
