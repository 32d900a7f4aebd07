// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package limiter

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gofem-dg/dgfem/basis"
	"github.com/gofem-dg/dgfem/dgop"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/numflux"
	"github.com/gofem-dg/dgfem/physics"
	"github.com/gofem-dg/dgfem/quadrature"
	"github.com/gofem-dg/dgfem/shp"
)

// periodicRingMesh builds the same 2-segment periodic ring used by dgop's
// and stepper's own tests.
func periodicRingMesh() (*mesh.Mesh, error) {
	seg := shp.Get("segment")
	nodes := []mesh.Node{
		{Id: 0, X: []float64{0}},
		{Id: 1, X: []float64{1}},
		{Id: 2, X: []float64{2}},
	}
	elements := []mesh.Element{
		{Id: 0, Shape: seg, GeomOrder: 1, NodeIDs: []int{0, 1},
			Faces: []mesh.FaceRef{{Kind: mesh.InteriorKind, Index: 1}, {Kind: mesh.InteriorKind, Index: 0}}},
		{Id: 1, Shape: seg, GeomOrder: 1, NodeIDs: []int{1, 2},
			Faces: []mesh.FaceRef{{Kind: mesh.InteriorKind, Index: 0}, {Kind: mesh.InteriorKind, Index: 1}}},
	}
	interior := []mesh.InteriorFace{
		{ElemL: 0, FaceL: 1, ElemR: 1, FaceR: 0, NodeIDs: []int{1}, Periodic: false},
		{ElemL: 1, FaceL: 1, ElemR: 0, FaceR: 0, NodeIDs: []int{2}, Periodic: true},
	}
	return mesh.Build(nodes, elements, interior, nil)
}

func TestScalarLimiterRescalesAroundMeanAndPreservesIt(t *testing.T) {
	chk.PrintTitle("Scalar limiter rescales a negative-dipping element around its mean")
	m, err := periodicRingMesh()
	if err != nil {
		t.Fatal(err)
	}
	phys, err := physics.New("ConstAdvScalar1D")
	if err != nil {
		t.Fatal(err)
	}
	phys.(*physics.ConstAdvScalar).SetVelocity([]float64{1.0})
	b := basis.NewLagrangeSegment(1, basis.Equidistant)
	flux, err := numflux.New("LaxFriedrichs")
	if err != nil {
		t.Fatal(err)
	}
	op, err := dgop.New(m, phys, b, flux, 2, quadrature.GaussLegendre, nil)
	if err != nil {
		t.Fatal(err)
	}

	U := make([]dgop.ElemState, 2)
	for e := range U {
		U[e] = op.NewState()
	}
	// element 0: node values 3.0 and -1.0 -- mean 1.0, minimum -1.0 < 0.
	U[0][0][0], U[0][0][1] = 3.0, -1.0
	// element 1: both nodes positive, should be left untouched.
	U[1][0][0], U[1][0][1] = 2.0, 2.0

	meanBefore := elementMean(op.ElemGeom(0), U[0][0])

	s := Scalar{Component: 0}
	out := s.Apply(op, U)

	eh0 := op.ElemGeom(0)
	minAfter := minOf(sampleValues(samplePhiRows(op, eh0), out[0][0]))
	if minAfter < -1e-9 {
		t.Fatalf("expected non-negative minimum after limiting, got %g", minAfter)
	}
	meanAfter := elementMean(eh0, out[0][0])
	if math.Abs(meanAfter-meanBefore) > 1e-10 {
		t.Fatalf("expected the affine shrink to preserve the element mean: before=%g after=%g", meanBefore, meanAfter)
	}

	if out[1][0][0] != 2.0 || out[1][0][1] != 2.0 {
		t.Fatalf("expected element 1 (already non-negative) to be left untouched, got %v", out[1][0])
	}
	io.Pfgreen("OK\n")
}

func TestEulerLimiterRestoresPositivePressure(t *testing.T) {
	chk.PrintTitle("Euler limiter clamps an element with a negative sampled pressure")
	m, err := periodicRingMesh()
	if err != nil {
		t.Fatal(err)
	}
	phys, err := physics.New("Euler1D")
	if err != nil {
		t.Fatal(err)
	}
	b := basis.NewLagrangeSegment(1, basis.Equidistant)
	flux, err := numflux.New("LaxFriedrichs")
	if err != nil {
		t.Fatal(err)
	}
	op, err := dgop.New(m, phys, b, flux, 2, quadrature.GaussLegendre, nil)
	if err != nil {
		t.Fatal(err)
	}

	U := make([]dgop.ElemState, 2)
	for e := range U {
		U[e] = op.NewState()
	}
	// element 0: constant density/energy, antisymmetric momentum (mean
	// momentum is exactly zero, so the element-mean state has pressure 1.0,
	// but each node individually has pressure 1 - 0.5*50^2*0.4 = -499).
	U[0][0][0], U[0][0][1] = 1.0, 1.0   // density
	U[0][1][0], U[0][1][1] = 50.0, -50.0 // momentum
	U[0][2][0], U[0][2][1] = 2.5, 2.5   // total energy
	// element 1: a calm uniform state, left untouched.
	U[1][0][0], U[1][0][1] = 1.0, 1.0
	U[1][1][0], U[1][1][1] = 0.1, 0.1
	U[1][2][0], U[1][2][1] = 2.5, 2.5

	lim := Euler{}
	out := lim.Apply(op, U)

	eh0 := op.ElemGeom(0)
	phiRows := samplePhiRows(op, eh0)
	minP := math.Inf(1)
	for _, phi := range phiRows {
		state := make([]float64, 3)
		for i := 0; i < 3; i++ {
			v := 0.0
			for a, p := range phi {
				v += p * out[0][i][a]
			}
			state[i] = v
		}
		p, err := phys.ComputeScalar("Pressure", state)
		if err != nil {
			t.Fatal(err)
		}
		if p < minP {
			minP = p
		}
	}
	if minP < -1e-6 {
		t.Fatalf("expected the limited element's minimum sampled pressure to be non-negative, got %g", minP)
	}

	for i := 0; i < 3; i++ {
		for a := 0; a < 2; a++ {
			if out[1][i][a] != U[1][i][a] {
				t.Fatalf("expected the already-admissible element to be left untouched, component %d node %d: %g vs %g", i, a, out[1][i][a], U[1][i][a])
			}
		}
	}
	io.Pfgreen("OK\n")
}
