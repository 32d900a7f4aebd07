// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func sumRow(row []float64) float64 {
	s := 0.0
	for _, v := range row {
		s += v
	}
	return s
}

func TestLagrangeNodalDelta(tst *testing.T) {
	chk.PrintTitle("Lagrange bases satisfy Φ_j(x_i)=δ_ij at their own nodes")

	check := func(name string, b Basis) {
		nodes := b.Nodes()
		vals := b.Values(nodes)
		for i, row := range vals {
			for j, v := range row {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(v-want) > 1e-9 {
					tst.Errorf("%s: Φ_%d(x_%d)=%g, want %g", name, j, i, v, want)
				}
			}
		}
		io.Pfgreen("%s: nodal delta OK (nb=%d)\n", name, b.NumBasis())
	}

	for p := 1; p <= 4; p++ {
		check("LagrangeSegment-equi", NewLagrangeSegment(p, Equidistant))
		check("LagrangeSegment-GLL", NewLagrangeSegment(p, NodeGaussLobatto))
		check("LagrangeQuad-equi", NewLagrangeQuad(p, Equidistant))
		check("LagrangeTri-equi", NewLagrangeTri(p))
	}
}

func TestPartitionOfUnity(tst *testing.T) {
	chk.PrintTitle("Σ_j Φ_j(x)=1 at sample points")

	samples2D := [][]float64{{0.1, 0.2}, {0.3, 0.05}, {-0.4, 0.6}, {0, 0}}
	samples1D := [][]float64{{0.2}, {-0.7}, {0.95}}

	for p := 1; p <= 4; p++ {
		b := NewLagrangeSegment(p, Equidistant)
		for _, row := range b.Values(samples1D) {
			if math.Abs(sumRow(row)-1) > 1e-9 {
				tst.Errorf("LagrangeSegment p=%d: partition of unity violated: %g", p, sumRow(row))
			}
		}

		bq := NewLagrangeQuad(p, Equidistant)
		for _, row := range bq.Values(samples2D) {
			if math.Abs(sumRow(row)-1) > 1e-9 {
				tst.Errorf("LagrangeQuad p=%d: partition of unity violated: %g", p, sumRow(row))
			}
		}

		// triangle samples must lie in the reference triangle
		triSamples := [][]float64{{0.1, 0.2}, {0.3, 0.05}, {1.0 / 3, 1.0 / 3}}
		bt := NewLagrangeTri(p)
		for _, row := range bt.Values(triSamples) {
			if math.Abs(sumRow(row)-1) > 1e-9 {
				tst.Errorf("LagrangeTri p=%d: partition of unity violated: %g", p, sumRow(row))
			}
		}

		lq := NewLegendreQuad(p)
		_ = lq // Legendre basis only reproduces the constant exactly for the k=0 mode; skip partition-of-unity here.
	}

	io.Pfgreen("partition of unity OK\n")
}

func TestHierarchicH1TriVertexDelta(tst *testing.T) {
	chk.PrintTitle("HierarchicH1Tri vertex functions equal 1 at own corner, 0 at others")
	corners := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	for p := 1; p <= 4; p++ {
		b := NewHierarchicH1Tri(p)
		vals := b.Values(corners)
		for i, row := range vals {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(row[j]-want) > 1e-9 {
					tst.Errorf("order %d: vertex fn %d at corner %d = %g, want %g", p, j, i, row[j], want)
				}
			}
		}
	}
}

func TestHierarchicH1TriNumBasisMatchesValuesWidth(tst *testing.T) {
	chk.PrintTitle("HierarchicH1Tri row width matches NumBasis")
	for p := 1; p <= 5; p++ {
		b := NewHierarchicH1Tri(p)
		rows := b.Values([][]float64{{0.2, 0.3}})
		if len(rows[0]) != b.NumBasis() {
			tst.Errorf("order %d: got %d basis values, want %d", p, len(rows[0]), b.NumBasis())
		}
		grads := b.RefGrads([][]float64{{0.2, 0.3}})
		if len(grads[0]) != b.NumBasis() {
			tst.Errorf("order %d: got %d gradients, want %d", p, len(grads[0]), b.NumBasis())
		}
	}
}

func TestLegendreValuesCountMatchesNumBasis(tst *testing.T) {
	chk.PrintTitle("Legendre segment basis returns NumBasis values/grads")
	for p := 0; p <= 4; p++ {
		b := NewLegendreSegment(p)
		vals := b.Values([][]float64{{0.3}})
		if len(vals[0]) != b.NumBasis() {
			tst.Errorf("order %d: got %d values, want %d", p, len(vals[0]), b.NumBasis())
		}
	}
}
