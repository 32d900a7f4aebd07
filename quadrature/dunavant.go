// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadrature

import "github.com/cpmech/gosl/chk"

// dunavantOrbit holds one symmetry orbit of a Dunavant rule: its barycentric
// (L1,L2,L3) generator and its per-point normalized weight (a rule's weights
// sum to 1 over all its points).
type dunavantOrbit struct {
	kind string // "centroid", "perm3" (permutations of (b,a,a))
	a, b float64
	w    float64
}

// dunavantTables maps the exact polynomial degree a table integrates to its
// orbit list, for the reference triangle with vertices (0,0),(1,0),(0,1)
// (area 0.5). Standard low-order Dunavant (1985) rules.
var dunavantTables = []struct {
	degree int
	orbits []dunavantOrbit
}{
	{1, []dunavantOrbit{
		{"centroid", 0, 0, 1.0},
	}},
	{2, []dunavantOrbit{
		{"perm3", 1.0 / 6.0, 2.0 / 3.0, 1.0 / 3.0},
	}},
	{3, []dunavantOrbit{
		{"centroid", 0, 0, -27.0 / 48.0},
		{"perm3", 0.2, 0.6, 25.0 / 48.0},
	}},
	{4, []dunavantOrbit{
		{"perm3", 0.108103018168070, 0.445948490915965, 0.223381589678011},
		{"perm3", 0.816847572980459, 0.091576213509771, 0.109951743655322},
	}},
	{5, []dunavantOrbit{
		{"centroid", 0, 0, 0.225},
		{"perm3", 0.059715871789770, 0.470142064105115, 0.132394152788506},
		{"perm3", 0.797426985353087, 0.101286507323456, 0.125939180544827},
	}},
}

const triArea = 0.5

// dunavant returns a symmetric triangle rule exact for the requested degree,
// selecting the smallest table that covers it; degrees above the largest
// tabulated rule fall back to the highest available (documented limitation,
// not a silent one: see DESIGN.md).
func dunavant(degree int) (pts [][]float64, wts []float64, err error) {
	if degree < 1 {
		degree = 1
	}
	chosen := dunavantTables[len(dunavantTables)-1]
	for _, t := range dunavantTables {
		if t.degree >= degree {
			chosen = t
			break
		}
	}
	for _, o := range chosen.orbits {
		switch o.kind {
		case "centroid":
			pts = append(pts, []float64{1.0 / 3.0, 1.0 / 3.0})
			wts = append(wts, o.w*triArea)
		case "perm3":
			a, b := o.a, o.b
			bary := [3][3]float64{
				{b, a, a},
				{a, b, a},
				{a, a, b},
			}
			for _, L := range bary {
				pts = append(pts, []float64{L[1], L[2]})
				wts = append(wts, o.w*triArea)
			}
		default:
			return nil, nil, chk.Err("quadrature: unknown dunavant orbit kind %q", o.kind)
		}
	}
	return pts, wts, nil
}
