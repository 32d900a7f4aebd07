// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quadrature computes (points, weights) for the reference shapes in
// package shp, per spec §4.3: Gauss-Legendre/Gauss-Lobatto on the segment,
// their tensor product on the quad, and Dunavant symmetric rules on the
// triangle.
package quadrature

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gofem-dg/dgfem/shp"
)

// Rule selects the 1D node family used on segments (and, by tensor product,
// on quads); triangles always use the Dunavant table regardless of Rule.
type Rule int

const (
	GaussLegendre Rule = iota
	GaussLobatto
)

// Get returns quadrature points (reference coordinates, [npts][dim]) and
// weights ([npts]) on shape s, exact for polynomials up to degree `order`.
// forcedNpts, if >0, overrides the point count derived from order (the
// "colocated scheme" switch of spec §4.5); it is only meaningful together
// with GaussLobatto (ColocatedPoints requires Lobatto nodes, per spec §4.5).
func Get(s shp.Shape, order int, rule Rule, forcedNpts int) (pts [][]float64, wts []float64, err error) {
	switch s.Name() {
	case "point":
		return [][]float64{{}}, []float64{1}, nil

	case "segment":
		n := segmentNpts(order, rule)
		if forcedNpts > 0 {
			n = forcedNpts
		}
		r, w, e := segmentRule(n, rule)
		if e != nil {
			return nil, nil, e
		}
		pts = make([][]float64, n)
		for i := range r {
			pts[i] = []float64{r[i]}
		}
		return pts, w, nil

	case "quad":
		n := segmentNpts(order, rule)
		if forcedNpts > 0 {
			n = forcedNpts
		}
		r, w, e := segmentRule(n, rule)
		if e != nil {
			return nil, nil, e
		}
		pts = make([][]float64, n*n)
		wts = make([]float64, n*n)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				pts[j*n+i] = []float64{r[i], r[j]}
				wts[j*n+i] = w[i] * w[j]
			}
		}
		return pts, wts, nil

	case "tri":
		return dunavant(order)
	}
	return nil, nil, chk.Err("quadrature: unsupported shape %q", s.Name())
}

// segmentNpts returns the minimum point count for a 1D rule exact to the
// given polynomial degree: n-point Gauss-Legendre is exact to 2n-1;
// n-point Gauss-Lobatto (n>=2) is exact to 2n-3.
func segmentNpts(order int, rule Rule) int {
	switch rule {
	case GaussLobatto:
		n := (order + 4) / 2 // ceil((order+3)/2), integer arithmetic
		if n < 2 {
			n = 2
		}
		return n
	default:
		n := (order + 2) / 2 // ceil((order+1)/2), integer arithmetic
		if n < 1 {
			n = 1
		}
		return n
	}
}

func segmentRule(n int, rule Rule) (pts, wts []float64, err error) {
	switch rule {
	case GaussLobatto:
		return gaussLobatto(n)
	default:
		return gaussLegendre(n)
	}
}
