// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quadrature

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// legendre evaluates the Legendre polynomial P_n and its derivative at x via
// the standard three-term recurrence (n+1)P_{n+1} = (2n+1)xP_n - nP_{n-1}.
func legendre(n int, x float64) (p, dp float64) {
	p0, p1 := 1.0, x
	if n == 0 {
		return 1, 0
	}
	for k := 1; k < n; k++ {
		p2 := ((2*float64(k)+1)*x*p1 - float64(k)*p0) / float64(k+1)
		p0, p1 = p1, p2
	}
	// dP_n/dx = n(x P_n - P_{n-1}) / (x^2-1)
	dp = float64(n) * (x*p1 - p0) / (x*x - 1)
	return p1, dp
}

// gaussLegendre returns the n-point Gauss-Legendre rule on [-1,1], exact to
// degree 2n-1. Nodes are the roots of P_n, found by Newton's method from the
// classical asymptotic starting guess; no pack library (gosl/num, gosl/fun)
// furnishes Gauss-point generation, so this is a deliberate, narrowly-scoped
// standard-library numerical routine (see DESIGN.md).
func gaussLegendre(n int) (pts, wts []float64, err error) {
	if n < 1 {
		return nil, nil, chk.Err("quadrature: gaussLegendre requires n>=1, got %d", n)
	}
	pts = make([]float64, n)
	wts = make([]float64, n)
	for i := 0; i < (n+1)/2; i++ {
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		for it := 0; it < 100; it++ {
			p, dp := legendre(n, x)
			dx := -p / dp
			x += dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		_, dp := legendre(n, x)
		w := 2.0 / ((1 - x*x) * dp * dp)
		pts[i] = -x
		pts[n-1-i] = x
		wts[i] = w
		wts[n-1-i] = w
	}
	return pts, wts, nil
}

// gaussLobatto returns the n-point Gauss-Lobatto rule on [-1,1] (n>=2),
// including both endpoints, exact to degree 2n-3. Interior nodes are the
// roots of P'_{n-1}; found via Newton on the derivative recurrence.
func gaussLobatto(n int) (pts, wts []float64, err error) {
	if n < 2 {
		return nil, nil, chk.Err("quadrature: gaussLobatto requires n>=2, got %d", n)
	}
	pts = make([]float64, n)
	wts = make([]float64, n)
	pts[0], pts[n-1] = -1, 1
	m := n - 1 // degree whose derivative's interior roots we want
	for i := 1; i < n-1; i++ {
		x := math.Cos(math.Pi * float64(i) / float64(m))
		for it := 0; it < 100; it++ {
			p, dp := legendre(m, x)
			// second derivative of P_m via the ODE (1-x^2)P'' = 2xP' - m(m+1)P
			d2p := (2*x*dp - float64(m*(m+1))*p) / (1 - x*x)
			dx := -dp / d2p
			x += dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		pts[n-1-i] = x
	}
	for i := 0; i < n; i++ {
		x := pts[i]
		p, _ := legendre(m, x)
		wts[i] = 2.0 / (float64(n*m) * p * p)
	}
	return pts, wts, nil
}
