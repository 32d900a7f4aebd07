// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numflux implements spec §4.6's numerical (Riemann) fluxes that
// resolve the jump across an interior face: LaxFriedrichs, Roe, HLLC. Each
// is one Go type satisfying the Flux interface, mirroring the teacher's
// one-variant-per-behaviour registry convention (msolid.allocators), now
// keyed by the `Physics.ConvFluxNumerical` configuration name (spec §6).
package numflux

import "github.com/gofem-dg/dgfem/physics"

// Flux computes the numerical flux dotted with the outward unit normal
// n̂ (pointing from the left state into the right state) at a face
// quadrature point, given the left/right trace states.
type Flux interface {
	Compute(phys physics.Physics, UL, UR, nhat []float64) ([]float64, error)
}

var allocators = map[string]func() Flux{
	"LaxFriedrichs": func() Flux { return &LaxFriedrichs{} },
	"Roe":           func() Flux { return &Roe{} },
	"HLLC":          func() Flux { return &HLLC{} },
}

// New allocates a fresh Flux by its `ConvFluxNumerical` configuration name.
func New(name string) (Flux, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, &physics.UnsupportedError{Msg: "unknown numerical flux " + name}
	}
	return alloc(), nil
}
