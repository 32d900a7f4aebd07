// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics implements the conservation-law contracts of spec §4.6:
// state size, interior flux, max wave speed, derived scalars, source terms
// and boundary-state construction, for ConstAdvScalar, Burgers, Euler,
// NavierStokes and ModelPSRScalar. Each physics is one Go type, registered by
// name, mirroring the teacher's msolid.Solid/GetModel registry
// (msolid/solid.go's `allocators map[string]func() Solid` + `GetModel`) --
// one variant per physics rather than inheritance, per spec §9 Design Notes
// ("Polymorphism over (shape, basis, physics, flux, BC, source)... tagged
// variants or trait/interface objects").
package physics

import (
	"fmt"

	"github.com/cpmech/gosl/fun"
)

// Physics is the minimal interface the DG core consumes (spec §4.6).
type Physics interface {

	// Name returns the registered type name.
	Name() string

	// NumStateVars returns ns.
	NumStateVars() int

	// Dims returns d (1 or 2).
	Dims() int

	// FluxInterior returns F(U) ∈ ℝ^{ns × d}, the analytical interior flux.
	FluxInterior(U []float64) [][]float64

	// MaxWaveSpeed returns the largest signal speed at state U, used for
	// CFL-based Δt selection and Lax-Friedrichs dissipation.
	MaxWaveSpeed(U []float64) float64

	// ComputeScalar returns a named derived quantity (Pressure, SoundSpeed,
	// TotalEnthalpy, ...) at state U.
	ComputeScalar(name string, U []float64) (float64, error)

	// Source returns S(U,x,t), or nil if this physics has no source term.
	Source(U, x []float64, t float64) []float64

	// BoundaryState returns U_R for the named boundary-condition kind (e.g.
	// "SlipWall", "PressureOutlet"), given the interior state U_I, the unit
	// outward normal n̂, and the physical position/time.
	BoundaryState(kind string, UI, nhat, x []float64, t float64) ([]float64, error)

	// GetPrms mirrors the teacher's Solid.GetPrms, returning the physics's
	// parameters in gosl/fun's named-parameter form for logging/reporting.
	GetPrms() fun.Prms
}

// Diffusive is implemented by physics that also contribute a diffusive flux
// (NavierStokes's SIP treatment, spec §4.6/§6 DiffFluxNumerical).
type Diffusive interface {
	DiffusiveFlux(U []float64, gradU [][]float64) [][]float64
}

// allocators holds all registered physics constructors, keyed by registry
// name: ConstAdvScalar1D/2D, Burgers, Euler1D/2D, NavierStokes1D/2D and
// ModelPSRScalar (the `Physics.Type` configuration name, plus a 1D/2D
// suffix where the physics depends on the dimension).
var allocators = map[string]func() Physics{}

func register(name string, alloc func() Physics) {
	allocators[name] = alloc
}

// New allocates a fresh Physics by registered name, or returns an
// Unsupported-kind error (spec §7) if the name is unknown.
func New(name string) (Physics, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, &UnsupportedError{Msg: "unknown physics type " + name}
	}
	return alloc(), nil
}

// UnsupportedError is the spec §7 error kind for a requested
// physics/basis/flux combination that is not implemented.
type UnsupportedError struct{ Msg string }

func (e *UnsupportedError) Error() string { return "unsupported: " + e.Msg }

// NotPhysicalError is the spec §7 error kind for a negative density/pressure
// or a NaN detected at a quadrature point.
type NotPhysicalError struct{ Msg string }

func (e *NotPhysicalError) Error() string { return "not physical: " + e.Msg }

func notPhysicalf(format string, args ...interface{}) error {
	return &NotPhysicalError{Msg: fmt.Sprintf(format, args...)}
}
