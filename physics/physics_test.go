// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestConstAdvScalarFlux(t *testing.T) {
	chk.PrintTitle("ConstAdvScalarFlux")
	p, err := New("ConstAdvScalar1D")
	if err != nil {
		t.Fatal(err)
	}
	adv := p.(*ConstAdvScalar)
	adv.SetVelocity([]float64{2.0})
	F := adv.FluxInterior([]float64{3.0})
	if math.Abs(F[0][0]-6.0) > 1e-14 {
		t.Fatalf("expected flux 6.0, got %g", F[0][0])
	}
	if math.Abs(adv.MaxWaveSpeed([]float64{3.0})-2.0) > 1e-14 {
		t.Fatalf("expected wave speed 2.0")
	}
}

func TestBurgersFlux(t *testing.T) {
	b := &Burgers{}
	F := b.FluxInterior([]float64{4.0})
	if math.Abs(F[0][0]-8.0) > 1e-14 {
		t.Fatalf("expected flux 8.0, got %g", F[0][0])
	}
	if math.Abs(b.MaxWaveSpeed([]float64{-4.0})-4.0) > 1e-14 {
		t.Fatalf("expected wave speed 4.0")
	}
}

// sodLeftState is the left state of the classic Sod shock tube (rho=1,
// u=0, p=1, gamma=1.4).
func sodLeftState(gamma float64) []float64 {
	rho, u, pr := 1.0, 0.0, 1.0
	rhoE := pr/(gamma-1) + 0.5*rho*u*u
	return []float64{rho, rho * u, rhoE}
}

func TestEulerPressureRoundTrip(t *testing.T) {
	chk.PrintTitle("EulerPressureRoundTrip")
	p, err := New("Euler1D")
	if err != nil {
		t.Fatal(err)
	}
	U := sodLeftState(1.4)
	pr, err := p.ComputeScalar("Pressure", U)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pr-1.0) > 1e-12 {
		t.Fatalf("expected pressure 1.0, got %g", pr)
	}
	c, err := p.ComputeScalar("SoundSpeed", U)
	if err != nil {
		t.Fatal(err)
	}
	expectedC := math.Sqrt(1.4 * 1.0 / 1.0)
	if math.Abs(c-expectedC) > 1e-12 {
		t.Fatalf("expected sound speed %g, got %g", expectedC, c)
	}
}

func TestEulerSlipWallReflectsNormalMomentum(t *testing.T) {
	p, err := New("Euler2D")
	if err != nil {
		t.Fatal(err)
	}
	UI := []float64{1.0, 2.0, 3.0, 10.0}
	nhat := []float64{1.0, 0.0}
	UB, err := p.BoundaryState("SlipWall", UI, nhat, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(UB[1]+2.0) > 1e-14 {
		t.Fatalf("expected reflected normal momentum -2 at wall, got %g", UB[1])
	}
	if math.Abs(UB[2]-3.0) > 1e-14 {
		t.Fatalf("expected unchanged tangential momentum, got %g", UB[2])
	}
	if math.Abs(UB[0]-1.0) > 1e-14 || math.Abs(UB[3]-10.0) > 1e-14 {
		t.Fatalf("expected unchanged density/energy at wall")
	}
}

func TestEulerPressureOutletSupersonicPassesThrough(t *testing.T) {
	p, err := New("Euler1D")
	if err != nil {
		t.Fatal(err)
	}
	euler := p.(*Euler)
	euler.BackPressure = 0.5
	// construct a highly supersonic interior state: rho=1, u=10, p=1
	gamma := 1.4
	rho, u, pr := 1.0, 10.0, 1.0
	rhoE := pr/(gamma-1) + 0.5*rho*u*u
	UI := []float64{rho, rho * u, rhoE}
	UB, err := p.BoundaryState("PressureOutlet", UI, []float64{1.0}, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range UI {
		if math.Abs(UB[i]-UI[i]) > 1e-12 {
			t.Fatalf("expected supersonic outlet to pass interior state through unchanged at index %d", i)
		}
	}
}

func TestModelPSRScalarVanishesAtAdiabaticTemperature(t *testing.T) {
	p, err := New("ModelPSRScalar")
	if err != nil {
		t.Fatal(err)
	}
	psr := p.(*ModelPSRScalar)
	rate, err := p.ComputeScalar("ReactionRate", []float64{psr.TAd})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rate) > 1e-14 {
		t.Fatalf("expected zero reaction rate at T=T_ad, got %g", rate)
	}
}

func TestUnknownPhysicsNameIsUnsupported(t *testing.T) {
	_, err := New("DoesNotExist")
	if err == nil {
		t.Fatal("expected an error for an unregistered physics name")
	}
	if _, ok := err.(*UnsupportedError); !ok {
		t.Fatalf("expected *UnsupportedError, got %T", err)
	}
}

func TestNavierStokesDiffusiveFluxVanishesForUniformState(t *testing.T) {
	p, err := New("NavierStokes2D")
	if err != nil {
		t.Fatal(err)
	}
	ns := p.(*NavierStokes)
	U := []float64{1.0, 0.5, 0.2, 5.0}
	gradU := [][]float64{{0, 0}, {0, 0}, {0, 0}, {0, 0}}
	G := ns.DiffusiveFlux(U, gradU)
	for i := range G {
		for j := range G[i] {
			if math.Abs(G[i][j]) > 1e-12 {
				t.Fatalf("expected zero diffusive flux for a spatially uniform state, got G[%d][%d]=%g", i, j, G[i][j])
			}
		}
	}
}
