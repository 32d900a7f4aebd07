// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/cpmech/gosl/fun"

func init() {
	register("NavierStokes1D", func() Physics {
		return &NavierStokes{Euler: Euler{dims: 1, Gamma: 1.4, GasConstant: 1, BackPressure: 1}, Viscosity: 1e-3, PrandtlNumber: 0.72}
	})
	register("NavierStokes2D", func() Physics {
		return &NavierStokes{Euler: Euler{dims: 2, Gamma: 1.4, GasConstant: 1, BackPressure: 1}, Viscosity: 1e-3, PrandtlNumber: 0.72}
	})
}

// NavierStokes embeds Euler's convective part and adds the compressible
// viscous stress tensor and Fourier heat flux as a diffusive flux, consumed
// through the Diffusive interface by the SIP (symmetric interior penalty)
// treatment named in spec §6's `DiffFluxNumerical`. The manufactured-solution
// scenario (original_source/examples/navierstokes/2D/manufactured_solution)
// only pins down the config keys (`DiffFluxSwitch`, `DiffFluxNumerical:
// SIP`); the viscous-flux physics itself follows the standard Newtonian,
// Stokes-hypothesis compressible Navier-Stokes closure consistent with
// Euler's ideal-gas equation of state.
type NavierStokes struct {
	Euler
	Viscosity     float64 // dynamic viscosity mu
	PrandtlNumber float64
}

func (p *NavierStokes) Name() string { return "NavierStokes" }

// DiffusiveFlux returns G(U, ∇U) ∈ ℝ^{ns × d}: zero mass-row, the viscous
// stress tensor in the momentum rows (Stokes hypothesis, bulk viscosity
// zero), and viscous-work-plus-heat-conduction in the energy row.
func (p *NavierStokes) DiffusiveFlux(U []float64, gradU [][]float64) [][]float64 {
	d := p.dims
	rho := U[0]
	v := p.velocity(U)

	// gradU[k][j] = d(U[k])/dx_j ; convert to velocity gradients dv_m/dx_j.
	dv := make([][]float64, d)
	for m := 0; m < d; m++ {
		dv[m] = make([]float64, d)
		for j := 0; j < d; j++ {
			dv[m][j] = (gradU[1+m][j] - v[m]*gradU[0][j]) / rho
		}
	}

	divV := 0.0
	for k := 0; k < d; k++ {
		divV += dv[k][k]
	}

	mu := p.Viscosity
	tau := make([][]float64, d)
	for m := 0; m < d; m++ {
		tau[m] = make([]float64, d)
		for j := 0; j < d; j++ {
			tau[m][j] = mu * (dv[m][j] + dv[j][m])
			if m == j {
				tau[m][j] -= (2.0 / 3.0) * mu * divV
			}
		}
	}

	pr := p.pressure(U)
	T := pr / (rho * p.GasConstant)
	cp := p.Gamma * p.GasConstant / (p.Gamma - 1)
	kThermal := mu * cp / p.PrandtlNumber

	dT := make([]float64, d)
	for j := 0; j < d; j++ {
		dprDxj := (p.Gamma - 1) * (gradU[d+1][j] - vdotGrad(v, gradU, j, d))
		drhoDxj := gradU[0][j]
		dT[j] = (dprDxj - T*p.GasConstant*drhoDxj) / (rho * p.GasConstant)
	}

	ns := p.NumStateVars()
	G := make([][]float64, ns)
	for i := range G {
		G[i] = make([]float64, d)
	}
	for j := 0; j < d; j++ {
		workAndHeat := kThermal * dT[j]
		for m := 0; m < d; m++ {
			G[1+m][j] = tau[m][j]
			workAndHeat += v[m] * tau[m][j]
		}
		G[d+1][j] = workAndHeat
	}
	return G
}

// vdotGrad computes d(½ρ|v|²)/dx_j = Σ_m v_m·d(ρv_m)/dx_j - ½|v|²·d(ρ)/dx_j,
// the kinetic-energy part subtracted from d(ρE)/dx_j in the pressure
// gradient via the ideal-gas relation p=(γ-1)(ρE-½ρ|v|²):
// d(ρE)/dx_j - Σ_m v_m·d(ρv_m)/dx_j + ½|v|²·d(ρ)/dx_j.
func vdotGrad(v []float64, gradU [][]float64, j, d int) float64 {
	sum := 0.0
	speed2 := 0.0
	for m := 0; m < d; m++ {
		sum += v[m] * gradU[1+m][j]
		speed2 += v[m] * v[m]
	}
	return sum - 0.5*speed2*gradU[0][j]
}

func (p *NavierStokes) GetPrms() fun.Prms {
	prms := p.Euler.GetPrms()
	prms = append(prms, &fun.Prm{N: "Viscosity", V: p.Viscosity}, &fun.Prm{N: "PrandtlNumber", V: p.PrandtlNumber})
	return prms
}
