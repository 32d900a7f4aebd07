// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numflux

import "github.com/gofem-dg/dgfem/physics"

// LaxFriedrichs is the local (Rusanov) Lax-Friedrichs flux, the only
// numerical flux that needs nothing beyond the generic Physics contract
// (FluxInterior, MaxWaveSpeed) -- it applies to any physics registered in
// the physics package, scalar or systems alike.
type LaxFriedrichs struct{}

func (f *LaxFriedrichs) Compute(phys physics.Physics, UL, UR, nhat []float64) ([]float64, error) {
	ns := phys.NumStateVars()
	d := phys.Dims()

	FL := phys.FluxInterior(UL)
	FR := phys.FluxInterior(UR)

	alpha := phys.MaxWaveSpeed(UL)
	if aR := phys.MaxWaveSpeed(UR); aR > alpha {
		alpha = aR
	}

	Fhat := make([]float64, ns)
	for i := 0; i < ns; i++ {
		fLn, fRn := 0.0, 0.0
		for k := 0; k < d; k++ {
			fLn += FL[i][k] * nhat[k]
			fRn += FR[i][k] * nhat[k]
		}
		Fhat[i] = 0.5*(fLn+fRn) - 0.5*alpha*(UR[i]-UL[i])
	}
	return Fhat, nil
}
