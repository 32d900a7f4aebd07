// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package limiter

import "github.com/gofem-dg/dgfem/dgop"

// Scalar implements spec §4.8's scalar positivity-preserving limiter: find
// u_min of the chosen state component over quadrature and nodal points; if
// negative, rescale the whole element around its mean by
// θ = ū/(ū−u_min), clamped to [0,1]. The affine shrink about the mean
// preserves the element's mass exactly.
type Scalar struct {
	Component int // state-vector index to limit; 0 for a true scalar physics
}

// Apply implements stepper.Limiter.
func (s Scalar) Apply(op *dgop.Operator, U []dgop.ElemState) []dgop.ElemState {
	out := make([]dgop.ElemState, len(U))
	for e, Ue := range U {
		out[e] = cloneElemState(Ue)
		eh := op.ElemGeom(e)
		phiRows := samplePhiRows(op, eh)
		uMin := minOf(sampleValues(phiRows, Ue[s.Component]))
		if uMin >= 0 {
			continue
		}
		mean := elementMean(eh, Ue[s.Component])
		theta := thetaFor(mean, uMin)
		out[e][s.Component] = rescale(Ue[s.Component], mean, theta)
	}
	return out
}
