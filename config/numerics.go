// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// Numerics is spec §6's `Numerics` section: the discretization's order,
// basis family, solver mode and quadrature/node choices, plus the switches
// spec §4.5's dgop.Switches and §4.8's limiter activation read.
type Numerics struct {
	SolutionOrder int    `json:"SolutionOrder"`
	SolutionBasis string `json:"SolutionBasis"` // LagrangeSeg, LagrangeQuad, LagrangeTri, LegendreSeg, LegendreQuad, HierarchicH1Tri
	Solver        string `json:"Solver"`         // DG, ADERDG

	ElementQuadrature int    `json:"ElementQuadrature"`
	FaceQuadrature    int    `json:"FaceQuadrature"`
	NodeType          string `json:"NodeType"` // Equidistant, GaussLegendre, GaussLobatto

	ColocatedPoints bool `json:"ColocatedPoints"`
	InterpolateFlux bool `json:"InterpolateFlux"`
	ApplyLimiters   bool `json:"ApplyLimiters"`

	SourceTreatment string `json:"SourceTreatment"` // Explicit, Implicit
	ConvFluxSwitch  bool   `json:"ConvFluxSwitch"`
	SourceSwitch    bool   `json:"SourceSwitch"`

	L2InitialCondition bool `json:"L2InitialCondition"`

	DiffFluxSwitch    bool   `json:"DiffFluxSwitch"`
	DiffFluxNumerical string `json:"DiffFluxNumerical"` // e.g. SIP
}

var solutionBases = map[string]bool{
	"LagrangeSeg": true, "LagrangeQuad": true, "LagrangeTri": true,
	"LegendreSeg": true, "LegendreQuad": true, "HierarchicH1Tri": true,
}

var solverModes = map[string]bool{"DG": true, "ADERDG": true}

var nodeTypes = map[string]bool{"Equidistant": true, "GaussLegendre": true, "GaussLobatto": true}

var sourceTreatments = map[string]bool{"Explicit": true, "Implicit": true}

// SetDefault mirrors the teacher's SolverData.SetDefault: a complete,
// working default combination (second-order DG, nodal Lagrange-on-segment,
// explicit source, both flux/source switches on) rather than zero values
// that would fail Validate by themselves.
func (n *Numerics) SetDefault() {
	n.SolutionOrder = 2
	n.SolutionBasis = "LagrangeSeg"
	n.Solver = "DG"
	n.ElementQuadrature = 4
	n.FaceQuadrature = 4
	n.NodeType = "Equidistant"
	n.SourceTreatment = "Explicit"
	n.ConvFluxSwitch = true
	n.SourceSwitch = true
}

// Validate enforces the enumerations of spec §6 plus the cross-field
// invariant spec §9 calls out explicitly: InterpolateFlux requires
// colocated (Lobatto) nodes.
func (n *Numerics) Validate() error {
	if n.SolutionOrder < 0 {
		return configErrf("Numerics.SolutionOrder must be >= 0, got %d", n.SolutionOrder)
	}
	if !solutionBases[n.SolutionBasis] {
		return configErrf("Numerics.SolutionBasis %q is not a recognized basis", n.SolutionBasis)
	}
	if !solverModes[n.Solver] {
		return configErrf("Numerics.Solver %q must be DG or ADERDG", n.Solver)
	}
	if !nodeTypes[n.NodeType] {
		return configErrf("Numerics.NodeType %q is not recognized", n.NodeType)
	}
	if !sourceTreatments[n.SourceTreatment] {
		return configErrf("Numerics.SourceTreatment %q must be Explicit or Implicit", n.SourceTreatment)
	}
	if n.InterpolateFlux && !n.ColocatedPoints {
		return configErrf("InterpolateFlux=true requires ColocatedPoints (spec §9 Design Notes)")
	}
	if n.ElementQuadrature <= 0 || n.FaceQuadrature <= 0 {
		return configErrf("Numerics.ElementQuadrature/FaceQuadrature must be positive")
	}
	return nil
}
