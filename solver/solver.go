// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements spec §2's "Solver driver" leaf: it owns the
// per-element coefficient state U, wires every lower leaf (mesh, physics,
// basis, numerical flux, time stepper, limiter) from a config.Config
// document into a dgop.Operator, and orchestrates the time loop -- write
// intervals, restart, and L²/nodal initial-condition projection -- the same
// responsibilities the teacher's fem/solver.go Start/Run pair owns for its
// Newton-iteration FE driver, generalized from "solve the nonlinear
// equilibrium at each step" to "advance the explicit DG residual in time."
package solver

import (
	"math"
	"time"

	"github.com/cpmech/gosl/utl"

	"github.com/gofem-dg/dgfem/basis"
	"github.com/gofem-dg/dgfem/config"
	"github.com/gofem-dg/dgfem/dgop"
	"github.com/gofem-dg/dgfem/limiter"
	"github.com/gofem-dg/dgfem/mesh"
	"github.com/gofem-dg/dgfem/numflux"
	"github.com/gofem-dg/dgfem/physics"
	"github.com/gofem-dg/dgfem/projection"
	"github.com/gofem-dg/dgfem/quadrature"
	"github.com/gofem-dg/dgfem/restartio"
	"github.com/gofem-dg/dgfem/stepper"
)

// Error is the spec §7 error kind for a problem assembling or running a
// simulation from a Config -- an unsupported combination that Validate
// alone could not catch (e.g. a SolutionBasis whose Shape doesn't match the
// Mesh's ElementShape), following the same per-package error convention as
// config.ConfigError/restartio.Error.
type Error struct{ Msg string }

func (e *Error) Error() string { return "solver: " + e.Msg }

// Driver owns the running simulation's mutable state: the coefficient
// vector U and the current time, alongside the immutable Operator and
// Scheme it advances with.
type Driver struct {
	Cfg     *config.Config
	Op      *dgop.Operator
	Scheme  stepper.Scheme
	U       []dgop.ElemState
	T       float64
	Verbose bool
}

// Build assembles a Driver from a validated Config: constructs the mesh,
// physics, basis, numerical flux, boundary map and dgop.Operator, picks the
// time stepper and limiter, and seeds U either from Restart or by
// projecting InitialCondition.
func Build(cfg *config.Config) (*Driver, error) {
	m, err := buildMesh(&cfg.Mesh)
	if err != nil {
		return nil, err
	}

	phys, err := buildPhysics(&cfg.Physics, m.Ndim)
	if err != nil {
		return nil, err
	}

	b, err := buildBasis(&cfg.Numerics)
	if err != nil {
		return nil, err
	}
	if b.Shape().Name() != cfg.Mesh.ElementShape {
		return nil, &Error{Msg: "Numerics.SolutionBasis is on shape " + b.Shape().Name() + " but Mesh.ElementShape is " + cfg.Mesh.ElementShape}
	}

	flux, err := numflux.New(cfg.Physics.ConvFluxNumerical)
	if err != nil {
		return nil, err
	}

	boundary, err := buildBoundary(cfg.BoundaryConditions, phys.NumStateVars())
	if err != nil {
		return nil, err
	}

	quadOrder := cfg.Numerics.ElementQuadrature
	if cfg.Numerics.FaceQuadrature > quadOrder {
		quadOrder = cfg.Numerics.FaceQuadrature
	}
	rule := quadrature.GaussLegendre
	if cfg.Numerics.NodeType == "GaussLobatto" {
		rule = quadrature.GaussLobatto
	}

	op, err := dgop.New(m, phys, b, flux, quadOrder, rule, boundary)
	if err != nil {
		return nil, err
	}
	op.Switches = dgop.Switches{ConvFluxSwitch: cfg.Numerics.ConvFluxSwitch, SourceSwitch: cfg.Numerics.SourceSwitch}

	if src, err := buildSource(cfg.SourceTerms, phys); err != nil {
		return nil, err
	} else if src != nil {
		op.Source = src
	}

	scheme, err := stepper.New(cfg.TimeStepping.TimeStepper)
	if err != nil {
		return nil, err
	}
	if cfg.Numerics.ApplyLimiters {
		wireLimiter(scheme, phys)
	}
	if ader, ok := scheme.(*stepper.ADER); ok {
		ader.SourceTreatment = cfg.Numerics.SourceTreatment
	}

	d := &Driver{Cfg: cfg, Op: op, Scheme: scheme, T: cfg.TimeStepping.InitialTime}

	if cfg.Restart.File != "" {
		if err := d.loadRestart(); err != nil {
			return nil, err
		}
	} else {
		icFn, err := buildVectorFunc(cfg.InitialCondition, phys.NumStateVars())
		if err != nil {
			return nil, err
		}
		f := func(x []float64, t0 float64) []float64 { return icFn(nil, x, t0) }
		if cfg.Numerics.L2InitialCondition {
			d.U = projection.L2(op, f, d.T)
		} else {
			d.U, err = projection.Nodal(op, f, d.T)
			if err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// wireLimiter installs spec §4.8's positivity-preserving limiter on every
// concrete stepper.Scheme -- each exposes its own Limiter field rather than
// the Scheme interface itself carrying one, since only FE applies it once
// per step while RK4/LSRK4/SSPRK3 additionally offer LimitEachStage.
func wireLimiter(scheme stepper.Scheme, phys physics.Physics) {
	var lim stepper.Limiter
	if _, ok := phys.(physics.Diffusive); ok {
		lim = limiter.Euler{}.Apply
	} else if phys.Name() == "Euler" {
		lim = limiter.Euler{}.Apply
	} else {
		lim = limiter.Scalar{Component: 0}.Apply
	}
	switch s := scheme.(type) {
	case *stepper.FE:
		s.Limiter = lim
	case *stepper.RK4:
		s.Limiter, s.LimitEachStage = lim, true
	case *stepper.LSRK4:
		s.Limiter, s.LimitEachStage = lim, true
	case *stepper.SSPRK3:
		s.Limiter, s.LimitEachStage = lim, true
	case *stepper.ADER:
		s.Limiter = lim
	}
}

// buildBasis constructs the (shape,order,node-family) Basis spec §6's
// Numerics section names.
func buildBasis(n *config.Numerics) (basis.Basis, error) {
	family := basis.Equidistant
	switch n.NodeType {
	case "GaussLegendre":
		family = basis.NodeGaussLegendre
	case "GaussLobatto":
		family = basis.NodeGaussLobatto
	}
	switch n.SolutionBasis {
	case "LagrangeSeg":
		return basis.NewLagrangeSegment(n.SolutionOrder, family), nil
	case "LagrangeQuad":
		return basis.NewLagrangeQuad(n.SolutionOrder, family), nil
	case "LagrangeTri":
		return basis.NewLagrangeTri(n.SolutionOrder), nil
	case "LegendreSeg":
		return basis.NewLegendreSegment(n.SolutionOrder), nil
	case "LegendreQuad":
		return basis.NewLegendreQuad(n.SolutionOrder), nil
	case "HierarchicH1Tri":
		return basis.NewHierarchicH1Tri(n.SolutionOrder), nil
	}
	return nil, &Error{Msg: "unknown Numerics.SolutionBasis " + n.SolutionBasis}
}

// buildPhysics allocates the physics.Physics named by Physics.Type,
// appending the dims-suffixed registry name physics.New expects
// (ConstAdvScalar1D/2D, Euler1D/2D, NavierStokes1D/2D) except for Burgers
// and ModelPSRScalar, which are dimension-agnostic in the registry, and
// installs the configured parameters onto the fresh instance.
func buildPhysics(c *config.Physics, ndim int) (physics.Physics, error) {
	name := c.Type
	switch c.Type {
	case "ConstAdvScalar", "Euler", "NavierStokes":
		if ndim == 1 {
			name += "1D"
		} else {
			name += "2D"
		}
	}
	phys, err := physics.New(name)
	if err != nil {
		return nil, err
	}
	switch p := phys.(type) {
	case *physics.ConstAdvScalar:
		if ndim == 1 {
			p.SetVelocity([]float64{c.ConstVelocity})
		} else {
			p.SetVelocity([]float64{c.ConstXVelocity, c.ConstYVelocity})
		}
	case *physics.NavierStokes:
		p.Gamma, p.GasConstant, p.BackPressure = c.SpecificHeatRatio, c.GasConstant, c.BackPressure
		p.Viscosity, p.PrandtlNumber = c.Viscosity, c.PrandtlNumber
	case *physics.Euler:
		p.Gamma, p.GasConstant, p.BackPressure = c.SpecificHeatRatio, c.GasConstant, c.BackPressure
	case *physics.ModelPSRScalar:
		p.TAd, p.TIn, p.TA, p.Damkohler, p.MixingTime = c.TAd, c.TIn, c.TA, c.Damkohler, c.MixingTime
	}
	return phys, nil
}

// buildBoundary resolves spec §6's named BoundaryConditions map into
// dgop's group-name-keyed BoundarySpec map: a BCType passes through
// untouched to physics.BoundaryState, and a Function is lifted to a
// VectorFunc Dirichlet state via buildVectorFunc (with no prior interior
// state, the Dirichlet contract dgop already has).
func buildBoundary(bcs map[string]config.BoundaryCondition, ns int) (map[string]dgop.BoundarySpec, error) {
	if len(bcs) == 0 {
		return nil, nil
	}
	out := make(map[string]dgop.BoundarySpec, len(bcs))
	for name, bc := range bcs {
		if bc.Function != nil {
			fn, err := buildVectorFunc(*bc.Function, ns)
			if err != nil {
				return nil, err
			}
			out[name] = dgop.BoundarySpec{Dirichlet: func(x []float64, t float64) []float64 { return fn(nil, x, t) }}
		} else {
			out[name] = dgop.BoundarySpec{Kind: bc.BCType}
		}
	}
	return out, nil
}

// buildSource combines every named SourceTerms entry with the physics's own
// intrinsic source (ModelPSRScalar's reaction term, say) into the single
// override function dgop.Operator.Source calls in place of Physics.Source.
func buildSource(terms map[string]config.SourceTerm, phys physics.Physics) (func(U, x []float64, t float64) []float64, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	fns := make([]VectorFunc, 0, len(terms))
	for _, st := range terms {
		fn, err := buildVectorFunc(st.Function, phys.NumStateVars())
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	ns := phys.NumStateVars()
	return func(U, x []float64, t float64) []float64 {
		out := make([]float64, ns)
		if base := phys.Source(U, x, t); base != nil {
			copy(out, base)
		}
		for _, fn := range fns {
			for i, v := range fn(U, x, t) {
				out[i] += v
			}
		}
		return out
	}, nil
}

// loadRestart reads the persisted-state artifact, rebuilding d.Op's
// Operator's mesh field is left untouched (the restart's mesh must match
// the one just built from Config.Mesh; spec §6 only allows the basis/order
// to change across a restart, not the mesh), and resamples U onto the
// running basis via projection.Resample if the persisted Numerics names a
// different SolutionBasis/SolutionOrder.
func (d *Driver) loadRestart() error {
	t, _, num, _, U, err := restartio.Read(d.Cfg.Restart.File)
	if err != nil {
		return err
	}
	if num.SolutionBasis == d.Cfg.Numerics.SolutionBasis && num.SolutionOrder == d.Cfg.Numerics.SolutionOrder {
		d.U = U
	} else {
		oldBasis, err := buildBasis(&num)
		if err != nil {
			return err
		}
		d.U = projection.Resample(oldBasis, U, d.Op)
	}
	if d.Cfg.Restart.StartFromFileTime != 0 {
		t = d.Cfg.Restart.StartFromFileTime
	}
	d.T = t
	return nil
}

// Run implements spec §2's driver time loop: CFL/NumTimeSteps/TimeStepSize
// Δt selection via stepper.PlanSteps/CFLTimeStep, a last-step-truncated
// march to FinalTime, and write-interval/restart cadence, mirroring the
// teacher's fem/solver.go Run's stage loop (output gated on
// `t >= tout || lasttimestep`) and its utl.Pf*-based progress banner.
func (d *Driver) Run(write func(d *Driver) error) error {
	cpuStart := time.Now()
	if d.Verbose {
		defer func() { utl.Pfblue2("cpu time = %v\n", time.Now().Sub(cpuStart)) }()
	}

	tf := d.Cfg.TimeStepping.FinalTime
	tout := d.T
	if d.Cfg.Output.WriteInterval > 0 {
		tout = d.T + d.Cfg.Output.WriteInterval
	} else {
		tout = tf
	}

	if d.Cfg.Output.WriteInitialSolution && write != nil {
		if err := write(d); err != nil {
			return err
		}
	}

	for d.T < tf {
		dt, err := d.nextDt(tf)
		if err != nil {
			return err
		}
		lastStep := d.T+dt >= tf
		if lastStep {
			dt = tf - d.T
		}

		if d.Verbose {
			utl.PrintTimeLong(d.T)
		}

		Unew, err := d.Scheme.Step(d.Op, d.U, d.T, dt)
		if err != nil {
			return err
		}
		d.U = Unew
		d.T += dt

		if (d.Cfg.Output.WriteInterval > 0 && d.T >= tout) || lastStep {
			if write != nil && (d.T < tf || d.Cfg.Output.WriteFinalSolution) {
				if err := write(d); err != nil {
					return err
				}
			}
			tout += d.Cfg.Output.WriteInterval
		}
	}

	if d.Verbose {
		utl.Pf("\nfinal time = %g\n", d.T)
	}
	return nil
}

// nextDt implements spec §4.7's three Δt-selection strategies, config.Validate
// having already guaranteed exactly one is set: TimeStepSize used directly,
// NumTimeSteps dividing [InitialTime, FinalTime] into that many equal steps,
// or CFL combined with the
// mesh's smallest element size and the current state's largest wave speed.
func (d *Driver) nextDt(tf float64) (float64, error) {
	ts := &d.Cfg.TimeStepping
	switch {
	case ts.TimeStepSize > 0:
		return ts.TimeStepSize, nil
	case ts.NumTimeSteps > 0:
		return (tf - ts.InitialTime) / float64(ts.NumTimeSteps), nil
	case ts.CFL > 0:
		hMin := meshHMin(d.Op.Mesh)
		lambdaMax := d.maxWaveSpeed()
		dt := stepper.CFLTimeStep(ts.CFL, hMin, lambdaMax, d.Cfg.Numerics.SolutionOrder)
		if dt <= 0 {
			return 0, &Error{Msg: "CFL time step computation collapsed to zero or negative"}
		}
		return dt, nil
	}
	return 0, &Error{Msg: "TimeStepping has no Δt-selection strategy set"}
}

// maxWaveSpeed scans every element's quadrature-point state for the physics's
// own MaxWaveSpeed, the λ_max spec §4.7's CFL formula needs.
func (d *Driver) maxWaveSpeed() float64 {
	lambdaMax := 0.0
	for e := 0; e < d.Op.NumElements(); e++ {
		eh := d.Op.ElemGeom(e)
		ns := d.Op.NumStateVars()
		for q := range eh.QuadWts {
			U := make([]float64, ns)
			for i := 0; i < ns; i++ {
				for a, phi := range eh.Phi[q] {
					U[i] += phi * d.U[e][i][a]
				}
			}
			if ws := d.Op.Physics.MaxWaveSpeed(U); ws > lambdaMax {
				lambdaMax = ws
			}
		}
	}
	return lambdaMax
}

// meshHMin returns the smallest element's diameter (max pairwise node
// distance), the h_min spec §4.7's CFL formula needs; straightforward since
// every generated/ingested element is straight-sided (curved-element
// generation is a Non-goal).
func meshHMin(m *mesh.Mesh) float64 {
	hMin := -1.0
	for i := range m.Elements {
		coords := m.NodeCoords(&m.Elements[i])
		d := elementDiameter(coords)
		if hMin < 0 || d < hMin {
			hMin = d
		}
	}
	return hMin
}

func elementDiameter(coords [][]float64) float64 {
	d := 0.0
	for i := range coords {
		for j := i + 1; j < len(coords); j++ {
			sum := 0.0
			for k := range coords[i] {
				diff := coords[i][k] - coords[j][k]
				sum += diff * diff
			}
			if sum > d*d {
				d = math.Sqrt(sum)
			}
		}
	}
	return d
}
