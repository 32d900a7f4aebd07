// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "github.com/cpmech/gosl/fun"

// Param is one named numeric parameter of a FuncSpec. It is a package-local
// type, rather than a direct `fun.Prms` field the way inp/func.go's
// FuncData embeds one, so this package controls its own JSON field names
// instead of inheriting whatever gosl/fun.Prm's own (undocumented here)
// struct tags happen to be -- important since Load rejects unknown keys
// and a field-name mismatch would silently become "every document is
// malformed".
type Param struct {
	Name  string  `json:"Name"`
	Value float64 `json:"Value"`
}

func (p Param) toPrm() *fun.Prm { return &fun.Prm{N: p.Name, V: p.Value} }

// FuncSpec is a callable specification in gosl/fun's named-type-plus-params
// form (spec §6's `InitialCondition`, `ExactSolution`, and the `Function`
// fields of BoundaryCondition/SourceTerm), generalizing inp/func.go's
// FuncData from "one entry in a named lookup table" to "specified inline
// wherever a function value is needed" -- config has no separate top-level
// Functions table the way inp/sim.go's FuncsData is (spec §6 lists no such
// section), so each site that needs a fun.Func specifies one directly.
type FuncSpec struct {
	Type   string  `json:"Type"`
	Params []Param `json:"Params"`
}

// Build constructs the gosl/fun.Func this spec describes, the same
// fun.New(type, prms) call inp/func.go's FuncsData.GetOrPanic makes, but
// returning an error instead of panicking (spec §7: configuration problems
// are reported, not crashed on).
func (f FuncSpec) Build() (fun.Func, error) {
	if f.Type == "" {
		return nil, configErrf("function spec is missing Type")
	}
	prms := make(fun.Prms, len(f.Params))
	for i, p := range f.Params {
		prms[i] = p.toPrm()
	}
	fn := fun.New(f.Type, prms)
	if fn == nil {
		return nil, configErrf("unknown function type %q", f.Type)
	}
	return fn, nil
}

// BoundaryCondition is one named entry of spec §6's `BoundaryConditions`
// map: either a weak BC kind resolved entirely by the physics
// (physics.BoundaryState's "SlipWall", "PressureOutlet", ...) or a directly
// supplied Dirichlet function of position and time, mirroring
// dgop.BoundarySpec's own Kind/Dirichlet duality one level up, in
// configuration-document form.
type BoundaryCondition struct {
	BCType   string    `json:"BCType"`
	Function *FuncSpec `json:"Function"`
}

// Validate requires exactly one of BCType or Function, the same XOR
// dgop.BoundarySpec's doc comment describes.
func (bc *BoundaryCondition) Validate() error {
	if bc.BCType == "" && bc.Function == nil {
		return configErrf("requires either BCType or Function")
	}
	if bc.BCType != "" && bc.Function != nil {
		return configErrf("BCType and Function are mutually exclusive")
	}
	return nil
}

// SourceTerm is one named entry of spec §6's `SourceTerms` map: a function
// of state/position/time added to the physics's own Source, mirroring
// inp/sim.go's EleCond (tag + function name + extras) generalized from
// tag-addressed element conditions to name-addressed source terms (this
// solver has no element tags; every source term applies everywhere unless
// scoped by a future mesh-tag mechanism, which spec §6 does not name).
type SourceTerm struct {
	Function FuncSpec `json:"Function"`
}

// Validate requires a non-empty Function, since an entry with none
// contributes nothing and is almost certainly a configuration mistake.
func (st *SourceTerm) Validate() error {
	if st.Function.Type == "" {
		return configErrf("requires a Function")
	}
	return nil
}
