// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements spec §6's external configuration contract: a
// nested JSON document with one section per concern (TimeStepping,
// Numerics, Mesh, Physics, InitialCondition, ExactSolution,
// BoundaryConditions, SourceTerms, Output, Restart), each a sum-typed
// struct with a SetDefault and a Validate method, mirroring the shape of
// the teacher's inp/sim.go (Data/SolverData/LinSolData, each with its own
// SetDefault/PostProcess pair) generalized from FEM solver options to this
// solver's DG-specific ones. Per spec §9 Design Notes ("Runtime
// configuration dictionaries... represent as sum-typed structs with
// validation at construction, not as open key-value maps"), an unknown key
// anywhere in the document is a ConfigError, enforced by
// json.Decoder.DisallowUnknownFields rather than the teacher's permissive
// json.Unmarshal.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cpmech/gosl/io"
)

// ConfigError is the spec §7 error kind for an unknown key, a conflicting
// option combination, or a value outside its enumeration -- always fatal at
// startup, mirroring the per-package error-kind convention already
// established by mesh.MeshError, physics.UnsupportedError/NotPhysicalError
// and elemhelp.NumericError, rather than a single cross-package error enum.
type ConfigError struct{ Msg string }

func (e *ConfigError) Error() string { return "config: " + e.Msg }

func configErrf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// Config is the whole external configuration document of spec §6.
type Config struct {
	TimeStepping      TimeStepping                 `json:"TimeStepping"`
	Numerics          Numerics                     `json:"Numerics"`
	Mesh              Mesh                         `json:"Mesh"`
	Physics           Physics                      `json:"Physics"`
	InitialCondition  FuncSpec                     `json:"InitialCondition"`
	ExactSolution     *FuncSpec                    `json:"ExactSolution"`
	BoundaryConditions map[string]BoundaryCondition `json:"BoundaryConditions"`
	SourceTerms        map[string]SourceTerm        `json:"SourceTerms"`
	Output            Output                       `json:"Output"`
	Restart           Restart                      `json:"Restart"`
}

// SetDefault applies every section's defaults, to be called before
// unmarshaling so that keys absent from the document keep their tabulated
// default (spec §6: "Values not supplied take tabulated defaults").
func (c *Config) SetDefault() {
	c.TimeStepping.SetDefault()
	c.Numerics.SetDefault()
	c.Mesh.SetDefault()
	c.Physics.SetDefault()
	c.Output.SetDefault()
	c.Restart.SetDefault()
}

// Validate runs every section's Validate, short-circuiting on the first
// error the way the teacher's ReadSim aborts at the first LogErrCond it
// hits rather than accumulating a multi-error report.
func (c *Config) Validate() error {
	if err := c.TimeStepping.Validate(); err != nil {
		return err
	}
	if err := c.Numerics.Validate(); err != nil {
		return err
	}
	if err := c.Mesh.Validate(); err != nil {
		return err
	}
	if err := c.Physics.Validate(); err != nil {
		return err
	}
	if c.InitialCondition.Type == "" && c.Restart.File == "" {
		return configErrf("either InitialCondition or Restart must be set")
	}
	for name, bc := range c.BoundaryConditions {
		if err := bc.Validate(); err != nil {
			return configErrf("BoundaryConditions[%q]: %v", name, err)
		}
	}
	for name, st := range c.SourceTerms {
		if err := st.Validate(); err != nil {
			return configErrf("SourceTerms[%q]: %v", name, err)
		}
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Restart.Validate(); err != nil {
		return err
	}
	return nil
}

// Load reads, defaults, strictly decodes (rejecting unknown keys) and
// validates a configuration document, mirroring the teacher's ReadSim but
// returning an error instead of logging and returning nil -- this package
// has no log file of its own to report into; that remains the driver's
// concern (package solver).
func Load(path string) (*Config, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, configErrf("cannot read %s: %v", path, err)
	}
	var c Config
	c.SetDefault()
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, configErrf("cannot parse %s: %v", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
