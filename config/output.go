// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// Output is spec §6's `Output` section, mirroring inp/sim.go's Data.DirOut/
// Encoder pair (a directory-and-format output contract) narrowed to the
// write-cadence fields spec §6 actually names; the file-format/plotting
// particulars behind `AutoPostProcess` remain a thin collaborator per
// SPEC_FULL §1.
type Output struct {
	Prefix               string  `json:"Prefix"`
	WriteInterval        float64 `json:"WriteInterval"`
	WriteInitialSolution bool    `json:"WriteInitialSolution"`
	WriteFinalSolution   bool    `json:"WriteFinalSolution"`
	AutoPostProcess      bool    `json:"AutoPostProcess"`
}

// SetDefault mirrors inp/sim.go's Data.SetDefault default output prefix.
func (o *Output) SetDefault() {
	o.Prefix = "out"
	o.WriteFinalSolution = true
}

// Validate rejects a negative write interval; zero means "only initial and
// final," a legitimate choice.
func (o *Output) Validate() error {
	if o.WriteInterval < 0 {
		return configErrf("Output.WriteInterval must be >= 0, got %g", o.WriteInterval)
	}
	if o.Prefix == "" {
		return configErrf("Output.Prefix must not be empty")
	}
	return nil
}
