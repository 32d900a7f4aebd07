// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// Restart is spec §6's `Restart` section: the persisted-state artifact
// (package restartio's encoding/gob file) to resume from, and the instant
// within it to resume at. Empty File means "start fresh from
// InitialCondition," mirroring the teacher's Stage.Import (ImportRes: a
// previous-simulation directory/file-key pair, optionally resetting a
// subset of state) generalized from "import displacements from another
// FEM run" to "resume coefficients from a restart artifact of this solver."
type Restart struct {
	File              string  `json:"File"`
	StartFromFileTime float64 `json:"StartFromFileTime"`
}

// SetDefault leaves File empty -- a document with no Restart section runs
// fresh from InitialCondition, per spec §6.
func (r *Restart) SetDefault() {}

// Validate rejects only a StartFromFileTime given without a File; File
// existing and being readable is checked by package restartio at load time,
// not here (a
// config document is valid syntactically even if naming a file that
// happens not to exist yet).
func (r *Restart) Validate() error {
	if r.File == "" && r.StartFromFileTime != 0 {
		return configErrf("Restart.StartFromFileTime set without a Restart.File")
	}
	return nil
}
