// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// Mesh is spec §6's `Mesh` section: either an external `File` (whose format
// is out of scope per spec.md §1/SPEC_FULL §1 -- only the in-memory
// mesh.Mesh container is core) or a built-in structured-grid generator
// description, mirroring the teacher's Region.Mshfile field but adding the
// structured-grid shortcut the teacher has no analogue for (the teacher
// always reads an external .msh file).
type Mesh struct {
	File string `json:"File"`

	ElementShape string `json:"ElementShape"` // segment, quad, tri
	NumElemsX    int    `json:"NumElemsX"`
	NumElemsY    int    `json:"NumElemsY"`
	Xmin         float64 `json:"xmin"`
	Xmax         float64 `json:"xmax"`
	Ymin         float64 `json:"ymin"`
	Ymax         float64 `json:"ymax"`

	PeriodicBoundariesX bool `json:"PeriodicBoundariesX"`
	PeriodicBoundariesY bool `json:"PeriodicBoundariesY"`
}

var meshShapes = map[string]bool{"segment": true, "quad": true, "tri": true}

// SetDefault leaves File/ElementShape empty; Validate requires the caller
// to have supplied exactly one mesh source, so there is no sane universal
// default to apply here (unlike the teacher, which always requires
// Mshfile).
func (m *Mesh) SetDefault() {}

// Validate enforces "File XOR built-in description", and that a built-in
// description carries a recognized shape and a positive element count in
// every dimension the shape needs.
func (m *Mesh) Validate() error {
	builtin := m.ElementShape != "" || m.NumElemsX > 0
	if m.File == "" && !builtin {
		return configErrf("Mesh requires either File or a built-in {ElementShape, NumElemsX, ...} description")
	}
	if m.File != "" && builtin {
		return configErrf("Mesh.File and a built-in description are mutually exclusive")
	}
	if builtin {
		if !meshShapes[m.ElementShape] {
			return configErrf("Mesh.ElementShape %q is not one of segment, quad, tri", m.ElementShape)
		}
		if m.NumElemsX <= 0 {
			return configErrf("Mesh.NumElemsX must be positive")
		}
		if m.Xmax <= m.Xmin {
			return configErrf("Mesh.xmax (%g) must exceed xmin (%g)", m.Xmax, m.Xmin)
		}
		if m.ElementShape != "segment" {
			if m.NumElemsY <= 0 {
				return configErrf("Mesh.NumElemsY must be positive for a 2D ElementShape")
			}
			if m.Ymax <= m.Ymin {
				return configErrf("Mesh.ymax (%g) must exceed ymin (%g)", m.Ymax, m.Ymin)
			}
		} else if m.PeriodicBoundariesY {
			return configErrf("Mesh.PeriodicBoundariesY has no meaning on a 1D segment mesh")
		}
	}
	return nil
}
