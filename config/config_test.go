// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// validDoc returns a complete, self-consistent configuration document as a
// Go value, serialized to JSON by each test that needs a file on disk.
func validDoc() map[string]interface{} {
	return map[string]interface{}{
		"TimeStepping": map[string]interface{}{
			"InitialTime": 0.0, "FinalTime": 1.0, "CFL": 0.1, "TimeStepper": "RK4",
		},
		"Numerics": map[string]interface{}{
			"SolutionOrder": 2, "SolutionBasis": "LagrangeSeg", "Solver": "DG",
			"ElementQuadrature": 4, "FaceQuadrature": 4, "NodeType": "Equidistant",
			"SourceTreatment": "Explicit", "ConvFluxSwitch": true, "SourceSwitch": true,
		},
		"Mesh": map[string]interface{}{
			"ElementShape": "segment", "NumElemsX": 16, "xmin": -1.0, "xmax": 1.0,
			"PeriodicBoundariesX": true,
		},
		"Physics": map[string]interface{}{
			"Type": "ConstAdvScalar", "ConvFluxNumerical": "LaxFriedrichs", "ConstVelocity": 1.0,
		},
		"InitialCondition": map[string]interface{}{
			"Type": "cte", "Params": []map[string]interface{}{{"Name": "c", "Value": 0.0}},
		},
		"ExactSolution":      nil,
		"BoundaryConditions": map[string]interface{}{},
		"SourceTerms":        map[string]interface{}{},
		"Output":             map[string]interface{}{"Prefix": "test"},
		"Restart":            map[string]interface{}{},
	}
}

func writeDoc(t *testing.T, doc map[string]interface{}) string {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "sim.json")
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAcceptsASelfConsistentDocument(t *testing.T) {
	chk.PrintTitle("Load accepts a fully-specified, self-consistent document")
	path := writeDoc(t, validDoc())
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.TimeStepping.TimeStepper != "RK4" {
		t.Fatalf("expected RK4, got %s", c.TimeStepping.TimeStepper)
	}
	if c.Mesh.NumElemsX != 16 {
		t.Fatalf("expected 16, got %d", c.Mesh.NumElemsX)
	}
	io.Pfgreen("OK\n")
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	chk.PrintTitle("Load rejects a document with an unrecognized key")
	doc := validDoc()
	doc["NotARealSection"] = 1
	path := writeDoc(t, doc)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unknown top-level key")
	}
	io.Pfgreen("OK\n")
}

func TestTimeSteppingRejectsMultipleDtSelectors(t *testing.T) {
	chk.PrintTitle("TimeStepping.Validate rejects more than one of NumTimeSteps/TimeStepSize/CFL")
	ts := TimeStepping{InitialTime: 0, FinalTime: 1, TimeStepper: "RK4", CFL: 0.1, TimeStepSize: 0.01}
	if err := ts.Validate(); err == nil {
		t.Fatal("expected an error when both CFL and TimeStepSize are set")
	}
	io.Pfgreen("OK\n")
}

func TestTimeSteppingRejectsNoDtSelector(t *testing.T) {
	chk.PrintTitle("TimeStepping.Validate rejects none of NumTimeSteps/TimeStepSize/CFL")
	ts := TimeStepping{InitialTime: 0, FinalTime: 1, TimeStepper: "RK4"}
	if err := ts.Validate(); err == nil {
		t.Fatal("expected an error when none of NumTimeSteps/TimeStepSize/CFL is set")
	}
	io.Pfgreen("OK\n")
}

func TestNumericsRejectsInterpolateFluxWithoutColocatedPoints(t *testing.T) {
	chk.PrintTitle("Numerics.Validate enforces InterpolateFlux requires ColocatedPoints")
	var n Numerics
	n.SetDefault()
	n.InterpolateFlux = true
	if err := n.Validate(); err == nil {
		t.Fatal("expected an error: InterpolateFlux without ColocatedPoints")
	}
	n.ColocatedPoints = true
	if err := n.Validate(); err != nil {
		t.Fatalf("expected no error once ColocatedPoints is set, got %v", err)
	}
	io.Pfgreen("OK\n")
}

func TestMeshRejectsFileAndBuiltinTogether(t *testing.T) {
	chk.PrintTitle("Mesh.Validate rejects File and a built-in description together")
	m := Mesh{File: "grid.msh", ElementShape: "segment", NumElemsX: 4, Xmax: 1}
	if err := m.Validate(); err == nil {
		t.Fatal("expected an error: File and built-in description are mutually exclusive")
	}
	io.Pfgreen("OK\n")
}

func TestFuncSpecBuildRejectsMissingType(t *testing.T) {
	chk.PrintTitle("FuncSpec.Build rejects a spec with no Type")
	var f FuncSpec
	if _, err := f.Build(); err == nil {
		t.Fatal("expected an error: FuncSpec with no Type")
	}
	io.Pfgreen("OK\n")
}

func TestBoundaryConditionRequiresExactlyOneOfBCTypeOrFunction(t *testing.T) {
	chk.PrintTitle("BoundaryCondition.Validate requires exactly one of BCType or Function")
	var bc BoundaryCondition
	if err := bc.Validate(); err == nil {
		t.Fatal("expected an error: neither BCType nor Function set")
	}
	bc.BCType = "SlipWall"
	bc.Function = &FuncSpec{Type: "cte"}
	if err := bc.Validate(); err == nil {
		t.Fatal("expected an error: both BCType and Function set")
	}
	io.Pfgreen("OK\n")
}
