// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/cpmech/gosl/utl"

	"github.com/gofem-dg/dgfem/config"
	"github.com/gofem-dg/dgfem/restartio"
	"github.com/gofem-dg/dgfem/solver"
)

func main() {

	// catch errors
	utl.Tsilent = false
	defer func() {
		if err := recover(); err != nil {
			utl.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	utl.PfWhite("\ndgfem -- a discontinuous Galerkin solver for conservation laws\n\n")
	utl.Pf("Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.\n")
	utl.Pf("Use of this source code is governed by a BSD-style\n")
	utl.Pf("license that can be found in the LICENSE file.\n\n")

	// configuration filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		utl.Panic("Please, provide a configuration filename. Ex.: sod_problem.json")
	}

	// other options
	verbose := true
	if len(flag.Args()) > 1 {
		verbose = utl.Atob(flag.Arg(1))
	}

	// profiling?
	defer utl.DoProf(false)()

	// load and run
	cfg, err := config.Load(fnamepath)
	if err != nil {
		utl.Panic("%v\n", err)
		return
	}

	d, err := solver.Build(cfg)
	if err != nil {
		utl.Panic("%v\n", err)
		return
	}
	d.Verbose = verbose

	step := 0
	write := func(d *solver.Driver) error {
		path := fmt.Sprintf("%s_%04d.gob", cfg.Output.Prefix, step)
		step++
		return restartio.Write(path, d.T, cfg.Physics, cfg.Numerics, d.Op.Mesh, d.U)
	}

	if err := d.Run(write); err != nil {
		utl.Panic("%v\n", err)
		return
	}

	utl.Pfgreen("\nsimulation finished successfully\n")
}
