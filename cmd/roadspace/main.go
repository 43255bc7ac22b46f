// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command roadspace is a thin demonstration entry point for the core
// pipeline: it reads a JSON file holding a raw model plus its
// evaluation configuration, runs the pipeline, and prints the
// resulting issue list and the number of roads built. A real schema
// parser/validator and GML emitter are out of scope (§1); this exists
// only to exercise pipeline.Run end to end.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/roadspace/pipeline"
	"github.com/cpmech/roadspace/rmodel"
)

// inputFile is the on-disk shape this entry point understands: a raw
// model and its numeric configuration, both already matching
// rmodel.Model/rmodel.Config's own json tags.
type inputFile struct {
	Config rmodel.Config `json:"config"`
	Model  rmodel.Model  `json:"model"`
}

func main() {
	exitCode := pipeline.ExitInvalidConfig
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
		os.Exit(exitCode)
	}()

	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)

	if verbose {
		io.PfWhite("\nroadspace -- curve-based road-network geometry evaluator\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"input file", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	b, err := utl.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	var in inputFile
	in.Config.SetDefault()
	if err := json.Unmarshal(b, &in); err != nil {
		chk.Panic("cannot parse input file %q: %v", fnamepath, err)
	}

	dataset, code := pipeline.Run(context.Background(), in.Model, in.Config)
	if verbose {
		for _, issue := range dataset.Issues.Items() {
			io.Pf("%v\n", issue)
		}
		io.Pf("roads built: %d / %d\n", len(dataset.Roads), len(in.Model.Roads))
	}
	exitCode = code
}
