// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rmodel defines the raw, pre-healing model tree that the core
// consumes (§6 inbound interface): the structures a schema parser would
// produce, and the numeric configuration that governs evaluation. The
// parser/validator itself is out of scope (§1) — only the contract lives
// here, mirroring how gofem's inp package holds .sim/.msh data structures
// without owning the file-format decoding details.
package rmodel

import "fmt"

// Config holds the numeric attributes that influence evaluation (§6).
// Mirrors inp.Data's json-tagged struct + SetDefault pattern.
type Config struct {
	Tolerance                   float64 `json:"tolerance"`
	DiscretizationStepSize      float64 `json:"discretizationStepSize"`
	SweepDiscretizationStepSize float64 `json:"sweepDiscretizationStepSize"`
	CircleSlices                int     `json:"circleSlices"`
	FlattenGenericAttributeSets bool    `json:"flattenGenericAttributeSets"`
	CrsEpsg                     int     `json:"crsEpsg"`
	OffsetX                     float64 `json:"offsetX"`
	OffsetY                     float64 `json:"offsetY"`
	OffsetZ                     float64 `json:"offsetZ"`
	OffsetHdg                   float64 `json:"offsetHdg"`
	Workers                     int     `json:"workers"`
}

// SetDefault fills in zero-valued fields with their documented defaults.
func (c *Config) SetDefault() {
	if c.Tolerance == 0 {
		c.Tolerance = 1e-7
	}
	if c.DiscretizationStepSize == 0 {
		c.DiscretizationStepSize = 0.5
	}
	if c.SweepDiscretizationStepSize == 0 {
		c.SweepDiscretizationStepSize = 0.3
	}
	if c.CircleSlices == 0 {
		c.CircleSlices = 12
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
}

// Validate checks the configuration is usable, returning a
// ConfigurationInvalid-kind error (§7) that must fail the whole run
// before any road is touched.
func (c Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("configuration invalid: tolerance must be non-negative, got %v", c.Tolerance)
	}
	if c.DiscretizationStepSize <= 0 {
		return fmt.Errorf("configuration invalid: discretizationStepSize must be positive, got %v", c.DiscretizationStepSize)
	}
	if c.SweepDiscretizationStepSize <= 0 {
		return fmt.Errorf("configuration invalid: sweepDiscretizationStepSize must be positive, got %v", c.SweepDiscretizationStepSize)
	}
	if c.CircleSlices < 3 {
		return fmt.Errorf("configuration invalid: circleSlices must be >= 3, got %v", c.CircleSlices)
	}
	if c.Workers < 0 {
		return fmt.Errorf("configuration invalid: workers must be >= 0 (0 means default), got %v", c.Workers)
	}
	return nil
}

// Header carries the coordinate-reference-system designator (opaque to
// the core, passed through) and the dataset-wide pre-transform.
type Header struct {
	CrsEpsg int
	OffsetX float64
	OffsetY float64
	OffsetZ float64
	OffsetHdg float64
}

// Model is the root entity the core consumes.
type Model struct {
	Header    Header
	Roads     []RoadRaw
	Junctions []JunctionRaw
}
