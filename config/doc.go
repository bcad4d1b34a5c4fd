// SPDX-License-Identifier: MIT
// Package config loads eigenref run configuration from YAML files and
// environment variables.
//
// Precedence (highest to lowest):
//  1. Command-line flags (applied by the CLI layer)
//  2. Environment variables (EIGENREF_*)
//  3. Config file (eigenref.yaml)
//  4. Built-in defaults
//
// Environment variables (all use the EIGENREF_ prefix):
//
// Batch shape:
//   - EIGENREF_SAMPLES=4096
//   - EIGENREF_FEATURES=8
//   - EIGENREF_MATRIX_COUNT=8
//
// Run behavior:
//   - EIGENREF_WORKERS=0 (0 selects GOMAXPROCS)
//   - EIGENREF_DEBUG=true
//   - EIGENREF_RELAXED=false
//   - EIGENREF_PRECISION="float32" or "float64"
//
// Input:
//   - EIGENREF_DATASET="./dataset.csv"
//
// Example:
//
//	cfg, err := config.LoadFromFile(config.FindConfigFile())
//	if err != nil {
//		log.Fatalf("invalid config: %v", err)
//	}
//	fmt.Printf("batch: %d matrices of %d×%d\n",
//		cfg.MatrixCount, cfg.Samples, cfg.Features)
package config
