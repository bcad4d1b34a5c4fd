// SPDX-License-Identifier: MIT
// Package main provides the eigenref CLI entry point.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigenref/config"
	"github.com/katalvlaran/eigenref/matrix"
	"github.com/katalvlaran/eigenref/pca"
)

var (
	version = "0.1.0"
	commit  = "dev" // Set via ldflags: -X main.commit=$(git rev-parse --short HEAD)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eigenref",
		Short: "eigenref - batch covariance and eigen-decomposition reference",
		Long: `eigenref computes unnormalized covariance matrices and their
eigen-decompositions (shifted QR iteration) over a batch of datasets,
producing the bit-exact sequences accelerated implementations are
verified against.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("eigenref %s (%s)\n", version, commit)
		},
	})

	runCmd := &cobra.Command{
		Use:   "run [dataset.csv]",
		Short: "Run the batch pipeline over a CSV dataset",
		Long: `Loads an n×p CSV dataset (one observation per line), replicates it
into every batch slot, runs the covariance and eigen-decomposition
phases, and prints per-slot eigenvalues and sweep counts.

The dataset path comes from the argument, the --dataset flag, the
EIGENREF_DATASET variable, or the config file, in that order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBatchCmd,
	}
	runCmd.Flags().String("config", "", "Config file path (default: auto-detect eigenref.yaml)")
	runCmd.Flags().String("dataset", "", "CSV dataset path")
	runCmd.Flags().Int("matrix-count", 0, "Batch slots to fill with the dataset (0 = config value)")
	runCmd.Flags().Int("workers", -1, "Worker pool size, 0 = GOMAXPROCS (-1 = config value)")
	runCmd.Flags().String("precision", "", "Storage precision: float32 or float64 (empty = config value)")
	runCmd.Flags().Bool("debug", false, "Print intermediate covariance matrices and eigenvectors")
	runCmd.Flags().Bool("relaxed", false, "Suppress sweep-budget warnings (benchmark mode)")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runBatchCmd layers flags over config/env, loads the dataset, and drives
// the pipeline with the storage precision the config selects.
func runBatchCmd(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return err
	}

	// Flags win over both the file and the environment.
	if len(args) == 1 {
		cfg.Dataset = args[0]
	} else if flagPath, _ := cmd.Flags().GetString("dataset"); flagPath != "" {
		cfg.Dataset = flagPath
	}
	if n, _ := cmd.Flags().GetInt("matrix-count"); n > 0 {
		cfg.MatrixCount = n
	}
	if w, _ := cmd.Flags().GetInt("workers"); w >= 0 {
		cfg.Workers = w
	}
	if p, _ := cmd.Flags().GetString("precision"); p != "" {
		cfg.Precision = p
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}
	if relaxed, _ := cmd.Flags().GetBool("relaxed"); relaxed {
		cfg.Relaxed = true
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.Dataset == "" {
		return fmt.Errorf("no dataset: pass a CSV path or set EIGENREF_DATASET")
	}

	if cfg.Precision == config.PrecisionFloat32 {
		return runBatch[float32](cmd, cfg)
	}

	return runBatch[float64](cmd, cfg)
}

// runBatch executes the pipeline with storage type T and prints the
// per-slot report.
func runBatch[T matrix.Float](cmd *cobra.Command, cfg *config.Config) error {
	rows, err := loadCSV[T](cfg.Dataset)
	if err != nil {
		return err
	}

	opts := pca.Options{Debug: cfg.Debug, Relaxed: cfg.Relaxed, Workers: cfg.Workers}
	batch, err := pca.New(len(rows), len(rows[0]), cfg.MatrixCount, rows, opts)
	if err != nil {
		return err
	}
	if err = batch.Run(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "batch: %d matrices of %d×%d (%s), sweep budget %d\n",
		batch.MatrixCount(), batch.Samples(), batch.Features(),
		cfg.Precision, batch.IterationCap())
	for m := 0; m < batch.MatrixCount(); m++ {
		values, _ := batch.Eigenvalues(m)
		iters, _ := batch.Iterations(m)
		conv, _ := batch.Converged(m)
		status := "converged"
		if !conv {
			status = "budget saturated"
		}
		fmt.Fprintf(out, "matrix #%d: eigenvalues %v, %d sweeps (%s)\n",
			m, values, iters, status)
	}

	return nil
}

// loadCSV reads an n×p dataset: one observation per record, every record
// the same width, every field a decimal float.
func loadCSV[T matrix.Float](path string) ([][]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	rows := make([][]T, len(records))
	for i, record := range records {
		rows[i] = make([]T, len(record))
		for j, field := range record {
			v, errParse := strconv.ParseFloat(field, 64)
			if errParse != nil {
				return nil, fmt.Errorf("dataset %s: record %d field %d: %w",
					path, i+1, j+1, errParse)
			}
			rows[i][j] = T(v)
		}
	}

	return rows, nil
}
