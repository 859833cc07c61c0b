package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eigenkit/algebra"
	"github.com/katalvlaran/eigenkit/eigen"
	"github.com/katalvlaran/eigenkit/matrix"
)

var (
	method     string
	maxIters   int
	probeIters int
	probeStep  int
	plot       bool
	precision  int
	// random generation
	randRows int
	randCols int
	randMin  float64
	randMax  float64
	seed     int64
	// output format
	wolfram bool
)

// MatrixConfig is the YAML input shape: a dense row literal plus optional
// solver overrides (CLI flags win over file values).
type MatrixConfig struct {
	Rows     [][]float64 `yaml:"rows"`
	Method   string      `yaml:"method"`
	MaxIters int         `yaml:"max_iters"`
}

// SystemConfig is the YAML input shape of the least-squares command.
type SystemConfig struct {
	System [][]float64 `yaml:"system"`
	Rhs    []float64   `yaml:"rhs"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "eigenkit",
		Short: "dense matrix toolbox: eigenpairs, least squares, generation",
	}

	eigenCmd := &cobra.Command{
		Use:   "eigen [matrix.yaml]",
		Short: "extract dominant eigenpairs by power iteration",
		Args:  cobra.ExactArgs(1),
		RunE:  runEigen,
	}
	eigenCmd.Flags().StringVar(&method, "method", "auto", "iteration method: auto|dominant|squared|complex")
	eigenCmd.Flags().IntVar(&maxIters, "max-iters", eigen.DefaultMaxIterations, "iteration cap")
	eigenCmd.Flags().IntVar(&probeIters, "probe-iters", eigen.DefaultProbeIterations, "probe run cap (auto method)")
	eigenCmd.Flags().IntVar(&probeStep, "probe-step", eigen.DefaultProbeStep, "probe stall-detection window")
	eigenCmd.Flags().BoolVar(&plot, "plot", false, "plot convergence history")
	eigenCmd.Flags().IntVar(&precision, "precision", 4, "printed decimal places")

	solveCmd := &cobra.Command{
		Use:   "solve [system.yaml]",
		Short: "solve an overdetermined system by least squares",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().IntVar(&precision, "precision", 4, "printed decimal places")

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "print a random dense matrix",
		RunE:  runRandom,
	}
	randomCmd.Flags().IntVar(&randRows, "rows", 4, "row count")
	randomCmd.Flags().IntVar(&randCols, "cols", 4, "column count")
	randomCmd.Flags().Float64Var(&randMin, "min", -1, "lower bound")
	randomCmd.Flags().Float64Var(&randMax, "max", 1, "upper bound")
	randomCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	randomCmd.Flags().BoolVar(&wolfram, "wolfram", false, "print in Wolfram list form")
	randomCmd.Flags().IntVar(&precision, "precision", 4, "printed decimal places")

	rootCmd.AddCommand(eigenCmd, solveCmd, randomCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEigen(cmd *cobra.Command, args []string) error {
	cfg, err := loadMatrixConfig(args[0])
	if err != nil {
		return err
	}
	a, err := matrix.FromRows(cfg.Rows)
	if err != nil {
		return fmt.Errorf("failed to build matrix: %w", err)
	}

	// File values apply only where the flag was left at its default.
	if cfg.Method != "" && !cmd.Flags().Changed("method") {
		method = cfg.Method
	}
	if cfg.MaxIters > 0 && !cmd.Flags().Changed("max-iters") {
		maxIters = cfg.MaxIters
	}

	m, err := parseMethod(method)
	if err != nil {
		return err
	}

	matrix.SetEps(matrix.Eps[complex128](), precision)
	res, err := eigen.PowerMethodEigenvalues(a,
		eigen.WithMethod(m),
		eigen.WithMaxIterations(maxIters),
		eigen.WithProbeIterations(probeIters),
		eigen.WithProbeStep(probeStep),
	)
	if err != nil {
		return err
	}

	fmt.Printf("matrix: %dx%d\n", a.Rows(), a.Cols())
	fmt.Printf("iterations: %d\n", res.Iterations)
	for i, p := range res.Pairs {
		fmt.Printf("eigenvalue %d: %s\n", i+1, formatComplex(p.Value))
		fmt.Printf("eigenvector %d:\n%s", i+1, p.Vector.String())
	}

	if plot && len(res.History) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(res.History,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("convergence residual per step"),
		))
	}

	if !res.Converged {
		fmt.Fprintln(os.Stderr, "did not converge within the iteration cap")
		os.Exit(1)
	}

	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var cfg SystemConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	l, err := matrix.FromRows(cfg.System)
	if err != nil {
		return fmt.Errorf("failed to build system: %w", err)
	}
	r, err := matrix.New[float64](len(cfg.Rhs), 1)
	if err != nil {
		return fmt.Errorf("failed to build rhs: %w", err)
	}
	for i, v := range cfg.Rhs {
		_ = r.SetVec(i, v)
	}

	c, err := algebra.MinimalSquareProblem(l, r)
	if err != nil {
		if errors.Is(err, algebra.ErrSingular) {
			return fmt.Errorf("system has no unique least-squares solution: %w", err)
		}
		return err
	}

	matrix.SetEps(matrix.Eps[float64](), precision)
	fmt.Printf("solution (%d coefficients):\n%s", c.Rows(), c.String())

	return nil
}

func runRandom(cmd *cobra.Command, args []string) error {
	m, err := matrix.Random(randRows, randCols, randMin, randMax,
		matrix.WithSeed(seed), matrix.WithForceReseed())
	if err != nil {
		return err
	}

	matrix.SetEps(matrix.Eps[float64](), precision)
	if wolfram {
		fmt.Print(m.ToWolframString())
		return nil
	}
	fmt.Print(m.String())

	return nil
}

// loadMatrixConfig reads and validates the eigen command's YAML input.
func loadMatrixConfig(path string) (*MatrixConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg MatrixConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(cfg.Rows) == 0 {
		return nil, fmt.Errorf("%s: no rows given", path)
	}

	return &cfg, nil
}

// parseMethod maps the CLI spelling onto a Method constant.
func parseMethod(s string) (eigen.Method, error) {
	switch s {
	case "auto":
		return eigen.MethodAuto, nil
	case "dominant":
		return eigen.MethodDominant, nil
	case "squared":
		return eigen.MethodSquared, nil
	case "complex":
		return eigen.MethodComplex, nil
	}

	return 0, fmt.Errorf("unknown method %q (want auto|dominant|squared|complex)", s)
}

// formatComplex prints a complex value compactly, dropping a zero
// imaginary part.
func formatComplex(v complex128) string {
	if imag(v) == 0 {
		return fmt.Sprintf("%.*f", precision, real(v))
	}

	return fmt.Sprintf("%.*f%+.*fi", precision, real(v), precision, imag(v))
}
