// Package minimize implements one-dimensional minimisers.
package minimize

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// ErrNoResult is returned when the underlying optimiser produced no usable location.
var ErrNoResult = errors.New("minimizer returned no result")

// Minimizer finds a local minimum of a scalar function starting at x0.
type Minimizer interface {
	Minimize(f func(float64) float64, x0 float64) (*Result, error)
}

// Result holds the location of a minimum.
type Result struct {
	X           float64
	F           float64
	Evaluations int
	Status      optimize.Status
}

// Config holds the stopping rules shared by the minimisers.
type Config struct {
	Tolerance       float64 // Absolute improvement in f considered progress (default: 1e-3)
	StallIterations int     // Iterations without progress before stopping (default: 10)
	MaxIterations   int     // Hard cap on major iterations (default: 1000)
}

// DefaultConfig returns the default minimiser configuration.
func DefaultConfig() *Config {
	return &Config{
		Tolerance:       1e-3,
		StallIterations: 10,
		MaxIterations:   1000,
	}
}

// NelderMead minimises with the downhill simplex method.
type NelderMead struct {
	Config      *Config
	InitialStep float64 // Size of the initial simplex (default: 0.05)
}

// NewNelderMead creates a Nelder-Mead minimiser. A nil config uses DefaultConfig.
func NewNelderMead(config *Config) *NelderMead {
	if config == nil {
		config = DefaultConfig()
	}
	return &NelderMead{Config: config}
}

// Minimize implements Minimizer.
func (m *NelderMead) Minimize(f func(float64) float64, x0 float64) (*Result, error) {
	method := &optimize.NelderMead{SimplexSize: m.InitialStep}
	return run(problemFor(f, false, 0), x0, m.Config, method)
}

// BFGS minimises with the quasi-Newton BFGS method and a numerical gradient.
type BFGS struct {
	Config *Config
	Step   float64 // Finite-difference step (0 = gonum default)
}

// NewBFGS creates a BFGS minimiser. A nil config uses DefaultConfig.
func NewBFGS(config *Config) *BFGS {
	if config == nil {
		config = DefaultConfig()
	}
	return &BFGS{Config: config}
}

// Minimize implements Minimizer.
func (m *BFGS) Minimize(f func(float64) float64, x0 float64) (*Result, error) {
	return run(problemFor(f, true, m.Step), x0, m.Config, &optimize.BFGS{})
}

func problemFor(f func(float64) float64, gradient bool, step float64) optimize.Problem {
	fn := func(x []float64) float64 {
		return f(x[0])
	}
	p := optimize.Problem{Func: fn}
	if gradient {
		settings := &fd.Settings{Formula: fd.Central, Step: step}
		p.Grad = func(grad, x []float64) {
			fd.Gradient(grad, fn, x, settings)
		}
	}
	return p
}

func run(p optimize.Problem, x0 float64, config *Config, method optimize.Method) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}

	settings := &optimize.Settings{
		MajorIterations: config.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   config.Tolerance,
			Iterations: config.StallIterations,
		},
	}

	res, err := optimize.Minimize(p, []float64{x0}, settings, method)
	// A failed line search or an iteration limit still leaves the best
	// location found so far; only a missing or non-finite location is fatal.
	if res == nil || len(res.X) != 1 {
		if err == nil {
			err = ErrNoResult
		}
		return nil, fmt.Errorf("minimize from x0 = %g: %w", x0, err)
	}
	if math.IsNaN(res.F) || math.IsInf(res.F, 0) {
		return nil, fmt.Errorf("minimize from x0 = %g: objective is %g: %w", x0, res.F, ErrNoResult)
	}

	return &Result{
		X:           res.X[0],
		F:           res.F,
		Evaluations: res.Stats.FuncEvaluations,
		Status:      res.Status,
	}, nil
}
