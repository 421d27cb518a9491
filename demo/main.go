// Package main runs every significance estimator over a table of counting
// experiments.
// Based on: Vianello, G. (2018), ApJS 236, 17 (https://arxiv.org/abs/1712.00118)
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/gosignificance/counts"
	"github.com/sartorproj/gosignificance/idealcase"
	"github.com/sartorproj/gosignificance/minimize"
	"github.com/sartorproj/gosignificance/poissongauss"
	"github.com/sartorproj/gosignificance/poissonpoisson"
)

// MeasurementResult holds every estimate for one measurement for JSON export
type MeasurementResult struct {
	Name            string  `json:"name"`
	N               float64 `json:"n"`
	B               float64 `json:"b"`
	Alpha           float64 `json:"alpha"`
	Systematic      string  `json:"systematic"`
	IdealCase       float64 `json:"ideal_case"`
	PoissonPoisson  float64 `json:"poisson_poisson"`
	PoissonPoissonB float64 `json:"poisson_poisson_bfgs"`
	PoissonGauss    float64 `json:"poisson_gauss"`
	ZBi             float64 `json:"z_bi"`
	Threshold90     float64 `json:"five_sigma_threshold_90"`
}

// OutputData holds all results
type OutputData struct {
	Source       string              `json:"source"`
	Measurements []MeasurementResult `json:"measurements"`
	MostSignif   string              `json:"most_significant"`
}

func main() {
	file := flag.String("data", "", "measurement CSV (default: data/measurements.csv)")
	out := flag.String("out", "significance_results.json", "JSON output file (empty = none)")
	flag.Parse()

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoSignificance Demonstration - counting experiments")
	fmt.Println("Reference: https://arxiv.org/abs/1712.00118")
	fmt.Println(strings.Repeat("=", 80))

	path := *file
	if path == "" {
		path = filepath.Join(findDataDir(), "measurements.csv")
	}
	fmt.Printf("\nData file: %s\n", path)

	table, err := counts.LoadCSV(path, nil)
	if err != nil {
		fmt.Printf("Error loading: %v\n", err)
		os.Exit(1)
	}
	if err := table.Validate(); err != nil {
		fmt.Printf("Invalid table: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d measurements\n", table.Len())

	output := analyze(table)
	output.Source = path

	if *out == "" {
		return
	}

	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Error encoding: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Printf("Error writing: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d measurements to %s\n", len(output.Measurements), *out)
	fmt.Println(strings.Repeat("=", 80))
}

// findDataDir locates the data directory
func findDataDir() string {
	for _, p := range []string{"data", "./data", "../data"} {
		if _, err := os.Stat(filepath.Join(p, "measurements.csv")); err == nil {
			return p
		}
	}
	return "data"
}

// analyze runs every estimator column-wise, then prints one block per row
func analyze(table *counts.Table) *OutputData {
	n := table.Len()

	sys, err := poissonpoisson.SystematicsFromKSigma(table.K, table.Sigma, n)
	if err != nil {
		fmt.Printf("   Error reading systematics: %v\n", err)
		os.Exit(1)
	}

	// Known background and its statistical error from the off measurement
	mu := make([]float64, n)
	floats.MulTo(mu, table.Alpha, table.B)
	muErr := make([]float64, n)
	for i := range muErr {
		muErr[i] = table.Alpha[i] * math.Sqrt(table.B[i])
	}

	ideal := column("ideal case", func() ([]float64, error) { return idealcase.SignificanceVec(table.N, mu) }, n)
	pp := column("Poisson-Poisson", func() ([]float64, error) {
		return poissonpoisson.SignificanceVec(table.N, table.B, table.Alpha, sys)
	}, n)
	bfgs := poissonpoisson.New(&poissonpoisson.Config{Minimizer: minimize.NewBFGS(nil)})
	ppB := column("Poisson-Poisson (BFGS)", func() ([]float64, error) {
		return bfgs.SignificanceVec(table.N, table.B, table.Alpha, sys)
	}, n)
	pg := column("Poisson-Gauss", func() ([]float64, error) { return poissongauss.SignificanceVec(table.N, mu, muErr) }, n)
	zbi := column("Z_Bi", func() ([]float64, error) { return poissonpoisson.ZBiVec(table.N, table.B, table.Alpha) }, n)
	thr := column("5σ threshold", func() ([]float64, error) {
		return idealcase.FiveSigmaThresholdVec(mu, idealcase.Efficiency90)
	}, n)

	output := &OutputData{Measurements: make([]MeasurementResult, 0, n)}
	for i := 0; i < n; i++ {
		m := table.Row(i)
		fmt.Printf("\n%s\n[%d/%d] %s\n%s\n", strings.Repeat("=", 80), i+1, n, m.Name, strings.Repeat("=", 80))
		fmt.Printf("   n=%g  b=%g  alpha=%g  systematic=%v\n", m.N, m.B, m.Alpha, sys[i])
		fmt.Printf("   Ideal case (B=%.3f):        %8.4f\n", mu[i], ideal[i])
		fmt.Printf("   Poisson-Poisson:            %8.4f\n", pp[i])
		fmt.Printf("   Poisson-Poisson (BFGS):     %8.4f\n", ppB[i])
		fmt.Printf("   Poisson-Gauss (sigma=%.3f): %8.4f\n", muErr[i], pg[i])
		fmt.Printf("   Z_Bi:                       %8.4f\n", zbi[i])
		fmt.Printf("   5σ excess at 90%% eff.:      %8.2f\n", thr[i])

		output.Measurements = append(output.Measurements, MeasurementResult{
			Name: m.Name, N: m.N, B: m.B, Alpha: m.Alpha, Systematic: sys[i].String(),
			IdealCase: jsonSafe(ideal[i]), PoissonPoisson: jsonSafe(pp[i]), PoissonPoissonB: jsonSafe(ppB[i]),
			PoissonGauss: jsonSafe(pg[i]), ZBi: jsonSafe(zbi[i]), Threshold90: jsonSafe(thr[i]),
		})
	}

	if n > 0 && !floats.HasNaN(pp) {
		best := floats.MaxIdx(pp)
		output.MostSignif = table.Row(best).Name
		fmt.Printf("\nMost significant (Poisson-Poisson): %s at %.2fσ\n", output.MostSignif, pp[best])
	}

	return output
}

// column runs a vectorized estimator; on failure the column is reported and
// filled with NaN so that the other estimators still print
func column(name string, fn func() ([]float64, error), n int) []float64 {
	values, err := fn()
	if err == nil {
		return values
	}
	fmt.Printf("   %s: %v\n", name, err)
	values = make([]float64, n)
	for i := range values {
		values[i] = math.NaN()
	}
	return values
}

// jsonSafe maps values encoding/json cannot represent to 0
func jsonSafe(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
