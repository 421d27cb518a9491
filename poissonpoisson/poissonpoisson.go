// Package poissonpoisson implements significances for on/off counting experiments.
package poissonpoisson

import (
	"fmt"
	"math"

	"github.com/sartorproj/gosignificance/counts"
	"github.com/sartorproj/gosignificance/minimize"
	"github.com/sartorproj/gosignificance/special"
	"github.com/sartorproj/gosignificance/zbi"
)

// UnphysicalLogLike is the log-likelihood assigned to parameters outside the
// physical region, so that a minimiser is steered back without failing.
const UnphysicalLogLike = -1000.0

// nudge is added to n and b in the Li & Ma formula to avoid 0·log(0).
const nudge = 1e-15

// Config holds configuration for the Gaussian-systematic optimisation.
type Config struct {
	Minimizer minimize.Minimizer // Minimiser over the systematic offset (default: Nelder-Mead, tolerance 1e-3)
	Start     float64            // Starting systematic offset (default: 0)
}

// DefaultConfig returns the default estimator configuration.
func DefaultConfig() *Config {
	return &Config{
		Minimizer: minimize.NewNelderMead(minimize.DefaultConfig()),
		Start:     0,
	}
}

// Estimator computes Poisson-Poisson significances with a configured minimiser.
type Estimator struct {
	config *Config
}

// New creates an Estimator. A nil config, or a config without a minimiser,
// uses the defaults.
func New(config *Config) *Estimator {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Minimizer == nil {
		c := *config
		c.Minimizer = DefaultConfig().Minimizer
		config = &c
	}
	return &Estimator{config: config}
}

// Significance returns the signed significance of n on-source counts given b
// off-source counts, efficiency ratio alpha and a systematic model, using the
// default configuration.
func Significance(n, b, alpha float64, sys Systematic) (float64, error) {
	return New(nil).Significance(n, b, alpha, sys)
}

// SignificanceVec is the vectorized Significance using the default configuration.
func SignificanceVec(n, b, alpha []float64, sys []Systematic) ([]float64, error) {
	return New(nil).SignificanceVec(n, b, alpha, sys)
}

// Significance returns the signed significance for one measurement. The sign
// is positive when n >= alpha*b.
func (e *Estimator) Significance(n, b, alpha float64, sys Systematic) (float64, error) {
	if err := validate(n, b, alpha); err != nil {
		return 0, err
	}
	if err := sys.Validate(); err != nil {
		return 0, err
	}

	var z float64
	var err error
	switch sys.Kind {
	case KindBounded:
		z, err = liMa(n, b, alpha*(sys.Value+1))
	case KindGaussian:
		var ts float64
		ts, err = e.TestStatistic(n, b, alpha, sys.Value)
		z = math.Sqrt(ts)
	default:
		z, err = liMa(n, b, alpha)
	}
	if err != nil {
		return 0, err
	}

	return sign(n, b, alpha) * z, nil
}

// SignificanceVec applies Significance elementwise. b, alpha and sys must
// have one element or len(n) elements; an empty sys means no systematic for
// every measurement. Shapes are checked before any computation and a failing
// element fails the whole call.
func (e *Estimator) SignificanceVec(n, b, alpha []float64, sys []Systematic) ([]float64, error) {
	bb, err := counts.Broadcast("b", b, len(n))
	if err != nil {
		return nil, err
	}
	aa, err := counts.Broadcast("alpha", alpha, len(n))
	if err != nil {
		return nil, err
	}
	ss, err := broadcastSystematics(sys, len(n))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(n))
	for i := range n {
		z, err := e.Significance(n[i], bb[i], aa[i], ss[i])
		if err != nil {
			return nil, fmt.Errorf("element %d (%v): %w", i, ss[i], err)
		}
		out[i] = z
	}
	return out, nil
}

// LiMa returns the unsigned Li & Ma (1983) significance.
func LiMa(n, b, alpha float64) (float64, error) {
	if err := validate(n, b, alpha); err != nil {
		return 0, err
	}
	return liMa(n, b, alpha)
}

func liMa(n, b, alpha float64) (float64, error) {
	n += nudge
	b += nudge

	nb := n + b
	ap1 := alpha + 1

	res := n * math.Log(ap1/alpha*(n/nb))
	res += b * math.Log(ap1*(b/nb))

	res, err := special.ClipNoise("Li & Ma log-likelihood ratio", res)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(2 * res), nil
}

// TestStatistic returns the likelihood-ratio test statistic with a Gaussian
// systematic of standard deviation sigma on alpha. The null hypothesis is
// profiled numerically over the systematic offset; the alternative has a
// closed form.
func (e *Estimator) TestStatistic(n, b, alpha, sigma float64) (float64, error) {
	if err := validate(n, b, alpha); err != nil {
		return 0, err
	}
	if err := Gaussian(sigma).Validate(); err != nil {
		return 0, err
	}
	if n == 0 && b == 0 {
		return 0, nil
	}

	nll := func(kappa float64) float64 {
		bkg := (b + n) / (alpha*kappa + alpha + 1)
		return -logLikelihood(n, b, alpha, sigma, kappa, bkg, 0)
	}

	res, err := e.config.Minimizer.Minimize(nll, e.config.Start)
	if err != nil {
		return 0, fmt.Errorf("profiling systematic offset: %w", err)
	}

	h0 := res.F
	h1 := -(special.XLogY(b, b) - b + special.XLogY(n, n) - n)

	return special.ClipNoise("TS", 2*(h0-h1))
}

// logLikelihood is the joint log-likelihood of on-source counts n and
// off-source counts b for background level bkg, source counts m and relative
// systematic offset kappa on alpha.
func logLikelihood(n, b, alpha, sigma, kappa, bkg, m float64) float64 {
	if m+alpha*bkg <= 0 || kappa+1 <= 0 || bkg <= 0 {
		return UnphysicalLogLike
	}

	ba := bkg * alpha
	bak := ba * kappa

	return -bak - ba - bkg - m + special.XLogY(b, bkg) - kappa*kappa/(2*sigma*sigma) + special.XLogY(n, bak+ba+m)
}

// ZBi returns the Z_Bi significance for n on-source and b off-source counts.
func ZBi(n, b, alpha float64) (float64, error) {
	return zbi.ZBi(n, b, alpha)
}

// ZBiVec applies ZBi elementwise with the usual broadcasting rules.
func ZBiVec(n, b, alpha []float64) ([]float64, error) {
	return zbi.ZBiVec(n, b, alpha)
}

func validate(n, b, alpha float64) error {
	if err := special.CheckNonNegative("n", n); err != nil {
		return err
	}
	if err := special.CheckNonNegative("b", b); err != nil {
		return err
	}
	return special.CheckPositive("alpha", alpha)
}

func sign(n, b, alpha float64) float64 {
	if n >= alpha*b {
		return 1
	}
	return -1
}
