package poissonpoisson

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gosignificance/counts"
	"github.com/sartorproj/gosignificance/special"
)

// ErrAmbiguousSystematic is returned when both k and sigma are nonzero for the
// same measurement.
var ErrAmbiguousSystematic = errors.New("k and sigma are mutually exclusive")

// Kind identifies a systematic-uncertainty model.
type Kind int

// Systematic-uncertainty models.
const (
	KindNone Kind = iota
	KindBounded
	KindGaussian
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBounded:
		return "bounded"
	case KindGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Systematic describes the systematic uncertainty on alpha for one
// measurement. The zero value means no systematic.
type Systematic struct {
	Kind  Kind
	Value float64 // k for KindBounded, sigma for KindGaussian
}

// NoSystematic returns the model without systematic uncertainty.
func NoSystematic() Systematic {
	return Systematic{Kind: KindNone}
}

// Bounded returns the model where k is the upper bound on the fractional
// systematic uncertainty of alpha.
func Bounded(k float64) Systematic {
	return Systematic{Kind: KindBounded, Value: k}
}

// Gaussian returns the model with a Gaussian systematic of standard deviation sigma.
func Gaussian(sigma float64) Systematic {
	return Systematic{Kind: KindGaussian, Value: sigma}
}

func (s Systematic) String() string {
	switch s.Kind {
	case KindBounded:
		return fmt.Sprintf("bounded(k=%g)", s.Value)
	case KindGaussian:
		return fmt.Sprintf("gaussian(sigma=%g)", s.Value)
	default:
		return s.Kind.String()
	}
}

// Validate checks the parameter of the model.
func (s Systematic) Validate() error {
	switch s.Kind {
	case KindNone:
		return nil
	case KindBounded:
		return special.CheckNonNegative("k", s.Value)
	case KindGaussian:
		if math.IsInf(s.Value, 0) {
			return fmt.Errorf("sigma = %g: %w", s.Value, special.ErrInvalidParameter)
		}
		return special.CheckPositive("sigma", s.Value)
	default:
		return fmt.Errorf("unknown systematic %v: %w", s.Kind, special.ErrInvalidParameter)
	}
}

// SystematicsFromKSigma builds one Systematic per measurement from parallel k
// and sigma columns where 0 means "not used". k and sigma must have one
// element or n elements. An element with both k and sigma nonzero is
// rejected with ErrAmbiguousSystematic.
func SystematicsFromKSigma(k, sigma []float64, n int) ([]Systematic, error) {
	kk, err := counts.Broadcast("k", k, n)
	if err != nil {
		return nil, err
	}
	ss, err := counts.Broadcast("sigma", sigma, n)
	if err != nil {
		return nil, err
	}

	out := make([]Systematic, n)
	for i := range out {
		if err := special.CheckNonNegative("k", kk[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if err := special.CheckNonNegative("sigma", ss[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		switch {
		case kk[i] > 0 && ss[i] > 0:
			return nil, fmt.Errorf("element %d: k = %g, sigma = %g: %w", i, kk[i], ss[i], ErrAmbiguousSystematic)
		case kk[i] > 0:
			out[i] = Bounded(kk[i])
		case ss[i] > 0:
			out[i] = Gaussian(ss[i])
		default:
			out[i] = NoSystematic()
		}
	}
	return out, nil
}

func broadcastSystematics(sys []Systematic, n int) ([]Systematic, error) {
	switch len(sys) {
	case n:
		return sys, nil
	case 0:
		return make([]Systematic, n), nil
	case 1:
		out := make([]Systematic, n)
		for i := range out {
			out[i] = sys[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("systematic has %d elements, n has %d: %w", len(sys), n, counts.ErrSizeMismatch)
	}
}
