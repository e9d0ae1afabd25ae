package language

import (
	"math"

	"github.com/pkg/errors"
)

// Smoother combines a unigram probability P(w) and a bigram probability
// P(w|prev) into one estimate. bigram is zero for unseen pairs.
type Smoother interface {
	Prob(unigram, bigram float64) float64
}

// Interpolation is linear interpolation of unigram and bigram estimates.
type Interpolation struct {
	UnigramWeight float64
	BigramWeight  float64
}

// DefaultInterpolation returns the weights 0.1 (unigram) and 0.9 (bigram).
func DefaultInterpolation() Interpolation {
	return Interpolation{UnigramWeight: 0.1, BigramWeight: 0.9}
}

// Prob returns UnigramWeight*unigram + BigramWeight*bigram.
func (ip Interpolation) Prob(unigram, bigram float64) float64 {
	return ip.UnigramWeight*unigram + ip.BigramWeight*bigram
}

// Validate checks that the weights are a convex combination with a positive
// unigram share, which keeps every seen-unigram estimate inside (0, 1].
func (ip Interpolation) Validate() error {
	if ip.UnigramWeight <= 0 || ip.UnigramWeight > 1 {
		return errors.Wrapf(ErrInvalidWeights, "unigram weight %g not in (0, 1]", ip.UnigramWeight)
	}
	if ip.BigramWeight < 0 || ip.BigramWeight > 1 {
		return errors.Wrapf(ErrInvalidWeights, "bigram weight %g not in [0, 1]", ip.BigramWeight)
	}
	if math.Abs(ip.UnigramWeight+ip.BigramWeight-1) > 1e-9 {
		return errors.Wrapf(ErrInvalidWeights, "weights sum to %g, want 1", ip.UnigramWeight+ip.BigramWeight)
	}
	return nil
}
