package language

import (
	"fmt"
	"math"

	"github.com/ieee0824/bigramlm/internal/mathutil"
	"github.com/pkg/errors"
)

// Bidirectional averages the predictions of a Forward and a Backward
// BigramModel trained on the same corpus, so that every token is scored
// with both its left and its right neighbour.
type Bidirectional struct {
	forward  *BigramModel
	backward *BigramModel
}

// NewBidirectional creates an untrained model. Options apply to both
// directional models, which still keep separate counts.
func NewBidirectional(opts ...Option) *Bidirectional {
	o := buildOptions(opts)
	return &Bidirectional{
		forward:  newBigramModel(Forward, o),
		backward: newBigramModel(Backward, o),
	}
}

// Forward returns the left-context model.
func (b *Bidirectional) Forward() *BigramModel { return b.forward }

// Backward returns the right-context model.
func (b *Bidirectional) Backward() *BigramModel { return b.backward }

// Train trains both directional models on corpus.
func (b *Bidirectional) Train(corpus [][]string) error {
	if err := b.forward.Train(corpus); err != nil {
		return errors.Wrap(err, "train forward model")
	}
	if err := b.backward.Train(corpus); err != nil {
		return errors.Wrap(err, "train backward model")
	}
	return nil
}

// alignedIndex maps natural position i of an n-token sentence to the slot of
// a Backward probability vector that predicts the same token.
func alignedIndex(i, n int) int {
	return n - 1 - i
}

// tokenLogProbs returns the log of the averaged prediction for every word of
// sentence in reading order, and the log of the averaged boundary prediction:
// forward </S> with backward <S>.
func (b *Bidirectional) tokenLogProbs(sentence []string) ([]float64, float64, error) {
	fwd, err := b.forward.SentenceTokenProbs(sentence)
	if err != nil {
		return nil, 0, err
	}
	bwd, err := b.backward.SentenceTokenProbs(sentence)
	if err != nil {
		return nil, 0, err
	}
	if len(fwd) != len(bwd) {
		panic(fmt.Sprintf("language: forward and backward vectors differ in length: %d != %d", len(fwd), len(bwd)))
	}

	n := len(sentence)
	words := make([]float64, n)
	for i := 0; i < n; i++ {
		words[i] = mathutil.LogMean(math.Log(fwd[i]), math.Log(bwd[alignedIndex(i, n)]))
	}
	boundary := mathutil.LogMean(math.Log(fwd[n]), math.Log(bwd[n]))
	return words, boundary, nil
}

// TokenProbs returns the averaged probability of every word of sentence in
// reading order, followed by the averaged boundary probability.
func (b *Bidirectional) TokenProbs(sentence []string) ([]float64, error) {
	words, boundary, err := b.tokenLogProbs(sentence)
	if err != nil {
		return nil, err
	}
	probs := make([]float64, 0, len(words)+1)
	for _, lp := range words {
		probs = append(probs, math.Exp(lp))
	}
	return append(probs, math.Exp(boundary)), nil
}

// SentenceLogProb returns the natural-log probability of sentence including
// the averaged boundary event.
func (b *Bidirectional) SentenceLogProb(sentence []string) (float64, error) {
	words, boundary, err := b.tokenLogProbs(sentence)
	if err != nil {
		return 0, err
	}
	return sum(words) + boundary, nil
}

// WordLogProb returns the natural-log probability of the words of sentence
// without the boundary event.
func (b *Bidirectional) WordLogProb(sentence []string) (float64, error) {
	words, _, err := b.tokenLogProbs(sentence)
	if err != nil {
		return 0, err
	}
	return sum(words), nil
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}
