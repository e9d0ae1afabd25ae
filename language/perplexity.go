package language

import (
	"math"

	"github.com/pkg/errors"
)

// Scorer scores sentences in the log domain. SentenceLogProb includes the
// sentence boundary prediction and WordLogProb does not.
type Scorer interface {
	SentenceLogProb(sentence []string) (float64, error)
	WordLogProb(sentence []string) (float64, error)
}

var (
	_ Scorer = (*BigramModel)(nil)
	_ Scorer = (*Bidirectional)(nil)
)

// Result holds the evaluation of a Scorer on a corpus.
type Result struct {
	Sentences int
	// Tokens counts words plus one boundary event per sentence.
	Tokens int
	// Words counts words only.
	Words          int
	Perplexity     float64
	WordPerplexity float64
}

// Perplexity returns exp(-L/N) where L is the summed SentenceLogProb over
// corpus and N counts every word plus one boundary event per sentence.
func Perplexity(s Scorer, corpus [][]string) (float64, error) {
	return perplexity(corpus, s.SentenceLogProb, 1)
}

// WordPerplexity is Perplexity normalized over words only, using
// WordLogProb.
func WordPerplexity(s Scorer, corpus [][]string) (float64, error) {
	return perplexity(corpus, s.WordLogProb, 0)
}

func perplexity(corpus [][]string, score func([]string) (float64, error), extra int) (float64, error) {
	var totalLogProb float64
	var totalTokens int
	for i, sentence := range corpus {
		lp, err := score(sentence)
		if err != nil {
			return 0, errors.Wrapf(err, "sentence %d", i)
		}
		totalLogProb += lp
		totalTokens += len(sentence) + extra
	}
	if totalTokens == 0 {
		return 0, ErrEmptyCorpus
	}
	return math.Exp(-totalLogProb / float64(totalTokens)), nil
}

// Evaluate computes both perplexity figures for corpus.
func Evaluate(s Scorer, corpus [][]string) (Result, error) {
	pp, err := Perplexity(s, corpus)
	if err != nil {
		return Result{}, err
	}
	wpp, err := WordPerplexity(s, corpus)
	if err != nil {
		return Result{}, err
	}
	words := 0
	for _, sentence := range corpus {
		words += len(sentence)
	}
	return Result{
		Sentences:      len(corpus),
		Tokens:         words + len(corpus),
		Words:          words,
		Perplexity:     pp,
		WordPerplexity: wpp,
	}, nil
}
