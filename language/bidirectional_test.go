package language

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catCorpus = [][]string{
	{"the", "cat", "sat"},
	{"the", "cat", "sat"},
}

func TestAlignedIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 1, 0},
		{0, 3, 2},
		{1, 3, 1},
		{2, 3, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, alignedIndex(tt.i, tt.n), "alignedIndex(%d, %d)", tt.i, tt.n)
	}
}

func TestBackwardRightContext(t *testing.T) {
	m := trainedModel(t, Backward, catCorpus)

	seen, err := m.SentenceTokenProbs([]string{"the", "cat", "sat"})
	require.NoError(t, err)
	unseen, err := m.SentenceTokenProbs([]string{"dog", "cat", "sat"})
	require.NoError(t, err)

	n := 3
	pThe := seen[alignedIndex(0, n)]
	pDog := unseen[alignedIndex(0, n)]
	// P(the | cat) = 0.1 * 1/10 + 0.9 * 1/1
	assert.InDelta(t, 0.91, pThe, 1e-12)
	// P(<UNK> | cat) = 0.1 * 3/10, no (cat, <UNK>) bigram
	assert.InDelta(t, 0.03, pDog, 1e-12)
	assert.Greater(t, pThe, pDog)
	assert.Greater(t, pDog, 0.0)
}

func TestBidirectionalAlignment(t *testing.T) {
	b := NewBidirectional()
	require.NoError(t, b.Train(catCorpus))

	s := []string{"the", "cat", "sat"}
	fwd, err := b.Forward().SentenceTokenProbs(s)
	require.NoError(t, err)
	bwd, err := b.Backward().SentenceTokenProbs(s)
	require.NoError(t, err)
	require.Equal(t, len(fwd), len(bwd))

	// Left context favours "cat" and "sat", right context favours "the"
	// and "cat".
	assert.InDeltaSlice(t, []float64{0.46, 0.91, 0.91, 0.92}, fwd, 1e-12)
	assert.InDeltaSlice(t, []float64{0.46, 0.91, 0.91, 0.92}, bwd, 1e-12)

	probs, err := b.TokenProbs(s)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.685, 0.91, 0.685, 0.92}, probs, 1e-12)

	wordLP, err := b.WordLogProb(s)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Log(0.685)+math.Log(0.91), wordLP, 1e-9)

	sentLP, err := b.SentenceLogProb(s)
	require.NoError(t, err)
	assert.InDelta(t, wordLP+math.Log(0.92), sentLP, 1e-9)

	// The callers' vectors are left as produced.
	bwdAgain, err := b.Backward().SentenceTokenProbs(s)
	require.NoError(t, err)
	assert.Equal(t, bwdAgain, bwd)
}

func TestBidirectionalEmptySentence(t *testing.T) {
	b := NewBidirectional()
	require.NoError(t, b.Train(testCorpus))

	fwd, err := b.Forward().SentenceTokenProbs(nil)
	require.NoError(t, err)
	bwd, err := b.Backward().SentenceTokenProbs(nil)
	require.NoError(t, err)

	lp, err := b.SentenceLogProb(nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Log((fwd[0]+bwd[0])/2), lp, 1e-12)

	lp, err = b.WordLogProb(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lp)
}

func TestBidirectionalIndependentCounts(t *testing.T) {
	b := NewBidirectional()
	require.NoError(t, b.Train(testCorpus))

	assert.Equal(t, b.Forward().TokenCount(), b.Backward().TokenCount())
	assert.Equal(t, Forward, b.Forward().Direction())
	assert.Equal(t, Backward, b.Backward().Direction())
	_, ok := b.Forward().bigrams[makeBigramKey(symStart, wordSymbol("the"))]
	assert.True(t, ok)
	_, ok = b.Backward().bigrams[makeBigramKey(symStart, wordSymbol("the"))]
	assert.False(t, ok)
}

func TestBidirectionalTrainTwice(t *testing.T) {
	b := NewBidirectional()
	require.NoError(t, b.Train(testCorpus))
	err := b.Train(testCorpus)
	assert.True(t, errors.Is(err, ErrAlreadyTrained))
}

func TestBidirectionalUntrained(t *testing.T) {
	b := NewBidirectional()
	_, err := b.SentenceLogProb([]string{"a"})
	assert.True(t, errors.Is(err, ErrUntrained))
	_, err = b.TokenProbs(nil)
	assert.True(t, errors.Is(err, ErrUntrained))
}

func TestBidirectionalSmoother(t *testing.T) {
	ip := Interpolation{UnigramWeight: 0.5, BigramWeight: 0.5}
	b := NewBidirectional(WithSmoother(ip))
	require.NoError(t, b.Train(catCorpus))

	probs, err := b.Forward().SentenceTokenProbs([]string{"the"})
	require.NoError(t, err)
	// P(the | <S>) = 0.5 * 1/10 + 0.5 * 1/2
	assert.InDelta(t, 0.3, probs[0], 1e-12)
}
