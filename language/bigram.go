package language

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BigramModel counts unigrams and bigrams while reading sentences in one
// Direction and predicts each token from its neighbour on the side already
// read. The first occurrence of every word is counted as <UNK>, so the model
// has an estimate for unseen words at test time.
type BigramModel struct {
	dir        Direction
	smoother   Smoother
	logger     *zap.Logger
	unigrams   map[symbol]int
	bigrams    map[bigramKey]int
	tokenCount int
	trained    bool
}

// Option configures a BigramModel or a Bidirectional model.
type Option func(*options)

type options struct {
	smoother Smoother
	logger   *zap.Logger
}

// WithSmoother sets the probability smoother. The default is
// DefaultInterpolation.
func WithSmoother(s Smoother) Option {
	return func(o *options) {
		o.smoother = s
	}
}

// WithLogger sets the logger used for training summaries.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{
		smoother: DefaultInterpolation(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewBigramModel creates an empty model reading sentences in direction dir.
func NewBigramModel(dir Direction, opts ...Option) *BigramModel {
	o := buildOptions(opts)
	return newBigramModel(dir, o)
}

func newBigramModel(dir Direction, o options) *BigramModel {
	return &BigramModel{
		dir:      dir,
		smoother: o.smoother,
		logger:   o.logger.With(zap.Stringer("direction", dir)),
		unigrams: map[symbol]int{symStart: 0, symEnd: 0, symUnknown: 0},
		bigrams:  make(map[bigramKey]int),
	}
}

// Direction returns the traversal direction of the model.
func (m *BigramModel) Direction() Direction { return m.dir }

// VocabularySize returns the number of vocabulary entries, markers and
// zero-count placeholders included.
func (m *BigramModel) VocabularySize() int { return len(m.unigrams) }

// TokenCount returns the number of tokens counted during training, boundary
// markers included.
func (m *BigramModel) TokenCount() int { return m.tokenCount }

// Train accumulates counts over corpus. A model can be trained only once.
func (m *BigramModel) Train(corpus [][]string) error {
	if m.trained {
		return ErrAlreadyTrained
	}
	for _, sentence := range corpus {
		m.trainSentence(sentence)
	}
	m.trained = true
	m.logger.Debug("trained bigram model",
		zap.Int("sentences", len(corpus)),
		zap.Int("vocabulary", len(m.unigrams)),
		zap.Int("bigrams", len(m.bigrams)),
		zap.Int("tokens", m.tokenCount),
		zap.Int("unknown", m.unigrams[symUnknown]))
	return nil
}

func (m *BigramModel) trainSentence(sentence []string) {
	prev := m.dir.seedMarker()
	m.unigrams[prev]++
	m.tokenCount++
	for i := range sentence {
		tok := wordSymbol(m.dir.tokenAt(sentence, i))
		if _, ok := m.unigrams[tok]; !ok {
			// First sighting: leave a zero-count placeholder and count the
			// occurrence as unknown.
			m.unigrams[tok] = 0
			tok = symUnknown
		}
		m.unigrams[tok]++
		m.tokenCount++
		m.bigrams[makeBigramKey(prev, tok)]++
		prev = tok
	}
	final := m.dir.finalMarker()
	m.unigrams[final]++
	m.tokenCount++
	m.bigrams[makeBigramKey(prev, final)]++
}

// lookup maps a token to the symbol it is evaluated as. Words without a
// positive count (never seen, or seen only once) are evaluated as <UNK>.
func (m *BigramModel) lookup(tok string) symbol {
	s := wordSymbol(tok)
	if m.unigrams[s] > 0 {
		return s
	}
	return symUnknown
}

// prob returns the smoothed probability of cur following prev.
func (m *BigramModel) prob(prev, cur symbol) (float64, error) {
	count := m.unigrams[cur]
	if count <= 0 {
		return 0, errors.Wrapf(ErrUnknownBoundaryToken, "%s model: predicting %s", m.dir, cur)
	}
	unigram := float64(count) / float64(m.tokenCount)
	var bigram float64
	if c, ok := m.bigrams[makeBigramKey(prev, cur)]; ok {
		bigram = float64(c) / float64(m.unigrams[prev])
	}
	p := m.smoother.Prob(unigram, bigram)
	switch {
	case math.IsNaN(p) || p <= 0:
		return 0, errors.Wrapf(ErrUnknownBoundaryToken, "%s model: P(%s|%s) = %g", m.dir, cur, prev, p)
	case p > 1:
		return 0, errors.Wrapf(ErrInvalidWeights, "%s model: P(%s|%s) = %g", m.dir, cur, prev, p)
	}
	return p, nil
}

// walk calls fn with the probability of every prediction for sentence in
// traversal order, the final boundary marker last. slot is the output index
// and boundary reports whether the prediction is the final marker.
func (m *BigramModel) walk(sentence []string, fn func(slot int, p float64, boundary bool)) error {
	if !m.trained {
		return ErrUntrained
	}
	prev := m.dir.seedMarker()
	for i := range sentence {
		tok := m.lookup(m.dir.tokenAt(sentence, i))
		p, err := m.prob(prev, tok)
		if err != nil {
			return err
		}
		fn(i, p, false)
		prev = tok
	}
	p, err := m.prob(prev, m.dir.finalMarker())
	if err != nil {
		return err
	}
	fn(len(sentence), p, true)
	return nil
}

// SentenceTokenProbs returns len(sentence)+1 probabilities in traversal
// order: one per token read and one for the final boundary marker. For a
// Backward model the vector runs from the last word to the first, followed
// by the <S> prediction.
func (m *BigramModel) SentenceTokenProbs(sentence []string) ([]float64, error) {
	probs := make([]float64, len(sentence)+1)
	err := m.walk(sentence, func(slot int, p float64, _ bool) {
		probs[slot] = p
	})
	if err != nil {
		return nil, err
	}
	return probs, nil
}

// SentenceLogProb returns the natural-log probability of sentence, including
// the prediction of the final boundary marker.
func (m *BigramModel) SentenceLogProb(sentence []string) (float64, error) {
	total := 0.0
	err := m.walk(sentence, func(_ int, p float64, _ bool) {
		total += math.Log(p)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// WordLogProb is SentenceLogProb without the boundary marker prediction.
func (m *BigramModel) WordLogProb(sentence []string) (float64, error) {
	total := 0.0
	err := m.walk(sentence, func(_ int, p float64, boundary bool) {
		if !boundary {
			total += math.Log(p)
		}
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
