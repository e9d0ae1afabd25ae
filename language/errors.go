package language

import "github.com/pkg/errors"

var (
	// ErrUntrained is returned when a probability is requested before Train.
	ErrUntrained = errors.New("language: model has not been trained")

	// ErrAlreadyTrained is returned by a second call to Train. Models are
	// populated once and read-only afterwards.
	ErrAlreadyTrained = errors.New("language: model is already trained")

	// ErrUnknownBoundaryToken is returned when a prediction needs a symbol
	// (usually <UNK>) that has no training occurrences, so its probability
	// is undefined.
	ErrUnknownBoundaryToken = errors.New("language: symbol has zero training count")

	// ErrEmptyCorpus is returned when perplexity would be normalized over
	// zero tokens.
	ErrEmptyCorpus = errors.New("language: no tokens to evaluate")

	// ErrInvalidWeights is returned for interpolation weights that cannot
	// produce a probability in (0, 1].
	ErrInvalidWeights = errors.New("language: invalid interpolation weights")
)
