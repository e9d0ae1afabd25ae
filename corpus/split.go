package corpus

import (
	"math"

	"github.com/pkg/errors"
)

// Split divides sentences into training and test sets. The last
// round(len(sentences)*testFraction) sentences are the test set. Both results
// share the backing array of sentences.
func Split(sentences [][]string, testFraction float64) (train, test [][]string, err error) {
	if math.IsNaN(testFraction) || testFraction < 0 || testFraction > 1 {
		return nil, nil, errors.Errorf("test fraction %g not in [0, 1]", testFraction)
	}
	n := len(sentences)
	numTest := int(math.Round(float64(n) * testFraction))
	return sentences[:n-numTest], sentences[n-numTest:], nil
}
