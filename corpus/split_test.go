package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	sentences := [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}, {"f"}, {"g"}, {"h"}, {"i"}, {"j"}}

	tests := []struct {
		frac      float64
		wantTrain int
		wantTest  int
	}{
		{0, 10, 0},
		{0.1, 9, 1},
		{0.25, 7, 3}, // round(2.5) = 3
		{0.5, 5, 5},
		{1, 0, 10},
	}
	for _, tt := range tests {
		train, test, err := Split(sentences, tt.frac)
		require.NoError(t, err)
		assert.Len(t, train, tt.wantTrain, "frac %g", tt.frac)
		assert.Len(t, test, tt.wantTest, "frac %g", tt.frac)
		if tt.wantTest > 0 {
			assert.Equal(t, []string{"j"}, test[len(test)-1])
		}
	}
}

func TestSplitInvalid(t *testing.T) {
	for _, frac := range []float64{-0.1, 1.5} {
		_, _, err := Split([][]string{{"a"}}, frac)
		assert.Error(t, err, "frac %g", frac)
	}
}
