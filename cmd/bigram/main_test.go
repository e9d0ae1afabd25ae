package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ieee0824/bigramlm/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const plainCorpus = `the cat sat on the mat
the dog sat on the mat
a cat ran
the cat sat
a dog ran away
the dog ran
a cat sat on a dog
the cat ran away
a dog sat
the mat sat
`

func writeCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(plainCorpus), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeCorpus(t)
	frac := 0.2

	for _, name := range []string{"forward", "backward", "bidirectional"} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			a := args{Files: []string{path}, Model: name, Format: "plain", TestFrac: &frac}
			require.NoError(t, run(&out, a, config.Default(), zap.NewNop()))

			got := out.String()
			assert.Contains(t, got, "# Train Sentences = 8 (# words = 35)\n")
			assert.Contains(t, got, "# Test Sentences = 2 (# words = 6)\n")
			assert.Equal(t, 2, strings.Count(got, "Word Perplexity = "))
			assert.Contains(t, got, "Training...\n")
			assert.Contains(t, got, "Testing...\n")
		})
	}
}

func TestRunUnknownModel(t *testing.T) {
	a := args{Files: []string{writeCorpus(t)}, Model: "trigram", Format: "plain"}
	err := run(&bytes.Buffer{}, a, config.Default(), zap.NewNop())
	assert.Error(t, err)
}

func TestRunEmptyTestSet(t *testing.T) {
	frac := 0.0
	a := args{Files: []string{writeCorpus(t)}, Model: "bidirectional", Format: "plain", TestFrac: &frac}
	err := run(&bytes.Buffer{}, a, config.Default(), zap.NewNop())
	assert.Error(t, err)
}

func TestNewModel(t *testing.T) {
	for _, name := range []string{"forward", "backward", "bidirectional"} {
		m, err := newModel(name)
		require.NoError(t, err)
		assert.NotNil(t, m)
	}
	_, err := newModel("unigram")
	assert.Error(t, err)
}
