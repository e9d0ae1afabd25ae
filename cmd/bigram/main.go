package main

import (
	"fmt"
	"io"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/ieee0824/bigramlm/config"
	"github.com/ieee0824/bigramlm/corpus"
	"github.com/ieee0824/bigramlm/internal/logging"
	"github.com/ieee0824/bigramlm/language"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type args struct {
	Files    []string `arg:"positional,required" help:"corpus files or directories"`
	Config   string   `arg:"--config" help:"YAML config file"`
	Model    string   `arg:"--model" default:"bidirectional" help:"forward, backward or bidirectional"`
	TestFrac *float64 `arg:"--test-frac" help:"fraction of sentences held out for testing (overrides config)"`
	Format   string   `arg:"--format" help:"corpus format, tagged or plain (overrides config)"`
}

func (args) Description() string {
	return "Trains a bigram language model on the leading sentences of a corpus and\n" +
		"reports perplexity on the training sentences and on the held-out rest."
}

// model is a trainable sentence scorer.
type model interface {
	Train(corpus [][]string) error
	language.Scorer
}

func newModel(name string, opts ...language.Option) (model, error) {
	switch name {
	case "bidirectional":
		return language.NewBidirectional(opts...), nil
	case "forward", "backward":
		dir, err := language.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		return language.NewBigramModel(dir, opts...), nil
	}
	return nil, errors.Errorf("unknown model %q", name)
}

func main() {
	var a args
	arg.MustParse(&a)

	cfg, err := config.Load(a.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Stdout, a, cfg, logger); err != nil {
		logger.Fatal("bigram failed", zap.Error(err))
	}
}

func run(w io.Writer, a args, cfg *config.Config, logger *zap.Logger) error {
	if a.Format != "" {
		cfg.Corpus.Format = a.Format
	}
	if a.TestFrac != nil {
		cfg.Corpus.TestFraction = *a.TestFrac
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.CorpusOptions()
	if err != nil {
		return err
	}

	sentences, err := corpus.LoadFiles(a.Files, opts)
	if err != nil {
		return err
	}
	train, test, err := corpus.Split(sentences, cfg.Corpus.TestFraction)
	if err != nil {
		return err
	}
	logger.Info("loaded corpus",
		zap.Int("files", len(a.Files)),
		zap.Int("sentences", len(sentences)),
		zap.String("format", string(opts.Format)))

	fmt.Fprintf(w, "# Train Sentences = %d (# words = %d)\n", len(train), corpus.WordCount(train))
	fmt.Fprintf(w, "# Test Sentences = %d (# words = %d)\n", len(test), corpus.WordCount(test))

	m, err := newModel(a.Model,
		language.WithSmoother(cfg.Interpolation()),
		language.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Training...")
	if err := m.Train(train); err != nil {
		return err
	}
	if err := report(w, m, train); err != nil {
		return errors.Wrap(err, "evaluate training data")
	}

	fmt.Fprintln(w, "Testing...")
	if err := report(w, m, test); err != nil {
		return errors.Wrap(err, "evaluate test data")
	}
	return nil
}

func report(w io.Writer, s language.Scorer, sentences [][]string) error {
	res, err := language.Evaluate(s, sentences)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Perplexity = %g\n", res.Perplexity)
	fmt.Fprintf(w, "Word Perplexity = %g\n", res.WordPerplexity)
	return nil
}
