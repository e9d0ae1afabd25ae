// Package config loads model, corpus and logging settings.
package config

import (
	"strings"

	"github.com/ieee0824/bigramlm/corpus"
	"github.com/ieee0824/bigramlm/language"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BIGRAM_MODEL_UNIGRAM_WEIGHT.
const EnvPrefix = "BIGRAM"

type Config struct {
	Model  ModelConfig  `mapstructure:"model"`
	Corpus CorpusConfig `mapstructure:"corpus"`
	Log    LogConfig    `mapstructure:"log"`
}

type ModelConfig struct {
	UnigramWeight float64 `mapstructure:"unigram_weight"`
	BigramWeight  float64 `mapstructure:"bigram_weight"`
}

type CorpusConfig struct {
	Format       string  `mapstructure:"format"`
	Lowercase    bool    `mapstructure:"lowercase"`
	Stem         bool    `mapstructure:"stem"`
	TestFraction float64 `mapstructure:"test_fraction"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Default returns the built-in settings.
func Default() *Config {
	ip := language.DefaultInterpolation()
	return &Config{
		Model: ModelConfig{
			UnigramWeight: ip.UnigramWeight,
			BigramWeight:  ip.BigramWeight,
		},
		Corpus: CorpusConfig{
			Format:       string(corpus.Tagged),
			TestFraction: 0.1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("model.unigram_weight", cfg.Model.UnigramWeight)
	v.SetDefault("model.bigram_weight", cfg.Model.BigramWeight)
	v.SetDefault("corpus.format", cfg.Corpus.Format)
	v.SetDefault("corpus.lowercase", cfg.Corpus.Lowercase)
	v.SetDefault("corpus.stem", cfg.Corpus.Stem)
	v.SetDefault("corpus.test_fraction", cfg.Corpus.TestFraction)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.development", cfg.Log.Development)
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Interpolation returns the configured smoothing weights.
func (c *Config) Interpolation() language.Interpolation {
	return language.Interpolation{
		UnigramWeight: c.Model.UnigramWeight,
		BigramWeight:  c.Model.BigramWeight,
	}
}

// CorpusOptions returns the loader settings.
func (c *Config) CorpusOptions() (corpus.Options, error) {
	f, err := corpus.ParseFormat(c.Corpus.Format)
	if err != nil {
		return corpus.Options{}, err
	}
	return corpus.Options{
		Format: f,
		Normalizer: corpus.Normalizer{
			Lowercase: c.Corpus.Lowercase,
			Stem:      c.Corpus.Stem,
		},
	}, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.Interpolation().Validate(); err != nil {
		return errors.Wrap(err, "model")
	}
	if _, err := corpus.ParseFormat(c.Corpus.Format); err != nil {
		return errors.Wrap(err, "corpus.format")
	}
	if c.Corpus.TestFraction < 0 || c.Corpus.TestFraction > 1 {
		return errors.Errorf("corpus.test_fraction %g not in [0, 1]", c.Corpus.TestFraction)
	}
	return nil
}
