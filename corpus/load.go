package corpus

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Format names an on-disk corpus layout.
type Format string

const (
	// Tagged is word/TAG text, see ReadTagged.
	Tagged Format = "tagged"
	// Plain is one whitespace-tokenized sentence per line, see ReadPlain.
	Plain Format = "plain"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Tagged, Plain:
		return f, nil
	}
	return "", errors.Errorf("unknown corpus format %q", s)
}

// Read parses r in format f.
func (f Format) Read(r io.Reader) ([][]string, error) {
	switch f {
	case Tagged:
		return ReadTagged(r)
	case Plain:
		return ReadPlain(r)
	}
	return nil, errors.Errorf("unknown corpus format %q", string(f))
}

// Options controls LoadFiles.
type Options struct {
	Format     Format
	Normalizer Normalizer
}

// LoadFiles reads every file in paths, descending into directories. Files
// inside a directory are read in lexical order (filepath.WalkDir order), so
// train/test splits are reproducible. Hidden entries are skipped.
func LoadFiles(paths []string, opts Options) ([][]string, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}
	var sentences [][]string
	for _, path := range files {
		s, err := loadFile(path, opts.Format)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, s...)
	}
	opts.Normalizer.Sentences(sentences)
	return sentences, nil
}

func loadFile(path string, format Format) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	s, err := format.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return s, nil
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", p)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != p && len(d.Name()) > 0 && d.Name()[0] == '.' {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %s", p)
		}
		files = append(files, found...)
	}
	return files, nil
}
