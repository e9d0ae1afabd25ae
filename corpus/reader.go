// Package corpus reads tokenized training and test sentences.
package corpus

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const maxLineSize = 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	return scanner
}

// ReadPlain reads one sentence per line with whitespace-separated tokens.
// Blank lines are skipped.
func ReadPlain(r io.Reader) ([][]string, error) {
	var sentences [][]string
	scanner := newScanner(r)
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) > 0 {
			sentences = append(sentences, words)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read plain corpus")
	}
	return sentences, nil
}

// ReadTagged reads Penn Treebank style part-of-speech tagged text, where
// every token is written word/TAG. The tags are dropped. A sentence ends at a
// token tagged "." or at a line of '=' characters. Chunk brackets and "*x*"
// header lines are ignored.
func ReadTagged(r io.Reader) ([][]string, error) {
	var sentences [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			sentences = append(sentences, current)
			current = nil
		}
	}

	scanner := newScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "*x*"):
			continue
		case strings.Trim(line, "=") == "":
			flush()
			continue
		}
		for _, field := range strings.Fields(line) {
			if field == "[" || field == "]" {
				continue
			}
			w, tag := splitTagged(field)
			if w == "" {
				continue
			}
			current = append(current, w)
			if tag == "." {
				flush()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read tagged corpus")
	}
	flush()
	return sentences, nil
}

// splitTagged splits "word/TAG" at the last unescaped slash and unescapes
// "\/" inside the word. A field without a tag is returned whole.
func splitTagged(field string) (string, string) {
	for i := len(field) - 1; i >= 0; i-- {
		if field[i] != '/' {
			continue
		}
		if i > 0 && field[i-1] == '\\' {
			continue
		}
		return strings.ReplaceAll(field[:i], `\/`, "/"), field[i+1:]
	}
	return strings.ReplaceAll(field, `\/`, "/"), ""
}

// WordCount returns the number of tokens in sentences.
func WordCount(sentences [][]string) int {
	n := 0
	for _, s := range sentences {
		n += len(s)
	}
	return n
}
