package corpus

import (
	"strings"

	porterstemmer "github.com/reiver/go-porterstemmer"
	"golang.org/x/text/unicode/norm"
)

// Normalizer rewrites tokens before they reach a model. The zero value only
// applies Unicode NFC normalization.
type Normalizer struct {
	Lowercase bool
	Stem      bool
}

// Token returns the normalized form of tok.
func (n Normalizer) Token(tok string) string {
	tok = norm.NFC.String(tok)
	if n.Lowercase {
		tok = strings.ToLower(tok)
	}
	if n.Stem {
		tok = porterstemmer.StemString(tok)
	}
	return tok
}

// Sentences normalizes every token in place and drops tokens that become
// empty. Sentences left without tokens are kept.
func (n Normalizer) Sentences(sentences [][]string) {
	for i, s := range sentences {
		out := s[:0]
		for _, tok := range s {
			if tok = n.Token(tok); tok != "" {
				out = append(out, tok)
			}
		}
		sentences[i] = out
	}
}
