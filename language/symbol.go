package language

// Reserved marker spellings, used when printing symbols.
const (
	SentenceStart = "<S>"
	SentenceEnd   = "</S>"
	Unknown       = "<UNK>"
)

type markerKind uint8

const (
	word markerKind = iota
	startMarker
	endMarker
	unknownMarker
)

// symbol is a vocabulary key. Markers live in their own key space, so a
// corpus token spelled "<S>" is an ordinary word.
type symbol struct {
	kind markerKind
	text string
}

var (
	symStart   = symbol{kind: startMarker}
	symEnd     = symbol{kind: endMarker}
	symUnknown = symbol{kind: unknownMarker}
)

func wordSymbol(tok string) symbol {
	return symbol{kind: word, text: tok}
}

func (s symbol) String() string {
	switch s.kind {
	case startMarker:
		return SentenceStart
	case endMarker:
		return SentenceEnd
	case unknownMarker:
		return Unknown
	}
	return s.text
}

// bigramKey is the composite key of the ordered pair (prev, cur).
type bigramKey [2]symbol

func makeBigramKey(prev, cur symbol) bigramKey {
	return bigramKey{prev, cur}
}
