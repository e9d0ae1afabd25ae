package language

import "fmt"

// Direction is the order in which a model consumes a sentence.
type Direction int

const (
	// Forward reads left to right and predicts each token from its left
	// neighbour.
	Forward Direction = iota
	// Backward reads right to left and predicts each token from its right
	// neighbour.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts "forward" or "backward" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// tokenAt returns the i-th token of sentence in traversal order.
func (d Direction) tokenAt(sentence []string, i int) string {
	if d == Backward {
		return sentence[len(sentence)-1-i]
	}
	return sentence[i]
}

// seedMarker is the boundary that precedes the first token read.
func (d Direction) seedMarker() symbol {
	if d == Backward {
		return symEnd
	}
	return symStart
}

// finalMarker is the boundary predicted after the last token read.
func (d Direction) finalMarker() symbol {
	if d == Backward {
		return symStart
	}
	return symEnd
}
