package analysis

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// StandardTokenizer splits text on Unicode word boundaries (UAX #29).
// Segments without a letter or digit are skipped.
type StandardTokenizer struct{}

// NewStandardTokenizer creates a new StandardTokenizer.
func NewStandardTokenizer() *StandardTokenizer {
	return &StandardTokenizer{}
}

// Tokenize returns a stream over the word segments of text.
func (t *StandardTokenizer) Tokenize(text string) TokenStream {
	return &standardStream{rest: text, state: -1}
}

type standardStream struct {
	rest  string
	off   int
	state int
}

func (s *standardStream) Next() (Token, bool) {
	for len(s.rest) > 0 {
		var word string
		word, s.rest, s.state = uniseg.FirstWordInString(s.rest, s.state)
		start := s.off
		s.off += len(word)
		if !hasWordRune(word) {
			continue
		}
		return Token{
			Term:              word,
			Type:              TokenTypeWord,
			PositionIncrement: 1,
			StartByte:         start,
			EndByte:           s.off,
		}, true
	}
	return Token{}, false
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return true
		}
	}
	return false
}
