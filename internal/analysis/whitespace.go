package analysis

import (
	"unicode"
	"unicode/utf8"
)

// WhitespaceTokenizer splits text on whitespace without any normalization.
type WhitespaceTokenizer struct{}

// NewWhitespaceTokenizer creates a new WhitespaceTokenizer.
func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

// Tokenize returns a stream over the whitespace-separated chunks of text.
func (t *WhitespaceTokenizer) Tokenize(text string) TokenStream {
	return &whitespaceStream{text: text}
}

type whitespaceStream struct {
	text string
	i    int
}

func (s *whitespaceStream) Next() (Token, bool) {
	// Skip whitespace.
	for s.i < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.i:])
		if !unicode.IsSpace(r) {
			break
		}
		s.i += size
	}
	if s.i >= len(s.text) {
		return Token{}, false
	}

	start := s.i
	for s.i < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.i:])
		if unicode.IsSpace(r) {
			break
		}
		s.i += size
	}

	return Token{
		Term:              s.text[start:s.i],
		Type:              TokenTypeWord,
		PositionIncrement: 1,
		StartByte:         start,
		EndByte:           s.i,
	}, true
}
