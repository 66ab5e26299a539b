package analysis

import "strings"

// NewLowercaseFilter wraps input so that every term is lowercased.
func NewLowercaseFilter(input TokenStream) TokenStream {
	return &lowercaseStream{input: input}
}

type lowercaseStream struct {
	input TokenStream
}

func (s *lowercaseStream) Next() (Token, bool) {
	tok, ok := s.input.Next()
	if !ok {
		return Token{}, false
	}
	tok.Term = strings.ToLower(tok.Term)
	return tok, true
}
