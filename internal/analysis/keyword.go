package analysis

// KeywordTokenizer passes the entire input as a single token.
type KeywordTokenizer struct{}

// NewKeywordTokenizer creates a new KeywordTokenizer.
func NewKeywordTokenizer() *KeywordTokenizer {
	return &KeywordTokenizer{}
}

// Tokenize returns a stream holding the whole input as one token.
func (t *KeywordTokenizer) Tokenize(text string) TokenStream {
	if text == "" {
		return NewSliceStream(nil)
	}
	return NewSliceStream([]Token{
		{
			Term:              text,
			Type:              TokenTypeWord,
			PositionIncrement: 1,
			StartByte:         0,
			EndByte:           len(text),
		},
	})
}
