package analysis

// TokenTypeWord is the type tag tokenizers assign to ordinary tokens.
const TokenTypeWord = "word"

// Token represents a single token produced by an analysis chain.
type Token struct {
	Term string
	// Type tags the token's origin, e.g. "word" for lexical tokens or
	// "synonym" for tokens derived by the annotation filter.
	Type string
	// PositionIncrement is the distance from the previous token in the
	// stream. A value of 0 means the token occupies the same logical
	// position as the token before it.
	PositionIncrement int
	StartByte         int
	EndByte           int
}

// TokenStream produces tokens one at a time. The second return value is
// false once the stream is exhausted; subsequent calls keep returning false.
type TokenStream interface {
	Next() (Token, bool)
}

// Tokenizer turns input text into a TokenStream.
type Tokenizer interface {
	Tokenize(text string) TokenStream
}

// FilterFunc wraps a TokenStream with one filter stage.
type FilterFunc func(TokenStream) TokenStream

// Analyzer processes text into a stream of tokens.
// Implementations MUST be safe for reuse across documents.
type Analyzer interface {
	// Analyze tokenizes the input text and returns the full token sequence.
	Analyze(field string, text string) []Token
}

// Drain consumes ts until exhaustion and returns the collected tokens.
func Drain(ts TokenStream) []Token {
	var tokens []Token
	for {
		tok, ok := ts.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// NewSliceStream returns a TokenStream replaying the given tokens in order.
func NewSliceStream(tokens []Token) TokenStream {
	return &sliceStream{tokens: tokens}
}

type sliceStream struct {
	tokens []Token
	i      int
}

func (s *sliceStream) Next() (Token, bool) {
	if s.i >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[s.i]
	s.i++
	return tok, true
}
