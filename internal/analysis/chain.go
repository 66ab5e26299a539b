package analysis

// Chain combines a tokenizer with zero or more filter stages into an
// Analyzer. A Chain holds no per-document state and is safe for concurrent
// use; every call to Stream builds fresh filter instances.
type Chain struct {
	tokenizer Tokenizer
	filters   []FilterFunc
}

// NewChain creates a Chain applying the given filters, in order, to the
// tokenizer's output.
func NewChain(tokenizer Tokenizer, filters ...FilterFunc) *Chain {
	return &Chain{tokenizer: tokenizer, filters: filters}
}

// Stream returns the token stream for text with all filter stages applied.
func (c *Chain) Stream(text string) TokenStream {
	ts := c.tokenizer.Tokenize(text)
	for _, f := range c.filters {
		ts = f(ts)
	}
	return ts
}

// Analyze drains the chain's stream for text into a token slice.
func (c *Chain) Analyze(_ string, text string) []Token {
	return Drain(c.Stream(text))
}
