package analysis

import (
	"testing"
)

func TestStandardAnalyzer(t *testing.T) {
	a := NewChain(NewStandardTokenizer(), NewLowercaseFilter)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "The Quick Brown Fox", []string{"the", "quick", "brown", "fox"}},
		{"empty", "", nil},
		{"punctuation", "hello, world! foo-bar", []string{"hello", "world", "foo", "bar"}},
		{"numbers", "test123 456abc", []string{"test123", "456abc"}},
		{"unicode", "café résumé", []string{"café", "résumé"}},
		{"mixed whitespace", "  hello   world  ", []string{"hello", "world"}},
		{"single word", "hello", []string{"hello"}},
		{"uppercase", "HELLO WORLD", []string{"hello", "world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := a.Analyze("field", tt.input)
			got := tokenTerms(tokens)
			if !stringSliceEqual(got, tt.want) {
				t.Errorf("Analyze(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStandardTokenizer_ByteOffsets(t *testing.T) {
	tok := NewStandardTokenizer()
	input := "hello world"
	tokens := Drain(tok.Tokenize(input))

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].StartByte != 0 || tokens[0].EndByte != 5 {
		t.Errorf("token 0 offsets = (%d, %d), want (0, 5)", tokens[0].StartByte, tokens[0].EndByte)
	}
	if tokens[1].StartByte != 6 || tokens[1].EndByte != 11 {
		t.Errorf("token 1 offsets = (%d, %d), want (6, 11)", tokens[1].StartByte, tokens[1].EndByte)
	}
}

func TestWhitespaceTokenizer(t *testing.T) {
	tok := NewWhitespaceTokenizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "The Quick Brown Fox", []string{"The", "Quick", "Brown", "Fox"}},
		{"empty", "", nil},
		{"preserves case", "Hello WORLD", []string{"Hello", "WORLD"}},
		{"preserves punctuation", "hello, world!", []string{"hello,", "world!"}},
		{"multiple spaces", "  hello   world  ", []string{"hello", "world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Drain(tok.Tokenize(tt.input))
			got := tokenTerms(tokens)
			if !stringSliceEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWhitespaceTokenizer_Offsets(t *testing.T) {
	tok := NewWhitespaceTokenizer()
	input := "  Mozart[artist]  Salzburg "
	tokens := Drain(tok.Tokenize(input))

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	for _, tk := range tokens {
		if input[tk.StartByte:tk.EndByte] != tk.Term {
			t.Errorf("offsets (%d, %d) do not cover term %q", tk.StartByte, tk.EndByte, tk.Term)
		}
	}
}

func TestKeywordTokenizer(t *testing.T) {
	tok := NewKeywordTokenizer()

	tokens := Drain(tok.Tokenize("exact-match value"))
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Term != "exact-match value" {
		t.Errorf("Term = %q, want %q", tokens[0].Term, "exact-match value")
	}
	if tokens[0].StartByte != 0 || tokens[0].EndByte != len("exact-match value") {
		t.Errorf("offsets = (%d, %d)", tokens[0].StartByte, tokens[0].EndByte)
	}

	if got := Drain(tok.Tokenize("")); got != nil {
		t.Errorf("Tokenize(\"\") = %v, want nil", got)
	}
}

func TestTokenizer_PositionIncrements(t *testing.T) {
	tok := NewStandardTokenizer()
	tokens := Drain(tok.Tokenize("The Quick Brown Fox"))

	for _, tk := range tokens {
		if tk.PositionIncrement != 1 {
			t.Errorf("token %q position increment = %d, want 1", tk.Term, tk.PositionIncrement)
		}
		if tk.Type != TokenTypeWord {
			t.Errorf("token %q type = %q, want %q", tk.Term, tk.Type, TokenTypeWord)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"standard", "whitespace", "keyword"} {
		if _, err := r.Get(name); err != nil {
			t.Errorf("Get(%q) returned error: %v", name, err)
		}
	}

	if _, err := r.Get("nope"); err == nil {
		t.Error("Get of unknown analyzer did not fail")
	}

	custom := NewChain(NewWhitespaceTokenizer())
	if err := r.Register("custom", custom); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register("custom", custom); err == nil {
		t.Error("duplicate Register did not fail")
	}
	if len(r.Names()) != 4 {
		t.Errorf("Names() = %v, want 4 entries", r.Names())
	}
}

func tokenTerms(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, len(tokens))
	for i, tok := range tokens {
		terms[i] = tok.Term
	}
	return terms
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
