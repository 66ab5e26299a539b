package analysis

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidSettings is wrapped by all annotation setting errors.
var ErrInvalidSettings = errors.New("invalid annotation settings")

// SettingError reports a rejected annotation filter option. It carries the
// logical name of the analyzer being configured for diagnostics.
type SettingError struct {
	Analyzer string
	Option   string
	Value    string
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("analyzer %q has invalid settings: option %q (%q) is limited to be a single character",
		e.Analyzer, e.Option, e.Value)
}

func (e *SettingError) Unwrap() error { return ErrInvalidSettings }

// AnnotationConfig configures an AnnotationFilter. The zero value is not
// usable; start from DefaultAnnotationConfig or ParseAnnotationSettings.
// A config is immutable once handed to a filter and may be shared freely
// across filter instances.
type AnnotationConfig struct {
	// Start and End delimit the annotation region inside a term.
	Start rune
	End   rune
	// Delimiter separates multiple synonyms inside one region.
	Delimiter rune
	// Prefix and Suffix surround every emitted synonym term.
	Prefix string
	Suffix string
	// TokenType is the type tag assigned to emitted synonym tokens.
	TokenType string
}

// DefaultAnnotationConfig returns the documented defaults: a "[city;Austria]"
// region delimited by square brackets, synonyms separated by semicolons and
// emitted as "[city]" / "[Austria]" with type "synonym".
func DefaultAnnotationConfig() AnnotationConfig {
	return AnnotationConfig{
		Start:     '[',
		End:       ']',
		Delimiter: ';',
		Prefix:    "[",
		Suffix:    "]",
		TokenType: "synonym",
	}
}

// ParseAnnotationSettings builds an AnnotationConfig from string options.
// Recognized options are "start", "end", "delimiter" (exactly one character
// each), "prefix", "suffix" and "token-type" (any string). Unset options keep
// their defaults; unrecognized options are ignored. The analyzer name is only
// used in error messages.
func ParseAnnotationSettings(analyzer string, settings map[string]string) (AnnotationConfig, error) {
	cfg := DefaultAnnotationConfig()
	for option, value := range settings {
		switch option {
		case "start", "end", "delimiter":
			r, err := singleRune(analyzer, option, value)
			if err != nil {
				return AnnotationConfig{}, err
			}
			switch option {
			case "start":
				cfg.Start = r
			case "end":
				cfg.End = r
			case "delimiter":
				cfg.Delimiter = r
			}
		case "prefix":
			cfg.Prefix = value
		case "suffix":
			cfg.Suffix = value
		case "token-type":
			cfg.TokenType = value
		}
	}
	return cfg, nil
}

func singleRune(analyzer, option, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, &SettingError{Analyzer: analyzer, Option: option, Value: value}
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// AnnotationFilter expands inline annotations attached to a term. Characters
// between the Start and End delimiters are synonyms of the word located
// before the opening delimiter, e.g.
//
//	"W. A. Mozart[artist]"
//	"Salzburg[city;Austria]"
//
// The base token is emitted with the region stripped, followed by one token
// per synonym at position increment 0. Synonyms are replayed from a stack,
// so multiple synonyms come out in reverse encounter order.
type AnnotationFilter struct {
	input TokenStream
	cfg   AnnotationConfig

	// pending holds synonyms awaiting emission, popped from the tail.
	pending []string
	// anchor snapshots the base token's attributes; only meaningful
	// while pending is non-empty.
	anchor Token
}

// NewAnnotationFilter wraps input with annotation expansion using cfg.
func NewAnnotationFilter(input TokenStream, cfg AnnotationConfig) *AnnotationFilter {
	return &AnnotationFilter{input: input, cfg: cfg}
}

// Next returns the next output token. Pending synonyms are drained before
// the upstream stream is pulled again.
func (f *AnnotationFilter) Next() (Token, bool) {
	if n := len(f.pending); n > 0 {
		syn := f.pending[n-1]
		f.pending = f.pending[:n-1]
		tok := f.anchor
		tok.Term = f.cfg.Prefix + syn + f.cfg.Suffix
		tok.Type = f.cfg.TokenType
		tok.PositionIncrement = 0
		return tok, true
	}

	tok, ok := f.input.Next()
	if !ok {
		return Token{}, false
	}

	prefix, synonyms, found := f.cfg.split(tok.Term)
	if !found {
		return tok, true
	}
	tok.Term = prefix
	if len(synonyms) > 0 {
		f.pending = append(f.pending, synonyms...)
		f.anchor = tok
	}
	return tok, true
}

// split scans term for an annotation region. Only the first occurrence of
// the start delimiter is considered; the region ends at the first end
// delimiter after it. found reports whether a region was located, prefix is
// the text preceding the start delimiter and synonyms holds the trimmed
// segments in encounter order. An empty region ("word[]") is found but
// yields no synonyms. split never fails: malformed input means no region.
func (cfg AnnotationConfig) split(term string) (prefix string, synonyms []string, found bool) {
	i := strings.IndexRune(term, cfg.Start)
	if i < 0 {
		return term, nil, false
	}
	rest := term[i+utf8.RuneLen(cfg.Start):]
	j := strings.IndexRune(rest, cfg.End)
	if j < 0 {
		return term, nil, false
	}

	payload := rest[:j]
	if payload == "" {
		return term[:i], nil, true
	}

	parts := strings.Split(payload, string(cfg.Delimiter))
	// A trailing delimiter ("city;Austria;") produces an empty final
	// segment; drop it. Interior empty segments are kept.
	if n := len(parts); parts[n-1] == "" {
		parts = parts[:n-1]
	}
	synonyms = make([]string, len(parts))
	for k, p := range parts {
		synonyms[k] = strings.TrimSpace(p)
	}
	return term[:i], synonyms, true
}
