// Package config loads analyzer definitions from a YAML file and registers
// them with an analysis registry.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"annotext/internal/analysis"
)

// File is the top-level structure of an analyzer configuration file.
type File struct {
	Analyzers []AnalyzerDef `yaml:"analyzers"`
}

// AnalyzerDef declares one named analyzer as a tokenizer plus filter chain.
type AnalyzerDef struct {
	Name      string      `yaml:"name"`
	Tokenizer string      `yaml:"tokenizer"`
	Filters   []FilterDef `yaml:"filters"`
}

// FilterDef declares one filter stage of an analyzer.
type FilterDef struct {
	Type     string            `yaml:"type"`
	Settings map[string]string `yaml:"settings"`
}

// Load reads and parses the analyzer configuration at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return f, nil
}

// Parse decodes an analyzer configuration from YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	for i, def := range f.Analyzers {
		if def.Name == "" {
			return nil, fmt.Errorf("analyzer %d: name is required", i)
		}
		if def.Tokenizer == "" {
			return nil, fmt.Errorf("analyzer %q: tokenizer is required", def.Name)
		}
	}
	return &f, nil
}

// Build constructs every declared analyzer and registers it with reg.
func (f *File) Build(reg *analysis.Registry) error {
	for _, def := range f.Analyzers {
		chain, err := buildAnalyzer(def)
		if err != nil {
			return err
		}
		if err := reg.Register(def.Name, chain); err != nil {
			return err
		}
	}
	return nil
}

func buildAnalyzer(def AnalyzerDef) (*analysis.Chain, error) {
	tokenizer, err := buildTokenizer(def.Tokenizer)
	if err != nil {
		return nil, fmt.Errorf("analyzer %q: %w", def.Name, err)
	}

	filters := make([]analysis.FilterFunc, 0, len(def.Filters))
	for _, fd := range def.Filters {
		filter, err := buildFilter(def.Name, fd)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return analysis.NewChain(tokenizer, filters...), nil
}

func buildTokenizer(name string) (analysis.Tokenizer, error) {
	switch name {
	case "standard":
		return analysis.NewStandardTokenizer(), nil
	case "whitespace":
		return analysis.NewWhitespaceTokenizer(), nil
	case "keyword":
		return analysis.NewKeywordTokenizer(), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer: %q", name)
	}
}

func buildFilter(analyzer string, fd FilterDef) (analysis.FilterFunc, error) {
	switch fd.Type {
	case "annotation":
		cfg, err := analysis.ParseAnnotationSettings(analyzer, fd.Settings)
		if err != nil {
			return nil, err
		}
		return func(ts analysis.TokenStream) analysis.TokenStream {
			return analysis.NewAnnotationFilter(ts, cfg)
		}, nil
	case "lowercase":
		return analysis.NewLowercaseFilter, nil
	default:
		return nil, fmt.Errorf("analyzer %q: unknown filter type: %q", analyzer, fd.Type)
	}
}
