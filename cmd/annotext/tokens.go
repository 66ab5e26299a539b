package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"annotext/internal/analysis"
	"annotext/internal/config"
)

type TokensConfig struct {
	*MainConfig
	Tokens *cli.Command
}

type AnalyzersConfig struct {
	*MainConfig
	Analyzers *cli.Command
}

func (cfg *MainConfig) registry() (*analysis.Registry, error) {
	reg := analysis.NewRegistry()
	if cfg.ConfigPath == "" {
		return reg, nil
	}
	f, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := f.Build(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (cfg *MainConfig) analyzer() (analysis.Analyzer, error) {
	reg, err := cfg.registry()
	if err != nil {
		return nil, err
	}
	name := cfg.Analyzer
	if name == "" {
		name = "standard"
	}
	return reg.Get(name)
}

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		cfg.Tokens.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	a, err := cfg.analyzer()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return tokensReader(cfg, a, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := tokensFile(cfg, a, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func tokensFile(cfg *TokensConfig, a analysis.Analyzer, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := tokensReader(cfg, a, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func tokensReader(cfg *TokensConfig, a analysis.Analyzer, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}

	colorize := cfg.colorize(w)
	for _, tok := range a.Analyze("", string(in)) {
		term := tok.Term
		if colorize && tok.PositionIncrement == 0 {
			term = color.CyanString("%s", term)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d:%d\n",
			term, tok.Type, tok.PositionIncrement, tok.StartByte, tok.EndByte); err != nil {
			return err
		}
	}
	return nil
}

func analyzers(cfg *AnalyzersConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Analyzers.Parse(cc, args); err != nil {
		cfg.Analyzers.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	names := reg.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(cc.Out, name)
	}
	return nil
}
