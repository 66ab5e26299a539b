package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize token output'"`

	Analyzer   string
	ConfigPath string

	Main *cli.Command
}

func (cfg *MainConfig) stringOpt(dst *string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		*dst = v
		return v, nil
	})
}

// colorize reports whether token output to w should be colored. The -color
// flag forces it on; otherwise it follows whether w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "a",
			Aliases:     []string{"analyzer"},
			Description: "analyzer to apply (default standard)",
			Type:        cli.NamedFuncOpt(cfg.stringOpt(&cfg.Analyzer), "(name)"),
		},
		{
			Name:        "config",
			Description: "path to analyzer config file",
			Type:        cli.NamedFuncOpt(cfg.stringOpt(&cfg.ConfigPath), "(filepath)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "annotext").
		WithSynopsis("annotext [opts] command [opts]").
		WithDescription("annotext analyzes text, expanding inline annotations into synonym tokens.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmt.Errorf("%w: expected a command", cli.ErrUsage)
		}).
		WithSubs(
			TokensCommand(cfg),
			AnalyzersCommand(cfg))
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [files]").
		WithDescription("tokenize files or stdin and print one token per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
	cfg.Tokens = cmd
	return cmd
}

func AnalyzersCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AnalyzersConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("analyzers").
		WithAliases("ls").
		WithSynopsis("analyzers").
		WithDescription("list available analyzers").
		WithRun(func(cc *cli.Context, args []string) error {
			return analyzers(cfg, cc, args)
		})
	cfg.Analyzers = cmd
	return cmd
}
