package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/ir"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: snbt/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: snbt/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nbtc").
		WithSynopsis("nbtc [opts] command [opts]").
		WithDescription("nbtc evaluates item data templates and works with tagged trees.\n\nThe i/o format is snbt unless -s, -j, -y or NBTC_FORMAT says otherwise. Files\nare read in the format of their extension when no format is given.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtcMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			CompileCommand(cfg),
			CraftCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			MatchCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Refs: map[string]*ir.Node{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "r",
			Description: "set a reference or a path in one, the value is snbt or yaml",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(refOptFunc(cfg.Refs)), "(name.path=val)"),
		},
		&cli.Opt{
			Name:        "R",
			Description: "set a reference from a file",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(refFileOptFunc(cfg.MainConfig, cfg.Refs)), "(name=file)"),
		})

	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-r name=val]... [-R name=file]... [templates]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

const evalDescription = `eval compiles templates and instantiates them with references.

Expressions in template strings:

  $base.display.Name          a reference and a path in it
  $base.Damage ?? 0s          a fallback used when the path is missing
  $base.Count as byte         a cast
  $[base.Count * 2]           a computed expression
  "Level $[base.lvl]"         interpolation
  {"$": "$base", ...}         merge a compound into the enclosing one
  $$                          a literal $

References are set with -r, for example -r base='{Count:3}' or
-r base.display.Name=Wand, or read from files with -R base=item.snbt.`

func CompileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompileConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Compile, "compile").
		WithAliases("c").
		WithSynopsis("compile [-t] [templates]").
		WithDescription("list the expressions of templates").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compile(cfg, cc, args)
		})
}

func CraftCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CraftConfig{MainConfig: mainCfg, Inputs: map[string]*ir.Node{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "i",
		Description: "set an input stack {id:..., count:..., data:{...}}",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(refOptFunc(cfg.Inputs)), "(name=stack)"),
	})
	return cli.NewCommandAt(&cfg.Craft, "craft").
		WithSynopsis("craft [-id recipe] -i name=stack... recipes").
		WithDescription("craft an output stack from input stacks with a recipe file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return craft(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view or convert tree files").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the node at a path such as display.Lore[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg, Mode: "contains"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <pattern> [files]").
		WithDescription("print the documents a pattern matches").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithSynopsis("merge [-r] <target> <additions>...").
		WithDescription("merge addition files into a target file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("line diff of two tree files; exits 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <json-patch> <file>").
		WithDescription("apply an RFC 6902 JSON patch to a tree file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
