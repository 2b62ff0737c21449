package cli

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/ardnew/buildfile/cli/cmd"
	"github.com/ardnew/buildfile/pkg"
)

// CLI is the top-level command-line interface for buildfile.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Check   cmd.Check   `cmd:"" default:"withargs" help:"Parse a build file and report declaration counts."`
	Tokens  cmd.Tokens  `cmd:""                    help:"Print the token stream of a build file."`
	Dump    cmd.Dump    `cmd:""                    help:"Print the parsed declarations and variables."`
	Get     cmd.Get     `cmd:""                    help:"Print the value of a variable."`
	Init    cmd.Init    `cmd:""                    help:"Write a configuration file with the current flag values."`
	Version cmd.Version `cmd:""                    help:"Print version information."`
}

// Run executes the buildfile CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	if err := mkdirAllRequired(); err != nil {
		return err
	}

	env := cmd.Env{
		Fs:     afero.NewOsFs(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	return run(ctx, &env, exit, configPath(configFile), args...)
}

// run parses args and executes the selected command against env. Flag
// defaults are read from the JSON file at confPath when it exists.
func run(
	ctx context.Context,
	env *cmd.Env,
	exit func(code int),
	confPath string,
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		cmd.ConfigIdentifier: confPath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(env.Stdout, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, confPath),
		kong.Bind(env),
		kong.BindTo(ctx, (*context.Context)(nil)),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	defer cli.Log.start(ctx)()

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
