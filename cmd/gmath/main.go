package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/zeusync/gmath/internal/injector"
	"github.com/zeusync/gmath/internal/observability/log"
)

var version = "dev"

var CLI struct {
	Version kong.VersionFlag `help:"Print version information and exit." short:"v"`
	Debug   bool             `help:"Whether to enable debug logging."`

	Demo struct {
	} `cmd:"" help:"Walk through every vector operation on two sample points."`

	Run struct {
		Files []string `arg:"" name:"files" help:"YAML scenario files to evaluate." type:"existingfile"`
	} `cmd:"" help:"Evaluate scenario files and report failures."`

	Ops struct {
	} `cmd:"" help:"List the operations a scenario case may use."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("gmath"),
		kong.Description("generic 3D vector algebra"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	level := log.LevelWarn
	if CLI.Debug {
		level = log.LevelDebug
	}
	app := injector.InitializeApp(level)
	defer func() { _ = app.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch kctx.Command() {
	case "demo":
		err = demoCommand(ctx, os.Stdout, app.Runner)
	case "run <files>":
		err = runCommand(ctx, os.Stdout, app.Runner, CLI.Run.Files)
	case "ops":
		opsCommand(os.Stdout)
	default:
		err = fmt.Errorf("unknown command %q", kctx.Command())
	}
	if err != nil {
		stop()
		writeError(err)
	}
}
