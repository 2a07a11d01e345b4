package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zfixture/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zfixture"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	args, verbose := stripVerbose(os.Args[1:])

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if verbose {
		level.Set(slog.LevelDebug)
	}

	if len(args) > 0 {
		env, err := cli.NewEnv(cli.DataDir(), os.Stdout, logger)
		if err != nil {
			slog.Error("config", "err", err)
			_ = app.Close()
			os.Exit(1)
		}
		if !verbose {
			level.Set(env.Config.Level())
		}

		runCLI(ctx, env, args[0], args[1:])
		_ = app.Close()
		return
	}

	// the plain run takes no settings from config.json
	env := cli.PlainEnv(cli.DataDir(), os.Stdout, logger)
	if err := cli.Generate(ctx, env); err != nil {
		slog.Error("generate", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(ctx context.Context, env cli.Env, cmd string, args []string) {
	switch cmd {
	case "version":
		fmt.Printf("zfixture %s\n", version)
	case "users":
		cli.CmdUsers(ctx, env, args)
	case "layovers":
		cli.CmdLayovers(ctx, env, args)
	case "airports":
		cli.CmdAirports(ctx, env, args)
	case "config":
		cli.CmdConfig(env, args)
	case "preview":
		cli.CmdPreview(env, version, args)
	default:
		fmt.Fprintf(os.Stderr, "zfixture: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

// stripVerbose removes -v/--verbose wherever it appears.
func stripVerbose(args []string) ([]string, bool) {
	n := len(args)
	args = slices.DeleteFunc(slices.Clone(args), func(a string) bool {
		return a == "-v" || a == "--verbose"
	})
	return args, len(args) != n
}
