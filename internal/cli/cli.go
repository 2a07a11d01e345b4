// Package cli implements zfixture's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zfixture/internal/airport"
	"github.com/zarlcorp/zfixture/internal/config"
	"github.com/zarlcorp/zfixture/internal/fixture"
	"github.com/zarlcorp/zfixture/internal/output"
	"github.com/zarlcorp/zfixture/internal/pipeline"
)

// DataDir returns the default data directory for zfixture.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d + "/zfixture"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zfixture"
	}
	return home + "/.local/share/zfixture"
}

// Env is what every subcommand runs against.
type Env struct {
	Dir    string
	Config config.Config
	FS     zfilesystem.ReadWriteFileFS
	Stdout io.Writer
	Logger *slog.Logger
}

// NewEnv loads the config from dir. The directory is not created; a missing
// directory reads as an empty one.
func NewEnv(dir string, stdout io.Writer, logger *slog.Logger) (Env, error) {
	fsys := zfilesystem.NewOSFileSystem(dir)
	cfg, err := config.Load(fsys)
	if err != nil {
		return Env{}, err
	}
	return Env{Dir: dir, Config: cfg, FS: fsys, Stdout: stdout, Logger: logger}, nil
}

// PlainEnv is an Env that ignores config.json: built-in defaults, with the
// airport cache in dir still consulted.
func PlainEnv(dir string, stdout io.Writer, logger *slog.Logger) Env {
	return Env{
		Dir:    dir,
		Config: config.Default(),
		FS:     zfilesystem.NewOSFileSystem(dir),
		Stdout: stdout,
		Logger: logger,
	}
}

// Airports returns the cached airport table, or the bundled one.
func (e Env) Airports() (airport.Table, error) {
	return airport.Resolve(airport.NewCache(e.FS))
}

// Generate is the plain run: 50 users then 500 layovers, comma format.
// Counts and format are fixed; config only applies to subcommands.
func Generate(ctx context.Context, env Env) error {
	table, err := env.Airports()
	if err != nil {
		return err
	}

	return pipeline.Run(ctx, env.Stdout, pipeline.Options{
		Users:    pipeline.DefaultUsers,
		Layovers: pipeline.DefaultLayovers,
		Table:    table,
		Format:   output.FormatComma,
		Logger:   env.Logger,
	})
}

// Users writes user fixtures. Flags: --count N, --seed S, --format F.
func Users(ctx context.Context, env Env, args []string) error {
	opts, count, err := runOptions(env, args, env.Config.Users)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	return pipeline.Users(ctx, env.Stdout, count, opts)
}

// Layovers writes layover fixtures. Flags: --count N, --seed S, --format F.
func Layovers(ctx context.Context, env Env, args []string) error {
	opts, count, err := runOptions(env, args, env.Config.Layovers)
	if err != nil {
		return fmt.Errorf("layovers: %w", err)
	}

	opts.Table, err = env.Airports()
	if err != nil {
		return fmt.Errorf("layovers: %w", err)
	}

	return pipeline.Layovers(ctx, env.Stdout, count, opts)
}

// CmdUsers runs Users and exits on failure.
func CmdUsers(ctx context.Context, env Env, args []string) {
	exitOnErr(Users(ctx, env, args))
}

// CmdLayovers runs Layovers and exits on failure.
func CmdLayovers(ctx context.Context, env Env, args []string) {
	exitOnErr(Layovers(ctx, env, args))
}

func runOptions(env Env, args []string, defaultCount int) (pipeline.Options, int, error) {
	count, err := intFlag(args, "--count", defaultCount)
	if err != nil {
		return pipeline.Options{}, 0, err
	}
	if count < 0 {
		return pipeline.Options{}, 0, fmt.Errorf("--count must not be negative, got %d", count)
	}

	seed, err := intFlag(args, "--seed", 0)
	if err != nil {
		return pipeline.Options{}, 0, err
	}

	format := env.Config.OutputFormat()
	if v, ok := flagValue(args, "--format"); ok {
		if format, err = output.ParseFormat(v); err != nil {
			return pipeline.Options{}, 0, err
		}
	}

	return pipeline.Options{
		Faker:  fixture.NewFaker(int64(seed)),
		Format: format,
		Logger: env.Logger,
	}, count, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func exitOnErr(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "zfixture: %v\n", err)
	os.Exit(1)
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}

// flagValue returns the value following flag, or the part after "flag=".
func flagValue(args []string, flag string) (string, bool) {
	for i, a := range args {
		if strings.EqualFold(a, flag) {
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", true
		}
		if k, v, ok := strings.Cut(a, "="); ok && strings.EqualFold(k, flag) {
			return v, true
		}
	}
	return "", false
}

func intFlag(args []string, flag string, def int) (int, error) {
	v, ok := flagValue(args, flag)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", flag, v)
	}
	return n, nil
}

// positional returns args that are neither flags nor flag values.
func positional(args []string, valueFlags ...string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--") {
			for _, f := range valueFlags {
				if strings.EqualFold(a, f) {
					i++
					break
				}
			}
			continue
		}
		out = append(out, a)
	}
	return out
}
