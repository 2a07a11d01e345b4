// Package pipeline runs the fixture generators in order and streams their
// records to a writer.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"time"

	"github.com/zarlcorp/zfixture/internal/airport"
	"github.com/zarlcorp/zfixture/internal/fixture"
	"github.com/zarlcorp/zfixture/internal/output"
)

// Default record counts for a full run.
const (
	DefaultUsers    = 50
	DefaultLayovers = 500
)

// Options configures a run. Zero values fall back to a crypto-seeded faker,
// time.Now, the comma format and slog.Default.
type Options struct {
	Users    int
	Layovers int
	Table    airport.Table
	Faker    fixture.Faker
	Now      func() time.Time
	Format   output.Format
	Logger   *slog.Logger
}

// Run writes opts.Users user records followed by opts.Layovers layover
// records. Each record is written as soon as it is built. An empty airport
// table fails after the users are written and before any layover is.
func Run(ctx context.Context, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	out := output.NewWriter(w, opts.Format)

	users := fixture.NewUserGenerator(opts.Faker)
	if err := drain(ctx, out, users.Generate(opts.Users)); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	opts.Logger.Debug("users written", "count", opts.Users)

	if opts.Layovers > 0 {
		layovers := fixture.NewLayoverGenerator(opts.Faker, fixture.WithClock(opts.Now))
		seq, err := layovers.Generate(opts.Layovers, opts.Table)
		if err != nil {
			return fmt.Errorf("layovers: %w", err)
		}
		if err := drain(ctx, out, seq); err != nil {
			return fmt.Errorf("layovers: %w", err)
		}
		opts.Logger.Debug("layovers written", "count", opts.Layovers, "airports", opts.Table.Len())
	}

	return out.Close()
}

// Users writes count user records.
func Users(ctx context.Context, w io.Writer, count int, opts Options) error {
	opts.Users, opts.Layovers = count, 0
	return Run(ctx, w, opts)
}

// Layovers writes count layover records.
func Layovers(ctx context.Context, w io.Writer, count int, opts Options) error {
	opts.Users, opts.Layovers = 0, count
	return Run(ctx, w, opts)
}

func drain[T any](ctx context.Context, out *output.Writer, seq iter.Seq[T]) error {
	for rec := range seq {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := out.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Faker == nil {
		o.Faker = fixture.NewFaker(0)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Format == "" {
		o.Format = output.FormatComma
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
