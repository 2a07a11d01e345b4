package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/zarlcorp/zfixture/internal/airport"
)

const defaultAirportLimit = 10

// Airports runs an airports subcommand:
//
//	airports [list]            every code in the active table
//	airports search <query>    match name, code or city
//	airports near <lat> <lon>  closest by great-circle distance
//	airports refresh           download the public dataset into the cache
//
// list, search and near accept --json and --limit N.
func Airports(ctx context.Context, env Env, args []string) error {
	pos := positional(args, "--limit")
	sub := "list"
	if len(pos) > 0 {
		sub, pos = pos[0], pos[1:]
	}

	if sub == "refresh" {
		return refreshAirports(ctx, env)
	}

	table, err := env.Airports()
	if err != nil {
		return fmt.Errorf("airports: %w", err)
	}

	limit, err := intFlag(args, "--limit", defaultAirportLimit)
	if err != nil {
		return fmt.Errorf("airports: %w", err)
	}

	var result []airport.Airport
	switch sub {
	case "list":
		result = table.Airports()
		if _, set := flagValue(args, "--limit"); set && limit > 0 && len(result) > limit {
			result = result[:limit]
		}
	case "search":
		if len(pos) != 1 {
			return fmt.Errorf("usage: zfixture airports search <query>")
		}
		result = table.Search(pos[0], limit)
	case "near":
		if len(pos) != 2 {
			return fmt.Errorf("usage: zfixture airports near <lat> <lon>")
		}
		lat, err := strconv.ParseFloat(pos[0], 64)
		if err != nil {
			return fmt.Errorf("airports near: invalid latitude %q", pos[0])
		}
		lon, err := strconv.ParseFloat(pos[1], 64)
		if err != nil {
			return fmt.Errorf("airports near: invalid longitude %q", pos[1])
		}
		result = table.Nearest(lat, lon, limit)
	default:
		return fmt.Errorf("airports: unknown subcommand %q", sub)
	}

	if hasFlag(args, "--json") {
		if result == nil {
			result = []airport.Airport{}
		}
		return printJSON(env.Stdout, result)
	}

	if len(result) == 0 {
		fmt.Fprintln(env.Stdout, "no airports")
		return nil
	}
	for _, a := range result {
		fmt.Fprintf(env.Stdout, "  %-4s %-45s %-20s %s\n", a.Code, a.Name, a.City, a.Country)
	}
	return nil
}

// CmdAirports runs Airports and exits on failure.
func CmdAirports(ctx context.Context, env Env, args []string) {
	exitOnErr(Airports(ctx, env, args))
}

func refreshAirports(ctx context.Context, env Env) error {
	if env.Dir != "" {
		if err := os.MkdirAll(env.Dir, 0o700); err != nil {
			return fmt.Errorf("airports refresh: create data dir: %w", err)
		}
	}

	table, raw, err := airport.NewClient(env.Config.AirportsURL).Fetch(ctx)
	if err != nil {
		return fmt.Errorf("airports refresh: %w", err)
	}

	if err := airport.NewCache(env.FS).Store(raw); err != nil {
		return fmt.Errorf("airports refresh: %w", err)
	}

	env.Logger.Info("airports cached", "count", table.Len())
	fmt.Fprintf(env.Stdout, "cached %d airports\n", table.Len())
	return nil
}
