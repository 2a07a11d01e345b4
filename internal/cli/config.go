package cli

import (
	"fmt"
	"os"

	"github.com/zarlcorp/zfixture/internal/config"
)

// Config runs a config subcommand:
//
//	config        print the effective settings as JSON
//	config init   write the defaults to config.json in the data dir
func Config(env Env, args []string) error {
	pos := positional(args)
	if len(pos) == 0 {
		return printJSON(env.Stdout, env.Config)
	}

	switch pos[0] {
	case "init":
		if env.Dir != "" {
			if err := os.MkdirAll(env.Dir, 0o700); err != nil {
				return fmt.Errorf("config init: create data dir: %w", err)
			}
		}
		if err := config.Save(env.FS, config.Default()); err != nil {
			return fmt.Errorf("config init: %w", err)
		}
		fmt.Fprintf(env.Stdout, "wrote %s/config.json\n", env.Dir)
		return nil
	default:
		return fmt.Errorf("config: unknown subcommand %q", pos[0])
	}
}

// CmdConfig runs Config and exits on failure.
func CmdConfig(env Env, args []string) {
	exitOnErr(Config(env, args))
}
