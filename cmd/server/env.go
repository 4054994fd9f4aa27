package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envFlags maps environment variables onto flags of the same meaning.
// Flags given on the command line win.
var envFlags = map[string]string{
	"port":         "GRPC_PORT",
	"http-port":    "HTTP_PORT",
	"pokeapi-url":  "POKEAPI_URL",
	"redis-addr":   "REDIS_ADDR",
	"redis-pass":   "REDIS_PASSWORD",
	"ai-delay":     "AI_DELAY",
	"log-level":    "LOG_LEVEL",
	"telemetry":    "TELEMETRY_ENABLED",
	"record-ttl":   "POKEAPI_RECORD_TTL",
	"battle-ttl":   "BATTLE_TTL",
	"move-pool":    "MOVE_POOL_SIZE",
	"fetch-limit":  "FETCH_CONCURRENCY",
	"http-timeout": "POKEAPI_TIMEOUT",
}

func applyEnv(cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		name, ok := envFlags[f.Name]
		if !ok {
			return
		}
		value, set := os.LookupEnv(name)
		if !set || value == "" {
			return
		}
		if setErr := cmd.Flags().Set(f.Name, value); setErr != nil {
			err = fmt.Errorf("invalid %s=%q: %w", name, value, setErr)
		}
	})
	return err
}
