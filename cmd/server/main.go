// Package main is the entry point for the gym battle server
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gym-battle/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "gym-battle",
	Short: "Pokémon gym battle server",
	Long: `gym-battle fetches Pokémon from PokeAPI, assembles gym teams and runs
turn-based battles against an AI gym leader over gRPC.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// A missing .env is fine; flags and the process environment still apply
		_ = godotenv.Load()
		return applyEnv(cmd)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
