package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	redisclient "github.com/KirkDiggler/gym-battle/internal/redis"
)

// problem reports why a stored battle snapshot cannot be resumed, or ""
func problem(state *entities.BattleState) string {
	switch {
	case state.ID == "":
		return "missing battle id"
	case len(state.PlayerTeam) == 0 || len(state.AITeam) == 0:
		return "empty team"
	case state.IsOver():
		return "finished battle"
	case state.Phase != entities.PhasePlayer && state.Phase != entities.PhaseAI:
		return fmt.Sprintf("unknown phase %q", state.Phase)
	case state.ActivePlayer < 0 || state.ActivePlayer >= len(state.PlayerTeam):
		return "player active index out of range"
	case state.ActiveAI < 0 || state.ActiveAI >= len(state.AITeam):
		return "ai active index out of range"
	}

	for _, p := range append(append([]*entities.BattlePokemon{}, state.PlayerTeam...), state.AITeam...) {
		if p == nil {
			return "nil team member"
		}
		if p.HP < 0 || p.HP > p.MaxHP {
			return fmt.Sprintf("%s has hp %d/%d", p.ID, p.HP, p.MaxHP)
		}
	}
	return ""
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redisclient.NewClient(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning battle snapshots...")

	iter := client.Scan(ctx, 0, "battle:*", 0).Iterator()

	var staleKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var state entities.BattleState
		if err := json.Unmarshal(data, &state); err != nil {
			fmt.Printf("✗ Unreadable snapshot in %s\n", key)
			staleKeys = append(staleKeys, key)
			continue
		}

		if reason := problem(&state); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			staleKeys = append(staleKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d that cannot be resumed\n", checkedCount, len(staleKeys))

	if len(staleKeys) == 0 {
		return
	}

	fmt.Print("\nDelete these snapshots? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range staleKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
}
