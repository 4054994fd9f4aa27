// Package client provides commands that drive a running battle server over gRPC
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/gym-battle/internal/render"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the battle server",
	Long:  `Client commands prepare and play battles by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(candidatesCmd)
	ClientCmd.AddCommand(prepareCmd)
	ClientCmd.AddCommand(getBattleCmd)
	ClientCmd.AddCommand(attackCmd)
	ClientCmd.AddCommand(defendCmd)
	ClientCmd.AddCommand(switchCmd)
	ClientCmd.AddCommand(aiTurnCmd)
	ClientCmd.AddCommand(abandonCmd)
}

// call sends one request and returns the response struct
func call(method string, fields map[string]any) (*structpb.Struct, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return v1alpha1.NewBattleServiceClient(conn).Call(ctx, method, req)
}

func decode(resp *structpb.Struct, field string, dest any) error {
	value, ok := resp.GetFields()[field]
	if !ok {
		return fmt.Errorf("response has no %s", field)
	}
	data, err := json.Marshal(value.AsInterface())
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", field, err)
	}
	return json.Unmarshal(data, dest)
}

func printBattle(resp *structpb.Struct) error {
	var state entities.BattleState
	if err := decode(resp, "battle", &state); err != nil {
		return err
	}

	fmt.Printf("Battle %s\n\n", state.ID)
	printTeam("Your team", &state, entities.SidePlayer)
	printTeam("Gym leader", &state, entities.SideAI)

	if len(state.Log) > 0 {
		fmt.Printf("\nLog:\n")
		for _, line := range state.Log {
			fmt.Printf("  %s\n", line)
		}
	}

	fmt.Printf("\n%s\n", render.StatusLine(&state))
	return nil
}

func printTeam(title string, state *entities.BattleState, side entities.Side) {
	fmt.Printf("%s:\n", title)
	active := state.ActiveIndex(side)
	for i, p := range state.Team(side) {
		marker := " "
		if i == active {
			marker = "*"
		}
		fmt.Printf(" %s [%d] %s %d/%d %v\n", marker, i, p.DisplayName(), p.HP, p.MaxHP, p.Types)
		if side == entities.SidePlayer && i == active {
			for j, m := range p.Moves {
				fmt.Printf("       move %d: %s (%s)\n", j, m.DisplayName(), m.Type)
			}
		}
	}
}
