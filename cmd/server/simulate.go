package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gym-battle/internal/engine"
	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/gym"
	"github.com/KirkDiggler/gym-battle/internal/render"
)

// maxSimulatedTurns stops a simulation that cannot finish, such as two
// Pokémon whose moves have no effect on each other
const maxSimulatedTurns = 200

var (
	simRegion string
	simType   string
	simTier   int
	simPicks  []int
	simFlags  appFlags
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a gym battle in the terminal",
	Long: `Assemble a gym battle from PokeAPI and play it out without a client.
The player's side picks its strongest move each turn and the battle log is
printed as it happens.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simRegion, "region", "kanto", "Region, which bounds the species generation")
	simulateCmd.Flags().StringVar(&simType, "type", "electric", "Gym type")
	simulateCmd.Flags().IntVar(&simTier, "tier", 1, "Gym tier (1-8)")
	simulateCmd.Flags().IntSliceVar(&simPicks, "pick", nil, "Species IDs for the player's team; defaults to the first candidates")
	simFlags.register(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(simFlags.logLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	a, err := buildApp(ctx, &simFlags, &appOptions{
		renderer:   render.NewTextRenderer(out, true),
		registerer: prometheus.NewRegistry(),
		logger:     logger,
	})
	if err != nil {
		return err
	}
	defer a.close()

	picks := simPicks
	if len(picks) == 0 {
		picks, err = defaultPicks(ctx, a.gym)
		if err != nil {
			return err
		}
	}

	prepared, err := a.gym.PrepareBattle(ctx, &gym.PrepareBattleInput{
		Config: entities.GymConfig{
			Region: simRegion,
			Type:   simType,
			Tier:   simTier,
		},
		PlayerSpeciesIDs: picks,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare battle: %w", err)
	}
	for _, warning := range prepared.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}

	state := prepared.Battle
	for turns := 0; !state.IsOver(); turns++ {
		if turns >= maxSimulatedTurns {
			if _, err := a.battles.AbandonBattle(ctx, &battle.AbandonBattleInput{BattleID: state.ID}); err != nil {
				return fmt.Errorf("failed to abandon battle: %w", err)
			}
			fmt.Fprintf(out, "no winner after %d turns\n", maxSimulatedTurns)
			return nil
		}

		state, err = step(ctx, a.battles, state)
		if err != nil {
			return err
		}
	}
	return nil
}

// step advances the battle by one action of whichever side is to act
func step(ctx context.Context, svc battle.Service, state *entities.BattleState) (*entities.BattleState, error) {
	if state.Phase == entities.PhaseAI {
		out, err := svc.RunAITurn(ctx, &battle.RunAITurnInput{BattleID: state.ID})
		if err != nil {
			return nil, fmt.Errorf("AI turn failed: %w", err)
		}
		return out.Battle, nil
	}

	attacker := state.Active(entities.SidePlayer)
	defender := state.Active(entities.SideAI)
	index := engine.SelectAIMove(attacker.Moves, defender.Types, state.TypeChart)
	if index < 0 {
		out, err := svc.SubmitPlayerDefend(ctx, &battle.SubmitPlayerDefendInput{BattleID: state.ID})
		if err != nil {
			return nil, fmt.Errorf("defend failed: %w", err)
		}
		return out.Battle, nil
	}

	out, err := svc.SubmitPlayerAttack(ctx, &battle.SubmitPlayerAttackInput{
		BattleID:  state.ID,
		MoveIndex: index,
	})
	if err != nil {
		return nil, fmt.Errorf("attack failed: %w", err)
	}
	return out.Battle, nil
}

func defaultPicks(ctx context.Context, svc gym.Service) ([]int, error) {
	size, err := svc.TeamSize(ctx, &gym.TeamSizeInput{Tier: simTier})
	if err != nil {
		return nil, err
	}
	listed, err := svc.ListCandidates(ctx, &gym.ListCandidatesInput{Region: simRegion, Type: simType})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	if len(listed.Candidates) == 0 {
		return nil, fmt.Errorf("no %s Pokémon in %s", simType, simRegion)
	}

	picks := make([]int, 0, size.Size)
	for _, ref := range listed.Candidates {
		if len(picks) == size.Size {
			break
		}
		picks = append(picks, ref.ID)
	}
	return picks, nil
}
