package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gym-battle/internal/handlers/battle/v1alpha1"
)

var (
	moveIndex int
	teamIndex int
)

var getBattleCmd = &cobra.Command{
	Use:   "get-battle",
	Short: "Show a battle",
	RunE: func(_ *cobra.Command, _ []string) error {
		return battleAction(v1alpha1.BattleServiceGetBattleFullMethodName, nil)
	},
}

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Attack with one of the active Pokémon's moves",
	RunE: func(_ *cobra.Command, _ []string) error {
		return battleAction(v1alpha1.BattleServiceSubmitPlayerAttackFullMethodName, map[string]any{
			"move_index": moveIndex,
		})
	},
}

var defendCmd = &cobra.Command{
	Use:   "defend",
	Short: "Brace the active Pokémon against the next hit",
	RunE: func(_ *cobra.Command, _ []string) error {
		return battleAction(v1alpha1.BattleServiceSubmitPlayerDefendFullMethodName, nil)
	},
}

var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Send out another team member",
	RunE: func(_ *cobra.Command, _ []string) error {
		return battleAction(v1alpha1.BattleServiceSubmitPlayerSwitchFullMethodName, map[string]any{
			"team_index": teamIndex,
		})
	},
}

var aiTurnCmd = &cobra.Command{
	Use:   "ai-turn",
	Short: "Make the gym leader act now",
	RunE: func(_ *cobra.Command, _ []string) error {
		return battleAction(v1alpha1.BattleServiceRunAITurnFullMethodName, nil)
	},
}

var abandonCmd = &cobra.Command{
	Use:   "abandon",
	Short: "Abandon a battle",
	RunE: func(_ *cobra.Command, _ []string) error {
		if _, err := call(v1alpha1.BattleServiceAbandonBattleFullMethodName, map[string]any{
			"battle_id": battleID,
		}); err != nil {
			return fmt.Errorf("failed to abandon battle: %w", err)
		}
		fmt.Printf("Battle %s abandoned\n", battleID)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{getBattleCmd, attackCmd, defendCmd, switchCmd, aiTurnCmd, abandonCmd} {
		cmd.Flags().StringVar(&battleID, "battle-id", "", "Battle ID (required)")
		_ = cmd.MarkFlagRequired("battle-id") // nolint:errcheck // safe to ignore in init
	}

	attackCmd.Flags().IntVar(&moveIndex, "move", 0, "Index of the move to use")
	switchCmd.Flags().IntVar(&teamIndex, "to", 0, "Team index to switch to")
	_ = switchCmd.MarkFlagRequired("to") // nolint:errcheck // safe to ignore in init
}

func battleAction(method string, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["battle_id"] = battleID

	resp, err := call(method, fields)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return printBattle(resp)
}
