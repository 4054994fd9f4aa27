package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gym-battle/internal/handlers/battle/v1alpha1"
)

var (
	tier     int
	picks    []int
	battleID string
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Assemble both teams and start a battle",
	Long: `Start a gym battle with the picked species. Examples:

  prepare --region kanto --type electric --tier 1 --pick 25 --pick 100`,
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().StringVar(&region, "region", "kanto", "Region")
	prepareCmd.Flags().StringVar(&typeName, "type", "", "Gym type (required)")
	prepareCmd.Flags().IntVar(&tier, "tier", 1, "Gym tier (1-8)")
	prepareCmd.Flags().IntSliceVar(&picks, "pick", nil, "Species IDs for your team (required)")
	prepareCmd.Flags().StringVar(&battleID, "battle-id", "", "Replace the battle with this ID")
	_ = prepareCmd.MarkFlagRequired("type") // nolint:errcheck // safe to ignore in init
	_ = prepareCmd.MarkFlagRequired("pick") // nolint:errcheck // safe to ignore in init
}

func runPrepare(_ *cobra.Command, _ []string) error {
	ids := make([]any, len(picks))
	for i, id := range picks {
		ids[i] = id
	}

	fields := map[string]any{
		"region":             region,
		"type":               typeName,
		"tier":               tier,
		"player_species_ids": ids,
	}
	if battleID != "" {
		fields["battle_id"] = battleID
	}

	resp, err := call(v1alpha1.BattleServicePrepareBattleFullMethodName, fields)
	if err != nil {
		return fmt.Errorf("failed to prepare battle: %w", err)
	}

	var warnings []string
	if err := decode(resp, "warnings", &warnings); err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}

	return printBattle(resp)
}
