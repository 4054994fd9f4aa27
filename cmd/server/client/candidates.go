package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/handlers/battle/v1alpha1"
)

var (
	region   string
	typeName string
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List the Pokémon a player may pick",
	Long:  `List the species of a type available up to the region's generation.`,
	RunE:  runCandidates,
}

func init() {
	candidatesCmd.Flags().StringVar(&region, "region", "kanto", "Region")
	candidatesCmd.Flags().StringVar(&typeName, "type", "", "Gym type (required)")
	_ = candidatesCmd.MarkFlagRequired("type") // nolint:errcheck // safe to ignore in init
}

func runCandidates(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.BattleServiceListCandidatesFullMethodName, map[string]any{
		"region": region,
		"type":   typeName,
	})
	if err != nil {
		return fmt.Errorf("failed to list candidates: %w", err)
	}

	var candidates []entities.SpeciesRef
	if err := decode(resp, "candidates", &candidates); err != nil {
		return err
	}

	fmt.Printf("%d %s Pokémon in %s:\n", len(candidates), typeName, region)
	for _, c := range candidates {
		fmt.Printf("  %4d  %s\n", c.ID, c.Name)
	}
	return nil
}
