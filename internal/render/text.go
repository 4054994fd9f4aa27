package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/KirkDiggler/gym-battle/internal/entities"
)

// TextRenderer narrates battles as plain text. Only log lines added since
// the previous render of the same battle are written.
type TextRenderer struct {
	mu      sync.Mutex
	out     io.Writer
	printed map[string]int
	status  bool
}

// NewTextRenderer writes narration to out. With status set, a one-line
// summary of both active Pokémon follows each batch.
func NewTextRenderer(out io.Writer, status bool) *TextRenderer {
	return &TextRenderer{
		out:     out,
		printed: make(map[string]int),
		status:  status,
	}
}

// Render writes the unseen log lines of state
func (t *TextRenderer) Render(_ context.Context, state *entities.BattleState) error {
	if state == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	seen := t.printed[state.ID]
	if seen > len(state.Log) {
		seen = 0
	}

	var b strings.Builder
	for _, line := range state.Log[seen:] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	t.printed[state.ID] = len(state.Log)

	if t.status {
		b.WriteString(StatusLine(state))
		b.WriteByte('\n')
	}

	if state.IsOver() {
		delete(t.printed, state.ID)
	}

	if b.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(t.out, b.String())
	return err
}

// Forget discards the narration progress of a battle
func (t *TextRenderer) Forget(_ context.Context, battleID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.printed, battleID)
	return nil
}

// StatusLine summarizes the turn and both active Pokémon
func StatusLine(state *entities.BattleState) string {
	if state.IsOver() {
		return fmt.Sprintf("[turn %d] battle over, winner: %s", state.Turn, state.Winner)
	}
	return fmt.Sprintf("[turn %d] %s vs %s (%s to act)",
		state.Turn,
		hpSummary(state.Active(entities.SidePlayer)),
		hpSummary(state.Active(entities.SideAI)),
		state.Phase,
	)
}

func hpSummary(p *entities.BattlePokemon) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s %d/%d", p.DisplayName(), p.HP, p.MaxHP)
}
