package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns queued values per die size.
// The last queued value for a size repeats; sizes with nothing queued roll
// their maximum.
type ScriptedRoller struct {
	mu      sync.Mutex
	scripts map[int][]int
	calls   map[int]int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates an empty scripted roller
func NewScriptedRoller() *ScriptedRoller {
	return &ScriptedRoller{
		scripts: make(map[int][]int),
		calls:   make(map[int]int),
	}
}

// On queues values for rolls of the given die size
func (r *ScriptedRoller) On(size int, values ...int) *ScriptedRoller {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scripts[size] = append(r.scripts[size], values...)
	return r
}

// Roll returns the next scripted value for size
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.calls[size]
	r.calls[size] = n + 1

	queued := r.scripts[size]
	switch {
	case len(queued) == 0:
		return size, nil
	case n < len(queued):
		return queued[n], nil
	default:
		return queued[len(queued)-1], nil
	}
}

// RollN rolls count dice of the given size
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Calls reports how many times a die of size was rolled
func (r *ScriptedRoller) Calls(size int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[size]
}
