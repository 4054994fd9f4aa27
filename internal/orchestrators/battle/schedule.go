package battle

import (
	"context"
	"time"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/repositories/battles"
)

// session returns the live session of a battle, restoring it from the
// repository when this process has not seen it. Finished battles are
// returned detached so they are never scheduled. Abandoned battles are
// never restored, even when the fetch raced the abandon.
func (o *orchestrator) session(ctx context.Context, battleID string) (*session, error) {
	if battleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	o.mu.RLock()
	sess := o.sessions[battleID]
	gone := o.isAbandoned(battleID)
	o.mu.RUnlock()
	if sess != nil {
		return sess, nil
	}
	if gone {
		return nil, errors.NotFoundf("battle %s not found", battleID)
	}

	out, err := o.repo.Get(ctx, &battles.GetInput{BattleID: battleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load battle %s", battleID)
	}

	restored := newSession(out.Battle)

	o.mu.Lock()
	if o.isAbandoned(battleID) {
		o.mu.Unlock()
		restored.stop()
		return nil, errors.NotFoundf("battle %s not found", battleID)
	}
	if out.Battle.IsOver() {
		o.mu.Unlock()
		restored.stop()
		return restored, nil
	}
	if existing := o.sessions[battleID]; existing != nil {
		o.mu.Unlock()
		restored.stop()
		return existing, nil
	}
	o.sessions[battleID] = restored
	o.mu.Unlock()

	o.logger.InfoContext(ctx, "battle restored", "battle_id", battleID, "phase", out.Battle.Phase)

	if o.autoAdvance && out.Battle.Phase == entities.PhaseAI {
		restored.mu.Lock()
		o.scheduleAI(restored)
		restored.mu.Unlock()
	}
	return restored, nil
}

// current reports whether sess is still the live session of its battle.
// Callers hold sess.mu.
func (o *orchestrator) current(sess *session) bool {
	if sess.ctx.Err() != nil {
		return false
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.sessions[sess.state.ID] == sess
}

// isAbandoned reports whether battleID holds an unexpired tombstone.
// Callers hold o.mu.
func (o *orchestrator) isAbandoned(battleID string) bool {
	until, ok := o.abandoned[battleID]
	return ok && o.clock.Now().Before(until)
}

// scheduleAI arranges the AI turn after the pacing delay. The turn only runs
// if the session is still current and nothing else has transitioned it.
// Callers hold sess.mu.
func (o *orchestrator) scheduleAI(sess *session) {
	if sess.timer != nil {
		sess.timer.Stop()
	}
	generation := sess.generation
	sess.timer = time.AfterFunc(o.aiDelay, func() {
		o.runScheduledAI(sess, generation)
	})
}

func (o *orchestrator) runScheduledAI(sess *session, generation uint64) {
	if sess.ctx.Err() != nil {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	battleID := sess.state.ID
	if !o.current(sess) || sess.generation != generation {
		o.logger.Debug("skipping stale AI turn", "battle_id", battleID)
		return
	}
	if sess.state.Phase != entities.PhaseAI {
		return
	}

	ctx, cancel := context.WithTimeout(sess.ctx, 30*time.Second)
	defer cancel()

	if _, err := o.aiTurn(ctx, sess); err != nil {
		o.logger.ErrorContext(ctx, "scheduled AI turn failed", "battle_id", battleID, "error", err)
	}
}
