package battle

// Narration formats appended to the battle log
const (
	msgSendOutPlayer = "Go, %s!"
	msgSendOutAI     = "The gym leader sent out %s!"
	msgMoveUsed      = "%s used %s!"
	msgMissed        = "%s's attack missed!"
	msgCritical      = "A critical hit!"
	msgDamage        = "%s took %d damage!"
	msgFainted       = "%s fainted!"
	msgDefending     = "%s is defending!"
	msgBraced        = "%s braced against the hit!"
	msgSwitch        = "Come back, %s! Go, %s!"
	msgNoMoves       = "%s has no moves to use!"
	msgCannotAct     = "%s cannot act!"
	msgPlayerWins    = "You defeated the gym leader!"
	msgAIWins        = "All of your Pokémon have fainted! The gym leader wins."
)

// Event types published on the event bus
const (
	EventPokemonFainted = "battle.pokemon_fainted"
	EventBattleEnded    = "battle.ended"
)

// Action and outcome labels recorded in metrics
const (
	actionAttack = "attack"
	actionDefend = "defend"
	actionSwitch = "switch"
	actionSkip   = "skip"

	outcomeHit    = "hit"
	outcomeMiss   = "miss"
	outcomeFaint  = "faint"
	outcomeNoMove = "no_move"
	outcomeOK     = "ok"

	winnerAbandoned = "abandoned"
)
