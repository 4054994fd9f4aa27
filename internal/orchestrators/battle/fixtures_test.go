package battle_test

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/repositories/battles"
)

func power(p int) *int {
	return &p
}

func move(name, moveType string, class entities.DamageClass, pow, accuracy int) *entities.Move {
	return &entities.Move{
		Name:        name,
		Type:        moveType,
		Power:       power(pow),
		Accuracy:    accuracy,
		DamageClass: class,
	}
}

var neutralStats = entities.Stats{
	HP: 100, Attack: 100, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: 100,
}

// playerTeam is Pikachu (electric) followed by Squirtle (water).
// Pikachu's moves: 0 thunder-shock, 1 quick-attack, 2 focus-punch.
func playerTeam() []*entities.BattlePokemon {
	pikachu := entities.NewBattlePokemon(entities.SidePlayer, 0, &entities.Species{
		ID: 25, Name: "pikachu", Types: []string{"electric"}, Stats: neutralStats,
	}, []*entities.Move{
		move("thunder-shock", "electric", entities.DamageClassSpecial, 40, 100),
		move("quick-attack", "normal", entities.DamageClassPhysical, 40, 100),
		move("focus-punch", "fighting", entities.DamageClassPhysical, 250, 100),
	})
	squirtle := entities.NewBattlePokemon(entities.SidePlayer, 1, &entities.Species{
		ID: 7, Name: "squirtle", Types: []string{"water"}, Stats: neutralStats,
	}, []*entities.Move{
		move("water-gun", "water", entities.DamageClassSpecial, 40, 100),
	})
	return []*entities.BattlePokemon{pikachu, squirtle}
}

// aiTeam is Geodude followed by Onix, both rock/ground.
// Moves: 0 tackle, 1 mud-slap.
func aiTeam() []*entities.BattlePokemon {
	moves := func() []*entities.Move {
		return []*entities.Move{
			move("tackle", "normal", entities.DamageClassPhysical, 40, 100),
			move("mud-slap", "ground", entities.DamageClassSpecial, 20, 100),
		}
	}
	geodude := entities.NewBattlePokemon(entities.SideAI, 0, &entities.Species{
		ID: 74, Name: "geodude", Types: []string{"rock", "ground"}, Stats: neutralStats,
	}, moves())
	onix := entities.NewBattlePokemon(entities.SideAI, 1, &entities.Species{
		ID: 95, Name: "onix", Types: []string{"rock", "ground"}, Stats: neutralStats,
	}, moves())
	return []*entities.BattlePokemon{geodude, onix}
}

func typeChart() map[string]*entities.TypeEffectiveness {
	return map[string]*entities.TypeEffectiveness{
		"electric": {Name: "electric", DoubleDamageTo: []string{"water", "flying"}, NoDamageTo: []string{"ground"}},
		"normal":   {Name: "normal", HalfDamageTo: []string{"rock", "steel"}},
		"ground":   {Name: "ground", DoubleDamageTo: []string{"electric", "rock"}},
	}
}

type publishedEvent struct {
	eventType string
	targetID  string
}

// recordingBus captures published events
type recordingBus struct {
	mu        sync.Mutex
	published []publishedEvent
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	targetID := ""
	if target := event.Target(); target != nil {
		targetID = target.GetID()
	}
	b.published = append(b.published, publishedEvent{eventType: event.Type(), targetID: targetID})
	return nil
}
func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

func (b *recordingBus) events() []publishedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]publishedEvent(nil), b.published...)
}

// gatedRepository reads through to the wrapped repository but holds every
// Get result until release is closed
type gatedRepository struct {
	battles.Repository
	fetched chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedRepository(repo battles.Repository) *gatedRepository {
	return &gatedRepository{
		Repository: repo,
		fetched:    make(chan struct{}),
		release:    make(chan struct{}),
	}
}

func (r *gatedRepository) Get(ctx context.Context, input *battles.GetInput) (*battles.GetOutput, error) {
	out, err := r.Repository.Get(ctx, input)
	r.once.Do(func() { close(r.fetched) })
	<-r.release
	return out, err
}
