package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
)

// PurchaseSystem turns a clicked tower button into towers on every selected build site
// The money gate is re-checked per marker; an unaffordable marker is skipped and the loop continues
type PurchaseSystem struct {
	world   *engine.World
	player  *engine.PlayerResource
	spawner *Spawner
	log     zerolog.Logger
}

func NewPurchaseSystem(world *engine.World) engine.System {
	return &PurchaseSystem{
		world:   world,
		player:  engine.MustGetResource[*engine.PlayerResource](world.ResourceStore),
		spawner: NewSpawner(world),
		log:     engine.MustGetResource[*engine.LogResource](world.ResourceStore).Logger.With().Str("system", "purchase").Logger(),
	}
}

func (s *PurchaseSystem) Name() string  { return "purchase" }
func (s *PurchaseSystem) Priority() int { return parameter.PriorityPurchase }

func (s *PurchaseSystem) Update() {
	buttons := s.world.Components.Button

	for _, b := range buttons.GetAllEntities() {
		btn, ok := buttons.GetComponent(b)
		if !ok || btn.Interaction != component.InteractionClicked {
			continue
		}
		// Click is consumed whether or not anything gets built
		btn.Interaction = component.InteractionNone
		buttons.SetComponent(b, btn)

		s.buyOnSelected(btn)
	}
}

func (s *PurchaseSystem) buyOnSelected(btn component.ButtonComponent) {
	tick := s.world.Resources.Time.FrameNumber

	for _, marker := range s.world.Components.BuildSite.GetAllEntities() {
		sel, ok := s.world.Components.Selectable.GetComponent(marker)
		if !ok || !sel.Selected {
			continue
		}

		if !s.player.TryDebit(tick, engine.ReasonPurchase, btn.Cost) {
			s.log.Debug().
				Str("kind", btn.Kind.String()).
				Uint32("cost", btn.Cost).
				Uint32("money", s.player.Money).
				Msg("purchase rejected")
			continue
		}

		pos, _ := s.world.Scene.WorldPosition(marker)
		s.world.DestroyEntity(marker)
		tower := s.spawner.SpawnTower(btn.Kind, pos)

		s.log.Debug().
			Str("kind", btn.Kind.String()).
			Uint32("cost", btn.Cost).
			Uint32("money", s.player.Money).
			Stringer("tower", tower).
			Msg("tower purchased")

		s.world.PushEvent(event.EventTowerPurchased, &event.TowerPurchasedPayload{
			Tower:    tower,
			Marker:   marker,
			Kind:     btn.Kind,
			Cost:     btn.Cost,
			Position: pos,
		})
	}
}
