package system

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-defense/asset"
	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/vmath"
)

const tick = 50 * time.Millisecond

// harness is a world with every host resource and a chosen subset of systems
type harness struct {
	w       *engine.World
	sched   *engine.Scheduler
	player  *engine.PlayerResource
	spawner *Spawner
	rec     *eventRecorder
}

func newHarness(path []vmath.Vec2F, money, health uint32, ctors ...func(*engine.World) engine.System) *harness {
	w := engine.NewWorld()
	player := engine.NewPlayerResource(money, health)
	engine.AddResource(w.ResourceStore, player)
	engine.AddResource(w.ResourceStore, &engine.PathResource{Waypoints: path})
	engine.AddResource(w.ResourceStore, &engine.LogResource{Logger: zerolog.Nop()})
	engine.AddResource(w.ResourceStore, &engine.AssetResource{Catalog: asset.NewDefaultCatalog()})

	h := &harness{
		w:       w,
		sched:   engine.NewScheduler(w),
		player:  player,
		spawner: NewSpawner(w),
		rec:     &eventRecorder{},
	}
	for _, ctor := range ctors {
		h.sched.AddSystem(ctor(w))
	}
	h.sched.AddSystem(h.rec)
	return h
}

func (h *harness) run(n int) {
	for i := 0; i < n; i++ {
		h.sched.Tick(tick)
	}
}

func (h *harness) target(e core.Entity) component.TargetComponent {
	tc, _ := h.w.Components.Target.GetComponent(e)
	return tc
}

func (h *harness) position(e core.Entity) vmath.Vec3F {
	pos, _ := h.w.Scene.WorldPosition(e)
	return pos
}

// selectSite marks a build site selected without going through input
func (h *harness) selectSite(site core.Entity) {
	h.w.Components.Selectable.SetComponent(site, component.SelectableComponent{Selected: true})
}

// clickButton spawns a button of kind already in the clicked state
func (h *harness) clickButton(kind core.TowerKind) core.Entity {
	b := h.spawner.SpawnButton(kind, 0)
	btn, _ := h.w.Components.Button.GetComponent(b)
	btn.Interaction = component.InteractionClicked
	h.w.Components.Button.SetComponent(b, btn)
	return b
}

// eventRecorder captures every event type the simulation emits
type eventRecorder struct {
	events []event.GameEvent
}

func (r *eventRecorder) Name() string  { return "recorder" }
func (r *eventRecorder) Priority() int { return parameter.PriorityDispatch }
func (r *eventRecorder) Update()       {}

func (r *eventRecorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTargetDeath,
		event.EventTargetLeaked,
		event.EventBulletFired,
		event.EventTowerPurchased,
		event.EventGameOver,
		event.EventSoundRequest,
	}
}

func (r *eventRecorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *eventRecorder) of(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
