// Package game assembles the world, its resources and the system schedule
package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-defense/asset"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/system"
	"github.com/lixenwraith/tower-defense/vmath"
)

// Options configures a new game; zero fields take the standard values
type Options struct {
	Logger  zerolog.Logger
	Audio   engine.AudioPlayer
	Catalog *asset.Catalog
	Path    []vmath.Vec2F

	StartMoney   uint32
	StartHealth  uint32
	TargetCount  int
	TargetSpeed  float64
	TargetHealth int
}

func (o *Options) applyDefaults() {
	if o.Catalog == nil {
		o.Catalog = asset.NewDefaultCatalog()
	}
	if o.Path == nil {
		o.Path = parameter.DefaultPath
	}
	if o.StartMoney == 0 {
		o.StartMoney = parameter.PlayerStartMoney
	}
	if o.StartHealth == 0 {
		o.StartHealth = parameter.PlayerStartHealth
	}
	if o.TargetSpeed == 0 {
		o.TargetSpeed = parameter.TargetDefaultSpeed
	}
	if o.TargetHealth == 0 {
		o.TargetHealth = parameter.TargetDefaultHealth
	}
}

// Game owns one simulation session
type Game struct {
	World     *engine.World
	Scheduler *engine.Scheduler
	Player    *engine.PlayerResource
	Path      *engine.PathResource
	Spawner   *system.Spawner

	// BuildSites holds the initial markers in placement order; purchased ones go stale
	BuildSites []core.Entity

	opts Options
}

// New builds a world with every resource registered before any system is constructed
// Systems resolve their singletons in their constructors, so this order is the startup invariant
func New(opts Options) *Game {
	opts.applyDefaults()

	w := engine.NewWorld()

	player := engine.NewPlayerResource(opts.StartMoney, opts.StartHealth)
	path := &engine.PathResource{Waypoints: opts.Path}

	engine.AddResource(w.ResourceStore, player)
	engine.AddResource(w.ResourceStore, path)
	engine.AddResource(w.ResourceStore, &engine.LogResource{Logger: opts.Logger})
	engine.AddResource(w.ResourceStore, &engine.AssetResource{Catalog: opts.Catalog})
	if opts.Audio != nil {
		engine.AddResource(w.ResourceStore, &engine.AudioResource{Player: opts.Audio})
	}

	g := &Game{
		World:     w,
		Scheduler: engine.NewScheduler(w),
		Player:    player,
		Path:      path,
		Spawner:   system.NewSpawner(w),
		opts:      opts,
	}
	for _, ctor := range systemConstructors {
		g.Scheduler.AddSystem(ctor(w))
	}
	return g
}

// systemConstructors lists every system; execution order comes from priorities
// Handlers sharing the dispatch slot receive events in this order
var systemConstructors = []func(*engine.World) engine.System{
	system.NewPathSystem,
	system.NewTowerSystem,
	system.NewBulletSystem,
	system.NewLifetimeSystem,
	system.NewHealthSystem,
	system.NewLeakSystem,
	system.NewEconomySystem,
	system.NewAudioSystem,
	system.NewStatsSystem,
	system.NewPurchaseSystem,
	system.NewPanelSystem,
	system.NewButtonSystem,
}

// SetupScene spawns the initial targets and build sites
func (g *Game) SetupScene() {
	count := g.opts.TargetCount
	if count <= 0 {
		count = parameter.TargetDefaultCount
	}
	for i := 0; i < count; i++ {
		pos := vmath.V3F(-float64(i)*parameter.TargetSpawnGap, parameter.TargetSpawnHeight, parameter.TargetSpawnZ)
		g.Spawner.SpawnTarget(pos, g.opts.TargetSpeed, g.opts.TargetHealth)
	}

	g.BuildSites = g.BuildSites[:0]
	for i := 1; i <= parameter.BuildSiteCount; i++ {
		pos := vmath.V3F(float64(i)*parameter.BuildSiteSpacing, parameter.BuildSiteHeight, 0)
		g.BuildSites = append(g.BuildSites, g.Spawner.SpawnBuildSite(pos))
	}

	g.opts.Logger.Info().
		Int("targets", count).
		Int("build_sites", len(g.BuildSites)).
		Uint32("money", g.Player.Money).
		Uint32("health", g.Player.Health).
		Msg("scene ready")
}

// Tick advances the simulation by dt
func (g *Game) Tick(dt time.Duration) {
	g.Scheduler.Tick(dt)
}

// Over reports whether player health reached zero
func (g *Game) Over() bool {
	return g.World.Resources.Game.IsOver()
}

// Counters returns a snapshot of the telemetry counters
func (g *Game) Counters() map[string]int64 {
	return g.World.Resources.Status.IntSnapshot()
}
