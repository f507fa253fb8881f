package game

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/status"
	"github.com/lixenwraith/tower-defense/vmath"
)

func newTestGame(opts Options) *Game {
	opts.Logger = zerolog.Nop()
	g := New(opts)
	g.SetupScene()
	return g
}

func TestNew_Defaults(t *testing.T) {
	g := newTestGame(Options{})

	assert.Equal(t, uint32(parameter.PlayerStartMoney), g.Player.Money)
	assert.Equal(t, uint32(parameter.PlayerStartHealth), g.Player.Health)
	assert.Equal(t, parameter.DefaultPath, g.Path.Waypoints)

	assert.Equal(t, parameter.TargetDefaultCount, g.World.Components.Target.CountEntities())
	require.Len(t, g.BuildSites, parameter.BuildSiteCount)
	for i, site := range g.BuildSites {
		pos, ok := g.World.Scene.WorldPosition(site)
		require.True(t, ok)
		assert.Equal(t, vmath.V3F(float64(i+1)*parameter.BuildSiteSpacing, parameter.BuildSiteHeight, 0), pos)
		assert.True(t, g.World.Components.Selectable.HasComponent(site))
	}
	assert.False(t, g.Over())
}

func TestNew_ScheduleOrder(t *testing.T) {
	g := New(Options{Logger: zerolog.Nop()})

	var names []string
	prev := -1
	for _, sys := range g.World.Systems() {
		assert.GreaterOrEqual(t, sys.Priority(), prev, "systems sorted by priority")
		prev = sys.Priority()
		names = append(names, sys.Name())
	}
	assert.Equal(t, []string{
		"path", "tower", "bullet", "lifetime", "health", "leak",
		"router", "economy", "audio", "stats",
		"purchase", "panel", "button",
	}, names)
	assert.Equal(t, 3, g.Scheduler.Router().HandlerCount(event.EventTargetDeath), "economy, audio and stats subscribe")
}

func TestNew_SpawnLayout(t *testing.T) {
	g := newTestGame(Options{TargetCount: 3, TargetSpeed: 0.5, TargetHealth: 7})

	targets := g.World.Components.Target.GetAllEntities()
	require.Len(t, targets, 3)
	for i, e := range targets {
		pos, _ := g.World.Scene.WorldPosition(e)
		assert.Equal(t, vmath.V3F(-float64(i)*parameter.TargetSpawnGap, parameter.TargetSpawnHeight, parameter.TargetSpawnZ), pos)
		tc, _ := g.World.Components.Target.GetComponent(e)
		assert.Equal(t, 0.5, tc.Speed)
		hp, _ := g.World.Components.Health.GetComponent(e)
		assert.Equal(t, 7, hp.Value)
	}
}

func TestGame_DefendedRunKillsTargets(t *testing.T) {
	g := newTestGame(Options{TargetCount: 4})
	place(t, g, 0, core.TowerTomato)

	for i := 0; i < 4000 && g.World.Components.Target.CountEntities() > 0; i++ {
		g.Tick(parameter.GameUpdateInterval)
	}

	counters := g.Counters()
	killed := counters[status.TargetKilled]
	leaked := counters[status.TargetLeaked]
	assert.Equal(t, int64(4), killed+leaked, "every target resolved exactly once")
	assert.Positive(t, killed, "a tomato on the first site scores")
	assert.Positive(t, counters[status.BulletFired])
	assert.Equal(t, counters[status.BulletFired], counters[status.BulletHit]+counters[status.BulletExpired]+int64(g.World.Components.Bullet.CountEntities()))

	wantMoney := int64(parameter.PlayerStartMoney) - int64(parameter.TowerKinds[core.TowerTomato].Cost) + killed*parameter.KillReward
	assert.Equal(t, wantMoney, int64(g.Player.Money))
	assert.Equal(t, int64(parameter.PlayerStartHealth)-leaked, int64(g.Player.Health))
}

func TestGame_TickAfterDestroyIsSafe(t *testing.T) {
	g := newTestGame(Options{TargetCount: 2})
	for _, e := range g.World.Components.Target.GetAllEntities() {
		g.World.DestroyEntity(e)
		assert.False(t, g.World.DestroyEntity(e), "double destroy is a no-op")
	}
	assert.NotPanics(t, func() { g.Tick(50 * time.Millisecond) })
}

// place buys a tower through the selection and button flow
func place(t *testing.T, g *Game, site int, kind core.TowerKind) {
	t.Helper()
	marker := g.BuildSites[site]
	g.World.Components.Selectable.SetComponent(marker, component.SelectableComponent{Selected: true})
	g.Tick(parameter.GameUpdateInterval)

	clicked := false
	for _, b := range g.World.Components.Button.GetAllEntities() {
		bc, _ := g.World.Components.Button.GetComponent(b)
		if bc.Kind == kind {
			bc.Interaction = component.InteractionClicked
			g.World.Components.Button.SetComponent(b, bc)
			clicked = true
		}
	}
	require.True(t, clicked, "panel shows %s", kind)
	g.Tick(parameter.GameUpdateInterval)
	require.False(t, g.World.IsAlive(marker), "tower placed")
}

var _ engine.AudioPlayer = (*nopAudio)(nil)

type nopAudio struct{ plays int }

func (n *nopAudio) Play(core.SoundType) bool { n.plays++; return true }
func (n *nopAudio) ToggleMute() bool         { return false }
func (n *nopAudio) IsMuted() bool            { return false }

func TestNew_AudioResourceWired(t *testing.T) {
	a := &nopAudio{}
	g := newTestGame(Options{Audio: a, TargetCount: 1})
	place(t, g, 0, core.TowerTomato)
	assert.Positive(t, a.plays, "purchase sound requested")
}
