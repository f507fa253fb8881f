package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-defense/component"
	"github.com/lixenwraith/tower-defense/core"
	"github.com/lixenwraith/tower-defense/event"
	"github.com/lixenwraith/tower-defense/parameter"
	"github.com/lixenwraith/tower-defense/status"
	"github.com/lixenwraith/tower-defense/vmath"
)

// stillTower is a tower whose bullets do not move and spawn at its origin
func stillTower(h *harness, pos vmath.Vec3F) (core.Entity, component.TowerComponent) {
	tower := h.spawner.SpawnTower(core.TowerTomato, pos)
	tc, _ := h.w.Components.Tower.GetComponent(tower)
	tc.MuzzleOffset = vmath.Vec3F{}
	tc.BulletSpeed = 0
	return tower, tc
}

func TestBulletSystem_MovesNormalized(t *testing.T) {
	h := newHarness(nil, 0, 1, NewBulletSystem)
	tower, tc := stillTower(h, vmath.V3F(0, 0, 0))
	tc.BulletSpeed = 2
	b := h.spawner.SpawnBullet(tower, tc, vmath.V3F(30, 0, 40))

	h.run(10)

	pos := h.position(b)
	// 0.5s at speed 2 along (0.6, 0, 0.8)
	assert.InDelta(t, 0.6, pos.X, 1e-9)
	assert.InDelta(t, 0.8, pos.Z, 1e-9)
	assert.InDelta(t, 1.0, vmath.V3FMag(pos), 1e-9)
}

func TestBulletSystem_MultiHitKillsOnce(t *testing.T) {
	h := newHarness(nil, 0, 1, NewBulletSystem, NewHealthSystem)
	tower, tc := stillTower(h, vmath.V3F(0, 0, 0))
	target := h.spawner.SpawnTarget(vmath.V3F(0.1, 0, 0), 0, 2)

	var bullets []core.Entity
	for i := 0; i < 3; i++ {
		bullets = append(bullets, h.spawner.SpawnBullet(tower, tc, vmath.V3F(1, 0, 0)))
	}

	h.run(1)

	assert.False(t, h.w.IsAlive(target))
	for _, b := range bullets {
		assert.False(t, h.w.IsAlive(b), "every contacting bullet is consumed")
	}
	assert.Equal(t, int64(3), h.w.Resources.Status.Ints.Get(status.BulletHit).Load())

	deaths := h.rec.of(event.EventTargetDeath)
	require.Len(t, deaths, 1, "one death event per kill")
	p := deaths[0].Payload.(*event.TargetDeathPayload)
	assert.Equal(t, target, p.Entity)
	assert.Equal(t, vmath.V3F(0.1, 0, 0), p.Position)
	assert.Equal(t, int64(1), deaths[0].Frame)

	h.run(1)
	assert.Len(t, h.rec.of(event.EventTargetDeath), 1, "no repeat on later ticks")
}

func TestBulletSystem_OneTargetPerBullet(t *testing.T) {
	h := newHarness(nil, 0, 1, NewBulletSystem)
	tower, tc := stillTower(h, vmath.V3F(0, 0, 0))
	a := h.spawner.SpawnTarget(vmath.V3F(0.1, 0, 0), 0, 3)
	b := h.spawner.SpawnTarget(vmath.V3F(-0.1, 0, 0), 0, 3)
	h.spawner.SpawnBullet(tower, tc, vmath.V3F(1, 0, 0))

	h.run(1)

	ha, _ := h.w.Components.Health.GetComponent(a)
	hb, _ := h.w.Components.Health.GetComponent(b)
	assert.Equal(t, 5, ha.Value+hb.Value, "exactly one point of damage dealt")
}

func TestBulletSystem_HealthMayGoNegativeBeforeResolve(t *testing.T) {
	h := newHarness(nil, 0, 1, NewBulletSystem)
	tower, tc := stillTower(h, vmath.V3F(0, 0, 0))
	target := h.spawner.SpawnTarget(vmath.V3F(0, 0, 0.2), 0, 1)
	for i := 0; i < 3; i++ {
		h.spawner.SpawnBullet(tower, tc, vmath.V3F(1, 0, 0))
	}

	h.run(1)

	hp, ok := h.w.Components.Health.GetComponent(target)
	require.True(t, ok, "no death pass registered")
	assert.Equal(t, -2, hp.Value)
}

func TestLifetimeSystem_ExpiryWithoutDamage(t *testing.T) {
	h := newHarness(nil, 0, 1, NewBulletSystem, NewLifetimeSystem, NewHealthSystem)
	tower, tc := stillTower(h, vmath.V3F(0, 0, 0))
	tc.BulletSpeed = 1
	target := h.spawner.SpawnTarget(vmath.V3F(0, 0, 5), 0, 3)
	b := h.spawner.SpawnBullet(tower, tc, vmath.V3F(-1, 0, 0)) // away from the target

	ticks := int(parameter.BulletLifetime / tick)
	h.run(ticks - 1)
	require.True(t, h.w.IsAlive(b), "alive before the lifetime elapses")

	h.run(1)
	assert.False(t, h.w.IsAlive(b))

	hp, _ := h.w.Components.Health.GetComponent(target)
	assert.Equal(t, 3, hp.Value, "expiry applies no damage")
	assert.Zero(t, h.rec.count(event.EventTargetDeath))
	assert.Equal(t, int64(1), h.w.Resources.Status.Ints.Get(status.BulletExpired).Load())
	assert.Zero(t, h.w.Resources.Status.Ints.Get(status.BulletHit).Load())
}

func TestLifetimeSystem_ImpactBeforeExpiry(t *testing.T) {
	h := newHarness(nil, 0, 1, NewBulletSystem, NewLifetimeSystem)
	tower, tc := stillTower(h, vmath.V3F(0, 0, 0))
	h.spawner.SpawnTarget(vmath.V3F(0, 0, 0), 0, 3)
	b := h.spawner.SpawnBullet(tower, tc, vmath.V3F(1, 0, 0))

	lt, _ := h.w.Components.Lifetime.GetComponent(b)
	lt.Timer = core.NewTimer(time.Millisecond, core.TimerOnce)
	h.w.Components.Lifetime.SetComponent(b, lt)

	h.run(1)

	assert.False(t, h.w.IsAlive(b))
	assert.Equal(t, int64(1), h.w.Resources.Status.Ints.Get(status.BulletHit).Load())
	assert.Zero(t, h.w.Resources.Status.Ints.Get(status.BulletExpired).Load(), "destroyed bullets do not also expire")
}

func TestBulletSystem_OrphanedBulletKeepsFlying(t *testing.T) {
	h := newHarness(nil, 0, 1, NewBulletSystem)
	tower, tc := stillTower(h, vmath.V3F(3, 0, 0))
	tc.BulletSpeed = 1
	b := h.spawner.SpawnBullet(tower, tc, vmath.V3F(1, 0, 0))

	require.True(t, h.w.DestroyEntity(tower))
	assert.Equal(t, vmath.V3F(3, 0, 0), h.position(b), "detached in place")

	h.run(2)
	assert.InDelta(t, 3.1, h.position(b).X, 1e-9)
}
