package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityPacking(t *testing.T) {
	e := NewEntity(42, 7)
	assert.Equal(t, uint32(42), e.Index())
	assert.Equal(t, uint32(7), e.Generation())
	assert.False(t, e.IsZero())
	assert.Equal(t, "42/7", e.String())

	// Same slot, different generation is a different handle
	assert.NotEqual(t, e, NewEntity(42, 8))
	assert.True(t, NoEntity.IsZero())
}

func TestParseTowerKind(t *testing.T) {
	for _, k := range AllTowerKinds() {
		got, err := ParseTowerKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseTowerKind("  PoTaTo ")
	require.NoError(t, err)
	assert.Equal(t, TowerPotato, got)

	_, err = ParseTowerKind("turnip")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTowerKind))
}

func TestTowerKindValid(t *testing.T) {
	assert.True(t, TowerCabbage.Valid())
	assert.False(t, TowerKindCount.Valid())
	assert.Equal(t, "unknown", TowerKindCount.String())
	assert.Len(t, AllTowerKinds(), int(TowerKindCount))
}
