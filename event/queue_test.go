package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-defense/core"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventTargetDeath, Frame: 1})
	q.Push(GameEvent{Type: EventSoundRequest, Frame: 1})
	q.Push(GameEvent{Type: EventTargetDeath, Frame: 2})

	require.Equal(t, 3, q.Len())

	events := q.Consume()
	require.Len(t, events, 3)
	assert.Equal(t, EventTargetDeath, events[0].Type)
	assert.Equal(t, EventSoundRequest, events[1].Type)
	assert.Equal(t, int64(2), events[2].Frame)

	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Consume())
}

func TestEventQueue_ConsumeDetachesSlice(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventTargetDeath})
	first := q.Consume()

	q.Push(GameEvent{Type: EventGameOver})
	second := q.Consume()

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, EventTargetDeath, first[0].Type, "later push must not overwrite a consumed batch")
	assert.Equal(t, EventGameOver, second[0].Type)
}

func TestEventQueue_Clear(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventBulletFired})
	}
	assert.Equal(t, 5, q.Clear())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, uint64(5), q.Pushed())
}

func TestEventQueue_ConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	const producers, perProducer = 8, 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventTargetDeath})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, q.Consume(), producers*perProducer, "no event may be lost")
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "EventTargetDeath", EventTargetDeath.String())
	assert.Equal(t, "EventUnknown", EventType(999).String())

	ev := SoundRequest(core.SoundDamage, 7)
	assert.Equal(t, EventSoundRequest, ev.Type)
	payload, ok := ev.Payload.(*SoundRequestPayload)
	require.True(t, ok)
	assert.Equal(t, core.SoundDamage, payload.SoundType)
	assert.Equal(t, int64(7), ev.Frame)
}
