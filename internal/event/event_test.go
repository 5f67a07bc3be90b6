package event

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10Draken01/Docker-Front/internal/log"
)

func TestPublish_DeliversToSubscribersOfType(t *testing.T) {
	em := NewEventManager(nil)

	var mu sync.Mutex
	var got []Event
	record := func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	}
	em.Subscribe(UserCreated, record)
	em.Subscribe(UserCreated, record)
	em.Subscribe(UserDeleted, record)

	em.Publish(Event{Type: UserCreated, Data: "Lyra"})
	em.Publish(Event{Type: RosterLoaded, Data: 3})
	em.Wait()

	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, UserCreated, e.Type)
		assert.Equal(t, "Lyra", e.Data)
	}
}

func TestPublish_RecoversHandlerPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWriterLogger(&buf, log.LevelDebug)
	em := NewEventManager(logger)
	em.Subscribe(UserDeleted, func(Event) { panic("boom") })

	em.Publish(Event{Type: UserDeleted, Data: "u-1"})
	em.Wait()
	require.NoError(t, logger.Close())

	assert.Contains(t, buf.String(), "Panic in event handler")
	assert.Contains(t, buf.String(), "user_deleted")
}

func TestPublish_NilManagerIsNoop(t *testing.T) {
	var em *EventManager
	assert.NotPanics(t, func() { em.Publish(Event{Type: StatusCleared}) })
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "roster_loaded", RosterLoaded.String())
	assert.Equal(t, "status_cleared", StatusCleared.String())
	assert.Equal(t, "unknown", EventType(99).String())
}
