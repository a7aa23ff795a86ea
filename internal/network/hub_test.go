package network

import (
	"os"
	"sandbox-core/pkg/api"
	"sandbox-core/pkg/logger"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_RegisterAndBroadcast(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")
	assert.Equal(t, 2, b.SubscriberCount())

	b.Broadcast(api.ServerMessage{Type: api.MessageSnapshot, Tick: 1})
	require.Len(t, a, 1)
	require.Len(t, c, 1)
	assert.Equal(t, uint64(1), (<-a).Tick)

	assert.True(t, b.SendTo("c", api.ServerMessage{Type: api.MessageError}))
	assert.False(t, b.SendTo("missing", api.ServerMessage{}))
	assert.Len(t, c, 2)
}

func TestBroadcaster_ReRegisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("s")
	fresh := b.Register("s")

	_, open := <-old
	assert.False(t, open)
	assert.Equal(t, 1, b.SubscriberCount())

	b.Unregister("s")
	_, open = <-fresh
	assert.False(t, open)
	assert.Zero(t, b.SubscriberCount())

	// Повторный Unregister ничего не ломает
	b.Unregister("s")
}

func TestBroadcaster_FullChannelDrops(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")

	for i := 0; i < subscriberBuffer+5; i++ {
		b.Broadcast(api.ServerMessage{Tick: uint64(i)})
	}
	assert.Len(t, ch, subscriberBuffer)
	assert.Equal(t, 5, b.Dropped("slow"))
	// Первые сообщения сохранены
	assert.Equal(t, uint64(0), (<-ch).Tick)
}
