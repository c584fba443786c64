package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_FanOut(t *testing.T) {
	h := NewHub(4)
	a, cancelA := h.Subscribe(ChannelGifts)
	b, cancelB := h.Subscribe(ChannelGifts)
	defer cancelA()
	defer cancelB()

	h.Publish(ChannelGifts, "gift.created", map[string]string{"id": "1"})

	for _, ch := range []<-chan Event{a, b} {
		ev := <-ch
		assert.Equal(t, ChannelGifts, ev.Channel)
		assert.Equal(t, "gift.created", ev.Type)
	}
}

func TestHub_ChannelsAreIsolated(t *testing.T) {
	h := NewHub(1)
	moods, cancel := h.Subscribe(ChannelMoods)
	defer cancel()

	h.Publish(ChannelGifts, "gift.created", nil)

	select {
	case ev := <-moods:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestHub_FullBufferDrops(t *testing.T) {
	h := NewHub(1)
	ch, cancel := h.Subscribe(ChannelMoods)
	defer cancel()

	h.Publish(ChannelMoods, "first", nil)
	h.Publish(ChannelMoods, "second", nil)

	ev := <-ch
	assert.Equal(t, "first", ev.Type)
	select {
	case ev := <-ch:
		t.Fatalf("expected drop, got %+v", ev)
	default:
	}
}

func TestHub_CancelClosesAndUnregisters(t *testing.T) {
	h := NewHub(1)
	ch, cancel := h.Subscribe(ChannelGifts)
	require.Equal(t, 1, h.Subscribers(ChannelGifts))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers(ChannelGifts))
	h.Publish(ChannelGifts, "after", nil)
}

func TestHub_ConcurrentPublish(t *testing.T) {
	h := NewHub(64)
	ch, cancel := h.Subscribe(ChannelMoods)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Publish(ChannelMoods, "mood.confirmed", nil)
		}()
	}
	wg.Wait()
	assert.Len(t, ch, 32)
}
