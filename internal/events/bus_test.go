package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_SubscribeAndUnsubscribe(t *testing.T) {
	var bus Bus[string]

	calls := 0
	unsubscribe := bus.Subscribe(func(string) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, bus.Len())

	bus.Broadcast("a")
	assert.Equal(t, 1, calls)

	unsubscribe()
	assert.Equal(t, 0, bus.Len())

	// Second call must not remove anything else
	other := bus.Subscribe(func(string) bool { return false })
	unsubscribe()
	assert.Equal(t, 1, bus.Len())
	other()
	assert.Equal(t, 0, bus.Len())

	bus.Broadcast("b")
	assert.Equal(t, 1, calls)
}

func TestBus_PublishNewestFirstAndStops(t *testing.T) {
	var bus Bus[int]
	var order []string

	bus.Subscribe(func(int) bool {
		order = append(order, "first")
		return false
	})
	bus.Subscribe(func(v int) bool {
		order = append(order, "second")
		return v == 1
	})

	handled := bus.Publish(1)
	assert.True(t, handled)
	assert.Equal(t, []string{"second"}, order)

	order = nil
	handled = bus.Publish(2)
	assert.False(t, handled)
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestBus_BroadcastInSubscriptionOrder(t *testing.T) {
	var bus Bus[int]
	var order []int

	for i := 0; i < 3; i++ {
		bus.Subscribe(func(int) bool {
			order = append(order, i)
			return true
		})
	}

	bus.Broadcast(0)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestBus_UnsubscribeDuringDispatch(t *testing.T) {
	var bus Bus[int]
	calls := 0

	var unsubscribe func()
	unsubscribe = bus.Subscribe(func(int) bool {
		calls++
		unsubscribe()
		return false
	})

	bus.Broadcast(0)
	bus.Broadcast(0)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBus_RepeatedCyclesDoNotLeak(t *testing.T) {
	var bus Bus[int]
	for i := 0; i < 100; i++ {
		off := bus.Subscribe(func(int) bool { return false })
		off()
	}
	assert.Equal(t, 0, bus.Len())
}
