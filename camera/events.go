package camera

import (
	"github.com/yohamta/donburi/features/events"
)

// Updated is published on every state mutation, synchronously, carrying the
// full post-mutation snapshot. Each camera publishes on its own private
// world, so subscriptions never cross camera instances.
var Updated = events.NewEventType[State]()

// OnUpdated subscribes fn to this camera's state changes. Pass the same
// function value to OffUpdated to remove it.
func (c *Camera) OnUpdated(fn events.Subscriber[State]) {
	Updated.Subscribe(c.world, fn)
}

// OffUpdated removes a subscription added with OnUpdated.
func (c *Camera) OffUpdated(fn events.Subscriber[State]) {
	Updated.Unsubscribe(c.world, fn)
}
