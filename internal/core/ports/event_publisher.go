package ports

import "tracking/internal/core/domain/model/order"

// EventPublisher fans an order event out to every live subscriber.
//
// Publish is fire-and-forget and runs after the store write has already
// committed; there is no transactional coupling between the two. A crash
// between the write and the publish yields a state change that no
// subscriber hears about, which clients recover from only through a fresh
// snapshot fetch.
type EventPublisher interface {
	Publish(event order.Event)
}
