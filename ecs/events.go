package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// CollectEvent is pushed when the player picks up a collectible.
type CollectEvent struct {
	Entity Entity
	Kind   string
}

const EventCollected = "collected"

// EventQueue is a FIFO that lives for one tick. Every system may read it;
// the scheduler clears it once all systems ran.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each calls fn for every queued event of the given type.
func (q *EventQueue) Each(eventType string, fn func(Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == eventType {
			fn(evt)
		}
	}
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
