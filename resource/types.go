package resource

// Handle is an opaque, pointer-sized reference to a resource in a table.
// Handle 0 is reserved and always invalid.
type Handle uintptr

// Type IDs distinguishing the kinds of values moved through a table.
const (
	TypeOwned  uint32 = 1 // values wrapped by Owned
	TypeStatus uint32 = 2 // non-nil errors moved by a status codec
)

// Event types for resource lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
	EventTaken
)

// Event represents a resource lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	TypeID uint32
	Type   EventType
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Dropper is optionally implemented by resource values that need cleanup.
type Dropper interface {
	Drop()
}
