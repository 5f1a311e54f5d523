package resource

// Handle is an opaque reference to a resource in a table. The low 32 bits
// carry the slot index plus one, the high 32 bits the slot's generation at
// issue time. Handle 0 is reserved and always invalid.
type Handle uint64

func (h Handle) slot() (uint32, bool) {
	s := uint32(h)
	if s == 0 {
		return 0, false
	}
	return s - 1, true
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

func makeHandle(slot, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(slot+1))
}

// Event types for resource lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
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
// Drop is called exactly once, on removal or table close.
type Dropper interface {
	Drop()
}
