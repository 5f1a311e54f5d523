package resource

import (
	"sync"
)

// Table is a slot arena with a free list, per-slot generation counters,
// and observer support. The table itself is internally synchronized;
// the values stored in it are not.
type Table struct {
	entries   []entry
	freeList  []uint32
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	seed      uint32
	closed    bool
}

type entry struct {
	value  any
	typeID uint32
	gen    uint32
	valid  bool
}

// NewTable creates a new table.
func NewTable() *Table {
	return NewTableWithSeed(0)
}

// NewTableWithSeed creates a table whose generation counters start at seed
// rather than zero. Seeding from an entropy source makes handle values
// unpredictable across instantiations; it has no effect on correctness.
func NewTableWithSeed(seed uint32) *Table {
	return &Table{
		entries:  make([]entry, 0, 16),
		freeList: make([]uint32, 0, 8),
		seed:     seed,
	}
}

// Insert adds a value and returns its handle, or 0 if the table is closed.
func (t *Table) Insert(typeID uint32, value any) Handle {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}

	var slot uint32
	if n := len(t.freeList); n > 0 {
		slot = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		// Generation was already bumped when the slot was vacated.
		t.entries[slot].value = value
		t.entries[slot].typeID = typeID
		t.entries[slot].valid = true
	} else {
		slot = uint32(len(t.entries))
		t.entries = append(t.entries, entry{
			value:  value,
			typeID: typeID,
			gen:    t.seed,
			valid:  true,
		})
	}

	h := makeHandle(slot, t.entries[slot].gen)
	t.mu.Unlock()

	t.notify(Event{
		Type:   EventCreated,
		Handle: h,
		TypeID: typeID,
		Value:  value,
	})

	return h
}

// Get retrieves a value by handle. Stale handles (dropped, or dropped and
// the slot reused) fail the generation check and return false.
func (t *Table) Get(h Handle) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(h)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// GetTyped retrieves a value only if it matches the expected type.
func (t *Table) GetTyped(h Handle, typeID uint32) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(h)
	if !ok || e.typeID != typeID {
		return nil, false
	}
	return e.value, true
}

// TypeID returns the type ID for a live handle.
func (t *Table) TypeID(h Handle) (uint32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(h)
	if !ok {
		return 0, false
	}
	return e.typeID, true
}

// Remove drops a resource and returns (value, true) if found. The slot's
// generation is advanced so the removed handle and any copies of it are
// dead from this point on. Values implementing Dropper are destroyed.
func (t *Table) Remove(h Handle) (any, bool) {
	t.mu.Lock()
	e, ok := t.lookup(h)
	if !ok {
		t.mu.Unlock()
		return nil, false
	}

	slot, _ := h.slot()
	value := e.value
	typeID := e.typeID
	e.value = nil
	e.valid = false
	e.gen++
	t.freeList = append(t.freeList, slot)
	t.mu.Unlock()

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: h,
		TypeID: typeID,
		Value:  value,
	})

	return value, true
}

// lookup resolves a handle to its entry. Caller holds a lock.
func (t *Table) lookup(h Handle) (*entry, bool) {
	slot, ok := h.slot()
	if !ok || int(slot) >= len(t.entries) {
		return nil, false
	}
	e := &t.entries[slot]
	if !e.valid || e.gen != h.generation() {
		return nil, false
	}
	return e, true
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of active resources.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for i := range t.entries {
		if t.entries[i].valid {
			count++
		}
	}
	return count
}

// Each iterates over all active resources.
func (t *Table) Each(fn func(Handle, uint32, any) bool) {
	t.mu.RLock()
	var live []Event
	for i := range t.entries {
		if t.entries[i].valid {
			live = append(live, Event{
				Handle: makeHandle(uint32(i), t.entries[i].gen),
				TypeID: t.entries[i].typeID,
				Value:  t.entries[i].value,
			})
		}
	}
	t.mu.RUnlock()

	for _, e := range live {
		if !fn(e.Handle, e.TypeID, e.Value) {
			break
		}
	}
}

// Clear drops all resources.
func (t *Table) Clear() {
	var handles []Handle
	t.Each(func(h Handle, _ uint32, _ any) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Close drops all resources and stops accepting operations.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	t.Clear()
	return nil
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
