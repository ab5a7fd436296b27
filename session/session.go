package session

import "sync"

// Slot names for the selection categories widgets share.
const (
	// SlotFlight holds the identifier of the flight the user picked.
	SlotFlight = "selected_flight_id"

	// SlotHotel holds the identifier of the hotel the user picked.
	SlotHotel = "selected_hotel_id"
)

// Selections is a keyed store of selection slots for one chat session.
// Each slot holds at most one string value; writes are last-write-wins and
// reads never fail. The zero value is not usable; call NewSelections.
//
// It is safe for concurrent use, though the hosting UI model is cooperative:
// each widget event handler runs to completion before the next read.
type Selections struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewSelections creates an empty selection store.
func NewSelections() *Selections {
	return &Selections{
		slots: make(map[string]string),
	}
}

// Get returns the value of a slot. The second return is false if the slot
// has never been set. Slots are created implicitly; Get on an unknown key is
// not an error.
func (s *Selections) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok
}

// Set stores a value in a slot, replacing any previous value.
func (s *Selections) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
}

// Snapshot returns a point-in-time read of the selection slots widgets gate
// on. Renders take one snapshot up front so a single render pass sees a
// consistent view.
func (s *Selections) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		FlightID: s.slots[SlotFlight],
		HotelID:  s.slots[SlotHotel],
	}
}

// Snapshot is an immutable view of the two selection slots at render time.
// An empty field means the slot is unset.
type Snapshot struct {
	FlightID string
	HotelID  string
}

// HasFlight reports whether a flight has been selected.
func (s Snapshot) HasFlight() bool {
	return s.FlightID != ""
}

// HasHotel reports whether a hotel has been selected.
func (s Snapshot) HasHotel() bool {
	return s.HotelID != ""
}

// HasBothSelections is the gate condition for dependent widgets. It is
// derived on every call, never cached.
func (s Snapshot) HasBothSelections() bool {
	return s.HasFlight() && s.HasHotel()
}
