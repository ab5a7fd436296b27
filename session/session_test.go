package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelections_GetUnsetSlot(t *testing.T) {
	s := NewSelections()

	v, ok := s.Get(SlotFlight)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSelections_LastWriteWins(t *testing.T) {
	s := NewSelections()

	s.Set(SlotFlight, "FL-001")
	s.Set(SlotFlight, "FL-002")

	v, ok := s.Get(SlotFlight)
	assert.True(t, ok)
	assert.Equal(t, "FL-002", v)
}

func TestSelections_SlotsAreIndependent(t *testing.T) {
	s := NewSelections()

	s.Set(SlotHotel, "HT-001")

	_, ok := s.Get(SlotFlight)
	assert.False(t, ok)

	v, ok := s.Get(SlotHotel)
	assert.True(t, ok)
	assert.Equal(t, "HT-001", v)
}

func TestSnapshot_GateCondition(t *testing.T) {
	s := NewSelections()

	t.Run("empty store", func(t *testing.T) {
		snap := s.Snapshot()
		assert.False(t, snap.HasFlight())
		assert.False(t, snap.HasHotel())
		assert.False(t, snap.HasBothSelections())
	})

	t.Run("flight only", func(t *testing.T) {
		s.Set(SlotFlight, "FL-001")
		snap := s.Snapshot()
		assert.True(t, snap.HasFlight())
		assert.False(t, snap.HasHotel())
		assert.False(t, snap.HasBothSelections())
	})

	t.Run("both selected", func(t *testing.T) {
		s.Set(SlotHotel, "HT-003")
		snap := s.Snapshot()
		assert.True(t, snap.HasBothSelections())
		assert.Equal(t, "FL-001", snap.FlightID)
		assert.Equal(t, "HT-003", snap.HotelID)
	})
}

func TestSnapshot_IsPointInTime(t *testing.T) {
	s := NewSelections()
	s.Set(SlotFlight, "FL-001")
	s.Set(SlotHotel, "HT-001")

	snap := s.Snapshot()
	s.Set(SlotFlight, "FL-009")

	// The snapshot keeps the view from when it was taken; a fresh snapshot
	// sees the newer write.
	assert.Equal(t, "FL-001", snap.FlightID)
	assert.Equal(t, "FL-009", s.Snapshot().FlightID)
}

func TestManager_SessionPerThread(t *testing.T) {
	m := NewManager()

	a := m.Session("thread-a")
	b := m.Session("thread-b")
	assert.NotSame(t, a, b)

	a.Set(SlotFlight, "FL-001")
	_, ok := b.Get(SlotFlight)
	assert.False(t, ok, "selections must not leak across threads")

	// Same thread ID returns the same session.
	assert.Same(t, a, m.Session("thread-a"))
	assert.Equal(t, 2, m.Len())
}
