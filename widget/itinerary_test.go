package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyageui/voyage/session"
	"github.com/voyageui/voyage/trigger"
)

func TestItineraryTimeline_GateTransitions(t *testing.T) {
	h := newHarness(t)
	w := NewItineraryTimeline(sampleDays(), h.selections, h.dispatcher)

	placeholder := func(tree Node) []Node {
		return findNodes(tree, func(n Node) bool { return n.Kind == NodePlaceholder })
	}

	t.Run("locked with neither pick", func(t *testing.T) {
		nodes := placeholder(w.Render(h.selections.Snapshot()))
		require.Len(t, nodes, 1)
		assert.Contains(t, nodes[0].Text, "a flight and a hotel")
	})

	t.Run("locked names the one missing pick", func(t *testing.T) {
		h.selections.Set(session.SlotFlight, "FL-001")
		nodes := placeholder(w.Render(h.selections.Snapshot()))
		require.Len(t, nodes, 1)
		assert.Contains(t, nodes[0].Text, "a hotel")
		assert.NotContains(t, nodes[0].Text, "a flight and")
	})

	t.Run("unlocks when both are set", func(t *testing.T) {
		h.selections.Set(session.SlotHotel, "HT-001")
		tree := w.Render(h.selections.Snapshot())
		assert.Empty(t, placeholder(tree))
		lists := findNodes(tree, func(n Node) bool { return n.Kind == NodeList })
		require.Len(t, lists, 1)
		assert.Len(t, lists[0].Children, 2)
	})

	t.Run("relocks when a pick is cleared", func(t *testing.T) {
		h.selections.Set(session.SlotFlight, "")
		nodes := placeholder(w.Render(h.selections.Snapshot()))
		require.Len(t, nodes, 1)
		assert.Contains(t, nodes[0].Text, "a flight")
	})
}

func TestItineraryTimeline_RefineDayPayload(t *testing.T) {
	h := newHarness(t)
	w := NewItineraryTimeline(sampleDays(), h.selections, h.dispatcher)

	require.NoError(t, w.RefineDay("2026-03-02"))

	fired := h.flush()
	require.Len(t, fired, 1)
	assert.Equal(t, trigger.ActionRefineItineraryDay, fired[0].Action)

	payload := decodePayload[RefineDayPayload](t, fired[0])
	assert.Equal(t, RefineDayPayload{
		Date:       "2026-03-02",
		Pace:       "fast",
		Activities: []string{"Museum morning", "Market lunch", "Neighborhood crawl"},
	}, payload)
}

func TestItineraryTimeline_RefineUnknownDay(t *testing.T) {
	h := newHarness(t)
	w := NewItineraryTimeline(sampleDays(), h.selections, h.dispatcher)

	require.Error(t, w.RefineDay("2026-12-25"))
	assert.Empty(t, h.flush())
}

func TestItineraryTimeline_RegenerateSendsOutlineOnly(t *testing.T) {
	h := newHarness(t)
	w := NewItineraryTimeline(sampleDays(), h.selections, h.dispatcher)

	w.Regenerate()

	fired := h.flush()
	require.Len(t, fired, 1)
	assert.Equal(t, trigger.ActionRegenerateItinerary, fired[0].Action)

	payload := decodePayload[RegenerateItineraryPayload](t, fired[0])
	assert.Equal(t, []RegenerateDayEntry{
		{Date: "2026-03-01", Pace: "balanced"},
		{Date: "2026-03-02", Pace: "fast"},
	}, payload.Days)

	// Activities stay out of the regenerate payload.
	keys := payloadKeys(t, fired[0])
	days, ok := keys["days"].([]any)
	require.True(t, ok)
	first, ok := days[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, first, "activities")
}
