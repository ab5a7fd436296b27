package widget

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/session"
	"github.com/voyageui/voyage/trigger"
)

func sampleBreakdown() voyage.CostBreakdown {
	return voyage.CostBreakdown{
		Flight:                500,
		Hotel:                 300,
		FoodAndLocalTransport: 200,
		TotalEstimate:         1000,
	}
}

func selectBoth(h *harness) {
	h.selections.Set(session.SlotFlight, "FL-001")
	h.selections.Set(session.SlotHotel, "HT-001")
}

func TestBudgetBreakdown_Percentages(t *testing.T) {
	h := newHarness(t)
	selectBoth(h)
	w := NewBudgetBreakdown(sampleBreakdown(), h.selections, h.dispatcher)

	tree := w.Render(h.selections.Snapshot())
	bars := findNodes(tree, func(n Node) bool { return n.Kind == NodeBar })
	require.Len(t, bars, 3)

	sum := 0
	for i, want := range []int{50, 30, 20} {
		assert.Equal(t, want, bars[i].Percent)
		sum += bars[i].Percent
	}
	assert.Equal(t, 100, sum)
}

func TestBudgetBreakdown_ZeroTotalYieldsZeroPercentages(t *testing.T) {
	h := newHarness(t)
	selectBoth(h)
	w := NewBudgetBreakdown(voyage.CostBreakdown{Flight: 500, Hotel: 300}, h.selections, h.dispatcher)

	tree := w.Render(h.selections.Snapshot())
	bars := findNodes(tree, func(n Node) bool { return n.Kind == NodeBar })
	require.Len(t, bars, 3)
	for _, bar := range bars {
		assert.Equal(t, 0, bar.Percent)
	}
}

func TestBudgetBreakdown_RowFormatting(t *testing.T) {
	h := newHarness(t)
	selectBoth(h)
	w := NewBudgetBreakdown(voyage.CostBreakdown{
		Flight: 1500, Hotel: 300, FoodAndLocalTransport: 200, TotalEstimate: 2000,
	}, h.selections, h.dispatcher)

	tree := w.Render(h.selections.Snapshot())
	rows := findNodes(tree, func(n Node) bool { return n.Kind == NodeItem })
	require.Len(t, rows, 3)
	assert.Equal(t, "$1,500 (75%)", rows[0].Meta)

	headers := findNodes(tree, func(n Node) bool { return n.Kind == NodeHeader })
	require.Len(t, headers, 1)
	assert.Equal(t, "$2,000", headers[0].Meta)
}

func TestBudgetBreakdown_GatedLikeItinerary(t *testing.T) {
	h := newHarness(t)
	w := NewBudgetBreakdown(sampleBreakdown(), h.selections, h.dispatcher)

	tree := w.Render(h.selections.Snapshot())
	nodes := findNodes(tree, func(n Node) bool { return n.Kind == NodePlaceholder })
	require.Len(t, nodes, 1)
	assert.Contains(t, nodes[0].Text, "a flight and a hotel")
}

func TestBudgetBreakdown_OptimizeSendsWholeBreakdown(t *testing.T) {
	h := newHarness(t)
	w := NewBudgetBreakdown(sampleBreakdown(), h.selections, h.dispatcher)

	w.Optimize()

	fired := h.flush()
	require.Len(t, fired, 1)
	assert.Equal(t, trigger.ActionOptimizeBudget, fired[0].Action)
	assert.Equal(t, sampleBreakdown(), decodePayload[voyage.CostBreakdown](t, fired[0]))
}

func TestBudgetBreakdown_FinalizeRequiresBothSelections(t *testing.T) {
	h := newHarness(t)
	w := NewBudgetBreakdown(sampleBreakdown(), h.selections, h.dispatcher)

	require.ErrorIs(t, w.Finalize(), ErrSelectionsIncomplete)

	h.selections.Set(session.SlotFlight, "F1")
	require.ErrorIs(t, w.Finalize(), ErrSelectionsIncomplete)

	assert.Empty(t, h.flush())
}

func TestBudgetBreakdown_FinalizePayload(t *testing.T) {
	h := newHarness(t)
	h.selections.Set(session.SlotFlight, "F1")
	h.selections.Set(session.SlotHotel, "H1")
	w := NewBudgetBreakdown(sampleBreakdown(), h.selections, h.dispatcher)

	require.NoError(t, w.Finalize())

	fired := h.flush()
	require.Len(t, fired, 1)
	assert.Equal(t, trigger.ActionFinalizePlan, fired[0].Action)
	assert.Equal(t, FinalizePlanPayload{
		SelectedFlightID:          "F1",
		SelectedHotelID:           "H1",
		EstimatedCostBreakdownUSD: sampleBreakdown(),
	}, decodePayload[FinalizePlanPayload](t, fired[0]))
}

func TestSharePercent_Rounding(t *testing.T) {
	cases := []struct {
		amount, total float64
		want          int
	}{
		{500, 1000, 50},
		{1, 3, 33},
		{2, 3, 67},
		{0, 1000, 0},
		{100, 0, 0},
		{100, -5, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v_of_%v", tc.amount, tc.total), func(t *testing.T) {
			assert.Equal(t, tc.want, SharePercent(tc.amount, tc.total))
		})
	}
}
