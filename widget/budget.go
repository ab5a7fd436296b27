package widget

import (
	"fmt"

	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/session"
	"github.com/voyageui/voyage/trigger"
)

// BudgetBreakdown renders the trip cost estimate as proportional bars and
// hosts the optimize and finalize actions. It is gated the same way as the
// itinerary; Finalize additionally re-checks the gate at call time so a stale
// render cannot commit an incomplete plan.
type BudgetBreakdown struct {
	// Title is the header shown above the rows.
	Title string

	// Breakdown is the current cost estimate.
	Breakdown voyage.CostBreakdown

	selections *session.Selections
	dispatcher *trigger.Dispatcher
}

// NewBudgetBreakdown creates a budget widget bound to the session's selection
// store and trigger dispatcher.
func NewBudgetBreakdown(breakdown voyage.CostBreakdown, selections *session.Selections, dispatcher *trigger.Dispatcher) *BudgetBreakdown {
	return &BudgetBreakdown{
		Title:      "Budget Breakdown",
		Breakdown:  breakdown,
		selections: selections,
		dispatcher: dispatcher,
	}
}

type budgetRow struct {
	label  string
	amount float64
}

func (w *BudgetBreakdown) rows() []budgetRow {
	return []budgetRow{
		{"Flight", w.Breakdown.Flight},
		{"Hotel", w.Breakdown.Hotel},
		{"Food + local transport", w.Breakdown.FoodAndLocalTransport},
	}
}

// Render produces either the locked placeholder or the full breakdown,
// depending on the snapshot's gate condition.
func (w *BudgetBreakdown) Render(snap session.Snapshot) Node {
	if !snap.HasBothSelections() {
		return locked(w.Title, "budget summary", snap)
	}

	total := w.Breakdown.TotalEstimate
	children := []Node{header(w.Title, "$" + FormatUSD(total))}
	for _, row := range w.rows() {
		pct := SharePercent(row.amount, total)
		children = append(children, Node{
			Kind: NodeItem,
			Text: row.label,
			Meta: fmt.Sprintf("$%s (%d%%)", FormatUSD(row.amount), pct),
			Children: []Node{
				{Kind: NodeBar, Percent: pct},
			},
		})
	}
	children = append(children,
		Node{Kind: NodeButton, Text: "Optimize cost", Action: trigger.ActionOptimizeBudget},
		Node{
			Kind:     NodeButton,
			Text:     "Finalize plan",
			Action:   trigger.ActionFinalizePlan,
			Disabled: !snap.HasBothSelections(),
		},
	)
	return section(children...)
}

// Optimize fires an optimize_budget trigger with the whole breakdown.
func (w *BudgetBreakdown) Optimize() {
	w.dispatcher.Fire(trigger.ActionOptimizeBudget, w.Breakdown,
		fmt.Sprintf("User wants to adjust the budget. Current estimate is $%s.",
			FormatUSD(w.Breakdown.TotalEstimate)))
}

// Finalize commits the plan. It reads a fresh snapshot and refuses to fire
// unless both selections are present, returning ErrSelectionsIncomplete
// without sending anything.
func (w *BudgetBreakdown) Finalize() error {
	snap := w.selections.Snapshot()
	if !snap.HasBothSelections() {
		return ErrSelectionsIncomplete
	}

	w.dispatcher.Fire(trigger.ActionFinalizePlan, FinalizePlanPayload{
		SelectedFlightID:          snap.FlightID,
		SelectedHotelID:           snap.HotelID,
		EstimatedCostBreakdownUSD: w.Breakdown,
	}, fmt.Sprintf("User wants to finalize the plan with flight %s and hotel %s.",
		snap.FlightID, snap.HotelID))
	return nil
}
