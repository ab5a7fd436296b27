package widget

import (
	"fmt"

	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/session"
	"github.com/voyageui/voyage/trigger"
)

// ItineraryTimeline renders the day-by-day plan as an ordered timeline. It is
// gated: until both a flight and a hotel are selected it shows a locked
// placeholder naming the missing picks.
type ItineraryTimeline struct {
	// Title is the header shown above the timeline.
	Title string

	// Days are the itinerary entries in chronological order.
	Days []voyage.ItineraryDay

	selections *session.Selections
	dispatcher *trigger.Dispatcher
}

// NewItineraryTimeline creates a timeline bound to the session's selection
// store and trigger dispatcher.
func NewItineraryTimeline(days []voyage.ItineraryDay, selections *session.Selections, dispatcher *trigger.Dispatcher) *ItineraryTimeline {
	return &ItineraryTimeline{
		Title:      "Daily Itinerary",
		Days:       days,
		selections: selections,
		dispatcher: dispatcher,
	}
}

// Render produces either the locked placeholder or the full timeline,
// depending on the snapshot's gate condition.
func (w *ItineraryTimeline) Render(snap session.Snapshot) Node {
	if !snap.HasBothSelections() {
		return locked(w.Title, "day-by-day plan", snap)
	}

	items := make([]Node, 0, len(w.Days))
	for _, day := range w.Days {
		children := make([]Node, 0, len(day.Activities)+1)
		for _, activity := range day.Activities {
			children = append(children, textLine(activity))
		}
		children = append(children, Node{
			Kind:   NodeButton,
			Text:   "Refine this day",
			Action: trigger.ActionRefineItineraryDay,
			Ref:    day.Date,
		})
		items = append(items, Node{
			Kind:     NodeItem,
			Text:     day.Date,
			Meta:     day.Pace,
			ImageURL: day.ImageURL,
			Children: children,
		})
	}

	regenerate := Node{Kind: NodeButton, Text: "Regenerate itinerary", Action: trigger.ActionRegenerateItinerary}
	return section(
		header(w.Title, fmt.Sprintf("%d day plan", len(w.Days)), regenerate),
		Node{Kind: NodeList, Children: items},
	)
}

// RefineDay fires a refine_itinerary_day trigger carrying only the named
// day's date, pace and activities.
func (w *ItineraryTimeline) RefineDay(date string) error {
	for _, day := range w.Days {
		if day.Date != date {
			continue
		}
		w.dispatcher.Fire(trigger.ActionRefineItineraryDay, RefineDayPayload{
			Date:       day.Date,
			Pace:       day.Pace,
			Activities: day.Activities,
		}, fmt.Sprintf("User requested refinements for itinerary day %s with pace %s.", day.Date, day.Pace))
		return nil
	}
	return fmt.Errorf("widget: itinerary has no day %q", date)
}

// Regenerate fires a regenerate_itinerary trigger with the date and pace of
// every day. Activities are left out to keep the payload small.
func (w *ItineraryTimeline) Regenerate() {
	days := make([]RegenerateDayEntry, 0, len(w.Days))
	for _, day := range w.Days {
		days = append(days, RegenerateDayEntry{Date: day.Date, Pace: day.Pace})
	}
	w.dispatcher.Fire(trigger.ActionRegenerateItinerary, RegenerateItineraryPayload{Days: days},
		fmt.Sprintf("User wants to regenerate the full %d-day itinerary.", len(days)))
}
