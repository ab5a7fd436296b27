package widget

import (
	"fmt"
	"strconv"

	"github.com/voyageui/voyage"
	"github.com/voyageui/voyage/session"
	"github.com/voyageui/voyage/trigger"
)

// FlightList renders one selectable card per flight option and highlights the
// card matching the current flight selection. It is not gated; flights are
// the first thing a trip needs.
type FlightList struct {
	// Title is the header shown above the cards.
	Title string

	// Flights are the options to render, in the order given.
	Flights []voyage.Flight

	selections *session.Selections
	dispatcher *trigger.Dispatcher
}

// NewFlightList creates a flight list bound to the session's selection store
// and trigger dispatcher.
func NewFlightList(flights []voyage.Flight, selections *session.Selections, dispatcher *trigger.Dispatcher) *FlightList {
	return &FlightList{
		Title:      "Flight Options",
		Flights:    flights,
		selections: selections,
		dispatcher: dispatcher,
	}
}

// Render produces the widget's render tree for the given selection snapshot.
func (w *FlightList) Render(snap session.Snapshot) Node {
	cards := make([]Node, 0, len(w.Flights))
	for _, f := range w.Flights {
		selected := snap.FlightID == f.FlightID
		label := "Choose flight"
		if selected {
			label = "Selected"
		}
		cards = append(cards, Node{
			Kind:     NodeCard,
			Text:     f.Airline,
			Meta:     "$" + FormatUSD(f.TotalPriceUSD),
			Selected: selected,
			ImageURL: f.ImageURL,
			Children: []Node{
				textLine(f.Origin + " → " + f.Destination),
				textLine(fmt.Sprintf("%s at %s • %sh • %d stop(s) • %s",
					f.DepartureDate, f.DepartureTimeLocal,
					strconv.FormatFloat(f.DurationHours, 'f', -1, 64),
					f.Stops, f.CabinClass)),
				{Kind: NodeButton, Text: label, Action: trigger.ActionSelectFlight, Ref: f.FlightID},
			},
		})
	}

	compare := Node{Kind: NodeButton, Text: "Compare", Action: trigger.ActionCompareFlights}
	children := append([]Node{
		header(w.Title, fmt.Sprintf("%d results", len(w.Flights)), compare),
	}, cards...)
	return section(children...)
}

// Select records the flight as the session's pick and fires a select_flight
// trigger carrying the reduced payload for that flight.
func (w *FlightList) Select(flightID string) error {
	flight, ok := w.find(flightID)
	if !ok {
		return fmt.Errorf("widget: flight %q is not in the list", flightID)
	}

	w.selections.Set(session.SlotFlight, flight.FlightID)
	w.dispatcher.Fire(trigger.ActionSelectFlight, SelectFlightPayload{
		FlightID:      flight.FlightID,
		Airline:       flight.Airline,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureDate: flight.DepartureDate,
		TotalPriceUSD: flight.TotalPriceUSD,
	}, fmt.Sprintf("User selected flight %s with %s from %s to %s for $%s.",
		flight.FlightID, flight.Airline, flight.Origin, flight.Destination,
		FormatUSD(flight.TotalPriceUSD)))
	return nil
}

// Compare fires a compare_flights trigger with one reduced row per visible
// flight. It is available regardless of selection state.
func (w *FlightList) Compare() {
	entries := make([]CompareFlightEntry, 0, len(w.Flights))
	for _, f := range w.Flights {
		entries = append(entries, CompareFlightEntry{
			FlightID:      f.FlightID,
			Airline:       f.Airline,
			TotalPriceUSD: f.TotalPriceUSD,
			Stops:         f.Stops,
			DurationHours: f.DurationHours,
		})
	}
	w.dispatcher.Fire(trigger.ActionCompareFlights, CompareFlightsPayload{Flights: entries},
		fmt.Sprintf("User wants to compare all %d flight options.", len(entries)))
}

func (w *FlightList) find(flightID string) (voyage.Flight, bool) {
	for _, f := range w.Flights {
		if f.FlightID == flightID {
			return f, true
		}
	}
	return voyage.Flight{}, false
}
